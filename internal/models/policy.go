package models

import "fmt"

// Category classifies catalog policies.
type Category string

const (
	CategoryEndowment Category = "endowment"
	CategoryWholeLife Category = "wholelife"
	CategoryMoneyBack Category = "moneyback"
	CategoryTerm      Category = "term"
	CategoryRider     Category = "riders"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryEndowment,
	CategoryWholeLife,
	CategoryMoneyBack,
	CategoryTerm,
	CategoryRider,
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown policy category %q", s)
}

// Title is the human label of the category.
func (c Category) Title() string {
	switch c {
	case CategoryEndowment:
		return "Endowment Plans"
	case CategoryWholeLife:
		return "Whole Life Plans"
	case CategoryMoneyBack:
		return "Money Back Plans"
	case CategoryTerm:
		return "Term Assurance Plans"
	case CategoryRider:
		return "Riders"
	default:
		return string(c)
	}
}

// Policy is immutable catalog reference data.
//
// Product names the pricing product that can quote this policy; it is empty
// for policies the pricing engine does not model.
type Policy struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	PlanNo   string   `json:"planNo"`
	UIN      string   `json:"uinNo"`
	Category Category `json:"category"`
	Product  string   `json:"product,omitempty"`
}
