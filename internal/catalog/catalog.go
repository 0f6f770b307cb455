// Package catalog holds the static policy catalog shown to users. The data
// is reference-only; nothing in the application mutates it.
package catalog

import (
	"fmt"

	"github.com/dmitrijs2005/lifecalc/internal/common"
	"github.com/dmitrijs2005/lifecalc/internal/models"
	"github.com/dmitrijs2005/lifecalc/internal/pricing"
)

var policies = map[models.Category][]models.Policy{
	models.CategoryEndowment: {
		{ID: "1", Name: "LIC's Single Premium Endowment Plan", PlanNo: "717", UIN: "512N283V03", Product: string(pricing.ProductSinglePremiumEndowment)},
		{ID: "2", Name: "LIC's New Endowment Plan", PlanNo: "714", UIN: "512N277V03"},
		{ID: "3", Name: "LIC's New Jeevan Anand", PlanNo: "715", UIN: "512N279V03"},
		{ID: "4", Name: "LIC's Jeevan Lakshya", PlanNo: "733", UIN: "512N297V03"},
		{ID: "5", Name: "LIC's Jeevan Labh Plan", PlanNo: "736", UIN: "512N304V03"},
		{ID: "6", Name: "LIC's Amritbaal", PlanNo: "774", UIN: "512N365V02"},
		{ID: "7", Name: "LIC's Bima Jyoti", PlanNo: "760", UIN: "512N339V03"},
		{ID: "8", Name: "LIC's Jeevan Azad", PlanNo: "768", UIN: "512N348V02"},
	},
	models.CategoryWholeLife: {
		{ID: "1", Name: "LIC's Jeevan Umang", PlanNo: "745", UIN: "512N312V03"},
		{ID: "2", Name: "LIC's Jeevan Utsav", PlanNo: "771", UIN: "512N363V02"},
	},
	models.CategoryMoneyBack: {
		{ID: "1", Name: "LIC's Bima Shree", PlanNo: "748", UIN: "512N316V03"},
		{ID: "2", Name: "LIC's New Money Back Plan – 20 Years", PlanNo: "720", UIN: "512N280V03"},
		{ID: "3", Name: "LIC's New Money Back Plan – 25 Years", PlanNo: "721", UIN: "512N278V03"},
		{ID: "4", Name: "LIC's New Children's Money Back Plan", PlanNo: "732", UIN: "512N296V03"},
		{ID: "5", Name: "LIC's Bima Ratna", PlanNo: "764", UIN: "512N345V02"},
	},
	models.CategoryTerm: {
		{ID: "1", Name: "LIC's Digi Term", PlanNo: "876", UIN: "512N356V02"},
		{ID: "2", Name: "LIC's Digi Credit Life", PlanNo: "878", UIN: "512N358V01"},
		{ID: "3", Name: "LIC's Yuva Credit Life", PlanNo: "877", UIN: "512N357V01"},
		{ID: "4", Name: "LIC's Yuva Term", PlanNo: "875", UIN: "512N355V02"},
		{ID: "5", Name: "LIC's New Tech-Term", PlanNo: "954", UIN: "512N351V01"},
		{ID: "6", Name: "LIC's New Jeevan Amar", PlanNo: "955", UIN: "512N350V02"},
		{ID: "7", Name: "LIC's Saral Jeevan Bima", PlanNo: "859", UIN: "512N341V01"},
	},
	models.CategoryRider: {
		{ID: "1", Name: "LIC's Accident Benefit Rider", PlanNo: "–", UIN: "512B203V03"},
		{ID: "2", Name: "LIC's Premium Waiver Benefit Rider", PlanNo: "–", UIN: "512B204V04"},
		{ID: "3", Name: "LIC's Accidental Death & Disability Benefit Rider", PlanNo: "–", UIN: "512B209V02"},
		{ID: "4", Name: "LIC's New Term Assurance Rider", PlanNo: "–", UIN: "512B210V02"},
		{ID: "5", Name: "LIC's Linked Accidental Death Benefit Rider", PlanNo: "–", UIN: "512A211V02"},
	},
}

// ByCategory returns a copy of the policies in c, or nil for an unknown
// category.
func ByCategory(c models.Category) []models.Policy {
	src := policies[c]
	if src == nil {
		return nil
	}
	out := make([]models.Policy, len(src))
	for i, p := range src {
		p.Category = c
		out[i] = p
	}
	return out
}

// Find looks up a policy by category and id.
func Find(c models.Category, id string) (models.Policy, error) {
	for _, p := range ByCategory(c) {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Policy{}, fmt.Errorf("policy %s/%s: %w", c, id, common.ErrorNotFound)
}

// Quotable returns every policy the pricing engine can quote.
func Quotable() []models.Policy {
	var out []models.Policy
	for _, c := range models.Categories {
		for _, p := range ByCategory(c) {
			if p.Product != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
