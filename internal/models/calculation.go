package models

import (
	"fmt"
	"strings"
	"time"
)

// Frequency is how often a premium is paid.
type Frequency string

const (
	FrequencyAnnual  Frequency = "annual"
	FrequencyMonthly Frequency = "monthly"
	FrequencySingle  Frequency = "single"
)

func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(strings.ToLower(strings.TrimSpace(s))) {
	case FrequencyAnnual:
		return FrequencyAnnual, nil
	case FrequencyMonthly:
		return FrequencyMonthly, nil
	case FrequencySingle:
		return FrequencySingle, nil
	}
	return "", fmt.Errorf("unknown payment frequency %q", s)
}

// Label is the display text for the frequency.
func (f Frequency) Label() string {
	switch f {
	case FrequencyAnnual:
		return "Annual"
	case FrequencyMonthly:
		return "Monthly"
	case FrequencySingle:
		return "Single"
	default:
		return string(f)
	}
}

// Riders is the fixed set of optional flags on a quote. Only ADDB and
// AgeExtra change the premium; the rest are carried for display.
type Riders struct {
	ADDB                        bool `json:"adAndDb,omitempty"`
	AgeExtra                    bool `json:"ageExtra,omitempty"`
	TaxSaved                    bool `json:"taxSaved,omitempty"`
	TotalApproximatePaidPremium bool `json:"totalApproximatePaidPremium,omitempty"`
	Maturity                    bool `json:"maturity,omitempty"`
	RequiredMedicalReports      bool `json:"requiredMedicalReports,omitempty"`
}

// riderNames maps the short names accepted on input to their flag.
var riderNames = map[string]func(*Riders){
	"addb":      func(r *Riders) { r.ADDB = true },
	"ageextra":  func(r *Riders) { r.AgeExtra = true },
	"taxsaved":  func(r *Riders) { r.TaxSaved = true },
	"totalpaid": func(r *Riders) { r.TotalApproximatePaidPremium = true },
	"maturity":  func(r *Riders) { r.Maturity = true },
	"medical":   func(r *Riders) { r.RequiredMedicalReports = true },
}

// RiderNames lists the names accepted by ParseRiders.
var RiderNames = []string{"addb", "ageextra", "taxsaved", "totalpaid", "maturity", "medical"}

// ParseRiders reads a comma or space separated list of rider names.
func ParseRiders(s string) (Riders, error) {
	var r Riders
	fields := strings.FieldsFunc(strings.ToLower(s), func(c rune) bool {
		return c == ',' || c == ' ' || c == '\t'
	})
	for _, f := range fields {
		set, ok := riderNames[f]
		if !ok {
			return Riders{}, fmt.Errorf("unknown rider %q", f)
		}
		set(&r)
	}
	return r, nil
}

// Names returns the short names of the flags that are set, in RiderNames order.
func (r Riders) Names() []string {
	set := map[string]bool{
		"addb":      r.ADDB,
		"ageextra":  r.AgeExtra,
		"taxsaved":  r.TaxSaved,
		"totalpaid": r.TotalApproximatePaidPremium,
		"maturity":  r.Maturity,
		"medical":   r.RequiredMedicalReports,
	}
	names := make([]string, 0, len(set))
	for _, n := range RiderNames {
		if set[n] {
			names = append(names, n)
		}
	}
	return names
}

// CalculationResult is the stored snapshot of a premium quote. All amounts
// are whole currency units.
type CalculationResult struct {
	BasePremium int64     `json:"basePremium"`
	Rebate      int64     `json:"rebate"`
	Premium     int64     `json:"premium"`
	GSTAmount   int64     `json:"gstAmount"`
	Total       int64     `json:"premiumWithGst"`
	Frequency   Frequency `json:"frequency"`
	TotalAnnual int64     `json:"totalAnnual"`
}

// SavedCalculation is a quote a user chose to keep.
type SavedCalculation struct {
	ID         string            `json:"id"`
	UserID     string            `json:"userId"`
	Name       string            `json:"name"`
	Age        int               `json:"age"`
	Gender     string            `json:"gender"`
	SumAssured int64             `json:"sumAssured"`
	Term       int               `json:"term"`
	Riders     Riders            `json:"riders"`
	Result     CalculationResult `json:"result"`
	PolicyID   string            `json:"policyId"`
	CategoryID Category          `json:"categoryId"`
	PolicyName string            `json:"policyName"`
	CreatedAt  time.Time         `json:"createdAt"`
}
