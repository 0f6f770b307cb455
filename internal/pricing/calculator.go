// Package pricing estimates insurance premiums.
//
// A quote starts as a raw Form, is checked by Normalize, and is priced by
// Calculate:
//
//  1. base rate per 100,000 sum assured from the product's RateTable
//  2. premium = rate / 100,000 * sum assured
//  3. high sum assured rebate: 2% from 2 lakh, 3% from 3 lakh, 4% from 5 lakh
//  4. riders: ADDB adds 1% of sum assured, age extra adds 2% of premium above age 50
//  5. monthly payment: premium / 12 * 1.05
//  6. GST of 4.5% on the rounded premium
//
// Amounts are exact decimals until the final rounding to whole rupees
// (half away from zero). Premium, rebate, rider loading and GST are rounded
// separately and the total is the sum of the rounded premium and GST.
package pricing

import (
	"time"

	"github.com/dmitrijs2005/lifecalc/internal/models"
	"github.com/shopspring/decimal"
)

var (
	rateUnit        = decimal.NewFromInt(100000)
	gstRate         = decimal.New(45, -3)  // 4.5%
	monthlyLoading  = decimal.New(105, -2) // 1.05
	addbRate        = decimal.New(1, -2)   // 1% of sum assured
	ageExtraRate    = decimal.New(2, -2)   // 2% of premium
	monthsPerYear   = decimal.NewFromInt(12)
	ageExtraMinimum = 50
)

// rebate steps, highest threshold first
var rebateSteps = []struct {
	from int64
	rate decimal.Decimal
}{
	{from: 500000, rate: decimal.New(4, -2)},
	{from: 300000, rate: decimal.New(3, -2)},
	{from: 200000, rate: decimal.New(2, -2)},
}

// GSTPercent is shown next to the tax amount.
const GSTPercent = "4.5%"

// Result is a premium breakdown. Money fields are whole rupees.
//
// BasePremium, Rebate and RiderLoading are yearly figures; Premium, GST and
// Total are per instalment of Frequency. TotalAnnual is Total times the
// number of instalments per year.
type Result struct {
	Product      Product
	Age          int
	AgeBand      string
	Term         int
	SumAssured   int64
	BaseRate     decimal.Decimal
	BasePremium  int64
	Rebate       int64
	RiderLoading int64
	Premium      int64
	GST          int64
	Total        int64
	Frequency    models.Frequency
	TotalAnnual  int64
	Riders       models.Riders
	MaturityDate time.Time
}

// FrequencyLabel is the display text of the payment frequency.
func (r Result) FrequencyLabel() string {
	return r.Frequency.Label()
}

// Snapshot converts r into the form stored with a saved calculation.
func (r Result) Snapshot() models.CalculationResult {
	return models.CalculationResult{
		BasePremium: r.BasePremium,
		Rebate:      r.Rebate,
		Premium:     r.Premium,
		GSTAmount:   r.GST,
		Total:       r.Total,
		Frequency:   r.Frequency,
		TotalAnnual: r.TotalAnnual,
	}
}

// RebateRate is the rebate fraction for sumAssured. It is a step function:
// below 200,000 there is no rebate.
func RebateRate(sumAssured int64) decimal.Decimal {
	for _, s := range rebateSteps {
		if sumAssured >= s.from {
			return s.rate
		}
	}
	return decimal.Zero
}

// Rebate is the unrounded rebate amount for sumAssured.
func Rebate(sumAssured int64) decimal.Decimal {
	return RebateRate(sumAssured).Mul(decimal.NewFromInt(sumAssured))
}

// Calculate prices a normalized input.
func Calculate(in Input) (Result, error) {
	table, err := TableFor(in.Product)
	if err != nil {
		return Result{}, err
	}
	if err := checkAge(FieldAge, in.Age, in.AgeDays); err != nil {
		return Result{}, err
	}
	if in.SumAssured <= 0 {
		return Result{}, invalid(FieldSumAssured, "sum assured must be positive")
	}
	switch in.Frequency {
	case models.FrequencyAnnual, models.FrequencyMonthly, models.FrequencySingle:
	default:
		return Result{}, invalid(FieldFrequency, "unknown payment frequency %q", in.Frequency)
	}

	rate, err := table.BaseRate(in.Term, in.Age)
	if err != nil {
		return Result{}, err
	}

	sumAssured := decimal.NewFromInt(in.SumAssured)

	gross := rate.Div(rateUnit).Mul(sumAssured)
	rebate := Rebate(in.SumAssured)
	premium := gross.Sub(rebate)

	loading := decimal.Zero
	if in.Riders.ADDB {
		loading = loading.Add(addbRate.Mul(sumAssured))
	}
	if in.Riders.AgeExtra && in.Age > ageExtraMinimum {
		loading = loading.Add(ageExtraRate.Mul(premium))
	}
	premium = premium.Add(loading)

	instalments := int64(1)
	if in.Frequency == models.FrequencyMonthly {
		premium = premium.Div(monthsPerYear).Mul(monthlyLoading)
		instalments = 12
	}

	rounded := premium.Round(0)
	gst := rounded.Mul(gstRate).Round(0)
	total := rounded.Add(gst)

	res := Result{
		Product:      in.Product,
		Age:          in.Age,
		AgeBand:      table.BandLabel(in.Age),
		Term:         in.Term,
		SumAssured:   in.SumAssured,
		BaseRate:     rate,
		BasePremium:  gross.Round(0).IntPart(),
		Rebate:       rebate.Round(0).IntPart(),
		RiderLoading: loading.Round(0).IntPart(),
		Premium:      rounded.IntPart(),
		GST:          gst.IntPart(),
		Total:        total.IntPart(),
		Frequency:    in.Frequency,
		TotalAnnual:  total.IntPart() * instalments,
		Riders:       in.Riders,
	}
	if !in.EvaluatedAt.IsZero() {
		res.MaturityDate = in.EvaluatedAt.AddDate(in.Term, 0, 0)
	}
	return res, nil
}

// Quote normalizes f as of now and prices it.
func Quote(f Form, now time.Time) (Result, error) {
	in, err := Normalize(f, now)
	if err != nil {
		return Result{}, err
	}
	return Calculate(in)
}
