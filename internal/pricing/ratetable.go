package pricing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// RateTable holds premiums per 100,000 sum assured at a few canonical terms,
// banded by issue age.
//
// Age bands are given by their inclusive upper bounds in ascending order; an
// extra open band covers every age above the last bound. Terms between two
// canonical terms are interpolated linearly, terms below the first canonical
// term use its rates, and terms outside [minTerm, maxTerm] are rejected.
type RateTable struct {
	minTerm int
	maxTerm int
	terms   []int
	bands   []int
	rates   [][]decimal.Decimal
}

// NewRateTable checks the table shape and builds a RateTable.
// rates[i][j] is the rate for terms[i] and age band j.
func NewRateTable(minTerm, maxTerm int, terms, bands []int, rates [][]int64) (*RateTable, error) {
	if len(terms) == 0 {
		return nil, errors.New("rate table needs at least one canonical term")
	}
	if !sort.IntsAreSorted(terms) || !sort.IntsAreSorted(bands) {
		return nil, errors.New("rate table terms and bands must be ascending")
	}
	if minTerm > terms[0] || maxTerm > terms[len(terms)-1] || minTerm > maxTerm {
		return nil, fmt.Errorf("term range [%d, %d] does not fit canonical terms %v", minTerm, maxTerm, terms)
	}
	if len(rates) != len(terms) {
		return nil, fmt.Errorf("expected %d rate rows, got %d", len(terms), len(rates))
	}

	t := &RateTable{
		minTerm: minTerm,
		maxTerm: maxTerm,
		terms:   append([]int(nil), terms...),
		bands:   append([]int(nil), bands...),
		rates:   make([][]decimal.Decimal, len(rates)),
	}
	for i, row := range rates {
		if len(row) != len(bands)+1 {
			return nil, fmt.Errorf("term %d: expected %d age bands, got %d", terms[i], len(bands)+1, len(row))
		}
		t.rates[i] = make([]decimal.Decimal, len(row))
		for j, r := range row {
			if r < 0 {
				return nil, fmt.Errorf("term %d band %d: negative rate", terms[i], j)
			}
			t.rates[i][j] = decimal.NewFromInt(r)
		}
	}
	return t, nil
}

func mustRateTable(minTerm, maxTerm int, terms, bands []int, rates [][]int64) *RateTable {
	t, err := NewRateTable(minTerm, maxTerm, terms, bands, rates)
	if err != nil {
		panic(err)
	}
	return t
}

// TermRange returns the smallest and largest supported term.
func (t *RateTable) TermRange() (int, int) {
	return t.minTerm, t.maxTerm
}

// CanonicalTerms returns the terms the table defines rates for.
func (t *RateTable) CanonicalTerms() []int {
	return append([]int(nil), t.terms...)
}

// SupportsTerm reports whether term lies within the supported range.
func (t *RateTable) SupportsTerm(term int) bool {
	return term >= t.minTerm && term <= t.maxTerm
}

// Band returns the index of the age band that age falls into. Bands are
// checked in ascending order and the first match wins.
func (t *RateTable) Band(age int) int {
	for i, upper := range t.bands {
		if age <= upper {
			return i
		}
	}
	return len(t.bands)
}

// BandLabel describes the band of age, e.g. "≤40" or ">60".
func (t *RateTable) BandLabel(age int) string {
	b := t.Band(age)
	if b < len(t.bands) {
		return fmt.Sprintf("≤%d", t.bands[b])
	}
	return fmt.Sprintf(">%d", t.bands[len(t.bands)-1])
}

// BaseRate returns the premium per 100,000 sum assured for term and age.
func (t *RateTable) BaseRate(term, age int) (decimal.Decimal, error) {
	if !t.SupportsTerm(term) {
		return decimal.Zero, invalid(FieldTerm, "term must be between %d and %d years, got %d", t.minTerm, t.maxTerm, term)
	}
	if age < 0 {
		return decimal.Zero, invalid(FieldAge, "age cannot be negative")
	}

	band := t.Band(age)

	if term <= t.terms[0] {
		return t.rates[0][band], nil
	}

	for i := 1; i < len(t.terms); i++ {
		lowerTerm, upperTerm := t.terms[i-1], t.terms[i]
		if term == upperTerm {
			return t.rates[i][band], nil
		}
		if term < upperTerm {
			lowerRate, upperRate := t.rates[i-1][band], t.rates[i][band]
			factor := decimal.NewFromInt(int64(term - lowerTerm)).
				Div(decimal.NewFromInt(int64(upperTerm - lowerTerm)))
			return lowerRate.Sub(factor.Mul(lowerRate.Sub(upperRate))), nil
		}
	}

	// unreachable: maxTerm never exceeds the last canonical term
	return t.rates[len(t.terms)-1][band], nil
}
