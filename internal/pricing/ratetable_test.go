package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rate(t *testing.T, tbl *RateTable, term, age int) decimal.Decimal {
	t.Helper()
	r, err := tbl.BaseRate(term, age)
	require.NoError(t, err)
	return r
}

func TestBaseRate_CanonicalTerms(t *testing.T) {
	tests := []struct {
		term, age int
		want      int64
	}{
		{10, 35, 78180},
		{10, 30, 78010},
		{10, 40, 78180},
		{10, 41, 78630},
		{15, 30, 66865},
		{25, 70, 61340},
		{25, 0, 49780},
	}
	for _, tt := range tests {
		got := rate(t, singlePremiumEndowment, tt.term, tt.age)
		assert.Truef(t, got.Equal(decimal.NewFromInt(tt.want)),
			"term %d age %d: got %s want %d", tt.term, tt.age, got, tt.want)
	}
}

func TestBaseRate_Interpolates(t *testing.T) {
	got := rate(t, singlePremiumEndowment, 12, 30)
	assert.True(t, got.Equal(decimal.NewFromInt(73552)), "got %s", got)

	// between the 15 and 25 year rows
	got = rate(t, singlePremiumEndowment, 20, 35)
	assert.True(t, got.Equal(decimal.NewFromInt(59090)), "got %s", got)
}

func TestBaseRate_BelowFirstCanonicalTermIsFlat(t *testing.T) {
	for term := 5; term <= 10; term++ {
		got := rate(t, singlePremiumEndowment, term, 35)
		assert.True(t, got.Equal(decimal.NewFromInt(78180)), "term %d: got %s", term, got)
	}
}

func TestBaseRate_MonotoneInTerm(t *testing.T) {
	lo, hi := singlePremiumEndowment.TermRange()
	for _, age := range []int{5, 15, 25, 35, 45, 55, 65} {
		prev := rate(t, singlePremiumEndowment, lo, age)
		for term := lo + 1; term <= hi; term++ {
			cur := rate(t, singlePremiumEndowment, term, age)
			assert.Truef(t, cur.LessThanOrEqual(prev), "age %d term %d: %s > %s", age, term, cur, prev)

			// interpolated values stay within the surrounding canonical rows
			assert.True(t, cur.GreaterThanOrEqual(rate(t, singlePremiumEndowment, hi, age)))
			assert.True(t, cur.LessThanOrEqual(rate(t, singlePremiumEndowment, lo, age)))
			prev = cur
		}
	}
}

func TestBaseRate_OutOfRange(t *testing.T) {
	for _, term := range []int{0, 4, 26, 40} {
		_, err := singlePremiumEndowment.BaseRate(term, 35)
		require.Error(t, err)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, FieldTerm, ve.Field)
		assert.ErrorIs(t, err, ErrValidation)
	}

	_, err := singlePremiumEndowment.BaseRate(10, -1)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, FieldAge, ve.Field)
}

func TestBandLabel(t *testing.T) {
	assert.Equal(t, "≤10", singlePremiumEndowment.BandLabel(0))
	assert.Equal(t, "≤40", singlePremiumEndowment.BandLabel(35))
	assert.Equal(t, "≤40", singlePremiumEndowment.BandLabel(40))
	assert.Equal(t, "≤60", singlePremiumEndowment.BandLabel(60))
	assert.Equal(t, ">60", singlePremiumEndowment.BandLabel(61))
}

func TestNewRateTable_RejectsBadShape(t *testing.T) {
	bands := []int{30}

	_, err := NewRateTable(5, 25, nil, bands, nil)
	assert.Error(t, err)

	_, err = NewRateTable(5, 25, []int{25, 10}, bands, [][]int64{{1, 1}, {1, 1}})
	assert.Error(t, err)

	_, err = NewRateTable(5, 30, []int{10, 25}, bands, [][]int64{{1, 1}, {1, 1}})
	assert.Error(t, err)

	_, err = NewRateTable(5, 25, []int{10, 25}, bands, [][]int64{{1, 1}})
	assert.Error(t, err)

	_, err = NewRateTable(5, 25, []int{10, 25}, bands, [][]int64{{1, 1}, {1}})
	assert.Error(t, err)

	_, err = NewRateTable(5, 25, []int{10, 25}, bands, [][]int64{{1, 1}, {1, -1}})
	assert.Error(t, err)

	tbl, err := NewRateTable(5, 25, []int{10, 25}, bands, [][]int64{{2, 3}, {1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 25}, tbl.CanonicalTerms())
}

func TestTableFor(t *testing.T) {
	tbl, err := TableFor(ProductSinglePremiumEndowment)
	require.NoError(t, err)
	assert.Same(t, singlePremiumEndowment, tbl)

	_, err = TableFor("whole-life")
	assert.ErrorIs(t, err, ErrUnsupportedProduct)

	assert.Equal(t, []Product{ProductSinglePremiumEndowment}, Products())
}
