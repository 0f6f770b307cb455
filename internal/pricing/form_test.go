package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/lifecalc/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		Product:    string(ProductSinglePremiumEndowment),
		BirthDate:  "1990-03-15",
		Term:       "10",
		SumAssured: "100000",
		Frequency:  "annual",
	}
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %v", err)
	return ve.Field
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2025, time.March, 15, 23, 30, 0, 0, time.UTC)

	y, d := AgeAt(time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC), now)
	assert.Equal(t, 35, y)
	assert.Equal(t, 12784, d)

	y, _ = AgeAt(time.Date(1990, time.March, 16, 0, 0, 0, 0, time.UTC), now)
	assert.Equal(t, 34, y)

	y, d = AgeAt(time.Date(2025, time.February, 13, 0, 0, 0, 0, time.UTC), now)
	assert.Equal(t, 0, y)
	assert.Equal(t, 30, d)

	_, d = AgeAt(time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC), now)
	assert.Equal(t, -1, d)
}

func TestNormalize_BirthDate(t *testing.T) {
	in, err := Normalize(validForm(), evalDate)
	require.NoError(t, err)

	assert.Equal(t, ProductSinglePremiumEndowment, in.Product)
	assert.Equal(t, 35, in.Age)
	assert.Equal(t, 10, in.Term)
	assert.Equal(t, int64(100000), in.SumAssured)
	assert.Equal(t, models.FrequencyAnnual, in.Frequency)
	assert.Equal(t, evalDate, in.EvaluatedAt)
}

func TestNormalize_BirthDateWinsOverAge(t *testing.T) {
	f := validForm()
	f.Age = "60"

	in, err := Normalize(f, evalDate)
	require.NoError(t, err)
	assert.Equal(t, 35, in.Age)
}

func TestNormalize_DirectAge(t *testing.T) {
	f := validForm()
	f.BirthDate = ""
	f.Age = " 42 "

	in, err := Normalize(f, evalDate)
	require.NoError(t, err)
	assert.Equal(t, 42, in.Age)
	assert.Equal(t, 42*365, in.AgeDays)
}

func TestNormalize_AgeLimits(t *testing.T) {
	tests := []struct {
		name      string
		birthDate string
		age       string
		wantErr   string
	}{
		{"exactly 30 days", "2025-02-13", "", ""},
		{"29 days", "2025-02-14", "", FieldBirthDate},
		{"born today", "2025-03-15", "", FieldBirthDate},
		{"future", "2026-01-01", "", FieldBirthDate},
		{"bad layout", "15/03/1990", "", FieldBirthDate},
		{"65 years", "1960-03-15", "", ""},
		{"66 years", "1959-03-15", "", FieldBirthDate},
		{"65 and a day short of 66", "1959-03-16", "", ""},
		{"direct age 0", "", "0", FieldAge},
		{"direct age 1", "", "1", ""},
		{"direct age 65", "", "65", ""},
		{"direct age 66", "", "66", FieldAge},
		{"direct age negative", "", "-3", FieldAge},
		{"direct age text", "", "thirty", FieldAge},
		{"missing", "", "", FieldBirthDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			f.BirthDate, f.Age = tt.birthDate, tt.age

			_, err := Normalize(f, evalDate)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErr, fieldOf(t, err))
		})
	}
}

func TestNormalize_FieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Form)
		field string
	}{
		{"term text", func(f *Form) { f.Term = "ten" }, FieldTerm},
		{"term empty", func(f *Form) { f.Term = "" }, FieldTerm},
		{"term 4", func(f *Form) { f.Term = "4" }, FieldTerm},
		{"term 26", func(f *Form) { f.Term = "26" }, FieldTerm},
		{"sum assured text", func(f *Form) { f.SumAssured = "1e5" }, FieldSumAssured},
		{"sum assured zero", func(f *Form) { f.SumAssured = "0" }, FieldSumAssured},
		{"sum assured negative", func(f *Form) { f.SumAssured = "-100" }, FieldSumAssured},
		{"frequency", func(f *Form) { f.Frequency = "quarterly" }, FieldFrequency},
		{"age before term", func(f *Form) { f.BirthDate = "x"; f.Term = "x" }, FieldBirthDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mod(&f)

			_, err := Normalize(f, evalDate)
			require.Error(t, err)
			assert.Equal(t, tt.field, fieldOf(t, err))
		})
	}
}

func TestNormalize_UnsupportedProductFirst(t *testing.T) {
	f := validForm()
	f.Product = "whole-life"
	f.Term = "99"

	_, err := Normalize(f, evalDate)
	require.Error(t, err)

	var ue *UnsupportedProductError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "whole-life", ue.Product)

	f.Product = ""
	_, err = Normalize(f, evalDate)
	assert.ErrorIs(t, err, ErrUnsupportedProduct)
	assert.Equal(t, "premium estimation is not available for this policy", err.Error())
}
