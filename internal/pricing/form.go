package pricing

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/lifecalc/internal/models"
)

const (
	// MinAgeDays is the youngest insurable age.
	MinAgeDays = 30
	// MaxAgeYears is the oldest insurable age in completed years.
	MaxAgeYears = 65

	// BirthDateLayout is the accepted birth date format.
	BirthDateLayout = "2006-01-02"
)

// Form is raw calculator input as typed by the user. Either BirthDate or
// Age must be set; BirthDate wins when both are.
type Form struct {
	Product    string
	BirthDate  string
	Age        string
	Term       string
	SumAssured string
	Frequency  string
	Riders     models.Riders
}

// Input is a validated, typed calculation request.
type Input struct {
	Product     Product
	Age         int
	AgeDays     int
	Term        int
	SumAssured  int64
	Frequency   models.Frequency
	Riders      models.Riders
	EvaluatedAt time.Time
}

// Normalize parses and validates f as of now. Every failure is an
// *UnsupportedProductError or a *ValidationError naming the offending field.
func Normalize(f Form, now time.Time) (Input, error) {
	product := Product(strings.TrimSpace(f.Product))
	table, err := TableFor(product)
	if err != nil {
		return Input{}, err
	}

	in := Input{Product: product, Riders: f.Riders, EvaluatedAt: now}

	in.Age, in.AgeDays, err = parseAge(f.BirthDate, f.Age, now)
	if err != nil {
		return Input{}, err
	}

	in.Term, err = strconv.Atoi(strings.TrimSpace(f.Term))
	if err != nil {
		return Input{}, invalid(FieldTerm, "term must be a whole number of years")
	}
	if !table.SupportsTerm(in.Term) {
		lo, hi := table.TermRange()
		return Input{}, invalid(FieldTerm, "term must be between %d and %d years, got %d", lo, hi, in.Term)
	}

	in.SumAssured, err = strconv.ParseInt(strings.TrimSpace(f.SumAssured), 10, 64)
	if err != nil {
		return Input{}, invalid(FieldSumAssured, "sum assured must be a whole number")
	}
	if in.SumAssured <= 0 {
		return Input{}, invalid(FieldSumAssured, "sum assured must be positive")
	}

	in.Frequency, err = models.ParseFrequency(f.Frequency)
	if err != nil {
		return Input{}, invalid(FieldFrequency, "%s", err.Error())
	}

	return in, nil
}

func parseAge(birthDate, age string, now time.Time) (years, days int, err error) {
	birthDate, age = strings.TrimSpace(birthDate), strings.TrimSpace(age)

	switch {
	case birthDate != "":
		b, perr := time.Parse(BirthDateLayout, birthDate)
		if perr != nil {
			return 0, 0, invalid(FieldBirthDate, "birth date must look like %s", BirthDateLayout)
		}
		years, days = AgeAt(b, now)
		if days < 0 {
			return 0, 0, invalid(FieldBirthDate, "birth date is in the future")
		}
		if err := checkAge(FieldBirthDate, years, days); err != nil {
			return 0, 0, err
		}
		return years, days, nil

	case age != "":
		years, perr := strconv.Atoi(age)
		if perr != nil {
			return 0, 0, invalid(FieldAge, "age must be a whole number of years")
		}
		if years < 0 {
			return 0, 0, invalid(FieldAge, "age cannot be negative")
		}
		// whole years only: age 0 cannot prove the 30 day minimum
		days = years * 365
		if err := checkAge(FieldAge, years, days); err != nil {
			return 0, 0, err
		}
		return years, days, nil

	default:
		return 0, 0, invalid(FieldBirthDate, "birth date or age is required")
	}
}

func checkAge(field string, years, days int) error {
	if days < MinAgeDays {
		return invalid(field, "minimum age is %d days", MinAgeDays)
	}
	if years > MaxAgeYears {
		return invalid(field, "maximum age is %d years", MaxAgeYears)
	}
	return nil
}

// AgeAt returns the completed years and whole days between birth and now,
// both measured on calendar dates. Days is negative when birth is after now.
func AgeAt(birth, now time.Time) (years, days int) {
	b := time.Date(birth.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	days = int(n.Sub(b).Hours() / 24)

	years = n.Year() - b.Year()
	if n.Month() < b.Month() || (n.Month() == b.Month() && n.Day() < b.Day()) {
		years--
	}
	return years, days
}
