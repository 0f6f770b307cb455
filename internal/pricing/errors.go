package pricing

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation error")
	// ErrUnsupportedProduct matches every *UnsupportedProductError.
	ErrUnsupportedProduct = errors.New("unsupported product")
)

// Input fields named by ValidationError.Field.
const (
	FieldProduct    = "product"
	FieldBirthDate  = "birthDate"
	FieldAge        = "age"
	FieldTerm       = "term"
	FieldSumAssured = "sumAssured"
	FieldFrequency  = "paymentFrequency"
)

// ValidationError rejects one input field. The caller can fix it by asking
// the user again.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedProductError means the engine has no rates for the product.
// No change to the other inputs can fix it.
type UnsupportedProductError struct {
	Product string
}

func (e *UnsupportedProductError) Error() string {
	if e.Product == "" {
		return "premium estimation is not available for this policy"
	}
	return fmt.Sprintf("premium estimation is not available for product %q", e.Product)
}

func (e *UnsupportedProductError) Is(target error) bool {
	return target == ErrUnsupportedProduct
}
