package common

// MaxSavedCalculations is the per-user cap on saved premium calculations.
const MaxSavedCalculations = 6
