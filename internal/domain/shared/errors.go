package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Plan errors

type PlanNotFoundError struct {
	*DomainError
	PlanID string
}

func NewPlanNotFoundError(planID string) *PlanNotFoundError {
	return &PlanNotFoundError{
		DomainError: NewDomainError(fmt.Sprintf("plan not found: %s", planID)),
		PlanID:      planID,
	}
}

type LegNotFoundError struct {
	*DomainError
	LegID string
}

func NewLegNotFoundError(legID string) *LegNotFoundError {
	return &LegNotFoundError{
		DomainError: NewDomainError(fmt.Sprintf("leg not found: %s", legID)),
		LegID:       legID,
	}
}

// DatasetError reports a handbook dataset that could not be loaded or failed
// schema validation
type DatasetError struct {
	*DomainError
	Source string
	Err    error
}

func NewDatasetError(source string, err error) *DatasetError {
	return &DatasetError{
		DomainError: NewDomainError(fmt.Sprintf("performance dataset %s: %v", source, err)),
		Source:      source,
		Err:         err,
	}
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}
