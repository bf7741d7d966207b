package service

import (
	"fmt"
)

// ErrEmptyPopulation reports an assessment over zero users. Hosts should ask
// for input rather than show an error.
type ErrEmptyPopulation struct {
	error
}

func NewErrEmptyPopulation() *ErrEmptyPopulation {
	return &ErrEmptyPopulation{fmt.Errorf("population is empty: at least one user is required")}
}

type ErrInvalidAssessmentRequest struct {
	error
}

func NewErrInvalidAssessmentRequest(err error) *ErrInvalidAssessmentRequest {
	return &ErrInvalidAssessmentRequest{fmt.Errorf("invalid assessment request: %w", err)}
}

func (e *ErrInvalidAssessmentRequest) Unwrap() error {
	return e.error
}
