package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAffiliateNotFound references an affiliate id or document that does not exist.
	ErrAffiliateNotFound = errors.New("affiliate not found")
	// ErrApplicationNotFound references an application id that does not exist.
	ErrApplicationNotFound = errors.New("credit application not found")
	// ErrDocumentTaken signals a uniqueness violation on the affiliate document.
	ErrDocumentTaken = errors.New("affiliate with this document already exists")
	// ErrNotEvaluable signals an evaluation request against a non-PENDING
	// application or an ineligible affiliate.
	ErrNotEvaluable = errors.New("application cannot be evaluated")
	// ErrEvaluationConflict signals a lost race on the PENDING transition:
	// another request decided the application first.
	ErrEvaluationConflict = errors.New("application was already decided by a concurrent evaluation")
	// ErrAffiliateNotEligible signals a submission by an inactive affiliate or
	// one without the minimum seniority.
	ErrAffiliateNotEligible = errors.New("affiliate does not meet eligibility requirements")
)

// ValidationError reports a malformed or out-of-range attribute detected by a
// constructor. It is never coerced or recovered locally.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

// IsValidation reports whether err (or anything it wraps) is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
