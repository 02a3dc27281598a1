package errors

import (
	"errors"
	"strings"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidToken       = errors.New("invalid verification token")
	ErrTokenExpired       = errors.New("verification token has expired")
	ErrAlreadyVerified    = errors.New("email already verified")
)

// ValidationError aggregates every field violation found during submission
// intake. Violations keep their check order so the joined message is stable.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// AsValidation unwraps err into a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
