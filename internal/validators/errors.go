package validators

import (
	"errors"
	"strings"

	"github.com/project/ticket-service/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ViolationError reports every constraint a value failed.
type ViolationError struct {
	Violations []models.Violation
}

// NewViolationError builds a *ViolationError from field/message pairs.
func NewViolationError(violations ...models.Violation) *ViolationError {
	return &ViolationError{Violations: violations}
}

// Summary joins the violations as "field: message" separated by "; ".
func (e *ViolationError) Summary() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return strings.Join(parts, "; ")
}

func (e *ViolationError) Error() string {
	return "validation failed: " + e.Summary()
}
