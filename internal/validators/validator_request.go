package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/project/ticket-service/models"
)

const (
	TagEmail    = "email_addr"
	TagPassword = "password"
)

// RequestValidator validates request structures declared with `validate`
// tags. Violations are keyed by JSON field names.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a Validator with the custom tags registered.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation(TagEmail, func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation(TagPassword, func(fl validator.FieldLevel) bool {
		return IsValidPassword(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		violations := make([]models.Violation, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			violations = append(violations, models.Violation{
				Field:   fe.Field(),
				Message: violationMessage(fe),
			})
		}
		return NewViolationError(violations...)
	}

	return err
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case TagEmail:
		return "must be a valid e-mail address"
	case TagPassword:
		return "must be 8 to 15 characters with a digit, a lowercase and an uppercase letter"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}
