package http

import (
	"net/http"
	"strconv"

	"github.com/project/ticket-service/internal/apperror"
	"github.com/project/ticket-service/internal/utils"
	"github.com/project/ticket-service/internal/validators"
	"github.com/project/ticket-service/models"
)

// Controller is the body of a REST endpoint. It returns the payload wrapped
// in a *models.APIResponse, or an error that manage turns into an error
// envelope.
type Controller func(r *http.Request) (any, error)

// ControllerOption configures how manage runs a controller.
type ControllerOption func(*controllerOptions)

type controllerOptions struct {
	skipTokenVerification bool
}

// SkipTokenVerification marks an endpoint as public: manage runs the
// controller without reading the Authorization header.
func SkipTokenVerification() ControllerOption {
	return func(o *controllerOptions) {
		o.skipTokenVerification = true
	}
}

func newControllerOptions(opts ...ControllerOption) controllerOptions {
	var options controllerOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// requestUserID returns the id of the caller decoded by manage.
func requestUserID(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", apperror.New(apperror.TokenMissing)
	}
	return userID, nil
}

// decodeBody reads the JSON body of r into v. Malformed bodies are reported
// as a violation of the "body" field.
func decodeBody(r *http.Request, v any) error {
	if err := utils.DecodeJSON(r.Body, v); err != nil {
		return validators.NewViolationError(models.Violation{Field: "body", Message: err.Error()})
	}
	return nil
}

// queryInt reads an integer query parameter, returning def when it is
// absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validators.NewViolationError(models.Violation{Field: name, Message: "must be an integer"})
	}
	return value, nil
}
