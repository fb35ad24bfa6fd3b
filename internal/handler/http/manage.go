package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/project/ticket-service/internal/apperror"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/internal/utils"
	"github.com/project/ticket-service/internal/validators"
	"github.com/project/ticket-service/models"
)

// emptyResult is marshaled as {}.
var emptyResult = struct{}{}

// manage wraps controller into the request pipeline every REST endpoint
// goes through:
//
//  1. unless SkipTokenVerification is given, the Authorization header is
//     decoded and the caller's user id and bearer token are put into the
//     request context;
//  2. the controller runs;
//  3. its result is normalized into a *models.APIResponse and written with
//     status 200, or its error is mapped onto an error envelope;
//  4. the execution time is logged and observed in the
//     ticket_controller_duration_seconds histogram.
//
// name labels the log entries and the metric of the endpoint.
func (h *Handler) manage(name string, controller Controller, opts ...ControllerOption) http.HandlerFunc {
	options := newControllerOptions(opts...)

	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		outcome := outcomeSuccess
		log := logger.FromRequest(r)

		defer func() {
			elapsed := time.Since(start)
			log.Info().
				Str("controller", name).
				Str("outcome", outcome).
				Int64("elapsed_ns", elapsed.Nanoseconds()).
				Msg("[API Process]")
			h.controllerDuration.WithLabelValues(name, outcome).Observe(elapsed.Seconds())
		}()

		if !options.skipTokenVerification {
			token, err := h.services.AuthService.DecodeBearerToken(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				outcome = h.writeError(w, r, name, err)
				return
			}

			ctx := utils.WithUserID(r.Context(), token.UserID)
			ctx = utils.WithBearerToken(ctx, token.SignedString)
			r = r.WithContext(ctx)
		}

		result, err := invoke(controller, r)
		if err != nil {
			outcome = h.writeError(w, r, name, err)
			return
		}

		response, ok := normalize(result)
		if !ok {
			log.Warn().Err(ErrUnexpectedResponseType).Str("controller", name).Str("type", fmt.Sprintf("%T", result)).Send()
		}
		response.Status = apperror.StatusSuccess
		response.Code = apperror.Success.Code
		response.Message = apperror.Success.Msg

		h.writeResponse(w, r, response, http.StatusOK)
	}
}

// invoke runs controller and turns a panic into an error. http.ErrAbortHandler
// is re-raised so the server can abort the response.
func invoke(controller Controller, r *http.Request) (result any, err error) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}
		if recovered == http.ErrAbortHandler {
			panic(recovered)
		}
		err = fmt.Errorf("%w: %v\n%s", ErrControllerPanicked, recovered, debug.Stack())
	}()

	return controller(r)
}

// normalize returns the APIResponse held by result. Any other result,
// including nil, is replaced by an envelope with an empty Result. ok is
// false when a value of a foreign type was discarded.
func normalize(result any) (response *models.APIResponse, ok bool) {
	switch v := result.(type) {
	case *models.APIResponse:
		if v != nil {
			response = v
		}
	case models.APIResponse:
		response = &v
	case nil:
	default:
		return models.NewAPIResponse(emptyResult), false
	}

	if response == nil {
		return models.NewAPIResponse(emptyResult), true
	}
	if response.Result == nil {
		response.Result = emptyResult
	}
	return response, true
}

// writeError maps err onto an error envelope and returns the outcome label
// of the metric.
//
//   - *validators.ViolationError: 400 with the violations in Result.
//   - *apperror.Error: the status and message of its code.
//   - an expired request deadline: 504 RequestTimeout.
//   - anything else: 500 with a generated error id that is also logged.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, name string, err error) string {
	log := logger.FromRequest(r)

	var violationErr *validators.ViolationError
	if errors.As(err, &violationErr) {
		log.Debug().Err(err).Str("controller", name).Msg("request rejected")
		h.writeResponse(w, r, &models.APIResponse{
			Status:  apperror.StatusError,
			Code:    apperror.InvalidParams.Code,
			Message: utils.FormatMessage(apperror.InvalidParams.Msg, violationErr.Summary()),
			Result:  models.ViolationsResult{Violations: violationErr.Violations},
		}, apperror.InvalidParams.HTTPStatus())
		return outcomeRejected
	}

	if appErr, ok := apperror.As(err); ok {
		log.Error().Err(err).Str("controller", name).Int("code", appErr.Code.Code).Msg(appErr.Message())
		h.writeResponse(w, r, errorResponse(appErr.Code.Code, appErr.Message()), httpStatus(appErr.HTTPStatus()))
		return outcomeAppError
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(r.Context().Err(), context.DeadlineExceeded) {
		timeoutErr := apperror.Wrap(err, apperror.RequestTimeout, r.Method, r.URL.Path)
		log.Warn().Err(err).Str("controller", name).Msg(timeoutErr.Message())
		h.writeResponse(w, r, errorResponse(timeoutErr.Code.Code, timeoutErr.Message()), timeoutErr.HTTPStatus())
		return outcomeTimeout
	}

	errorID := h.errorIDs.Generate()
	log.Error().Err(err).Str("controller", name).Str("error_id", errorID).Msg("unexpected controller failure")
	h.writeResponse(w, r, errorResponse(apperror.ServerError.Code, fmt.Sprintf(unexpectedErrorMessage, errorID)), http.StatusInternalServerError)
	return outcomeUnhandled
}

func (h *Handler) writeResponse(w http.ResponseWriter, r *http.Request, response *models.APIResponse, status int) {
	if _, err := utils.WriteJSON(w, response, status); err != nil {
		logger.FromRequest(r).Err(err).Int("code", response.Code).Msg("writing response failed")
	}
}

func errorResponse(code int, message string) *models.APIResponse {
	return &models.APIResponse{
		Status:  apperror.StatusError,
		Code:    code,
		Message: message,
		Result:  emptyResult,
	}
}

// httpStatus falls back to 500 for codes whose prefix is not an HTTP
// status.
func httpStatus(status int) int {
	if status < 100 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}
