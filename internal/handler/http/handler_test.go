package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/project/ticket-service/internal/apperror"
	"github.com/project/ticket-service/internal/config"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/internal/mock"
	"github.com/project/ticket-service/internal/service"
	"github.com/project/ticket-service/internal/utils"
	"github.com/project/ticket-service/internal/validators"
	"github.com/project/ticket-service/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type fixedID string

func (f fixedID) Generate() string { return string(f) }

type handlerMocks struct {
	auth    *mock.MockAuthService
	events  *mock.MockEventService
	tickets *mock.MockTicketService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		auth:    mock.NewMockAuthService(ctrl),
		events:  mock.NewMockEventService(ctrl),
		tickets: mock.NewMockTicketService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    m.auth,
		EventService:   m.events,
		TicketService:  m.tickets,
		AppInfoService: m.appInfo,
	}, config.Server{}, logger.Nop())
	h.errorIDs = fixedID("err-1")

	return h, m
}

// serveManaged runs controller through manage with a request whose context
// logger writes to logs.
func serveManaged(h *Handler, controller Controller, req *http.Request, logs *bytes.Buffer, opts ...ControllerOption) *httptest.ResponseRecorder {
	if logs != nil {
		l := zerolog.New(logs)
		req = req.WithContext(l.WithContext(req.Context()))
	}

	rr := httptest.NewRecorder()
	h.manage("TestController.run", controller, opts...).ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func publicRequest() *http.Request {
	return httptest.NewRequest(http.MethodGet, "/test", nil)
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	h := NewHandler(services, config.Server{CORSAllowedOrigins: []string{"https://example.com"}}, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Equal(t, []string{"https://example.com"}, h.corsAllowedOrigins)
	assert.NotNil(t, h.registry)
	assert.NotNil(t, h.controllerDuration)
}

// ─────────────────────────────────────────────
// manage: result normalization
// ─────────────────────────────────────────────

func TestManage_Success(t *testing.T) {
	tests := []struct {
		name       string
		result     any
		wantResult any
	}{
		{name: "pointer envelope", result: models.NewAPIResponse(map[string]int{"id": 7}), wantResult: map[string]any{"id": float64(7)}},
		{name: "value envelope", result: models.APIResponse{Result: []string{"a"}}, wantResult: []any{"a"}},
		{name: "envelope without result", result: &models.APIResponse{}, wantResult: map[string]any{}},
		{name: "nil result", result: nil, wantResult: map[string]any{}},
		{name: "nil envelope pointer", result: (*models.APIResponse)(nil), wantResult: map[string]any{}},
		{name: "foreign result is discarded", result: map[string]string{"secret": "x"}, wantResult: map[string]any{}},
		{name: "prefilled status is overwritten", result: &models.APIResponse{Status: "X", Code: 1, Message: "m"}, wantResult: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rr := serveManaged(h, func(r *http.Request) (any, error) {
				return tt.result, nil
			}, publicRequest(), nil, SkipTokenVerification())

			assert.Equal(t, http.StatusOK, rr.Code)
			body := decodeEnvelope(t, rr)
			assert.Equal(t, apperror.StatusSuccess, body["status"])
			assert.Equal(t, float64(apperror.Success.Code), body["code"])
			assert.Equal(t, apperror.Success.Msg, body["message"])
			assert.Equal(t, tt.wantResult, body["result"])
		})
	}
}

// ─────────────────────────────────────────────
// manage: token verification
// ─────────────────────────────────────────────

func TestManage_TokenPropagated(t *testing.T) {
	h, m := newTestHandler(t)

	m.auth.EXPECT().DecodeBearerToken(gomock.Any(), "Bearer abc").
		Return(models.Token{UserID: "u-1", SignedString: "abc"}, nil)

	var gotUserID, gotToken string
	req := publicRequest()
	req.Header.Set("Authorization", "Bearer abc")

	rr := serveManaged(h, func(r *http.Request) (any, error) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		gotToken, _ = utils.GetBearerTokenFromContext(r.Context())
		return nil, nil
	}, req, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "u-1", gotUserID)
	assert.Equal(t, "abc", gotToken)
}

func TestManage_TokenRejected(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus int
	}{
		{name: "missing", err: apperror.New(apperror.TokenMissing), wantCode: apperror.TokenMissing.Code, wantStatus: http.StatusUnauthorized},
		{name: "invalid", err: apperror.New(apperror.TokenInvalid), wantCode: apperror.TokenInvalid.Code, wantStatus: http.StatusUnauthorized},
		{name: "expired", err: apperror.New(apperror.TokenExpired), wantCode: apperror.TokenExpired.Code, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().DecodeBearerToken(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.err)

			called := false
			rr := serveManaged(h, func(r *http.Request) (any, error) {
				called = true
				return nil, nil
			}, publicRequest(), nil)

			assert.False(t, called, "controller must not run without a valid token")
			assert.Equal(t, tt.wantStatus, rr.Code)
			body := decodeEnvelope(t, rr)
			assert.Equal(t, apperror.StatusError, body["status"])
			assert.Equal(t, float64(tt.wantCode), body["code"])
			assert.Equal(t, map[string]any{}, body["result"])
		})
	}
}

func TestManage_SkipTokenVerification(t *testing.T) {
	h, _ := newTestHandler(t)

	// the auth mock has no expectations: any call fails the test
	rr := serveManaged(h, func(r *http.Request) (any, error) {
		_, ok := utils.GetUserIDFromContext(r.Context())
		assert.False(t, ok)
		return nil, nil
	}, publicRequest(), nil, SkipTokenVerification())

	assert.Equal(t, http.StatusOK, rr.Code)
}

// ─────────────────────────────────────────────
// manage: error mapping
// ─────────────────────────────────────────────

func TestManage_ViolationError(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serveManaged(h, func(r *http.Request) (any, error) {
		return nil, validators.NewViolationError(
			models.Violation{Field: "quantity", Message: "must be at most 10"},
			models.Violation{Field: "event_id", Message: "is required"},
		)
	}, publicRequest(), nil, SkipTokenVerification())

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeEnvelope(t, rr)
	assert.Equal(t, apperror.StatusError, body["status"])
	assert.Equal(t, float64(apperror.InvalidParams.Code), body["code"])
	assert.Equal(t, "invalid parameters: quantity: must be at most 10; event_id: is required", body["message"])
	assert.Equal(t, map[string]any{
		"violations": []any{
			map[string]any{"field": "quantity", "message": "must be at most 10"},
			map[string]any{"field": "event_id", "message": "is required"},
		},
	}, body["result"])
}

func TestManage_AppError(t *testing.T) {
	h, _ := newTestHandler(t)
	var logs bytes.Buffer

	rr := serveManaged(h, func(r *http.Request) (any, error) {
		return nil, apperror.Wrap(errors.New("cause"), apperror.TicketsSoldOut, int64(3), 2)
	}, publicRequest(), &logs, SkipTokenVerification())

	assert.Equal(t, http.StatusConflict, rr.Code)
	body := decodeEnvelope(t, rr)
	assert.Equal(t, float64(apperror.TicketsSoldOut.Code), body["code"])
	assert.Equal(t, "event 3 has fewer than 2 tickets left", body["message"])
	assert.Equal(t, map[string]any{}, body["result"])
	assert.Contains(t, logs.String(), `"level":"error"`)
	assert.NotContains(t, rr.Body.String(), "cause")
}

func TestManage_UnexpectedError(t *testing.T) {
	h, _ := newTestHandler(t)
	var logs bytes.Buffer

	rr := serveManaged(h, func(r *http.Request) (any, error) {
		return nil, errors.New("db exploded")
	}, publicRequest(), &logs, SkipTokenVerification())

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeEnvelope(t, rr)
	assert.Equal(t, float64(apperror.ServerError.Code), body["code"])
	assert.Equal(t, "server error, please contact the administrator, error id: err-1", body["message"])
	assert.NotContains(t, rr.Body.String(), "db exploded")
	assert.Contains(t, logs.String(), `"error_id":"err-1"`)
	assert.Contains(t, logs.String(), "db exploded")
}

func TestManage_DeadlineExceeded(t *testing.T) {
	h, _ := newTestHandler(t)
	var logs bytes.Buffer

	rr := serveManaged(h, func(r *http.Request) (any, error) {
		return nil, fmt.Errorf("reading events: %w", context.DeadlineExceeded)
	}, publicRequest(), &logs, SkipTokenVerification())

	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	body := decodeEnvelope(t, rr)
	assert.Equal(t, float64(apperror.RequestTimeout.Code), body["code"])
	assert.Equal(t, "request GET /test timed out", body["message"])
	assert.Contains(t, logs.String(), `"outcome":"timeout"`)
}

func TestManage_Panic(t *testing.T) {
	h, _ := newTestHandler(t)
	var logs bytes.Buffer

	rr := serveManaged(h, func(r *http.Request) (any, error) {
		panic("boom")
	}, publicRequest(), &logs, SkipTokenVerification())

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeEnvelope(t, rr)
	assert.Equal(t, float64(apperror.ServerError.Code), body["code"])
	assert.Contains(t, logs.String(), ErrControllerPanicked.Error())
	assert.Contains(t, logs.String(), "[API Process]")
}

func TestManage_AbortHandlerPanicPropagates(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serveManaged(h, func(r *http.Request) (any, error) {
			panic(http.ErrAbortHandler)
		}, publicRequest(), nil, SkipTokenVerification())
	})
}

// ─────────────────────────────────────────────
// manage: timing
// ─────────────────────────────────────────────

func TestManage_TimingLoggedOncePerRequest(t *testing.T) {
	tests := []struct {
		name       string
		controller Controller
	}{
		{name: "success", controller: func(r *http.Request) (any, error) { return nil, nil }},
		{name: "app error", controller: func(r *http.Request) (any, error) { return nil, apperror.New(apperror.EventNotFound, 1) }},
		{name: "unexpected error", controller: func(r *http.Request) (any, error) { return nil, errors.New("x") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)
			var logs bytes.Buffer

			serveManaged(h, tt.controller, publicRequest(), &logs, SkipTokenVerification())

			assert.Equal(t, 1, bytes.Count(logs.Bytes(), []byte(`"message":"[API Process]"`)))
			assert.Contains(t, logs.String(), `"controller":"TestController.run"`)
			assert.Contains(t, logs.String(), `"elapsed_ns":`)
		})
	}
}
