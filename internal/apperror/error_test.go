package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want int
	}{
		{name: "seven digits", code: Code{Code: 4040001}, want: http.StatusNotFound},
		{name: "negative", code: Code{Code: -4090002}, want: http.StatusConflict},
		{name: "exactly three digits", code: Code{Code: 503}, want: http.StatusServiceUnavailable},
		{name: "fewer than three digits", code: Code{Code: 42}, want: 42},
		{name: "four digits", code: Code{Code: 4011}, want: http.StatusUnauthorized},
		{name: "zero", code: Code{Code: 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestCatalogue_StatusesMatchPrefix(t *testing.T) {
	catalogue := map[Code]int{
		Success:                http.StatusOK,
		ServerError:            http.StatusInternalServerError,
		InvalidParams:          http.StatusBadRequest,
		TokenMissing:           http.StatusUnauthorized,
		TokenInvalid:           http.StatusUnauthorized,
		TokenExpired:           http.StatusUnauthorized,
		TicketForbidden:        http.StatusForbidden,
		RouteNotFound:          http.StatusNotFound,
		EventNotFound:          http.StatusNotFound,
		TicketNotFound:         http.StatusNotFound,
		UserNotFound:           http.StatusNotFound,
		EventAlreadyExists:     http.StatusConflict,
		TicketsSoldOut:         http.StatusConflict,
		TicketAlreadyCancelled: http.StatusConflict,
		EventAlreadyStarted:    http.StatusUnprocessableEntity,
		UserServiceUnavailable: http.StatusBadGateway,
		RequestTimeout:         http.StatusGatewayTimeout,
	}

	for code, status := range catalogue {
		assert.Equal(t, status, code.HTTPStatus(), "code %s", code)
	}
}

func TestError_Message(t *testing.T) {
	err := New(TicketsSoldOut, int64(12), 3)

	assert.Equal(t, "event 12 has fewer than 3 tickets left", err.Message())
	assert.Equal(t, err.Message(), err.Error())
	assert.Equal(t, http.StatusConflict, err.HTTPStatus())
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, UserServiceUnavailable)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "user service is unavailable", err.Message())
	assert.Equal(t, "user service is unavailable: connection refused", err.Error())
}

func TestError_IsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("service: %w", New(EventNotFound, 7))

	assert.ErrorIs(t, err, New(EventNotFound))
	assert.NotErrorIs(t, err, New(TicketNotFound, 7))
	assert.True(t, HasCode(err, EventNotFound))
	assert.False(t, HasCode(err, TicketNotFound))
	assert.False(t, HasCode(errors.New("plain"), EventNotFound))
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", New(TokenExpired))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, TokenExpired, appErr.Code)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
