// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/project/ticket-service/internal/apperror"
	"github.com/project/ticket-service/internal/config"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/internal/utils"
	"github.com/project/ticket-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticResolver struct {
	instance models.ServiceInstance
	err      error
	calls    int
}

func (r *staticResolver) Resolve(_ context.Context, _ string) (models.ServiceInstance, error) {
	r.calls++
	return r.instance, r.err
}

// newTestAdapter creates an adapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) UserServiceAdapter {
	t.Helper()
	a, err := NewHTTPUserServiceAdapter(config.Adapter{
		UserServiceURL: serverURL,
		RequestTimeout: time.Second,
	}, nil, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── NewHTTPUserServiceAdapter ───────────────────────────────────────────────

func TestNewHTTPUserServiceAdapter_Errors(t *testing.T) {
	_, err := NewHTTPUserServiceAdapter(config.Adapter{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoUserServiceAddress)

	_, err = NewHTTPUserServiceAdapter(config.Adapter{UserServiceURL: "http://"}, nil, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "users:8080", want: "http://users:8080"},
		{in: " https://users.example/ ", want: "https://users.example"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── GetUserProfile ──────────────────────────────────────────────────────────

func TestGetUserProfile_Success_ForwardsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users/u-42", r.URL.Path)
		assert.Equal(t, "Bearer caller-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"SUCCESS","code":2000000,"message":"success","result":{"userId":"u-42","name":"Jane","email":"jane@example.com"}}`))
	}))
	defer srv.Close()

	ctx := utils.WithBearerToken(context.Background(), "caller-token")
	profile, err := newTestAdapter(t, srv.URL).GetUserProfile(ctx, "u-42")

	require.NoError(t, err)
	assert.Equal(t, models.UserProfile{UserID: "u-42", Name: "Jane", Email: "jane@example.com"}, profile)
}

func TestGetUserProfile_NoTokenInContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"result":{"name":"Jane"}}`))
	}))
	defer srv.Close()

	profile, err := newTestAdapter(t, srv.URL).GetUserProfile(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", profile.UserID)
}

func TestGetUserProfile_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode apperror.Code
		wantErr  error
	}{
		{name: "not found", status: http.StatusNotFound, wantCode: apperror.UserNotFound, wantErr: ErrUserNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, wantCode: apperror.UserServiceUnavailable, wantErr: ErrUnexpectedStatus},
		{name: "server error", status: http.StatusInternalServerError, wantCode: apperror.UserServiceUnavailable, wantErr: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).GetUserProfile(context.Background(), "u-1")
			require.Error(t, err)
			assert.True(t, apperror.HasCode(err, tt.wantCode))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetUserProfile_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetUserProfile(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.True(t, apperror.HasCode(err, apperror.UserServiceUnavailable))
}

func TestGetUserProfile_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).GetUserProfile(context.Background(), "u-1")
	assert.True(t, apperror.HasCode(err, apperror.UserServiceUnavailable))
}

func TestGetUserProfile_ResolvesThroughDiscovery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":{"userId":"u-1","name":"Jane","email":"jane@example.com"}}`))
	}))
	defer srv.Close()

	resolver := &staticResolver{instance: models.ServiceInstance{Name: "user-service", Address: srv.URL}}
	a, err := NewHTTPUserServiceAdapter(config.Adapter{UserServiceName: "user-service", RequestTimeout: time.Second}, resolver, logger.Nop())
	require.NoError(t, err)

	for range 2 {
		_, err = a.GetUserProfile(context.Background(), "u-1")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, resolver.calls)
}

func TestGetUserProfile_ResolveFails(t *testing.T) {
	resolver := &staticResolver{err: errors.New("no instances")}
	a, err := NewHTTPUserServiceAdapter(config.Adapter{UserServiceName: "user-service", RequestTimeout: time.Second}, resolver, logger.Nop())
	require.NoError(t, err)

	_, err = a.GetUserProfile(context.Background(), "u-1")
	assert.True(t, apperror.HasCode(err, apperror.UserServiceUnavailable))
}
