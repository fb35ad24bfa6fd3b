package grpc

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"

	"github.com/project/ticket-service/internal/apperror"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/internal/mock"
	"github.com/project/ticket-service/internal/service"
	"github.com/project/ticket-service/internal/validators"
	"github.com/project/ticket-service/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// ─── helpers ───

func newTestServices(t *testing.T) *service.Services {
	appInfo := mock.NewMockAppInfoService(gomock.NewController(t))
	appInfo.EXPECT().Health(gomock.Any()).Return(models.HealthResult{Service: "ticket-service"}).AnyTimes()
	return &service.Services{AppInfoService: appInfo}
}

// startHealthServer serves h over an in-memory listener and returns a
// health client connected to it.
func startHealthServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(h.ServerOptions()...)
	h.Register(srv)

	go func() { _ = srv.Serve(listener) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/ticket.v1.Test/Run"}

// ─── health service ───

func TestHealth_Serving(t *testing.T) {
	h := NewHandler(newTestServices(t), logger.Nop())
	client := startHealthServer(t, h)

	for _, name := range []string{"", "ticket-service"} {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
		require.NoError(t, err, name)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus(), name)
	}
}

func TestHealth_UnknownService(t *testing.T) {
	h := NewHandler(newTestServices(t), logger.Nop())
	client := startHealthServer(t, h)

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "payments"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestHealth_Shutdown(t *testing.T) {
	h := NewHandler(newTestServices(t), logger.Nop())
	client := startHealthServer(t, h)

	h.Shutdown()

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestHealth_TraceIDEchoed(t *testing.T) {
	h := NewHandler(newTestServices(t), logger.Nop())
	client := startHealthServer(t, h)

	ctx := metadata.AppendToOutgoingContext(context.Background(), traceIDKey, "trace-7")
	var header metadata.MD
	_, err := client.Check(ctx, &healthpb.HealthCheckRequest{}, grpc.Header(&header))

	require.NoError(t, err)
	assert.Equal(t, []string{"trace-7"}, header.Get(traceIDKey))
}

func TestHealth_NilServices(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startHealthServer(t, h)

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

// ─── manageUnary ───

func TestManageUnary_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantMsg  string
	}{
		{name: "no error", err: nil, wantCode: codes.OK},
		{name: "violation", err: validators.NewViolationError(models.Violation{Field: "quantity", Message: "is required"}), wantCode: codes.InvalidArgument, wantMsg: "quantity: is required"},
		{name: "token missing", err: apperror.New(apperror.TokenMissing), wantCode: codes.Unauthenticated},
		{name: "forbidden", err: apperror.New(apperror.TicketForbidden, "t-1"), wantCode: codes.PermissionDenied},
		{name: "not found", err: apperror.New(apperror.EventNotFound, 3), wantCode: codes.NotFound, wantMsg: "event 3 was not found"},
		{name: "conflict", err: apperror.New(apperror.TicketsSoldOut, 3, 2), wantCode: codes.FailedPrecondition},
		{name: "status passes through", err: status.Error(codes.Aborted, "aborted"), wantCode: codes.Aborted, wantMsg: "aborted"},
		{name: "unexpected", err: errors.New("db exploded"), wantCode: codes.Internal, wantMsg: apperror.ServerError.Msg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(nil, logger.Nop())

			_, err := h.manageUnary(context.Background(), nil, testInfo, func(ctx context.Context, req any) (any, error) {
				return nil, tt.err
			})

			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, status.Convert(err).Message())
			}
		})
	}
}

func TestManageUnary_Panic(t *testing.T) {
	h := NewHandler(nil, logger.Nop())

	resp, err := h.manageUnary(context.Background(), nil, testInfo, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})

	assert.Nil(t, resp)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestManageUnary_LogsTiming(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	var logs bytes.Buffer
	ctx := zerolog.New(&logs).WithContext(context.Background())

	resp, err := h.manageUnary(ctx, "req", testInfo, func(ctx context.Context, req any) (any, error) {
		return "resp", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "resp", resp)
	assert.Contains(t, logs.String(), `"message":"[RPC Process]"`)
	assert.Contains(t, logs.String(), `"method":"/ticket.v1.Test/Run"`)
	assert.Contains(t, logs.String(), `"code":"OK"`)
}

func TestGRPCCode(t *testing.T) {
	assert.Equal(t, codes.Unavailable, grpcCode(503))
	assert.Equal(t, codes.DeadlineExceeded, grpcCode(504))
	assert.Equal(t, codes.Internal, grpcCode(500))
	assert.Equal(t, codes.Internal, grpcCode(418))
}
