// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/project/ticket-service/internal/apperror"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/internal/validators"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const traceIDKey = "x-trace-id"

var ErrHandlerPanicked = errors.New("rpc handler panicked")

// withTraceID attaches a child logger carrying the x-trace-id metadata value,
// or a fresh id, to the call context and returns the id in the header.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	// SetHeader fails outside a real server transport, e.g. in unit tests.
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	return next(l.WithContext(ctx), req)
}

// manageUnary is the gRPC counterpart of the REST request pipeline: it
// recovers panics, maps errors onto status codes and logs the execution
// time of the call.
func (h *Handler) manageUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
	start := time.Now()
	log := logger.FromContext(ctx)

	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("%w: %v\n%s", ErrHandlerPanicked, recovered, debug.Stack())
			resp = nil
		}
		err = toStatus(log, info.FullMethod, err)

		log.Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Int64("elapsed_ns", time.Since(start).Nanoseconds()).
			Msg("[RPC Process]")
	}()

	return next(ctx, req)
}

// toStatus converts err into a gRPC status error. Errors that already carry
// a status are returned unchanged.
func toStatus(log *logger.Logger, method string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var violationErr *validators.ViolationError
	if errors.As(err, &violationErr) {
		return status.Error(codes.InvalidArgument, violationErr.Summary())
	}

	if appErr, ok := apperror.As(err); ok {
		log.Error().Err(err).Str("method", method).Int("code", appErr.Code.Code).Msg(appErr.Message())
		return status.Error(grpcCode(appErr.HTTPStatus()), appErr.Message())
	}

	log.Error().Err(err).Str("method", method).Msg("unexpected rpc failure")
	return status.Error(codes.Internal, apperror.ServerError.Msg)
}

func grpcCode(httpStatus int) codes.Code {
	switch httpStatus {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusConflict:
		return codes.FailedPrecondition
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return codes.Unavailable
	case http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}
