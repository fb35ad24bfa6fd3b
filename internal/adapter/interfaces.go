// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the services the ticket service
// depends on.
//
// [UserServiceAdapter] fetches buyer profiles from the user service over
// HTTP. The base URL is either static or resolved through service discovery
// on every call, and the caller's bearer token is forwarded from the context
// so the user service authorises the request as the original caller.
//
// Failures are returned as *apperror.Error: [apperror.UserNotFound] for a 404
// and [apperror.UserServiceUnavailable] for everything else.
package adapter

import (
	"context"

	"github.com/project/ticket-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// UserServiceAdapter reads accounts from the user service.
type UserServiceAdapter interface {
	// GetUserProfile returns the profile of userID.
	GetUserProfile(ctx context.Context, userID string) (models.UserProfile, error)
}

// Resolver finds a live instance of a named service.
type Resolver interface {
	Resolve(ctx context.Context, serviceName string) (models.ServiceInstance, error)
}
