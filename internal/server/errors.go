// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	ErrListening           = errors.New("error listening")
	ErrServing             = errors.New("error serving")
	ErrShuttingDown        = errors.New("error shutting down")
)
