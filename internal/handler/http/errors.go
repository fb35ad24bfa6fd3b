// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrControllerPanicked wraps the value a controller panicked with.
	ErrControllerPanicked = errors.New("controller panicked")

	// ErrUnexpectedResponseType is logged when a controller returns a result
	// that is not an APIResponse. The result is discarded.
	ErrUnexpectedResponseType = errors.New("controller returned a non APIResponse result")
)

// unexpectedErrorMessage is the client message of failures that are neither
// validation nor application errors. The placeholder takes the error id
// written to the log.
const unexpectedErrorMessage = "server error, please contact the administrator, error id: %s"
