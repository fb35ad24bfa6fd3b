// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request payloads.
//
// Core concepts:
//   - Validator: generic interface validating arbitrary request structures.
//   - ViolationError: the error every failed validation is reported with; it
//     lists one Violation per failed field, keyed by the JSON field name.
//   - IsValidEmail / IsValidPassword: the account format rules shared with
//     the user service.
//
// Struct rules are declared with `validate` tags and evaluated by
// go-playground/validator. Two custom tags are registered: "email_addr" and
// "password", backed by the rules above.
package validators

import "context"

// Validator validates a request structure.
type Validator interface {
	// Validate returns nil for a valid value, a *ViolationError when one or
	// more constraints fail, or ErrUnsupportedType when obj is not a struct.
	Validate(ctx context.Context, obj any) error
}
