// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperror defines the application error catalogue of the ticket
// service and the error type the HTTP layer maps to responses.
//
// Every [Code] is a seven digit number whose first three digits are the HTTP
// status the error is reported with (4040001 → 404) and a message template
// with "{}" placeholders filled from the error arguments:
//
//	return apperror.New(apperror.EventNotFound, eventID)
//
// Handlers never pick HTTP statuses themselves; they return an [*Error] and
// the request pipeline derives status, code and message from it.
package apperror
