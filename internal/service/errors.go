// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenCreationFailed   = errors.New("token creation failed")

	ErrCreatingEvent    = errors.New("event creation ended with error")
	ErrReadingEvents    = errors.New("reading events ended with error")
	ErrReservingSeats   = errors.New("seat reservation ended with error")
	ErrReadingTickets   = errors.New("reading tickets ended with error")
	ErrCancellingTicket = errors.New("ticket cancellation ended with error")
)
