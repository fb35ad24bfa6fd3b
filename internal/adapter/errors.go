package adapter

import "errors"

var (
	ErrNoUserServiceAddress = errors.New("neither user service URL nor resolver configured")
	ErrUserNotFound         = errors.New("user not found in user service")
	ErrUnexpectedStatus     = errors.New("unexpected user service response status")
	ErrMalformedResponse    = errors.New("malformed user service response")
)
