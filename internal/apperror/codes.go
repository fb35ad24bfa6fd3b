package apperror

import (
	"strconv"
)

// Response statuses written into the envelope of every managed endpoint.
const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

// Code is an entry of the error catalogue.
type Code struct {
	// Code is the numeric code. Its first three digits are the HTTP status.
	Code int

	// Msg is the message template. "{}" placeholders are replaced with the
	// arguments of the error in order.
	Msg string
}

// HTTPStatus returns the first three digits of the absolute code value.
// Codes with three or fewer digits are returned as is.
func (c Code) HTTPStatus() int {
	n := c.Code
	if n < 0 {
		n = -n
	}

	digits := strconv.Itoa(n)
	if len(digits) <= 3 {
		return n
	}

	status, _ := strconv.Atoi(digits[:3])
	return status
}

// String returns the numeric code.
func (c Code) String() string {
	return strconv.Itoa(c.Code)
}

var (
	Success     = Code{2000000, "success"}
	ServerError = Code{5000000, "internal server error"}

	InvalidParams = Code{4000001, "invalid parameters: {}"}

	TokenMissing = Code{4010001, "authorization token is missing"}
	TokenInvalid = Code{4010002, "authorization token is invalid"}
	TokenExpired = Code{4010003, "authorization token has expired"}

	TicketForbidden = Code{4030001, "ticket {} belongs to another user"}

	RouteNotFound  = Code{4040000, "route {} {} was not found"}
	EventNotFound  = Code{4040001, "event {} was not found"}
	TicketNotFound = Code{4040002, "ticket {} was not found"}
	UserNotFound   = Code{4040003, "user {} was not found"}

	EventAlreadyExists     = Code{4090001, "event {} starting at {} already exists"}
	TicketsSoldOut         = Code{4090002, "event {} has fewer than {} tickets left"}
	TicketAlreadyCancelled = Code{4090003, "ticket {} is already cancelled"}

	EventAlreadyStarted = Code{4220001, "event {} has already started"}

	UserServiceUnavailable = Code{5020001, "user service is unavailable"}

	RequestTimeout = Code{5040001, "request {} {} timed out"}
)
