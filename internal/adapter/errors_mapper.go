package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/project/ticket-service/internal/apperror"
)

// mapHTTPError converts a non-2xx user service response into an
// *apperror.Error. A 2xx response maps to nil.
func mapHTTPError(resp *resty.Response, userID string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return apperror.Wrap(fmt.Errorf("%w: %s", ErrUserNotFound, body), apperror.UserNotFound, userID)
	default:
		return apperror.Wrap(fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body), apperror.UserServiceUnavailable)
	}
}
