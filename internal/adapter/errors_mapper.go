package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusSentinels lists the statuses the account service is known to use.
// Others still map to ErrProtocol, just without a status sentinel.
var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx and a *StatusError carrying the trimmed
// body otherwise.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	return &StatusError{
		StatusCode: code,
		Body:       strings.TrimSpace(string(resp.Body())),
		Err:        statusSentinels[code],
	}
}
