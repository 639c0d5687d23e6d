package discord

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/WelcomerTeam/Swyft/swyftjson"
)

var (
	ErrUnauthorized         = errors.New("improper token was passed")
	ErrUnsupportedImageType = errors.New("unsupported image type given")

	// ErrPrecondition is matched by every ArgumentError.
	ErrPrecondition = errors.New("precondition failed")
)

// ArgumentError is returned when a required argument is missing or malformed.
// It is always returned before any network activity takes place.
type ArgumentError struct {
	Argument string
	Reason   string
}

func NewArgumentError(argument, reason string) *ArgumentError {
	return &ArgumentError{Argument: argument, Reason: reason}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrPrecondition
}

// TransportError wraps a connectivity failure of the socket or the HTTP client.
type TransportError struct {
	Err error
	Op  string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError is returned for unexpected or malformed gateway frames.
type ProtocolError struct {
	Err  error
	Type string
	Op   GatewayOp
}

func (e *ProtocolError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("protocol error on op %d (%s): %v", e.Op, e.Type, e.Err)
	}

	return fmt.Sprintf("protocol error on op %d: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// RateLimitError is returned when discord responds with 429 Too Many Requests.
// Nothing is retried automatically; RetryAfter tells the caller how long to wait.
type RateLimitError struct {
	Bucket     string
	Message    string
	RetryAfter time.Duration
	Global     bool
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited (global: %t), retry after %s", e.Global, e.RetryAfter)
}

type tooManyRequests struct {
	Message    string  `json:"message"`
	RetryAfter float64 `json:"retry_after"`
	Global     bool    `json:"global"`
}

// NewRateLimitError builds a RateLimitError from a 429 response and its body.
func NewRateLimitError(resp *http.Response, body []byte) *RateLimitError {
	var payload tooManyRequests

	_ = swyftjson.Unmarshal(body, &payload)

	retryAfter := time.Duration(payload.RetryAfter * float64(time.Second))

	if retryAfter == 0 {
		if seconds, err := strconv.ParseFloat(resp.Header.Get("Retry-After"), 64); err == nil {
			retryAfter = time.Duration(seconds * float64(time.Second))
		}
	}

	return &RateLimitError{
		Bucket:     resp.Header.Get("X-RateLimit-Bucket"),
		Message:    payload.Message,
		RetryAfter: retryAfter,
		Global:     payload.Global || resp.Header.Get("X-RateLimit-Global") == "true",
	}
}

// RestError contains the error structure that is returned by discord.
type RestError struct {
	Request      *http.Request
	Response     *http.Response
	Message      *ErrorMessage
	ResponseBody []byte
}

// ErrorMessage represents a basic error message.
type ErrorMessage struct {
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
	Code    int32           `json:"code"`
}

func NewRestError(req *http.Request, resp *http.Response, body []byte) *RestError {
	var errorMessage ErrorMessage

	_ = swyftjson.Unmarshal(body, &errorMessage)

	return &RestError{
		Request:      req,
		Response:     resp,
		ResponseBody: body,
		Message:      &errorMessage,
	}
}

func (r *RestError) Error() string {
	if r.Message == nil || r.Message.Message == "" {
		return r.Response.Status
	}

	return fmt.Sprintf("%s: %s (code %d)", r.Response.Status, r.Message.Message, r.Message.Code)
}

// StatusCode returns the HTTP status of the failed request.
func (r *RestError) StatusCode() int {
	return r.Response.StatusCode
}
