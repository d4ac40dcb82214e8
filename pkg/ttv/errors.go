package ttv

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// ConfigurationError reports a request that can never be sent: a missing or
// invalid required field, detected before any I/O happens.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("ttv: invalid %s: %s", e.Field, e.Reason)
}

// TransportError reports a request that never produced a usable API response:
// connection failures, timeouts, cancellation, or a non-2xx response whose body
// is not a well-formed error envelope. StatusCode is zero when no response was
// received at all.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("ttv: transport: %v", e.Err)
	}

	return fmt.Sprintf("ttv: transport: unexpected status %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a well-formed rejection from the API: the HTTP status plus the
// machine-readable code and human-readable message from the error envelope.
// RetryAfter is non-zero only when the response carried a Retry-After header.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("ttv: api error %d: %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("ttv: api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// IsAuthentication reports whether the request was rejected because of a
// missing or invalid API key.
func (e *APIError) IsAuthentication() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited reports whether the request hit the account's rate limit.
// When true, RetryAfter holds the server-suggested backoff if one was sent.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsQuotaExceeded reports whether the account's character or voice-slot quota
// is exhausted.
func (e *APIError) IsQuotaExceeded() bool {
	return e.StatusCode == http.StatusPaymentRequired || e.Code == "quota_exceeded" || e.Code == "voice_limit_reached"
}

// DecodeError reports a 2xx response whose body did not match the expected
// schema. Body holds the raw bytes for inspection.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ttv: decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// errorEnvelope covers both envelope shapes the API emits: the newer
// {"detail": {"status": ..., "message": ...}} and the flat {"message": ..., "code": ...}.
type errorEnvelope struct {
	Detail  *errorDetail `json:"detail"`
	Message string       `json:"message"`
	Code    string       `json:"code"`
}

type errorDetail struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// parseAPIError maps a non-2xx response to an *APIError when the body is a
// recognizable envelope, and to a *TransportError carrying the raw body text
// otherwise.
func parseAPIError(res *http.Response, body []byte) error {
	var envelope errorEnvelope
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return &TransportError{StatusCode: res.StatusCode, Body: string(body)}
	}

	apiErr := &APIError{StatusCode: res.StatusCode}
	switch {
	case envelope.Detail != nil && envelope.Detail.Message != "":
		apiErr.Message = envelope.Detail.Message
		apiErr.Code = envelope.Detail.Status
	case envelope.Message != "":
		apiErr.Message = envelope.Message
		apiErr.Code = envelope.Code
	default:
		return &TransportError{StatusCode: res.StatusCode, Body: string(body)}
	}

	if raw := res.Header.Get("Retry-After"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			apiErr.RetryAfter = time.Duration(secs) * time.Second
		}
	}

	return apiErr
}
