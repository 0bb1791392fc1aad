package collector

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"labdesk/models"
)

// APIError is the single normalized shape every collector API failure is
// converted into before it reaches the presentation layer. No raw or
// untyped error may leak past this package.
type APIError struct {
	Message      string
	Status       int // 0 when no usable HTTP response was received
	Code         string
	Details      *models.APIErrorBody
	NetworkError bool
	ErrorID      string

	cause error
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// networkMarkers is the fixed marker list for the network-failure text
// heuristic. Substring matching is best-effort: false positives and
// negatives are accepted, and the list is pinned by tests rather than tuned.
var networkMarkers = []string{
	"network error",
	"failed to fetch",
	"timed out",
	"timeout",
	"offline",
	"internet",
	"econnaborted",
	"econnreset",
	"enotfound",
	"err_network",
	"invalid url",
	"no such host",
	"connection refused",
	"connection reset",
}

// looksLikeNetworkFailure reports whether an error text matches the marker
// list, case-insensitively.
func looksLikeNetworkFailure(message string) bool {
	lower := strings.ToLower(message)
	for _, marker := range networkMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// newErrorID synthesizes a correlation id from the current clock in a short
// radix form, so a failure stays traceable even when the server provided
// no identifier of its own.
func newErrorID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36)
}

// Classify converts an arbitrary failure into exactly one APIError.
// Classifying an APIError again returns the same instance unchanged.
func Classify(err error) *APIError {
	if err == nil {
		return &APIError{Message: genericMessage}
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	message := err.Error()
	classified := &APIError{
		Message:      message,
		NetworkError: looksLikeNetworkFailure(message),
		cause:        err,
	}

	// A transport-level timeout is a network failure even when its text
	// misses the marker list.
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		classified.NetworkError = true
	}

	return classified
}

// classifyResponse converts a non-2xx collector API response into an
// APIError, pulling the machine code, message and identifiers out of the
// error envelope when the body carries one.
func classifyResponse(status int, body []byte) *APIError {
	var envelope models.APIErrorBody
	_ = json.Unmarshal(body, &envelope)

	message := envelope.Message
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = genericMessage
	}

	errorID := envelope.ErrorID
	if errorID == "" {
		errorID = envelope.RequestID
	}
	if errorID == "" {
		errorID = newErrorID()
	}

	return &APIError{
		Message:      message,
		Status:       status,
		Code:         envelope.Code,
		Details:      &envelope,
		NetworkError: status == 0 || looksLikeNetworkFailure(message),
		ErrorID:      errorID,
	}
}

// IsNetworkError reports whether the failure was classified as a network
// failure.
func IsNetworkError(err error) bool {
	return Classify(err).NetworkError
}

// ErrorCode returns the machine error code carried by the failure, if any.
func ErrorCode(err error) string {
	return Classify(err).Code
}

// ErrorID returns the correlation id carried by the failure, if any.
func ErrorID(err error) string {
	return Classify(err).ErrorID
}

// MissingPatientIDs returns the patient identifiers the collector API
// reported as missing, defaulting to an empty list.
func MissingPatientIDs(err error) []string {
	apiErr := Classify(err)
	if apiErr.Details == nil || apiErr.Details.MissingPatientIDs == nil {
		return []string{}
	}
	return apiErr.Details.MissingPatientIDs
}
