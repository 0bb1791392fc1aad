package collector

// Fixed user-facing sentences for the non-code message tiers.
const (
	networkMessage      = "Network issue. Please check your connection and try again."
	serverMessage       = "Service is temporarily unavailable. Please try again later."
	notFoundMessage     = "The requested booking could not be found."
	unauthorizedMessage = "Your session has expired. Please sign in again."
	forbiddenMessage    = "You do not have access to this resource."
	rateLimitedMessage  = "Too many requests. Please wait a moment and try again."
	genericMessage      = "Something went wrong. Please try again."
)

// codeMessages is the closed mapping from collector API machine codes to one
// fixed human sentence each. Unknown codes fall through to the status tiers.
var codeMessages = map[string]string{
	"invalid_booking_id":    "The booking reference is invalid.",
	"invalid_collector_id":  "The collector reference is invalid.",
	"booking_not_found":     "The booking could not be found.",
	"collector_not_found":   "The collector could not be found.",
	"collector_inactive":    "Collector is inactive.",
	"collector_locked":      "Collector account is locked. Please contact support.",
	"patients_required":     "Add patient details before performing this action.",
	"patient_ids_missing":   "Some patient identifiers are missing. Update the patients first.",
	"unsupported_file_type": "This file type is not supported.",
	"file_too_large":        "The file exceeds the maximum allowed size.",
	"scan_failed":           "The uploaded document could not be scanned.",
	"validation_failed":     "The submitted data failed validation.",
	"request_timeout":       "The request timed out. Please try again.",
}

// ResolveMessage picks the single user-facing sentence for a structured
// error, in strict priority order: network flag, known machine code, 5xx,
// dedicated 404/401/403/429 messages, then the raw message as a last resort.
func ResolveMessage(apiErr *APIError) string {
	if apiErr == nil {
		return genericMessage
	}
	if apiErr.NetworkError {
		return networkMessage
	}
	if msg, ok := codeMessages[apiErr.Code]; ok {
		return msg
	}
	switch {
	case apiErr.Status >= 500:
		return serverMessage
	case apiErr.Status == 404:
		return notFoundMessage
	case apiErr.Status == 401:
		return unauthorizedMessage
	case apiErr.Status == 403:
		return forbiddenMessage
	case apiErr.Status == 429:
		return rateLimitedMessage
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return genericMessage
}

// UserMessage classifies an arbitrary failure and resolves its user-facing
// sentence in one step.
func UserMessage(err error) string {
	return ResolveMessage(Classify(err))
}
