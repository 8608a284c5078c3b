package domain

import "errors"

// Error is a domain error with a stable code. Codes are what the adapter
// edge keys user-facing messages on; Message is the log-facing default.
type Error struct {
	ErrCode string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Code extracts the stable code from err, or "" when err carries none.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.ErrCode
	}
	return ""
}

// Domain errors.
var (
	ErrNoDestinations        = &Error{ErrCode: "no_destinations_configured", Message: "no announcement language channels configured"}
	ErrUnknownLanguage       = &Error{ErrCode: "unknown_language", Message: "language is not in the announcement catalog"}
	ErrLanguageExists        = &Error{ErrCode: "language_exists", Message: "language is already in the announcement catalog"}
	ErrLanguageChannelNotSet = &Error{ErrCode: "language_channel_not_set", Message: "no channel configured for this language"}
)
