package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures by who can fix them.
type ErrorKind string

const (
	// KindConfiguration is missing deployment configuration. Operator-fixable.
	KindConfiguration ErrorKind = "configuration"

	// KindValidation is malformed or policy-violating input. Caller-fixable.
	KindValidation ErrorKind = "validation"

	// KindUpstream is a failure of the remote store or payment API.
	KindUpstream ErrorKind = "upstream"

	// KindAuth is a failed OAuth conversation.
	KindAuth ErrorKind = "auth"
)

// Error is the single error type crossing the use case boundary.
// Reason is safe to show to callers; Err carries the detail for logs.
type Error struct {
	Kind   ErrorKind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches another *Error with the same kind and reason, so sentinel
// values keep working after being wrapped with extra detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind && e.Reason == t.Reason
}

// ConfigurationError returns a KindConfiguration error.
func ConfigurationError(reason string) *Error {
	return &Error{Kind: KindConfiguration, Reason: reason}
}

// ValidationError returns a KindValidation error.
func ValidationError(reason string) *Error {
	return &Error{Kind: KindValidation, Reason: reason}
}

// AuthError returns a KindAuth error.
func AuthError(reason string, err error) *Error {
	return &Error{Kind: KindAuth, Reason: reason, Err: err}
}

// UpstreamError wraps a failure of a remote call. op names the call.
func UpstreamError(op string, err error) *Error {
	return &Error{Kind: KindUpstream, Reason: op + " failed", Err: err}
}

// KindOf returns the kind of err, or "" when err is not a *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ReasonOf returns the caller-safe reason of err, or "" when err is not a *Error.
func ReasonOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}

var (
	// ErrCommentsNotConfigured is returned when the deployment has no comment repository.
	ErrCommentsNotConfigured = ConfigurationError("comments not configured")

	// ErrThreadConfigMissing is returned when a thread must be created without repository or category ids.
	ErrThreadConfigMissing = ConfigurationError("missing repository or category configuration")

	// ErrNoServiceCredential is returned when a guest write has no bot credential to use.
	ErrNoServiceCredential = ConfigurationError("no service credential available")

	// ErrNoReadCredential is returned when neither a service nor a session credential can read.
	ErrNoReadCredential = ConfigurationError("no credential available for reading comments")

	// ErrOAuthNotConfigured is returned when the OAuth client id or secret is missing.
	ErrOAuthNotConfigured = ConfigurationError("oauth client not configured")

	// ErrPaymentsNotConfigured is returned when no payment processor key is set.
	ErrPaymentsNotConfigured = ConfigurationError("payments not configured")

	// ErrSpamDetected is returned when the honeypot field is filled.
	ErrSpamDetected = ValidationError("spam detected")

	// ErrCaptchaRequired is returned when an anonymous write has no complete challenge.
	ErrCaptchaRequired = ValidationError("captcha required")

	// ErrIncorrectAnswer is returned when the challenge sum does not hold.
	ErrIncorrectAnswer = ValidationError("incorrect answer")

	// ErrDisplayNameRequired is returned when an anonymous write has no display name.
	ErrDisplayNameRequired = ValidationError("display name required")

	// ErrDisplayNameTooLong is returned when a guest name exceeds MaxDisplayNameLength.
	ErrDisplayNameTooLong = ValidationError("display name too long")

	// ErrInvalidDisplayName is returned when a guest name would break the attribution marker.
	ErrInvalidDisplayName = ValidationError("invalid display name")

	// ErrContentRequired is returned when the comment body is blank.
	ErrContentRequired = ValidationError("content required")

	// ErrInvalidSlug is returned when a page slug cannot form a ContentKey.
	ErrInvalidSlug = ValidationError("invalid slug")

	// ErrInvalidAmount is returned when a donation amount is missing or not positive.
	ErrInvalidAmount = ValidationError("invalid amount")

	// ErrInvalidState is returned when the OAuth state does not match the issued one.
	ErrInvalidState = AuthError("invalid state", nil)
)
