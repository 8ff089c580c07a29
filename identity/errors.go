package identity

import (
	"errors"
	"strings"

	"google.golang.org/api/googleapi"
)

// Kind classifies an identity provider failure.
type Kind string

const (
	KindInvalidCredential Kind = "invalid-credential"
	KindUserNotFound      Kind = "user-not-found"
	KindRateLimited       Kind = "rate-limited"
	KindEmailInUse        Kind = "email-in-use"
	KindWeakPassword      Kind = "weak-password"
	KindNetworkFailure    Kind = "network-failure"
	KindValidation        Kind = "validation"
	KindGeneric           Kind = "generic"
)

// Error is a provider or validation failure carrying the one fixed sentence
// shown to the user.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Local precondition failures, checked before any network call is made.
var (
	ErrPasswordMismatch = &Error{Kind: KindValidation, Message: "Passwords do not match. Please try again."}
	ErrPasswordTooShort = &Error{Kind: KindValidation, Message: "Password should be at least 8 characters long."}
)

type codeMapping struct {
	kind    Kind
	message string
}

// Sign-in error table. Keys cover both the Identity Toolkit REST codes and
// the equivalent client SDK codes.
var signInCodes = map[string]codeMapping{
	"INVALID_LOGIN_CREDENTIALS":   {KindInvalidCredential, "Invalid email or password. Please try again."},
	"INVALID_CREDENTIAL":          {KindInvalidCredential, "Invalid email or password. Please try again."},
	"EMAIL_NOT_FOUND":             {KindUserNotFound, "No account found with this email."},
	"USER_NOT_FOUND":              {KindUserNotFound, "No account found with this email."},
	"INVALID_PASSWORD":            {KindInvalidCredential, "Incorrect password. Please try again."},
	"WRONG_PASSWORD":              {KindInvalidCredential, "Incorrect password. Please try again."},
	"TOO_MANY_ATTEMPTS_TRY_LATER": {KindRateLimited, "Too many failed attempts. Please try again later."},
	"TOO_MANY_REQUESTS":           {KindRateLimited, "Too many failed attempts. Please try again later."},
	"INVALID_EMAIL":               {KindValidation, "Please enter a valid email address."},
}

// Sign-up error table.
var signUpCodes = map[string]codeMapping{
	"EMAIL_EXISTS":          {KindEmailInUse, "An account with this email already exists. Please login instead."},
	"EMAIL_ALREADY_IN_USE":  {KindEmailInUse, "An account with this email already exists. Please login instead."},
	"INVALID_EMAIL":         {KindValidation, "Please enter a valid email address."},
	"WEAK_PASSWORD":         {KindWeakPassword, "Password is too weak. Please choose a stronger password."},
	"OPERATION_NOT_ALLOWED": {KindGeneric, "Email/password accounts are not enabled. Please contact support."},
}

const (
	signInFallback  = "Failed to login. Please try again."
	signUpFallback  = "Failed to create account. Please try again."
	networkFailure  = "Network error. Please check your connection and try again."
	networkErrCode  = "NETWORK_REQUEST_FAILED"
	genericErrLabel = "UNKNOWN"
)

// mapProviderError converts a raw provider error into an *Error using the
// given code table. Every unmapped code collapses to the fallback sentence;
// transport-level failures map to the network sentence.
func mapProviderError(err error, table map[string]codeMapping, fallback string) *Error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return &Error{Kind: KindNetworkFailure, Code: networkErrCode, Message: networkFailure}
	}
	code := normalizeCode(gerr.Message)
	if code == networkErrCode {
		return &Error{Kind: KindNetworkFailure, Code: code, Message: networkFailure}
	}
	if m, ok := table[code]; ok {
		return &Error{Kind: m.kind, Code: code, Message: m.message}
	}
	if code == "" {
		code = genericErrLabel
	}
	return &Error{Kind: KindGeneric, Code: code, Message: fallback}
}

// normalizeCode extracts the bare error code from a provider message. The
// REST API reports codes like "WEAK_PASSWORD : Password should be at least 6
// characters"; client SDKs report "auth/weak-password".
func normalizeCode(msg string) string {
	fields := strings.Fields(msg)
	if len(fields) == 0 {
		return ""
	}
	code := strings.TrimSuffix(fields[0], ":")
	code = strings.TrimPrefix(code, "auth/")
	code = strings.ReplaceAll(code, "-", "_")
	return strings.ToUpper(code)
}
