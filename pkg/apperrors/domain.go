package apperrors

import "net/http"

// Predefined errors for the auth and billing domains. Unknown-user and
// wrong-password deliberately collapse into ErrInvalidCredentials; only the
// OAuth-account case gets a specific message.

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrOAuthAccount is returned when a password login hits an account that has
// no password hash. Intentionally specific, unlike other credential failures.
var ErrOAuthAccount = New(
	CodeInvalidCredentials,
	"auth",
	"Please use Google login for this account",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"An account with this email already exists",
	http.StatusBadRequest,
)

var ErrMissingProviderEmail = New(
	CodeValidationFailed,
	"auth",
	"No email address returned by the identity provider",
	http.StatusBadRequest,
)

var ErrNotAuthenticated = New(
	CodeUnauthorized,
	"auth",
	"Not authenticated",
	http.StatusUnauthorized,
)

var ErrAccessDenied = New(
	CodeForbidden,
	"auth",
	"Access denied",
	http.StatusForbidden,
)

// ErrInvoiceCreation wraps any failure inside the invoice saga. The provider's
// message is surfaced as-is; completed provider-side steps are not rolled back.
func ErrInvoiceCreation(err error) *AppError {
	msg := "Failed to create invoice"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Wrap(err, CodeExternalServiceError, "billing", msg, http.StatusInternalServerError)
}

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}
