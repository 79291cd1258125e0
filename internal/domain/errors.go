package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search pipeline.
var (
	// ErrInvalidRequest indicates a malformed search request, rejected
	// before orchestration begins.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrOrchestration indicates the search pipeline itself could not run
	// (e.g., dependency wiring broken). Fatal and never cached.
	ErrOrchestration = errors.New("search orchestration failed")
)

// Sentinel errors for the secret lifecycle.
var (
	// ErrSecretNotFound is returned uniformly for "does not exist" and
	// "exists but wrong owner" to avoid existence leakage.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrSecretLimitExceeded indicates the owner reached the configured
	// max-secrets-per-user limit.
	ErrSecretLimitExceeded = errors.New("secret limit exceeded")

	// ErrDuplicateSecretName indicates a secret with the same display name
	// already exists for the owner. Matching is case-sensitive.
	ErrDuplicateSecretName = errors.New("duplicate secret name")

	// ErrExternalValidation indicates the target provider rejected the
	// plaintext secret.
	ErrExternalValidation = errors.New("provider validation failed")

	// ErrRateLimited indicates a per-secret rate limit rejected a use.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Sentinel errors for the envelope codec. Both carry deliberately generic
// messages: no key material, salt, iteration count, or algorithm detail may
// ever reach a caller through these.
var (
	// ErrInvalidToken indicates a malformed ciphertext token (bad base64,
	// wrong separator count).
	ErrInvalidToken = errors.New("invalid token format")

	// ErrDecryptionFailed indicates the token failed authentication or was
	// produced under a different master key.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// ProviderError wraps a failure from a single search provider. The
// orchestrator recovers these locally: they are recorded per provider and
// never abort the overall request.
type ProviderError struct {
	// Provider is the resource type of the failing provider
	Provider string

	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a ProviderError for the given provider.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// ValidationError represents a single field-level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest wraps a formatted message with ErrInvalidRequest so
// callers can detect it with errors.Is.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// WrapOrchestration wraps an underlying failure as an orchestration-level
// error.
func WrapOrchestration(err error) error {
	return fmt.Errorf("%w: %v", ErrOrchestration, err)
}

// IsInvalidRequest checks if the error is a request validation failure.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsOrchestrationFailure checks if the error is a pipeline-level failure.
func IsOrchestrationFailure(err error) bool {
	return errors.Is(err, ErrOrchestration)
}

// IsSecretNotFound checks if the error is the uniform not-found kind.
func IsSecretNotFound(err error) bool {
	return errors.Is(err, ErrSecretNotFound)
}

// IsCryptoFailure checks if the error came from the envelope codec.
func IsCryptoFailure(err error) bool {
	return errors.Is(err, ErrDecryptionFailed) || errors.Is(err, ErrInvalidToken)
}
