package http

import (
	"time"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

// SuggestResponse is the response body for search suggestions.
type SuggestResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// CreateKeyRequest is the request body for registering a new API key.
type CreateKeyRequest struct {
	// Name is the user-facing display name, unique per owner
	Name string `json:"name" example:"My OpenAI Key"`

	// Provider is the external service the key targets:
	// openai, anthropic, googlemaps, duffel, openweathermap
	Provider string `json:"provider" example:"openai"`

	// Value is the plaintext key. It is validated against the provider,
	// encrypted, and never stored or echoed back.
	Value string `json:"value" example:"sk-..."`

	// KeyType describes the kind of credential (optional)
	KeyType string `json:"key_type,omitempty" example:"api_key"`

	// ExpiresAt optionally sets an expiry time (RFC 3339)
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// RateLimitPerMin optionally caps uses per minute (0 = unlimited)
	RateLimitPerMin int `json:"rate_limit_per_min,omitempty" example:"60"`

	// Metadata carries arbitrary caller-supplied fields
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// RotateKeyRequest is the request body for rotating a key's value.
type RotateKeyRequest struct {
	// Value is the replacement plaintext key
	Value string `json:"value" example:"sk-..."`
}

// KeyResponse is the API representation of a stored key. The encrypted
// value and lookup hash never leave the service.
type KeyResponse struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Provider        string                 `json:"provider"`
	KeyType         string                 `json:"key_type,omitempty"`
	Status          string                 `json:"status"`
	IsPrimary       bool                   `json:"is_primary"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	ExpiresAt       *time.Time             `json:"expires_at,omitempty"`
	LastUsed        *time.Time             `json:"last_used,omitempty"`
	LastValidated   *time.Time             `json:"last_validated,omitempty"`
	ValidationError string                 `json:"validation_error,omitempty"`
	UsageCount      int64                  `json:"usage_count"`
	RateLimitPerMin int                    `json:"rate_limit_per_min,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
}

// KeyListResponse wraps a list of keys.
type KeyListResponse struct {
	Keys []KeyResponse `json:"keys"`
}

// ValidateKeyResponse is the response body for an on-demand validation.
type ValidateKeyResponse struct {
	IsValid           bool   `json:"is_valid"`
	ConfirmedProvider string `json:"confirmed_provider,omitempty"`
	ErrorMessage      string `json:"error_message,omitempty"`
}

// ToKeyResponse converts a domain secret to its API representation,
// dropping the encrypted payload and lookup hash.
func ToKeyResponse(secret *domain.Secret) KeyResponse {
	return KeyResponse{
		ID:              secret.ID,
		Name:            secret.Name,
		Provider:        string(secret.Provider),
		KeyType:         secret.KeyType,
		Status:          string(secret.Status),
		IsPrimary:       secret.IsPrimary,
		CreatedAt:       secret.CreatedAt,
		UpdatedAt:       secret.UpdatedAt,
		ExpiresAt:       secret.ExpiresAt,
		LastUsed:        secret.LastUsed,
		LastValidated:   secret.LastValidated,
		ValidationError: secret.ValidationError,
		UsageCount:      secret.UsageCount,
		RateLimitPerMin: secret.RateLimitPerMin,
		Metadata:        secret.Metadata,
	}
}

// ToKeyListResponse converts a slice of domain secrets.
func ToKeyListResponse(secrets []*domain.Secret) KeyListResponse {
	keys := make([]KeyResponse, 0, len(secrets))
	for _, secret := range secrets {
		keys = append(keys, ToKeyResponse(secret))
	}
	return KeyListResponse{Keys: keys}
}
