package domain

import (
	"time"
)

// SecretStatus is the lifecycle status of a stored secret.
type SecretStatus string

// Secret lifecycle statuses. Active and inactive flip via explicit calls;
// expired is time-based and suspended is administrative.
const (
	SecretActive    SecretStatus = "active"
	SecretInactive  SecretStatus = "inactive"
	SecretExpired   SecretStatus = "expired"
	SecretSuspended SecretStatus = "suspended"
)

// KeyProvider identifies the external service a stored API key targets.
type KeyProvider string

// Supported key providers.
const (
	ProviderOpenAI      KeyProvider = "openai"
	ProviderAnthropic   KeyProvider = "anthropic"
	ProviderGoogleMaps  KeyProvider = "googlemaps"
	ProviderDuffel      KeyProvider = "duffel"
	ProviderOpenWeather KeyProvider = "openweathermap"
)

// IsValid checks if the key provider is a supported value.
func (p KeyProvider) IsValid() bool {
	switch p {
	case ProviderOpenAI, ProviderAnthropic, ProviderGoogleMaps, ProviderDuffel, ProviderOpenWeather:
		return true
	default:
		return false
	}
}

// Secret is a user-supplied third-party API key record (BYOK). The plaintext
// key is never stored: EncryptedValue holds the envelope-encrypted payload
// and LookupHash a one-way hash used for duplicate checks without
// decryption.
type Secret struct {
	// ID is the unique identifier of the record
	ID string `json:"id"`

	// UserID is the owner of this secret
	UserID string `json:"user_id"`

	// Name is the user-facing display name, unique per owner
	Name string `json:"name"`

	// Provider is the external service the key targets
	Provider KeyProvider `json:"provider"`

	// KeyType describes the kind of credential (e.g., "api_key")
	KeyType string `json:"key_type,omitempty"`

	// EncryptedValue is the envelope-encrypted key payload, opaque to
	// persistence
	EncryptedValue string `json:"encrypted_value"`

	// LookupHash is a one-way hash of the plaintext key
	LookupHash string `json:"lookup_hash"`

	// Status is the lifecycle status
	Status SecretStatus `json:"status"`

	// IsPrimary marks the primary secret for (owner, provider); at most
	// one per pair
	IsPrimary bool `json:"is_primary"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	LastUsed  *time.Time `json:"last_used,omitempty"`

	// LastValidated is when the key last passed external validation
	LastValidated *time.Time `json:"last_validated,omitempty"`

	// ValidationError holds the most recent validation failure message
	ValidationError string `json:"validation_error,omitempty"`

	// UsageCount is the number of recorded uses
	UsageCount int64 `json:"usage_count"`

	// RateLimitPerMin is an optional per-key use limit (0 = unlimited)
	RateLimitPerMin int `json:"rate_limit_per_min,omitempty"`

	// AllowedIPs optionally restricts use to these source addresses
	AllowedIPs []string `json:"allowed_ips,omitempty"`

	// AllowedEndpoints optionally restricts use to these endpoints
	AllowedEndpoints []string `json:"allowed_endpoints,omitempty"`

	// Metadata carries arbitrary caller-supplied fields
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// IsExpired reports whether the secret passed its expiry time.
func (s *Secret) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}

// IsUsable reports whether the secret may be decrypted for use.
func (s *Secret) IsUsable(now time.Time) bool {
	return s.Status == SecretActive && !s.IsExpired(now)
}
