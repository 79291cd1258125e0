// Package secrets implements the BYOK secret lifecycle: create with
// external validation, rotate, validate on demand, status flips, hard
// delete, and primary-key designation. Plaintext keys are envelope
// encrypted before they ever reach the store.
package secrets

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tripsage/unified-travel-search/internal/domain"
	"github.com/tripsage/unified-travel-search/internal/infrastructure/cache"
	"github.com/tripsage/unified-travel-search/internal/infrastructure/timeutil"
)

// Codec seals and opens secret values. Implemented by envelope.Codec.
type Codec interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(token string) (string, error)
}

// Service defines the secret lifecycle operations. Every operation that
// addresses an existing secret verifies ownership; a mismatch is
// indistinguishable from a missing record.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*domain.Secret, error)
	Get(ctx context.Context, userID, id string) (*domain.Secret, error)
	List(ctx context.Context, userID string) ([]*domain.Secret, error)
	Validate(ctx context.Context, userID, id string) (*ValidationResult, error)
	Rotate(ctx context.Context, userID, id, newPlaintext string) (*domain.Secret, error)
	Deactivate(ctx context.Context, userID, id string) (*domain.Secret, error)
	Reactivate(ctx context.Context, userID, id string) (*domain.Secret, error)
	Delete(ctx context.Context, userID, id string) error
	SetPrimary(ctx context.Context, userID, id string) error

	// Use decrypts an active secret for consumption, enforcing the
	// per-key rate limit and recording usage.
	Use(ctx context.Context, userID, id string) (string, error)
}

// CreateInput carries the fields for a new secret.
type CreateInput struct {
	UserID          string
	Name            string
	Provider        domain.KeyProvider
	Plaintext       string
	KeyType         string
	ExpiresAt       *time.Time
	RateLimitPerMin int
	Metadata        map[string]interface{}
}

// ServiceConfig contains configuration options for the lifecycle service.
type ServiceConfig struct {
	// MaxSecretsPerUser caps how many secrets one owner may hold
	MaxSecretsPerUser int
}

// DefaultServiceConfig returns the default configuration.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{MaxSecretsPerUser: 50}
}

// service implements Service.
type service struct {
	store     SecretStore
	codec     Codec
	validator KeyValidator
	limiter   *LimiterRegistry
	cache     cache.Cache
	clock     timeutil.Clock
	cfg       ServiceConfig
	log       zerolog.Logger
}

// NewService creates a lifecycle service. A nil cache disables secret
// cache invalidation; a nil config uses defaults.
func NewService(store SecretStore, codec Codec, validator KeyValidator, secretCache cache.Cache, config *ServiceConfig, log zerolog.Logger) Service {
	cfg := DefaultServiceConfig()
	if config != nil && config.MaxSecretsPerUser > 0 {
		cfg.MaxSecretsPerUser = config.MaxSecretsPerUser
	}
	if secretCache == nil {
		secretCache = cache.NewNoOpCache()
	}

	return &service{
		store:     store,
		codec:     codec,
		validator: validator,
		limiter:   NewLimiterRegistry(),
		cache:     secretCache,
		clock:     timeutil.NewRealClock(),
		cfg:       cfg,
		log:       log,
	}
}

// NewServiceWithClock is NewService with an injected clock for tests.
func NewServiceWithClock(store SecretStore, codec Codec, validator KeyValidator, secretCache cache.Cache, config *ServiceConfig, clock timeutil.Clock, log zerolog.Logger) Service {
	svc := NewService(store, codec, validator, secretCache, config, log).(*service)
	svc.clock = clock
	return svc
}

// Create implements Service.Create.
func (s *service) Create(ctx context.Context, input CreateInput) (*domain.Secret, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	count, err := s.store.CountByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if count >= s.cfg.MaxSecretsPerUser {
		return nil, domain.ErrSecretLimitExceeded
	}

	existing, err := s.store.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	for _, secret := range existing {
		// Duplicate display names are rejected with a case-sensitive
		// exact match.
		if secret.Name == input.Name {
			return nil, domain.ErrDuplicateSecretName
		}
	}

	result, err := s.validator.Validate(ctx, input.Plaintext, input.Provider)
	if err != nil {
		return nil, err
	}
	if !result.IsValid {
		return nil, fmt.Errorf("%w: %s", domain.ErrExternalValidation, result.ErrorMessage)
	}

	encrypted, err := s.codec.Encrypt(input.Plaintext)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	secret := &domain.Secret{
		ID:              uuid.New().String(),
		UserID:          input.UserID,
		Name:            input.Name,
		Provider:        input.Provider,
		KeyType:         input.KeyType,
		EncryptedValue:  encrypted,
		LookupHash:      lookupHash(input.Plaintext),
		Status:          domain.SecretActive,
		CreatedAt:       now,
		UpdatedAt:       now,
		ExpiresAt:       input.ExpiresAt,
		LastValidated:   &now,
		RateLimitPerMin: input.RateLimitPerMin,
		Metadata:        input.Metadata,
	}

	if err := s.store.Create(ctx, secret); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("secret_id", secret.ID).
		Str("provider", string(secret.Provider)).
		Msg("Secret created")

	return secret, nil
}

// Get implements Service.Get.
func (s *service) Get(ctx context.Context, userID, id string) (*domain.Secret, error) {
	return s.getOwned(ctx, userID, id)
}

// List implements Service.List.
func (s *service) List(ctx context.Context, userID string) ([]*domain.Secret, error) {
	return s.store.ListByUser(ctx, userID)
}

// Validate implements Service.Validate. The external check updates the
// validation bookkeeping but never flips status; deactivation is a
// separate explicit call.
func (s *service) Validate(ctx context.Context, userID, id string) (*ValidationResult, error) {
	secret, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	plaintext, err := s.codec.Decrypt(secret.EncryptedValue)
	if err != nil {
		return nil, err
	}

	result, err := s.validator.Validate(ctx, plaintext, secret.Provider)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	secret.LastValidated = &now
	secret.UpdatedAt = now
	if result.IsValid {
		secret.ValidationError = ""
	} else {
		secret.ValidationError = result.ErrorMessage
	}

	if err := s.store.Update(ctx, secret); err != nil {
		return nil, err
	}
	return result, nil
}

// Rotate implements Service.Rotate. The new plaintext is validated
// before the old encrypted value is discarded; no history is kept.
func (s *service) Rotate(ctx context.Context, userID, id, newPlaintext string) (*domain.Secret, error) {
	if newPlaintext == "" {
		return nil, domain.WrapInvalidRequest("new value is required")
	}

	secret, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	result, err := s.validator.Validate(ctx, newPlaintext, secret.Provider)
	if err != nil {
		return nil, err
	}
	if !result.IsValid {
		return nil, fmt.Errorf("%w: %s", domain.ErrExternalValidation, result.ErrorMessage)
	}

	encrypted, err := s.codec.Encrypt(newPlaintext)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	secret.EncryptedValue = encrypted
	secret.LookupHash = lookupHash(newPlaintext)
	secret.LastValidated = &now
	secret.ValidationError = ""
	secret.UpdatedAt = now

	if err := s.store.Update(ctx, secret); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	s.log.Info().Str("secret_id", id).Msg("Secret rotated")
	return secret, nil
}

// Deactivate implements Service.Deactivate.
func (s *service) Deactivate(ctx context.Context, userID, id string) (*domain.Secret, error) {
	secret, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	secret.Status = domain.SecretInactive
	secret.UpdatedAt = s.clock.Now()

	if err := s.store.Update(ctx, secret); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return secret, nil
}

// Reactivate implements Service.Reactivate. The stored key is
// re-validated against the provider before flipping back to active.
func (s *service) Reactivate(ctx context.Context, userID, id string) (*domain.Secret, error) {
	secret, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	plaintext, err := s.codec.Decrypt(secret.EncryptedValue)
	if err != nil {
		return nil, err
	}

	result, err := s.validator.Validate(ctx, plaintext, secret.Provider)
	if err != nil {
		return nil, err
	}
	if !result.IsValid {
		return nil, fmt.Errorf("%w: %s", domain.ErrExternalValidation, result.ErrorMessage)
	}

	now := s.clock.Now()
	secret.Status = domain.SecretActive
	secret.LastValidated = &now
	secret.ValidationError = ""
	secret.UpdatedAt = now

	if err := s.store.Update(ctx, secret); err != nil {
		return nil, err
	}
	return secret, nil
}

// Delete implements Service.Delete.
func (s *service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.limiter.Forget(id)
	s.invalidate(ctx, id)

	s.log.Info().Str("secret_id", id).Msg("Secret deleted")
	return nil
}

// SetPrimary implements Service.SetPrimary. The unset of the previous
// primary happens atomically inside the store.
func (s *service) SetPrimary(ctx context.Context, userID, id string) error {
	secret, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.store.SetPrimary(ctx, userID, secret.Provider, id)
}

// Use implements Service.Use.
func (s *service) Use(ctx context.Context, userID, id string) (string, error) {
	secret, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return "", err
	}

	if !secret.IsUsable(s.clock.Now()) {
		return "", domain.WrapInvalidRequest("key is not active")
	}
	if !s.limiter.Allow(id, secret.RateLimitPerMin) {
		return "", domain.ErrRateLimited
	}

	plaintext, err := s.codec.Decrypt(secret.EncryptedValue)
	if err != nil {
		return "", err
	}

	now := s.clock.Now()
	secret.LastUsed = &now
	secret.UsageCount++
	if err := s.store.Update(ctx, secret); err != nil {
		// Usage bookkeeping is best effort.
		s.log.Warn().Err(err).Str("secret_id", id).Msg("Failed to record secret usage")
	}

	return plaintext, nil
}

// getOwned fetches a secret and verifies ownership. A wrong owner gets
// the same not-found signal as a missing record.
func (s *service) getOwned(ctx context.Context, userID, id string) (*domain.Secret, error) {
	secret, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if secret.UserID != userID {
		return nil, domain.ErrSecretNotFound
	}
	return secret, nil
}

// invalidate drops any cached entries for a secret after mutation.
func (s *service) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, secretCacheKey(id)); err != nil {
		s.log.Warn().Err(err).Str("secret_id", id).Msg("Failed to invalidate secret cache entry")
	}
}

func secretCacheKey(id string) string {
	return "byok:cache:" + id
}

// lookupHash is a one-way fingerprint of the plaintext used for
// duplicate detection without decryption.
func lookupHash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// validateCreateInput checks request shape before any collaborator call.
func validateCreateInput(input CreateInput) error {
	if input.UserID == "" {
		return domain.WrapInvalidRequest("user id is required")
	}
	if input.Name == "" {
		return domain.WrapInvalidRequest("name is required")
	}
	if !input.Provider.IsValid() {
		return domain.WrapInvalidRequest("unsupported provider %q", input.Provider)
	}
	if input.Plaintext == "" {
		return domain.WrapInvalidRequest("value is required")
	}
	return nil
}

var _ Service = (*service)(nil)
