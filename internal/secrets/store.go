package secrets

import (
	"context"
	"sync"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

// SecretStore is the persistence contract for secret records. The store
// is ownership-agnostic: the service layer enforces owner checks and
// translates mismatches into not-found.
type SecretStore interface {
	Create(ctx context.Context, secret *domain.Secret) error
	Get(ctx context.Context, id string) (*domain.Secret, error)
	Update(ctx context.Context, secret *domain.Secret) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Secret, error)
	CountByUser(ctx context.Context, userID string) (int, error)

	// SetPrimary marks the given secret primary for its (owner, provider)
	// pair and unsets any previous primary in the same atomic operation.
	SetPrimary(ctx context.Context, userID string, provider domain.KeyProvider, id string) error
}

// MemoryStore is an in-memory SecretStore for tests and single-node use.
type MemoryStore struct {
	mu      sync.RWMutex
	secrets map[string]*domain.Secret
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{secrets: make(map[string]*domain.Secret)}
}

// Create implements SecretStore.
func (s *MemoryStore) Create(_ context.Context, secret *domain.Secret) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *secret
	s.secrets[secret.ID] = &cp
	return nil
}

// Get implements SecretStore.
func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Secret, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	secret, ok := s.secrets[id]
	if !ok {
		return nil, domain.ErrSecretNotFound
	}
	cp := *secret
	return &cp, nil
}

// Update implements SecretStore.
func (s *MemoryStore) Update(_ context.Context, secret *domain.Secret) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.secrets[secret.ID]; !ok {
		return domain.ErrSecretNotFound
	}
	cp := *secret
	s.secrets[secret.ID] = &cp
	return nil
}

// Delete implements SecretStore.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.secrets[id]; !ok {
		return domain.ErrSecretNotFound
	}
	delete(s.secrets, id)
	return nil
}

// ListByUser implements SecretStore.
func (s *MemoryStore) ListByUser(_ context.Context, userID string) ([]*domain.Secret, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Secret, 0)
	for _, secret := range s.secrets {
		if secret.UserID == userID {
			cp := *secret
			out = append(out, &cp)
		}
	}
	return out, nil
}

// CountByUser implements SecretStore.
func (s *MemoryStore) CountByUser(_ context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, secret := range s.secrets {
		if secret.UserID == userID {
			count++
		}
	}
	return count, nil
}

// SetPrimary implements SecretStore. The unset of the previous primary
// and the set of the new one happen under one lock, so no two secrets
// for the same (owner, provider) pair are ever both primary.
func (s *MemoryStore) SetPrimary(_ context.Context, userID string, provider domain.KeyProvider, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.secrets[id]
	if !ok || target.UserID != userID || target.Provider != provider {
		return domain.ErrSecretNotFound
	}

	for _, secret := range s.secrets {
		if secret.UserID == userID && secret.Provider == provider {
			secret.IsPrimary = secret.ID == id
		}
	}
	return nil
}

var _ SecretStore = (*MemoryStore)(nil)
