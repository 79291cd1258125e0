package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

const (
	secretKeyPrefix = "byok:secret:"
	userIndexPrefix = "byok:user:"
)

// RedisSecretStore is a SecretStore backed by Redis. Records are stored
// as JSON under per-id keys with a per-owner id index set.
type RedisSecretStore struct {
	client *redis.Client
}

// NewRedisSecretStore wraps an existing Redis client.
func NewRedisSecretStore(client *redis.Client) *RedisSecretStore {
	return &RedisSecretStore{client: client}
}

func secretKey(id string) string        { return secretKeyPrefix + id }
func userIndexKey(userID string) string { return userIndexPrefix + userID }

// Create implements SecretStore.
func (s *RedisSecretStore) Create(ctx context.Context, secret *domain.Secret) error {
	data, err := json.Marshal(secret)
	if err != nil {
		return fmt.Errorf("marshal secret record: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, secretKey(secret.ID), data, 0)
	pipe.SAdd(ctx, userIndexKey(secret.UserID), secret.ID)
	_, err = pipe.Exec(ctx)
	return err
}

// Get implements SecretStore.
func (s *RedisSecretStore) Get(ctx context.Context, id string) (*domain.Secret, error) {
	data, err := s.client.Get(ctx, secretKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSecretNotFound
	}
	if err != nil {
		return nil, err
	}

	var secret domain.Secret
	if err := json.Unmarshal(data, &secret); err != nil {
		return nil, fmt.Errorf("unmarshal secret record: %w", err)
	}
	return &secret, nil
}

// Update implements SecretStore.
func (s *RedisSecretStore) Update(ctx context.Context, secret *domain.Secret) error {
	exists, err := s.client.Exists(ctx, secretKey(secret.ID)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return domain.ErrSecretNotFound
	}

	data, err := json.Marshal(secret)
	if err != nil {
		return fmt.Errorf("marshal secret record: %w", err)
	}
	return s.client.Set(ctx, secretKey(secret.ID), data, 0).Err()
}

// Delete implements SecretStore.
func (s *RedisSecretStore) Delete(ctx context.Context, id string) error {
	secret, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, secretKey(id))
	pipe.SRem(ctx, userIndexKey(secret.UserID), id)
	_, err = pipe.Exec(ctx)
	return err
}

// ListByUser implements SecretStore.
func (s *RedisSecretStore) ListByUser(ctx context.Context, userID string) ([]*domain.Secret, error) {
	ids, err := s.client.SMembers(ctx, userIndexKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Secret, 0, len(ids))
	for _, id := range ids {
		secret, err := s.Get(ctx, id)
		if errors.Is(err, domain.ErrSecretNotFound) {
			// Stale index entry, skip.
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, secret)
	}
	return out, nil
}

// CountByUser implements SecretStore.
func (s *RedisSecretStore) CountByUser(ctx context.Context, userID string) (int, error) {
	n, err := s.client.SCard(ctx, userIndexKey(userID)).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// SetPrimary implements SecretStore. The owner's records are updated
// inside a WATCH transaction so the unset of the old primary and the set
// of the new one commit together.
func (s *RedisSecretStore) SetPrimary(ctx context.Context, userID string, provider domain.KeyProvider, id string) error {
	txn := func(tx *redis.Tx) error {
		secrets, err := s.ListByUser(ctx, userID)
		if err != nil {
			return err
		}

		var target *domain.Secret
		for _, secret := range secrets {
			if secret.ID == id && secret.Provider == provider {
				target = secret
			}
		}
		if target == nil {
			return domain.ErrSecretNotFound
		}

		pipe := tx.TxPipeline()
		for _, secret := range secrets {
			if secret.Provider != provider {
				continue
			}
			secret.IsPrimary = secret.ID == id
			data, err := json.Marshal(secret)
			if err != nil {
				return fmt.Errorf("marshal secret record: %w", err)
			}
			pipe.Set(ctx, secretKey(secret.ID), data, 0)
		}
		_, err = pipe.Exec(ctx)
		return err
	}

	return s.client.Watch(ctx, txn, userIndexKey(userID))
}

var _ SecretStore = (*RedisSecretStore)(nil)
