// Package envelope implements authenticated envelope encryption for
// stored API keys. A master key is derived once from a configured
// passphrase; every Encrypt call generates a fresh random data key,
// wraps it under the master key, and seals the payload under the data
// key. Tokens are opaque base64url strings.
//
// Decryption failures never expose key material, algorithm parameters,
// or ciphertext bytes; callers see one of two generic error kinds.
package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/pbkdf2"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

const (
	// Iterations is the key-derivation work factor. Lowering it below
	// 300000 is a security regression.
	Iterations = 310000

	keyLen       = 32
	timestampLen = 8
	separator    = "."
)

// derivationSalt is fixed so the same passphrase always yields the same
// master key across restarts.
var derivationSalt = []byte("unified-travel-search.byok.v1")

// Codec encrypts and decrypts secret values under a passphrase-derived
// master key. It is safe for concurrent use.
type Codec struct {
	masterKey []byte
}

// NewCodec derives the master key from the given passphrase using the
// default work factor.
func NewCodec(passphrase string) (*Codec, error) {
	return NewCodecWithIterations(passphrase, Iterations)
}

// NewCodecWithIterations is NewCodec with an explicit work factor.
// Iteration counts below 300000 are rejected.
func NewCodecWithIterations(passphrase string, iterations int) (*Codec, error) {
	if passphrase == "" {
		return nil, errors.New("passphrase is required")
	}
	if iterations < 300000 {
		return nil, errors.New("iteration count below minimum")
	}

	key := pbkdf2.Key([]byte(passphrase), derivationSalt, iterations, keyLen, sha256.New)
	return &Codec{masterKey: key}, nil
}

// Encrypt seals plaintext and returns an opaque token. Each call uses a
// fresh random data key and nonce, so encrypting the same plaintext
// twice yields different tokens.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	dataKey := make([]byte, keyLen)
	if _, err := rand.Read(dataKey); err != nil {
		return "", domain.ErrDecryptionFailed
	}

	encKey, err := seal(c.masterKey, dataKey)
	if err != nil {
		return "", domain.ErrDecryptionFailed
	}

	payload := make([]byte, timestampLen+len(plaintext))
	binary.BigEndian.PutUint64(payload[:timestampLen], uint64(time.Now().Unix()))
	copy(payload[timestampLen:], plaintext)

	encPayload, err := seal(dataKey, payload)
	if err != nil {
		return "", domain.ErrDecryptionFailed
	}

	inner := base64.RawURLEncoding.EncodeToString(encKey) +
		separator +
		base64.RawURLEncoding.EncodeToString(encPayload)
	return base64.RawURLEncoding.EncodeToString([]byte(inner)), nil
}

// Decrypt reverses Encrypt. Malformed tokens fail with a format error;
// everything else (wrong master key, tampering, truncation inside a
// well-formed token) fails with the generic decryption error.
func (c *Codec) Decrypt(token string) (string, error) {
	if token == "" {
		return "", domain.ErrInvalidToken
	}

	inner, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	parts := strings.Split(string(inner), separator)
	if len(parts) != 2 {
		return "", domain.ErrInvalidToken
	}

	encKey, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", domain.ErrInvalidToken
	}
	encPayload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	dataKey, err := open(c.masterKey, encKey)
	if err != nil {
		return "", domain.ErrDecryptionFailed
	}

	payload, err := open(dataKey, encPayload)
	if err != nil {
		return "", domain.ErrDecryptionFailed
	}
	if len(payload) < timestampLen {
		return "", domain.ErrDecryptionFailed
	}

	return string(payload[timestampLen:]), nil
}

// seal encrypts data under key with a random nonce prepended to the
// output.
func seal(key, data []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, data, nil), nil
}

// open reverses seal, verifying the integrity tag.
func open(key, sealed []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(sealed) < gcm.NonceSize() {
		return nil, errors.New("short input")
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
