package secrets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tripsage/unified-travel-search/internal/domain"
	"github.com/tripsage/unified-travel-search/internal/infrastructure/retry"
)

// ValidationResult is the outcome of checking a plaintext key against
// its target provider.
type ValidationResult struct {
	IsValid           bool               `json:"is_valid"`
	ConfirmedProvider domain.KeyProvider `json:"confirmed_provider,omitempty"`
	ErrorMessage      string             `json:"error_message,omitempty"`
}

// KeyValidator checks a plaintext key against the external provider it
// targets. Timeout and retry policy live inside implementations; the
// lifecycle service performs no retries of its own.
type KeyValidator interface {
	Validate(ctx context.Context, plaintext string, provider domain.KeyProvider) (*ValidationResult, error)
}

// HTTPValidator validates keys against a validation API over HTTP with
// bounded retry.
type HTTPValidator struct {
	baseURL    string
	httpClient *http.Client
	retryCfg   retry.Config
}

// NewHTTPValidator creates a validator client for the given base URL.
func NewHTTPValidator(baseURL string) *HTTPValidator {
	return &HTTPValidator{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		retryCfg:   retry.ValidatorConfig.WithRetryIf(retry.SkipPermanent),
	}
}

type validateRequest struct {
	Provider domain.KeyProvider `json:"provider"`
	Key      string             `json:"key"`
}

// Validate implements KeyValidator. Transport failures are retried;
// definitive rejections (HTTP 4xx) are not.
func (v *HTTPValidator) Validate(ctx context.Context, plaintext string, provider domain.KeyProvider) (*ValidationResult, error) {
	body, err := json.Marshal(validateRequest{Provider: provider, Key: plaintext})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request", domain.ErrExternalValidation)
	}

	result, err := retry.DoWithResult(ctx, func() (*ValidationResult, error) {
		return v.doValidate(ctx, body)
	}, v.retryCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExternalValidation, err)
	}
	return result, nil
}

func (v *HTTPValidator) doValidate(ctx context.Context, body []byte) (*ValidationResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/validate", bytes.NewReader(body))
	if err != nil {
		return nil, retry.NewPermanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("validation api status %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, retry.NewPermanent(fmt.Errorf("validation api status %d", resp.StatusCode))
	}

	var result ValidationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("decode validation response: %w", err))
	}
	return &result, nil
}

var _ KeyValidator = (*HTTPValidator)(nil)
