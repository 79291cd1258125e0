// Package integration provides helpers and integration tests for the unified
// search system. Integration tests verify that components work together
// correctly, including HTTP handlers, use cases, the secret lifecycle
// service, and mock providers.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/tripsage/unified-travel-search/internal/adapter/http"
	"github.com/tripsage/unified-travel-search/internal/domain"
	"github.com/tripsage/unified-travel-search/internal/infrastructure/cache"
	"github.com/tripsage/unified-travel-search/internal/secrets"
	"github.com/tripsage/unified-travel-search/internal/secrets/envelope"
	"github.com/tripsage/unified-travel-search/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo *echo.Echo
}

// NewTestServer creates a test server with the given use case and key service.
func NewTestServer(uc usecase.UnifiedSearchUseCase, keys secrets.Service) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	httpAdapter.RegisterRoutes(e, httpAdapter.NewSearchHandler(uc), httpAdapter.NewKeysHandler(keys))

	return &TestServer{Echo: e}
}

// NewSearchTestServer creates a test server with only the search side wired.
// The key service is backed by in-memory components that always validate.
func NewSearchTestServer(uc usecase.UnifiedSearchUseCase) *TestServer {
	return NewTestServer(uc, CreateKeyService(&StubValidator{Result: ValidResult()}))
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search request with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/search",
		Body:   body,
	})
}

// KeysRequest executes a request against the keys API as the given user.
func (ts *TestServer) KeysRequest(method, path string, body interface{}, userID string) Response {
	return ts.Do(Request{
		Method:  method,
		Path:    path,
		Body:    body,
		Headers: map[string]string{"X-User-ID": userID},
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a UnifiedSearchResponse.
func (r *Response) ParseSearchResponse() (*domain.UnifiedSearchResponse, error) {
	var resp domain.UnifiedSearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseKeyResponse parses the response body as a key API response.
func (r *Response) ParseKeyResponse() (*httpAdapter.KeyResponse, error) {
	var resp httpAdapter.KeyResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Query       string                 `json:"query"`
	Types       []string               `json:"types,omitempty"`
	Destination string                 `json:"destination,omitempty"`
	Origin      string                 `json:"origin,omitempty"`
	StartDate   string                 `json:"start_date,omitempty"`
	EndDate     string                 `json:"end_date,omitempty"`
	Travelers   map[string]int         `json:"travelers,omitempty"`
	Filters     map[string]interface{} `json:"filters,omitempty"`
	SortBy      string                 `json:"sort_by,omitempty"`
	SortOrder   string                 `json:"sort_order,omitempty"`
}

// DefaultSearchRequest returns a valid search request body covering every
// provider's required parameters. Uses dates 30 days out.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Query:       "weekend trip to new york",
		Destination: "New York",
		Origin:      "JFK",
		StartDate:   FutureDate(30),
		EndDate:     FutureDate(33),
	}
}

// CreateUseCase creates a use case over the given providers with a fresh
// in-memory cache and default configuration.
func CreateUseCase(providers []domain.SearchProvider) usecase.UnifiedSearchUseCase {
	return CreateUseCaseWithConfig(providers, nil)
}

// CreateUseCaseWithConfig creates a use case with custom configuration.
func CreateUseCaseWithConfig(providers []domain.SearchProvider, config *usecase.Config) usecase.UnifiedSearchUseCase {
	registry := domain.NewProviderRegistry()
	for _, p := range providers {
		registry.Register(p)
	}
	return usecase.NewUnifiedSearchUseCase(registry, cache.NewMemoryCache(), config, zerolog.Nop())
}

// StubValidator is a configurable in-process secrets.KeyValidator.
type StubValidator struct {
	Result *secrets.ValidationResult
	Err    error
}

// Validate implements secrets.KeyValidator.
func (s *StubValidator) Validate(_ context.Context, _ string, provider domain.KeyProvider) (*secrets.ValidationResult, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Result != nil {
		return s.Result, nil
	}
	return &secrets.ValidationResult{IsValid: true, ConfirmedProvider: provider}, nil
}

// ValidResult returns a validation result that accepts any key.
func ValidResult() *secrets.ValidationResult {
	return &secrets.ValidationResult{IsValid: true}
}

// InvalidResult returns a validation result that rejects any key with the
// given message.
func InvalidResult(message string) *secrets.ValidationResult {
	return &secrets.ValidationResult{IsValid: false, ErrorMessage: message}
}

// CreateKeyService builds a secret lifecycle service on in-memory
// components with a real envelope codec.
func CreateKeyService(validator secrets.KeyValidator) secrets.Service {
	codec, err := envelope.NewCodec("integration-test-passphrase")
	if err != nil {
		panic("envelope codec: " + err.Error())
	}
	return secrets.NewService(
		secrets.NewMemoryStore(),
		codec,
		validator,
		cache.NewMemoryCache(),
		nil,
		zerolog.Nop(),
	)
}

// CreateKeyRequestBody returns a valid key creation body.
func CreateKeyRequestBody(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":     name,
		"provider": "openai",
		"value":    "sk-test-" + name,
	}
}

// FutureDate returns a date string the given number of days in the future
// in YYYY-MM-DD format.
func FutureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// DefaultDomainRequest returns a valid search request for driving the use
// case directly.
func DefaultDomainRequest() domain.SearchRequest {
	return domain.SearchRequest{
		Query:       "weekend trip to new york",
		Destination: "New York",
		Origin:      "JFK",
	}
}
