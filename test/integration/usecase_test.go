package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsage/unified-travel-search/internal/domain"
	"github.com/tripsage/unified-travel-search/internal/usecase"
	"github.com/tripsage/unified-travel-search/test/mock"
	"github.com/tripsage/unified-travel-search/test/testutil"
)

// TestUnifiedSearch_MultipleProviders_Success tests that the use case
// successfully aggregates results from multiple providers.
func TestUnifiedSearch_MultipleProviders_Success(t *testing.T) {
	// Arrange
	provider1 := mock.NewProvider(domain.TypeAccommodation).WithItems(mock.SampleItems(domain.TypeAccommodation, 2))
	provider2 := mock.NewProvider(domain.TypeActivity).WithItems(mock.SampleItems(domain.TypeActivity, 3))

	uc := CreateUseCase([]domain.SearchProvider{provider1, provider2})

	// Act
	result, err := uc.Search(context.Background(), DefaultDomainRequest())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Results, 5) // 2 + 3

	// Verify metadata
	assert.Len(t, result.Metadata.ProvidersQueried, 2)
	assert.Empty(t, result.Metadata.ProviderErrors)
	assert.Equal(t, 5, result.Metadata.TotalResults)

	// Verify both providers were called
	assert.Equal(t, 1, provider1.CallCount())
	assert.Equal(t, 1, provider2.CallCount())
}

// TestUnifiedSearch_PartialFailure tests that the use case returns
// partial results when some providers fail.
func TestUnifiedSearch_PartialFailure(t *testing.T) {
	// Arrange
	provider1 := mock.NewProvider(domain.TypeAccommodation).WithItems(mock.SampleItems(domain.TypeAccommodation, 2))
	provider2 := mock.NewProvider(domain.TypeActivity).WithError(errors.New("connection refused"))

	uc := CreateUseCase([]domain.SearchProvider{provider1, provider2})

	// Act
	result, err := uc.Search(context.Background(), DefaultDomainRequest())

	// Assert - Should succeed with partial results
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Results, 2)

	// Verify metadata
	assert.Len(t, result.Metadata.ProvidersQueried, 2)
	require.Contains(t, result.Metadata.ProviderErrors, "activity")
	assert.Contains(t, result.Metadata.ProviderErrors["activity"], "connection refused")
}

// TestUnifiedSearch_AllProvidersFail tests that total provider failure is
// reported per provider, not as a search-level error.
func TestUnifiedSearch_AllProvidersFail(t *testing.T) {
	// Arrange
	provider1 := mock.NewProvider(domain.TypeAccommodation).WithError(errors.New("network error"))
	provider2 := mock.NewProvider(domain.TypeActivity).WithError(errors.New("timeout"))

	uc := CreateUseCase([]domain.SearchProvider{provider1, provider2})

	// Act
	result, err := uc.Search(context.Background(), DefaultDomainRequest())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Results)
	assert.Len(t, result.Errors, 2)
}

// TestUnifiedSearch_InvalidRequest tests that request validation rejects
// a bad request before any provider is queried.
func TestUnifiedSearch_InvalidRequest(t *testing.T) {
	// Arrange
	provider := mock.NewProvider(domain.TypeActivity).WithItems(mock.SampleItems(domain.TypeActivity, 1))
	uc := CreateUseCase([]domain.SearchProvider{provider})

	req := DefaultDomainRequest()
	req.Query = ""

	// Act
	result, err := uc.Search(context.Background(), req)

	// Assert
	assert.Error(t, err)
	assert.True(t, domain.IsInvalidRequest(err))
	assert.Nil(t, result)
	assert.Zero(t, provider.CallCount())
}

// TestUnifiedSearch_ProviderTimeout tests that slow providers are timed out
// while fast ones still contribute results.
func TestUnifiedSearch_ProviderTimeout(t *testing.T) {
	// Arrange - One provider takes longer than the per-provider timeout
	slow := mock.NewProvider(domain.TypeActivity).
		WithDelay(500 * time.Millisecond).
		WithItems(mock.SampleItems(domain.TypeActivity, 1))
	fast := mock.NewProvider(domain.TypeAccommodation).
		WithItems(mock.SampleItems(domain.TypeAccommodation, 2))

	config := &usecase.Config{ProviderTimeout: 100 * time.Millisecond}
	uc := CreateUseCaseWithConfig([]domain.SearchProvider{slow, fast}, config)

	// Act
	result, err := uc.Search(context.Background(), DefaultDomainRequest())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Results, 2)
	require.Contains(t, result.Errors, "activity")
	assert.Contains(t, result.Errors["activity"], context.DeadlineExceeded.Error())
}

// TestUnifiedSearch_ContextCancellation tests that context cancellation is respected.
func TestUnifiedSearch_ContextCancellation(t *testing.T) {
	// Arrange
	provider := mock.NewProvider(domain.TypeActivity).
		WithDelay(1 * time.Second).
		WithItems(mock.SampleItems(domain.TypeActivity, 1))

	uc := CreateUseCase([]domain.SearchProvider{provider})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	// Act
	result, err := uc.Search(ctx, DefaultDomainRequest())

	// Assert - The cancelled provider is recorded as failed
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Results)
	require.Contains(t, result.Errors, "activity")
	assert.Contains(t, result.Errors["activity"], context.Canceled.Error())
}

// TestUnifiedSearch_CacheHit tests that an identical repeat request is
// served from cache without touching providers again.
func TestUnifiedSearch_CacheHit(t *testing.T) {
	// Arrange
	provider := mock.NewProvider(domain.TypeAccommodation).WithItems(mock.SampleItems(domain.TypeAccommodation, 2))
	uc := CreateUseCase([]domain.SearchProvider{provider})

	req := DefaultDomainRequest()

	// Act
	first, err := uc.Search(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Search(context.Background(), req)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 1, provider.CallCount(), "cached request must not re-invoke providers")
	assert.Equal(t, first.Metadata.SearchID, second.Metadata.SearchID)
	assert.Len(t, second.Results, 2)
}

// TestUnifiedSearch_CacheMissOnDifferentRequest tests that a changed
// request bypasses the cached entry.
func TestUnifiedSearch_CacheMissOnDifferentRequest(t *testing.T) {
	// Arrange
	provider := mock.NewProvider(domain.TypeAccommodation).WithItems(mock.SampleItems(domain.TypeAccommodation, 1))
	uc := CreateUseCase([]domain.SearchProvider{provider})

	// Act
	_, err := uc.Search(context.Background(), DefaultDomainRequest())
	require.NoError(t, err)

	changed := DefaultDomainRequest()
	changed.Query = "different query entirely"
	_, err = uc.Search(context.Background(), changed)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 2, provider.CallCount())
}

// TestUnifiedSearch_FilterIntegration tests that filters are applied correctly.
func TestUnifiedSearch_FilterIntegration(t *testing.T) {
	// Arrange - Sample items are priced 80, 120, 160
	provider := mock.NewProvider(domain.TypeAccommodation).WithItems(mock.SampleItems(domain.TypeAccommodation, 3))
	uc := CreateUseCase([]domain.SearchProvider{provider})

	req := DefaultDomainRequest()
	req.Filters = &domain.Filters{PriceMax: testutil.FloatPtr(120)}

	// Act
	result, err := uc.Search(context.Background(), req)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Results, 2)
	assert.Equal(t, 3, result.Metadata.TotalResults)
	assert.Equal(t, 2, result.Metadata.ReturnedResults)

	for _, item := range result.Results {
		require.NotNil(t, item.Price)
		assert.LessOrEqual(t, *item.Price, 120.0)
	}
}

// TestUnifiedSearch_SortingIntegration tests that sorting is applied correctly.
func TestUnifiedSearch_SortingIntegration(t *testing.T) {
	// Arrange
	provider := mock.NewProvider(domain.TypeActivity).WithItems(mock.SampleItems(domain.TypeActivity, 3))
	uc := CreateUseCase([]domain.SearchProvider{provider})

	req := DefaultDomainRequest()
	req.SortBy = domain.SortByPrice
	req.SortOrder = domain.SortAsc

	// Act
	result, err := uc.Search(context.Background(), req)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Results, 3)

	// Verify sorted by price ascending
	for i := 1; i < len(result.Results); i++ {
		require.NotNil(t, result.Results[i-1].Price)
		require.NotNil(t, result.Results[i].Price)
		assert.LessOrEqual(t, *result.Results[i-1].Price, *result.Results[i].Price)
	}
}

// TestUnifiedSearch_NoProviders tests behavior with no providers configured.
func TestUnifiedSearch_NoProviders(t *testing.T) {
	// Arrange
	uc := CreateUseCase(nil)

	// Act
	result, err := uc.Search(context.Background(), DefaultDomainRequest())

	// Assert - Zero registered providers short-circuits to an empty response
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Results)
	assert.Empty(t, result.Metadata.ProvidersQueried)
	assert.NotEmpty(t, result.Metadata.SearchID)
}

// TestUnifiedSearch_EmptyResults tests behavior when providers return no items.
func TestUnifiedSearch_EmptyResults(t *testing.T) {
	// Arrange - Provider returns empty slice (no error)
	provider := mock.NewProvider(domain.TypeActivity).WithItems([]domain.ResultItem{})
	uc := CreateUseCase([]domain.SearchProvider{provider})

	// Act
	result, err := uc.Search(context.Background(), DefaultDomainRequest())

	// Assert - Should succeed with empty results
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Results)
	assert.Equal(t, 0, result.Metadata.TotalResults)
	assert.Empty(t, result.Errors)
}

// TestUnifiedSearch_MixedProviderResults tests providers with varying result counts.
func TestUnifiedSearch_MixedProviderResults(t *testing.T) {
	// Arrange
	provider1 := mock.NewProvider(domain.TypeDestination).WithItems(mock.SampleItems(domain.TypeDestination, 5))
	provider2 := mock.NewProvider(domain.TypeAccommodation).WithItems([]domain.ResultItem{}) // No items
	provider3 := mock.NewProvider(domain.TypeActivity).WithItems(mock.SampleItems(domain.TypeActivity, 3))
	provider4 := mock.NewProvider(domain.TypeFlight).WithError(errors.New("unavailable"))

	uc := CreateUseCase([]domain.SearchProvider{provider1, provider2, provider3, provider4})

	// Act
	result, err := uc.Search(context.Background(), DefaultDomainRequest())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Results, 8) // 5 + 0 + 3

	// All four providers should be queried; only the flight one failed
	assert.Len(t, result.Metadata.ProvidersQueried, 4)
	require.Len(t, result.Metadata.ProviderErrors, 1)
	assert.Contains(t, result.Metadata.ProviderErrors, "flight")
}
