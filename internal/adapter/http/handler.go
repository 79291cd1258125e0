// Package http provides the HTTP handler layer for the unified travel
// search API. It handles request parsing, validation, response formatting,
// and error mapping.
package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tripsage/unified-travel-search/internal/adapter/http/response"
	"github.com/tripsage/unified-travel-search/internal/domain"
	"github.com/tripsage/unified-travel-search/internal/usecase"
)

// defaultSuggestLimit bounds suggestion responses when the caller does
// not specify a limit.
const defaultSuggestLimit = 10

// SearchHandler handles HTTP requests for unified search endpoints.
type SearchHandler struct {
	useCase usecase.UnifiedSearchUseCase
}

// NewSearchHandler creates a new SearchHandler with the given use case.
func NewSearchHandler(uc usecase.UnifiedSearchUseCase) *SearchHandler {
	return &SearchHandler{
		useCase: uc,
	}
}

// Search handles POST /api/v1/search
//
// @Summary Unified travel search
// @Description Search destinations, flights, accommodations, and activities in one request
// @Tags search
// @Accept json
// @Produce json
// @Param request body UnifiedSearchRequest true "Search criteria"
// @Success 200 {object} domain.UnifiedSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/search [post]
func (h *SearchHandler) Search(c echo.Context) error {
	var req UnifiedSearchRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), ToDomainSearchRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// Suggest handles GET /api/v1/search/suggest
//
// @Summary Search suggestions
// @Description Autocomplete suggestions for a partial search query
// @Tags search
// @Produce json
// @Param q query string true "Partial query"
// @Param limit query int false "Maximum suggestions" default(10)
// @Success 200 {object} SuggestResponse
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/search/suggest [get]
func (h *SearchHandler) Suggest(c echo.Context) error {
	query := c.QueryParam("q")

	limit := defaultSuggestLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "limit must be a non-negative integer")
		}
		limit = parsed
	}

	suggestions, err := h.useCase.Suggest(query, limit)
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.OK(c, &SuggestResponse{
		Query:       query,
		Suggestions: suggestions,
	})
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *SearchHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *SearchHandler) handleError(c echo.Context, err error) error {
	// Pipeline-level failure: nothing could be searched at all.
	if domain.IsOrchestrationFailure(err) {
		return response.ServiceUnavailable(c)
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Check for invalid request (domain validation)
	if domain.IsInvalidRequest(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *SearchHandler) Health(c echo.Context) error {
	return response.Health(c)
}
