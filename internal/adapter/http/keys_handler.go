// Package http provides the HTTP handler layer for the unified travel
// search API.
package http

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripsage/unified-travel-search/internal/adapter/http/response"
	"github.com/tripsage/unified-travel-search/internal/domain"
	"github.com/tripsage/unified-travel-search/internal/secrets"
)

// userIDHeader carries the authenticated caller identity. Authentication
// itself happens upstream; an empty header is rejected.
const userIDHeader = "X-User-ID"

// KeysHandler handles HTTP requests for the BYOK key lifecycle.
type KeysHandler struct {
	service secrets.Service
}

// NewKeysHandler creates a new KeysHandler with the given service.
func NewKeysHandler(svc secrets.Service) *KeysHandler {
	return &KeysHandler{
		service: svc,
	}
}

// Create handles POST /api/v1/keys
//
// @Summary Register an API key
// @Description Validate, encrypt, and store a user-supplied API key
// @Tags keys
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param request body CreateKeyRequest true "Key to register"
// @Success 201 {object} KeyResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "Duplicate name or key limit reached"
// @Router /api/v1/keys [post]
func (h *KeysHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	var req CreateKeyRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	secret, err := h.service.Create(c.Request().Context(), secrets.CreateInput{
		UserID:          userID,
		Name:            req.Name,
		Provider:        domain.KeyProvider(strings.ToLower(req.Provider)),
		Plaintext:       req.Value,
		KeyType:         req.KeyType,
		ExpiresAt:       req.ExpiresAt,
		RateLimitPerMin: req.RateLimitPerMin,
		Metadata:        req.Metadata,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, ToKeyResponse(secret))
}

// List handles GET /api/v1/keys
//
// @Summary List API keys
// @Tags keys
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Success 200 {object} KeyListResponse
// @Router /api/v1/keys [get]
func (h *KeysHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	list, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToKeyListResponse(list))
}

// Get handles GET /api/v1/keys/:id
//
// @Summary Get an API key
// @Tags keys
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param id path string true "Key ID"
// @Success 200 {object} KeyResponse
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/keys/{id} [get]
func (h *KeysHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	secret, err := h.service.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToKeyResponse(secret))
}

// Validate handles POST /api/v1/keys/:id/validate
//
// @Summary Re-validate an API key
// @Description Check the stored key against its provider and record the outcome
// @Tags keys
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param id path string true "Key ID"
// @Success 200 {object} ValidateKeyResponse
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/keys/{id}/validate [post]
func (h *KeysHandler) Validate(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.service.Validate(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &ValidateKeyResponse{
		IsValid:           result.IsValid,
		ConfirmedProvider: string(result.ConfirmedProvider),
		ErrorMessage:      result.ErrorMessage,
	})
}

// Rotate handles POST /api/v1/keys/:id/rotate
//
// @Summary Rotate an API key
// @Description Replace the stored value with a freshly validated one
// @Tags keys
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param id path string true "Key ID"
// @Param request body RotateKeyRequest true "Replacement value"
// @Success 200 {object} KeyResponse
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/keys/{id}/rotate [post]
func (h *KeysHandler) Rotate(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	var req RotateKeyRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	secret, err := h.service.Rotate(c.Request().Context(), userID, c.Param("id"), req.Value)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToKeyResponse(secret))
}

// Deactivate handles POST /api/v1/keys/:id/deactivate
//
// @Summary Deactivate an API key
// @Tags keys
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param id path string true "Key ID"
// @Success 200 {object} KeyResponse
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/keys/{id}/deactivate [post]
func (h *KeysHandler) Deactivate(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	secret, err := h.service.Deactivate(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToKeyResponse(secret))
}

// Reactivate handles POST /api/v1/keys/:id/reactivate
//
// @Summary Reactivate an API key
// @Description Re-validate the stored key and flip it back to active
// @Tags keys
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param id path string true "Key ID"
// @Success 200 {object} KeyResponse
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/keys/{id}/reactivate [post]
func (h *KeysHandler) Reactivate(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	secret, err := h.service.Reactivate(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToKeyResponse(secret))
}

// SetPrimary handles POST /api/v1/keys/:id/primary
//
// @Summary Mark an API key as primary
// @Description Designate the key as primary for its provider, demoting any previous primary
// @Tags keys
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param id path string true "Key ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/keys/{id}/primary [post]
func (h *KeysHandler) SetPrimary(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.service.SetPrimary(c.Request().Context(), userID, c.Param("id")); err != nil {
		return h.handleError(c, err)
	}

	return response.NoContent(c)
}

// Delete handles DELETE /api/v1/keys/:id
//
// @Summary Delete an API key
// @Description Permanently remove the key; there is no soft delete
// @Tags keys
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param id path string true "Key ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/keys/{id} [delete]
func (h *KeysHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return h.handleError(c, err)
	}

	return response.NoContent(c)
}

// handleError maps secret lifecycle errors to HTTP responses.
func (h *KeysHandler) handleError(c echo.Context, err error) error {
	switch {
	case domain.IsSecretNotFound(err):
		return response.NotFound(c)

	case errors.Is(err, domain.ErrDuplicateSecretName):
		return response.Conflict(c, "a key with this name already exists")

	case errors.Is(err, domain.ErrSecretLimitExceeded):
		return response.Conflict(c, "key limit reached for this user")

	case errors.Is(err, domain.ErrRateLimited):
		return response.TooManyRequests(c)

	case errors.Is(err, domain.ErrExternalValidation):
		return response.BadRequest(c, err.Error())

	case domain.IsInvalidRequest(err):
		return response.ValidationErrorWithMessage(c, err.Error())

	default:
		return response.InternalServerError(c)
	}
}

// callerID extracts the authenticated user identity from the request.
func callerID(c echo.Context) (string, error) {
	userID := strings.TrimSpace(c.Request().Header.Get(userIDHeader))
	if userID == "" {
		return "", errors.New("X-User-ID header is required")
	}
	return userID, nil
}
