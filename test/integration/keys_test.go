package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/tripsage/unified-travel-search/internal/adapter/http"
)

const keysBase = "/api/v1/keys"

func newKeysTestServer(validator *StubValidator) *TestServer {
	return NewTestServer(CreateUseCase(nil), CreateKeyService(validator))
}

// TestKeys_FullLifecycle walks one key through every lifecycle operation.
func TestKeys_FullLifecycle(t *testing.T) {
	ts := newKeysTestServer(&StubValidator{})
	user := "user-1"

	// Create
	resp := ts.KeysRequest(http.MethodPost, keysBase, CreateKeyRequestBody("Production Key"), user)
	require.Equal(t, http.StatusCreated, resp.Code)

	created, err := resp.ParseKeyResponse()
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Production Key", created.Name)
	assert.Equal(t, "openai", created.Provider)
	assert.Equal(t, "active", created.Status)

	// Get
	resp = ts.KeysRequest(http.MethodGet, keysBase+"/"+created.ID, nil, user)
	require.Equal(t, http.StatusOK, resp.Code)

	// List
	resp = ts.KeysRequest(http.MethodGet, keysBase, nil, user)
	require.Equal(t, http.StatusOK, resp.Code)
	var list httpAdapter.KeyListResponse
	require.NoError(t, json.Unmarshal(resp.Body, &list))
	assert.Len(t, list.Keys, 1)

	// Validate
	resp = ts.KeysRequest(http.MethodPost, keysBase+"/"+created.ID+"/validate", nil, user)
	require.Equal(t, http.StatusOK, resp.Code)
	var validation httpAdapter.ValidateKeyResponse
	require.NoError(t, json.Unmarshal(resp.Body, &validation))
	assert.True(t, validation.IsValid)

	// Rotate
	resp = ts.KeysRequest(http.MethodPost, keysBase+"/"+created.ID+"/rotate",
		map[string]string{"value": "sk-rotated-value"}, user)
	require.Equal(t, http.StatusOK, resp.Code)

	// Deactivate
	resp = ts.KeysRequest(http.MethodPost, keysBase+"/"+created.ID+"/deactivate", nil, user)
	require.Equal(t, http.StatusOK, resp.Code)
	deactivated, err := resp.ParseKeyResponse()
	require.NoError(t, err)
	assert.Equal(t, "inactive", deactivated.Status)

	// Reactivate
	resp = ts.KeysRequest(http.MethodPost, keysBase+"/"+created.ID+"/reactivate", nil, user)
	require.Equal(t, http.StatusOK, resp.Code)
	reactivated, err := resp.ParseKeyResponse()
	require.NoError(t, err)
	assert.Equal(t, "active", reactivated.Status)

	// Set primary
	resp = ts.KeysRequest(http.MethodPost, keysBase+"/"+created.ID+"/primary", nil, user)
	require.Equal(t, http.StatusNoContent, resp.Code)

	// Delete
	resp = ts.KeysRequest(http.MethodDelete, keysBase+"/"+created.ID, nil, user)
	require.Equal(t, http.StatusNoContent, resp.Code)

	// Gone afterwards
	resp = ts.KeysRequest(http.MethodGet, keysBase+"/"+created.ID, nil, user)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// TestKeys_NeverEchoesSecretMaterial asserts that no lifecycle response
// ever carries plaintext, ciphertext, or the lookup hash.
func TestKeys_NeverEchoesSecretMaterial(t *testing.T) {
	ts := newKeysTestServer(&StubValidator{})
	user := "user-1"
	plaintext := "sk-test-Production Key"

	resp := ts.KeysRequest(http.MethodPost, keysBase, CreateKeyRequestBody("Production Key"), user)
	require.Equal(t, http.StatusCreated, resp.Code)
	created, err := resp.ParseKeyResponse()
	require.NoError(t, err)

	paths := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, keysBase, nil},
		{http.MethodGet, keysBase + "/" + created.ID, nil},
		{http.MethodPost, keysBase + "/" + created.ID + "/deactivate", nil},
		{http.MethodPost, keysBase + "/" + created.ID + "/reactivate", nil},
	}

	for _, p := range paths {
		r := ts.KeysRequest(p.method, p.path, p.body, user)
		body := string(r.Body)
		assert.NotContains(t, body, plaintext, "%s %s leaked plaintext", p.method, p.path)
		assert.NotContains(t, body, "encrypted_value", "%s %s leaked ciphertext field", p.method, p.path)
		assert.NotContains(t, body, "lookup_hash", "%s %s leaked lookup hash field", p.method, p.path)
	}
}

// TestKeys_OwnershipIsolation tests that one user's key is invisible to
// another user across all operations.
func TestKeys_OwnershipIsolation(t *testing.T) {
	ts := newKeysTestServer(&StubValidator{})

	resp := ts.KeysRequest(http.MethodPost, keysBase, CreateKeyRequestBody("Owner Key"), "owner")
	require.Equal(t, http.StatusCreated, resp.Code)
	created, err := resp.ParseKeyResponse()
	require.NoError(t, err)

	operations := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, keysBase + "/" + created.ID, nil},
		{http.MethodPost, keysBase + "/" + created.ID + "/validate", nil},
		{http.MethodPost, keysBase + "/" + created.ID + "/rotate", map[string]string{"value": "sk-x"}},
		{http.MethodPost, keysBase + "/" + created.ID + "/deactivate", nil},
		{http.MethodDelete, keysBase + "/" + created.ID, nil},
	}

	for _, op := range operations {
		r := ts.KeysRequest(op.method, op.path, op.body, "intruder")
		assert.Equal(t, http.StatusNotFound, r.Code, "%s %s must look like not-found to a non-owner", op.method, op.path)
	}

	// Other user's list stays empty
	r := ts.KeysRequest(http.MethodGet, keysBase, nil, "intruder")
	require.Equal(t, http.StatusOK, r.Code)
	var list httpAdapter.KeyListResponse
	require.NoError(t, json.Unmarshal(r.Body, &list))
	assert.Empty(t, list.Keys)

	// The owner still sees the key untouched
	r = ts.KeysRequest(http.MethodGet, keysBase+"/"+created.ID, nil, "owner")
	assert.Equal(t, http.StatusOK, r.Code)
}

// TestKeys_DuplicateName tests that a second key with the same display
// name is rejected with a conflict.
func TestKeys_DuplicateName(t *testing.T) {
	ts := newKeysTestServer(&StubValidator{})
	user := "user-1"

	resp := ts.KeysRequest(http.MethodPost, keysBase, CreateKeyRequestBody("My Key"), user)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = ts.KeysRequest(http.MethodPost, keysBase, CreateKeyRequestBody("My Key"), user)
	assert.Equal(t, http.StatusConflict, resp.Code)
}

// TestKeys_RejectedByValidator tests that an externally rejected key is
// never stored.
func TestKeys_RejectedByValidator(t *testing.T) {
	ts := newKeysTestServer(&StubValidator{Result: InvalidResult("key revoked upstream")})
	user := "user-1"

	resp := ts.KeysRequest(http.MethodPost, keysBase, CreateKeyRequestBody("Bad Key"), user)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, string(resp.Body), "key revoked upstream")

	// Nothing stored
	r := ts.KeysRequest(http.MethodGet, keysBase, nil, user)
	require.Equal(t, http.StatusOK, r.Code)
	var list httpAdapter.KeyListResponse
	require.NoError(t, json.Unmarshal(r.Body, &list))
	assert.Empty(t, list.Keys)
}

// TestKeys_MissingUserHeader tests that key operations without a caller
// identity are rejected.
func TestKeys_MissingUserHeader(t *testing.T) {
	ts := newKeysTestServer(&StubValidator{})

	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   keysBase,
		Body:   CreateKeyRequestBody("Headerless"),
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, string(resp.Body), "X-User-ID")
}

// TestKeys_UnsupportedProvider tests provider validation on create.
func TestKeys_UnsupportedProvider(t *testing.T) {
	ts := newKeysTestServer(&StubValidator{})

	body := CreateKeyRequestBody("Odd Provider")
	body["provider"] = "minitel"

	resp := ts.KeysRequest(http.MethodPost, keysBase, body, "user-1")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
