package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/goclob/clob/signing"
	"github.com/betbot/goclob/clob/types"
)

const testKeyHex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func newTestSigner(t *testing.T) *signing.PrivateKeySigner {
	t.Helper()
	s, err := signing.NewSignerFromHex(testKeyHex)
	require.NoError(t, err)
	return s
}

func testCreds() *types.ApiKeyCreds {
	return &types.ApiKeyCreds{Key: "k", Secret: "c2VjcmV0", Passphrase: "p"}
}

func TestClient_AuthGating(t *testing.T) {
	ctx := context.Background()

	unauth := NewClient("http://localhost:1")
	_, err := unauth.CreateAPIKey(ctx, nil)
	assert.ErrorIs(t, err, ErrSignerNotSet)
	_, err = unauth.Address()
	assert.ErrorIs(t, err, ErrSignerNotSet)

	walletOnly := NewClientWithSigner("http://localhost:1", types.ChainPolygon, newTestSigner(t))
	require.NoError(t, walletOnly.CanL1Auth())
	_, err = walletOnly.GetAPIKeys(ctx)
	assert.ErrorIs(t, err, ErrCredsNotSet)
	_, err = walletOnly.DeleteAPIKey(ctx)
	assert.ErrorIs(t, err, ErrCredsNotSet)

	walletOnly.SetApiCreds(testCreds())
	assert.NoError(t, walletOnly.CanL2Auth())
}

func TestClient_Address(t *testing.T) {
	c := NewClientWithSigner("http://localhost:1", types.ChainPolygon, newTestSigner(t))
	addr, err := c.Address()
	require.NoError(t, err)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", addr.Hex())
}

func TestClient_CreateAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, EndpointCreateAPIKey, r.URL.Path)
		// the L1 header set must be attached in full
		for _, h := range []string{
			types.HeaderPolyAddress,
			types.HeaderPolySignature,
			types.HeaderPolyTimestamp,
			types.HeaderPolyNonce,
		} {
			assert.NotEmpty(t, r.Header.Get(h), h)
		}
		assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", r.Header.Get(types.HeaderPolyAddress))
		json.NewEncoder(w).Encode(types.ApiKeyRaw{ApiKey: "id", Secret: "c2VjcmV0", Passphrase: "pass"})
	}))
	defer srv.Close()

	c := NewClientWithSigner(srv.URL, types.ChainPolygon, newTestSigner(t))
	creds, err := c.CreateAPIKey(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, &types.ApiKeyCreds{Key: "id", Secret: "c2VjcmV0", Passphrase: "pass"}, creds)
}

func TestClient_CreateOrDeriveAPIKey_FallsBackOnFailure(t *testing.T) {
	var createCalls, deriveCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == EndpointCreateAPIKey:
			createCalls++
			http.Error(w, "boom", http.StatusInternalServerError)
		case r.Method == http.MethodGet && r.URL.Path == EndpointDeriveAPIKey:
			deriveCalls++
			json.NewEncoder(w).Encode(types.ApiKeyRaw{ApiKey: "derived", Secret: "c2VjcmV0", Passphrase: "pass"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClientWithSigner(srv.URL, types.ChainPolygon, newTestSigner(t))
	creds, err := c.CreateOrDeriveAPIKey(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "derived", creds.Key)
	assert.Equal(t, 1, createCalls)
	assert.Equal(t, 1, deriveCalls)
}

func TestClient_CreateOrDeriveAPIKey_PrefersCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == EndpointCreateAPIKey:
			json.NewEncoder(w).Encode(types.ApiKeyRaw{ApiKey: "created", Secret: "c2VjcmV0", Passphrase: "pass"})
		default:
			t.Errorf("unexpected call: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClientWithSigner(srv.URL, types.ChainPolygon, newTestSigner(t))
	creds, err := c.CreateOrDeriveAPIKey(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "created", creds.Key)
}

func TestClient_GetAPIKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, EndpointGetAPIKeys, r.URL.Path)
		for _, h := range []string{
			types.HeaderPolyAddress,
			types.HeaderPolySignature,
			types.HeaderPolyTimestamp,
			types.HeaderPolyAPIKey,
			types.HeaderPolyPassphrase,
		} {
			assert.NotEmpty(t, r.Header.Get(h), h)
		}
		assert.Equal(t, "k", r.Header.Get(types.HeaderPolyAPIKey))
		assert.Equal(t, "p", r.Header.Get(types.HeaderPolyPassphrase))
		w.Write([]byte(`{"apiKeys":["a","b"]}`))
	}))
	defer srv.Close()

	c := NewClientWithCreds(srv.URL, types.ChainPolygon, newTestSigner(t), testCreds())
	keys, err := c.GetAPIKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestClient_DeleteAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`"OK"`))
	}))
	defer srv.Close()

	c := NewClientWithCreds(srv.URL, types.ChainPolygon, newTestSigner(t), testCreds())
	out, err := c.DeleteAPIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `"OK"`, out)
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClientWithCreds(srv.URL, types.ChainPolygon, newTestSigner(t), testCreds())
	_, err := c.GetAPIKeys(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
