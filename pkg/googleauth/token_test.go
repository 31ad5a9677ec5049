package googleauth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beautyflow/leadfunnel/pkg/googleauth"
)

func newTestSigner(t *testing.T) *googleauth.Signer {
	t.Helper()

	_, pemKey := generateTestKey(t)
	signer, err := googleauth.NewSigner(testServiceAccount, pemKey)
	require.NoError(t, err)
	return signer
}

func TestExchanger_Token(t *testing.T) {
	t.Parallel()

	var gotGrantType, gotAssertion string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotGrantType = r.PostFormValue("grant_type")
		gotAssertion = r.PostFormValue("assertion")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"ya29.test-token","expires_in":3600,"token_type":"Bearer"}`))
	}))
	defer srv.Close()

	exchanger := googleauth.NewExchanger(newTestSigner(t), googleauth.WithEndpoint(srv.URL))

	token, err := exchanger.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ya29.test-token", token)
	assert.Equal(t, "urn:ietf:params:oauth:grant-type:jwt-bearer", gotGrantType)
	assert.NotEmpty(t, gotAssertion)
}

func TestExchanger_UpstreamRejection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid JWT signature."}`))
	}))
	defer srv.Close()

	exchanger := googleauth.NewExchanger(newTestSigner(t), googleauth.WithEndpoint(srv.URL))

	_, err := exchanger.Token(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, googleauth.ErrTokenExchange)
	// The upstream body travels with the error for server-side logging.
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestExchanger_EmptyAccessToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	exchanger := googleauth.NewExchanger(newTestSigner(t), googleauth.WithEndpoint(srv.URL))

	_, err := exchanger.Token(context.Background())
	assert.ErrorIs(t, err, googleauth.ErrTokenExchange)
}

func TestExchanger_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed immediately: connection refused

	exchanger := googleauth.NewExchanger(newTestSigner(t), googleauth.WithEndpoint(srv.URL))

	_, err := exchanger.Token(context.Background())
	assert.ErrorIs(t, err, googleauth.ErrTokenExchange)
}
