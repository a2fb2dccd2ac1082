package client

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/asc/pkg/asc"
)

func generateKeyPEM(t *testing.T) (*ecdsa.PrivateKey, []byte) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	return key, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()

	_, keyPEM := generateKeyPEM(t)

	keyPath := filepath.Join(t.TempDir(), "AuthKey_2X9R4HXF34.p8")
	require.NoError(t, os.WriteFile(keyPath, keyPEM, 0o600))

	tests := []struct {
		name    string
		config  *asc.Config
		wantErr error
	}{
		{"nil config", nil, asc.ErrConfigRequired},
		{"missing issuer", &asc.Config{KeyID: "kid", PrivateKey: keyPEM}, asc.ErrConfiguration},
		{"missing key id", &asc.Config{Issuer: "iss", PrivateKey: keyPEM}, asc.ErrConfiguration},
		{"missing key", &asc.Config{Issuer: "iss", KeyID: "kid"}, asc.ErrConfiguration},
		{"both key sources", &asc.Config{Issuer: "iss", KeyID: "kid", PrivateKey: keyPEM, PrivateKeyPath: keyPath}, asc.ErrPrivateKeyConflict},
		{"unreadable key file", &asc.Config{Issuer: "iss", KeyID: "kid", PrivateKeyPath: keyPath + ".missing"}, asc.ErrConfiguration},
		{"missing key id with unreadable key file", &asc.Config{Issuer: "iss", PrivateKeyPath: keyPath + ".missing"}, asc.ErrConfiguration},
		{"malformed key", &asc.Config{Issuer: "iss", KeyID: "kid", PrivateKey: []byte("not a key")}, asc.ErrSigning},
		{"inline key", &asc.Config{Issuer: "iss", KeyID: "kid", PrivateKey: keyPEM}, nil},
		{"key file", &asc.Config{Issuer: "iss", KeyID: "kid", PrivateKeyPath: keyPath}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := New(tt.config)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, asc.DefaultBaseURL, client.BaseURL())
		})
	}
}

func TestClient_SignedRequests(t *testing.T) {
	t.Parallel()

	key, keyPEM := generateKeyPEM(t)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		bearer, found := strings.CutPrefix(request.Header.Get("Authorization"), "Bearer ")
		assert.True(t, found)

		parsed, err := jwt.Parse(bearer, func(*jwt.Token) (interface{}, error) {
			return &key.PublicKey, nil
		}, jwt.WithValidMethods([]string{"ES256"}), jwt.WithAudience("appstoreconnect-v1"), jwt.WithIssuer("issuer-id"))
		assert.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, "2X9R4HXF34", parsed.Header["kid"])
		assert.Equal(t, "asc-test", request.Header.Get("User-Agent"))

		writeJSON(writer, http.StatusOK, pageJSON("", 0))
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()

	client, err := New(&asc.Config{
		Issuer:            "issuer-id",
		KeyID:             "2X9R4HXF34",
		PrivateKey:        keyPEM,
		BaseURL:           server.URL + "/v1",
		UserAgent:         "asc-test",
		MetricsRegisterer: registry,
	})
	require.NoError(t, err)

	_, err = client.Apps().List(context.Background(), nil)
	require.NoError(t, err)

	token, err := client.Token(context.Background())
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	count, err := testutil.GatherAndCount(registry, "asc_requests_total", "asc_token_generations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestClient_TokenWithoutManager(t *testing.T) {
	t.Parallel()

	client, err := NewWithTokenManager(&asc.Config{}, nil)
	require.NoError(t, err)

	_, err = client.Token(context.Background())
	require.ErrorIs(t, err, ErrNoTokenManagerConfigured)
}

func TestClient_TransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client, err := NewWithTokenManager(&asc.Config{BaseURL: serverURL}, &staticTokenManager{token: testToken})
	require.NoError(t, err)

	devices, err := client.Devices().List(context.Background(), nil)
	assert.Nil(t, devices)
	require.ErrorIs(t, err, asc.ErrTransport)
	assert.NotErrorIs(t, err, asc.ErrServer)
}

func TestClient_CreateRejectsNilRequest(t *testing.T) {
	t.Parallel()

	client, _ := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		t.Errorf("unexpected request %s %s", request.Method, request.URL.Path)
	})

	ctx := context.Background()

	_, err := client.BundleIDs().Register(ctx, nil)
	require.ErrorIs(t, err, asc.ErrNilRequest)

	_, err = client.Certificates().Create(ctx, nil)
	require.ErrorIs(t, err, asc.ErrNilRequest)

	_, err = client.Profiles().Create(ctx, nil)
	require.ErrorIs(t, err, asc.ErrNilRequest)
}
