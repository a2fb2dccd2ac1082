package commands

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/asc/internal/constants"
)

func TestTokenCommand(t *testing.T) {
	setupAPI(t, func(writer http.ResponseWriter, request *http.Request) {
		t.Errorf("token must not call the API, got %s %s", request.Method, request.URL.Path)
	})

	key, keyPath := writeKeyFile(t)
	viper.Set(KeyPrivateKeyPath, keyPath)

	t.Run("raw token", func(t *testing.T) {
		output, err := runCommand(t, NewTokenCommand())
		require.NoError(t, err)

		token := strings.TrimSpace(output)
		parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
			return &key.PublicKey, nil
		}, jwt.WithValidMethods([]string{"ES256"}), jwt.WithAudience("appstoreconnect-v1"))
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
	})

	t.Run("decoded", func(t *testing.T) {
		output, err := runCommand(t, NewTokenCommand(), "--decode")
		require.NoError(t, err)

		var info TokenInfo
		require.NoError(t, json.Unmarshal([]byte(output), &info))
		assert.Equal(t, "2X9R4HXF34", info.KeyID)
		assert.Equal(t, "57246542-96fe-1a63-e053-0824d011072a", info.Issuer)
		assert.Equal(t, "appstoreconnect-v1", info.Audience)
		assert.True(t, info.ExpiresAt.After(time.Now()))
		assert.LessOrEqual(t, info.ExpiresAt.Sub(info.IssuedAt), 20*time.Minute)
	})

	t.Run("rejects arguments", func(t *testing.T) {
		_, err := runCommand(t, NewTokenCommand(), "extra")
		require.Error(t, err)
	})
}

func TestDecodeToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"not a JWT", "abc", constants.ErrInvalidJWTFormat},
		{"too many parts", "a.b.c.d", constants.ErrInvalidJWTFormat},
		// {"alg":"none"} . {"iss":"x"} .
		{"no expiry", "eyJhbGciOiJub25lIn0.eyJpc3MiOiJ4In0.", constants.ErrNoExpirationClaim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := decodeToken(tt.token)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
