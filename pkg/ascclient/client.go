package ascclient

import (
	"fmt"

	"github.com/fivetwenty-io/asc/internal/client"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// New creates a new App Store Connect API client.
func New(config *asc.Config) (asc.Client, error) {
	if config == nil {
		return nil, asc.ErrConfigRequired
	}

	cli, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewFromKeyFile creates a client from an issuer, a key id and the path of
// the matching .p8 file.
func NewFromKeyFile(issuer, keyID, keyPath string) (asc.Client, error) {
	return New(&asc.Config{
		Issuer:         issuer,
		KeyID:          keyID,
		PrivateKeyPath: keyPath,
	})
}

// NewWithKey creates a client from an issuer, a key id and the key material.
func NewWithKey(issuer, keyID string, privateKey []byte) (asc.Client, error) {
	return New(&asc.Config{
		Issuer:     issuer,
		KeyID:      keyID,
		PrivateKey: privateKey,
	})
}
