package auth

import (
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// Identity is the API key a client signs with.
type Identity struct {
	Issuer     string
	KeyID      string
	PrivateKey []byte
}

// ValidateOwner checks issuer then key id. It needs no key material, so it
// runs before the private key is loaded.
func (i Identity) ValidateOwner() error {
	switch {
	case i.Issuer == "":
		return &asc.ConfigurationError{Field: "issuer"}
	case i.KeyID == "":
		return &asc.ConfigurationError{Field: "key id"}
	}

	return nil
}

// Validate reports the first missing field, checked in the order issuer,
// key id, private key.
func (i Identity) Validate() error {
	if err := i.ValidateOwner(); err != nil {
		return err
	}

	if len(i.PrivateKey) == 0 {
		return &asc.ConfigurationError{Field: "private key"}
	}

	return nil
}
