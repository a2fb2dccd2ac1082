package auth

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Static errors for err113 compliance.
var (
	ErrNotECDSAKey    = errors.New("private key is not an ECDSA key")
	ErrUnsupportedKey = errors.New("private key is not on the P-256 curve")
	ErrUnparsableKey  = errors.New("private key is neither PKCS#8 nor SEC1")
	ErrNilSigner      = errors.New("signer is nil")
	ErrNilGenerator   = errors.New("token generator is nil")
	ErrEmptySignedJWT = errors.New("signer returned an empty token")
)

// Signer turns a JOSE header and claims into a compact JWS.
type Signer interface {
	Sign(header map[string]interface{}, claims jwt.Claims) (string, error)
}

// ES256Signer signs with an ECDSA P-256 key.
type ES256Signer struct {
	key *ecdsa.PrivateKey
}

// NewES256Signer parses keyData and returns a signer for it. PEM (as in the
// .p8 files App Store Connect hands out) and raw DER are both accepted, in
// PKCS#8 or SEC1 form.
func NewES256Signer(keyData []byte) (*ES256Signer, error) {
	key, err := ParsePrivateKey(keyData)
	if err != nil {
		return nil, err
	}

	return &ES256Signer{key: key}, nil
}

// Sign implements Signer.
func (s *ES256Signer) Sign(header map[string]interface{}, claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	for name, value := range header {
		token.Header[name] = value
	}

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// PublicKey returns the verification key.
func (s *ES256Signer) PublicKey() *ecdsa.PublicKey {
	return &s.key.PublicKey
}

// ParsePrivateKey decodes an ECDSA P-256 private key.
func ParsePrivateKey(keyData []byte) (*ecdsa.PrivateKey, error) {
	var (
		key *ecdsa.PrivateKey
		err error
	)

	if block, _ := pem.Decode(keyData); block != nil {
		key, err = jwt.ParseECPrivateKeyFromPEM(keyData)
	} else {
		key, err = parseDER(keyData)
	}

	if err != nil {
		return nil, err
	}

	if key.Curve != elliptic.P256() {
		return nil, ErrUnsupportedKey
	}

	return key, nil
}

func parseDER(der []byte) (*ecdsa.PrivateKey, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err == nil {
		key, ok := parsed.(*ecdsa.PrivateKey)
		if !ok {
			return nil, ErrNotECDSAKey
		}

		return key, nil
	}

	key, err := x509.ParseECPrivateKey(der)
	if err != nil {
		return nil, ErrUnparsableKey
	}

	return key, nil
}
