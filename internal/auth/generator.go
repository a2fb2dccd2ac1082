package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fivetwenty-io/asc/pkg/asc"
)

// Token timing. The cache window ends five minutes before the signed expiry.
const (
	Audience = "appstoreconnect-v1"

	IssuedAtSkew   = 5 * time.Minute
	SignedLifetime = 15 * time.Minute
	CacheLifetime  = 10 * time.Minute
)

// Generator mints a token valid from now.
type Generator interface {
	Generate(now time.Time) (*Token, error)
}

// Claims are the JWT claims App Store Connect expects. Audience shadows the
// embedded list-valued aud so it serializes as a plain string.
type Claims struct {
	Audience string `json:"aud"`
	jwt.RegisteredClaims
}

// JWTGenerator signs App Store Connect bearer tokens for one identity.
type JWTGenerator struct {
	identity Identity
	signer   Signer
}

// NewJWTGenerator validates identity and prepares an ES256 signer from its
// private key. A missing field is a *asc.ConfigurationError; unusable key
// material is a *asc.SigningError.
func NewJWTGenerator(identity Identity) (*JWTGenerator, error) {
	err := identity.Validate()
	if err != nil {
		return nil, err
	}

	signer, err := NewES256Signer(identity.PrivateKey)
	if err != nil {
		return nil, &asc.SigningError{Err: err}
	}

	return &JWTGenerator{identity: identity, signer: signer}, nil
}

// NewJWTGeneratorWithSigner uses signer in place of the identity's key.
func NewJWTGeneratorWithSigner(identity Identity, signer Signer) (*JWTGenerator, error) {
	err := identity.ValidateOwner()
	if err != nil {
		return nil, err
	}

	if signer == nil {
		return nil, &asc.SigningError{Err: ErrNilSigner}
	}

	return &JWTGenerator{identity: identity, signer: signer}, nil
}

// Generate implements Generator.
func (g *JWTGenerator) Generate(now time.Time) (*Token, error) {
	claims := Claims{
		Audience: Audience,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.identity.Issuer,
			IssuedAt:  jwt.NewNumericDate(now.Add(-IssuedAtSkew)),
			ExpiresAt: jwt.NewNumericDate(now.Add(SignedLifetime)),
		},
	}

	header := map[string]interface{}{
		"alg": jwt.SigningMethodES256.Alg(),
		"kid": g.identity.KeyID,
		"typ": "JWT",
	}

	signed, err := g.signer.Sign(header, claims)
	if err != nil {
		return nil, &asc.SigningError{Err: err}
	}

	if signed == "" {
		return nil, &asc.SigningError{Err: ErrEmptySignedJWT}
	}

	return &Token{Value: signed, ExpiresAt: now.Add(CacheLifetime)}, nil
}
