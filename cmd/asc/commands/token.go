package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/asc/internal/constants"
)

// TokenInfo is the decoded, unverified view of a bearer token.
type TokenInfo struct {
	KeyID     string    `json:"key_id"     yaml:"key_id"`
	Issuer    string    `json:"issuer"     yaml:"issuer"`
	Audience  string    `json:"audience"   yaml:"audience"`
	IssuedAt  time.Time `json:"issued_at"  yaml:"issued_at"`
	ExpiresAt time.Time `json:"expires_at" yaml:"expires_at"`
}

// NewTokenCommand creates the token command.
func NewTokenCommand() *cobra.Command {
	var decode bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token",
		Long: `Sign and print a bearer token for the configured API key, e.g. for use with curl:

  curl -H "Authorization: Bearer $(asc token)" https://api.appstoreconnect.apple.com/v1/apps`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			token, err := client.Token(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}

			if !decode {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), token)

				return err
			}

			info, err := decodeToken(token)
			if err != nil {
				return err
			}

			return writeOutput(cmd, info, func(writer io.Writer) error {
				return renderProperties(writer, [][]string{
					{"Key ID", info.KeyID},
					{"Issuer", info.Issuer},
					{"Audience", info.Audience},
					{"Issued At", formatTime(info.IssuedAt)},
					{"Expires At", formatTime(info.ExpiresAt)},
					{"Expires In", time.Until(info.ExpiresAt).Round(time.Second).String()},
				})
			})
		},
	}

	cmd.Flags().BoolVar(&decode, "decode", false, "show the token header and claims instead of the token")

	return cmd
}

// decodeToken reads the header and claims of token without verifying the
// signature.
func decodeToken(token string) (*TokenInfo, error) {
	if len(strings.Split(token, ".")) != constants.TokenPartsCount {
		return nil, constants.ErrInvalidJWTFormat
	}

	claims := jwt.MapClaims{}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	expiresAt, err := claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return nil, constants.ErrNoExpirationClaim
	}

	info := &TokenInfo{ExpiresAt: expiresAt.Time}

	if kid, ok := parsed.Header["kid"].(string); ok {
		info.KeyID = kid
	}

	if issuer, err := claims.GetIssuer(); err == nil {
		info.Issuer = issuer
	}

	if audience, err := claims.GetAudience(); err == nil {
		info.Audience = strings.Join(audience, ",")
	}

	if issuedAt, err := claims.GetIssuedAt(); err == nil && issuedAt != nil {
		info.IssuedAt = issuedAt.Time
	}

	return info, nil
}
