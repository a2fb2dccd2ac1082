package commands

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// subcommandNames lists the names of the direct subcommands of cmd.
func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, subcmd := range cmd.Commands() {
		names = append(names, subcmd.Name())
	}

	return names
}

// resetViper clears global configuration before and after a test.
func resetViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// writeKeyFile stores a fresh P-256 key as a .p8 file and returns its path.
func writeKeyFile(t *testing.T) (*ecdsa.PrivateKey, string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	keyPath := filepath.Join(t.TempDir(), "AuthKey_2X9R4HXF34.p8")
	require.NoError(t, os.WriteFile(keyPath, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), 0o600))

	return key, keyPath
}

// setupAPI points the CLI configuration at a test server.
func setupAPI(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	resetViper(t)

	_, keyPath := writeKeyFile(t)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	viper.Set(KeyIssuer, "57246542-96fe-1a63-e053-0824d011072a")
	viper.Set(KeyKeyID, "2X9R4HXF34")
	viper.Set(KeyPrivateKeyPath, keyPath)
	viper.Set(KeyBaseURL, server.URL+"/v1")
	viper.Set(KeyOutput, "json")

	return server
}

// runCommand executes cmd with args and returns everything it printed.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var output bytes.Buffer

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetOut(&output)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return output.String(), err
}

func writeJSON(writer http.ResponseWriter, status int, body string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_, _ = writer.Write([]byte(body))
}

func deviceJSON(id, name, udid string) string {
	return fmt.Sprintf(`{
		"type": "devices",
		"id": %q,
		"attributes": {
			"addedDate": "2022-12-10T12:02:45.000+00:00",
			"name": %q,
			"deviceClass": "IPHONE",
			"model": "iPhone 14",
			"udid": %q,
			"platform": "IOS",
			"status": "ENABLED"
		},
		"links": {"self": "https://api.appstoreconnect.apple.com/v1/devices/%s"}
	}`, id, name, udid, id)
}

func pageJSON(next string, total int, items ...string) string {
	links := `"self": "https://api.appstoreconnect.apple.com/v1/devices"`
	if next != "" {
		links += fmt.Sprintf(`, "next": %q`, next)
	}

	return fmt.Sprintf(`{"data": [%s], "links": {%s}, "meta": {"paging": {"total": %d, "limit": 50}}}`,
		strings.Join(items, ","), links, total)
}

func errorJSON(status, code, detail string) string {
	return fmt.Sprintf(`{"errors": [{"status": %q, "code": %q, "title": "Request failed", "detail": %q}]}`,
		status, code, detail)
}
