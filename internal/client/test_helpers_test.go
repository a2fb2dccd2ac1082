package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/asc/pkg/asc"
)

const testToken = "test-token"

// staticTokenManager hands out a fixed token.
type staticTokenManager struct {
	token string
}

func (m *staticTokenManager) GetToken(context.Context) (string, error) {
	return m.token, nil
}

func (m *staticTokenManager) RefreshToken(context.Context) error {
	return nil
}

// newTestServer starts a server for handler and a client whose base URL is
// server.URL + "/v1".
func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer "+testToken, request.Header.Get("Authorization"))
		assert.Equal(t, "application/json", request.Header.Get("Accept"))
		handler(writer, request)
	}))
	t.Cleanup(server.Close)

	client, err := NewWithTokenManager(&asc.Config{BaseURL: server.URL + "/v1"}, &staticTokenManager{token: testToken})
	require.NoError(t, err)

	return client, server
}

func writeJSON(writer http.ResponseWriter, status int, body string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_, _ = io.WriteString(writer, body)
}

func readBody(t *testing.T, request *http.Request) string {
	t.Helper()

	body, err := io.ReadAll(request.Body)
	require.NoError(t, err)

	return string(body)
}

func errorBody(status int, code, detail string) string {
	return fmt.Sprintf(`{"errors":[{"status":"%d","code":"%s","title":"Request failed","detail":"%s"}]}`, status, code, detail)
}

func deviceJSON(id, name, udid string) string {
	return fmt.Sprintf(`{
		"type": "devices",
		"id": "%s",
		"attributes": {
			"addedDate": "2022-12-10T12:02:45.000+00:00",
			"name": "%s",
			"deviceClass": "IPHONE",
			"model": null,
			"udid": "%s",
			"platform": "IOS",
			"status": "ENABLED"
		},
		"links": {"self": "https://api.appstoreconnect.apple.com/v1/devices/%s"}
	}`, id, name, udid, id)
}

func bundleIDJSON(id, identifier string) string {
	return fmt.Sprintf(`{
		"type": "bundleIds",
		"id": "%s",
		"attributes": {
			"name": "Example",
			"identifier": "%s",
			"platform": "IOS",
			"seedId": "ABCDE12345"
		},
		"relationships": {
			"profiles": {
				"meta": {"paging": {"total": 1, "limit": 10}},
				"links": {"self": "s", "related": "r"}
			}
		},
		"links": {"self": "https://api.appstoreconnect.apple.com/v1/bundleIds/%s"}
	}`, id, identifier, id)
}

func certificateJSON(id, serial string) string {
	return fmt.Sprintf(`{
		"type": "certificates",
		"id": "%s",
		"attributes": {
			"serialNumber": "%s",
			"certificateContent": "MIIF",
			"displayName": "Created via API",
			"name": "iOS Distribution: Example",
			"csrContent": null,
			"platform": "IOS",
			"expirationDate": "2025-12-10T12:02:45.000+00:00",
			"certificateType": "IOS_DISTRIBUTION"
		},
		"links": {"self": "https://api.appstoreconnect.apple.com/v1/certificates/%s"}
	}`, id, serial, id)
}

func profileJSON(id, name string) string {
	return fmt.Sprintf(`{
		"type": "profiles",
		"id": "%s",
		"attributes": {
			"profileState": "ACTIVE",
			"createdDate": "2024-01-10T09:00:00.000+00:00",
			"profileType": "IOS_APP_DEVELOPMENT",
			"name": "%s",
			"profileContent": "MIAGCSqGSIb3DQEHAqCAMIACAQEx",
			"uuid": "3f1e2b8a-5b11-4d0f-9d1e-2f5d0c6b7a11",
			"platform": "IOS",
			"expirationDate": "2025-01-10T09:00:00.000+00:00"
		},
		"links": {"self": "https://api.appstoreconnect.apple.com/v1/profiles/%s"}
	}`, id, name, id)
}

func userJSON(id, username string) string {
	return fmt.Sprintf(`{
		"type": "users",
		"id": "%s",
		"attributes": {
			"username": "%s",
			"firstName": "Ada",
			"lastName": "Lovelace",
			"roles": ["DEVELOPER", "APP_MANAGER"],
			"allAppsVisible": false,
			"provisioningAllowed": true
		},
		"links": {"self": "https://api.appstoreconnect.apple.com/v1/users/%s"}
	}`, id, username, id)
}

func appJSON(id, name string) string {
	return fmt.Sprintf(`{
		"type": "apps",
		"id": "%s",
		"attributes": {
			"name": "%s",
			"bundleId": "com.example.app",
			"sku": "EXAMPLE1",
			"primaryLocale": "en-US"
		},
		"links": {"self": "https://api.appstoreconnect.apple.com/v1/apps/%s"}
	}`, id, name, id)
}

func entityJSON(data string) string {
	return fmt.Sprintf(`{"data": %s, "links": {"self": "https://api.appstoreconnect.apple.com/v1"}}`, data)
}

// pageJSON renders a collection page; an empty next omits links.next.
func pageJSON(next string, total int, items ...string) string {
	nextLink := ""
	if next != "" {
		nextLink = fmt.Sprintf(`, "next": "%s"`, next)
	}

	data := "["

	for i, item := range items {
		if i > 0 {
			data += ","
		}

		data += item
	}

	data += "]"

	return fmt.Sprintf(`{"data": %s, "links": {"self": "https://api.appstoreconnect.apple.com/v1"%s}, "meta": {"paging": {"total": %d, "limit": %d}}}`,
		data, nextLink, total, len(items))
}
