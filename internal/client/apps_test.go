package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/asc/pkg/asc"
)

func TestAppsClient_List(t *testing.T) {
	t.Parallel()

	client, _ := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/apps", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "filter%5BbundleId%5D=com.example.app&sort=name", request.URL.RawQuery)

		writeJSON(writer, http.StatusOK, pageJSON("", 1, appJSON("app-1", "Example")))
	})

	query := asc.NewAppQuery().WithSort(asc.AppSortName).WithFilterBundleID("com.example.app")

	apps, err := client.Apps().List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, apps.Data, 1)
	assert.Equal(t, asc.ResourceTypeApps, apps.Data[0].Type)
	assert.Equal(t, "com.example.app", apps.Data[0].Attributes.BundleID)
	assert.Equal(t, "EXAMPLE1", apps.Data[0].Attributes.SKU)
}

func TestAppsClient_ListWithoutQuery(t *testing.T) {
	t.Parallel()

	client, _ := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Empty(t, request.URL.RawQuery)
		writeJSON(writer, http.StatusOK, pageJSON("", 0))
	})

	apps, err := client.Apps().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, apps.Data)
}

func TestAppsClient_Get(t *testing.T) {
	t.Parallel()

	client, _ := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/apps/app-1", request.URL.Path)
		writeJSON(writer, http.StatusOK, entityJSON(appJSON("app-1", "Example")))
	})

	app, err := client.Apps().Get(context.Background(), "app-1")
	require.NoError(t, err)
	assert.Equal(t, "app-1", app.Data.ID)
	assert.Equal(t, "en-US", app.Data.Attributes.PrimaryLocale)
}
