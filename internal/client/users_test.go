package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/asc/pkg/asc"
)

func TestUsersClient_List(t *testing.T) {
	t.Parallel()

	client, _ := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/users", request.URL.Path)
		assert.Equal(t, "filter%5Broles%5D=DEVELOPER&limit=20&sort=lastName", request.URL.RawQuery)

		writeJSON(writer, http.StatusOK, pageJSON("", 1, userJSON("user-1", "ada@example.com")))
	})

	query := asc.NewUserQuery().
		WithSort(asc.UserSortLastName).
		WithLimit(20).
		WithFilterRoles(asc.UserRoleDeveloper)

	users, err := client.Users().List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, users.Data, 1)
	assert.Equal(t, []asc.UserRole{asc.UserRoleDeveloper, asc.UserRoleAppManager}, users.Data[0].Attributes.Roles)
	assert.True(t, users.Data[0].Attributes.ProvisioningAllowed)
}

func TestUsersClient_Modify(t *testing.T) {
	t.Parallel()

	client, _ := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/users/user-1", request.URL.Path)
		assert.Equal(t, "PATCH", request.Method)
		assert.JSONEq(t, `{
			"data": {
				"type": "users",
				"id": "user-1",
				"attributes": {"roles": ["ADMIN"], "allAppsVisible": false},
				"relationships": {"visibleApps": {"data": [{"id": "app-1", "type": "apps"}]}}
			}
		}`, readBody(t, request))

		writeJSON(writer, http.StatusOK, entityJSON(userJSON("user-1", "ada@example.com")))
	})

	request := asc.NewUserUpdateRequest("user-1").
		WithRoles(asc.UserRoleAdmin).
		WithAllAppsVisible(false).
		WithVisibleApps("app-1")

	user, err := client.Users().Modify(context.Background(), "user-1", request)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Data.Attributes.Username)

	user, err = client.Users().Modify(context.Background(), "user-1", nil)
	assert.Nil(t, user)
	require.ErrorIs(t, err, asc.ErrNilRequest)
}

func TestUsersClient_ModifyFillsIDOnCopy(t *testing.T) {
	t.Parallel()

	client, _ := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.JSONEq(t, `{"data": {"type": "users", "id": "user-1", "attributes": {"provisioningAllowed": true}}}`,
			readBody(t, request))

		writeJSON(writer, http.StatusOK, entityJSON(userJSON("user-1", "ada@example.com")))
	})

	allowed := true
	request := &asc.UserUpdateRequest{Data: asc.UserUpdateData{
		Attributes: asc.UserUpdateAttributes{ProvisioningAllowed: &allowed},
	}}

	_, err := client.Users().Modify(context.Background(), "user-1", request)
	require.NoError(t, err)
	assert.Empty(t, request.Data.ID)
	assert.Empty(t, request.Data.Type)
}

func TestUsersClient_GetRemoveVisibleApps(t *testing.T) {
	t.Parallel()

	client, _ := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		switch {
		case request.URL.Path == "/v1/users/user-1" && request.Method == "GET":
			writeJSON(writer, http.StatusOK, entityJSON(userJSON("user-1", "ada@example.com")))
		case request.URL.Path == "/v1/users/user-1" && request.Method == "DELETE":
			writer.WriteHeader(http.StatusNoContent)
		case request.URL.Path == "/v1/users/user-1/visibleApps":
			assert.Equal(t, "fields%5Bapps%5D=name&limit=5", request.URL.RawQuery)
			writeJSON(writer, http.StatusOK, pageJSON("", 1, appJSON("app-1", "Example")))
		default:
			t.Errorf("unexpected request %s %s", request.Method, request.URL.Path)
		}
	})

	user, err := client.Users().Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Data.Attributes.FirstName)

	apps, err := client.Users().VisibleApps(context.Background(), "user-1",
		asc.NewUserVisibleAppsQuery().WithLimit(5).WithFieldsApps("name"))
	require.NoError(t, err)
	require.Len(t, apps.Data, 1)
	assert.Equal(t, "Example", apps.Data[0].Attributes.Name)

	require.NoError(t, client.Users().Remove(context.Background(), "user-1"))
}
