package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/asc/internal/http"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// UsersClient implements asc.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// List implements asc.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, query *asc.UserQuery) (*asc.UsersResponse, error) {
	resp, err := c.httpClient.Get(ctx, "/users", query.Pairs())
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	users, err := asc.Decode[asc.UsersResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return users, nil
}

// ListByURL implements asc.UsersClient.ListByURL.
func (c *UsersClient) ListByURL(ctx context.Context, pageURL string) (*asc.UsersResponse, error) {
	resp, err := c.httpClient.Get(ctx, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("listing users page: %w", err)
	}

	users, err := asc.Decode[asc.UsersResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing users page: %w", err)
	}

	return users, nil
}

// Get implements asc.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, id string) (*asc.UserResponse, error) {
	resp, err := c.httpClient.Get(ctx, "/users/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	user, err := asc.Decode[asc.UserResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", id, err)
	}

	return user, nil
}

// Modify implements asc.UsersClient.Modify. The data id sent is id when the
// request leaves it empty; the caller's request is not modified.
func (c *UsersClient) Modify(ctx context.Context, id string, request *asc.UserUpdateRequest) (*asc.UserResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("modifying user: %w", asc.ErrNilRequest)
	}

	body := *request

	if body.Data.ID == "" {
		body.Data.ID = id
	}

	if body.Data.Type == "" {
		body.Data.Type = asc.ResourceTypeUsers
	}

	resp, err := c.httpClient.Patch(ctx, "/users/"+url.PathEscape(id), &body)
	if err != nil {
		return nil, fmt.Errorf("modifying user: %w", err)
	}

	user, err := asc.Decode[asc.UserResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("modifying user %s: %w", id, err)
	}

	return user, nil
}

// Remove implements asc.UsersClient.Remove.
func (c *UsersClient) Remove(ctx context.Context, id string) error {
	resp, err := c.httpClient.Delete(ctx, "/users/"+url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("removing user: %w", err)
	}

	err = asc.DecodeEmpty(resp.StatusCode, resp.Body)
	if err != nil {
		return fmt.Errorf("removing user %s: %w", id, err)
	}

	return nil
}

// VisibleApps implements asc.UsersClient.VisibleApps.
func (c *UsersClient) VisibleApps(ctx context.Context, id string, query *asc.UserVisibleAppsQuery) (*asc.AppsResponse, error) {
	path := fmt.Sprintf("/users/%s/visibleApps", url.PathEscape(id))

	resp, err := c.httpClient.Get(ctx, path, query.Pairs())
	if err != nil {
		return nil, fmt.Errorf("listing visible apps: %w", err)
	}

	apps, err := asc.Decode[asc.AppsResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing apps visible to user %s: %w", id, err)
	}

	return apps, nil
}
