package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/asc/internal/http"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// AppsClient implements asc.AppsClient.
type AppsClient struct {
	httpClient *http.Client
}

// NewAppsClient creates a new apps client.
func NewAppsClient(httpClient *http.Client) *AppsClient {
	return &AppsClient{
		httpClient: httpClient,
	}
}

// List implements asc.AppsClient.List.
func (c *AppsClient) List(ctx context.Context, query *asc.AppQuery) (*asc.AppsResponse, error) {
	resp, err := c.httpClient.Get(ctx, "/apps", query.Pairs())
	if err != nil {
		return nil, fmt.Errorf("listing apps: %w", err)
	}

	apps, err := asc.Decode[asc.AppsResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing apps: %w", err)
	}

	return apps, nil
}

// ListByURL implements asc.AppsClient.ListByURL.
func (c *AppsClient) ListByURL(ctx context.Context, pageURL string) (*asc.AppsResponse, error) {
	resp, err := c.httpClient.Get(ctx, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("listing apps page: %w", err)
	}

	apps, err := asc.Decode[asc.AppsResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing apps page: %w", err)
	}

	return apps, nil
}

// Get implements asc.AppsClient.Get.
func (c *AppsClient) Get(ctx context.Context, id string) (*asc.AppResponse, error) {
	resp, err := c.httpClient.Get(ctx, "/apps/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting app: %w", err)
	}

	app, err := asc.Decode[asc.AppResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("getting app %s: %w", id, err)
	}

	return app, nil
}
