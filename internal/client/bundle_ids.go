package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/asc/internal/http"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// BundleIDsClient implements asc.BundleIDsClient.
type BundleIDsClient struct {
	httpClient *http.Client
}

// NewBundleIDsClient creates a new bundle IDs client.
func NewBundleIDsClient(httpClient *http.Client) *BundleIDsClient {
	return &BundleIDsClient{
		httpClient: httpClient,
	}
}

// List implements asc.BundleIDsClient.List.
func (c *BundleIDsClient) List(ctx context.Context, query *asc.BundleIDQuery) (*asc.BundleIDsResponse, error) {
	resp, err := c.httpClient.Get(ctx, "/bundleIds", query.Pairs())
	if err != nil {
		return nil, fmt.Errorf("listing bundle IDs: %w", err)
	}

	bundleIDs, err := asc.Decode[asc.BundleIDsResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing bundle IDs: %w", err)
	}

	return bundleIDs, nil
}

// ListByURL implements asc.BundleIDsClient.ListByURL.
func (c *BundleIDsClient) ListByURL(ctx context.Context, pageURL string) (*asc.BundleIDsResponse, error) {
	resp, err := c.httpClient.Get(ctx, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("listing bundle IDs page: %w", err)
	}

	bundleIDs, err := asc.Decode[asc.BundleIDsResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing bundle IDs page: %w", err)
	}

	return bundleIDs, nil
}

// Get implements asc.BundleIDsClient.Get.
func (c *BundleIDsClient) Get(ctx context.Context, id string) (*asc.BundleIDResponse, error) {
	resp, err := c.httpClient.Get(ctx, "/bundleIds/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting bundle ID: %w", err)
	}

	bundleID, err := asc.Decode[asc.BundleIDResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("getting bundle ID %s: %w", id, err)
	}

	return bundleID, nil
}

// Register implements asc.BundleIDsClient.Register.
func (c *BundleIDsClient) Register(ctx context.Context, request *asc.BundleIDCreateRequest) (*asc.BundleIDResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("registering bundle ID: %w", asc.ErrNilRequest)
	}

	resp, err := c.httpClient.Post(ctx, "/bundleIds", request)
	if err != nil {
		return nil, fmt.Errorf("registering bundle ID: %w", err)
	}

	bundleID, err := asc.Decode[asc.BundleIDResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("registering bundle ID %s: %w", request.Data.Attributes.Identifier, err)
	}

	return bundleID, nil
}

// Delete implements asc.BundleIDsClient.Delete.
func (c *BundleIDsClient) Delete(ctx context.Context, id string) error {
	resp, err := c.httpClient.Delete(ctx, "/bundleIds/"+url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("deleting bundle ID: %w", err)
	}

	err = asc.DecodeEmpty(resp.StatusCode, resp.Body)
	if err != nil {
		return fmt.Errorf("deleting bundle ID %s: %w", id, err)
	}

	return nil
}

// Capabilities implements asc.BundleIDsClient.Capabilities.
func (c *BundleIDsClient) Capabilities(
	ctx context.Context,
	id string,
	query *asc.BundleIDCapabilityQuery,
) (*asc.BundleIDCapabilitiesResponse, error) {
	path := fmt.Sprintf("/bundleIds/%s/bundleIdCapabilities", url.PathEscape(id))

	resp, err := c.httpClient.Get(ctx, path, query.Pairs())
	if err != nil {
		return nil, fmt.Errorf("listing bundle ID capabilities: %w", err)
	}

	capabilities, err := asc.Decode[asc.BundleIDCapabilitiesResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing capabilities of bundle ID %s: %w", id, err)
	}

	return capabilities, nil
}
