package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/asc/internal/http"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// ProfilesClient implements asc.ProfilesClient.
type ProfilesClient struct {
	httpClient *http.Client
}

// NewProfilesClient creates a new profiles client.
func NewProfilesClient(httpClient *http.Client) *ProfilesClient {
	return &ProfilesClient{
		httpClient: httpClient,
	}
}

// List implements asc.ProfilesClient.List.
func (c *ProfilesClient) List(ctx context.Context, query *asc.ProfileQuery) (*asc.ProfilesResponse, error) {
	resp, err := c.httpClient.Get(ctx, "/profiles", query.Pairs())
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	profiles, err := asc.Decode[asc.ProfilesResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	return profiles, nil
}

// ListByURL implements asc.ProfilesClient.ListByURL.
func (c *ProfilesClient) ListByURL(ctx context.Context, pageURL string) (*asc.ProfilesResponse, error) {
	resp, err := c.httpClient.Get(ctx, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("listing profiles page: %w", err)
	}

	profiles, err := asc.Decode[asc.ProfilesResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing profiles page: %w", err)
	}

	return profiles, nil
}

// Get implements asc.ProfilesClient.Get.
func (c *ProfilesClient) Get(ctx context.Context, id string) (*asc.ProfileResponse, error) {
	resp, err := c.httpClient.Get(ctx, "/profiles/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	profile, err := asc.Decode[asc.ProfileResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("getting profile %s: %w", id, err)
	}

	return profile, nil
}

// Create implements asc.ProfilesClient.Create.
func (c *ProfilesClient) Create(ctx context.Context, request *asc.ProfileCreateRequest) (*asc.ProfileResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("creating profile: %w", asc.ErrNilRequest)
	}

	resp, err := c.httpClient.Post(ctx, "/profiles", request)
	if err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}

	profile, err := asc.Decode[asc.ProfileResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("creating profile %s: %w", request.Data.Attributes.Name, err)
	}

	return profile, nil
}

// Delete implements asc.ProfilesClient.Delete.
func (c *ProfilesClient) Delete(ctx context.Context, id string) error {
	resp, err := c.httpClient.Delete(ctx, "/profiles/"+url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}

	err = asc.DecodeEmpty(resp.StatusCode, resp.Body)
	if err != nil {
		return fmt.Errorf("deleting profile %s: %w", id, err)
	}

	return nil
}
