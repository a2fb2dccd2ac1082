package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/asc/internal/http"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// DevicesClient implements asc.DevicesClient.
type DevicesClient struct {
	httpClient *http.Client
}

// NewDevicesClient creates a new devices client.
func NewDevicesClient(httpClient *http.Client) *DevicesClient {
	return &DevicesClient{
		httpClient: httpClient,
	}
}

// List implements asc.DevicesClient.List.
func (c *DevicesClient) List(ctx context.Context, query *asc.DeviceQuery) (*asc.DevicesResponse, error) {
	resp, err := c.httpClient.Get(ctx, "/devices", query.Pairs())
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}

	devices, err := asc.Decode[asc.DevicesResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}

	return devices, nil
}

// ListByURL implements asc.DevicesClient.ListByURL.
func (c *DevicesClient) ListByURL(ctx context.Context, pageURL string) (*asc.DevicesResponse, error) {
	resp, err := c.httpClient.Get(ctx, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("listing devices page: %w", err)
	}

	devices, err := asc.Decode[asc.DevicesResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing devices page: %w", err)
	}

	return devices, nil
}

// Get implements asc.DevicesClient.Get.
func (c *DevicesClient) Get(ctx context.Context, id string) (*asc.DeviceResponse, error) {
	resp, err := c.httpClient.Get(ctx, "/devices/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting device: %w", err)
	}

	device, err := asc.Decode[asc.DeviceResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("getting device %s: %w", id, err)
	}

	return device, nil
}

// Register implements asc.DevicesClient.Register.
func (c *DevicesClient) Register(ctx context.Context, request *asc.DeviceCreateRequest) (*asc.DeviceResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("registering device: %w", asc.ErrNilRequest)
	}

	resp, err := c.httpClient.Post(ctx, "/devices", request)
	if err != nil {
		return nil, fmt.Errorf("registering device: %w", err)
	}

	device, err := asc.Decode[asc.DeviceResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("registering device %s: %w", request.Data.Attributes.UDID, err)
	}

	return device, nil
}

// Update implements asc.DevicesClient.Update. The data id sent is id when the
// request leaves it empty; the caller's request is not modified.
func (c *DevicesClient) Update(ctx context.Context, id string, request *asc.DeviceUpdateRequest) (*asc.DeviceResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("updating device: %w", asc.ErrNilRequest)
	}

	body := *request

	if body.Data.ID == "" {
		body.Data.ID = id
	}

	if body.Data.Type == "" {
		body.Data.Type = asc.ResourceTypeDevices
	}

	resp, err := c.httpClient.Patch(ctx, "/devices/"+url.PathEscape(id), &body)
	if err != nil {
		return nil, fmt.Errorf("updating device: %w", err)
	}

	device, err := asc.Decode[asc.DeviceResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("updating device %s: %w", id, err)
	}

	return device, nil
}
