package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/asc/internal/http"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// CertificatesClient implements asc.CertificatesClient.
type CertificatesClient struct {
	httpClient *http.Client
}

// NewCertificatesClient creates a new certificates client.
func NewCertificatesClient(httpClient *http.Client) *CertificatesClient {
	return &CertificatesClient{
		httpClient: httpClient,
	}
}

// List implements asc.CertificatesClient.List.
func (c *CertificatesClient) List(ctx context.Context, query *asc.CertificateQuery) (*asc.CertificatesResponse, error) {
	resp, err := c.httpClient.Get(ctx, "/certificates", query.Pairs())
	if err != nil {
		return nil, fmt.Errorf("listing certificates: %w", err)
	}

	certificates, err := asc.Decode[asc.CertificatesResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing certificates: %w", err)
	}

	return certificates, nil
}

// ListByURL implements asc.CertificatesClient.ListByURL.
func (c *CertificatesClient) ListByURL(ctx context.Context, pageURL string) (*asc.CertificatesResponse, error) {
	resp, err := c.httpClient.Get(ctx, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("listing certificates page: %w", err)
	}

	certificates, err := asc.Decode[asc.CertificatesResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing certificates page: %w", err)
	}

	return certificates, nil
}

// Get implements asc.CertificatesClient.Get.
func (c *CertificatesClient) Get(ctx context.Context, id string) (*asc.CertificateResponse, error) {
	resp, err := c.httpClient.Get(ctx, "/certificates/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting certificate: %w", err)
	}

	certificate, err := asc.Decode[asc.CertificateResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("getting certificate %s: %w", id, err)
	}

	return certificate, nil
}

// Create implements asc.CertificatesClient.Create.
func (c *CertificatesClient) Create(ctx context.Context, request *asc.CertificateCreateRequest) (*asc.CertificateResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("creating certificate: %w", asc.ErrNilRequest)
	}

	resp, err := c.httpClient.Post(ctx, "/certificates", request)
	if err != nil {
		return nil, fmt.Errorf("creating certificate: %w", err)
	}

	certificate, err := asc.Decode[asc.CertificateResponse](resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("creating certificate: %w", err)
	}

	return certificate, nil
}

// Revoke implements asc.CertificatesClient.Revoke.
func (c *CertificatesClient) Revoke(ctx context.Context, id string) error {
	resp, err := c.httpClient.Delete(ctx, "/certificates/"+url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("revoking certificate: %w", err)
	}

	err = asc.DecodeEmpty(resp.StatusCode, resp.Body)
	if err != nil {
		return fmt.Errorf("revoking certificate %s: %w", id, err)
	}

	return nil
}
