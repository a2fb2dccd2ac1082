package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fivetwenty-io/asc/internal/auth"
	"github.com/fivetwenty-io/asc/internal/http"
	"github.com/fivetwenty-io/asc/internal/metrics"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// Static errors for err113 compliance.
var (
	ErrNoTokenManagerConfigured = errors.New("no token manager configured")
)

// Client implements the asc.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string

	// Resource clients
	apps         *AppsClient
	bundleIDs    *BundleIDsClient
	certificates *CertificatesClient
	profiles     *ProfilesClient
	devices      *DevicesClient
	users        *UsersClient
}

// New creates a client from config. The identity is validated and the first
// token is signed before New returns, so key problems surface here.
func New(config *asc.Config) (*Client, error) {
	if config == nil {
		return nil, asc.ErrConfigRequired
	}

	identity := auth.Identity{Issuer: config.Issuer, KeyID: config.KeyID}

	err := identity.ValidateOwner()
	if err != nil {
		return nil, err
	}

	identity.PrivateKey, err = loadPrivateKey(config)
	if err != nil {
		return nil, err
	}

	generator, err := auth.NewJWTGenerator(identity)
	if err != nil {
		return nil, fmt.Errorf("creating token generator: %w", err)
	}

	collector, err := createCollector(config)
	if err != nil {
		return nil, err
	}

	var managerOpts []auth.ManagerOption
	if collector != nil {
		managerOpts = append(managerOpts, auth.WithGenerationRecorder(collector))
	}

	tokenManager, err := auth.NewJWTTokenManager(generator, managerOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating token manager: %w", err)
	}

	return newClient(config, tokenManager, collector), nil
}

// NewWithTokenManager creates a client that takes bearer tokens from
// tokenManager instead of signing its own.
func NewWithTokenManager(config *asc.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, asc.ErrConfigRequired
	}

	collector, err := createCollector(config)
	if err != nil {
		return nil, err
	}

	return newClient(config, tokenManager, collector), nil
}

func newClient(config *asc.Config, tokenManager auth.TokenManager, collector *metrics.Collector) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = asc.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, tokenManager, createHTTPClientOptions(config, collector)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      baseURL,
	}

	client.initializeResourceClients()

	return client
}

// loadPrivateKey returns the key material from exactly one of PrivateKey or
// PrivateKeyPath. An empty result is left for identity validation to report.
func loadPrivateKey(config *asc.Config) ([]byte, error) {
	if len(config.PrivateKey) > 0 && config.PrivateKeyPath != "" {
		return nil, &asc.ConfigurationError{Field: "private key", Err: asc.ErrPrivateKeyConflict}
	}

	if config.PrivateKeyPath == "" {
		return config.PrivateKey, nil
	}

	keyData, err := os.ReadFile(config.PrivateKeyPath)
	if err != nil {
		return nil, &asc.ConfigurationError{Field: "private key path", Err: err}
	}

	return keyData, nil
}

func createCollector(config *asc.Config) (*metrics.Collector, error) {
	if config.MetricsRegisterer == nil {
		return nil, nil //nolint:nilnil // metrics are optional
	}

	collector, err := metrics.NewCollector(config.MetricsRegisterer)
	if err != nil {
		return nil, fmt.Errorf("creating metrics collector: %w", err)
	}

	return collector, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *asc.Config, collector *metrics.Collector) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if collector != nil {
		httpOpts = append(httpOpts, http.WithMetrics(collector))
	}

	return httpOpts
}

func (c *Client) initializeResourceClients() {
	c.apps = NewAppsClient(c.httpClient)
	c.bundleIDs = NewBundleIDsClient(c.httpClient)
	c.certificates = NewCertificatesClient(c.httpClient)
	c.profiles = NewProfilesClient(c.httpClient)
	c.devices = NewDevicesClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
}

// Token implements asc.Client.Token.
func (c *Client) Token(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", ErrNoTokenManagerConfigured
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("getting token: %w", err)
	}

	return token, nil
}

// BaseURL returns the API root requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Resource client accessors

// Apps implements asc.Client.Apps.
func (c *Client) Apps() asc.AppsClient {
	return c.apps
}

// BundleIDs implements asc.Client.BundleIDs.
func (c *Client) BundleIDs() asc.BundleIDsClient {
	return c.bundleIDs
}

// Certificates implements asc.Client.Certificates.
func (c *Client) Certificates() asc.CertificatesClient {
	return c.certificates
}

// Profiles implements asc.Client.Profiles.
func (c *Client) Profiles() asc.ProfilesClient {
	return c.profiles
}

// Devices implements asc.Client.Devices.
func (c *Client) Devices() asc.DevicesClient {
	return c.devices
}

// Users implements asc.Client.Users.
func (c *Client) Users() asc.UsersClient {
	return c.users
}

var _ asc.Client = (*Client)(nil)
