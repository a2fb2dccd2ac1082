package asc

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBaseURL is the production App Store Connect API root.
const DefaultBaseURL = "https://api.appstoreconnect.apple.com/v1"

// AppsClient lists and reads apps.
type AppsClient interface {
	List(ctx context.Context, query *AppQuery) (*AppsResponse, error)
	ListByURL(ctx context.Context, pageURL string) (*AppsResponse, error)
	Get(ctx context.Context, id string) (*AppResponse, error)
}

// BundleIDsClient manages bundle IDs.
type BundleIDsClient interface {
	List(ctx context.Context, query *BundleIDQuery) (*BundleIDsResponse, error)
	ListByURL(ctx context.Context, pageURL string) (*BundleIDsResponse, error)
	Get(ctx context.Context, id string) (*BundleIDResponse, error)
	Register(ctx context.Context, request *BundleIDCreateRequest) (*BundleIDResponse, error)
	Delete(ctx context.Context, id string) error
	Capabilities(ctx context.Context, id string, query *BundleIDCapabilityQuery) (*BundleIDCapabilitiesResponse, error)
}

// CertificatesClient manages signing certificates.
type CertificatesClient interface {
	List(ctx context.Context, query *CertificateQuery) (*CertificatesResponse, error)
	ListByURL(ctx context.Context, pageURL string) (*CertificatesResponse, error)
	Get(ctx context.Context, id string) (*CertificateResponse, error)
	Create(ctx context.Context, request *CertificateCreateRequest) (*CertificateResponse, error)
	Revoke(ctx context.Context, id string) error
}

// ProfilesClient manages provisioning profiles.
type ProfilesClient interface {
	List(ctx context.Context, query *ProfileQuery) (*ProfilesResponse, error)
	ListByURL(ctx context.Context, pageURL string) (*ProfilesResponse, error)
	Get(ctx context.Context, id string) (*ProfileResponse, error)
	Create(ctx context.Context, request *ProfileCreateRequest) (*ProfileResponse, error)
	Delete(ctx context.Context, id string) error
}

// DevicesClient manages registered devices.
type DevicesClient interface {
	List(ctx context.Context, query *DeviceQuery) (*DevicesResponse, error)
	ListByURL(ctx context.Context, pageURL string) (*DevicesResponse, error)
	Get(ctx context.Context, id string) (*DeviceResponse, error)
	Register(ctx context.Context, request *DeviceCreateRequest) (*DeviceResponse, error)
	Update(ctx context.Context, id string, request *DeviceUpdateRequest) (*DeviceResponse, error)
}

// UsersClient manages team members.
type UsersClient interface {
	List(ctx context.Context, query *UserQuery) (*UsersResponse, error)
	ListByURL(ctx context.Context, pageURL string) (*UsersResponse, error)
	Get(ctx context.Context, id string) (*UserResponse, error)
	Modify(ctx context.Context, id string, request *UserUpdateRequest) (*UserResponse, error)
	Remove(ctx context.Context, id string) error
	VisibleApps(ctx context.Context, id string, query *UserVisibleAppsQuery) (*AppsResponse, error)
}

// ProvisioningClients groups the certificates, identifiers and profiles resources.
type ProvisioningClients interface {
	BundleIDs() BundleIDsClient
	Certificates() CertificatesClient
	Profiles() ProfilesClient
	Devices() DevicesClient
}

// TeamClients groups the app and user resources.
type TeamClients interface {
	Apps() AppsClient
	Users() UsersClient
}

// Client is an authenticated App Store Connect client. It is safe for
// concurrent use.
type Client interface {
	ProvisioningClients
	TeamClients

	// Token returns the current bearer token, minting a new one if the
	// cached token has expired.
	Token(ctx context.Context) (string, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an asc.Client.
//
// Issuer, KeyID and exactly one of PrivateKey or PrivateKeyPath are
// required. The private key is the .p8 file downloaded from App Store
// Connect; PEM and raw DER encodings are both accepted.
//
// Requests carry no client-side timeout unless HTTPTimeout is set. Per-call
// deadlines belong on the context passed to each method.
type Config struct {
	// Issuer is the issuer id shown on the API keys page.
	Issuer string
	// KeyID is the id of the API key.
	KeyID string
	// PrivateKey holds the key material.
	PrivateKey []byte
	// PrivateKeyPath points at a .p8 file. Mutually exclusive with PrivateKey.
	PrivateKeyPath string

	// BaseURL overrides DefaultBaseURL, e.g. for a test server.
	BaseURL string
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// HTTPTimeout bounds every request when non-zero.
	HTTPTimeout time.Duration
	// HTTPClient replaces the underlying *http.Client.
	HTTPClient *http.Client

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger receives debug output and operational warnings.
	Logger Logger
	// MetricsRegisterer, when set, receives request and token metrics.
	MetricsRegisterer prometheus.Registerer
}
