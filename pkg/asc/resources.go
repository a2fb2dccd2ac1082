package asc

import "time"

// App represents an app record.
type App struct {
	Type          ResourceType      `json:"type"                    yaml:"type"`
	ID            string            `json:"id"                      yaml:"id"`
	Attributes    AppAttributes     `json:"attributes"              yaml:"attributes"`
	Relationships *AppRelationships `json:"relationships,omitempty" yaml:"relationships,omitempty"`
	Links         SelfLinks         `json:"links"                   yaml:"links"`
}

// AppAttributes are the descriptive fields of an app.
type AppAttributes struct {
	Name          string `json:"name"                    yaml:"name"`
	BundleID      string `json:"bundleId"                yaml:"bundleId"`
	SKU           string `json:"sku"                     yaml:"sku"`
	PrimaryLocale string `json:"primaryLocale,omitempty" yaml:"primaryLocale,omitempty"`
}

// AppRelationships links an app to related collections.
type AppRelationships struct {
	BetaGroups       *RelationshipPage `json:"betaGroups,omitempty"       yaml:"betaGroups,omitempty"`
	AppStoreVersions *RelationshipPage `json:"appStoreVersions,omitempty" yaml:"appStoreVersions,omitempty"`
}

// BundleID represents a registered bundle identifier.
type BundleID struct {
	Type          ResourceType           `json:"type"                    yaml:"type"`
	ID            string                 `json:"id"                      yaml:"id"`
	Attributes    BundleIDAttributes     `json:"attributes"              yaml:"attributes"`
	Relationships *BundleIDRelationships `json:"relationships,omitempty" yaml:"relationships,omitempty"`
	Links         SelfLinks              `json:"links"                   yaml:"links"`
}

// BundleIDAttributes are the fields of a bundle ID. Platform is kept as the
// raw wire string because the API reports values outside BundleIDPlatform.
type BundleIDAttributes struct {
	Name       string `json:"name"       yaml:"name"`
	Identifier string `json:"identifier" yaml:"identifier"`
	Platform   string `json:"platform"   yaml:"platform"`
	SeedID     string `json:"seedId"     yaml:"seedId"`
}

// BundleIDRelationships links a bundle ID to its capabilities, profiles and app.
type BundleIDRelationships struct {
	BundleIDCapabilities *RelationshipPage  `json:"bundleIdCapabilities,omitempty" yaml:"bundleIdCapabilities,omitempty"`
	Profiles             *RelationshipPage  `json:"profiles,omitempty"             yaml:"profiles,omitempty"`
	App                  *RelationshipLinks `json:"app,omitempty"                  yaml:"app,omitempty"`
}

// BundleIDCapability is a capability enabled on a bundle ID.
type BundleIDCapability struct {
	Type       ResourceType                 `json:"type"       yaml:"type"`
	ID         string                       `json:"id"         yaml:"id"`
	Attributes BundleIDCapabilityAttributes `json:"attributes" yaml:"attributes"`
	Links      SelfLinks                    `json:"links"      yaml:"links"`
}

// BundleIDCapabilityAttributes are the fields of a capability.
type BundleIDCapabilityAttributes struct {
	CapabilityType CapabilityType      `json:"capabilityType"     yaml:"capabilityType"`
	Settings       []CapabilitySetting `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// CapabilitySetting is one configurable setting of a capability.
type CapabilitySetting struct {
	Key     string             `json:"key"               yaml:"key"`
	Name    string             `json:"name,omitempty"    yaml:"name,omitempty"`
	Options []CapabilityOption `json:"options,omitempty" yaml:"options,omitempty"`
}

// CapabilityOption is a selectable value of a capability setting.
type CapabilityOption struct {
	Key     string `json:"key"               yaml:"key"`
	Name    string `json:"name,omitempty"    yaml:"name,omitempty"`
	Enabled *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// Certificate represents a signing certificate.
type Certificate struct {
	Type          ResourceType              `json:"type"                    yaml:"type"`
	ID            string                    `json:"id"                      yaml:"id"`
	Attributes    CertificateAttributes     `json:"attributes"              yaml:"attributes"`
	Relationships *CertificateRelationships `json:"relationships,omitempty" yaml:"relationships,omitempty"`
	Links         SelfLinks                 `json:"links"                   yaml:"links"`
}

// CertificateAttributes are the fields of a certificate. CertificateType is
// the raw wire string; the API lists kinds that cannot be created through it.
type CertificateAttributes struct {
	SerialNumber       string     `json:"serialNumber"             yaml:"serialNumber"`
	CertificateContent string     `json:"certificateContent"       yaml:"certificateContent"`
	DisplayName        string     `json:"displayName"              yaml:"displayName"`
	Name               string     `json:"name"                     yaml:"name"`
	CSRContent         *string    `json:"csrContent"               yaml:"csrContent"`
	Platform           *string    `json:"platform"                 yaml:"platform"`
	ExpirationDate     *time.Time `json:"expirationDate,omitempty" yaml:"expirationDate,omitempty"`
	CertificateType    string     `json:"certificateType"          yaml:"certificateType"`
}

// CertificateRelationships links a certificate to its pass type id.
type CertificateRelationships struct {
	PassTypeID *RelationshipLinks `json:"passTypeId,omitempty" yaml:"passTypeId,omitempty"`
}

// Profile represents a provisioning profile.
type Profile struct {
	Type          ResourceType          `json:"type"                    yaml:"type"`
	ID            string                `json:"id"                      yaml:"id"`
	Attributes    ProfileAttributes     `json:"attributes"              yaml:"attributes"`
	Relationships *ProfileRelationships `json:"relationships,omitempty" yaml:"relationships,omitempty"`
	Links         SelfLinks             `json:"links"                   yaml:"links"`
}

// ProfileAttributes are the fields of a profile. ProfileContent is the
// base64 encoded profile.
type ProfileAttributes struct {
	ProfileState   ProfileState `json:"profileState"   yaml:"profileState"`
	CreatedDate    time.Time    `json:"createdDate"    yaml:"createdDate"`
	ProfileType    ProfileType  `json:"profileType"    yaml:"profileType"`
	Name           string       `json:"name"           yaml:"name"`
	ProfileContent string       `json:"profileContent" yaml:"profileContent"`
	UUID           string       `json:"uuid"           yaml:"uuid"`
	Platform       string       `json:"platform"       yaml:"platform"`
	ExpirationDate time.Time    `json:"expirationDate" yaml:"expirationDate"`
}

// ProfileRelationships links a profile to its bundle ID, certificates and devices.
type ProfileRelationships struct {
	BundleID     *RelationshipLinks `json:"bundleId,omitempty"     yaml:"bundleId,omitempty"`
	Certificates *RelationshipPage  `json:"certificates,omitempty" yaml:"certificates,omitempty"`
	Devices      *RelationshipPage  `json:"devices,omitempty"      yaml:"devices,omitempty"`
}

// Device represents a registered device.
type Device struct {
	Type       ResourceType     `json:"type"       yaml:"type"`
	ID         string           `json:"id"         yaml:"id"`
	Attributes DeviceAttributes `json:"attributes" yaml:"attributes"`
	Links      SelfLinks        `json:"links"      yaml:"links"`
}

// DeviceAttributes are the fields of a device.
type DeviceAttributes struct {
	AddedDate   time.Time    `json:"addedDate"   yaml:"addedDate"`
	Name        string       `json:"name"        yaml:"name"`
	DeviceClass string       `json:"deviceClass" yaml:"deviceClass"`
	Model       *string      `json:"model"       yaml:"model"`
	UDID        string       `json:"udid"        yaml:"udid"`
	Platform    string       `json:"platform"    yaml:"platform"`
	Status      DeviceStatus `json:"status"      yaml:"status"`
}

// User represents a member of the team.
type User struct {
	Type          ResourceType       `json:"type"                    yaml:"type"`
	ID            string             `json:"id"                      yaml:"id"`
	Attributes    UserAttributes     `json:"attributes"              yaml:"attributes"`
	Relationships *UserRelationships `json:"relationships,omitempty" yaml:"relationships,omitempty"`
	Links         SelfLinks          `json:"links"                   yaml:"links"`
}

// UserAttributes are the fields of a user.
type UserAttributes struct {
	Username            string     `json:"username"            yaml:"username"`
	FirstName           string     `json:"firstName"           yaml:"firstName"`
	LastName            string     `json:"lastName"            yaml:"lastName"`
	Roles               []UserRole `json:"roles"               yaml:"roles"`
	AllAppsVisible      bool       `json:"allAppsVisible"      yaml:"allAppsVisible"`
	ProvisioningAllowed bool       `json:"provisioningAllowed" yaml:"provisioningAllowed"`
}

// UserRelationships links a user to the apps they can see.
type UserRelationships struct {
	VisibleApps *RelationshipPage `json:"visibleApps,omitempty" yaml:"visibleApps,omitempty"`
}

// Collection and entity aliases.
type (
	AppsResponse                 = PageResponse[App]
	AppResponse                  = EntityResponse[App]
	BundleIDsResponse            = PageResponse[BundleID]
	BundleIDResponse             = EntityResponse[BundleID]
	BundleIDCapabilitiesResponse = PageResponse[BundleIDCapability]
	CertificatesResponse         = PageResponse[Certificate]
	CertificateResponse          = EntityResponse[Certificate]
	ProfilesResponse             = PageResponse[Profile]
	ProfileResponse              = EntityResponse[Profile]
	DevicesResponse              = PageResponse[Device]
	DeviceResponse               = EntityResponse[Device]
	UsersResponse                = PageResponse[User]
	UserResponse                 = EntityResponse[User]
)
