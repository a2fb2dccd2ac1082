package asc

// BundleIDCreateRequest registers a new bundle ID.
type BundleIDCreateRequest struct {
	Data BundleIDCreateData `json:"data" yaml:"data"`
}

// BundleIDCreateData is the resource object of a BundleIDCreateRequest.
type BundleIDCreateData struct {
	Type       ResourceType             `json:"type"       yaml:"type"`
	Attributes BundleIDCreateAttributes `json:"attributes" yaml:"attributes"`
}

// BundleIDCreateAttributes are the fields of a new bundle ID.
type BundleIDCreateAttributes struct {
	Identifier string           `json:"identifier"       yaml:"identifier"`
	Name       string           `json:"name"             yaml:"name"`
	Platform   BundleIDPlatform `json:"platform"         yaml:"platform"`
	SeedID     string           `json:"seedId,omitempty" yaml:"seedId,omitempty"`
}

// NewBundleIDCreateRequest builds a BundleIDCreateRequest.
func NewBundleIDCreateRequest(name, identifier string, platform BundleIDPlatform) *BundleIDCreateRequest {
	return &BundleIDCreateRequest{
		Data: BundleIDCreateData{
			Type: ResourceTypeBundleIDs,
			Attributes: BundleIDCreateAttributes{
				Identifier: identifier,
				Name:       name,
				Platform:   platform,
			},
		},
	}
}

// CertificateCreateRequest issues a certificate from a certificate signing request.
type CertificateCreateRequest struct {
	Data CertificateCreateData `json:"data" yaml:"data"`
}

// CertificateCreateData is the resource object of a CertificateCreateRequest.
type CertificateCreateData struct {
	Type       ResourceType                `json:"type"       yaml:"type"`
	Attributes CertificateCreateAttributes `json:"attributes" yaml:"attributes"`
}

// CertificateCreateAttributes carry the PEM or base64 CSR and the kind requested.
type CertificateCreateAttributes struct {
	CSRContent      string          `json:"csrContent"      yaml:"csrContent"`
	CertificateType CertificateType `json:"certificateType" yaml:"certificateType"`
}

// NewCertificateCreateRequest builds a CertificateCreateRequest.
func NewCertificateCreateRequest(csrContent string, certificateType CertificateType) *CertificateCreateRequest {
	return &CertificateCreateRequest{
		Data: CertificateCreateData{
			Type: ResourceTypeCertificates,
			Attributes: CertificateCreateAttributes{
				CSRContent:      csrContent,
				CertificateType: certificateType,
			},
		},
	}
}

// ProfileCreateRequest creates a provisioning profile.
type ProfileCreateRequest struct {
	Data ProfileCreateData `json:"data" yaml:"data"`
}

// ProfileCreateData is the resource object of a ProfileCreateRequest.
type ProfileCreateData struct {
	Type          ResourceType               `json:"type"          yaml:"type"`
	Attributes    ProfileCreateAttributes    `json:"attributes"    yaml:"attributes"`
	Relationships ProfileCreateRelationships `json:"relationships" yaml:"relationships"`
}

// ProfileCreateAttributes are the fields of a new profile.
type ProfileCreateAttributes struct {
	Name        string      `json:"name"        yaml:"name"`
	ProfileType ProfileType `json:"profileType" yaml:"profileType"`
}

// ProfileCreateRelationships name the bundle ID, certificates and devices of
// a new profile. Devices is omitted for store profiles.
type ProfileCreateRelationships struct {
	BundleID     ToOneData   `json:"bundleId"          yaml:"bundleId"`
	Certificates ToManyData  `json:"certificates"      yaml:"certificates"`
	Devices      *ToManyData `json:"devices,omitempty" yaml:"devices,omitempty"`
}

// NewProfileCreateRequest builds a ProfileCreateRequest. A nil or empty
// deviceIDs leaves the devices relationship out.
func NewProfileCreateRequest(
	name string,
	profileType ProfileType,
	bundleID string,
	certificateIDs []string,
	deviceIDs []string,
) *ProfileCreateRequest {
	relationships := ProfileCreateRelationships{
		BundleID:     ToOneData{Data: ResourceIdentifier{ID: bundleID, Type: ResourceTypeBundleIDs}},
		Certificates: Identifiers(ResourceTypeCertificates, certificateIDs...),
	}

	if len(deviceIDs) > 0 {
		devices := Identifiers(ResourceTypeDevices, deviceIDs...)
		relationships.Devices = &devices
	}

	return &ProfileCreateRequest{
		Data: ProfileCreateData{
			Type: ResourceTypeProfiles,
			Attributes: ProfileCreateAttributes{
				Name:        name,
				ProfileType: profileType,
			},
			Relationships: relationships,
		},
	}
}

// DeviceCreateRequest registers a new device.
type DeviceCreateRequest struct {
	Data DeviceCreateData `json:"data" yaml:"data"`
}

// DeviceCreateData is the resource object of a DeviceCreateRequest.
type DeviceCreateData struct {
	Type       ResourceType           `json:"type"       yaml:"type"`
	Attributes DeviceCreateAttributes `json:"attributes" yaml:"attributes"`
}

// DeviceCreateAttributes are the fields of a new device.
type DeviceCreateAttributes struct {
	Name     string           `json:"name"     yaml:"name"`
	Platform BundleIDPlatform `json:"platform" yaml:"platform"`
	UDID     string           `json:"udid"     yaml:"udid"`
}

// NewDeviceCreateRequest builds a DeviceCreateRequest.
func NewDeviceCreateRequest(name string, platform BundleIDPlatform, udid string) *DeviceCreateRequest {
	return &DeviceCreateRequest{
		Data: DeviceCreateData{
			Type: ResourceTypeDevices,
			Attributes: DeviceCreateAttributes{
				Name:     name,
				Platform: platform,
				UDID:     udid,
			},
		},
	}
}

// DeviceUpdateRequest renames, enables or disables a device.
type DeviceUpdateRequest struct {
	Data DeviceUpdateData `json:"data" yaml:"data"`
}

// DeviceUpdateData is the resource object of a DeviceUpdateRequest. ID must
// match the device addressed by the request path.
type DeviceUpdateData struct {
	Type       ResourceType           `json:"type"       yaml:"type"`
	ID         string                 `json:"id"         yaml:"id"`
	Attributes DeviceUpdateAttributes `json:"attributes" yaml:"attributes"`
}

// DeviceUpdateAttributes are the mutable fields of a device. Nil fields are
// left unchanged.
type DeviceUpdateAttributes struct {
	Name   *string       `json:"name,omitempty"   yaml:"name,omitempty"`
	Status *DeviceStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

// NewDeviceUpdateRequest builds an empty update for the device id.
func NewDeviceUpdateRequest(id string) *DeviceUpdateRequest {
	return &DeviceUpdateRequest{
		Data: DeviceUpdateData{Type: ResourceTypeDevices, ID: id},
	}
}

// WithName sets the new device name.
func (r *DeviceUpdateRequest) WithName(name string) *DeviceUpdateRequest {
	r.Data.Attributes.Name = &name

	return r
}

// WithStatus sets the new device status.
func (r *DeviceUpdateRequest) WithStatus(status DeviceStatus) *DeviceUpdateRequest {
	r.Data.Attributes.Status = &status

	return r
}

// UserUpdateRequest changes the roles or app visibility of a user.
type UserUpdateRequest struct {
	Data UserUpdateData `json:"data" yaml:"data"`
}

// UserUpdateData is the resource object of a UserUpdateRequest.
type UserUpdateData struct {
	Type          ResourceType             `json:"type"                    yaml:"type"`
	ID            string                   `json:"id"                      yaml:"id"`
	Attributes    UserUpdateAttributes     `json:"attributes"              yaml:"attributes"`
	Relationships *UserUpdateRelationships `json:"relationships,omitempty" yaml:"relationships,omitempty"`
}

// UserUpdateAttributes are the mutable fields of a user.
type UserUpdateAttributes struct {
	Roles               []UserRole `json:"roles,omitempty"               yaml:"roles,omitempty"`
	AllAppsVisible      *bool      `json:"allAppsVisible,omitempty"      yaml:"allAppsVisible,omitempty"`
	ProvisioningAllowed *bool      `json:"provisioningAllowed,omitempty" yaml:"provisioningAllowed,omitempty"`
}

// UserUpdateRelationships replaces the set of apps a user can see.
type UserUpdateRelationships struct {
	VisibleApps *ToManyData `json:"visibleApps,omitempty" yaml:"visibleApps,omitempty"`
}

// NewUserUpdateRequest builds an empty update for the user id.
func NewUserUpdateRequest(id string) *UserUpdateRequest {
	return &UserUpdateRequest{
		Data: UserUpdateData{Type: ResourceTypeUsers, ID: id},
	}
}

// WithRoles replaces the user's roles.
func (r *UserUpdateRequest) WithRoles(roles ...UserRole) *UserUpdateRequest {
	r.Data.Attributes.Roles = roles

	return r
}

// WithAllAppsVisible sets whether the user sees every app.
func (r *UserUpdateRequest) WithAllAppsVisible(visible bool) *UserUpdateRequest {
	r.Data.Attributes.AllAppsVisible = &visible

	return r
}

// WithProvisioningAllowed sets whether the user may manage signing assets.
func (r *UserUpdateRequest) WithProvisioningAllowed(allowed bool) *UserUpdateRequest {
	r.Data.Attributes.ProvisioningAllowed = &allowed

	return r
}

// WithVisibleApps replaces the apps the user can see.
func (r *UserUpdateRequest) WithVisibleApps(appIDs ...string) *UserUpdateRequest {
	apps := Identifiers(ResourceTypeApps, appIDs...)
	r.Data.Relationships = &UserUpdateRelationships{VisibleApps: &apps}

	return r
}
