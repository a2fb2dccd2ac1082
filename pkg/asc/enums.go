package asc

import (
	"fmt"
	"slices"
)

// parseEnum maps a wire string onto one of the allowed values. Unknown
// strings are rejected rather than coerced.
func parseEnum[T ~string](kind string, allowed []T, raw string) (T, error) {
	for _, value := range allowed {
		if string(value) == raw {
			return value, nil
		}
	}

	var zero T

	return zero, fmt.Errorf("%w: %s %q", ErrUnknownEnumValue, kind, raw)
}

func marshalEnum[T ~string](kind string, allowed []T, value T) ([]byte, error) {
	if !slices.Contains(allowed, value) {
		return nil, fmt.Errorf("%w: %s %q", ErrUnknownEnumValue, kind, string(value))
	}

	return []byte(value), nil
}

// ResourceType is the JSON:API "type" tag of a resource.
type ResourceType string

const (
	ResourceTypeApps                 ResourceType = "apps"
	ResourceTypeBundleIDs            ResourceType = "bundleIds"
	ResourceTypeBundleIDCapabilities ResourceType = "bundleIdCapabilities"
	ResourceTypeCertificates         ResourceType = "certificates"
	ResourceTypeDevices              ResourceType = "devices"
	ResourceTypeProfiles             ResourceType = "profiles"
	ResourceTypeUsers                ResourceType = "users"
)

var resourceTypes = []ResourceType{
	ResourceTypeApps,
	ResourceTypeBundleIDs,
	ResourceTypeBundleIDCapabilities,
	ResourceTypeCertificates,
	ResourceTypeDevices,
	ResourceTypeProfiles,
	ResourceTypeUsers,
}

func (v ResourceType) MarshalText() ([]byte, error) {
	return marshalEnum("ResourceType", resourceTypes, v)
}

func (v *ResourceType) UnmarshalText(text []byte) error {
	parsed, err := parseEnum("ResourceType", resourceTypes, string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// BundleIDPlatform is the platform of a bundle ID or device.
type BundleIDPlatform string

const (
	BundleIDPlatformIOS       BundleIDPlatform = "IOS"
	BundleIDPlatformMacOS     BundleIDPlatform = "MAC_OS"
	BundleIDPlatformUniversal BundleIDPlatform = "UNIVERSAL"
)

var bundleIDPlatforms = []BundleIDPlatform{
	BundleIDPlatformIOS,
	BundleIDPlatformMacOS,
	BundleIDPlatformUniversal,
}

// ParseBundleIDPlatform parses a wire string.
func ParseBundleIDPlatform(raw string) (BundleIDPlatform, error) {
	return parseEnum("BundleIDPlatform", bundleIDPlatforms, raw)
}

func (v BundleIDPlatform) MarshalText() ([]byte, error) {
	return marshalEnum("BundleIDPlatform", bundleIDPlatforms, v)
}

func (v *BundleIDPlatform) UnmarshalText(text []byte) error {
	parsed, err := ParseBundleIDPlatform(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// BundleIDSort orders bundle ID listings. A leading '-' sorts descending.
type BundleIDSort string

const (
	BundleIDSortID             BundleIDSort = "id"
	BundleIDSortIDDesc         BundleIDSort = "-id"
	BundleIDSortIdentifier     BundleIDSort = "identifier"
	BundleIDSortIdentifierDesc BundleIDSort = "-identifier"
	BundleIDSortName           BundleIDSort = "name"
	BundleIDSortNameDesc       BundleIDSort = "-name"
	BundleIDSortPlatform       BundleIDSort = "platform"
	BundleIDSortPlatformDesc   BundleIDSort = "-platform"
	BundleIDSortSeedID         BundleIDSort = "seedId"
	BundleIDSortSeedIDDesc     BundleIDSort = "-seedId"
)

var bundleIDSorts = []BundleIDSort{
	BundleIDSortID, BundleIDSortIDDesc,
	BundleIDSortIdentifier, BundleIDSortIdentifierDesc,
	BundleIDSortName, BundleIDSortNameDesc,
	BundleIDSortPlatform, BundleIDSortPlatformDesc,
	BundleIDSortSeedID, BundleIDSortSeedIDDesc,
}

func (v BundleIDSort) MarshalText() ([]byte, error) {
	return marshalEnum("BundleIDSort", bundleIDSorts, v)
}

func (v *BundleIDSort) UnmarshalText(text []byte) error {
	parsed, err := parseEnum("BundleIDSort", bundleIDSorts, string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// CertificateSort orders certificate listings.
type CertificateSort string

const (
	CertificateSortID                  CertificateSort = "id"
	CertificateSortIDDesc              CertificateSort = "-id"
	CertificateSortCertificateType     CertificateSort = "certificateType"
	CertificateSortCertificateTypeDesc CertificateSort = "-certificateType"
	CertificateSortDisplayName         CertificateSort = "displayName"
	CertificateSortDisplayNameDesc     CertificateSort = "-displayName"
	CertificateSortSerialNumber        CertificateSort = "serialNumber"
	CertificateSortSerialNumberDesc    CertificateSort = "-serialNumber"
)

var certificateSorts = []CertificateSort{
	CertificateSortID, CertificateSortIDDesc,
	CertificateSortCertificateType, CertificateSortCertificateTypeDesc,
	CertificateSortDisplayName, CertificateSortDisplayNameDesc,
	CertificateSortSerialNumber, CertificateSortSerialNumberDesc,
}

func (v CertificateSort) MarshalText() ([]byte, error) {
	return marshalEnum("CertificateSort", certificateSorts, v)
}

func (v *CertificateSort) UnmarshalText(text []byte) error {
	parsed, err := parseEnum("CertificateSort", certificateSorts, string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// CertificateType is the kind of a signing certificate.
type CertificateType string

const (
	CertificateTypeIOSDevelopment           CertificateType = "IOS_DEVELOPMENT"
	CertificateTypeIOSDistribution          CertificateType = "IOS_DISTRIBUTION"
	CertificateTypeMacAppDistribution       CertificateType = "MAC_APP_DISTRIBUTION"
	CertificateTypeMacInstallerDistribution CertificateType = "MAC_INSTALLER_DISTRIBUTION"
	CertificateTypeMacAppDevelopment        CertificateType = "MAC_APP_DEVELOPMENT"
	CertificateTypeDeveloperIDKext          CertificateType = "DEVELOPER_ID_KEXT"
	CertificateTypeDeveloperIDApplication   CertificateType = "DEVELOPER_ID_APPLICATION"
	CertificateTypeDevelopment              CertificateType = "DEVELOPMENT"
	CertificateTypeDistribution             CertificateType = "DISTRIBUTION"
	CertificateTypePassTypeID               CertificateType = "PASS_TYPE_ID"
	CertificateTypePassTypeIDWithNFC        CertificateType = "PASS_TYPE_ID_WITH_NFC"
)

var certificateTypes = []CertificateType{
	CertificateTypeIOSDevelopment,
	CertificateTypeIOSDistribution,
	CertificateTypeMacAppDistribution,
	CertificateTypeMacInstallerDistribution,
	CertificateTypeMacAppDevelopment,
	CertificateTypeDeveloperIDKext,
	CertificateTypeDeveloperIDApplication,
	CertificateTypeDevelopment,
	CertificateTypeDistribution,
	CertificateTypePassTypeID,
	CertificateTypePassTypeIDWithNFC,
}

// ParseCertificateType parses a wire string.
func ParseCertificateType(raw string) (CertificateType, error) {
	return parseEnum("CertificateType", certificateTypes, raw)
}

func (v CertificateType) MarshalText() ([]byte, error) {
	return marshalEnum("CertificateType", certificateTypes, v)
}

func (v *CertificateType) UnmarshalText(text []byte) error {
	parsed, err := ParseCertificateType(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// ProfileSort orders profile listings.
type ProfileSort string

const (
	ProfileSortID               ProfileSort = "id"
	ProfileSortIDDesc           ProfileSort = "-id"
	ProfileSortName             ProfileSort = "name"
	ProfileSortNameDesc         ProfileSort = "-name"
	ProfileSortProfileState     ProfileSort = "profileState"
	ProfileSortProfileStateDesc ProfileSort = "-profileState"
	ProfileSortProfileType      ProfileSort = "profileType"
	ProfileSortProfileTypeDesc  ProfileSort = "-profileType"
)

var profileSorts = []ProfileSort{
	ProfileSortID, ProfileSortIDDesc,
	ProfileSortName, ProfileSortNameDesc,
	ProfileSortProfileState, ProfileSortProfileStateDesc,
	ProfileSortProfileType, ProfileSortProfileTypeDesc,
}

func (v ProfileSort) MarshalText() ([]byte, error) {
	return marshalEnum("ProfileSort", profileSorts, v)
}

func (v *ProfileSort) UnmarshalText(text []byte) error {
	parsed, err := parseEnum("ProfileSort", profileSorts, string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// ProfileState is the validity of a provisioning profile.
type ProfileState string

const (
	ProfileStateActive  ProfileState = "ACTIVE"
	ProfileStateInvalid ProfileState = "INVALID"
)

var profileStates = []ProfileState{ProfileStateActive, ProfileStateInvalid}

// ParseProfileState parses a wire string.
func ParseProfileState(raw string) (ProfileState, error) {
	return parseEnum("ProfileState", profileStates, raw)
}

func (v ProfileState) MarshalText() ([]byte, error) {
	return marshalEnum("ProfileState", profileStates, v)
}

func (v *ProfileState) UnmarshalText(text []byte) error {
	parsed, err := ParseProfileState(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// ProfileType is the distribution kind of a provisioning profile.
type ProfileType string

const (
	ProfileTypeIOSAppDevelopment         ProfileType = "IOS_APP_DEVELOPMENT"
	ProfileTypeIOSAppStore               ProfileType = "IOS_APP_STORE"
	ProfileTypeIOSAppAdhoc               ProfileType = "IOS_APP_ADHOC"
	ProfileTypeIOSAppInhouse             ProfileType = "IOS_APP_INHOUSE"
	ProfileTypeMacAppDevelopment         ProfileType = "MAC_APP_DEVELOPMENT"
	ProfileTypeMacAppStore               ProfileType = "MAC_APP_STORE"
	ProfileTypeMacAppDirect              ProfileType = "MAC_APP_DIRECT"
	ProfileTypeTvOSAppDevelopment        ProfileType = "TVOS_APP_DEVELOPMENT"
	ProfileTypeTvOSAppStore              ProfileType = "TVOS_APP_STORE"
	ProfileTypeTvOSAppAdhoc              ProfileType = "TVOS_APP_ADHOC"
	ProfileTypeTvOSAppInhouse            ProfileType = "TVOS_APP_INHOUSE"
	ProfileTypeMacCatalystAppDevelopment ProfileType = "MAC_CATALYST_APP_DEVELOPMENT"
	ProfileTypeMacCatalystAppStore       ProfileType = "MAC_CATALYST_APP_STORE"
	ProfileTypeMacCatalystAppDirect      ProfileType = "MAC_CATALYST_APP_DIRECT"
)

var profileTypes = []ProfileType{
	ProfileTypeIOSAppDevelopment,
	ProfileTypeIOSAppStore,
	ProfileTypeIOSAppAdhoc,
	ProfileTypeIOSAppInhouse,
	ProfileTypeMacAppDevelopment,
	ProfileTypeMacAppStore,
	ProfileTypeMacAppDirect,
	ProfileTypeTvOSAppDevelopment,
	ProfileTypeTvOSAppStore,
	ProfileTypeTvOSAppAdhoc,
	ProfileTypeTvOSAppInhouse,
	ProfileTypeMacCatalystAppDevelopment,
	ProfileTypeMacCatalystAppStore,
	ProfileTypeMacCatalystAppDirect,
}

// ParseProfileType parses a wire string.
func ParseProfileType(raw string) (ProfileType, error) {
	return parseEnum("ProfileType", profileTypes, raw)
}

func (v ProfileType) MarshalText() ([]byte, error) {
	return marshalEnum("ProfileType", profileTypes, v)
}

func (v *ProfileType) UnmarshalText(text []byte) error {
	parsed, err := ParseProfileType(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// DeviceSort orders device listings.
type DeviceSort string

const (
	DeviceSortID           DeviceSort = "id"
	DeviceSortIDDesc       DeviceSort = "-id"
	DeviceSortName         DeviceSort = "name"
	DeviceSortNameDesc     DeviceSort = "-name"
	DeviceSortPlatform     DeviceSort = "platform"
	DeviceSortPlatformDesc DeviceSort = "-platform"
	DeviceSortStatus       DeviceSort = "status"
	DeviceSortStatusDesc   DeviceSort = "-status"
	DeviceSortUDID         DeviceSort = "udid"
	DeviceSortUDIDDesc     DeviceSort = "-udid"
)

var deviceSorts = []DeviceSort{
	DeviceSortID, DeviceSortIDDesc,
	DeviceSortName, DeviceSortNameDesc,
	DeviceSortPlatform, DeviceSortPlatformDesc,
	DeviceSortStatus, DeviceSortStatusDesc,
	DeviceSortUDID, DeviceSortUDIDDesc,
}

func (v DeviceSort) MarshalText() ([]byte, error) {
	return marshalEnum("DeviceSort", deviceSorts, v)
}

func (v *DeviceSort) UnmarshalText(text []byte) error {
	parsed, err := parseEnum("DeviceSort", deviceSorts, string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// DeviceStatus is the registration state of a device.
type DeviceStatus string

const (
	DeviceStatusEnabled    DeviceStatus = "ENABLED"
	DeviceStatusDisabled   DeviceStatus = "DISABLED"
	DeviceStatusProcessing DeviceStatus = "PROCESSING"
	DeviceStatusIneligible DeviceStatus = "INELIGIBLE"
)

var deviceStatuses = []DeviceStatus{
	DeviceStatusEnabled,
	DeviceStatusDisabled,
	DeviceStatusProcessing,
	DeviceStatusIneligible,
}

// ParseDeviceStatus parses a wire string.
func ParseDeviceStatus(raw string) (DeviceStatus, error) {
	return parseEnum("DeviceStatus", deviceStatuses, raw)
}

func (v DeviceStatus) MarshalText() ([]byte, error) {
	return marshalEnum("DeviceStatus", deviceStatuses, v)
}

func (v *DeviceStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseDeviceStatus(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// AppSort orders app listings.
type AppSort string

const (
	AppSortBundleID     AppSort = "bundleId"
	AppSortBundleIDDesc AppSort = "-bundleId"
	AppSortName         AppSort = "name"
	AppSortNameDesc     AppSort = "-name"
	AppSortSKU          AppSort = "sku"
	AppSortSKUDesc      AppSort = "-sku"
)

var appSorts = []AppSort{
	AppSortBundleID, AppSortBundleIDDesc,
	AppSortName, AppSortNameDesc,
	AppSortSKU, AppSortSKUDesc,
}

func (v AppSort) MarshalText() ([]byte, error) {
	return marshalEnum("AppSort", appSorts, v)
}

func (v *AppSort) UnmarshalText(text []byte) error {
	parsed, err := parseEnum("AppSort", appSorts, string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// UserSort orders user listings.
type UserSort string

const (
	UserSortLastName     UserSort = "lastName"
	UserSortLastNameDesc UserSort = "-lastName"
	UserSortUsername     UserSort = "username"
	UserSortUsernameDesc UserSort = "-username"
)

var userSorts = []UserSort{
	UserSortLastName, UserSortLastNameDesc,
	UserSortUsername, UserSortUsernameDesc,
}

func (v UserSort) MarshalText() ([]byte, error) {
	return marshalEnum("UserSort", userSorts, v)
}

func (v *UserSort) UnmarshalText(text []byte) error {
	parsed, err := parseEnum("UserSort", userSorts, string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// UserRole is a team role granted to a user.
type UserRole string

const (
	UserRoleAdmin                       UserRole = "ADMIN"
	UserRoleFinance                     UserRole = "FINANCE"
	UserRoleAccountHolder               UserRole = "ACCOUNT_HOLDER"
	UserRoleSales                       UserRole = "SALES"
	UserRoleMarketing                   UserRole = "MARKETING"
	UserRoleAppManager                  UserRole = "APP_MANAGER"
	UserRoleDeveloper                   UserRole = "DEVELOPER"
	UserRoleAccessToReports             UserRole = "ACCESS_TO_REPORTS"
	UserRoleCustomerSupport             UserRole = "CUSTOMER_SUPPORT"
	UserRoleCreateApps                  UserRole = "CREATE_APPS"
	UserRoleCloudManagedDeveloperID     UserRole = "CLOUD_MANAGED_DEVELOPER_ID"
	UserRoleCloudManagedAppDistribution UserRole = "CLOUD_MANAGED_APP_DISTRIBUTION"
	UserRoleGenerateIndividualKeys      UserRole = "GENERATE_INDIVIDUAL_KEYS"
)

var userRoles = []UserRole{
	UserRoleAdmin,
	UserRoleFinance,
	UserRoleAccountHolder,
	UserRoleSales,
	UserRoleMarketing,
	UserRoleAppManager,
	UserRoleDeveloper,
	UserRoleAccessToReports,
	UserRoleCustomerSupport,
	UserRoleCreateApps,
	UserRoleCloudManagedDeveloperID,
	UserRoleCloudManagedAppDistribution,
	UserRoleGenerateIndividualKeys,
}

// ParseUserRole parses a wire string.
func ParseUserRole(raw string) (UserRole, error) {
	return parseEnum("UserRole", userRoles, raw)
}

func (v UserRole) MarshalText() ([]byte, error) {
	return marshalEnum("UserRole", userRoles, v)
}

func (v *UserRole) UnmarshalText(text []byte) error {
	parsed, err := ParseUserRole(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// CapabilityType is a capability that can be enabled on a bundle ID.
type CapabilityType string

const (
	CapabilityTypeICloud                         CapabilityType = "ICLOUD"
	CapabilityTypeInAppPurchase                  CapabilityType = "IN_APP_PURCHASE"
	CapabilityTypeGameCenter                     CapabilityType = "GAME_CENTER"
	CapabilityTypePushNotifications              CapabilityType = "PUSH_NOTIFICATIONS"
	CapabilityTypeWallet                         CapabilityType = "WALLET"
	CapabilityTypeInterAppAudio                  CapabilityType = "INTER_APP_AUDIO"
	CapabilityTypeMaps                           CapabilityType = "MAPS"
	CapabilityTypeAssociatedDomains              CapabilityType = "ASSOCIATED_DOMAINS"
	CapabilityTypePersonalVPN                    CapabilityType = "PERSONAL_VPN"
	CapabilityTypeAppGroups                      CapabilityType = "APP_GROUPS"
	CapabilityTypeHealthKit                      CapabilityType = "HEALTHKIT"
	CapabilityTypeHomeKit                        CapabilityType = "HOMEKIT"
	CapabilityTypeWirelessAccessoryConfiguration CapabilityType = "WIRELESS_ACCESSORY_CONFIGURATION"
	CapabilityTypeApplePay                       CapabilityType = "APPLE_PAY"
	CapabilityTypeDataProtection                 CapabilityType = "DATA_PROTECTION"
	CapabilityTypeSiriKit                        CapabilityType = "SIRIKIT"
	CapabilityTypeNetworkExtensions              CapabilityType = "NETWORK_EXTENSIONS"
	CapabilityTypeMultipath                      CapabilityType = "MULTIPATH"
	CapabilityTypeHotSpot                        CapabilityType = "HOT_SPOT"
	CapabilityTypeNFCTagReading                  CapabilityType = "NFC_TAG_READING"
	CapabilityTypeClassKit                       CapabilityType = "CLASSKIT"
	CapabilityTypeAutofillCredentialProvider     CapabilityType = "AUTOFILL_CREDENTIAL_PROVIDER"
	CapabilityTypeAccessWiFiInformation          CapabilityType = "ACCESS_WIFI_INFORMATION"
	CapabilityTypeNetworkCustomProtocol          CapabilityType = "NETWORK_CUSTOM_PROTOCOL"
	CapabilityTypeCoreMediaHLSLowLatency         CapabilityType = "COREMEDIA_HLS_LOW_LATENCY"
	CapabilityTypeSystemExtensionInstall         CapabilityType = "SYSTEM_EXTENSION_INSTALL"
	CapabilityTypeUserManagement                 CapabilityType = "USER_MANAGEMENT"
	CapabilityTypeAppleIDAuth                    CapabilityType = "APPLE_ID_AUTH"
)

var capabilityTypes = []CapabilityType{
	CapabilityTypeICloud,
	CapabilityTypeInAppPurchase,
	CapabilityTypeGameCenter,
	CapabilityTypePushNotifications,
	CapabilityTypeWallet,
	CapabilityTypeInterAppAudio,
	CapabilityTypeMaps,
	CapabilityTypeAssociatedDomains,
	CapabilityTypePersonalVPN,
	CapabilityTypeAppGroups,
	CapabilityTypeHealthKit,
	CapabilityTypeHomeKit,
	CapabilityTypeWirelessAccessoryConfiguration,
	CapabilityTypeApplePay,
	CapabilityTypeDataProtection,
	CapabilityTypeSiriKit,
	CapabilityTypeNetworkExtensions,
	CapabilityTypeMultipath,
	CapabilityTypeHotSpot,
	CapabilityTypeNFCTagReading,
	CapabilityTypeClassKit,
	CapabilityTypeAutofillCredentialProvider,
	CapabilityTypeAccessWiFiInformation,
	CapabilityTypeNetworkCustomProtocol,
	CapabilityTypeCoreMediaHLSLowLatency,
	CapabilityTypeSystemExtensionInstall,
	CapabilityTypeUserManagement,
	CapabilityTypeAppleIDAuth,
}

func (v CapabilityType) MarshalText() ([]byte, error) {
	return marshalEnum("CapabilityType", capabilityTypes, v)
}

func (v *CapabilityType) UnmarshalText(text []byte) error {
	parsed, err := parseEnum("CapabilityType", capabilityTypes, string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}
