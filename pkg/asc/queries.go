package asc

// BundleIDQuery holds the optional parameters of bundle ID listings. Nil fields are
// omitted from the request.
type BundleIDQuery struct {
	FieldsBundleIDs            *string
	FieldsProfiles             *string
	FilterID                   *string
	FilterIdentifier           *string
	FilterName                 *string
	FilterPlatform             *BundleIDPlatform
	FilterSeedID               *string
	Include                    *string
	Limit                      *int64
	LimitProfiles              *int64
	Sort                       *BundleIDSort
	FieldsBundleIDCapabilities *string
	LimitBundleIDCapabilities  *int64
	FieldsApps                 *string
}

// NewBundleIDQuery returns an empty BundleIDQuery.
func NewBundleIDQuery() *BundleIDQuery {
	return &BundleIDQuery{}
}

// WithFieldsBundleIDs sets fields[bundleIds].
func (q *BundleIDQuery) WithFieldsBundleIDs(value string) *BundleIDQuery {
	q.FieldsBundleIDs = &value

	return q
}

// WithFieldsProfiles sets fields[profiles].
func (q *BundleIDQuery) WithFieldsProfiles(value string) *BundleIDQuery {
	q.FieldsProfiles = &value

	return q
}

// WithFilterID sets filter[id].
func (q *BundleIDQuery) WithFilterID(value string) *BundleIDQuery {
	q.FilterID = &value

	return q
}

// WithFilterIdentifier sets filter[identifier].
func (q *BundleIDQuery) WithFilterIdentifier(value string) *BundleIDQuery {
	q.FilterIdentifier = &value

	return q
}

// WithFilterName sets filter[name].
func (q *BundleIDQuery) WithFilterName(value string) *BundleIDQuery {
	q.FilterName = &value

	return q
}

// WithFilterPlatform sets filter[platform].
func (q *BundleIDQuery) WithFilterPlatform(value BundleIDPlatform) *BundleIDQuery {
	q.FilterPlatform = &value

	return q
}

// WithFilterSeedID sets filter[seedId].
func (q *BundleIDQuery) WithFilterSeedID(value string) *BundleIDQuery {
	q.FilterSeedID = &value

	return q
}

// WithInclude sets include.
func (q *BundleIDQuery) WithInclude(value string) *BundleIDQuery {
	q.Include = &value

	return q
}

// WithLimit sets limit.
func (q *BundleIDQuery) WithLimit(value int64) *BundleIDQuery {
	q.Limit = &value

	return q
}

// WithLimitProfiles sets limit[profiles].
func (q *BundleIDQuery) WithLimitProfiles(value int64) *BundleIDQuery {
	q.LimitProfiles = &value

	return q
}

// WithSort sets sort.
func (q *BundleIDQuery) WithSort(value BundleIDSort) *BundleIDQuery {
	q.Sort = &value

	return q
}

// WithFieldsBundleIDCapabilities sets fields[bundleIdCapabilities].
func (q *BundleIDQuery) WithFieldsBundleIDCapabilities(value string) *BundleIDQuery {
	q.FieldsBundleIDCapabilities = &value

	return q
}

// WithLimitBundleIDCapabilities sets limit[bundleIdCapabilities].
func (q *BundleIDQuery) WithLimitBundleIDCapabilities(value int64) *BundleIDQuery {
	q.LimitBundleIDCapabilities = &value

	return q
}

// WithFieldsApps sets fields[apps].
func (q *BundleIDQuery) WithFieldsApps(value string) *BundleIDQuery {
	q.FieldsApps = &value

	return q
}

// Pairs renders the present fields in declaration order.
func (q *BundleIDQuery) Pairs() QueryPairs {
	if q == nil {
		return nil
	}

	var b pairBuilder

	b.text("fields[bundleIds]", q.FieldsBundleIDs)
	b.text("fields[profiles]", q.FieldsProfiles)
	b.text("filter[id]", q.FilterID)
	b.text("filter[identifier]", q.FilterIdentifier)
	b.text("filter[name]", q.FilterName)
	enumPair(&b, "filter[platform]", q.FilterPlatform)
	b.text("filter[seedId]", q.FilterSeedID)
	b.text("include", q.Include)
	b.integer("limit", q.Limit)
	b.integer("limit[profiles]", q.LimitProfiles)
	enumPair(&b, "sort", q.Sort)
	b.text("fields[bundleIdCapabilities]", q.FieldsBundleIDCapabilities)
	b.integer("limit[bundleIdCapabilities]", q.LimitBundleIDCapabilities)
	b.text("fields[apps]", q.FieldsApps)

	return b.build()
}

// CertificateQuery holds the optional parameters of certificate listings. Nil fields are
// omitted from the request.
type CertificateQuery struct {
	FieldsCertificates    *string
	FilterID              *string
	FilterSerialNumber    *string
	Limit                 *int64
	Sort                  *CertificateSort
	FilterCertificateType *CertificateType
	FilterDisplayName     *string
}

// NewCertificateQuery returns an empty CertificateQuery.
func NewCertificateQuery() *CertificateQuery {
	return &CertificateQuery{}
}

// WithFieldsCertificates sets fields[certificates].
func (q *CertificateQuery) WithFieldsCertificates(value string) *CertificateQuery {
	q.FieldsCertificates = &value

	return q
}

// WithFilterID sets filter[id].
func (q *CertificateQuery) WithFilterID(value string) *CertificateQuery {
	q.FilterID = &value

	return q
}

// WithFilterSerialNumber sets filter[serialNumber].
func (q *CertificateQuery) WithFilterSerialNumber(value string) *CertificateQuery {
	q.FilterSerialNumber = &value

	return q
}

// WithLimit sets limit.
func (q *CertificateQuery) WithLimit(value int64) *CertificateQuery {
	q.Limit = &value

	return q
}

// WithSort sets sort.
func (q *CertificateQuery) WithSort(value CertificateSort) *CertificateQuery {
	q.Sort = &value

	return q
}

// WithFilterCertificateType sets filter[certificateType].
func (q *CertificateQuery) WithFilterCertificateType(value CertificateType) *CertificateQuery {
	q.FilterCertificateType = &value

	return q
}

// WithFilterDisplayName sets filter[displayName].
func (q *CertificateQuery) WithFilterDisplayName(value string) *CertificateQuery {
	q.FilterDisplayName = &value

	return q
}

// Pairs renders the present fields in declaration order.
func (q *CertificateQuery) Pairs() QueryPairs {
	if q == nil {
		return nil
	}

	var b pairBuilder

	b.text("fields[certificates]", q.FieldsCertificates)
	b.text("filter[id]", q.FilterID)
	b.text("filter[serialNumber]", q.FilterSerialNumber)
	b.integer("limit", q.Limit)
	enumPair(&b, "sort", q.Sort)
	enumPair(&b, "filter[certificateType]", q.FilterCertificateType)
	b.text("filter[displayName]", q.FilterDisplayName)

	return b.build()
}

// ProfileQuery holds the optional parameters of profile listings. Nil fields are
// omitted from the request.
type ProfileQuery struct {
	FieldsCertificates *string
	FieldsDevices      *string
	FieldsProfiles     *string
	FilterID           *string
	FilterName         *string
	Include            *string
	Limit              *int64
	LimitCertificates  *int64
	LimitDevices       *int64
	Sort               *ProfileSort
	FieldsBundleIDs    *string
	FilterProfileState *ProfileState
	FilterProfileType  *ProfileType
}

// NewProfileQuery returns an empty ProfileQuery.
func NewProfileQuery() *ProfileQuery {
	return &ProfileQuery{}
}

// WithFieldsCertificates sets fields[certificates].
func (q *ProfileQuery) WithFieldsCertificates(value string) *ProfileQuery {
	q.FieldsCertificates = &value

	return q
}

// WithFieldsDevices sets fields[devices].
func (q *ProfileQuery) WithFieldsDevices(value string) *ProfileQuery {
	q.FieldsDevices = &value

	return q
}

// WithFieldsProfiles sets fields[profiles].
func (q *ProfileQuery) WithFieldsProfiles(value string) *ProfileQuery {
	q.FieldsProfiles = &value

	return q
}

// WithFilterID sets filter[id].
func (q *ProfileQuery) WithFilterID(value string) *ProfileQuery {
	q.FilterID = &value

	return q
}

// WithFilterName sets filter[name].
func (q *ProfileQuery) WithFilterName(value string) *ProfileQuery {
	q.FilterName = &value

	return q
}

// WithInclude sets include.
func (q *ProfileQuery) WithInclude(value string) *ProfileQuery {
	q.Include = &value

	return q
}

// WithLimit sets limit.
func (q *ProfileQuery) WithLimit(value int64) *ProfileQuery {
	q.Limit = &value

	return q
}

// WithLimitCertificates sets limit[certificates].
func (q *ProfileQuery) WithLimitCertificates(value int64) *ProfileQuery {
	q.LimitCertificates = &value

	return q
}

// WithLimitDevices sets limit[devices].
func (q *ProfileQuery) WithLimitDevices(value int64) *ProfileQuery {
	q.LimitDevices = &value

	return q
}

// WithSort sets sort.
func (q *ProfileQuery) WithSort(value ProfileSort) *ProfileQuery {
	q.Sort = &value

	return q
}

// WithFieldsBundleIDs sets fields[bundleIds].
func (q *ProfileQuery) WithFieldsBundleIDs(value string) *ProfileQuery {
	q.FieldsBundleIDs = &value

	return q
}

// WithFilterProfileState sets filter[profileState].
func (q *ProfileQuery) WithFilterProfileState(value ProfileState) *ProfileQuery {
	q.FilterProfileState = &value

	return q
}

// WithFilterProfileType sets filter[profileType].
func (q *ProfileQuery) WithFilterProfileType(value ProfileType) *ProfileQuery {
	q.FilterProfileType = &value

	return q
}

// Pairs renders the present fields in declaration order.
func (q *ProfileQuery) Pairs() QueryPairs {
	if q == nil {
		return nil
	}

	var b pairBuilder

	b.text("fields[certificates]", q.FieldsCertificates)
	b.text("fields[devices]", q.FieldsDevices)
	b.text("fields[profiles]", q.FieldsProfiles)
	b.text("filter[id]", q.FilterID)
	b.text("filter[name]", q.FilterName)
	b.text("include", q.Include)
	b.integer("limit", q.Limit)
	b.integer("limit[certificates]", q.LimitCertificates)
	b.integer("limit[devices]", q.LimitDevices)
	enumPair(&b, "sort", q.Sort)
	b.text("fields[bundleIds]", q.FieldsBundleIDs)
	enumPair(&b, "filter[profileState]", q.FilterProfileState)
	enumPair(&b, "filter[profileType]", q.FilterProfileType)

	return b.build()
}

// DeviceQuery holds the optional parameters of device listings. Nil fields are
// omitted from the request.
type DeviceQuery struct {
	FieldsDevices  *string
	FilterID       *string
	FilterName     *string
	FilterPlatform *BundleIDPlatform
	FilterStatus   *DeviceStatus
	FilterUDID     *string
	Limit          *int64
	Sort           *DeviceSort
}

// NewDeviceQuery returns an empty DeviceQuery.
func NewDeviceQuery() *DeviceQuery {
	return &DeviceQuery{}
}

// WithFieldsDevices sets fields[devices].
func (q *DeviceQuery) WithFieldsDevices(value string) *DeviceQuery {
	q.FieldsDevices = &value

	return q
}

// WithFilterID sets filter[id].
func (q *DeviceQuery) WithFilterID(value string) *DeviceQuery {
	q.FilterID = &value

	return q
}

// WithFilterName sets filter[name].
func (q *DeviceQuery) WithFilterName(value string) *DeviceQuery {
	q.FilterName = &value

	return q
}

// WithFilterPlatform sets filter[platform].
func (q *DeviceQuery) WithFilterPlatform(value BundleIDPlatform) *DeviceQuery {
	q.FilterPlatform = &value

	return q
}

// WithFilterStatus sets filter[status].
func (q *DeviceQuery) WithFilterStatus(value DeviceStatus) *DeviceQuery {
	q.FilterStatus = &value

	return q
}

// WithFilterUDID sets filter[udid].
func (q *DeviceQuery) WithFilterUDID(value string) *DeviceQuery {
	q.FilterUDID = &value

	return q
}

// WithLimit sets limit.
func (q *DeviceQuery) WithLimit(value int64) *DeviceQuery {
	q.Limit = &value

	return q
}

// WithSort sets sort.
func (q *DeviceQuery) WithSort(value DeviceSort) *DeviceQuery {
	q.Sort = &value

	return q
}

// Pairs renders the present fields in declaration order.
func (q *DeviceQuery) Pairs() QueryPairs {
	if q == nil {
		return nil
	}

	var b pairBuilder

	b.text("fields[devices]", q.FieldsDevices)
	b.text("filter[id]", q.FilterID)
	b.text("filter[name]", q.FilterName)
	enumPair(&b, "filter[platform]", q.FilterPlatform)
	enumPair(&b, "filter[status]", q.FilterStatus)
	b.text("filter[udid]", q.FilterUDID)
	b.integer("limit", q.Limit)
	enumPair(&b, "sort", q.Sort)

	return b.build()
}

// AppQuery holds the optional parameters of app listings. Nil fields are
// omitted from the request.
type AppQuery struct {
	FieldsApps     *string
	FilterBundleID *string
	FilterID       *string
	FilterName     *string
	FilterSKU      *string
	Include        *string
	Limit          *int64
	Sort           *AppSort
}

// NewAppQuery returns an empty AppQuery.
func NewAppQuery() *AppQuery {
	return &AppQuery{}
}

// WithFieldsApps sets fields[apps].
func (q *AppQuery) WithFieldsApps(value string) *AppQuery {
	q.FieldsApps = &value

	return q
}

// WithFilterBundleID sets filter[bundleId].
func (q *AppQuery) WithFilterBundleID(value string) *AppQuery {
	q.FilterBundleID = &value

	return q
}

// WithFilterID sets filter[id].
func (q *AppQuery) WithFilterID(value string) *AppQuery {
	q.FilterID = &value

	return q
}

// WithFilterName sets filter[name].
func (q *AppQuery) WithFilterName(value string) *AppQuery {
	q.FilterName = &value

	return q
}

// WithFilterSKU sets filter[sku].
func (q *AppQuery) WithFilterSKU(value string) *AppQuery {
	q.FilterSKU = &value

	return q
}

// WithInclude sets include.
func (q *AppQuery) WithInclude(value string) *AppQuery {
	q.Include = &value

	return q
}

// WithLimit sets limit.
func (q *AppQuery) WithLimit(value int64) *AppQuery {
	q.Limit = &value

	return q
}

// WithSort sets sort.
func (q *AppQuery) WithSort(value AppSort) *AppQuery {
	q.Sort = &value

	return q
}

// Pairs renders the present fields in declaration order.
func (q *AppQuery) Pairs() QueryPairs {
	if q == nil {
		return nil
	}

	var b pairBuilder

	b.text("fields[apps]", q.FieldsApps)
	b.text("filter[bundleId]", q.FilterBundleID)
	b.text("filter[id]", q.FilterID)
	b.text("filter[name]", q.FilterName)
	b.text("filter[sku]", q.FilterSKU)
	b.text("include", q.Include)
	b.integer("limit", q.Limit)
	enumPair(&b, "sort", q.Sort)

	return b.build()
}

// UserQuery holds the optional parameters of user listings. Nil fields are
// omitted from the request.
type UserQuery struct {
	FieldsApps        *string
	FieldsUsers       *string
	FilterRoles       *UserRole
	FilterUsername    *string
	FilterVisibleApps *string
	Include           *string
	Limit             *int64
	LimitVisibleApps  *int64
	Sort              *UserSort
}

// NewUserQuery returns an empty UserQuery.
func NewUserQuery() *UserQuery {
	return &UserQuery{}
}

// WithFieldsApps sets fields[apps].
func (q *UserQuery) WithFieldsApps(value string) *UserQuery {
	q.FieldsApps = &value

	return q
}

// WithFieldsUsers sets fields[users].
func (q *UserQuery) WithFieldsUsers(value string) *UserQuery {
	q.FieldsUsers = &value

	return q
}

// WithFilterRoles sets filter[roles].
func (q *UserQuery) WithFilterRoles(value UserRole) *UserQuery {
	q.FilterRoles = &value

	return q
}

// WithFilterUsername sets filter[username].
func (q *UserQuery) WithFilterUsername(value string) *UserQuery {
	q.FilterUsername = &value

	return q
}

// WithFilterVisibleApps sets filter[visibleApps].
func (q *UserQuery) WithFilterVisibleApps(value string) *UserQuery {
	q.FilterVisibleApps = &value

	return q
}

// WithInclude sets include.
func (q *UserQuery) WithInclude(value string) *UserQuery {
	q.Include = &value

	return q
}

// WithLimit sets limit.
func (q *UserQuery) WithLimit(value int64) *UserQuery {
	q.Limit = &value

	return q
}

// WithLimitVisibleApps sets limit[visibleApps].
func (q *UserQuery) WithLimitVisibleApps(value int64) *UserQuery {
	q.LimitVisibleApps = &value

	return q
}

// WithSort sets sort.
func (q *UserQuery) WithSort(value UserSort) *UserQuery {
	q.Sort = &value

	return q
}

// Pairs renders the present fields in declaration order.
func (q *UserQuery) Pairs() QueryPairs {
	if q == nil {
		return nil
	}

	var b pairBuilder

	b.text("fields[apps]", q.FieldsApps)
	b.text("fields[users]", q.FieldsUsers)
	enumPair(&b, "filter[roles]", q.FilterRoles)
	b.text("filter[username]", q.FilterUsername)
	b.text("filter[visibleApps]", q.FilterVisibleApps)
	b.text("include", q.Include)
	b.integer("limit", q.Limit)
	b.integer("limit[visibleApps]", q.LimitVisibleApps)
	enumPair(&b, "sort", q.Sort)

	return b.build()
}

// UserVisibleAppsQuery holds the optional parameters of the apps visible to a user. Nil fields are
// omitted from the request.
type UserVisibleAppsQuery struct {
	FieldsApps *string
	Limit      *int64
}

// NewUserVisibleAppsQuery returns an empty UserVisibleAppsQuery.
func NewUserVisibleAppsQuery() *UserVisibleAppsQuery {
	return &UserVisibleAppsQuery{}
}

// WithFieldsApps sets fields[apps].
func (q *UserVisibleAppsQuery) WithFieldsApps(value string) *UserVisibleAppsQuery {
	q.FieldsApps = &value

	return q
}

// WithLimit sets limit.
func (q *UserVisibleAppsQuery) WithLimit(value int64) *UserVisibleAppsQuery {
	q.Limit = &value

	return q
}

// Pairs renders the present fields in declaration order.
func (q *UserVisibleAppsQuery) Pairs() QueryPairs {
	if q == nil {
		return nil
	}

	var b pairBuilder

	b.text("fields[apps]", q.FieldsApps)
	b.integer("limit", q.Limit)

	return b.build()
}

// BundleIDCapabilityQuery holds the optional parameters of the capabilities of a bundle ID. Nil fields are
// omitted from the request.
type BundleIDCapabilityQuery struct {
	FieldsBundleIDCapabilities *string
	Limit                      *int64
}

// NewBundleIDCapabilityQuery returns an empty BundleIDCapabilityQuery.
func NewBundleIDCapabilityQuery() *BundleIDCapabilityQuery {
	return &BundleIDCapabilityQuery{}
}

// WithFieldsBundleIDCapabilities sets fields[bundleIdCapabilities].
func (q *BundleIDCapabilityQuery) WithFieldsBundleIDCapabilities(value string) *BundleIDCapabilityQuery {
	q.FieldsBundleIDCapabilities = &value

	return q
}

// WithLimit sets limit.
func (q *BundleIDCapabilityQuery) WithLimit(value int64) *BundleIDCapabilityQuery {
	q.Limit = &value

	return q
}

// Pairs renders the present fields in declaration order.
func (q *BundleIDCapabilityQuery) Pairs() QueryPairs {
	if q == nil {
		return nil
	}

	var b pairBuilder

	b.text("fields[bundleIdCapabilities]", q.FieldsBundleIDCapabilities)
	b.integer("limit", q.Limit)

	return b.build()
}
