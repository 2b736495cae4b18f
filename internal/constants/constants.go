package constants

// Home page
const (
	DefaultRecentTasksLimit = 5
)

// Field limits, mirrored by the validate tags on the service inputs
const (
	MaxPharmacyNameLength  = 200
	MaxPhoneLength         = 20
	MaxLicenseNumberLength = 100
	MaxTaskTitleLength     = 200
	MaxUsernameLength      = 150
	MinPasswordLength      = 8
)

// Context keys
const (
	ContextKeyRequestID = "request_id"
)
