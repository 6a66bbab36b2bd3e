package constants

import "time"

// API endpoint defaults.
const (
	// DefaultAPIEndpoint is the production Ontraport API base URL.
	DefaultAPIEndpoint = "https://api.ontraport.com"

	// DefaultAPIVersion is the version path prefix.
	DefaultAPIVersion = "1"

	// DefaultUserAgent identifies this client to the API.
	DefaultUserAgent = "ontraport-client-go"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are off unless explicitly configured.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Subscription types accepted by the subscribe/unsubscribe operations.
const (
	// SubTypeCampaign is the default subscription type.
	SubTypeCampaign = "Campaign"

	// SubTypeSequence subscribes objects to sequences.
	SubTypeSequence = "Sequence"
)

// Pagination and display limits.
const (
	// StandardPageSize is the API's maximum page size for list operations.
	StandardPageSize = 50
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)
