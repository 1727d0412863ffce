package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API surface.
const (
	// APIRoot prefixes every REST path on the back-office server.
	APIRoot = "/api"

	// DefaultUserAgent is sent when the caller does not override it.
	DefaultUserAgent = "laywer-client/1.0"
)

// HTTP and network timeouts.
const (
	// DefaultRequestTimeout bounds every request issued by the REST client.
	DefaultRequestTimeout = 300 * time.Second

	// ShortHTTPTimeout is used for quick operations such as connecting to NATS.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are off unless the caller opts in.
const (
	// DefaultRetryMax is the number of retries performed by default.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Notification defaults.
const (
	// ToastAutoHideDuration is how long a notification stays visible.
	ToastAutoHideDuration = 4000 * time.Millisecond

	// DefaultNATSSubject is where notifications are published when NATS is enabled.
	DefaultNATSSubject = "backoffice.notifications"
)

// User facing messages.
const (
	// MessageSomethingWentWrong is the generic failure message.
	MessageSomethingWentWrong = "Something went wrong!"

	// MessageSuccess is reported for 2xx responses whose body cannot be parsed.
	MessageSuccess = "Success!"

	// MessageLoginToContinue is reported when a call needs a session.
	MessageLoginToContinue = "Login to continue...!"

	// MessageAllFieldsMandatory is reported when a form misses required fields.
	MessageAllFieldsMandatory = "All fields are mandatory!"

	// CustomerSyncErrors marks error bodies that carry their messages in argsMap.
	CustomerSyncErrors = "Customer.Sync.Errors"

	// DeletedToken is returned by DELETE calls answered with 204.
	DeletedToken = "deleted"

	// HTTPGetErrorCode tags GET calls that completed with an unexpected status.
	HTTPGetErrorCode = "http.get.error"
)

// Display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// DateFormat renders timestamps in tables.
	DateFormat = "2006-01-02"

	// DateTimeFormat renders timestamps in detail views.
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)
