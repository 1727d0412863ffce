package backoffice

import (
	"context"
	"time"
)

// UsersClient manages back-office users.
type UsersClient interface {
	List(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, request *UserCreateRequest) (string, error)
	Get(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, id string, request *UserUpdateRequest) error
	Delete(ctx context.Context, id string) (bool, error)
}

// CompaniesClient manages client companies.
type CompaniesClient interface {
	List(ctx context.Context) ([]Company, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, request *CompanyRequest) (string, error)
	Get(ctx context.Context, id string) (*Company, error)
	Update(ctx context.Context, id string, request *CompanyRequest) error
	Delete(ctx context.Context, id string) (bool, error)
}

// CaseTypesClient manages case types.
type CaseTypesClient interface {
	List(ctx context.Context) ([]CaseType, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, request *CaseTypeRequest) (string, error)
	Get(ctx context.Context, id string) (*CaseType, error)
	Update(ctx context.Context, id string, request *CaseTypeRequest) error
	Delete(ctx context.Context, id string) (bool, error)
}

// WorkTrackersClient manages work tracker entries.
type WorkTrackersClient interface {
	List(ctx context.Context) ([]WorkTracker, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, request *WorkTrackerRequest) (string, error)
	Get(ctx context.Context, id string) (*WorkTracker, error)
	Update(ctx context.Context, id string, request *WorkTrackerRequest) error
	Delete(ctx context.Context, id string) (bool, error)
}

// AuthClient manages the session with the back-office server.
type AuthClient interface {
	Register(ctx context.Context, request *RegisterRequest) (Outcome, error)
	Login(ctx context.Context, request *LoginRequest) (Outcome, error)
	Me(ctx context.Context) (*User, error)
	Logout(ctx context.Context) error
}

// Client provides access to every resource client.
type Client interface {
	Users() UsersClient
	Companies() CompaniesClient
	CaseTypes() CaseTypesClient
	WorkTrackers() WorkTrackersClient
	Auth() AuthClient
	Dashboard(ctx context.Context) (*Counts, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a back-office client.
//
// APIEndpoint is the server base URL. The API root ("/api") is appended
// when it is not already the last path segment, so both
// "https://office.example.com" and "https://office.example.com/api" work.
//
// Failures are surfaced twice: as the returned error, and as an error
// notification pushed to Notifier by the response interceptor. When
// Notifier is nil the client creates its own notification channel.
type Config struct {
	// APIEndpoint: base URL of the back-office server.
	APIEndpoint string

	// HTTPTimeout: per-request timeout. Zero means 300 seconds.
	HTTPTimeout time.Duration
	// RetryMax: retries for transient failures. Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Headers: extra headers sent with every request.
	Headers map[string]string

	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by every layer.
	Logger Logger

	// Notifier: receives error notifications from the HTTP layer.
	Notifier Notifier
	// TolerateEmptySuccessBody: report unparsable 2xx bodies as a generic
	// success. Nil means true.
	TolerateEmptySuccessBody *bool
}
