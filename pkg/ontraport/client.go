package ontraport

import (
	"context"
	"time"
)

// ObjectsClient exposes the object operations facade. Every method resolves
// the object type's numeric id through the schema cache before issuing the
// request; a failed resolution surfaces as ErrInvalidObjectType or
// ErrObjectNotFound without any object-operation network call.
//
// List-valued arguments (ids, tagIDs, listIDs, tagNames) accept a single
// scalar or a slice of scalars; see JoinList for the normalization rule.
type ObjectsClient interface {
	// Get fetches a single object by id.
	Get(ctx context.Context, objectType string, id string) (*Response, error)

	// List queries objects of the given type with optional filter and sort
	// parameters.
	List(ctx context.Context, objectType string, params *QueryParams) (*Response, error)

	// Create creates a new object with the given field values.
	Create(ctx context.Context, objectType string, fields map[string]interface{}) (*Response, error)

	// SaveOrUpdate creates an object, or merges into an existing one when the
	// API finds a match on unique fields.
	SaveOrUpdate(ctx context.Context, objectType string, fields map[string]interface{}) (*Response, error)

	// Update modifies an existing object's fields.
	Update(ctx context.Context, objectType string, id string, fields map[string]interface{}) (*Response, error)

	// Tag adds the given tags to the given objects.
	Tag(ctx context.Context, objectType string, ids, tagIDs interface{}) (*Response, error)

	// Untag removes the given tags from the given objects.
	Untag(ctx context.Context, objectType string, ids, tagIDs interface{}) (*Response, error)

	// TagByName adds tags to objects by tag name rather than id.
	TagByName(ctx context.Context, objectType string, ids, tagNames interface{}) (*Response, error)

	// Subscribe adds the given objects to campaigns or sequences.
	Subscribe(ctx context.Context, objectType string, ids, listIDs interface{}, subType string) (*Response, error)

	// Unsubscribe removes the given objects from campaigns or sequences.
	Unsubscribe(ctx context.Context, objectType string, ids, listIDs interface{}, subType string) (*Response, error)
}

// TransactionsClient exposes transaction endpoints. These address fixed
// endpoints and perform no object-type resolution.
type TransactionsClient interface {
	// GetOrder fetches a single order by id.
	GetOrder(ctx context.Context, id string) (*Response, error)
}

// MetaClient exposes the schema-metadata cache.
type MetaClient interface {
	// Describe returns the cached metadata for the object type, fetching the
	// metadata collection first when the cache is cold. The lookup is
	// case-insensitive on the type name.
	Describe(ctx context.Context, objectType string) (*ObjectMeta, error)

	// DescribeAll returns the metadata for every object type, keyed by
	// numeric id.
	DescribeAll(ctx context.Context) (map[string]ObjectMeta, error)

	// ClearCache discards the cached metadata unconditionally. It is
	// idempotent and does not itself trigger a refetch.
	ClearCache(ctx context.Context) error
}

// Client is the top-level Ontraport API client.
type Client interface {
	Objects() ObjectsClient
	Transactions() TransactionsClient
	Meta() MetaClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an ontraport.Client.
//
// AppID and APIKey are sent as the Api-Appid and Api-Key headers on every
// request. Their presence is not validated locally; missing credentials
// surface as an authentication failure from the remote API.
//
// Per-request timeouts should generally be controlled via the context passed
// to client methods; HTTPTimeout bounds the underlying transport. Retries are
// disabled unless RetryMax is set — the client is single-attempt, fail-fast
// by default.
type Config struct {
	// AppID: the Ontraport application id credential.
	AppID string

	// APIKey: the Ontraport API key credential.
	APIKey string

	// APIEndpoint: base URL for the API. Defaults to
	// "https://api.ontraport.com". opclient.New normalizes this value by
	// trimming a trailing slash and adding "https://" if no scheme is
	// present.
	APIEndpoint string

	// APIVersion: version path prefix. Defaults to "1".
	APIVersion string

	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided, and attaches the outgoing request to every Response.
	Debug bool

	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger

	// HTTPTimeout: timeout applied by the underlying HTTP transport. If 0, a
	// sensible default is used.
	HTTPTimeout time.Duration

	// RetryMax: maximum number of retries for transient failures (>=500, 429,
	// and connection errors). 0 disables retries.
	RetryMax int

	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration

	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string

	// Cache: backend for the schema-metadata cache. If nil, an in-memory
	// cache is used.
	Cache *CacheConfig
}
