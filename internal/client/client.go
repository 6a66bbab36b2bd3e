// Package client implements the ontraport.Client interface.
package client

import (
	"strings"
	"time"

	"github.com/fivetwenty-io/ontraport-client/internal/constants"
	"github.com/fivetwenty-io/ontraport-client/internal/http"
	"github.com/fivetwenty-io/ontraport-client/pkg/ontraport"
)

// Client implements the ontraport.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     ontraport.Logger

	objects      *ObjectsService
	transactions *TransactionsService
	schema       *SchemaService
}

// New creates a new Ontraport API client from the given configuration. The
// endpoint is assumed to be normalized already (see pkg/opclient).
func New(config *ontraport.Config) (*Client, error) {
	if config == nil {
		return nil, ontraport.ErrConfigRequired
	}

	endpoint := config.APIEndpoint
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	version := config.APIVersion
	if version == "" {
		version = constants.DefaultAPIVersion
	}

	baseURL := strings.TrimSuffix(endpoint, "/") + "/" + version

	httpClient := http.NewClient(baseURL, config.AppID, config.APIKey, buildHTTPOptions(config)...)

	cache, err := ontraport.NewCacheFromConfig(config.Cache)
	if err != nil {
		return nil, err
	}

	var cacheTTL time.Duration
	if config.Cache != nil {
		cacheTTL = config.Cache.TTL
	}

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.schema = NewSchemaService(httpClient, cache, cacheTTL)
	client.objects = NewObjectsService(httpClient, client.schema, config.Debug)
	client.transactions = NewTransactionsService(httpClient, config.Debug)

	return client, nil
}

// buildHTTPOptions maps the public config onto transport options.
func buildHTTPOptions(config *ontraport.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := constants.DefaultRetryWaitMin
		waitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			waitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			waitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return opts
}

// Objects implements ontraport.Client.Objects.
func (c *Client) Objects() ontraport.ObjectsClient {
	return c.objects
}

// Transactions implements ontraport.Client.Transactions.
func (c *Client) Transactions() ontraport.TransactionsClient {
	return c.transactions
}

// Meta implements ontraport.Client.Meta.
func (c *Client) Meta() ontraport.MetaClient {
	return c.schema
}
