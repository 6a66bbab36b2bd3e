// Package opclient provides the main entry point for creating Ontraport API
// clients.
package opclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/ontraport-client/internal/client"
	"github.com/fivetwenty-io/ontraport-client/internal/constants"
	"github.com/fivetwenty-io/ontraport-client/pkg/ontraport"
)

// New creates a new Ontraport API client.
//
// The API endpoint defaults to the production API and is normalized by
// trimming a trailing slash and adding "https://" when no scheme is present.
// Credentials are not validated locally; missing or wrong credentials surface
// as an authentication failure from the remote API.
func New(config *ontraport.Config) (ontraport.Client, error) {
	if config == nil {
		return nil, ontraport.ErrConfigRequired
	}

	endpoint := config.APIEndpoint
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.APIEndpoint = endpoint

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}
