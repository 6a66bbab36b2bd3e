package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/ontraport-client/internal/http"
	"github.com/fivetwenty-io/ontraport-client/pkg/ontraport"
)

// TransactionsService implements ontraport.TransactionsClient. Transaction
// endpoints are fixed; no object-type resolution happens here.
type TransactionsService struct {
	httpClient *http.Client
	debug      bool
}

// NewTransactionsService creates a new transactions client.
func NewTransactionsService(httpClient *http.Client, debug bool) *TransactionsService {
	return &TransactionsService{
		httpClient: httpClient,
		debug:      debug,
	}
}

// GetOrder implements ontraport.TransactionsClient.GetOrder.
func (s *TransactionsService) GetOrder(ctx context.Context, id string) (*ontraport.Response, error) {
	resp, err := s.httpClient.Get(ctx, "/transaction/order", map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}

	parsed, err := ontraport.ParseResponse(resp.Body)
	if err != nil {
		return nil, err
	}

	if s.debug {
		parsed.Request = resp.RequestInfo
	}

	return parsed, nil
}
