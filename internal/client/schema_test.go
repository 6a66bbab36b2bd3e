package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/fivetwenty-io/ontraport-client/pkg/ontraport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metaBody = `{
	"code": 0,
	"data": {
		"0": {
			"name": "Contact",
			"fields": {
				"firstname": {"alias": "First Name", "type": "text"},
				"email": {"alias": "Email", "type": "email"}
			}
		},
		"2": {"name": "Staff", "fields": {}},
		"14": {"name": "Tag", "fields": {}}
	}
}`

// newMetaServer serves /1/objects/meta and counts how many times the
// metadata was fetched.
func newMetaServer(t *testing.T, fetches *int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/1/objects/meta" {
			*fetches++

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(metaBody))

			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
}

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	client, err := New(&ontraport.Config{
		APIEndpoint: serverURL,
		AppID:       "app",
		APIKey:      "key",
	})
	require.NoError(t, err)

	return client
}

func TestSchemaService_Describe(t *testing.T) {
	fetches := 0
	server := newMetaServer(t, &fetches)

	defer server.Close()

	client := newTestClient(t, server.URL)

	meta, err := client.Meta().Describe(context.Background(), "contact")
	require.NoError(t, err)
	assert.Equal(t, "Contact", meta.Name)
	assert.Equal(t, "0", meta.SchemaObjectID)
	assert.Equal(t, "First Name", meta.Fields["firstname"].Alias)
	assert.Equal(t, 1, fetches)
}

func TestSchemaService_DescribeIsCaseInsensitive(t *testing.T) {
	fetches := 0
	server := newMetaServer(t, &fetches)

	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	for _, name := range []string{"contact", "Contact", "CONTACT"} {
		meta, err := client.Meta().Describe(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "0", meta.SchemaObjectID)
	}

	assert.Equal(t, 1, fetches)
}

func TestSchemaService_DescribeAllKeysMatchSchemaObjectID(t *testing.T) {
	fetches := 0
	server := newMetaServer(t, &fetches)

	defer server.Close()

	client := newTestClient(t, server.URL)

	all, err := client.Meta().DescribeAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Each entry's id matches the key it was stored under.
	for id, meta := range all {
		assert.Equal(t, id, meta.SchemaObjectID)
	}
}

func TestSchemaService_DescribeUnknownType(t *testing.T) {
	fetches := 0
	server := newMetaServer(t, &fetches)

	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Meta().Describe(context.Background(), "widget")
	require.ErrorIs(t, err, ontraport.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "widget")
}

func TestSchemaService_DescribeInvalidArgument(t *testing.T) {
	fetches := 0
	server := newMetaServer(t, &fetches)

	defer server.Close()

	client := newTestClient(t, server.URL)

	for _, bad := range []string{"", "   "} {
		_, err := client.Meta().Describe(context.Background(), bad)
		require.ErrorIs(t, err, ontraport.ErrInvalidObjectType)
	}

	// Validation fails before any network call.
	assert.Equal(t, 0, fetches)
}

func TestSchemaService_CachesAcrossCalls(t *testing.T) {
	fetches := 0
	server := newMetaServer(t, &fetches)

	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := client.Meta().Describe(ctx, "contact")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, fetches)
}

func TestSchemaService_ClearCacheForcesOneRefetch(t *testing.T) {
	fetches := 0
	server := newMetaServer(t, &fetches)

	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	_, err := client.Meta().Describe(ctx, "contact")
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)

	err = client.Meta().ClearCache(ctx)
	require.NoError(t, err)

	// ClearCache itself does not refetch.
	assert.Equal(t, 1, fetches)

	// The next describe triggers exactly one new fetch, then caches again.
	_, err = client.Meta().Describe(ctx, "contact")
	require.NoError(t, err)
	_, err = client.Meta().Describe(ctx, "staff")
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)

	// ClearCache is idempotent.
	require.NoError(t, client.Meta().ClearCache(ctx))
	require.NoError(t, client.Meta().ClearCache(ctx))
}

func TestSchemaService_ConcurrentFirstAccessFetchesOnce(t *testing.T) {
	fetches := 0
	server := newMetaServer(t, &fetches)

	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := client.Meta().Describe(ctx, "contact")
			assert.NoError(t, err)
		}()
	}

	wg.Wait()
	assert.Equal(t, 1, fetches)
}

func TestSchemaService_BareMetaMapping(t *testing.T) {
	// Some deployments return the mapping without the "data" envelope.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"0": map[string]interface{}{"name": "Contact", "fields": map[string]interface{}{}},
		})
	}))

	defer server.Close()

	client := newTestClient(t, server.URL)

	meta, err := client.Meta().Describe(context.Background(), "contact")
	require.NoError(t, err)
	assert.Equal(t, "0", meta.SchemaObjectID)
}

func TestSchemaService_MetaFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("maintenance"))
	}))

	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Meta().Describe(context.Background(), "contact")
	require.Error(t, err)

	apiErr := &ontraport.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "maintenance")
}
