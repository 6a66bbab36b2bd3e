package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/ontraport-client/internal/http"
	"github.com/fivetwenty-io/ontraport-client/pkg/ontraport"
)

// metaCacheKey is the cache key under which the full metadata snapshot is
// stored. Kept free of '/' so it is valid for every backend, NATS KV
// included.
const metaCacheKey = "objects.meta"

// SchemaService implements ontraport.MetaClient. It lazily fetches the
// object-schema metadata from /objects/meta, stores it through the configured
// cache backend, and resolves object-type names to numeric ids.
type SchemaService struct {
	httpClient *http.Client
	cache      ontraport.Cache
	ttl        time.Duration

	// mu serializes cache population so concurrent first access performs a
	// single metadata fetch and all callers observe one snapshot.
	mu sync.Mutex
}

// NewSchemaService creates a new schema service backed by the given cache.
func NewSchemaService(httpClient *http.Client, cache ontraport.Cache, ttl time.Duration) *SchemaService {
	return &SchemaService{
		httpClient: httpClient,
		cache:      cache,
		ttl:        ttl,
	}
}

// metaEnvelope matches the API's standard response envelope for the metadata
// endpoint. Some deployments return the mapping at the top level instead;
// decodeMeta handles both.
type metaEnvelope struct {
	Code int                       `json:"code"`
	Data map[string]objectMetaBody `json:"data"`
}

type objectMetaBody struct {
	Name   string                         `json:"name"`
	Fields map[string]ontraport.FieldMeta `json:"fields"`
}

// DescribeAll implements ontraport.MetaClient.DescribeAll.
func (s *SchemaService) DescribeAll(ctx context.Context) (map[string]ontraport.ObjectMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(ctx)
}

// Describe implements ontraport.MetaClient.Describe.
func (s *SchemaService) Describe(ctx context.Context, objectType string) (*ontraport.ObjectMeta, error) {
	name := strings.TrimSpace(objectType)
	if name == "" {
		return nil, fmt.Errorf("%w: empty object type", ontraport.ErrInvalidObjectType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadLocked(ctx)
	if err != nil {
		return nil, err
	}

	for _, meta := range all {
		if strings.EqualFold(meta.Name, name) {
			found := meta

			return &found, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ontraport.ErrObjectNotFound, objectType)
}

// ClearCache implements ontraport.MetaClient.ClearCache.
func (s *SchemaService) ClearCache(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Delete(ctx, metaCacheKey)
}

// resolveObjectID returns the numeric id for an object-type name.
func (s *SchemaService) resolveObjectID(ctx context.Context, objectType string) (string, error) {
	meta, err := s.Describe(ctx, objectType)
	if err != nil {
		return "", err
	}

	return meta.SchemaObjectID, nil
}

// loadLocked returns the metadata snapshot, fetching it when the cache has no
// live entry. Callers must hold s.mu.
func (s *SchemaService) loadLocked(ctx context.Context) (map[string]ontraport.ObjectMeta, error) {
	entry, err := s.cache.Get(ctx, metaCacheKey)
	if err == nil {
		var cached map[string]ontraport.ObjectMeta

		err = json.Unmarshal(entry.Data, &cached)
		if err == nil {
			return cached, nil
		}
		// Undecodable entry: fall through to a refetch.
	}

	resp, err := s.httpClient.Get(ctx, "/objects/meta", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching schema metadata: %w", err)
	}

	all, err := decodeMeta(resp.Body)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(all)
	if err != nil {
		return nil, fmt.Errorf("encoding schema metadata for cache: %w", err)
	}

	cacheEntry := &ontraport.CacheEntry{Data: data}
	if s.ttl > 0 {
		cacheEntry.ExpiresAt = time.Now().Add(s.ttl)
	}

	err = s.cache.Set(ctx, metaCacheKey, cacheEntry)
	if err != nil {
		return nil, fmt.Errorf("caching schema metadata: %w", err)
	}

	return all, nil
}

// decodeMeta parses the metadata response: a mapping from numeric id (as
// string) to name and field descriptors, either wrapped in the standard
// "data" envelope or returned bare. The resolved id is merged into each
// entry as its SchemaObjectID.
func decodeMeta(body []byte) (map[string]ontraport.ObjectMeta, error) {
	var envelope metaEnvelope

	err := json.Unmarshal(body, &envelope)
	if err != nil || envelope.Data == nil {
		var bare map[string]objectMetaBody

		err = json.Unmarshal(body, &bare)
		if err != nil {
			return nil, fmt.Errorf("parsing schema metadata: %w", err)
		}

		envelope.Data = bare
	}

	all := make(map[string]ontraport.ObjectMeta, len(envelope.Data))
	for id, meta := range envelope.Data {
		all[id] = ontraport.ObjectMeta{
			Name:           meta.Name,
			Fields:         meta.Fields,
			SchemaObjectID: id,
		}
	}

	return all, nil
}
