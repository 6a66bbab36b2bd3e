package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/ontraport-client/internal/constants"
	"github.com/fivetwenty-io/ontraport-client/internal/http"
	"github.com/fivetwenty-io/ontraport-client/pkg/ontraport"
)

// ObjectsService implements ontraport.ObjectsClient. Every operation is a
// thin composition: resolve the object type, merge objectID into the
// payload, delegate to the transport.
type ObjectsService struct {
	httpClient *http.Client
	schema     *SchemaService
	debug      bool
}

// NewObjectsService creates a new objects facade.
func NewObjectsService(httpClient *http.Client, schema *SchemaService, debug bool) *ObjectsService {
	return &ObjectsService{
		httpClient: httpClient,
		schema:     schema,
		debug:      debug,
	}
}

// Get implements ontraport.ObjectsClient.Get.
func (s *ObjectsService) Get(ctx context.Context, objectType string, id string) (*ontraport.Response, error) {
	objectID, err := s.schema.resolveObjectID(ctx, objectType)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Get(ctx, "/object", map[string]interface{}{
		"objectID": objectID,
		"id":       id,
	})
	if err != nil {
		return nil, fmt.Errorf("getting object: %w", err)
	}

	return s.wrap(resp)
}

// List implements ontraport.ObjectsClient.List.
func (s *ObjectsService) List(ctx context.Context, objectType string, params *ontraport.QueryParams) (*ontraport.Response, error) {
	objectID, err := s.schema.resolveObjectID(ctx, objectType)
	if err != nil {
		return nil, err
	}

	payload := params.ToPayload()
	payload["objectID"] = objectID

	resp, err := s.httpClient.Get(ctx, "/objects", payload)
	if err != nil {
		return nil, fmt.Errorf("listing objects: %w", err)
	}

	return s.wrap(resp)
}

// Create implements ontraport.ObjectsClient.Create.
func (s *ObjectsService) Create(ctx context.Context, objectType string, fields map[string]interface{}) (*ontraport.Response, error) {
	payload, err := s.fieldsPayload(ctx, objectType, fields)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Post(ctx, "/objects", payload)
	if err != nil {
		return nil, fmt.Errorf("creating object: %w", err)
	}

	return s.wrap(resp)
}

// SaveOrUpdate implements ontraport.ObjectsClient.SaveOrUpdate.
func (s *ObjectsService) SaveOrUpdate(ctx context.Context, objectType string, fields map[string]interface{}) (*ontraport.Response, error) {
	payload, err := s.fieldsPayload(ctx, objectType, fields)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Post(ctx, "/objects/saveorupdate", payload)
	if err != nil {
		return nil, fmt.Errorf("saving object: %w", err)
	}

	return s.wrap(resp)
}

// Update implements ontraport.ObjectsClient.Update.
func (s *ObjectsService) Update(ctx context.Context, objectType string, id string, fields map[string]interface{}) (*ontraport.Response, error) {
	payload, err := s.fieldsPayload(ctx, objectType, fields)
	if err != nil {
		return nil, err
	}

	payload["id"] = id

	resp, err := s.httpClient.Put(ctx, "/objects", payload)
	if err != nil {
		return nil, fmt.Errorf("updating object: %w", err)
	}

	return s.wrap(resp)
}

// Tag implements ontraport.ObjectsClient.Tag.
func (s *ObjectsService) Tag(ctx context.Context, objectType string, ids, tagIDs interface{}) (*ontraport.Response, error) {
	objectID, err := s.schema.resolveObjectID(ctx, objectType)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Put(ctx, "/objects/tag", map[string]interface{}{
		"objectID": objectID,
		"ids":      ontraport.JoinList(ids),
		"add_list": ontraport.JoinList(tagIDs),
	})
	if err != nil {
		return nil, fmt.Errorf("tagging objects: %w", err)
	}

	return s.wrap(resp)
}

// Untag implements ontraport.ObjectsClient.Untag. The signature is symmetric
// with Tag: the same ids and tag ids, sent with remove_list via DELETE.
func (s *ObjectsService) Untag(ctx context.Context, objectType string, ids, tagIDs interface{}) (*ontraport.Response, error) {
	objectID, err := s.schema.resolveObjectID(ctx, objectType)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Delete(ctx, "/objects/tag", map[string]interface{}{
		"objectID":    objectID,
		"ids":         ontraport.JoinList(ids),
		"remove_list": ontraport.JoinList(tagIDs),
	})
	if err != nil {
		return nil, fmt.Errorf("untagging objects: %w", err)
	}

	return s.wrap(resp)
}

// TagByName implements ontraport.ObjectsClient.TagByName. Unlike the other
// tag and subscription operations, this endpoint takes its lists as JSON
// arrays rather than comma-joined strings.
func (s *ObjectsService) TagByName(ctx context.Context, objectType string, ids, tagNames interface{}) (*ontraport.Response, error) {
	objectID, err := s.schema.resolveObjectID(ctx, objectType)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Put(ctx, "/objects/tagByName", map[string]interface{}{
		"objectID":  objectID,
		"ids":       ontraport.SplitList(ids),
		"add_names": ontraport.SplitList(tagNames),
	})
	if err != nil {
		return nil, fmt.Errorf("tagging objects by name: %w", err)
	}

	return s.wrap(resp)
}

// Subscribe implements ontraport.ObjectsClient.Subscribe. An empty subType
// defaults to "Campaign".
func (s *ObjectsService) Subscribe(ctx context.Context, objectType string, ids, listIDs interface{}, subType string) (*ontraport.Response, error) {
	objectID, err := s.schema.resolveObjectID(ctx, objectType)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Put(ctx, "/objects/subscribe", map[string]interface{}{
		"objectID": objectID,
		"ids":      ontraport.JoinList(ids),
		"sub_type": subTypeOrDefault(subType),
		"add_list": ontraport.JoinList(listIDs),
	})
	if err != nil {
		return nil, fmt.Errorf("adding subscription: %w", err)
	}

	return s.wrap(resp)
}

// Unsubscribe implements ontraport.ObjectsClient.Unsubscribe.
func (s *ObjectsService) Unsubscribe(ctx context.Context, objectType string, ids, listIDs interface{}, subType string) (*ontraport.Response, error) {
	objectID, err := s.schema.resolveObjectID(ctx, objectType)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Delete(ctx, "/objects/subscribe", map[string]interface{}{
		"objectID":    objectID,
		"ids":         ontraport.JoinList(ids),
		"sub_type":    subTypeOrDefault(subType),
		"remove_list": ontraport.JoinList(listIDs),
	})
	if err != nil {
		return nil, fmt.Errorf("removing subscription: %w", err)
	}

	return s.wrap(resp)
}

// fieldsPayload resolves the object type and merges its id into a copy of the
// caller's field values.
func (s *ObjectsService) fieldsPayload(ctx context.Context, objectType string, fields map[string]interface{}) (map[string]interface{}, error) {
	objectID, err := s.schema.resolveObjectID(ctx, objectType)
	if err != nil {
		return nil, err
	}

	payload := make(map[string]interface{}, len(fields)+1)
	for key, value := range fields {
		payload[key] = value
	}

	payload["objectID"] = objectID

	return payload, nil
}

// wrap parses a transport response into the public Response value object.
func (s *ObjectsService) wrap(resp *http.Response) (*ontraport.Response, error) {
	parsed, err := ontraport.ParseResponse(resp.Body)
	if err != nil {
		return nil, err
	}

	if s.debug {
		parsed.Request = resp.RequestInfo
	}

	return parsed, nil
}

func subTypeOrDefault(subType string) string {
	if subType == "" {
		return constants.SubTypeCampaign
	}

	return subType
}
