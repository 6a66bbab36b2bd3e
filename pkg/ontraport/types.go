package ontraport

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ObjectMeta represents the schema metadata for one object type as returned
// by the /objects/meta endpoint, merged with the numeric id it was keyed
// under.
type ObjectMeta struct {
	Name           string               `json:"name"             yaml:"name"`
	Fields         map[string]FieldMeta `json:"fields"           yaml:"fields"`
	SchemaObjectID string               `json:"schema_object_id" yaml:"schema_object_id"`
}

// FieldMeta describes a single field of an object type.
type FieldMeta struct {
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`
	Type  string `json:"type,omitempty"  yaml:"type,omitempty"`
}

// RequestInfo describes an outgoing request. It is attached to responses when
// debug mode is enabled so callers can introspect exactly what was sent.
type RequestInfo struct {
	Method string                 `json:"method"          yaml:"method"`
	URL    string                 `json:"url"             yaml:"url"`
	Body   map[string]interface{} `json:"body,omitempty"  yaml:"body,omitempty"`
}

// Response wraps a parsed JSON response body. The client enforces no schema
// on response payloads; keys are normalized to lower case (recursively, for
// nested objects) so lookups are stable regardless of the casing the API
// used.
type Response struct {
	// Data is the normalized key/value structure of the response body.
	Data map[string]interface{} `json:"data" yaml:"data"`

	// Request is the outgoing request that produced this response. Only set
	// when the client was configured with Debug.
	Request *RequestInfo `json:"request,omitempty" yaml:"request,omitempty"`
}

// NewResponse builds a Response from a decoded JSON object, normalizing keys.
func NewResponse(data map[string]interface{}) *Response {
	return &Response{Data: normalizeKeys(data)}
}

// ParseResponse decodes a JSON response body into a Response. An empty body
// yields an empty Response rather than an error.
func ParseResponse(body []byte) (*Response, error) {
	if len(body) == 0 {
		return &Response{Data: map[string]interface{}{}}, nil
	}

	var data map[string]interface{}

	err := json.Unmarshal(body, &data)
	if err != nil {
		return nil, fmt.Errorf("parsing response body: %w", err)
	}

	return NewResponse(data), nil
}

// Get returns the value stored under key and whether it was present.
func (r *Response) Get(key string) (interface{}, bool) {
	value, ok := r.Data[strings.ToLower(key)]

	return value, ok
}

// String returns the value under key as a string, or "" when absent or not a
// string.
func (r *Response) String(key string) string {
	value, ok := r.Get(key)
	if !ok {
		return ""
	}

	str, _ := value.(string)

	return str
}

// Int returns the value under key as an int64. JSON numbers decode as
// float64; numeric strings are also accepted since the API returns ids both
// ways.
func (r *Response) Int(key string) (int64, bool) {
	value, ok := r.Get(key)
	if !ok {
		return 0, false
	}

	switch v := value.(type) {
	case float64:
		return int64(v), true
	case string:
		var n int64

		_, err := fmt.Sscanf(v, "%d", &n)

		return n, err == nil
	default:
		return 0, false
	}
}

// Map returns the value under key as a nested object, or nil.
func (r *Response) Map(key string) map[string]interface{} {
	value, ok := r.Get(key)
	if !ok {
		return nil
	}

	m, _ := value.(map[string]interface{})

	return m
}

// Slice returns the value under key as a slice, or nil.
func (r *Response) Slice(key string) []interface{} {
	value, ok := r.Get(key)
	if !ok {
		return nil
	}

	s, _ := value.([]interface{})

	return s
}

// normalizeKeys lower-cases map keys recursively. Values inside slices are
// normalized as well so nested collections stay consistent.
func normalizeKeys(data map[string]interface{}) map[string]interface{} {
	if data == nil {
		return nil
	}

	normalized := make(map[string]interface{}, len(data))
	for key, value := range data {
		normalized[strings.ToLower(key)] = normalizeValue(value)
	}

	return normalized
}

func normalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return normalizeKeys(v)
	case []interface{}:
		normalized := make([]interface{}, len(v))
		for i, item := range v {
			normalized[i] = normalizeValue(item)
		}

		return normalized
	default:
		return value
	}
}
