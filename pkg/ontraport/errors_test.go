package ontraport_test

import (
	"fmt"
	"testing"

	"github.com/fivetwenty-io/ontraport-client/pkg/ontraport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ontraport.APIError
		expected string
	}{
		{
			name: "with body",
			err: &ontraport.APIError{
				StatusCode: 400,
				Status:     "Bad Request",
				Body:       `{"code":103,"error":"Invalid parameters"}`,
			},
			expected: `ontraport API error: 400 Bad Request: {"code":103,"error":"Invalid parameters"}`,
		},
		{
			name: "without body",
			err: &ontraport.APIError{
				StatusCode: 401,
				Status:     "Unauthorized",
			},
			expected: "ontraport API error: 401 Unauthorized",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.err.Error())
			assert.Contains(t, testCase.err.Error(), fmt.Sprintf("%d", testCase.err.StatusCode))
		})
	}
}

func TestIsAPIError(t *testing.T) {
	t.Parallel()

	apiErr := &ontraport.APIError{StatusCode: 500, Status: "Internal Server Error"}
	wrapped := fmt.Errorf("listing objects: %w", apiErr)

	unwrapped, ok := ontraport.IsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 500, unwrapped.StatusCode)

	_, ok = ontraport.IsAPIError(ontraport.ErrObjectNotFound)
	assert.False(t, ok)
}

func TestErrorClassifiers(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("%w: %q", ontraport.ErrObjectNotFound, "widget")
	assert.True(t, ontraport.IsNotFound(notFound))
	assert.False(t, ontraport.IsInvalidObjectType(notFound))

	invalid := fmt.Errorf("%w: empty object type", ontraport.ErrInvalidObjectType)
	assert.True(t, ontraport.IsInvalidObjectType(invalid))
	assert.False(t, ontraport.IsNotFound(invalid))
}
