package ontraport_test

import (
	"testing"

	"github.com/fivetwenty-io/ontraport-client/pkg/ontraport"
	"github.com/stretchr/testify/assert"
)

func TestJoinList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{name: "nil", value: nil, expected: ""},
		{name: "string scalar", value: "12345", expected: "12345"},
		{name: "int scalar", value: 12345, expected: "12345"},
		{name: "int64 scalar", value: int64(12345), expected: "12345"},
		{name: "string slice", value: []string{"150", "200"}, expected: "150,200"},
		{name: "int slice", value: []int{150, 200}, expected: "150,200"},
		{name: "int64 slice", value: []int64{150, 200}, expected: "150,200"},
		{name: "mixed slice", value: []interface{}{150, "200"}, expected: "150,200"},
		{name: "single element slice", value: []int{12345}, expected: "12345"},
		{name: "pre-joined string", value: "150,200", expected: "150,200"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, ontraport.JoinList(testCase.value))
		})
	}
}

// A scalar and a single-element sequence must normalize identically,
// consistent across every list-valued parameter.
func TestJoinList_ScalarSequenceEquivalence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ontraport.JoinList(12345), ontraport.JoinList([]int{12345}))
	assert.Equal(t, ontraport.JoinList("12345"), ontraport.JoinList([]string{"12345"}))
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    interface{}
		expected []string
	}{
		{name: "nil", value: nil, expected: nil},
		{name: "string scalar", value: "vip", expected: []string{"vip"}},
		{name: "int scalar", value: 12345, expected: []string{"12345"}},
		{name: "string slice", value: []string{"vip", "beta"}, expected: []string{"vip", "beta"}},
		{name: "int slice", value: []int{1, 2}, expected: []string{"1", "2"}},
		{name: "pre-joined string", value: "vip,beta", expected: []string{"vip", "beta"}},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, ontraport.SplitList(testCase.value))
		})
	}
}

func TestQueryParams_ToPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *ontraport.QueryParams
		expected map[string]interface{}
	}{
		{
			name:     "nil params",
			params:   nil,
			expected: map[string]interface{}{},
		},
		{
			name:     "empty params",
			params:   ontraport.NewQueryParams(),
			expected: map[string]interface{}{},
		},
		{
			name: "with range and start",
			params: &ontraport.QueryParams{
				Start: 50,
				Range: 25,
			},
			expected: map[string]interface{}{
				"start": "50",
				"range": "25",
			},
		},
		{
			name: "with sort",
			params: &ontraport.QueryParams{
				Sort:    "lastname",
				SortDir: "desc",
			},
			expected: map[string]interface{}{
				"sort":    "lastname",
				"sortDir": "desc",
			},
		},
		{
			name: "with search and condition",
			params: &ontraport.QueryParams{
				Condition:   "email='foo@bar.com'",
				Search:      "foo",
				SearchNotes: true,
			},
			expected: map[string]interface{}{
				"condition":   "email='foo@bar.com'",
				"search":      "foo",
				"searchNotes": "true",
			},
		},
		{
			name: "with list fields and group ids",
			params: &ontraport.QueryParams{
				ListFields: []string{"firstname", "email"},
				GroupIDs:   []int{1, 2},
			},
			expected: map[string]interface{}{
				"listFields": "firstname,email",
				"group_ids":  "1,2",
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.params.ToPayload())
		})
	}
}
