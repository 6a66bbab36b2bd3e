package ontraport

import (
	"fmt"
	"strconv"
	"strings"
)

// JoinList normalizes a list-valued parameter (ids, add_list, remove_list)
// to the comma-joined string form the API expects. It accepts a single
// scalar or an ordered sequence of scalars; both normalize to the identical
// representation:
//
//	JoinList(12345)            // "12345"
//	JoinList([]int{150, 200})  // "150,200"
//	JoinList("150,200")        // "150,200"
//
// A nil value yields an empty string.
func JoinList(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ",")
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}

		return strings.Join(parts, ",")
	case []int64:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.FormatInt(n, 10)
		}

		return strings.Join(parts, ",")
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = scalarString(item)
		}

		return strings.Join(parts, ",")
	default:
		return scalarString(v)
	}
}

// SplitList normalizes a list-valued parameter to its element form for the
// endpoints that take arrays on the wire (tagByName). It accepts the same
// scalar-or-sequence inputs as JoinList; comma-joined strings are split
// back into their elements:
//
//	SplitList(12345)           // []string{"12345"}
//	SplitList([]int{150, 200}) // []string{"150", "200"}
//	SplitList("vip,beta")      // []string{"vip", "beta"}
//
// A nil value yields nil.
func SplitList(value interface{}) []string {
	joined := JoinList(value)
	if joined == "" {
		return nil
	}

	return strings.Split(joined, ",")
}

func scalarString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// QueryParams holds the caller-supplied filter, search, and sort parameters
// accepted by the list operation. The zero value lists everything with the
// API's defaults.
type QueryParams struct {
	// Condition is an Ontraport condition expression filtering the results.
	Condition string

	// Search matches records containing the given string.
	Search string

	// SearchNotes extends Search to note fields.
	SearchNotes bool

	// Start is the zero-based offset of the first record returned.
	Start int

	// Range is the maximum number of records returned (API caps at 50).
	Range int

	// Sort names the field to sort on; SortDir is "asc" or "desc".
	Sort    string
	SortDir string

	// ListFields restricts the returned fields.
	ListFields []string

	// GroupIDs restricts results to the given group ids; scalar or sequence.
	GroupIDs interface{}
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// ToPayload converts the parameters to the request payload form. Zero-valued
// fields are omitted.
func (p *QueryParams) ToPayload() map[string]interface{} {
	payload := map[string]interface{}{}

	if p == nil {
		return payload
	}

	if p.Condition != "" {
		payload["condition"] = p.Condition
	}

	if p.Search != "" {
		payload["search"] = p.Search
	}

	if p.SearchNotes {
		payload["searchNotes"] = "true"
	}

	if p.Start > 0 {
		payload["start"] = strconv.Itoa(p.Start)
	}

	if p.Range > 0 {
		payload["range"] = strconv.Itoa(p.Range)
	}

	if p.Sort != "" {
		payload["sort"] = p.Sort
	}

	if p.SortDir != "" {
		payload["sortDir"] = p.SortDir
	}

	if len(p.ListFields) > 0 {
		payload["listFields"] = strings.Join(p.ListFields, ",")
	}

	if p.GroupIDs != nil {
		payload["group_ids"] = JoinList(p.GroupIDs)
	}

	return payload
}
