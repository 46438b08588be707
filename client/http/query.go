package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PageParams are the cursor pagination parameters shared by list endpoints.
// Embed it in a params struct; cursors returned by the server are passed
// back verbatim.
type PageParams struct {
	PageBefore *string `json:"pageBefore,omitempty"`
	PageAfter  *string `json:"pageAfter,omitempty"`
	PageSize   *int    `json:"pageSize,omitempty"`
}

// Next returns the parameters for the page after the item lastID.
func (p PageParams) Next(lastID string) PageParams {
	return PageParams{PageAfter: &lastID, PageSize: p.PageSize}
}

// Prev returns the parameters for the page before the item firstID.
func (p PageParams) Prev(firstID string) PageParams {
	return PageParams{PageBefore: &firstID, PageSize: p.PageSize}
}

// FlattenQuery converts a params struct into query values using its JSON
// field names. Absent (nil) fields and empty strings are dropped. Slices of
// scalars are joined with commas; nested objects are rejected.
func FlattenQuery(params interface{}) (url.Values, error) {
	values := url.Values{}
	if params == nil {
		return values, nil
	}

	switch p := params.(type) {
	case url.Values:
		for k, vs := range p {
			for _, v := range vs {
				if v != "" {
					values.Add(k, v)
				}
			}
		}
		return values, nil
	case map[string]string:
		for k, v := range p {
			if v != "" {
				values.Set(k, v)
			}
		}
		return values, nil
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query params: %w", err)
	}
	if bytes.Equal(raw, []byte("null")) {
		return values, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("query params must be a JSON object: %w", err)
	}

	for key, field := range fields {
		value, ok, err := queryValue(field)
		if err != nil {
			return nil, fmt.Errorf("query param %q: %w", key, err)
		}
		if ok {
			values.Set(key, value)
		}
	}
	return values, nil
}

func queryValue(v interface{}) (string, bool, error) {
	switch val := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return val, val != "", nil
	case json.Number:
		return val.String(), true, nil
	case bool:
		return strconv.FormatBool(val), true, nil
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if _, nested := item.([]interface{}); nested {
				return "", false, fmt.Errorf("nested lists are not supported")
			}
			s, ok, err := queryValue(item)
			if err != nil {
				return "", false, err
			}
			if ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ","), len(parts) > 0, nil
	default:
		return "", false, fmt.Errorf("unsupported value of type %T", v)
	}
}
