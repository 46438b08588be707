package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cyphera/circle-w3s/circleerr"
)

// Empty is the payload type for endpoints that answer a successful write
// with no body at all.
type Empty struct{}

// Envelope is the success wrapper every enveloped endpoint returns.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// ErrorEnvelope is the failure body shape.
type ErrorEnvelope struct {
	Code    *int   `json:"code"`
	Message string `json:"message"`
}

var (
	errEmptyBody   = errors.New("empty response body")
	errMissingData = errors.New(`response body has no "data" field`)
)

// Execute sends the request and unwraps {"data": T} from a 2xx response.
// Non-2xx responses become *circleerr.APIError.
func Execute[T any](ctx context.Context, c *HTTPClient, method, path string, body interface{}, options ...RequestOption) (T, error) {
	var zero T

	resp, err := c.Do(ctx, method, path, body, options...)
	if err != nil {
		return zero, err
	}
	return unwrapEnvelope[T](resp)
}

// ExecuteWithQuery issues a GET with query flattened into the URL.
func ExecuteWithQuery[T any](ctx context.Context, c *HTTPClient, path string, query interface{}, options ...RequestOption) (T, error) {
	var zero T

	values, err := FlattenQuery(query)
	if err != nil {
		return zero, err
	}
	if len(values) > 0 {
		path, err = mergeQuery(path, values)
		if err != nil {
			return zero, err
		}
	}

	return Execute[T](ctx, c, http.MethodGet, path, nil, options...)
}

// mergeQuery adds values to any query already present on p.
func mergeQuery(p string, values url.Values) (string, error) {
	u, err := url.Parse(p)
	if err != nil {
		return "", fmt.Errorf("invalid request path %q: %w", p, err)
	}
	merged := u.Query()
	for key, vs := range values {
		for _, v := range vs {
			merged.Add(key, v)
		}
	}
	u.RawQuery = merged.Encode()
	return u.String(), nil
}

// ExecutePlain is Execute for the few endpoints whose success body is T
// itself rather than an envelope.
func ExecutePlain[T any](ctx context.Context, c *HTTPClient, method, path string, body interface{}, options ...RequestOption) (T, error) {
	var zero T

	resp, err := c.Do(ctx, method, path, body, options...)
	if err != nil {
		return zero, err
	}
	if !resp.IsSuccess() {
		return zero, decodeAPIError(resp)
	}

	var out T
	if err := json.Unmarshal([]byte(resp.Body), &out); err != nil {
		return zero, &circleerr.DecodeResponseError{StatusCode: resp.StatusCode, Body: resp.Body, Err: err}
	}
	return out, nil
}

func unwrapEnvelope[T any](resp *Response) (T, error) {
	var zero T

	if !resp.IsSuccess() {
		return zero, decodeAPIError(resp)
	}

	if len(bytes.TrimSpace([]byte(resp.Body))) == 0 {
		// Only a caller that expects no payload may accept an empty body.
		if _, ok := any(zero).(Empty); ok {
			return zero, nil
		}
		return zero, &circleerr.DecodeResponseError{StatusCode: resp.StatusCode, Body: resp.Body, Err: errEmptyBody}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(resp.Body), &fields); err != nil {
		return zero, &circleerr.DecodeResponseError{StatusCode: resp.StatusCode, Body: resp.Body, Err: err}
	}
	data, ok := fields["data"]
	if !ok {
		return zero, &circleerr.DecodeResponseError{StatusCode: resp.StatusCode, Body: resp.Body, Err: errMissingData}
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, &circleerr.DecodeResponseError{StatusCode: resp.StatusCode, Body: resp.Body, Err: err}
	}
	return out, nil
}

// decodeAPIError maps a non-2xx response. When the body is not the
// structured error shape the raw text becomes the message.
func decodeAPIError(resp *Response) error {
	apiErr := &circleerr.APIError{StatusCode: resp.StatusCode, Message: resp.Body}

	var env ErrorEnvelope
	if err := json.Unmarshal([]byte(resp.Body), &env); err == nil && env.Message != "" {
		apiErr.Code = env.Code
		apiErr.Message = env.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
