package http

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// RequestOptions describes a single call. Zero values select the defaults:
// GET, empty path, no extra headers or query, and an empty JSON object as
// the body.
//
// Body is JSON encoded unless IsFormData is set, in which case maps are form
// encoded and strings or byte slices are sent as-is.
type RequestOptions struct {
	Method     string
	Path       string
	Headers    map[string]string
	Query      map[string]any
	Body       any
	IsFormData bool
}

// Request is what the client hands to a Transport. Body is nil for methods
// that carry no body.
type Request struct {
	ID      string
	Method  string
	URL     string
	Headers map[string]string
	Query   url.Values
	Body    []byte
	Form    bool
}

// CarriesBody reports whether requests with this method get an encoded body.
func CarriesBody(method string) bool {
	switch method {
	case "POST", "PATCH", "PUT", "DELETE":
		return true
	}
	return false
}

// BuildURL returns the URL with the query merged into any query string it
// already has. Query values replace existing values of the same key.
func (r *Request) BuildURL() string {
	if len(r.Query) == 0 {
		return r.URL
	}

	u, err := url.Parse(r.URL)
	if err != nil {
		return r.URL
	}

	q := u.Query()
	for k, v := range r.Query {
		q[k] = v
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// mergeHeaders overlays call on base. A call header replaces a base header
// whose name differs only in case.
func mergeHeaders(base, call map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(call))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range call {
		deleteHeader(out, k)
		out[k] = v
	}
	return out
}

func deleteHeader(headers map[string]string, name string) {
	for k := range headers {
		if strings.EqualFold(k, name) {
			delete(headers, k)
		}
	}
}

func setContentType(headers map[string]string, contentType string) {
	deleteHeader(headers, "Content-Type")
	headers["Content-Type"] = contentType
}

func queryValues(query map[string]any) (url.Values, error) {
	values := make(url.Values, len(query))
	for k, v := range query {
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, fmt.Errorf("query parameter %q: %w", k, err)
		}
		values.Set(k, s)
	}
	return values, nil
}

func encodeJSONBody(body any) ([]byte, error) {
	if body == nil {
		return []byte("{}"), nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON body: %w", err)
	}
	return data, nil
}

func encodeFormBody(body any) ([]byte, error) {
	switch v := body.(type) {
	case nil:
		return []byte{}, nil
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case url.Values:
		return []byte(v.Encode()), nil
	case map[string]string:
		values := make(url.Values, len(v))
		for k, s := range v {
			values.Set(k, s)
		}
		return []byte(values.Encode()), nil
	case map[string][]string:
		return []byte(url.Values(v).Encode()), nil
	case map[string]any:
		values := make(url.Values, len(v))
		for k, raw := range v {
			if list, ok := raw.([]any); ok {
				for _, item := range list {
					s, err := cast.ToStringE(item)
					if err != nil {
						return nil, fmt.Errorf("form field %q: %w", k, err)
					}
					values.Add(k, s)
				}
				continue
			}
			s, err := cast.ToStringE(raw)
			if err != nil {
				return nil, fmt.Errorf("form field %q: %w", k, err)
			}
			values.Set(k, s)
		}
		return []byte(values.Encode()), nil
	}
	return nil, fmt.Errorf("unsupported form body type %T", body)
}
