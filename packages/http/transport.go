package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"time"
)

// Transport sends a fully built request.
//
// Implementations must return a *StatusError carrying the response when the
// status code is outside the 2xx and 3xx ranges, and plain errors for
// everything that prevented a response.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// StatusError is returned by transports for responses with an error status.
type StatusError struct {
	Response *Response
}

func (e *StatusError) Error() string {
	if e.Response == nil {
		return "http status error"
	}
	return fmt.Sprintf("response code %d (%s)", e.Response.StatusCode, e.Response.Status)
}

func checkStatus(resp *Response) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return &StatusError{Response: resp}
	}
	return nil
}

// NetTransport sends requests with a net/http client.
type NetTransport struct {
	httpClient *http.Client
}

type NetTransportOption func(*NetTransport)

func NewNetTransport(opts ...NetTransportOption) *NetTransport {
	t := &NetTransport{
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithHTTPClient sends requests through hc instead of a zero http.Client
func WithHTTPClient(hc *http.Client) NetTransportOption {
	return func(t *NetTransport) {
		t.httpClient = hc
	}
}

func (t *NetTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	target := req.BuildURL()
	if err := ValidateURL(target); err != nil {
		return nil, err
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, err
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	start := time.Now()
	httpResp, err := t.httpClient.Do(httpReq)
	duration := time.Since(start)

	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    flattenHeaders(httpResp.Header),
		Body:       respBody,
		Duration:   duration,
	}
	return resp, checkStatus(resp)
}

func flattenHeaders(h http.Header) map[string]string {
	headers := make(map[string]string, len(h))
	for k := range h {
		headers[k] = h.Get(k)
	}
	return headers
}

// ValidateURL checks that a URL is well-formed and uses an allowed scheme
func ValidateURL(rawURL string) error {
	u, err := neturl.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %s (only http and https are allowed)", u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("URL must have a host")
	}

	return nil
}
