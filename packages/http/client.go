package http

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/hitclient/packages/decode"
	"github.com/abdul-hamid-achik/hitclient/packages/log"
	"github.com/google/uuid"
)

// Client is immutable after NewClient returns and safe for concurrent use.
type Client struct {
	baseURL     string
	baseHeaders map[string]string
	onlyPayload bool
	transport   Transport
	logger      log.Logger
	decoders    decode.Chain
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseHeaders: make(map[string]string),
		decoders:    decode.DefaultChain(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		c.transport = NewNetTransport()
	}
	if c.logger == nil {
		c.logger = log.NewZerologAdapter(os.Stdout)
	}

	return c
}

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithBaseHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.baseHeaders[key] = value
	}
}

// WithBaseHeaders sets multiple headers sent with every request
func WithBaseHeaders(headers map[string]string) ClientOption {
	return func(c *Client) {
		for k, v := range headers {
			c.baseHeaders[k] = v
		}
	}
}

// WithOnlyPayload makes Request return only the decoded body
func WithOnlyPayload(only bool) ClientOption {
	return func(c *Client) {
		c.onlyPayload = only
	}
}

func WithTransport(t Transport) ClientOption {
	return func(c *Client) {
		c.transport = t
	}
}

func WithLogger(l log.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithDecoders replaces the response body decoders. They are tried in the
// given order before falling back to the raw body.
func WithDecoders(decoders ...decode.Decoder) ClientOption {
	return func(c *Client) {
		c.decoders = decode.Chain(decoders)
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// BaseHeaders returns a copy of the headers sent with every request
func (c *Client) BaseHeaders() map[string]string {
	out := make(map[string]string, len(c.baseHeaders))
	for k, v := range c.baseHeaders {
		out[k] = v
	}
	return out
}

func (c *Client) OnlyPayload() bool {
	return c.onlyPayload
}

// Request builds a request from opts, sends it and shapes the response.
//
// Responses with an error status are shaped like any other response. Every
// other failure, including a panic inside the transport, is returned as a
// *Failure.
func (c *Client) Request(ctx context.Context, opts RequestOptions) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = &Failure{Err: fmt.Errorf("request panicked: %v", r)}
		}
	}()

	req, err := c.buildRequest(opts)
	if err != nil {
		c.logger.Error("request failed", log.Err(err))
		return &Failure{Err: err}
	}

	fields := []log.Field{
		log.String("request_id", req.ID),
		log.String("method", req.Method),
		log.String("url", req.URL),
		log.Any("headers", req.Headers),
		log.Any("query", req.Query),
	}
	if req.Body != nil {
		fields = append(fields, log.String("body", string(req.Body)))
	}
	c.logger.Info("sending request", fields...)

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		var statusErr *StatusError
		if !errors.As(err, &statusErr) || statusErr.Response == nil {
			c.logger.Error("request failed", log.String("request_id", req.ID), log.Err(err))
			return &Failure{Err: err}
		}
		resp = statusErr.Response
	}

	c.logger.Info("received response",
		log.String("request_id", req.ID),
		log.Int("status", resp.StatusCode),
		log.Duration("duration", resp.Duration),
		log.String("body", resp.BodyString()),
	)

	return c.shape(resp)
}

func (c *Client) buildRequest(opts RequestOptions) (*Request, error) {
	method := strings.ToUpper(opts.Method)
	if method == "" {
		method = "GET"
	}

	query, err := queryValues(opts.Query)
	if err != nil {
		return nil, err
	}

	req := &Request{
		ID:      uuid.NewString(),
		Method:  method,
		URL:     c.baseURL + opts.Path,
		Headers: mergeHeaders(c.baseHeaders, opts.Headers),
		Query:   query,
	}

	if !CarriesBody(method) {
		return req, nil
	}

	if opts.IsFormData {
		req.Body, err = encodeFormBody(opts.Body)
		req.Form = true
		setContentType(req.Headers, ContentTypeForm)
	} else {
		req.Body, err = encodeJSONBody(opts.Body)
		setContentType(req.Headers, ContentTypeJSON)
	}
	if err != nil {
		return nil, err
	}

	return req, nil
}

func (c *Client) shape(resp *Response) Result {
	body := c.decoders.Decode(resp.Body)
	if c.onlyPayload {
		return &Payload{Body: body}
	}
	return &Envelope{Response: *resp, Body: body}
}
