package http

import (
	"context"

	"github.com/go-resty/resty/v2"
)

// RestyTransport sends requests with a resty client.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport wraps client, or a new resty client when client is nil.
func NewRestyTransport(client *resty.Client) *RestyTransport {
	if client == nil {
		client = resty.New()
	}
	return &RestyTransport{client: client}
}

func (t *RestyTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	target := req.BuildURL()
	if err := ValidateURL(target); err != nil {
		return nil, err
	}

	r := t.client.R().
		SetContext(ctx).
		SetHeaders(req.Headers)
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	restyResp, err := r.Execute(req.Method, target)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		StatusCode: restyResp.StatusCode(),
		Status:     restyResp.Status(),
		Headers:    flattenHeaders(restyResp.Header()),
		Body:       restyResp.Body(),
		Duration:   restyResp.Time(),
	}
	return resp, checkStatus(resp)
}
