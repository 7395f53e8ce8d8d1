package http

import (
	"github.com/abdul-hamid-achik/hitclient/packages/decode"
)

// Result is the outcome of Client.Request: *Envelope, *Payload or *Failure.
type Result interface {
	isResult()
}

// Envelope is a copy of the transport response whose Body has been
// decoded. The raw bytes remain available as Response.Body.
type Envelope struct {
	Response
	Body decode.Result
}

// Payload is the decoded body alone, returned by only-payload clients.
type Payload struct {
	Body decode.Result
}

// Failure reports a request that produced no response: invalid input,
// network errors and the like.
type Failure struct {
	Err error
}

func (*Envelope) isResult() {}
func (*Payload) isResult() {}
func (*Failure) isResult() {}

func (f *Failure) Error() string {
	if f.Err == nil {
		return "request failed"
	}
	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// BodyOf returns the decoded body of an Envelope or Payload.
func BodyOf(r Result) (decode.Result, bool) {
	switch v := r.(type) {
	case *Envelope:
		return v.Body, true
	case *Payload:
		return v.Body, true
	}
	return decode.Result{}, false
}
