// Package http provides a preconfigured HTTP client.
//
// A Client carries a base URL, base headers and an only-payload flag. Each
// call to Request:
//   - merges per-call headers over the base headers
//   - encodes the body as JSON or form data for POST, PATCH, PUT and DELETE
//   - sends the request through a pluggable Transport
//   - decodes the response body as JSON, XML or raw text
//
// Request never returns a Go error. The result is one of *Envelope,
// *Payload or *Failure and callers switch on its type.
package http
