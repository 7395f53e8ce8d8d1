package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/hitclient/packages/decode"
	"github.com/abdul-hamid-achik/hitclient/packages/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEnvelope() *http.Envelope {
	return &http.Envelope{
		Response: http.Response{
			StatusCode: 404,
			Status:     "404 Not Found",
			Headers:    map[string]string{"X-B": "2", "Content-Type": "application/json"},
			Body:       []byte(`{"msg":"missing"}`),
			Duration:   12 * time.Millisecond,
		},
		Body: decode.Result{Format: decode.FormatJSON, Value: map[string]any{"msg": "missing"}},
	}
}

func TestConsoleFormatter_Envelope(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true), WithVerbose(true))

	require.NoError(t, f.FormatResult(sampleEnvelope()))

	out := buf.String()
	assert.Contains(t, out, "404 Not Found (12ms)")
	assert.Contains(t, out, "Content-Type: application/json\nX-B: 2\n")
	assert.Contains(t, out, "Body (json):")
	assert.Contains(t, out, `"msg": "missing"`)
}

func TestConsoleFormatter_HeadersOnlyWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	require.NoError(t, f.FormatResult(sampleEnvelope()))
	assert.NotContains(t, buf.String(), "X-B")
}

func TestConsoleFormatter_PayloadAndFailure(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	require.NoError(t, f.FormatResult(&http.Payload{Body: decode.Result{Format: decode.FormatRaw, Value: "plain text"}}))
	assert.Equal(t, "plain text\n", buf.String())

	buf.Reset()
	require.NoError(t, f.FormatResult(&http.Failure{Err: errors.New("connection refused")}))
	assert.Equal(t, "Error: connection refused\n", buf.String())
}

func TestJSONFormatter(t *testing.T) {
	tests := []struct {
		name   string
		result http.Result
		check  func(t *testing.T, out JSONResult)
	}{
		{
			name:   "envelope",
			result: sampleEnvelope(),
			check: func(t *testing.T, out JSONResult) {
				assert.Equal(t, "envelope", out.Kind)
				assert.Equal(t, 404, out.StatusCode)
				assert.Equal(t, "json", out.Format)
				assert.Equal(t, map[string]any{"msg": "missing"}, out.Body)
				assert.Equal(t, float64(12), out.Duration)
			},
		},
		{
			name:   "payload",
			result: &http.Payload{Body: decode.Result{Format: decode.FormatJSON, Value: []any{float64(1)}}},
			check: func(t *testing.T, out JSONResult) {
				assert.Equal(t, "payload", out.Kind)
				assert.Equal(t, []any{float64(1)}, out.Body)
			},
		},
		{
			name:   "failure",
			result: &http.Failure{Err: errors.New("boom")},
			check: func(t *testing.T, out JSONResult) {
				assert.Equal(t, "failure", out.Kind)
				assert.Equal(t, "boom", out.Error)
				assert.Nil(t, out.Body)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewJSONFormatter(JSONWithWriter(&buf)).FormatResult(tt.result))

			var out JSONResult
			require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
			tt.check(t, out)
		})
	}
}

func TestFormatBody(t *testing.T) {
	assert.Equal(t, "<<<", formatBody(decode.Result{Format: decode.FormatRaw, Value: "<<<"}))
	assert.Equal(t, "{\n  \"a\": 1\n}", formatBody(decode.Result{Format: decode.FormatJSON, Value: map[string]any{"a": float64(1)}}))
}
