package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/hitclient/packages/http"
)

// JSONResult is the machine readable form of a request result
type JSONResult struct {
	Kind       string            `json:"kind"` // envelope, payload or failure
	StatusCode int               `json:"statusCode,omitempty"`
	Status     string            `json:"status,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Duration   float64           `json:"duration,omitempty"`
	Format     string            `json:"format,omitempty"`
	Body       any               `json:"body,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	writer io.Writer
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatResult(result http.Result) error {
	var out JSONResult
	switch r := result.(type) {
	case *http.Envelope:
		out = JSONResult{
			Kind:       "envelope",
			StatusCode: r.StatusCode,
			Status:     r.Status,
			Headers:    r.Headers,
			Duration:   float64(r.DurationMs()),
			Format:     string(r.Body.Format),
			Body:       r.Body.Value,
		}
	case *http.Payload:
		out = JSONResult{
			Kind:   "payload",
			Format: string(r.Body.Format),
			Body:   r.Body.Value,
		}
	case *http.Failure:
		out = JSONResult{
			Kind:  "failure",
			Error: r.Error(),
		}
	default:
		return fmt.Errorf("unsupported result type %T", result)
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
