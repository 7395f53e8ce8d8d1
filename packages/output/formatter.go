package output

import (
	"encoding/json"

	"github.com/abdul-hamid-achik/hitclient/packages/decode"
	"github.com/abdul-hamid-achik/hitclient/packages/http"
)

// Formatter writes a single request result.
type Formatter interface {
	FormatResult(result http.Result) error
}

// formatBody renders a decoded body: raw bodies verbatim, decoded documents
// as indented JSON.
func formatBody(body decode.Result) string {
	if body.IsRaw() {
		s, _ := body.Value.(string)
		return s
	}
	data, err := json.MarshalIndent(body.Value, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
