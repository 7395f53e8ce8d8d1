package decode

import (
	"errors"

	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid json")

// JSON decodes any valid JSON document, scalars included.
type JSON struct{}

func (JSON) Format() Format { return FormatJSON }

func (JSON) Decode(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidJSON
	}
	return gjson.ParseBytes(data).Value(), nil
}
