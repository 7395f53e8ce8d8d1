package decode

// Format names the decoder that produced a Result.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatRaw  Format = "raw"
)

// Decoder parses a body into a generic value.
type Decoder interface {
	Format() Format
	Decode(data []byte) (any, error)
}

// Result is a decoded body together with the format that decoded it.
type Result struct {
	Format Format
	Value  any
}

// IsRaw reports whether no decoder accepted the body.
func (r Result) IsRaw() bool {
	return r.Format == FormatRaw
}

// Chain is an ordered list of decoders.
type Chain []Decoder

// DefaultChain tries JSON first, then XML.
func DefaultChain() Chain {
	return Chain{JSON{}, XML{}}
}

// Decode runs the decoders in order. It never fails: input no decoder
// accepts comes back as a raw string.
func (c Chain) Decode(data []byte) Result {
	for _, d := range c {
		v, err := d.Decode(data)
		if err == nil {
			return Result{Format: d.Format(), Value: v}
		}
	}
	return Result{Format: FormatRaw, Value: string(data)}
}

// Parse decodes s with the default chain.
func Parse(s string) Result {
	return DefaultChain().Decode([]byte(s))
}
