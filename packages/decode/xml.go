package decode

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	errTextOutside = errors.New("xml: text data outside of root element")
	errUnclosed    = errors.New("xml: unexpected EOF inside element")

	cdataPrefix     = []byte("<![CDATA[")
	instAttrPattern = regexp.MustCompile(`([^\s=]+)\s*=\s*(?:"([^"]*)"|'([^']*)')`)
)

// XML decodes a well-formed document into a generic element tree.
//
// The root value is a map with an optional "declaration" key and an
// "elements" list holding the top-level nodes. Elements are maps of the form
//
//	{"type": "element", "name": "a", "attributes": {...}, "elements": [...]}
//
// where "attributes" is present only when the element has any and
// "elements" is always present, empty for empty elements. Text nodes are
// {"type": "text", "text": "..."} and CDATA sections are
// {"type": "cdata", "cdata": "..."}. Comments are dropped, as is whitespace
// between elements. Several top-level elements are accepted, and input
// without any nodes (empty or whitespace only) decodes to an empty map.
type XML struct{}

func (XML) Format() Format { return FormatXML }

func (XML) Decode(data []byte) (any, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	d.Strict = true
	// the body is already in memory, declared charsets are taken at face value
	d.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) { return r, nil }

	b := &treeBuilder{doc: map[string]any{}}
	for {
		start := d.InputOffset()
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		// CDATA sections come back as their own CharData token
		if cd, ok := tok.(xml.CharData); ok && bytes.HasPrefix(data[start:d.InputOffset()], cdataPrefix) {
			err = b.addCDATA(string(cd))
		} else {
			err = b.add(tok)
		}
		if err != nil {
			return nil, err
		}
	}
	return b.finish()
}

type xmlFrame struct {
	name     string
	node     map[string]any
	children []any
}

type treeBuilder struct {
	doc   map[string]any
	top   []any
	stack []*xmlFrame
}

func (b *treeBuilder) add(tok xml.Token) error {
	switch t := tok.(type) {
	case xml.StartElement:
		name := qualifiedName(t.Name)
		node := map[string]any{"type": "element", "name": name}
		if len(t.Attr) > 0 {
			attrs := make(map[string]any, len(t.Attr))
			for _, a := range t.Attr {
				attrs[qualifiedName(a.Name)] = a.Value
			}
			node["attributes"] = attrs
		}
		b.stack = append(b.stack, &xmlFrame{name: name, node: node, children: []any{}})

	case xml.EndElement:
		name := qualifiedName(t.Name)
		if len(b.stack) == 0 {
			return fmt.Errorf("xml: unexpected end element </%s>", name)
		}
		f := b.stack[len(b.stack)-1]
		if f.name != name {
			return fmt.Errorf("xml: element <%s> closed by </%s>", f.name, name)
		}
		b.stack = b.stack[:len(b.stack)-1]
		f.node["elements"] = f.children
		b.addNode(f.node)

	case xml.CharData:
		text := string(t)
		if strings.TrimSpace(text) == "" {
			return nil
		}
		if len(b.stack) == 0 {
			return errTextOutside
		}
		b.addNode(map[string]any{"type": "text", "text": text})

	case xml.ProcInst:
		if t.Target == "xml" {
			b.doc["declaration"] = map[string]any{"attributes": parseInstAttrs(string(t.Inst))}
			return nil
		}
		b.addNode(map[string]any{
			"type":        "instruction",
			"name":        t.Target,
			"instruction": strings.TrimSpace(string(t.Inst)),
		})

	case xml.Directive:
		dir := strings.TrimSpace(string(t))
		if rest, ok := strings.CutPrefix(dir, "DOCTYPE"); ok {
			b.addNode(map[string]any{"type": "doctype", "doctype": strings.TrimSpace(rest)})
		}

	case xml.Comment:
	}
	return nil
}

func (b *treeBuilder) addNode(node map[string]any) {
	if len(b.stack) == 0 {
		b.top = append(b.top, node)
		return
	}
	f := b.stack[len(b.stack)-1]
	f.children = append(f.children, node)
}

func (b *treeBuilder) addCDATA(text string) error {
	if len(b.stack) == 0 {
		return errTextOutside
	}
	b.addNode(map[string]any{"type": "cdata", "cdata": text})
	return nil
}

func (b *treeBuilder) finish() (any, error) {
	if len(b.stack) > 0 {
		return nil, errUnclosed
	}
	if len(b.top) > 0 {
		b.doc["elements"] = b.top
	}
	return b.doc, nil
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func parseInstAttrs(inst string) map[string]any {
	attrs := map[string]any{}
	for _, m := range instAttrPattern.FindAllStringSubmatch(inst, -1) {
		if m[2] != "" || strings.Contains(m[0], `"`) {
			attrs[m[1]] = m[2]
		} else {
			attrs[m[1]] = m[3]
		}
	}
	return attrs
}
