// Where: internal/lint/xmldoc.go
// What: Line-aware XML document model for lint passes.
// Why: Findings must carry the source line of the offending element; the
//      stock decoder exposes byte offsets, so lines are tracked alongside.
package lint

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Element is one node of the parsed document with its start-tag line.
type Element struct {
	Tag      string
	Attrs    []Attr
	Line     int
	Text     string
	Parent   *Element
	Children []*Element
}

// Attr is an element attribute in document order.
type Attr struct {
	Name  string
	Value string
}

// Document is a parsed XML file.
type Document struct {
	Root *Element
}

// ParseDocument builds the element tree from raw XML, recording the line of
// every start tag.
func ParseDocument(data []byte) (*Document, error) {
	lineIndex := buildLineIndex(data)
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = true

	var root *Element
	var current *Element
	for {
		offset := decoder.InputOffset()
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			element := &Element{
				Tag:    tok.Name.Local,
				Line:   lineAt(lineIndex, offset),
				Parent: current,
			}
			for _, attr := range tok.Attr {
				element.Attrs = append(element.Attrs, Attr{Name: attr.Name.Local, Value: attr.Value})
			}
			if current != nil {
				current.Children = append(current.Children, element)
			} else if root == nil {
				root = element
			}
			current = element
		case xml.EndElement:
			if current != nil {
				current = current.Parent
			}
		case xml.CharData:
			if current != nil {
				current.Text += string(tok)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	return &Document{Root: root}, nil
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// AttrValue returns the named attribute or the empty string.
func (e *Element) AttrValue(name string) string {
	value, _ := e.Attr(name)
	return value
}

// Iter visits the element and all descendants depth-first.
func (e *Element) Iter(visit func(*Element)) {
	visit(e)
	for _, child := range e.Children {
		child.Iter(visit)
	}
}

// FindAll returns the element and descendants matching tag ("*" matches any).
func (e *Element) FindAll(tag string) []*Element {
	var matches []*Element
	e.Iter(func(el *Element) {
		if tag == "*" || el.Tag == tag {
			matches = append(matches, el)
		}
	})
	return matches
}

// ChildByTagAttr returns the first descendant with the given tag carrying
// attribute name=value.
func (e *Element) ChildByTagAttr(tag, name, value string) *Element {
	for _, match := range e.FindAll(tag) {
		if match == e {
			continue
		}
		if match.AttrValue(name) == value {
			return match
		}
	}
	return nil
}

// FindAll is a convenience over the document root.
func (d *Document) FindAll(tag string) []*Element {
	if d.Root == nil {
		return nil
	}
	return d.Root.FindAll(tag)
}

// syntaxLine extracts the line number from a decoder syntax error.
func syntaxLine(err error) int {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Line
	}
	return 0
}

// buildLineIndex records the byte offset of every newline.
func buildLineIndex(data []byte) []int64 {
	var index []int64
	for i, b := range data {
		if b == '\n' {
			index = append(index, int64(i))
		}
	}
	return index
}

// lineAt converts a byte offset to a 1-based line number.
func lineAt(index []int64, offset int64) int {
	return sort.Search(len(index), func(i int) bool { return index[i] >= offset }) + 1
}

// unescapedAmpersandLines reports 1-based lines containing a bare '&' that
// does not start a character entity.
func unescapedAmpersandLines(data []byte) []int {
	var lines []int
	for i, line := range strings.Split(string(data), "\n") {
		if hasBareAmpersand(line) {
			lines = append(lines, i+1)
		}
	}
	return lines
}

var knownEntities = []string{"&amp;", "&lt;", "&gt;", "&quot;", "&apos;", "&#"}

func hasBareAmpersand(line string) bool {
	for pos := 0; pos < len(line); pos++ {
		if line[pos] != '&' {
			continue
		}
		rest := line[pos:]
		escaped := false
		for _, entity := range knownEntities {
			if strings.HasPrefix(rest, entity) {
				escaped = true
				break
			}
		}
		if !escaped {
			return true
		}
	}
	return false
}
