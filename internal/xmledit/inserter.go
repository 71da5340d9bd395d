// Where: internal/xmledit/inserter.go
// What: Anchored XML fragment insertion.
// Why: View extension needs positional edits relative to an XPath anchor.
package xmledit

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// Position selects where a fragment lands relative to its anchor.
type Position string

const (
	Before  Position = "before"
	After   Position = "after"
	Inside  Position = "inside"
	Replace Position = "replace"
)

var (
	// ErrAnchorNotFound is returned when the anchor path matches no element.
	ErrAnchorNotFound = errors.New("anchor not found")
	// ErrAmbiguousAnchor is returned when the anchor path matches more than
	// one element. Erroring beats guessing: a first-match policy would make
	// insert/remove round-trips depend on document order.
	ErrAmbiguousAnchor = errors.New("anchor is ambiguous")
	// ErrInvalidPosition is returned for an unknown position keyword.
	ErrInvalidPosition = errors.New("invalid position")
)

// ParsePosition validates a position keyword.
func ParsePosition(value string) (Position, error) {
	switch Position(value) {
	case Before, After, Inside, Replace:
		return Position(value), nil
	}
	return "", fmt.Errorf("%w: %q (want before, after, inside, or replace)", ErrInvalidPosition, value)
}

// ParseFragment parses an XML fragment into a detached element.
func ParseFragment(fragment string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(fragment); err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("parse fragment: empty document")
	}
	return root.Copy(), nil
}

// Insert places fragment at the given position relative to the single element
// matched by anchorPath. The document is modified in place; the caller
// persists it.
func Insert(doc *etree.Document, anchorPath string, fragment *etree.Element, position Position) error {
	anchor, err := findOne(doc, anchorPath)
	if err != nil {
		return err
	}

	switch position {
	case Inside:
		anchor.AddChild(fragment)
		return nil
	case Before, After, Replace:
		parent := anchor.Parent()
		if parent == nil {
			return fmt.Errorf("%w: cannot insert %s the document root", ErrInvalidPosition, position)
		}
		index := anchor.Index()
		switch position {
		case Before:
			parent.InsertChildAt(index, fragment)
		case After:
			parent.InsertChildAt(index+1, fragment)
		case Replace:
			parent.InsertChildAt(index, fragment)
			parent.RemoveChild(anchor)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidPosition, position)
}

// Remove deletes the single element matched by path from the document.
func Remove(doc *etree.Document, path string) error {
	target, err := findOne(doc, path)
	if err != nil {
		return err
	}
	parent := target.Parent()
	if parent == nil {
		return fmt.Errorf("%w: cannot remove the document root", ErrInvalidPosition)
	}
	parent.RemoveChild(target)
	return nil
}

// findOne resolves path to exactly one element.
func findOne(doc *etree.Document, path string) (*etree.Element, error) {
	compiled, err := etree.CompilePath(path)
	if err != nil {
		return nil, fmt.Errorf("compile anchor path %q: %w", path, err)
	}
	matches := doc.FindElementsPath(compiled)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrAnchorNotFound, path)
	case 1:
		return matches[0], nil
	}
	return nil, fmt.Errorf("%w: %s matches %d elements", ErrAmbiguousAnchor, path, len(matches))
}
