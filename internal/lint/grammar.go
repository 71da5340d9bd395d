// Where: internal/lint/grammar.go
// What: Grammar pass against upstream RELAX NG view schemas.
// Why: Derive allowed element/attribute sets from the published grammar and
//      flag anything outside them, with line numbers.
package lint

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/beevik/etree"
)

// schemaCommit pins the upstream Odoo revision the schemas are fetched from.
const schemaCommit = "ba15d2f79b5762b280a7a74d7e4cb202543e2898"

const schemaBaseURL = "https://raw.githubusercontent.com/odoo/odoo/" + schemaCommit + "/odoo/addons/base/rng/"

// schemaFiles maps view types to their RELAX NG schema files. View types
// without an upstream schema (form, kanban) are convention-checked only.
var schemaFiles = map[string]string{
	"common":   "common.rng",
	"list":     "list_view.rng",
	"search":   "search_view.rng",
	"graph":    "graph_view.rng",
	"pivot":    "pivot_view.rng",
	"calendar": "calendar_view.rng",
	"activity": "activity_view.rng",
}

// dynamicAttrPrefixes are attribute families the schemas express with name
// classes rather than literal names.
var dynamicAttrPrefixes = []string{"t-", "data-", "decoration-"}

// Fetcher retrieves a schema document by URL.
type Fetcher func(url string) ([]byte, error)

// GrammarValidator downloads view grammars and validates documents against
// them. Schemas are cached for the lifetime of the validator only; no state
// survives the invocation.
type GrammarValidator struct {
	fetch    Fetcher
	grammars map[string]*grammar
}

// NewGrammarValidator builds a validator using an HTTP fetcher with a fixed
// timeout. The grammar fetch is the only network touch in the tool.
func NewGrammarValidator() *GrammarValidator {
	client := &http.Client{Timeout: 10 * time.Second}
	return NewGrammarValidatorWithFetcher(func(url string) ([]byte, error) {
		resp, err := client.Get(url)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
		}
		return io.ReadAll(resp.Body)
	})
}

// NewGrammarValidatorWithFetcher builds a validator with a custom fetcher.
func NewGrammarValidatorWithFetcher(fetch Fetcher) *GrammarValidator {
	return &GrammarValidator{
		fetch:    fetch,
		grammars: map[string]*grammar{},
	}
}

// Supports reports whether a grammar exists for the view type.
func (v *GrammarValidator) Supports(viewType string) bool {
	_, ok := schemaFiles[viewType]
	return ok && viewType != "common"
}

// Validate runs the grammar pass for one document. A fetch failure is
// returned as an error so the caller can skip the pass without failing the
// run.
func (v *GrammarValidator) Validate(file string, doc *Document, viewType string) ([]Finding, error) {
	if !v.Supports(viewType) {
		return nil, nil
	}

	gram, err := v.load(viewType)
	if err != nil {
		return nil, err
	}

	var findings []Finding
	for _, viewRoot := range archViewElements(doc, viewType) {
		viewRoot.Iter(func(element *Element) {
			if !gram.allowsElement(element.Tag) {
				findings = append(findings, Finding{
					File:     file,
					Line:     element.Line,
					Severity: SeverityError,
					Message:  fmt.Sprintf("Element <%s> is not allowed by the %s view grammar", element.Tag, viewType),
				})
				return
			}
			for _, attr := range element.Attrs {
				if !gram.allowsAttribute(attr.Name) {
					findings = append(findings, Finding{
						File:     file,
						Line:     element.Line,
						Severity: SeverityError,
						Message:  fmt.Sprintf("Attribute %q on <%s> is not allowed by the %s view grammar", attr.Name, element.Tag, viewType),
					})
				}
			}
		})
	}
	return findings, nil
}

// load returns the merged grammar (common + view type), fetching on first use.
func (v *GrammarValidator) load(viewType string) (*grammar, error) {
	if cached, ok := v.grammars[viewType]; ok {
		return cached, nil
	}

	merged := newGrammar()
	for _, name := range []string{"common", viewType} {
		payload, err := v.fetch(schemaBaseURL + schemaFiles[name])
		if err != nil {
			return nil, fmt.Errorf("download %s schema: %w", name, err)
		}
		parsed, err := parseGrammar(payload)
		if err != nil {
			return nil, fmt.Errorf("parse %s schema: %w", name, err)
		}
		merged.merge(parsed)
	}

	v.grammars[viewType] = merged
	return merged, nil
}

// grammar is the element/attribute name universe extracted from a schema.
type grammar struct {
	elements     map[string]bool
	attributes   map[string]bool
	anyElement   bool
	anyAttribute bool
}

func newGrammar() *grammar {
	return &grammar{elements: map[string]bool{}, attributes: map[string]bool{}}
}

func (g *grammar) allowsElement(tag string) bool {
	return g.anyElement || g.elements[tag]
}

func (g *grammar) allowsAttribute(name string) bool {
	if g.anyAttribute || g.attributes[name] {
		return true
	}
	for _, prefix := range dynamicAttrPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (g *grammar) merge(other *grammar) {
	for name := range other.elements {
		g.elements[name] = true
	}
	for name := range other.attributes {
		g.attributes[name] = true
	}
	g.anyElement = g.anyElement || other.anyElement
	g.anyAttribute = g.anyAttribute || other.anyAttribute
}

// parseGrammar extracts named element and attribute declarations from a
// RELAX NG document. Name classes (anyName) make the corresponding check
// permissive rather than attempting full content-model validation.
func parseGrammar(data []byte) (*grammar, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	gram := newGrammar()
	for _, decl := range doc.FindElements("//element") {
		name, any := declaredName(decl)
		if any {
			gram.anyElement = true
			continue
		}
		if name != "" {
			gram.elements[name] = true
		}
	}
	for _, decl := range doc.FindElements("//attribute") {
		name, any := declaredName(decl)
		if any {
			gram.anyAttribute = true
			continue
		}
		if name != "" {
			gram.attributes[name] = true
		}
	}
	return gram, nil
}

// declaredName resolves the name of an element/attribute declaration from its
// name attribute or nested name class.
func declaredName(decl *etree.Element) (name string, anyName bool) {
	if value := decl.SelectAttrValue("name", ""); value != "" {
		return value, false
	}
	for _, child := range decl.ChildElements() {
		switch child.Tag {
		case "name":
			return strings.TrimSpace(child.Text()), false
		case "anyName":
			return "", true
		case "choice":
			for _, option := range child.ChildElements() {
				if option.Tag == "name" {
					gramName := strings.TrimSpace(option.Text())
					if gramName != "" {
						return gramName, false
					}
				}
				if option.Tag == "anyName" {
					return "", true
				}
			}
		}
	}
	return "", false
}
