// Where: internal/lint/conventions.go
// What: Convention pass over view XML.
// Why: Flag deprecated syntax and structural anti-patterns with per-line
//      findings and concrete replacement suggestions.
package lint

import (
	"fmt"
	"strings"
)

// requiredViewFields must be present in every ir.ui.view record.
var requiredViewFields = []string{"name", "model", "arch"}

// ConventionPass scans a parsed document for deprecated tokens and structural
// problems. The raw file content feeds the unescaped-ampersand check.
func ConventionPass(file string, doc *Document, raw []byte) []Finding {
	var findings []Finding
	add := func(line int, severity Severity, message, suggestion string) {
		findings = append(findings, Finding{
			File:       file,
			Line:       line,
			Severity:   severity,
			Message:    message,
			Suggestion: suggestion,
		})
	}

	for _, line := range unescapedAmpersandLines(raw) {
		add(line, SeverityError, "Unescaped '&' found. Use '&amp;' instead.", "")
	}

	for _, element := range doc.FindAll("tree") {
		add(element.Line, SeverityError,
			"Deprecated '<tree>' element found. Use '<list>' instead for modern Odoo versions.", "")
	}

	doc.Root.Iter(func(element *Element) {
		if attrs, ok := element.Attr("attrs"); ok {
			add(element.Line, SeverityError,
				fmt.Sprintf("Deprecated 'attrs' attribute found in <%s>. Since Odoo 17+, use direct attributes instead.", element.Tag),
				attrsReplacementSuggestion(attrs))
		}
		if states, ok := element.Attr("states"); ok {
			add(element.Line, SeverityError,
				fmt.Sprintf("Deprecated 'states' attribute found in <%s>. Since Odoo 17+, use direct attributes like 'readonly', 'invisible', etc. instead of states=%q.", element.Tag, states),
				"")
		}
	})

	for _, record := range viewRecords(doc) {
		recordID, hasID := record.Attr("id")
		if !hasID {
			add(record.Line, SeverityError, "View record missing required 'id' attribute", "")
		}
		for _, fieldName := range requiredViewFields {
			if record.ChildByTagAttr("field", "name", fieldName) == nil {
				add(record.Line, SeverityError,
					fmt.Sprintf("View record '%s' missing required field '%s'", recordID, fieldName), "")
			}
		}
	}

	doc.Root.Iter(func(element *Element) {
		if !isViewRoot(element.Tag) || element.Tag == "search" {
			return
		}
		if _, ok := element.Attr("string"); !ok {
			add(element.Line, SeverityWarning,
				fmt.Sprintf("<%s> element should have a 'string' attribute for better UX", element.Tag), "")
		}
	})

	for _, field := range doc.FindAll("field") {
		if _, ok := field.Attr("name"); !ok {
			add(field.Line, SeverityError, "<field> element missing required 'name' attribute", "")
		}
	}

	return findings
}

func isViewRoot(tag string) bool {
	for _, viewTag := range viewTags {
		if tag == viewTag {
			return true
		}
	}
	return false
}

// attrsReplacementSuggestion synthesizes a modern-syntax replacement hint for
// a deprecated attrs payload.
func attrsReplacementSuggestion(attrsValue string) string {
	var suggestions []string

	appendFor := func(key string) {
		if !strings.Contains(attrsValue, key) {
			return
		}
		switch {
		case strings.Contains(attrsValue, "'"+key+"': 1") || strings.Contains(attrsValue, "'"+key+"': True"):
			suggestions = append(suggestions, key+`="True"`)
		case strings.Contains(attrsValue, "'"+key+"': 0") || strings.Contains(attrsValue, "'"+key+"': False"):
			suggestions = append(suggestions, key+`="False"`)
		case strings.Contains(attrsValue, "[("):
			switch {
			case key == "readonly" && strings.Contains(attrsValue, "state") && strings.Contains(attrsValue, "!="):
				suggestions = append(suggestions, `readonly="state != 'draft'"`)
			case strings.Contains(attrsValue, "state") && strings.Contains(attrsValue, "="):
				suggestions = append(suggestions, key+`="state == 'value'"`)
			default:
				suggestions = append(suggestions, key+`="condition"`)
			}
		}
	}

	appendFor("invisible")
	appendFor("readonly")
	appendFor("required")

	if len(suggestions) > 0 {
		if strings.Contains(attrsValue, "|") {
			suggestions = append(suggestions, "(Note: Use 'or' for '|' operators)")
		}
		if strings.Contains(attrsValue, "&") {
			suggestions = append(suggestions, "(Note: Use 'and' for '&' operators)")
		}
		return strings.Join(suggestions, " ")
	}

	return "Use direct attributes (invisible, readonly, required, column_invisible)"
}
