// Where: internal/scaffold/naming.go
// What: Naming convention derivation for Odoo identifiers.
// Why: Templates need the same raw name in several casings; derive them once.
package scaffold

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// TechnicalName converts a dotted model name to its snake_case identifier.
// "sale.order" -> "sale_order", "SaleOrder" -> "sale_order".
func TechnicalName(name string) string {
	parts := splitName(name)
	for i, part := range parts {
		parts[i] = inflect.Underscore(part)
	}
	return strings.Join(parts, "_")
}

// ClassName converts a dotted model name to a Python class identifier.
// "sale.order" -> "SaleOrder".
func ClassName(name string) string {
	parts := splitName(name)
	for i, part := range parts {
		parts[i] = inflect.Camelize(part)
	}
	return strings.Join(parts, "")
}

// HumanLabel converts a dotted or snake name to a human-readable label.
// "sale.order" -> "Sale Order".
func HumanLabel(name string) string {
	replaced := strings.NewReplacer(".", " ", "_", " ").Replace(name)
	return titleCaser.String(strings.Join(strings.Fields(replaced), " "))
}

// MenuID converts a menu display name to an XML id.
// "My Custom Menu" -> "my_custom_menu".
func MenuID(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

func splitName(name string) []string {
	return strings.FieldsFunc(strings.TrimSpace(name), func(r rune) bool {
		return r == '.' || r == '_' || r == ' '
	})
}
