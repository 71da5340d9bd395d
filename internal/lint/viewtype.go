// Where: internal/lint/viewtype.go
// What: View type detection from parsed XML.
// Why: The grammar pass picks its schema from the view type of the document.
package lint

// viewTags are the recognized view root elements. "tree" is the legacy
// spelling of "list" and is normalized on detection.
var viewTags = []string{"list", "tree", "form", "search", "kanban", "graph", "pivot", "calendar", "activity"}

// DetectViewType returns the view type of the document, preferring view roots
// found inside ir.ui.view arch fields over loose elements. Returns "" when
// the document holds no view.
func DetectViewType(doc *Document) string {
	for _, record := range viewRecords(doc) {
		arch := record.ChildByTagAttr("field", "name", "arch")
		if arch == nil {
			continue
		}
		for _, tag := range viewTags {
			if len(arch.FindAll(tag)) > 0 {
				return normalizeViewType(tag)
			}
		}
	}

	for _, tag := range viewTags {
		if len(doc.FindAll(tag)) > 0 {
			return normalizeViewType(tag)
		}
	}
	return ""
}

// viewRecords returns every record element declared on model ir.ui.view.
func viewRecords(doc *Document) []*Element {
	var records []*Element
	for _, record := range doc.FindAll("record") {
		if record.AttrValue("model") == "ir.ui.view" {
			records = append(records, record)
		}
	}
	return records
}

// archViewElements returns the view-type roots to validate, both inside
// arch fields and standing free in the document.
func archViewElements(doc *Document, viewType string) []*Element {
	tags := []string{viewType}
	if viewType == "list" {
		tags = append(tags, "tree")
	}

	seen := map[*Element]bool{}
	var elements []*Element
	collect := func(el *Element) {
		if !seen[el] {
			seen[el] = true
			elements = append(elements, el)
		}
	}

	for _, record := range viewRecords(doc) {
		arch := record.ChildByTagAttr("field", "name", "arch")
		if arch == nil {
			continue
		}
		for _, tag := range tags {
			for _, el := range arch.FindAll(tag) {
				collect(el)
			}
		}
	}
	for _, tag := range tags {
		for _, el := range doc.FindAll(tag) {
			collect(el)
		}
	}
	return elements
}

func normalizeViewType(tag string) string {
	if tag == "tree" {
		return "list"
	}
	return tag
}
