// Where: internal/xmledit/inherit.go
// What: Locate inherited-view records inside a module's view files.
// Why: The extend flow appends xpath fragments to an existing inherited view
//      when one is already present instead of creating a duplicate record.
package xmledit

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/beevik/etree"
)

// InheritedView points at the arch field of a view record inheriting viewID.
type InheritedView struct {
	Path string
	Doc  *etree.Document
	Arch *etree.Element
}

// FindInheritedView scans *.xml files in viewsDir for a record on ir.ui.view
// whose inherit_id references viewID. Returns false when no file matches.
// Unparseable files are skipped; a view directory often holds hand-edited
// documents in intermediate states.
func FindInheritedView(viewsDir, viewID string) (InheritedView, bool) {
	entries, err := filepath.Glob(filepath.Join(viewsDir, "*.xml"))
	if err != nil {
		return InheritedView{}, false
	}
	sort.Strings(entries)

	for _, path := range entries {
		payload, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(payload); err != nil {
			continue
		}
		for _, record := range doc.FindElements("//record[@model='ir.ui.view']") {
			inherit := record.FindElement("field[@name='inherit_id']")
			if inherit == nil || inherit.SelectAttrValue("ref", "") != viewID {
				continue
			}
			arch := record.FindElement("field[@name='arch']")
			if arch == nil {
				continue
			}
			return InheritedView{Path: path, Doc: doc, Arch: arch}, true
		}
	}
	return InheritedView{}, false
}

// AppendToArch parses the fragment and appends it as the last child of the
// arch field, then writes the document back to its file.
func (v InheritedView) AppendToArch(fragment string) error {
	element, err := ParseFragment(fragment)
	if err != nil {
		return err
	}
	v.Arch.AddChild(element)
	v.Doc.Indent(4)
	return v.Doc.WriteToFile(v.Path)
}
