package xmledit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

const sampleForm = `<form><sheet><group><field name="name"/><field name="email"/></group></sheet></form>`

func parseDoc(t *testing.T, payload string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(payload); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func serialize(t *testing.T, doc *etree.Document) string {
	t.Helper()
	out, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	return out
}

func TestParsePosition(t *testing.T) {
	for _, valid := range []string{"before", "after", "inside", "replace"} {
		if _, err := ParsePosition(valid); err != nil {
			t.Errorf("ParsePosition(%q): %v", valid, err)
		}
	}
	if _, err := ParsePosition("above"); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("err = %v, want ErrInvalidPosition", err)
	}
}

func TestInsertPositions(t *testing.T) {
	anchor := "//field[@name='name']"

	cases := []struct {
		position Position
		check    func(t *testing.T, out string)
	}{
		{Before, func(t *testing.T, out string) {
			if strings.Index(out, `name="phone"`) > strings.Index(out, `name="name"`) {
				t.Errorf("fragment not before anchor:\n%s", out)
			}
		}},
		{After, func(t *testing.T, out string) {
			phone := strings.Index(out, `name="phone"`)
			name := strings.Index(out, `name="name"`)
			email := strings.Index(out, `name="email"`)
			if phone < name || phone > email {
				t.Errorf("fragment not between anchor and next sibling:\n%s", out)
			}
		}},
		{Inside, func(t *testing.T, out string) {
			if !strings.Contains(out, `<field name="name"><field name="phone"/></field>`) {
				t.Errorf("fragment not nested in anchor:\n%s", out)
			}
		}},
		{Replace, func(t *testing.T, out string) {
			if strings.Contains(out, `name="name"`) {
				t.Errorf("anchor survived replace:\n%s", out)
			}
			if !strings.Contains(out, `name="phone"`) {
				t.Errorf("fragment missing after replace:\n%s", out)
			}
		}},
	}

	for _, tc := range cases {
		doc := parseDoc(t, sampleForm)
		fragment, err := ParseFragment(`<field name="phone"/>`)
		if err != nil {
			t.Fatalf("ParseFragment: %v", err)
		}
		if err := Insert(doc, anchor, fragment, tc.position); err != nil {
			t.Fatalf("Insert %s: %v", tc.position, err)
		}
		tc.check(t, serialize(t, doc))
	}
}

func TestInsertAnchorNotFound(t *testing.T) {
	doc := parseDoc(t, sampleForm)
	fragment, _ := ParseFragment(`<field name="phone"/>`)
	err := Insert(doc, "//field[@name='missing']", fragment, After)
	if !errors.Is(err, ErrAnchorNotFound) {
		t.Fatalf("err = %v, want ErrAnchorNotFound", err)
	}
}

func TestInsertAmbiguousAnchor(t *testing.T) {
	doc := parseDoc(t, sampleForm)
	fragment, _ := ParseFragment(`<field name="phone"/>`)
	err := Insert(doc, "//field", fragment, After)
	if !errors.Is(err, ErrAmbiguousAnchor) {
		t.Fatalf("err = %v, want ErrAmbiguousAnchor", err)
	}
}

func TestInsertThenRemoveRoundTrip(t *testing.T) {
	doc := parseDoc(t, sampleForm)
	original := serialize(t, doc)

	fragment, err := ParseFragment(`<field name="phone"/>`)
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}
	if err := Insert(doc, "//field[@name='name']", fragment, After); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := Remove(doc, "//field[@name='phone']"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if got := serialize(t, doc); got != original {
		t.Fatalf("round trip changed document:\nbefore: %s\nafter:  %s", original, got)
	}
}

func TestFindInheritedView(t *testing.T) {
	viewsDir := t.TempDir()
	payload := `<odoo>
    <record id="partner_form_inherit" model="ir.ui.view">
        <field name="name">res.partner.inherit.test</field>
        <field name="model">res.partner</field>
        <field name="inherit_id" ref="base.view_partner_form"/>
        <field name="arch" type="xml">
            <xpath expr="//field[@name='vat']" position="after">
                <field name="x_code"/>
            </xpath>
        </field>
    </record>
</odoo>`
	path := filepath.Join(viewsDir, "partner_views.xml")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	view, found := FindInheritedView(viewsDir, "base.view_partner_form")
	if !found {
		t.Fatal("inherited view not found")
	}
	if view.Path != path {
		t.Fatalf("Path = %s, want %s", view.Path, path)
	}

	if err := view.AppendToArch(`<xpath expr="//field[@name='name']" position="after"><field name="x_extra"/></xpath>`); err != nil {
		t.Fatalf("AppendToArch: %v", err)
	}

	updated, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	content := string(updated)
	if !strings.Contains(content, "x_code") || !strings.Contains(content, "x_extra") {
		t.Fatalf("arch missing xpath entries:\n%s", content)
	}

	if _, found := FindInheritedView(viewsDir, "base.view_partner_tree"); found {
		t.Fatal("unexpected match for different view id")
	}
}
