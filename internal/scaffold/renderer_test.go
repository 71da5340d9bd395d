package scaffold

import (
	"strings"
	"testing"
)

func TestResolvePrefersVariant(t *testing.T) {
	name, err := Resolve("model", "transient_model.py", "model.py")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if name != "model/transient_model.py.tmpl" {
		t.Fatalf("Resolve = %q, want model/transient_model.py.tmpl", name)
	}
}

func TestResolveFallsBack(t *testing.T) {
	name, err := Resolve("view", "nonexistent_view.xml", "views.xml")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if name != "view/views.xml.tmpl" {
		t.Fatalf("Resolve = %q, want view/views.xml.tmpl", name)
	}
}

func TestResolveUnknownTemplate(t *testing.T) {
	if _, err := Resolve("view", "bogus", ""); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestRenderMenuItem(t *testing.T) {
	content, err := Render("menu/menuitem.xml.tmpl", MenuContext("My Custom Menu", "mod.action_x", "base.menu_administration"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{
		`id="my_custom_menu"`,
		`name="My Custom Menu"`,
		`parent="base.menu_administration"`,
		`action="mod.action_x"`,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered menu missing %q:\n%s", want, content)
		}
	}
}

func TestRenderMenuItemWithoutParent(t *testing.T) {
	content, err := Render("menu/menuitem.xml.tmpl", MenuContext("Top Menu", "mod.action_x", ""))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(content, "parent=") {
		t.Errorf("top-level menu should have no parent attribute:\n%s", content)
	}
}

func TestRenderMissingKeyFails(t *testing.T) {
	_, err := Render("menu/menuitem.xml.tmpl", map[string]any{"menu_name": "x"})
	if err == nil {
		t.Fatal("expected error for incomplete context")
	}
}

func TestRenderDeterministic(t *testing.T) {
	context := ActionContext("sale.order", "list,form", "")
	first, err := Render("action/window_action.xml.tmpl", context)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := Render("action/window_action.xml.tmpl", context)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if first != second {
		t.Fatal("same context rendered differently")
	}
	if !strings.Contains(first, `id="sale_order_action"`) {
		t.Errorf("action record missing id:\n%s", first)
	}
	if strings.Contains(first, "<field name=\"target\">") {
		t.Errorf("regular action should have no target field:\n%s", first)
	}
}
