package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hoangtrann/otk/internal/interaction"
)

// scriptPrompter replays canned answers for interactive flows.
type scriptPrompter struct {
	inputs   []string
	selects  []string
	confirms []bool
}

func (p *scriptPrompter) Input(string, []string) (string, error) {
	if len(p.inputs) == 0 {
		return "", nil
	}
	value := p.inputs[0]
	p.inputs = p.inputs[1:]
	return value, nil
}

func (p *scriptPrompter) Select(_ string, options []string) (string, error) {
	if len(p.selects) == 0 {
		if len(options) > 0 {
			return options[0], nil
		}
		return "", nil
	}
	value := p.selects[0]
	p.selects = p.selects[1:]
	return value, nil
}

func (p *scriptPrompter) SelectValue(_ string, options []interaction.SelectOption) (string, error) {
	if len(p.selects) == 0 {
		if len(options) > 0 {
			return options[0].Value, nil
		}
		return "", nil
	}
	value := p.selects[0]
	p.selects = p.selects[1:]
	return value, nil
}

func (p *scriptPrompter) Confirm(string, bool) (bool, error) {
	if len(p.confirms) == 0 {
		return true, nil
	}
	value := p.confirms[0]
	p.confirms = p.confirms[1:]
	return value, nil
}

func testDeps(t *testing.T, out *bytes.Buffer, prompter interaction.Prompter) Dependencies {
	t.Helper()
	t.Setenv("OTK_CONFIG_HOME", t.TempDir())
	return Dependencies{
		WorkDir:  t.TempDir(),
		Out:      out,
		Prompter: prompter,
	}
}

func mkModule(t *testing.T, addons, name string) string {
	t.Helper()
	dir := filepath.Join(addons, name)
	for _, sub := range []string{"models", "views", "security", "wizard"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	for _, file := range []string{"__manifest__.py", "__init__.py", filepath.Join("models", "__init__.py")} {
		if err := os.WriteFile(filepath.Join(dir, file), nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return dir
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)

	if code := Run([]string{"version"}, deps); code != 0 {
		t.Fatalf("exit = %d, output: %s", code, out.String())
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatal("version printed nothing")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)

	if code := Run([]string{"bogus"}, deps); code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
}

func TestRunAddModule(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)
	addons := t.TempDir()

	code := Run([]string{"add", "module", "my_module", "--addons-path", addons}, deps)
	if code != 0 {
		t.Fatalf("exit = %d, output: %s", code, out.String())
	}

	if _, err := os.Stat(filepath.Join(addons, "my_module", "__manifest__.py")); err != nil {
		t.Fatalf("manifest not created: %v", err)
	}
	if !strings.Contains(out.String(), "Successfully created module my_module") {
		t.Errorf("output missing success message:\n%s", out.String())
	}
}

func TestRunAddModuleTwiceFails(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)
	addons := t.TempDir()

	if code := Run([]string{"add", "module", "dup", "--addons-path", addons}, deps); code != 0 {
		t.Fatalf("first run exit = %d", code)
	}
	if code := Run([]string{"add", "module", "dup", "--addons-path", addons}, deps); code != 1 {
		t.Fatalf("second run exit = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("output missing exists error:\n%s", out.String())
	}
}

func TestRunAddModelPromptsForModule(t *testing.T) {
	var out bytes.Buffer
	prompter := &scriptPrompter{selects: []string{"host"}}
	deps := testDeps(t, &out, prompter)
	addons := t.TempDir()
	mkModule(t, addons, "host")

	code := Run([]string{"add", "model", "res.partner", "--addons-path", addons}, deps)
	if code != 0 {
		t.Fatalf("exit = %d, output: %s", code, out.String())
	}
	if _, err := os.Stat(filepath.Join(addons, "host", "models", "res_partner.py")); err != nil {
		t.Fatalf("model not created: %v", err)
	}
}

func TestRunAddModelWithoutPrompterFails(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)
	addons := t.TempDir()
	mkModule(t, addons, "host")

	code := Run([]string{"add", "model", "res.partner", "--addons-path", addons}, deps)
	if code != 1 {
		t.Fatalf("exit = %d, want 1 without module flag or prompter", code)
	}
}

func TestRunAddModelInvalidType(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)
	addons := t.TempDir()
	mkModule(t, addons, "host")

	code := Run([]string{"add", "model", "res.partner", "--module", "host", "--type", "Bogus", "--addons-path", addons}, deps)
	if code != 1 {
		t.Fatalf("exit = %d, want 1 for invalid type", code)
	}
	if !strings.Contains(out.String(), "invalid model type") {
		t.Errorf("output missing type error:\n%s", out.String())
	}
}

func TestRunAddViewAndWizard(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)
	addons := t.TempDir()
	mkModule(t, addons, "host")

	code := Run([]string{"add", "view", "project.task", "--module", "host", "--type", "form,list", "--addons-path", addons}, deps)
	if code != 0 {
		t.Fatalf("add view exit = %d, output: %s", code, out.String())
	}
	if _, err := os.Stat(filepath.Join(addons, "host", "views", "project_task_views.xml")); err != nil {
		t.Fatalf("views file not created: %v", err)
	}

	code = Run([]string{"add", "wizard", "import.wizard", "--module", "host", "--addons-path", addons}, deps)
	if code != 0 {
		t.Fatalf("add wizard exit = %d, output: %s", code, out.String())
	}
	if _, err := os.Stat(filepath.Join(addons, "host", "wizard", "import_wizard.py")); err != nil {
		t.Fatalf("wizard model not created: %v", err)
	}
}

func TestRunAddActionAndMenu(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)
	addons := t.TempDir()
	mkModule(t, addons, "host")

	code := Run([]string{"add", "action", "sale.order", "--module", "host", "--addons-path", addons}, deps)
	if code != 0 {
		t.Fatalf("add action exit = %d, output: %s", code, out.String())
	}
	code = Run([]string{"add", "menu", "Sales Menu", "--module", "host", "--action", "host.sale_order_action", "--parent", "base.menu_administration", "--addons-path", addons}, deps)
	if code != 0 {
		t.Fatalf("add menu exit = %d, output: %s", code, out.String())
	}

	payload, err := os.ReadFile(filepath.Join(addons, "host", "views", "actions_and_menus.xml"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	content := string(payload)
	if !strings.Contains(content, `id="sale_order_action"`) || !strings.Contains(content, `id="sales_menu"`) {
		t.Errorf("records missing:\n%s", content)
	}
	if got := strings.Count(content, "<odoo>"); got != 1 {
		t.Errorf("wrapper count = %d, want 1:\n%s", got, content)
	}
}

func TestRunExtendViewCreatesFile(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)
	addons := t.TempDir()
	mkModule(t, addons, "host")

	code := Run([]string{
		"extend", "view",
		"--module", "host",
		"--view-id", "base.view_partner_form",
		"--model", "res.partner",
		"--field", "x_code",
		"--xpath", "//field[@name='vat']",
		"--position", "after",
		"--addons-path", addons,
	}, deps)
	if code != 0 {
		t.Fatalf("exit = %d, output: %s", code, out.String())
	}

	path := filepath.Join(addons, "host", "views", "view_partner_form_inherited_views.xml")
	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("inherited view not created: %v", err)
	}
	content := string(payload)
	for _, want := range []string{`ref="base.view_partner_form"`, `name="x_code"`, `position="after"`} {
		if !strings.Contains(content, want) {
			t.Errorf("inherited view missing %q:\n%s", want, content)
		}
	}
}

func TestRunExtendViewAppendsToExisting(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)
	addons := t.TempDir()
	mkModule(t, addons, "host")

	args := []string{
		"extend", "view",
		"--module", "host",
		"--view-id", "base.view_partner_form",
		"--model", "res.partner",
		"--field", "x_first",
		"--xpath", "//field[@name='vat']",
		"--position", "after",
		"--addons-path", addons,
	}
	if code := Run(args, deps); code != 0 {
		t.Fatalf("first extend exit = %d, output: %s", code, out.String())
	}

	args[9] = "x_second"
	if code := Run(args, deps); code != 0 {
		t.Fatalf("second extend exit = %d, output: %s", code, out.String())
	}

	path := filepath.Join(addons, "host", "views", "view_partner_form_inherited_views.xml")
	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	content := string(payload)
	if !strings.Contains(content, "x_first") || !strings.Contains(content, "x_second") {
		t.Errorf("arch missing appended fields:\n%s", content)
	}
	if got := strings.Count(content, `model="ir.ui.view"`); got != 1 {
		t.Errorf("record count = %d, want 1 (append, not duplicate):\n%s", got, content)
	}
}

func TestRunExtendViewInvalidPosition(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)
	addons := t.TempDir()
	mkModule(t, addons, "host")

	code := Run([]string{
		"extend", "view",
		"--module", "host",
		"--view-id", "base.view_partner_form",
		"--model", "res.partner",
		"--field", "x_code",
		"--xpath", "//field[@name='vat']",
		"--position", "above",
		"--addons-path", addons,
	}, deps)
	if code != 1 {
		t.Fatalf("exit = %d, want 1 for invalid position", code)
	}
}

func TestRunLintExitCodes(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)
	dir := t.TempDir()

	clean := filepath.Join(dir, "clean.xml")
	if err := os.WriteFile(clean, []byte(`<odoo>
    <record id="v" model="ir.ui.view">
        <field name="name">n</field>
        <field name="model">m</field>
        <field name="arch" type="xml">
            <form string="F"><field name="name"/></form>
        </field>
    </record>
</odoo>`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if code := Run([]string{"lint", "xml", clean, "--addons-path", dir}, deps); code != 0 {
		t.Fatalf("clean lint exit = %d, output: %s", code, out.String())
	}

	dirty := filepath.Join(dir, "dirty.xml")
	if err := os.WriteFile(dirty, []byte(`<odoo><tree string="T"/></odoo>`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out.Reset()
	if code := Run([]string{"lint", "xml", dirty, "--addons-path", dir}, deps); code != 1 {
		t.Fatalf("dirty lint exit = %d, want 1, output: %s", code, out.String())
	}
	if !strings.Contains(out.String(), "Deprecated '<tree>'") {
		t.Errorf("output missing tree finding:\n%s", out.String())
	}
}

func TestRunLintViewsSkipsGrammarOnFetchFailure(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)
	deps.SchemaFetcher = func(string) ([]byte, error) {
		return nil, os.ErrDeadlineExceeded
	}
	dir := t.TempDir()

	view := filepath.Join(dir, "list.xml")
	if err := os.WriteFile(view, []byte(`<odoo>
    <record id="v" model="ir.ui.view">
        <field name="name">n</field>
        <field name="model">m</field>
        <field name="arch" type="xml">
            <list string="L"><field name="a"/></list>
        </field>
    </record>
</odoo>`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if code := Run([]string{"lint", "views", view, "--addons-path", dir}, deps); code != 0 {
		t.Fatalf("exit = %d, output: %s", code, out.String())
	}
	if !strings.Contains(out.String(), "Skipping grammar validation") {
		t.Errorf("output missing skip notice:\n%s", out.String())
	}
}

func TestRunGuideTopic(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)

	if code := Run([]string{"guide", "form", "basic_field"}, deps); code != 0 {
		t.Fatalf("exit = %d, output: %s", code, out.String())
	}
	if !strings.Contains(out.String(), `<field name="field_name" string="Custom Label"/>`) {
		t.Errorf("output missing example:\n%s", out.String())
	}
}

func TestRunGuideWithoutPrompterShowsHelp(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)

	if code := Run([]string{"guide"}, deps); code != 0 {
		t.Fatalf("exit = %d, output: %s", code, out.String())
	}
	if !strings.Contains(out.String(), "Available topics") {
		t.Errorf("output missing help:\n%s", out.String())
	}
}

func TestRunConfigSetAndShow(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)

	if code := Run([]string{"config", "set", "defaults.author", "ACME Corp"}, deps); code != 0 {
		t.Fatalf("config set exit = %d, output: %s", code, out.String())
	}

	out.Reset()
	if code := Run([]string{"config", "show"}, deps); code != 0 {
		t.Fatalf("config show exit = %d, output: %s", code, out.String())
	}
	if !strings.Contains(out.String(), "ACME Corp") {
		t.Errorf("output missing updated author:\n%s", out.String())
	}
}

func TestRunConfigSetUnknownKey(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)

	if code := Run([]string{"config", "set", "bogus.key", "x"}, deps); code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
}

func TestRunNoArgsStartsInteractive(t *testing.T) {
	var out bytes.Buffer
	prompter := &scriptPrompter{selects: []string{"exit"}}
	deps := testDeps(t, &out, prompter)

	if code := Run(nil, deps); code != 0 {
		t.Fatalf("exit = %d, output: %s", code, out.String())
	}
	if !strings.Contains(out.String(), "OTK Interactive Mode") {
		t.Errorf("output missing banner:\n%s", out.String())
	}
}

func TestRunNoArgsWithoutTerminal(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out, nil)

	if code := Run(nil, deps); code != 1 {
		t.Fatalf("exit = %d, want 1 without a prompter", code)
	}
}
