package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func mkModule(t *testing.T, addons, name string) {
	t.Helper()
	dir := filepath.Join(addons, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "__manifest__.py"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	nested := filepath.Join(root, "addons", "custom")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	found, ok := FindProjectRoot(nested)
	if !ok {
		t.Fatal("project root not found")
	}
	if found != root {
		t.Fatalf("root = %s, want %s", found, root)
	}
}

func TestFindProjectRootOdooConf(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "odoo.conf"), nil, 0o644); err != nil {
		t.Fatalf("write odoo.conf: %v", err)
	}

	found, ok := FindProjectRoot(root)
	if !ok || found != root {
		t.Fatalf("found = %s ok = %v, want %s", found, ok, root)
	}
}

func TestFindProjectRootMissing(t *testing.T) {
	dir := t.TempDir()
	if _, ok := FindProjectRoot(dir); ok {
		t.Skip("ancestor of temp dir is a project root on this machine")
	}
}

func TestFindAddonsPaths(t *testing.T) {
	root := t.TempDir()
	mkModule(t, filepath.Join(root, "addons"), "mod_a")
	mkModule(t, filepath.Join(root, "extra", "addons"), "mod_b")
	mkModule(t, filepath.Join(root, ".skip"), "mod_hidden")

	paths := FindAddonsPaths(root)
	if len(paths) != 2 {
		t.Fatalf("paths = %v, want 2", paths)
	}
	for _, path := range paths {
		if filepath.Base(filepath.Dir(path)) == ".skip" {
			t.Errorf("hidden directory not skipped: %v", paths)
		}
	}
}

func TestListModules(t *testing.T) {
	addons := t.TempDir()
	mkModule(t, addons, "zulu")
	mkModule(t, addons, "alpha")
	mkModule(t, addons, "otk")
	if err := os.MkdirAll(filepath.Join(addons, "not_a_module"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	modules := ListModules([]string{addons})
	if len(modules) != 2 {
		t.Fatalf("modules = %v, want [alpha zulu]", modules)
	}
	if modules[0] != "alpha" || modules[1] != "zulu" {
		t.Fatalf("modules not sorted: %v", modules)
	}
}

func TestFindModuleDir(t *testing.T) {
	addonsA := t.TempDir()
	addonsB := t.TempDir()
	mkModule(t, addonsB, "target")

	dir, ok := FindModuleDir([]string{addonsA, addonsB}, "target")
	if !ok {
		t.Fatal("module not found")
	}
	if dir != filepath.Join(addonsB, "target") {
		t.Fatalf("dir = %s", dir)
	}

	if _, ok := FindModuleDir([]string{addonsA, addonsB}, "missing"); ok {
		t.Fatal("unexpected match for missing module")
	}
}
