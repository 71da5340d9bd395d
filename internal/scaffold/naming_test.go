package scaffold

import "testing"

func TestTechnicalName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"sale.order", "sale_order"},
		{"res.partner.bank", "res_partner_bank"},
		{"my_module", "my_module"},
		{"  project.task ", "project_task"},
	}
	for _, tc := range cases {
		if got := TechnicalName(tc.in); got != tc.want {
			t.Errorf("TechnicalName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClassName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"sale.order", "SaleOrder"},
		{"res.partner", "ResPartner"},
		{"import.wizard", "ImportWizard"},
	}
	for _, tc := range cases {
		if got := ClassName(tc.in); got != tc.want {
			t.Errorf("ClassName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHumanLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"sale.order", "Sale Order"},
		{"res_partner_bank", "Res Partner Bank"},
		{"project.task", "Project Task"},
	}
	for _, tc := range cases {
		if got := HumanLabel(tc.in); got != tc.want {
			t.Errorf("HumanLabel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMenuID(t *testing.T) {
	if got := MenuID("My Custom Menu"); got != "my_custom_menu" {
		t.Errorf("MenuID = %q, want my_custom_menu", got)
	}
}
