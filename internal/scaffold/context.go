// Where: internal/scaffold/context.go
// What: Template context construction for each component kind.
// Why: Keep the full key set per template in one place; the renderer treats
//      missing keys as errors, so contexts must be complete.
package scaffold

import "fmt"

// FieldDescriptor describes one model field rendered into stubs and views.
type FieldDescriptor struct {
	Name     string
	Type     string
	Label    string
	Required bool
}

// ManifestDefaults carries authoring metadata for new module manifests.
type ManifestDefaults struct {
	Author   string
	Website  string
	Category string
	License  string
}

// ModuleContext builds the template context for a new module manifest.
func ModuleContext(name string, defaults ManifestDefaults) map[string]any {
	return map[string]any{
		"module_name":    name,
		"summary":        fmt.Sprintf("A brief description of %s", name),
		"description":    fmt.Sprintf("Long description of %s", name),
		"author":         defaults.Author,
		"website":        defaults.Website,
		"category":       defaults.Category,
		"license":        defaults.License,
		"sequence":       100,
		"depends":        []string{},
		"is_application": true,
		"auto_install":   false,
	}
}

// ModelContext builds the template context for a model stub.
func ModelContext(name, modelType, inherit string, fields []FieldDescriptor) map[string]any {
	return map[string]any{
		"class_name":  ClassName(name),
		"model_name":  name,
		"description": fmt.Sprintf("%s %s", modelType, name),
		"model_type":  modelType,
		"inherit":     inherit,
		"fields":      fieldMaps(fields),
	}
}

// ViewContext builds the template context shared by all view templates.
func ViewContext(modelName, layout string, isWizard bool) map[string]any {
	return map[string]any{
		"model_name":       modelName,
		"model_name_snake": TechnicalName(modelName),
		"model_human_name": HumanLabel(modelName),
		"has_title":        !isWizard,
		"is_wizard":        isWizard,
		"layout":           layout,
	}
}

// ActionContext builds the template context for a window action record.
// target is empty for regular actions and "new" for wizard dialogs.
func ActionContext(modelName, viewMode, target string) map[string]any {
	return map[string]any{
		"model_name":       modelName,
		"model_name_snake": TechnicalName(modelName),
		"model_human_name": HumanLabel(modelName),
		"action_name":      HumanLabel(modelName),
		"view_mode":        viewMode,
		"target":           target,
	}
}

// MenuContext builds the template context for a menuitem record.
func MenuContext(name, action, parent string) map[string]any {
	return map[string]any{
		"menu_name":      name,
		"menu_id_snake":  MenuID(name),
		"action_id":      action,
		"parent_menu_id": parent,
	}
}

// AccessContext builds the template context for ir.model.access.csv rows.
func AccessContext(modelName string) map[string]any {
	return map[string]any{
		"model_name_snake": TechnicalName(modelName),
	}
}

func fieldMaps(fields []FieldDescriptor) []map[string]any {
	out := make([]map[string]any, 0, len(fields))
	for _, field := range fields {
		label := field.Label
		if label == "" {
			label = HumanLabel(field.Name)
		}
		out = append(out, map[string]any{
			"name":     field.Name,
			"type":     field.Type,
			"string":   label,
			"required": field.Required,
		})
	}
	return out
}
