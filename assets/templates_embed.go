// Where: assets/templates_embed.go
// What: Embed component templates for the scaffolding renderer.
// Why: Ship all generation templates inside the binary.
package assets

import "embed"

//go:embed templates/module/*.tmpl templates/model/*.tmpl templates/view/*.tmpl templates/action/*.tmpl templates/menu/*.tmpl
var TemplatesFS embed.FS
