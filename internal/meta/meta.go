// Where: internal/meta/meta.go
// What: Tool identity constants.
// Why: Keep naming in one place for config paths and env overrides.
package meta

const (
	// AppName is the binary and brand name.
	AppName = "otk"

	// HomeDir is the per-user data directory under $HOME.
	HomeDir = ".otk"

	// EnvPrefix prefixes all environment variable overrides (OTK_CONFIG_PATH etc).
	EnvPrefix = "OTK"
)
