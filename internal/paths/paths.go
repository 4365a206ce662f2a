package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/chrishayuk/chuk-acp-agent/internal/errors"
)

// AppName names the per-user config directory.
const AppName = "chuk-acp-agent"

// File names inside the config directory.
const (
	ConfigFileName    = "config.yaml"
	MCPConfigFileName = "mcp.json"
)

// projectDirName is the directory inside a project root holding
// project-local configuration.
const projectDirName = "." + AppName

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// Reload re-reads the XDG environment variables.
func Reload() {
	xdg.Reload()
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the chuk-acp-agent config directory under ConfigHome.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// DefaultMCPConfigFile returns the path of the user-level MCP server file.
func DefaultMCPConfigFile() string {
	return filepath.Join(ConfigDir(), MCPConfigFileName)
}

// ProjectMCPConfigFile returns the project-local MCP server file for root.
// An empty root yields an empty path.
func ProjectMCPConfigFile(root string) string {
	if root == "" {
		return ""
	}
	return filepath.Join(root, projectDirName, MCPConfigFileName)
}

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return errors.Wrapf(os.MkdirAll(path, perm), "creating %s", path)
}
