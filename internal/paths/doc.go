// Package paths resolves the filesystem locations chuk-acp-agent uses for
// its runtime configuration and MCP server definitions.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory
// compliance. On Linux the layout is:
//
//	~/.config/chuk-acp-agent/config.yaml   runtime configuration
//	~/.config/chuk-acp-agent/mcp.json      MCP server definitions
//	<project>/.chuk-acp-agent/mcp.json     project-local MCP servers
//
// Tests that change XDG_CONFIG_HOME must call [Reload] so the new value
// is picked up.
package paths
