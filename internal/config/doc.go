// Package config loads the runtime configuration used by the agent kit.
//
// The configuration lives in config.yaml, searched in the current
// directory and then in the user config directory
// (~/.config/chuk-acp-agent on Linux). Every key may be overridden by an
// environment variable with the CHUK_ACP_AGENT_ prefix:
//
//	version: 1
//	log_level: info        # CHUK_ACP_AGENT_LOG_LEVEL
//	log_format: text       # CHUK_ACP_AGENT_LOG_FORMAT
//	mcp_config: ./mcp.yaml # CHUK_ACP_AGENT_MCP_CONFIG
//
// The command-line dispatcher never reads this file; it is consumed by
// agents through pkg/agent.LoadContext.
package config
