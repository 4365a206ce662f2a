// Package mcp defines the MCP (Model Context Protocol) server configuration
// models agents use to describe the tool servers they connect to.
//
// A [Config] holds named [ServerConfig] entries under the "mcpServers" key,
// the layout editors such as Zed and Claude Desktop use:
//
//	{
//	  "mcpServers": {
//	    "github": {
//	      "command": "npx",
//	      "args": ["-y", "@modelcontextprotocol/server-github"],
//	      "env": {"GITHUB_TOKEN": "${GITHUB_TOKEN}"}
//	    },
//	    "search": {"url": "https://search.example.com/mcp", "transport": "http"}
//	  }
//	}
//
// The same structure may be written as YAML or TOML; [ParseFile] picks the
// decoder from the file extension.
//
// # Transports
//
//   - [TransportStdio]: local process over stdin/stdout (default with Command)
//   - [TransportSSE]: remote server over Server-Sent Events
//   - [TransportHTTP]: remote server over streamable HTTP
//
// # Validation
//
// [Validate] reports problems as [ValidationError] values with an error or
// warning severity; use [HasErrors] to decide whether a config is usable.
package mcp
