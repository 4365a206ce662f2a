// Package cmd contains build-time variables injected via ldflags.
package cmd

// ProductName is the name printed by the version command and used
// throughout the help text.
const ProductName = "chuk-acp-agent"

// Version is the semantic version of the build. It is set at link time
// via -ldflags "-X github.com/chrishayuk/chuk-acp-agent/cmd.Version=..."
// and never mutated at run time.
var Version = "0.1.0"
