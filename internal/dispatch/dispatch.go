package dispatch

import (
	"strings"

	"github.com/chrishayuk/chuk-acp-agent/internal/errors"
)

// Command is the closed set of outcomes the first argument resolves to.
type Command int

const (
	// CommandMissing means no argument was supplied.
	CommandMissing Command = iota
	// CommandVersion prints the product name and version.
	CommandVersion
	// CommandHelp prints the usage text.
	CommandHelp
	// CommandUnknown is any other argument, including "".
	CommandUnknown
)

func (c Command) String() string {
	switch c {
	case CommandMissing:
		return "missing"
	case CommandVersion:
		return "version"
	case CommandHelp:
		return "help"
	case CommandUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Info is the product identity shown by the version and help output.
type Info struct {
	Name    string
	Version string
}

// Result is the outcome of a dispatch.
type Result struct {
	Command Command
	Output  string
	Status  int
}

// Parse resolves args to a Command. args excludes the program name; only
// args[0] is consulted and matching is exact and case-sensitive.
func Parse(args []string) Command {
	if len(args) == 0 {
		return CommandMissing
	}
	switch args[0] {
	case "version":
		return CommandVersion
	case "help":
		return CommandHelp
	default:
		return CommandUnknown
	}
}

// Dispatch resolves args and renders the corresponding output.
// Status is 0 for version and help, 1 otherwise. An unknown command is
// reported on its own line ahead of the help text; a missing command
// prints the help text alone.
func Dispatch(info Info, args []string) Result {
	cmd := Parse(args)
	switch cmd {
	case CommandVersion:
		return Result{Command: cmd, Output: VersionText(info), Status: errors.ExitSuccess}
	case CommandHelp:
		return Result{Command: cmd, Output: HelpText(info), Status: errors.ExitSuccess}
	case CommandUnknown:
		return Result{
			Command: cmd,
			Output:  "Unknown command: " + args[0] + "\n" + HelpText(info),
			Status:  errors.ExitUser,
		}
	default: // CommandMissing
		return Result{Command: CommandMissing, Output: HelpText(info), Status: errors.ExitUser}
	}
}

// VersionText returns "<name> <version>\n".
func VersionText(info Info) string {
	return info.Name + " " + info.Version + "\n"
}

// HelpText returns the usage text. It starts with a blank line and ends
// with an empty line.
func HelpText(info Info) string {
	r := strings.NewReplacer("{{name}}", info.Name)
	return r.Replace(helpTemplate)
}

const helpTemplate = `
{{name}} - Opinionated agent kit for building ACP agents

Usage:
    {{name}} <command> [args...]

Commands:
    version             Show version information
    help                Show this help message

Examples:
    {{name}} version
    {{name}} help

Documentation:
    https://github.com/chrishayuk/chuk-acp-agent

Quick Start:
    1. Install: go get github.com/chrishayuk/chuk-acp-agent
    2. Create main.go (see examples/)
    3. Run: go run .
    4. Configure in editor (Zed, VS Code, etc.)

See examples/ directory for sample agents.

`
