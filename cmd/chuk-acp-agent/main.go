// Package main is the entry point for the chuk-acp-agent CLI.
package main

import (
	"os"

	"github.com/chrishayuk/chuk-acp-agent/cmd/chuk-acp-agent/commands"
)

func main() {
	os.Exit(commands.Execute())
}
