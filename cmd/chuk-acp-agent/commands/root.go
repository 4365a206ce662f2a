// Package commands wires the command dispatcher into a cobra root command.
package commands

import (
	"context"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/chrishayuk/chuk-acp-agent/cmd"
	"github.com/chrishayuk/chuk-acp-agent/internal/dispatch"
	"github.com/chrishayuk/chuk-acp-agent/internal/errors"
	"github.com/chrishayuk/chuk-acp-agent/internal/logging"
)

// buildInfo is the product identity baked in at link time.
var buildInfo = dispatch.Info{
	Name:    cmd.ProductName,
	Version: cmd.Version,
}

// NewRootCommand returns the root command for info.
//
// Flag parsing is disabled and no subcommands are registered, so every
// argument (including "help" and "--help") reaches the dispatcher
// untouched. Cobra's own error and usage printing is silenced; the only
// output is the dispatcher's, written to the command's stdout.
func NewRootCommand(info dispatch.Info) *cobra.Command {
	root := &cobra.Command{
		Use:                info.Name + " <command> [args...]",
		Short:              "Opinionated agent kit for building ACP agents",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return setupLogging(c)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return run(c, info, args)
		},
	}
	return root
}

// setupLogging attaches a stderr logger at Warn to the command context.
// Nothing on the dispatch path logs above Debug.
func setupLogging(c *cobra.Command) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.New(logging.Config{
		Level:  logging.LevelFromVerbosity(0),
		Format: logging.FormatText,
		Output: c.ErrOrStderr(),
	})
	c.SetContext(logging.NewContext(ctx, logger))
	return nil
}

func run(c *cobra.Command, info dispatch.Info, args []string) error {
	res := dispatch.Dispatch(info, args)
	logging.FromContext(c.Context()).Debug("dispatched",
		"command", res.Command.String(),
		"args", len(args),
		"status", res.Status,
	)

	if _, err := c.OutOrStdout().Write([]byte(res.Output)); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing output"), "")
	}
	if res.Status != errors.ExitSuccess {
		return errors.NewExitError(errors.ErrUnknownCommand, res.Status)
	}
	return nil
}

// ExecuteArgs runs the root command for info with args and returns the
// process exit status. Output goes to stdout, or os.Stdout when nil.
func ExecuteArgs(ctx context.Context, info dispatch.Info, args []string, stdout io.Writer) int {
	root := NewRootCommand(info)
	if stdout != nil {
		root.SetOut(stdout)
	}
	return execute(ctx, root, info, args)
}

// execute runs root, which must come from NewRootCommand(info).
func execute(ctx context.Context, root *cobra.Command, info dispatch.Info, args []string) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	if slices.ContainsFunc(args, isCompletionRequest) {
		// cobra diverts these to its hidden completion command before
		// RunE is reached, so run the root command's hooks directly.
		root.SetContext(ctx)
		if err := setupLogging(root); err != nil {
			return errors.Code(err)
		}
		return errors.Code(run(root, info, args))
	}

	root.SetArgs(args)
	return errors.Code(root.ExecuteContext(ctx))
}

// isCompletionRequest reports whether arg names cobra's shell completion
// request command.
func isCompletionRequest(arg string) bool {
	return arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd
}

// Execute runs the CLI with the process arguments and returns the exit status.
func Execute() int {
	return ExecuteArgs(context.Background(), buildInfo, os.Args[1:], nil)
}
