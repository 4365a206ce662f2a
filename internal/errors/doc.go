// Package errors provides error handling conventions for chuk-acp-agent.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, exit code constants
// following standard Unix conventions, and thin re-exports of
// github.com/cockroachdb/errors so callers import a single errors package.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (unknown command, invalid input, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// The command dispatcher only ever produces ExitSuccess and ExitUser.
//
// # ExitError
//
// [ExitError] carries an exit code through cobra's RunE back to the
// process entry point:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
