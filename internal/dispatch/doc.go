// Package dispatch maps the first command-line argument to one of a fixed
// set of informational actions.
//
// [Dispatch] is a pure function: it returns the text to print and the exit
// status instead of writing or exiting itself, so callers decide where the
// output goes and when the process terminates.
//
//	res := dispatch.Dispatch(info, os.Args[1:])
//	fmt.Fprint(os.Stdout, res.Output)
//	os.Exit(res.Status)
package dispatch
