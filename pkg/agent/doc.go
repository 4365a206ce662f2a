// Package agent is the kit agents are built on: an [Agent] interface, an
// embeddable [Base] implementation, and the per-session execution
// [Context] that carries logging and MCP server configuration.
//
//	type echo struct{ agent.Base }
//
//	func (e *echo) Prompt(ctx *agent.Context, text string) (string, error) {
//		ctx.Logger().Debug("prompt received", "len", len(text))
//		return text, nil
//	}
//
//	ctx, err := agent.LoadContext(context.Background(), "", agent.WithWorkingDir(cwd))
//	if err != nil { ... }
//	a := &echo{Base: agent.NewBase("echo", "0.1.0")}
//	if err := agent.Start(ctx, a); err != nil { ... }
package agent
