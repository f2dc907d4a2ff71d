// Package task orchestrates a command invocation across two execution
// stages: a background stage that performs all blocking work (parsing,
// store, file, and HTTP access) and a foreground finalization stage that
// assembles the CommandOutput. The stages are joined by a single handoff
// value; no other state crosses the boundary.
package task

import (
	"context"
	"sync/atomic"

	"github.com/gitduk/rustdocs"
)

// State tracks an invocation through its lifecycle.
type State int32

// Invocation states.
const (
	StateIdle State = iota
	StateBackgroundRunning
	StateSucceeded
	StateFailed
	StateFinalized
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBackgroundRunning:
		return "background_running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Orchestrator runs command invocations. The resolver handles lookup
// requests and the indexer handles index requests; the argument grammar
// decides which branch runs.
type Orchestrator struct {
	Resolver rustdocs.DocResolver
	Indexer  rustdocs.Indexer
}

// handoff is the single value passed from the background stage to the
// foreground stage.
type handoff struct {
	text string
	desc rustdocs.SectionDescriptor
	err  error
}

// Invocation is one in-flight command. Output blocks until the background
// stage hands off its value, then finalizes.
type Invocation struct {
	state atomic.Int32
	ch    chan handoff
}

// State reports the invocation's current lifecycle state.
func (inv *Invocation) State() State {
	return State(inv.state.Load())
}

// Run starts the background stage for the given raw argument and returns
// immediately. The caller finalizes with Output; abandoning the invocation
// (canceling ctx and never calling Output) is safe, the background goroutine
// still drains into the buffered handoff channel.
func (o *Orchestrator) Run(ctx context.Context, argument string) *Invocation {
	inv := &Invocation{ch: make(chan handoff, 1)}
	inv.state.Store(int32(StateBackgroundRunning))

	go func() {
		h := o.background(ctx, argument)
		if h.err != nil {
			inv.state.Store(int32(StateFailed))
		} else {
			inv.state.Store(int32(StateSucceeded))
		}
		inv.ch <- h
	}()

	return inv
}

// background parses the argument and runs the chosen branch. All blocking
// work happens here.
func (o *Orchestrator) background(ctx context.Context, argument string) handoff {
	req, err := rustdocs.ParseArgument(argument)
	if err != nil {
		return handoff{err: err}
	}

	if req.Index != nil {
		text, err := o.Indexer.Index(ctx, req.Index.CrateName)
		if err != nil {
			return handoff{err: err}
		}
		return handoff{
			text: text,
			desc: rustdocs.SectionDescriptor{
				Source:    rustdocs.SourceLocal,
				CrateName: req.Index.CrateName,
				Indexed:   true,
			},
		}
	}

	res, err := o.Resolver.Resolve(ctx, *req.Lookup)
	if err != nil {
		return handoff{err: err}
	}
	return handoff{
		text: res.Text,
		desc: rustdocs.SectionDescriptor{
			Source:    res.Source,
			CrateName: req.Lookup.CrateName,
			ItemPath:  req.Lookup.ItemPathString(),
		},
	}
}

// Output waits for the background stage and assembles the final
// CommandOutput. It performs only pure assembly of the handoff value, which
// keeps it safe to run on a UI-affine context. A failed background stage
// surfaces its error verbatim and produces no output.
func (inv *Invocation) Output(ctx context.Context) (*rustdocs.CommandOutput, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case h := <-inv.ch:
		if h.err != nil {
			return nil, h.err
		}
		out := rustdocs.NewCommandOutput(h.text, h.desc)
		inv.state.Store(int32(StateFinalized))
		return out, nil
	}
}
