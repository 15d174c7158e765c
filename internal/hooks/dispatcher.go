// ABOUTME: Concurrent dispatch of independent lifecycle events
// ABOUTME: Hooks within a single dispatch still run strictly sequentially

package hooks

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/agent-hooks-go/internal/config"
)

// Dispatch is one event's inputs for DispatchAll.
type Dispatch struct {
	Hooks    []config.HookDef
	Stdin    HookStdin
	MatchCtx MatchContext
}

// DispatchAll runs several unrelated event dispatches concurrently and
// returns their results in input order. The subsystem places no ordering
// guarantee across dispatches; within each one the usual sequential,
// first-blocker-wins semantics hold.
func DispatchAll(ctx context.Context, dispatches []Dispatch) []HookEventResult {
	results := make([]HookEventResult, len(dispatches))

	var g errgroup.Group
	for i, d := range dispatches {
		i, d := i, d
		g.Go(func() error {
			results[i] = RunHooksForEvent(ctx, d.Hooks, d.Stdin, d.MatchCtx)
			return nil
		})
	}
	// Dispatches never error; results carry every failure mode.
	_ = g.Wait()

	return results
}
