// ABOUTME: Event-level hook dispatch: filtering, sequential execution, block policy
// ABOUTME: First code-2 result on a blocking event wins; everything else warns

package hooks

import (
	"context"
	"fmt"
	"strings"

	"github.com/mauromedda/agent-hooks-go/internal/config"
	"github.com/mauromedda/agent-hooks-go/internal/log"
)

// blockExitCode is the exit code by which a hook objects to the triggering
// action. It only blocks when the firing event is classified blocking.
const blockExitCode = 2

// RunHooksForEvent executes the hooks applicable to one lifecycle event,
// strictly sequentially and in configured order (global before project).
// On a blocking event, the first hook exiting with code 2 stops the dispatch
// and the remaining hooks are not run. Timeouts and other non-zero exits
// become warnings and never block. additionalContext emitted by hooks is
// accumulated newline-joined in execution order, regardless of exit codes.
func RunHooksForEvent(ctx context.Context, defs []config.HookDef, stdin HookStdin, matchCtx MatchContext) HookEventResult {
	result := HookEventResult{
		Allowed:  true,
		Results:  []HookResult{},
		Warnings: []string{},
	}

	matched := filterMatching(defs, matchCtx)
	if len(matched) == 0 {
		return result
	}

	blocking := IsBlocking(stdin.HookEventName)
	var contexts []string

	for _, def := range matched {
		hr := ExecuteHook(ctx, def, stdin)
		result.Results = append(result.Results, hr)

		// Context accumulates even from hooks that go on to warn, and from
		// hooks that ran before a later block.
		if hr.Stdout != nil && hr.Stdout.AdditionalContext != "" {
			contexts = append(contexts, hr.Stdout.AdditionalContext)
		}

		switch {
		case hr.TimedOut:
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("hook %q timed out after %s", def.Command, EffectiveTimeout(def)))

		case hr.ExitCode == blockExitCode && blocking:
			log.Debug("hook %q blocked %s", def.Command, stdin.HookEventName)
			result.Allowed = false
			result.BlockReason = blockReason(def, hr)
			result.AdditionalContext = strings.Join(contexts, "\n")
			return result

		case hr.ExitCode != 0:
			// Includes exit code 2 on advisory events, which cannot veto.
			if hr.Stderr != "" {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("hook %q: %s", hookLabel(def), hr.Stderr))
			} else {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("hook %q exited with code %d", hookLabel(def), hr.ExitCode))
			}
		}
	}

	result.AdditionalContext = strings.Join(contexts, "\n")
	return result
}

// blockReason picks the human-readable reason for a block: the hook's own
// stdout reason, else its stderr, else a generic message naming the hook.
func blockReason(def config.HookDef, hr HookResult) string {
	if hr.Stdout != nil && hr.Stdout.Reason != "" {
		return hr.Stdout.Reason
	}
	if hr.Stderr != "" {
		return hr.Stderr
	}
	return fmt.Sprintf("hook %q blocked the action", hookLabel(def))
}

// hookLabel names a hook for messages: its description when set, else the
// command line itself.
func hookLabel(def config.HookDef) string {
	if def.Description != "" {
		return def.Description
	}
	return def.Command
}
