// ABOUTME: Blocking vs advisory classification of lifecycle events
// ABOUTME: Blocking events gate an upcoming action and can veto it via exit code 2

package hooks

// blockingEvents lists the events whose hooks can veto the triggering action.
// Events that report after the fact are advisory: their hooks can warn but
// never block.
var blockingEvents = map[HookEvent]bool{
	PreToolUse:       true,
	UserPromptSubmit: true,
}

// IsBlocking reports whether hooks for the event can veto the action that
// triggered it.
func IsBlocking(e HookEvent) bool {
	return blockingEvents[e]
}
