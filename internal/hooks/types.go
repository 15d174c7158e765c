// ABOUTME: Hook lifecycle types: events, stdin/stdout protocol, result structs
// ABOUTME: Defines the contract between the agent loop and the hook subsystem

package hooks

import "github.com/mauromedda/agent-hooks-go/internal/config"

// HookEvent identifies a lifecycle event in the agent loop.
type HookEvent string

const (
	PreToolUse       HookEvent = "PreToolUse"
	PostToolUse      HookEvent = "PostToolUse"
	UserPromptSubmit HookEvent = "UserPromptSubmit"
	Stop             HookEvent = "Stop"
	SessionStart     HookEvent = "SessionStart"
	SessionEnd       HookEvent = "SessionEnd"
)

// IsValid reports whether e is one of the six recognized events.
func (e HookEvent) IsValid() bool {
	switch e {
	case PreToolUse, PostToolUse, UserPromptSubmit, Stop, SessionStart, SessionEnd:
		return true
	default:
		return false
	}
}

// HookStdin is the protocol request written to a hook command's stdin as a
// single JSON document. Event-specific fields are omitted when empty.
type HookStdin struct {
	HookEventName HookEvent      `json:"hook_event_name"`
	Cwd           string         `json:"cwd"`
	SessionID     string         `json:"session_id,omitempty"`
	ToolName      string         `json:"tool_name,omitempty"`
	ToolInput     map[string]any `json:"tool_input,omitempty"`
	ToolResponse  map[string]any `json:"tool_response,omitempty"`
	Prompt        string         `json:"prompt,omitempty"`
}

// NewPreToolUseStdin builds the request for a hook firing before a tool call.
func NewPreToolUseStdin(cwd, toolName string, toolInput map[string]any) HookStdin {
	return HookStdin{
		HookEventName: PreToolUse,
		Cwd:           cwd,
		ToolName:      toolName,
		ToolInput:     toolInput,
	}
}

// NewPostToolUseStdin builds the request for a hook firing after a tool call.
func NewPostToolUseStdin(cwd, toolName string, toolInput, toolResponse map[string]any) HookStdin {
	return HookStdin{
		HookEventName: PostToolUse,
		Cwd:           cwd,
		ToolName:      toolName,
		ToolInput:     toolInput,
		ToolResponse:  toolResponse,
	}
}

// NewUserPromptSubmitStdin builds the request for a prompt-submission hook.
func NewUserPromptSubmitStdin(cwd, prompt string) HookStdin {
	return HookStdin{
		HookEventName: UserPromptSubmit,
		Cwd:           cwd,
		Prompt:        prompt,
	}
}

// NewSessionStdin builds the request for Stop, SessionStart, and SessionEnd
// hooks, which carry no event-specific payload.
func NewSessionStdin(event HookEvent, cwd string) HookStdin {
	return HookStdin{
		HookEventName: event,
		Cwd:           cwd,
	}
}

// HookStdout is the optional JSON response a hook may emit on stdout.
// Unknown fields are tolerated and ignored.
type HookStdout struct {
	Reason            string `json:"reason,omitempty"`
	AdditionalContext string `json:"additionalContext,omitempty"`
}

// HookResult is the outcome of one executed hook. Exactly one is produced
// per execution attempt, regardless of how the subprocess fared.
type HookResult struct {
	Hook       config.HookDef `json:"hook"`
	ExitCode   int            `json:"exit_code"`
	Stdout     *HookStdout    `json:"stdout,omitempty"`
	Stderr     string         `json:"stderr,omitempty"`
	TimedOut   bool           `json:"timed_out"`
	DurationMs int64          `json:"duration_ms"`
}

// HookEventResult is the outcome of one full event dispatch. Results is a
// prefix of the matched-hook list; it is shorter than the full list exactly
// when a block occurred.
type HookEventResult struct {
	Allowed           bool         `json:"allowed"`
	BlockReason       string       `json:"block_reason,omitempty"`
	AdditionalContext string       `json:"additional_context,omitempty"`
	Results           []HookResult `json:"results"`
	Warnings          []string     `json:"warnings"`
}

// MatchContext carries the invocation attributes hook matchers filter on.
type MatchContext struct {
	ToolName string
}
