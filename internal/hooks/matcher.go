// ABOUTME: Pattern-based selection of applicable hooks for an invocation
// ABOUTME: Invalid regex patterns never match and never surface an error

package hooks

import (
	"regexp"

	"github.com/mauromedda/agent-hooks-go/internal/config"
	"github.com/mauromedda/agent-hooks-go/internal/log"
)

// Matches reports whether the hook applies to the given invocation context.
// A hook without a matcher (or with an empty pattern) applies to everything.
// A tool_name pattern matches only when the context carries a tool name and
// the pattern matches it. An invalid pattern is treated as a non-match.
func Matches(def config.HookDef, ctx MatchContext) bool {
	if def.Matcher == nil || def.Matcher.ToolName == "" {
		return true
	}
	if ctx.ToolName == "" {
		return false
	}
	re, err := regexp.Compile(def.Matcher.ToolName)
	if err != nil {
		log.Debug("hook %q: invalid matcher %q: %v", def.Command, def.Matcher.ToolName, err)
		return false
	}
	return re.MatchString(ctx.ToolName)
}

// filterMatching returns the hooks applicable to ctx, preserving order.
func filterMatching(defs []config.HookDef, ctx MatchContext) []config.HookDef {
	matched := make([]config.HookDef, 0, len(defs))
	for _, def := range defs {
		if Matches(def, ctx) {
			matched = append(matched, def)
		}
	}
	return matched
}
