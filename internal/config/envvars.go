// ABOUTME: Environment variable expansion in hook definition string fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// expandHookDef expands ${VAR} patterns in the command and matcher pattern
// of a loaded definition.
func expandHookDef(def *HookDef) {
	def.Command = expandEnv(def.Command)
	if def.Matcher != nil {
		def.Matcher.ToolName = expandEnv(def.Matcher.ToolName)
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
