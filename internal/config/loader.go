// ABOUTME: Hooks config loading with global + project JSON file merge
// ABOUTME: Tolerant parsing: bad files or entries are dropped, never an error

package config

import (
	"encoding/json"
	"os"

	"github.com/mauromedda/agent-hooks-go/internal/log"
)

// Source identifies which hooks file a definition came from.
type Source string

const (
	SourceGlobal  Source = "global"
	SourceProject Source = "project"
)

// Matcher restricts which invocations a hook applies to.
type Matcher struct {
	ToolName string `json:"tool_name,omitempty"`
}

// HookDef is one hook entry as configured on disk. Immutable once loaded.
type HookDef struct {
	Type        string   `json:"type"`
	Command     string   `json:"command"`
	Matcher     *Matcher `json:"matcher,omitempty"`
	Timeout     int      `json:"timeout,omitempty"` // milliseconds; 0 means default
	Description string   `json:"description,omitempty"`
	Source      Source   `json:"-"`
}

// HooksConfig maps an event name to its ordered hook list, global-source
// hooks first. An event key is present only if its list is non-empty.
type HooksConfig map[string][]HookDef

// eventNames is the fixed set of recognized lifecycle events, in the order
// they are reported by listing commands.
var eventNames = []string{
	"PreToolUse",
	"PostToolUse",
	"UserPromptSubmit",
	"Stop",
	"SessionStart",
	"SessionEnd",
}

// EventNames returns the recognized lifecycle event names.
func EventNames() []string {
	out := make([]string, len(eventNames))
	copy(out, eventNames)
	return out
}

// LoadHooksConfig reads and merges hook definitions from the global and
// project hooks files. For each event the effective list is the global list
// followed by the project list; there is no override by identity. Missing,
// unreadable, or malformed files contribute nothing. The result is built
// fresh on every call; nothing is cached.
func LoadHooksConfig(projectDir string) HooksConfig {
	cfg := HooksConfig{}
	mergeHooksFile(cfg, GlobalHooksFile(), SourceGlobal)
	mergeHooksFile(cfg, ProjectHooksFile(projectDir), SourceProject)
	return cfg
}

func mergeHooksFile(cfg HooksConfig, path string, src Source) {
	byEvent := loadHooksFile(path)
	for _, event := range eventNames {
		defs := byEvent[event]
		if len(defs) == 0 {
			continue
		}
		for i := range defs {
			defs[i].Source = src
			expandHookDef(&defs[i])
		}
		cfg[event] = append(cfg[event], defs...)
	}
}

// loadHooksFile reads one hooks file into per-event definition lists.
// Unrecognized event keys are ignored; entries that are not objects with
// type "command" and a non-empty command string are dropped individually.
func loadHooksFile(path string) map[string][]HookDef {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Debug("hooks config %s: %v", path, err)
		}
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Debug("hooks config %s: invalid JSON: %v", path, err)
		return nil
	}

	out := make(map[string][]HookDef)
	for _, event := range eventNames {
		entries, ok := raw[event]
		if !ok {
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(entries, &items); err != nil {
			log.Debug("hooks config %s: %s is not an array: %v", path, event, err)
			continue
		}
		for _, item := range items {
			var def HookDef
			if err := json.Unmarshal(item, &def); err != nil {
				log.Debug("hooks config %s: dropping malformed %s entry: %v", path, event, err)
				continue
			}
			if def.Type != "command" || def.Command == "" {
				log.Debug("hooks config %s: dropping non-command %s entry", path, event)
				continue
			}
			out[event] = append(out[event], def)
		}
	}
	return out
}
