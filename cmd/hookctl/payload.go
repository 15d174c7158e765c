// ABOUTME: Event payload construction for fire: defaults, JSON/YAML files
// ABOUTME: YAML payloads are normalized through JSON so field names match the protocol

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/agent-hooks-go/internal/hooks"
)

// buildStdin assembles the protocol request for one fire invocation. A
// payload file supplies event-specific fields; flags override tool name and
// working directory; the event name always comes from the command line.
func buildStdin(event hooks.HookEvent, opts fireOptions) (hooks.HookStdin, error) {
	var stdin hooks.HookStdin

	if opts.payload != "" {
		loaded, err := loadPayload(opts.payload)
		if err != nil {
			return stdin, err
		}
		stdin = loaded
	}

	stdin.HookEventName = event
	if opts.tool != "" {
		stdin.ToolName = opts.tool
	}
	if opts.cwd != "" {
		stdin.Cwd = opts.cwd
	}
	if stdin.Cwd == "" {
		abs, err := filepath.Abs(opts.project)
		if err != nil {
			return stdin, fmt.Errorf("resolve project dir: %w", err)
		}
		stdin.Cwd = abs
	}
	return stdin, nil
}

// loadPayload reads a payload file. JSON is decoded directly; YAML is
// decoded generically and re-encoded as JSON so the protocol's snake_case
// field names apply to both formats.
func loadPayload(path string) (hooks.HookStdin, error) {
	var stdin hooks.HookStdin

	data, err := os.ReadFile(path)
	if err != nil {
		return stdin, fmt.Errorf("payload: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var generic map[string]any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return stdin, fmt.Errorf("payload %s: %w", path, err)
		}
		data, err = json.Marshal(generic)
		if err != nil {
			return stdin, fmt.Errorf("payload %s: %w", path, err)
		}
	}

	if err := json.Unmarshal(data, &stdin); err != nil {
		return stdin, fmt.Errorf("payload %s: %w", path, err)
	}
	return stdin, nil
}
