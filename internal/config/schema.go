// ABOUTME: Strict JSON-schema validation of hooks files for CLI use
// ABOUTME: Reflects the schema from the config structs; the loader stays tolerant

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

// hooksFileDoc mirrors the on-disk hooks file shape for schema generation:
// a mapping from event name to an array of hook definitions.
type hooksFileDoc struct {
	PreToolUse       []HookDef `json:"PreToolUse,omitempty"`
	PostToolUse      []HookDef `json:"PostToolUse,omitempty"`
	UserPromptSubmit []HookDef `json:"UserPromptSubmit,omitempty"`
	Stop             []HookDef `json:"Stop,omitempty"`
	SessionStart     []HookDef `json:"SessionStart,omitempty"`
	SessionEnd       []HookDef `json:"SessionEnd,omitempty"`
}

// hooksFileSchema builds the strict schema for a hooks file. Unlike the
// tolerant loader, the schema rejects unknown event keys, non-command types,
// and empty commands, so authors see what the loader would silently drop.
func hooksFileSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		DoNotReference: true, // inline all definitions
	}
	schema := reflector.Reflect(&hooksFileDoc{})

	// Unknown top-level keys are unrecognized event names.
	schema.AdditionalProperties = &jsonschema.Schema{Not: &jsonschema.Schema{}} // false

	minOne := uint64(1)
	for _, event := range eventNames {
		eventProp, ok := schema.Properties.Get(event)
		if !ok || eventProp.Items == nil {
			return nil, fmt.Errorf("schema reflection missing event %s", event)
		}
		entry := eventProp.Items
		if typeProp, ok := entry.Properties.Get("type"); ok {
			typeProp.Enum = []any{"command"}
		}
		if cmdProp, ok := entry.Properties.Get("command"); ok {
			cmdProp.MinLength = &minOne
		}
		entry.Required = []string{"type", "command"}
	}

	return schema, nil
}

// ValidateHooksData validates raw hooks-file JSON against the strict schema.
// It returns one human-readable problem per violation; an empty slice means
// the file is valid. The error return covers schema construction only.
func ValidateHooksData(data []byte) ([]string, error) {
	schema, err := hooksFileSchema()
	if err != nil {
		return nil, err
	}
	schemaBytes, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// Validate fails on undecodable documents; report it as a document
		// problem rather than an internal error.
		return []string{fmt.Sprintf("invalid JSON: %v", err)}, nil
	}

	if result.Valid() {
		return nil, nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, validationErr := range result.Errors() {
		problems = append(problems, validationErr.String())
	}
	return problems, nil
}

// ValidateHooksFile reads and validates one hooks file. A missing file is
// valid (it contributes an empty config).
func ValidateHooksFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return []string{fmt.Sprintf("unreadable: %v", err)}, nil
	}
	return ValidateHooksData(data)
}
