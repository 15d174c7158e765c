// ABOUTME: jq expression evaluation over the JSON-rendered dispatch result
// ABOUTME: Values go through a marshal round-trip so gojq sees plain JSON types

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// applyQuery runs a jq expression against v and returns the outputs, one
// JSON document per line.
func applyQuery(v any, expr string) (string, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return "", fmt.Errorf("invalid jq query %q: %w", expr, err)
	}

	// Round-trip through JSON so gojq receives map[string]any input.
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	var input any
	if err := json.Unmarshal(raw, &input); err != nil {
		return "", fmt.Errorf("unmarshal result: %w", err)
	}

	var lines []string
	iter := query.Run(input)
	for {
		out, ok := iter.Next()
		if !ok {
			break
		}
		if qerr, ok := out.(error); ok {
			return "", fmt.Errorf("jq: %w", qerr)
		}
		if s, ok := out.(string); ok {
			lines = append(lines, s)
			continue
		}
		encoded, err := json.Marshal(out)
		if err != nil {
			return "", fmt.Errorf("encode jq output: %w", err)
		}
		lines = append(lines, string(encoded))
	}
	return strings.Join(lines, "\n"), nil
}
