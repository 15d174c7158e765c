// ABOUTME: Tests for the hook process runner using real shell commands
// ABOUTME: Covers protocol I/O, exit codes, timeouts, and spawn failures

package hooks

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mauromedda/agent-hooks-go/internal/config"
)

func commandHook(command string) config.HookDef {
	return config.HookDef{Type: "command", Command: command}
}

func TestExecuteHook_ParsesJSONStdout(t *testing.T) {
	t.Parallel()

	def := commandHook(`echo '{"reason":"nope","additionalContext":"extra context"}'`)
	res := ExecuteHook(context.Background(), def, NewSessionStdin(SessionStart, t.TempDir()))

	if res.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, want 0 (stderr: %q)", res.ExitCode, res.Stderr)
	}
	if res.Stdout == nil {
		t.Fatal("expected parsed stdout")
	}
	if res.Stdout.Reason != "nope" || res.Stdout.AdditionalContext != "extra context" {
		t.Errorf("unexpected stdout: %+v", res.Stdout)
	}
	if res.TimedOut {
		t.Error("TimedOut should be false")
	}
	if res.DurationMs < 0 {
		t.Errorf("DurationMs = %d, want >= 0", res.DurationMs)
	}
}

func TestExecuteHook_GarbageStdoutLeavesStdoutUnset(t *testing.T) {
	t.Parallel()

	def := commandHook(`echo "this is not json"`)
	res := ExecuteHook(context.Background(), def, NewSessionStdin(SessionStart, t.TempDir()))

	if res.Stdout != nil {
		t.Errorf("Stdout should be unset for non-JSON output, got %+v", res.Stdout)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
}

func TestExecuteHook_NonZeroExitCapturesStderr(t *testing.T) {
	t.Parallel()

	def := commandHook(`echo "boom" 1>&2; exit 3`)
	res := ExecuteHook(context.Background(), def, NewSessionStdin(SessionEnd, t.TempDir()))

	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if res.Stderr != "boom" {
		t.Errorf("Stderr = %q, want %q", res.Stderr, "boom")
	}
	if res.TimedOut {
		t.Error("TimedOut should be false")
	}
}

func TestExecuteHook_Timeout(t *testing.T) {
	t.Parallel()

	def := commandHook("sleep 5")
	def.Timeout = 200 // ms

	start := time.Now()
	res := ExecuteHook(context.Background(), def, NewSessionStdin(Stop, t.TempDir()))
	elapsed := time.Since(start)

	if !res.TimedOut {
		t.Error("expected TimedOut=true")
	}
	if res.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1 (normalized from kill)", res.ExitCode)
	}
	if elapsed > 3*time.Second {
		t.Errorf("hook took %v, expected timeout around 200ms", elapsed)
	}
}

func TestExecuteHook_ReceivesRequestOnStdin(t *testing.T) {
	t.Parallel()

	// The hook copies its stdin to stderr so the test can observe the
	// protocol request.
	def := commandHook("cat 1>&2")
	stdin := NewPreToolUseStdin(t.TempDir(), "write_file", map[string]any{"path": "main.go"})
	res := ExecuteHook(context.Background(), def, stdin)

	if res.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, want 0", res.ExitCode)
	}
	for _, want := range []string{`"hook_event_name":"PreToolUse"`, `"tool_name":"write_file"`, `"path":"main.go"`} {
		if !strings.Contains(res.Stderr, want) {
			t.Errorf("stdin payload missing %s: %q", want, res.Stderr)
		}
	}
}

func TestExecuteHook_EventEnvVar(t *testing.T) {
	t.Parallel()

	def := commandHook(`printf '{"reason":"%s"}' "$AGENT_HOOKS_EVENT"`)
	res := ExecuteHook(context.Background(), def, NewSessionStdin(SessionStart, t.TempDir()))

	if res.Stdout == nil || res.Stdout.Reason != "SessionStart" {
		t.Errorf("event env var not passed: %+v", res.Stdout)
	}
}

func TestExecuteHook_RunsInRequestCwd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	def := commandHook("pwd 1>&2")
	res := ExecuteHook(context.Background(), def, NewSessionStdin(SessionStart, dir))

	if res.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, want 0", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, filepath.Base(dir)) {
		t.Errorf("hook did not run in %q: pwd reported %q", dir, res.Stderr)
	}
}

func TestExecuteHook_SpawnFailure(t *testing.T) {
	t.Parallel()

	def := commandHook("echo never")
	stdin := NewSessionStdin(SessionStart, filepath.Join(t.TempDir(), "does", "not", "exist"))
	res := ExecuteHook(context.Background(), def, stdin)

	if res.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", res.ExitCode)
	}
	if res.Stderr == "" {
		t.Error("expected the spawn failure message in Stderr")
	}
	if res.TimedOut {
		t.Error("TimedOut should be false for spawn failures")
	}
}

func TestExecuteHook_HookMayIgnoreStdin(t *testing.T) {
	t.Parallel()

	// A hook that exits without reading its input must still resolve
	// normally; the protocol write is best-effort.
	def := commandHook("exit 0")
	res := ExecuteHook(context.Background(), def, NewSessionStdin(SessionEnd, t.TempDir()))

	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if res.TimedOut {
		t.Error("TimedOut should be false")
	}
}

func TestEffectiveTimeout(t *testing.T) {
	t.Parallel()

	if got := EffectiveTimeout(config.HookDef{}); got != DefaultTimeout {
		t.Errorf("default timeout = %v, want %v", got, DefaultTimeout)
	}
	if got := EffectiveTimeout(config.HookDef{Timeout: 1500}); got != 1500*time.Millisecond {
		t.Errorf("override timeout = %v, want 1.5s", got)
	}
}
