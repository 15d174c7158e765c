// ABOUTME: Subprocess executor for a single hook under the stdin/stdout protocol
// ABOUTME: Timeout-bound, never returns an error; every failure becomes a result

package hooks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/mauromedda/agent-hooks-go/internal/config"
	"github.com/mauromedda/agent-hooks-go/internal/log"
)

// DefaultTimeout bounds a hook execution when its definition carries no
// timeout override.
const DefaultTimeout = 10 * time.Second

// EventEnvVar is the environment variable carrying the firing event name
// into the hook subprocess.
const EventEnvVar = "AGENT_HOOKS_EVENT"

// EffectiveTimeout returns the hook's own timeout override, else the default.
func EffectiveTimeout(def config.HookDef) time.Duration {
	if def.Timeout > 0 {
		return time.Duration(def.Timeout) * time.Millisecond
	}
	return DefaultTimeout
}

// ExecuteHook runs one hook command as a subprocess through the system shell
// with the request piped to stdin as JSON. It never returns an error: spawn
// failures resolve to exit code 1 with the failure message in Stderr, and a
// timeout kills the process group and sets TimedOut. The stdin write is
// best-effort; a hook that never reads its input is still awaited to
// completion.
func ExecuteHook(ctx context.Context, def config.HookDef, stdin HookStdin) HookResult {
	start := time.Now()
	result := HookResult{Hook: def}

	timeout := EffectiveTimeout(def)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", def.Command)
	cmd.Dir = stdin.Cwd
	cmd.Env = append(os.Environ(), EventEnvVar+"="+string(stdin.HookEventName))
	setProcGroup(cmd)
	cmd.Cancel = func() error {
		return killProcGroup(cmd)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// The pipe must exist before Start; the write happens after, so a hook
	// that exits without reading cannot wedge the spawn.
	pipe, pipeErr := cmd.StdinPipe()
	if pipeErr != nil {
		log.Debug("hook %q: stdin pipe: %v", def.Command, pipeErr)
	}

	if err := cmd.Start(); err != nil {
		result.ExitCode = 1
		result.Stderr = err.Error()
		result.DurationMs = time.Since(start).Milliseconds()
		return result
	}

	if pipeErr == nil {
		go func() {
			defer pipe.Close()
			payload, err := json.Marshal(stdin)
			if err != nil {
				log.Debug("hook %q: marshal stdin: %v", def.Command, err)
				return
			}
			if _, err := pipe.Write(payload); err != nil {
				// Fire-and-forget: the hook may legitimately ignore stdin.
				log.Debug("hook %q: stdin write: %v", def.Command, err)
			}
		}()
	}

	waitErr := cmd.Wait()

	// CommandContext guarantees a single resolution: either the process
	// closed on its own or the deadline fired Cancel and Wait observed the
	// kill. ctx.Err distinguishes the two after the fact.
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
	}

	exitCode := 0
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = 1
			if result.Stderr == "" {
				result.Stderr = waitErr.Error()
			}
		}
	}
	// Signal-killed processes report no exit code; normalize to 1.
	if exitCode < 0 {
		exitCode = 1
	}
	result.ExitCode = exitCode

	if out := strings.TrimSpace(stdout.String()); out != "" {
		var parsed HookStdout
		if err := json.Unmarshal([]byte(out), &parsed); err == nil {
			result.Stdout = &parsed
		} else {
			log.Debug("hook %q: non-JSON stdout ignored: %v", def.Command, err)
		}
	}
	if errText := strings.TrimSpace(stderr.String()); errText != "" {
		result.Stderr = errText
	}

	result.DurationMs = time.Since(start).Milliseconds()
	return result
}
