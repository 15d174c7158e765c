// ABOUTME: Tests for the leveled logging package
// ABOUTME: Validates level filtering and output redirection

package log

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestDefaultLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	SetLevel(slog.LevelInfo)
	if GetLevel() != slog.LevelInfo {
		t.Errorf("expected LevelInfo, got %v", GetLevel())
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetLevel(LevelInfo)
	Debug("this should be suppressed: %s", "test")

	if buf.Len() != 0 {
		t.Errorf("debug output not suppressed at info level: %q", buf.String())
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetLevel(LevelDebug)
	Debug("this should emit: %s", "test")

	if !strings.Contains(buf.String(), "[DEBUG] this should emit: test") {
		t.Errorf("unexpected debug output: %q", buf.String())
	}
}

func TestAllLevels(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetLevel(LevelDebug)
	Debug("debug: %d", 1)
	Info("info: %d", 2)
	Warn("warn: %d", 3)
	Error("error: %d", 4)

	for _, want := range []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %s: %q", want, buf.String())
		}
	}
}
