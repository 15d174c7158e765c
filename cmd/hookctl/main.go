// ABOUTME: CLI entry point for hookctl: fire, list, and validate hooks
// ABOUTME: Dispatches subcommands; `fire` exits 2 when a blocking hook vetoes

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mauromedda/agent-hooks-go/internal/config"
	"github.com/mauromedda/agent-hooks-go/internal/hooks"
	hlog "github.com/mauromedda/agent-hooks-go/internal/log"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errBlocked signals that a blocking hook vetoed the event; main translates
// it into exit code 2 so hookctl composes in shell scripts the way hooks do.
var errBlocked = errors.New("blocked by hook")

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "fire":
		err = runFire(os.Args[2:])
	case "list":
		err = runList(os.Args[2:])
	case "validate":
		err = runValidate(os.Args[2:])
	case "version", "--version":
		fmt.Printf("hookctl %s (%s) built %s\n", version, commit, date)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		if errors.Is(err, errBlocked) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `hookctl - run and inspect agent lifecycle hooks

Usage:
  hookctl fire <event> [flags]     dispatch one lifecycle event
  hookctl list [flags]             show the effective merged hook config
  hookctl validate [files] [flags] strictly validate hooks files
  hookctl version                  show version

Fire flags:
  --project dir   project root (default ".")
  --payload file  JSON or YAML file with the event payload
  --tool name     tool name for matcher filtering (PreToolUse/PostToolUse)
  --cwd dir       working directory passed to hooks (default project root)
  --dry-run       show which hooks would run without executing anything
  --query expr    jq expression applied to the JSON result
  --no-color      disable styled output
  --verbose       debug logging

Validate flags:
  --project dir   project root (default ".")
  --watch         re-validate whenever a hooks file changes
`)
}

// fireOptions carries the parsed `fire` flags.
type fireOptions struct {
	project string
	payload string
	tool    string
	cwd     string
	dryRun  bool
	query   string
	noColor bool
	verbose bool
}

func runFire(args []string) error {
	event, rest := splitEventArg(args)
	opts, err := parseFireFlags(rest)
	if err != nil {
		return err
	}
	if opts.verbose {
		hlog.SetLevel(hlog.LevelDebug)
	}
	if event == "" {
		return fmt.Errorf("fire: missing event name (one of %v)", config.EventNames())
	}
	hookEvent := hooks.HookEvent(event)
	if !hookEvent.IsValid() {
		return fmt.Errorf("fire: unknown event %q (one of %v)", event, config.EventNames())
	}

	stdin, err := buildStdin(hookEvent, opts)
	if err != nil {
		return err
	}

	cfg := config.LoadHooksConfig(opts.project)
	defs := cfg[event]
	matchCtx := hooks.MatchContext{ToolName: stdin.ToolName}

	out := newRenderer(os.Stdout, opts.noColor)

	if opts.dryRun {
		out.renderDryRun(hookEvent, defs, matchCtx)
		return nil
	}

	res := hooks.RunHooksForEvent(context.Background(), defs, stdin, matchCtx)

	if opts.query != "" {
		text, err := applyQuery(res, opts.query)
		if err != nil {
			return err
		}
		fmt.Println(text)
	} else {
		out.renderResult(hookEvent, res)
	}

	if !res.Allowed {
		return errBlocked
	}
	return nil
}

func runList(args []string) error {
	fs := newFlagSet("list")
	project := fs.String("project", ".", "project root")
	noColor := fs.Bool("no-color", false, "disable styled output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.LoadHooksConfig(*project)
	newRenderer(os.Stdout, *noColor).renderList(cfg)
	return nil
}

func runValidate(args []string) error {
	files, rest := splitFileArgs(args)
	fs := newFlagSet("validate")
	project := fs.String("project", ".", "project root")
	watch := fs.Bool("watch", false, "re-validate on change")
	noColor := fs.Bool("no-color", false, "disable styled output")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	if len(files) == 0 {
		files = []string{config.GlobalHooksFile(), config.ProjectHooksFile(*project)}
	}

	out := newRenderer(os.Stdout, *noColor)
	failed := validateFiles(out, files)

	if !*watch {
		if failed {
			return fmt.Errorf("validation failed")
		}
		return nil
	}

	w := config.NewWatcher(files, func(path string) {
		fmt.Println()
		hlog.Info("change detected: %s", path)
		validateFiles(out, files)
	})
	if err := w.Start(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	fmt.Fprintln(os.Stderr, "watching for changes (ctrl-c to stop)")
	<-ctx.Done()
	return nil
}

func validateFiles(out *renderer, files []string) bool {
	failed := false
	for _, f := range files {
		problems, err := config.ValidateHooksFile(f)
		if err != nil {
			out.renderValidation(f, []string{err.Error()})
			failed = true
			continue
		}
		out.renderValidation(f, problems)
		if len(problems) > 0 {
			failed = true
		}
	}
	return failed
}
