// ABOUTME: Subcommand flag parsing helpers using the stdlib flag package
// ABOUTME: Positional arguments (event name, file paths) come before flags

package main

import (
	"flag"
	"strings"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return fs
}

func parseFireFlags(args []string) (fireOptions, error) {
	var opts fireOptions
	fs := newFlagSet("fire")
	fs.StringVar(&opts.project, "project", ".", "project root")
	fs.StringVar(&opts.payload, "payload", "", "JSON or YAML payload file")
	fs.StringVar(&opts.tool, "tool", "", "tool name for matcher filtering")
	fs.StringVar(&opts.cwd, "cwd", "", "working directory passed to hooks")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "show matched hooks without executing")
	fs.StringVar(&opts.query, "query", "", "jq expression applied to the result")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable styled output")
	fs.BoolVar(&opts.verbose, "verbose", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

// splitEventArg peels a leading positional event name off the argument list.
func splitEventArg(args []string) (string, []string) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return args[0], args[1:]
	}
	return "", args
}

// splitFileArgs peels leading positional file paths off the argument list.
func splitFileArgs(args []string) ([]string, []string) {
	var files []string
	for len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		files = append(files, args[0])
		args = args[1:]
	}
	return files, args
}
