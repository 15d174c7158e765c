// ABOUTME: Styled terminal rendering of dispatch results, listings, and validation
// ABOUTME: Styling drops to plain text when stdout is not a TTY or --no-color is set

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mauromedda/agent-hooks-go/internal/config"
	"github.com/mauromedda/agent-hooks-go/internal/hooks"
)

type renderer struct {
	w     io.Writer
	ok    lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	dim   lipgloss.Style
	title lipgloss.Style
}

func newRenderer(w io.Writer, noColor bool) *renderer {
	styled := !noColor && term.IsTerminal(int(os.Stdout.Fd()))
	style := func(s lipgloss.Style) lipgloss.Style {
		if styled {
			return s
		}
		return lipgloss.NewStyle()
	}
	return &renderer{
		w:     w,
		ok:    style(lipgloss.NewStyle().Foreground(lipgloss.Color("2"))),
		warn:  style(lipgloss.NewStyle().Foreground(lipgloss.Color("3"))),
		fail:  style(lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)),
		dim:   style(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))),
		title: style(lipgloss.NewStyle().Bold(true)),
	}
}

func (r *renderer) renderResult(event hooks.HookEvent, res hooks.HookEventResult) {
	fmt.Fprintln(r.w, r.title.Render(string(event)))

	for _, hr := range res.Results {
		status := r.ok.Render(fmt.Sprintf("exit %d", hr.ExitCode))
		if hr.TimedOut {
			status = r.fail.Render("timed out")
		} else if hr.ExitCode != 0 {
			status = r.warn.Render(fmt.Sprintf("exit %d", hr.ExitCode))
		}
		fmt.Fprintf(r.w, "  %s  %s %s\n", status, hr.Hook.Command, r.dim.Render(fmt.Sprintf("(%dms, %s)", hr.DurationMs, hr.Hook.Source)))
	}
	if len(res.Results) == 0 {
		fmt.Fprintln(r.w, r.dim.Render("  no hooks matched"))
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(r.w, "  %s %s\n", r.warn.Render("warning:"), w)
	}

	if res.AdditionalContext != "" {
		fmt.Fprintln(r.w, r.title.Render("additional context:"))
		for _, line := range strings.Split(res.AdditionalContext, "\n") {
			fmt.Fprintf(r.w, "  %s\n", line)
		}
	}

	if res.Allowed {
		fmt.Fprintln(r.w, r.ok.Render("allowed"))
	} else {
		fmt.Fprintf(r.w, "%s %s\n", r.fail.Render("blocked:"), res.BlockReason)
	}
}

func (r *renderer) renderDryRun(event hooks.HookEvent, defs []config.HookDef, ctx hooks.MatchContext) {
	fmt.Fprintln(r.w, r.title.Render(fmt.Sprintf("%s (dry run)", event)))
	matched := 0
	for _, def := range defs {
		if !hooks.Matches(def, ctx) {
			continue
		}
		matched++
		fmt.Fprintf(r.w, "  %d. %s %s\n", matched, def.Command,
			r.dim.Render(fmt.Sprintf("(timeout %s, %s)", hooks.EffectiveTimeout(def), def.Source)))
	}
	if matched == 0 {
		fmt.Fprintln(r.w, r.dim.Render("  nothing would run"))
	}
}

func (r *renderer) renderList(cfg config.HooksConfig) {
	empty := true
	for _, event := range config.EventNames() {
		defs := cfg[event]
		if len(defs) == 0 {
			continue
		}
		empty = false
		fmt.Fprintln(r.w, r.title.Render(event))
		for _, def := range defs {
			detail := []string{string(def.Source)}
			if def.Matcher != nil && def.Matcher.ToolName != "" {
				detail = append(detail, "matcher "+def.Matcher.ToolName)
			}
			if def.Timeout > 0 {
				detail = append(detail, fmt.Sprintf("timeout %dms", def.Timeout))
			}
			fmt.Fprintf(r.w, "  %s %s\n", def.Command, r.dim.Render("("+strings.Join(detail, ", ")+")"))
			if def.Description != "" {
				fmt.Fprintf(r.w, "    %s\n", r.dim.Render(def.Description))
			}
		}
	}
	if empty {
		fmt.Fprintln(r.w, r.dim.Render("no hooks configured"))
	}
}

func (r *renderer) renderValidation(file string, problems []string) {
	if len(problems) == 0 {
		fmt.Fprintf(r.w, "%s %s\n", r.ok.Render("ok"), file)
		return
	}
	fmt.Fprintf(r.w, "%s %s\n", r.fail.Render("invalid"), file)
	for _, p := range problems {
		fmt.Fprintf(r.w, "  %s\n", p)
	}
}
