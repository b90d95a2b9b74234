// Package ux renders tau's terminal output.
package ux

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/jorge-barreto/tau/internal/catalog"
)

// Out receives all regular output. Tests replace it with a buffer.
var Out io.Writer = color.Output

// ErrOut receives error lines.
var ErrOut io.Writer = color.Error

var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
	green  = color.New(color.FgGreen, color.Bold).SprintFunc()
	red    = color.New(color.FgRed, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// DisableColor turns off color for the rest of the process. Color is
// already off when stdout is not a terminal.
func DisableColor() {
	color.NoColor = true
}

// Error prints the single terminal error line of an invocation.
func Error(err error) {
	fmt.Fprintf(ErrOut, "%s %v\n", red("error:"), err)
}

// Warn prints a non-fatal warning.
func Warn(format string, args ...any) {
	fmt.Fprintf(ErrOut, "%s %s\n", yellow("warning:"), fmt.Sprintf(format, args...))
}

// TaskDone prints a finished task with its wall time in milliseconds.
func TaskDone(name string, elapsed time.Duration) {
	fmt.Fprintf(Out, "%s %d ms\n", cyan(name), elapsed.Milliseconds())
}

// TaskSkipped prints a task whose command line expanded to nothing.
func TaskSkipped(name string) {
	fmt.Fprintf(Out, "%s %s\n", cyan(name), dim("(empty command, skipped)"))
}

// TaskOutput prints captured stdout, trimmed. Empty output prints nothing.
func TaskOutput(stdout string) {
	if s := strings.TrimSpace(stdout); s != "" {
		fmt.Fprintf(Out, "\n%s\n\n", s)
	}
}

// TaskFailed prints a non-zero exit and the task's stderr.
func TaskFailed(name string, code int, stderr string) {
	fmt.Fprintf(Out, "\n%s %s exited with status %d\n", red("Error:"), name, code)
	if s := strings.TrimSpace(stderr); s != "" {
		fmt.Fprintf(Out, "%s\n", s)
	}
	fmt.Fprintln(Out)
}

// RunSummary prints the closing line of a command run.
func RunSummary(command string, ran, failed int, elapsed time.Duration) {
	if failed == 0 {
		fmt.Fprintf(Out, "%s %s: %d task(s) in %s\n", green("✓"), command, ran, elapsed.Round(time.Millisecond))
		return
	}
	fmt.Fprintf(Out, "%s %s: %d of %d task(s) failed in %s\n", red("✗"), command, failed, ran, elapsed.Round(time.Millisecond))
}

// Created prints the new-project confirmation.
func Created(projectName, path string) {
	fmt.Fprintf(Out, "   %s %s (%s)\n", green("New project created:"), projectName, path)
}

// Registered prints a template registration confirmation.
func Registered(name, path string) {
	fmt.Fprintf(Out, "   %s %s (%s)\n", green("Template added:"), name, path)
}

// Paths prints the application directory layout.
func Paths(config, catalogPath, templates string) {
	fmt.Fprintf(Out, "\nConfig: %s\nCommands: %s\nTemplates: %s\n",
		yellow(fmt.Sprintf("%q", config)),
		yellow(fmt.Sprintf("%q", catalogPath)),
		yellow(fmt.Sprintf("%q", templates)))
}

// TemplateRow is one line of `tau list`.
type TemplateRow struct {
	Name        string
	Description string
	Size        int64
	Routes      []string
}

// Templates prints the known templates with their asset size, and their
// routes when showRoutes is set.
func Templates(rows []TemplateRow, showRoutes bool) {
	fmt.Fprintln(Out)
	if len(rows) == 0 {
		fmt.Fprintf(Out, "  %s\n", dim("(no templates)"))
		return
	}
	for _, r := range rows {
		size := "?"
		if r.Size >= 0 {
			size = humanize.IBytes(uint64(r.Size))
		}
		line := fmt.Sprintf("%12s %10s", cyan(r.Name), size)
		if r.Description != "" {
			line += "  " + dim(r.Description)
		}
		fmt.Fprintln(Out, line)
		if !showRoutes {
			continue
		}
		for _, p := range r.Routes {
			fmt.Fprintf(Out, "%14s %s\n", "", p)
		}
	}
}

// CatalogLabels prints each catalog label with its group count.
func CatalogLabels(c catalog.Catalog) {
	fmt.Fprintln(Out)
	for _, label := range c.Labels() {
		groups, _ := c.Get(label)
		fmt.Fprintf(Out, "%s %s\n", bold(label), cyan(fmt.Sprintf("[%d]", len(groups))))
	}
}

// CatalogGroups prints the groups of one catalog label.
func CatalogGroups(groups []catalog.Group) {
	for _, g := range groups {
		fmt.Fprintf(Out, "\n>> %s\n", bold(g.Name))
		if g.Description != "" {
			fmt.Fprintln(Out, dim("// "+g.Description))
		}
		fmt.Fprintln(Out)
		for _, c := range g.Commands {
			fmt.Fprintln(Out, cyan(c))
		}
	}
}

// Check prints the result of comparing a project with its template.
func Check(template, dir string, missing []string) {
	if len(missing) == 0 {
		fmt.Fprintf(Out, "%s %s matches %s\n", green("✓"), dir, bold(template))
		return
	}
	fmt.Fprintf(Out, "%s %s does not match %s, missing:\n", red("✗"), dir, bold(template))
	for _, m := range missing {
		fmt.Fprintf(Out, "    %s\n", m)
	}
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return isTerminal(os.Stdout)
}
