package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/germanamz/minutes/pkg/summary"
)

// Output formats.
const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

const wordWrap = 100

// writeSummary writes s to w in the given format. Markdown is rendered with
// glamour when w is a terminal and written as-is otherwise.
func writeSummary(w io.Writer, s summary.Summary, format string, tty bool) error {
	var out string

	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
		out = string(data) + "\n"
	default:
		out = summaryMarkdown(s)
		if tty {
			out = renderMarkdown(out)
		}
	}

	_, err := io.WriteString(w, out)
	return err
}

// summaryMarkdown lays out s as a markdown document. Empty sections are
// omitted.
func summaryMarkdown(s summary.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", s.Title)

	var meta []string
	if s.Date != "" {
		meta = append(meta, "**Date:** "+s.Date)
	}
	if s.Duration != "" {
		meta = append(meta, "**Duration:** "+s.Duration)
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, " · "))
		b.WriteString("\n\n")
	}

	writeList(&b, "Attendees", s.Attendees)
	writeList(&b, "Key Points", s.KeyPoints)

	if len(s.ActionItems) > 0 {
		b.WriteString("## Action Items\n\n")
		for _, a := range s.ActionItems {
			fmt.Fprintf(&b, "- [ ] %s (**%s**, due %s)\n", a.Task, a.Assignee, a.Deadline)
		}
		b.WriteString("\n")
	}

	writeList(&b, "Decisions", s.Decisions)
	writeList(&b, "Next Steps", s.NextSteps)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}

// renderMarkdown converts markdown text to terminal-formatted output. Falls
// back to plain text if the renderer is unavailable.
func renderMarkdown(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return text
	}

	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return out
}
