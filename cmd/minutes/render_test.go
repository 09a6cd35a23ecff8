package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germanamz/minutes/pkg/summary"
)

func sampleSummary() summary.Summary {
	return summary.Summary{
		Title:     "Q4 Sync",
		Date:      "1/1/2025",
		Duration:  "30m",
		Attendees: []string{"Sarah", "Mike"},
		KeyPoints: []string{"Q4 on track"},
		ActionItems: []summary.ActionItem{
			{Task: "follow up", Assignee: "Sarah", Deadline: "Friday"},
		},
		Decisions: []string{},
		NextSteps: []string{},
	}
}

func TestSummaryMarkdown(t *testing.T) {
	md := summaryMarkdown(sampleSummary())

	assert.Equal(t, `# Q4 Sync

**Date:** 1/1/2025 · **Duration:** 30m

## Attendees

- Sarah
- Mike

## Key Points

- Q4 on track

## Action Items

- [ ] follow up (**Sarah**, due Friday)
`, md)
}

func TestSummaryMarkdown_OmitsEmptySections(t *testing.T) {
	md := summaryMarkdown(summary.Summary{Title: "Standup"})

	assert.Equal(t, "# Standup\n", md)
}

func TestWriteSummary_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSummary(&buf, sampleSummary(), formatJSON, false))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Q4 Sync", got["title"])
	assert.Equal(t, []any{}, got["decisions"])
	assert.Contains(t, got, "actionItems")
}

func TestWriteSummary_PlainMarkdownWhenNotTTY(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSummary(&buf, sampleSummary(), formatMarkdown, false))

	assert.Equal(t, summaryMarkdown(sampleSummary()), buf.String())
}

func TestWriteSummary_RenderedMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSummary(&buf, sampleSummary(), formatMarkdown, true))

	assert.Contains(t, buf.String(), "Q4 Sync")
	assert.Contains(t, buf.String(), "follow up")
}
