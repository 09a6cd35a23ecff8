package summary_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/germanamz/minutes/pkg/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 7, 15, 4, 5, 0, time.UTC)

func canonical() summary.Summary {
	return summary.Summary{
		Title:     "Q4 Sync",
		Date:      "1/1/2025",
		Duration:  "30m",
		Attendees: []string{"Sarah", "Mike"},
		KeyPoints: []string{"Q4 on track", "Budget concerns"},
		ActionItems: []summary.ActionItem{
			{Task: "follow up with vendors", Assignee: "Sarah", Deadline: "Friday"},
		},
		Decisions: []string{"Approved $15k for tools"},
		NextSteps: []string{},
	}
}

func TestParse_Structured(t *testing.T) {
	text := `{"title":"Q4 Sync","date":"1/1/2025","duration":"30m","attendees":[],"keyPoints":["Q4 on track"],"actionItems":[{"task":"follow up","assignee":"Sarah","deadline":"Friday"}],"decisions":[],"nextSteps":[]}`

	res := summary.Parse(text, now)

	assert.Equal(t, summary.StrategyStructured, res.Strategy)
	assert.Equal(t, "Q4 Sync", res.Summary.Title)
	assert.Equal(t, []string{"Q4 on track"}, res.Summary.KeyPoints)
	require.Len(t, res.Summary.ActionItems, 1)
	assert.Equal(t, "Sarah", res.Summary.ActionItems[0].Assignee)
}

func TestParse_Idempotent(t *testing.T) {
	want := canonical()

	data, err := json.Marshal(want)
	require.NoError(t, err)

	first := summary.Parse(string(data), now)
	require.Equal(t, summary.StrategyStructured, first.Strategy)
	assert.Equal(t, want, first.Summary)

	again, err := json.Marshal(first.Summary)
	require.NoError(t, err)
	assert.Equal(t, first.Summary, summary.Parse(string(again), now).Summary)
}

func TestParse_StructuredDefaults(t *testing.T) {
	res := summary.Parse(`  {"title":"Standup","actionItems":[{"task":"ship it"},{"task":"review","assignee":"Ana"}]}  `, now)

	require.Equal(t, summary.StrategyStructured, res.Strategy)
	s := res.Summary

	assert.Equal(t, "Standup", s.Title)
	// Scalar fields are trusted as-is.
	assert.Empty(t, s.Date)
	assert.NotNil(t, s.Attendees)
	assert.NotNil(t, s.KeyPoints)
	assert.NotNil(t, s.Decisions)
	assert.NotNil(t, s.NextSteps)
	assert.Equal(t, []summary.ActionItem{
		{Task: "ship it", Assignee: summary.Unassigned, Deadline: summary.NotSpecified},
		{Task: "review", Assignee: "Ana", Deadline: summary.NotSpecified},
	}, s.ActionItems)
}

func TestParse_NullListsBecomeEmpty(t *testing.T) {
	res := summary.Parse(`{"title":"x","attendees":null,"actionItems":null}`, now)

	require.Equal(t, summary.StrategyStructured, res.Strategy)
	data, err := json.Marshal(res.Summary)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"attendees":[]`)
	assert.Contains(t, string(data), `"actionItems":[]`)
}

func TestParse_StructuredLenientTypes(t *testing.T) {
	text := `{"title":"Q4 Sync","date":"1/1/2025","duration":30,"attendees":"Sarah, Mike",` +
		`"keyPoints":["Q4 on track",42,null,true],` +
		`"actionItems":[{"task":"follow up","assignee":"Sarah","deadline":"Friday"},"call vendor",{"task":7}],` +
		`"decisions":{"a":1},"nextSteps":null,"extra":"ignored"}`

	res := summary.Parse(text, now)

	require.Equal(t, summary.StrategyStructured, res.Strategy)
	s := res.Summary
	assert.Equal(t, "Q4 Sync", s.Title)
	assert.Equal(t, "1/1/2025", s.Date)
	assert.Equal(t, "30", s.Duration)
	assert.Equal(t, []string{"Sarah, Mike"}, s.Attendees)
	assert.Equal(t, []string{"Q4 on track", "42", "true"}, s.KeyPoints)
	assert.Equal(t, []summary.ActionItem{
		{Task: "follow up", Assignee: "Sarah", Deadline: "Friday"},
		{Task: "7", Assignee: summary.Unassigned, Deadline: summary.NotSpecified},
	}, s.ActionItems)
	assert.Equal(t, []string{}, s.Decisions)
	assert.Equal(t, []string{}, s.NextSteps)
}

func TestParse_SingleActionItemObject(t *testing.T) {
	res := summary.Parse(`{"title":"x","actionItems":{"task":"ship","assignee":"Ana"}}`, now)

	require.Equal(t, summary.StrategyStructured, res.Strategy)
	assert.Equal(t, []summary.ActionItem{
		{Task: "ship", Assignee: "Ana", Deadline: summary.NotSpecified},
	}, res.Summary.ActionItems)
}

func TestParse_FallbackCases(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"prose", "The meeting went well.\nSarah will follow up."},
		{"wrapped json", "Here is your summary:\n{\"title\":\"x\"}"},
		{"truncated json", `{"title":"x","keyPoints":["a"`},
		{"json array", `["a","b"]`},
		{"json string", `"just a string"`},
		{"json null", `null`},
		{"trailing prose", `{"title":"x"} hope this helps`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := summary.Parse(tt.text, now)
			assert.Equal(t, summary.StrategyFallback, res.Strategy)
			assert.Equal(t, summary.DefaultTitle, res.Summary.Title)
		})
	}
}

func TestFallback_Shape(t *testing.T) {
	s := summary.Parse("\n  first point  \n\n\tsecond point\r\n   \n", now).Summary

	assert.Equal(t, summary.DefaultTitle, s.Title)
	assert.Equal(t, "3/7/2025", s.Date)
	assert.Equal(t, summary.NotSpecified, s.Duration)
	assert.Equal(t, []string{"  first point  ", "\tsecond point"}, s.KeyPoints)
	assert.Equal(t, []string{}, s.Attendees)
	assert.Equal(t, []summary.ActionItem{}, s.ActionItems)
	assert.Equal(t, []string{}, s.Decisions)
	assert.Equal(t, []string{}, s.NextSteps)
}

func TestFallback_KeyPointsLaw(t *testing.T) {
	for n := 0; n <= 9; n++ {
		t.Run(fmt.Sprintf("%d lines", n), func(t *testing.T) {
			var b strings.Builder
			for i := range n {
				fmt.Fprintf(&b, "line %d\n\n", i)
			}

			res := summary.Parse(b.String(), now)

			require.Equal(t, summary.StrategyFallback, res.Strategy)
			assert.Len(t, res.Summary.KeyPoints, min(5, n))
			assert.Empty(t, res.Summary.Attendees)
			assert.Empty(t, res.Summary.ActionItems)
			assert.Empty(t, res.Summary.Decisions)
			assert.Empty(t, res.Summary.NextSteps)
			assert.NotEmpty(t, res.Summary.Title)
			assert.NotEmpty(t, res.Summary.Date)
			assert.NotEmpty(t, res.Summary.Duration)
		})
	}
}

func TestNonBlankLines(t *testing.T) {
	assert.Nil(t, summary.NonBlankLines(""))
	assert.Nil(t, summary.NonBlankLines(" \n\t\n"))
	assert.Equal(t, []string{"a", " b "}, summary.NonBlankLines("a\n\n b \n"))
	assert.Equal(t, []string{"a", "b"}, summary.NonBlankLines("a\r\n\r\nb"))
}

func TestStructured_DoesNotShareInputSlices(t *testing.T) {
	s, ok := summary.Structured(`{"actionItems":[{"task":"t"}]}`)
	require.True(t, ok)

	s.ActionItems[0].Task = "changed"
	s2, _ := summary.Structured(`{"actionItems":[{"task":"t"}]}`)
	assert.Equal(t, "t", s2.ActionItems[0].Task)
}
