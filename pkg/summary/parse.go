package summary

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// maxFallbackPoints caps the key points taken from unstructured output.
const maxFallbackPoints = 5

// Strategy records which step of Parse produced a Summary.
type Strategy string

const (
	StrategyStructured Strategy = "structured"
	StrategyFallback   Strategy = "fallback"
)

// Result is the outcome of Parse.
type Result struct {
	Summary  Summary
	Strategy Strategy
}

// Parse turns model output into a Summary. It first tries the output as a
// JSON object; if that does not work it builds a summary from the first
// non-blank lines. Parse never fails.
func Parse(text string, now time.Time) Result {
	if s, ok := Structured(text); ok {
		return Result{Summary: s, Strategy: StrategyStructured}
	}

	return Result{Summary: Fallback(text, now), Strategy: StrategyFallback}
}

// Structured reads text as a JSON object in the Summary shape. Any object is
// accepted and field values are taken leniently: numbers and booleans become
// their literal text, a scalar in a list field becomes a one-element list, and
// action items that are not objects are skipped. The bool is false when text
// is not a single JSON object.
func Structured(text string) (Summary, bool) {
	trimmed := strings.TrimSpace(text)
	if !gjson.Valid(trimmed) {
		return Summary{}, false
	}

	root := gjson.Parse(trimmed)
	if !root.IsObject() {
		return Summary{}, false
	}

	s := Summary{
		Title:       scalar(root.Get("title")),
		Date:        scalar(root.Get("date")),
		Duration:    scalar(root.Get("duration")),
		Attendees:   list(root.Get("attendees")),
		KeyPoints:   list(root.Get("keyPoints")),
		ActionItems: actionItems(root.Get("actionItems")),
		Decisions:   list(root.Get("decisions")),
		NextSteps:   list(root.Get("nextSteps")),
	}

	return s.normalize(), true
}

// scalar returns the text of a string, number or boolean, the raw JSON of an
// object or array, and "" for null or a missing field.
func scalar(r gjson.Result) string {
	switch r.Type {
	case gjson.Null:
		return ""
	case gjson.JSON:
		return r.Raw
	default:
		return r.String()
	}
}

func list(r gjson.Result) []string {
	switch {
	case !r.Exists() || r.Type == gjson.Null:
		return nil
	case r.IsArray():
		var out []string
		r.ForEach(func(_, v gjson.Result) bool {
			if v.Type != gjson.Null {
				out = append(out, scalar(v))
			}
			return true
		})
		return out
	case r.IsObject():
		return nil
	default:
		if v := scalar(r); v != "" {
			return []string{v}
		}
		return nil
	}
}

func actionItems(r gjson.Result) []ActionItem {
	var elems []gjson.Result
	switch {
	case r.IsArray():
		elems = r.Array()
	case r.IsObject():
		elems = []gjson.Result{r}
	}

	var out []ActionItem
	for _, v := range elems {
		if !v.IsObject() {
			continue
		}
		out = append(out, ActionItem{
			Task:     scalar(v.Get("task")),
			Assignee: scalar(v.Get("assignee")),
			Deadline: scalar(v.Get("deadline")),
		})
	}
	return out
}

// Fallback builds a Summary from unstructured text: a fixed title, today's
// date, and up to five non-blank lines as key points.
func Fallback(text string, now time.Time) Summary {
	lines := NonBlankLines(text)
	if len(lines) > maxFallbackPoints {
		lines = lines[:maxFallbackPoints]
	}

	return Summary{
		Title:     DefaultTitle,
		Date:      now.Format(DateLayout),
		Duration:  NotSpecified,
		KeyPoints: lines,
	}.normalize()
}

// NonBlankLines splits text on newlines and drops lines that are blank after
// trimming. Kept lines are returned as written, minus a trailing carriage
// return.
func NonBlankLines(text string) []string {
	var out []string
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
