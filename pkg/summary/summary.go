// Package summary defines the canonical meeting summary, the prompt that asks
// a model to produce it, and the parser that turns model output into one.
package summary

// Sentinels used when the model (or the fallback) has no value.
const (
	DefaultTitle = "Meeting Summary"
	Unassigned   = "Unassigned"
	NotSpecified = "Not specified"
)

// DateLayout formats dates as month/day/year without padding (e.g. 1/2/2025).
const DateLayout = "1/2/2006"

// ActionItem is one follow-up task.
type ActionItem struct {
	Task     string `json:"task"`
	Assignee string `json:"assignee"`
	Deadline string `json:"deadline"`
}

// Summary is the provider-independent result of one summarization. List
// fields are never nil once a Summary leaves this package.
type Summary struct {
	Title       string       `json:"title"`
	Date        string       `json:"date"`
	Duration    string       `json:"duration"`
	Attendees   []string     `json:"attendees"`
	KeyPoints   []string     `json:"keyPoints"`
	ActionItems []ActionItem `json:"actionItems"`
	Decisions   []string     `json:"decisions"`
	NextSteps   []string     `json:"nextSteps"`
}

// normalize replaces nil lists with empty ones and fills action item
// sentinels. It returns a new value and leaves shared slices untouched.
func (s Summary) normalize() Summary {
	s.Attendees = orEmpty(s.Attendees)
	s.KeyPoints = orEmpty(s.KeyPoints)
	s.Decisions = orEmpty(s.Decisions)
	s.NextSteps = orEmpty(s.NextSteps)

	items := make([]ActionItem, len(s.ActionItems))
	for i, it := range s.ActionItems {
		if it.Assignee == "" {
			it.Assignee = Unassigned
		}
		if it.Deadline == "" {
			it.Deadline = NotSpecified
		}
		items[i] = it
	}
	s.ActionItems = items

	return s
}

func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
