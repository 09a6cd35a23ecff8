package summary

import (
	"fmt"
	"time"
)

const promptTemplate = `Please analyze these meeting notes and create a structured summary. Format your response as a JSON object with this structure:
{
  "title": "Meeting title based on content",
  "date": "%s",
  "duration": "Estimated duration",
  "attendees": ["List of attendees if mentioned"],
  "keyPoints": ["Key discussion points"],
  "actionItems": [{"task": "description", "assignee": "person or '%s'", "deadline": "date or '%s'"}],
  "decisions": ["Key decisions made"],
  "nextSteps": ["Follow-up actions"]
}

Meeting notes: %s`

// Prompt builds the instruction sent to every provider. It is the same for
// all providers; only the transport envelope around it differs.
func Prompt(notes string, now time.Time) string {
	return fmt.Sprintf(promptTemplate, now.Format(DateLayout), Unassigned, NotSpecified, notes)
}
