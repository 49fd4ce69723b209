package answer

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Parsed is the structured view of one generated answer: the visible text
// plus whatever machine-readable payload the model appended.
type Parsed struct {
	Content           string
	FollowUpQuestions []FollowUpQuestion
}

type FollowUpQuestion struct {
	Question string `json:"question"`
}

var (
	fencedArrayRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\[.*?\\])\\s*```")
	markerRe      = regexp.MustCompile(`(?i)[*#\s]*Follow[- ]?Up Questions[:\s]*`)
)

// Parse extracts the follow-up-question list the prompt suffix asked for and
// removes it, together with its introducing marker, from the visible answer.
// A missing or malformed payload is not an error; the list is simply omitted.
func Parse(raw string) *Parsed {
	content := raw
	var followUps []FollowUpQuestion

	if match := fencedArrayRe.FindStringSubmatchIndex(content); match != nil {
		block := content[match[2]:match[3]]
		var parsed []FollowUpQuestion
		if err := json.Unmarshal([]byte(block), &parsed); err == nil {
			followUps = parsed
			content = content[:match[0]] + content[match[1]:]
		}
	}

	content = markerRe.ReplaceAllString(content, " ")
	content = strings.TrimSpace(content)

	return &Parsed{
		Content:           content,
		FollowUpQuestions: followUps,
	}
}
