package answer

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// QuickInsightItem is one entry of the batch-insight generation output.
type QuickInsightItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// The model wraps the array in prose more often than not; grab the outermost
// bracket-delimited block and parse just that.
var bracketArrayRe = regexp.MustCompile(`(?s)\[.*\]`)

// ExtractQuickInsights parses the bracket-delimited JSON array out of a raw
// batch-insight answer, tolerating surrounding prose and code fences.
func ExtractQuickInsights(raw string) ([]QuickInsightItem, error) {
	block := bracketArrayRe.FindString(raw)
	if block == "" {
		return nil, fmt.Errorf("no insight array found in generated output")
	}

	var items []QuickInsightItem
	if err := json.Unmarshal([]byte(block), &items); err != nil {
		return nil, fmt.Errorf("parse insight array: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("insight array is empty")
	}
	return items, nil
}
