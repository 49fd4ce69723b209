package answer

import "testing"

func TestParseFollowUpExtraction(t *testing.T) {
	raw := "The average revenue was 40000. Follow Up Questions: ```json [{\"question\":\"Q1\"}]```"

	parsed := Parse(raw)

	if len(parsed.FollowUpQuestions) != 1 {
		t.Fatalf("follow-up count = %d, want 1", len(parsed.FollowUpQuestions))
	}
	if parsed.FollowUpQuestions[0].Question != "Q1" {
		t.Errorf("question = %q, want %q", parsed.FollowUpQuestions[0].Question, "Q1")
	}
	if parsed.Content != "The average revenue was 40000." {
		t.Errorf("content = %q, marker or block not removed", parsed.Content)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantContent   string
		wantFollowUps int
	}{
		{
			name:          "no payload",
			raw:           "Just a plain answer.",
			wantContent:   "Just a plain answer.",
			wantFollowUps: 0,
		},
		{
			name:          "malformed json keeps text",
			raw:           "Answer. ```json [not valid```",
			wantContent:   "Answer. ```json [not valid```",
			wantFollowUps: 0,
		},
		{
			name:          "fenced block without language tag",
			raw:           "Answer.\nFollow-Up Questions:\n```\n[{\"question\":\"Why?\"}]\n```",
			wantContent:   "Answer.",
			wantFollowUps: 1,
		},
		{
			name:          "multiple questions",
			raw:           "Done. Follow Up Questions: ```json [{\"question\":\"A\"},{\"question\":\"B\"}]```",
			wantContent:   "Done.",
			wantFollowUps: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Parse(tt.raw)
			if parsed.Content != tt.wantContent {
				t.Errorf("content = %q, want %q", parsed.Content, tt.wantContent)
			}
			if len(parsed.FollowUpQuestions) != tt.wantFollowUps {
				t.Errorf("follow-ups = %d, want %d", len(parsed.FollowUpQuestions), tt.wantFollowUps)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips markdown emphasis", "**bold** and #heading", "bold and heading"},
		{"keeps currency symbols", "Price: £100 or €90", "Price: £100 or €90"},
		{"keeps newlines and tabs", "a\n\tb", "a\n\tb"},
		{"drops control characters", "a\x00b\x07c", "abc"},
		{"keeps smart quotes", "“quoted” text", "“quoted” text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractQuickInsights(t *testing.T) {
	raw := `Here are the insights you asked for:
[{"title":"Growth","description":"Revenue grew 12%."},{"title":"Churn","description":"Churn fell."}]
Let me know if you need more.`

	items, err := ExtractQuickInsights(raw)
	if err != nil {
		t.Fatalf("ExtractQuickInsights failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("item count = %d, want 2", len(items))
	}
	if items[0].Title != "Growth" {
		t.Errorf("title = %q, want %q", items[0].Title, "Growth")
	}
}

func TestExtractQuickInsightsErrors(t *testing.T) {
	if _, err := ExtractQuickInsights("no array here"); err == nil {
		t.Error("expected error when no array present")
	}
	if _, err := ExtractQuickInsights("[]"); err == nil {
		t.Error("expected error for empty array")
	}
	if _, err := ExtractQuickInsights("[{broken"); err == nil {
		t.Error("expected error for unparsable array")
	}
}
