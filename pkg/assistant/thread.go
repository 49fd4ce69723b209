package assistant

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// RunResult is the fully assembled output of one streamed generation run.
// Nothing is delivered to the caller until the stream signals completion.
type RunResult struct {
	Text         string
	CitedFileIds []string
}

func (c *Client) CreateThread(ctx context.Context) (string, error) {
	var resp idResponse
	if err := c.doJSON(ctx, "POST", "/threads", map[string]interface{}{}, &resp); err != nil {
		return "", err
	}
	return resp.Id, nil
}

func (c *Client) DeleteThread(ctx context.Context, threadId string) error {
	return c.doJSON(ctx, "DELETE", "/threads/"+threadId, nil, nil)
}

// AddMessage appends a user message to the thread.
func (c *Client) AddMessage(ctx context.Context, threadId, content string) error {
	payload := map[string]string{
		"role":    "user",
		"content": content,
	}
	return c.doJSON(ctx, "POST", fmt.Sprintf("/threads/%s/messages", threadId), payload, nil)
}

// --- Streaming run ---

type messageContent struct {
	Type string `json:"type"`
	Text struct {
		Value       string `json:"value"`
		Annotations []struct {
			Type         string `json:"type"`
			FileCitation struct {
				FileId string `json:"file_id"`
			} `json:"file_citation"`
		} `json:"annotations"`
	} `json:"text"`
}

type messageDeltaEvent struct {
	Delta struct {
		Content []messageContent `json:"content"`
	} `json:"delta"`
}

type messageCompletedEvent struct {
	Content []messageContent `json:"content"`
}

// StreamRun starts a run on the thread and accumulates streamed text chunks
// until the stream completes. Citations come from the annotations of the
// final message.
func (c *Client) StreamRun(ctx context.Context, threadId, assistantId string) (*RunResult, error) {
	payload := map[string]interface{}{
		"assistant_id": assistantId,
		"stream":       true,
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := c.newRequest(ctx, "POST", fmt.Sprintf("/threads/%s/runs", threadId), strings.NewReader(string(payloadBytes)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("run request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("run error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	return c.consumeStream(resp.Body)
}

func (c *Client) consumeStream(body io.Reader) (*RunResult, error) {
	var answer strings.Builder
	var citations []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var event string
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "event: ") {
			event = strings.TrimPrefix(line, "event: ")
			continue
		}
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := strings.TrimPrefix(line, "data: ")
		if data == "[DONE]" {
			break
		}

		switch event {
		case "thread.message.delta":
			var delta messageDeltaEvent
			if err := json.Unmarshal([]byte(data), &delta); err != nil {
				continue // tolerate malformed frames, keep accumulating
			}
			for _, content := range delta.Delta.Content {
				answer.WriteString(content.Text.Value)
			}

		case "thread.message.completed":
			var completed messageCompletedEvent
			if err := json.Unmarshal([]byte(data), &completed); err != nil {
				continue
			}
			for _, content := range completed.Content {
				for _, ann := range content.Text.Annotations {
					if ann.Type != "file_citation" || ann.FileCitation.FileId == "" {
						continue
					}
					if !seen[ann.FileCitation.FileId] {
						seen[ann.FileCitation.FileId] = true
						citations = append(citations, ann.FileCitation.FileId)
					}
				}
			}

		case "thread.run.failed":
			return nil, fmt.Errorf("generation run failed: %s", data)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stream: %w", err)
	}

	if answer.Len() == 0 {
		return nil, fmt.Errorf("generation stream produced no content")
	}

	return &RunResult{
		Text:         answer.String(),
		CitedFileIds: citations,
	}, nil
}

// --- One-shot completion (no thread) ---

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends a single prompt through the plain completion endpoint.
// Used for auxiliary generations (conversation titles) that do not belong
// to any thread.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	req := chatCompletionRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	var resp chatCompletionResponse
	if err := c.doJSON(ctx, "POST", "/chat/completions", req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
