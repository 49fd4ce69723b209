package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"time"
)

type FileMetadata struct {
	Id        string
	Filename  string
	SizeBytes int64
	CreatedAt time.Time
}

type fileObject struct {
	Id        string `json:"id"`
	Filename  string `json:"filename"`
	Bytes     int64  `json:"bytes"`
	CreatedAt int64  `json:"created_at"`
}

type vectorStoreFile struct {
	Id     string `json:"id"`
	Status string `json:"status"`
}

type listResponse struct {
	Data    []vectorStoreFile `json:"data"`
	HasMore bool              `json:"has_more"`
}

// UploadFile pushes raw document bytes to the file endpoint and returns the
// issued file id. A fresh id is assigned on every call; the API does not
// deduplicate by content.
func (c *Client) UploadFile(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("purpose", "assistants"); err != nil {
		return "", fmt.Errorf("write purpose field: %w", err)
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("write file payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := c.newRequest(ctx, "POST", "/files", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("file upload failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("file upload error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var file fileObject
	if err := json.Unmarshal(bodyBytes, &file); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	return file.Id, nil
}

// AttachFile adds an uploaded file to a vector store and blocks until
// indexing completes or fails.
func (c *Client) AttachFile(ctx context.Context, vectorStoreId, fileId string) error {
	payload := map[string]string{"file_id": fileId}
	var attached vectorStoreFile
	path := fmt.Sprintf("/vector_stores/%s/files", vectorStoreId)
	if err := c.doJSON(ctx, "POST", path, payload, &attached); err != nil {
		return err
	}

	// Poll until the store reports a terminal status
	statusPath := fmt.Sprintf("/vector_stores/%s/files/%s", vectorStoreId, fileId)
	for {
		var current vectorStoreFile
		if err := c.doJSON(ctx, "GET", statusPath, nil, &current); err != nil {
			return err
		}
		switch current.Status {
		case "completed":
			return nil
		case "failed", "cancelled":
			return fmt.Errorf("indexing of file %s ended with status %q", fileId, current.Status)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
}

// ListVectorStoreFiles returns the ids of every file in the store. The API
// pages at 100 entries; the cursor is followed until has_more goes false, so
// callers always see the full membership.
func (c *Client) ListVectorStoreFiles(ctx context.Context, vectorStoreId string) ([]string, error) {
	var ids []string
	after := ""
	for {
		path := fmt.Sprintf("/vector_stores/%s/files?limit=100", vectorStoreId)
		if after != "" {
			path += "&after=" + after
		}
		var resp listResponse
		if err := c.doJSON(ctx, "GET", path, nil, &resp); err != nil {
			return nil, err
		}
		for _, f := range resp.Data {
			ids = append(ids, f.Id)
		}
		if !resp.HasMore || len(resp.Data) == 0 {
			break
		}
		after = resp.Data[len(resp.Data)-1].Id
	}
	return ids, nil
}

// DetachFile removes a file from the vector store and deletes the backing
// file object.
func (c *Client) DetachFile(ctx context.Context, vectorStoreId, fileId string) error {
	path := fmt.Sprintf("/vector_stores/%s/files/%s", vectorStoreId, fileId)
	if err := c.doJSON(ctx, "DELETE", path, nil, nil); err != nil {
		return err
	}
	return c.doJSON(ctx, "DELETE", "/files/"+fileId, nil, nil)
}

func (c *Client) FetchFileMetadata(ctx context.Context, fileId string) (*FileMetadata, error) {
	var file fileObject
	if err := c.doJSON(ctx, "GET", "/files/"+fileId, nil, &file); err != nil {
		return nil, err
	}
	return &FileMetadata{
		Id:        file.Id,
		Filename:  file.Filename,
		SizeBytes: file.Bytes,
		CreatedAt: time.Unix(file.CreatedAt, 0),
	}, nil
}
