package assistant

import (
	"context"
)

type createAssistantRequest struct {
	Name          string         `json:"name"`
	Instructions  string         `json:"instructions"`
	Model         string         `json:"model"`
	Tools         []toolSpec     `json:"tools,omitempty"`
	ToolResources *toolResources `json:"tool_resources,omitempty"`
}

type toolSpec struct {
	Type string `json:"type"`
}

type toolResources struct {
	FileSearch *fileSearchResources `json:"file_search,omitempty"`
}

type fileSearchResources struct {
	VectorStoreIds []string `json:"vector_store_ids"`
}

type idResponse struct {
	Id string `json:"id"`
}

// CreateAssistant provisions one capability handle. tool is "file_search"
// or "code_interpreter"; vectorStoreId may be empty for non-retrieval tools.
func (c *Client) CreateAssistant(ctx context.Context, name, instructions, tool, vectorStoreId string) (string, error) {
	req := createAssistantRequest{
		Name:         name,
		Instructions: instructions,
		Model:        c.Model,
		Tools:        []toolSpec{{Type: tool}},
	}
	if vectorStoreId != "" {
		req.ToolResources = &toolResources{
			FileSearch: &fileSearchResources{VectorStoreIds: []string{vectorStoreId}},
		}
	}

	var resp idResponse
	if err := c.doJSON(ctx, "POST", "/assistants", req, &resp); err != nil {
		return "", err
	}
	return resp.Id, nil
}

// CreateVectorStore provisions the per-account corpus.
func (c *Client) CreateVectorStore(ctx context.Context, name string) (string, error) {
	var resp idResponse
	payload := map[string]string{"name": name}
	if err := c.doJSON(ctx, "POST", "/vector_stores", payload, &resp); err != nil {
		return "", err
	}
	return resp.Id, nil
}
