package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

// A store holding more files than one page must be listed in full, with the
// after cursor advanced page by page.
func TestListVectorStoreFilesFollowsPagination(t *testing.T) {
	const total = 150

	fileId := func(i int) string { return fmt.Sprintf("file-%03d", i) }

	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
		if err != nil || limit <= 0 {
			t.Errorf("missing or bad limit parameter: %q", r.URL.RawQuery)
			limit = 100
		}

		start := 0
		if after := r.URL.Query().Get("after"); after != "" {
			for i := 0; i < total; i++ {
				if fileId(i) == after {
					start = i + 1
					break
				}
			}
		}
		end := start + limit
		if end > total {
			end = total
		}

		page := make([]map[string]string, 0, end-start)
		for i := start; i < end; i++ {
			page = append(page, map[string]string{"id": fileId(i), "status": "completed"})
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data":     page,
			"has_more": end < total,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "test-model", 0)
	ids, err := client.ListVectorStoreFiles(context.Background(), "vs-1")
	if err != nil {
		t.Fatalf("ListVectorStoreFiles failed: %v", err)
	}

	if len(ids) != total {
		t.Fatalf("listed %d of %d members", len(ids), total)
	}
	if requests < 2 {
		t.Errorf("requests = %d, expected the cursor to be followed across pages", requests)
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate id %s in listing", id)
		}
		seen[id] = true
	}
	if ids[0] != fileId(0) || ids[total-1] != fileId(total-1) {
		t.Errorf("listing out of order: first %s, last %s", ids[0], ids[len(ids)-1])
	}
}

// A single short page must not trigger a second request.
func TestListVectorStoreFilesSinglePage(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data":     []map[string]string{{"id": "file-a"}, {"id": "file-b"}},
			"has_more": false,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "test-model", 0)
	ids, err := client.ListVectorStoreFiles(context.Background(), "vs-1")
	if err != nil {
		t.Fatalf("ListVectorStoreFiles failed: %v", err)
	}
	if len(ids) != 2 || requests != 1 {
		t.Errorf("ids = %v, requests = %d", ids, requests)
	}
}
