package corpus

import (
	"context"
	"time"

	"zorva-be/pkg/assistant"
)

// Document is one unit submitted for indexing.
type Document struct {
	Filename string
	Data     []byte
}

// Metadata mirrors what the index knows about a member document.
type Metadata struct {
	Filename  string
	SizeBytes int64
	CreatedAt time.Time
}

// Adapter manages membership of a per-account corpus. Ids are issued by the
// backing API; a fresh id per call, no content dedup.
type Adapter struct {
	client *assistant.Client
}

func NewAdapter(client *assistant.Client) *Adapter {
	return &Adapter{client: client}
}

// AddDocuments uploads and indexes every document, blocking until indexing
// completes. All-or-nothing per call: on any failure the already-attached
// documents of this call are detached best-effort before returning the error.
func (a *Adapter) AddDocuments(ctx context.Context, corpusId string, docs []Document) ([]string, error) {
	var issued []string
	for _, doc := range docs {
		fileId, err := a.client.UploadFile(ctx, doc.Filename, doc.Data)
		if err != nil {
			a.rollback(ctx, corpusId, issued)
			return nil, err
		}
		if err := a.client.AttachFile(ctx, corpusId, fileId); err != nil {
			a.rollback(ctx, corpusId, append(issued, fileId))
			return nil, err
		}
		issued = append(issued, fileId)
	}
	return issued, nil
}

func (a *Adapter) rollback(ctx context.Context, corpusId string, fileIds []string) {
	for _, id := range fileIds {
		// Best effort; a failed rollback leaves drift for the reconciler
		_ = a.client.DetachFile(ctx, corpusId, id)
	}
}

func (a *Adapter) ListDocuments(ctx context.Context, corpusId string) ([]string, error) {
	return a.client.ListVectorStoreFiles(ctx, corpusId)
}

func (a *Adapter) RemoveDocument(ctx context.Context, corpusId, documentId string) error {
	return a.client.DetachFile(ctx, corpusId, documentId)
}

func (a *Adapter) FetchMetadata(ctx context.Context, documentId string) (*Metadata, error) {
	meta, err := a.client.FetchFileMetadata(ctx, documentId)
	if err != nil {
		return nil, err
	}
	return &Metadata{
		Filename:  meta.Filename,
		SizeBytes: meta.SizeBytes,
		CreatedAt: meta.CreatedAt,
	}, nil
}
