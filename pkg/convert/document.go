package convert

import (
	"encoding/json"
	"time"
)

// IntermediateDocument is the self-describing unit handed to the corpus
// index. The index never sees raw spreadsheet bytes, only this derived form.
type IntermediateDocument struct {
	Metadata DocumentMetadata    `json:"metadata"`
	Data     []map[string]string `json:"data"`
}

type DocumentMetadata struct {
	Filename    string    `json:"filename"`
	SheetName   string    `json:"sheet_name,omitempty"`
	RecordCount int       `json:"record_count"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func NewIntermediateDocument(filename, sheetName string, records []map[string]string, uploadedAt time.Time) *IntermediateDocument {
	return &IntermediateDocument{
		Metadata: DocumentMetadata{
			Filename:    filename,
			SheetName:   sheetName,
			RecordCount: len(records),
			UploadedAt:  uploadedAt,
		},
		Data: records,
	}
}

func (d *IntermediateDocument) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
