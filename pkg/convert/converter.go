package convert

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrUnsupportedType fails the whole upload; there is no partial success for
// a file we cannot convert.
var ErrUnsupportedType = errors.New("unsupported file type")

// Sheet is one record set extracted from an input file. Plain CSV input
// yields exactly one Sheet whose name is the file name without extension.
type Sheet struct {
	Name    string
	Records []map[string]string
}

var mimeExtensions = map[string]string{
	"text/csv": ".csv",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": ".xlsx",
	"application/vnd.ms-excel": ".xls",
}

// Convert normalizes a tabular file into per-sheet record sets. The extension
// drives dispatch; when the file name has none, the declared MIME type is
// consulted, and when that is empty too the content is sniffed.
func Convert(filename string, declaredMIME string, data []byte) ([]Sheet, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = extensionForMIME(declaredMIME, data)
	}

	switch ext {
	case ".csv":
		records, err := convertCSV(data)
		if err != nil {
			return nil, err
		}
		return []Sheet{{Name: baseName(filename), Records: records}}, nil
	case ".xlsx", ".xls":
		return convertXLSX(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
}

func extensionForMIME(declaredMIME string, data []byte) string {
	// Declared type first; strip parameters like "; charset=utf-8"
	if declaredMIME != "" {
		base := strings.TrimSpace(strings.Split(declaredMIME, ";")[0])
		if ext, ok := mimeExtensions[base]; ok {
			return ext
		}
	}

	detected := mimetype.Detect(data)
	for mime, ext := range mimeExtensions {
		if detected.Is(mime) {
			return ext
		}
	}
	return ""
}

func baseName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
