package convert

import (
	"fmt"
	"strings"
)

// convertCSV parses the first line as the header row and every following
// non-empty line as one record.
//
// Known limitation carried over from the original service: the delimiter is a
// literal comma with no quote handling, so fields containing commas are not
// parsed safely. Flagged to stakeholders; do not switch to encoding/csv
// without signing off on the behavior change.
func convertCSV(data []byte) ([]map[string]string, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("csv has no header row")
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var records []map[string]string
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(line, ",")
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(values) {
				record[header] = strings.TrimSpace(values[i])
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}

	return records, nil
}
