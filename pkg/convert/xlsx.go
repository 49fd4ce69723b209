package convert

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// convertXLSX extracts every sheet as an independent record set. The first
// row of each sheet is the header row; empty cells default to "".
func convertXLSX(data []byte) ([]Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sheets []Sheet
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			continue
		}

		headers := rows[0]
		var records []map[string]string
		for _, row := range rows[1:] {
			record := make(map[string]string, len(headers))
			for i, header := range headers {
				if i < len(row) {
					record[header] = row[i]
				} else {
					record[header] = ""
				}
			}
			records = append(records, record)
		}

		sheets = append(sheets, Sheet{Name: sheetName, Records: records})
	}

	return sheets, nil
}
