package dataset

import (
	"context"
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// readXLSX parses the first sheet of an XLSX workbook into a header row
// and data rows. Remote sources are fetched fully into memory first, which
// is fine for the tens-of-rows tables this tool works with.
func readXLSX(ctx context.Context, source string) ([]string, [][]string, error) {
	rc, err := open(ctx, source)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "dataset: read xlsx %s", source)
	}

	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "dataset: parse xlsx %s", source)
	}
	if len(f.Sheets) == 0 {
		return nil, nil, eris.Errorf("dataset: xlsx %s has no sheets", source)
	}

	var header []string
	var rows [][]string
	for i, row := range f.Sheets[0].Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		if i == 0 {
			header = cells
			continue
		}
		rows = append(rows, cells)
	}
	if header == nil {
		return nil, nil, eris.Errorf("dataset: xlsx %s is empty", source)
	}
	return header, rows, nil
}
