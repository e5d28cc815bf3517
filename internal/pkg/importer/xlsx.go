package importer

import (
	"fmt"
	"strings"

	"github.com/evandrarf/cryptolearn-be/internal/glossary"
	"github.com/xuri/excelize/v2"
)

const DefaultSheet = "Glossary"

// Columns are matched by header name, case-insensitively, so their order in
// the sheet does not matter. Term and Definition are required.
var columns = []string{"Term", "Definition", "Example", "Category", "Difficulty", "Importance", "Tags"}

type ImportConfig struct {
	FilePath  string
	SheetName string
}

// ReadTerms loads term records from the first row-headed table of a sheet.
// Blank rows are skipped; any other malformed row fails the whole import.
func ReadTerms(config ImportConfig) ([]glossary.TermRecord, error) {
	sheet := config.SheetName
	if sheet == "" {
		sheet = DefaultSheet
	}

	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", config.FilePath, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q: missing header row", sheet)
	}

	index, err := headerIndex(rows[0])
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	var records []glossary.TermRecord
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		record, err := parseRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("sheet %q row %d: %w", sheet, i+2, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(columns))
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name == "" {
			continue
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", cell)
		}
		index[name] = i
	}
	for _, required := range []string{"term", "definition"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}
	return index, nil
}

func cell(row []string, index map[string]int, column string) string {
	i, ok := index[strings.ToLower(column)]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseRow(row []string, index map[string]int) (glossary.TermRecord, error) {
	difficulty, err := glossary.ParseDifficulty(cell(row, index, "Difficulty"))
	if err != nil {
		return glossary.TermRecord{}, err
	}
	importance, err := glossary.ParseImportance(cell(row, index, "Importance"))
	if err != nil {
		return glossary.TermRecord{}, err
	}

	var tags []string
	for _, tag := range strings.Split(cell(row, index, "Tags"), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return glossary.TermRecord{
		Term:       cell(row, index, "Term"),
		Definition: cell(row, index, "Definition"),
		Example:    cell(row, index, "Example"),
		Category:   cell(row, index, "Category"),
		Difficulty: difficulty,
		Importance: importance,
		Tags:       tags,
	}, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteTerms saves records as a workbook that ReadTerms can load back.
func WriteTerms(config ImportConfig, records []glossary.TermRecord) error {
	sheet := config.SheetName
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	// a new workbook already holds one empty sheet
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet %q: %w", sheet, err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range records {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.Term,
			r.Definition,
			r.Example,
			r.Category,
			string(r.Difficulty),
			string(r.Importance),
			strings.Join(r.Tags, ", "),
		}
		if err := f.SetSheetRow(sheet, cellName, &row); err != nil {
			return fmt.Errorf("write %q: %w", r.Term, err)
		}
	}

	if err := f.SaveAs(config.FilePath); err != nil {
		return fmt.Errorf("save workbook %s: %w", config.FilePath, err)
	}
	return nil
}
