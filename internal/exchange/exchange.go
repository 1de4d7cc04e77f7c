package exchange

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/jeanpaul/phonebook/internal/records"
)

// SheetName is the worksheet written by Export and read first by Import.
const SheetName = "Contacts"

var sheetHeaders = []string{"No.", "Last name", "First name", "Patronymic", "Organization", "Work phone", "Personal phone"}

// Document is the JSON and YAML shape of an export.
type Document struct {
	Contacts []records.Record `json:"contacts" yaml:"contacts"`
}

// Export writes recs to w in the given format.
func Export(w io.Writer, format Format, recs []records.Record) error {
	if recs == nil {
		recs = []records.Record{}
	}

	switch format {
	case FormatText:
		bw := bufio.NewWriter(w)
		for _, row := range records.ToRows(recs) {
			if _, err := bw.WriteString(row + "\n"); err != nil {
				return err
			}
		}
		return bw.Flush()

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Document{Contacts: recs})

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Document{Contacts: recs}); err != nil {
			return err
		}
		return enc.Close()

	case FormatXLSX:
		return exportExcel(w, recs)

	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func exportExcel(w io.Writer, recs []records.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := make([]any, len(sheetHeaders))
	for i, h := range sheetHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return err
	}

	for i, r := range recs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		// Phones stay text so leading zeros survive.
		row := []any{r.Position, r.LastName, r.FirstName, r.Patronymic, r.Organization, r.WorkPhone, r.PersonalPhone}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetName, "B", "G", 18); err != nil {
		return err
	}

	return f.Write(w)
}

// Import reads contacts from r. Text rows follow the backing file rules, so
// malformed lines are skipped; JSON and YAML documents are validated first
// and rejected as a whole.
func Import(r io.Reader, format Format) ([]records.Fields, error) {
	switch format {
	case FormatText:
		return importText(r)
	case FormatJSON:
		return importDocument(r, json.Unmarshal)
	case FormatYAML:
		return importDocument(r, yaml.Unmarshal)
	case FormatXLSX:
		return importExcel(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func importText(r io.Reader) ([]records.Fields, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	return fieldsOf(records.New(lines).All()), nil
}

func importDocument(r io.Reader, unmarshal func([]byte, any) error) ([]records.Fields, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("exchange: decode: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("exchange: decode: %w", err)
	}
	return fieldsOf(doc.Contacts), nil
}

func importExcel(r io.Reader) ([]records.Fields, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("exchange: open workbook: %w", err)
	}
	defer f.Close()

	sheet := SheetName
	if idx, err := f.GetSheetIndex(SheetName); err != nil || idx < 0 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("exchange: read sheet %s: %w", sheet, err)
	}

	var out []records.Fields
	for i, row := range rows {
		if i == 0 && len(row) > 0 && row[0] == sheetHeaders[0] {
			continue
		}
		// GetRows drops trailing empty cells.
		for len(row) < len(sheetHeaders) {
			row = append(row, "")
		}
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		if _, err := strconv.Atoi(strings.TrimSpace(row[0])); err != nil && row[0] != "" {
			return nil, fmt.Errorf("exchange: sheet %s row %d: first column must be a No.", sheet, i+1)
		}
		values := row[1:len(sheetHeaders)]
		for col, v := range values {
			if strings.ContainsAny(v, records.Separator+"\r\n") {
				return nil, fmt.Errorf("exchange: sheet %s row %d: %s must not contain %q or a line break", sheet, i+1, sheetHeaders[col+1], records.Separator)
			}
		}
		fields, _ := records.FieldsFromValues(values)
		out = append(out, fields)
	}
	return out, nil
}

func fieldsOf(recs []records.Record) []records.Fields {
	out := make([]records.Fields, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Fields)
	}
	return out
}
