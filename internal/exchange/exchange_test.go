package exchange

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jeanpaul/phonebook/internal/records"
)

func sampleRecords() []records.Record {
	return records.New([]string{
		"Ivanov;Ivan;Ivanovich;Acme;+1 (555) 123-4567;555.987.6543",
		"Petrov;Petr;Petrovich;Beta;0012;",
	}).All()
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"txt": FormatText, "JSON": FormatJSON, ".yml": FormatYAML, "yaml": FormatYAML, "xlsx": FormatXLSX} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.ErrorContains(t, err, "want one of txt, json, yaml, xlsx")
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("backup/contacts.XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = FormatFromPath("README")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExport_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, FormatText, sampleRecords()))
	assert.Equal(t, "Ivanov;Ivan;Ivanovich;Acme;15551234567;5559876543\nPetrov;Petr;Petrovich;Beta;0012;\n", buf.String())
}

func TestExport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, FormatJSON, sampleRecords()))

	out := buf.String()
	assert.Contains(t, out, `"contacts"`)
	assert.Contains(t, out, `"last_name": "Ivanov"`)
	assert.Contains(t, out, `"work_phone": "15551234567"`)
	assert.Contains(t, out, `"position": 1`)
}

func TestExport_EmptyJSONIsImportable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, FormatJSON, nil))
	assert.Contains(t, buf.String(), `"contacts": []`)

	got, err := Import(&buf, FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExport_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, FormatYAML, sampleRecords()))

	out := buf.String()
	assert.Contains(t, out, "contacts:")
	assert.Contains(t, out, "last_name: Ivanov")
	assert.Contains(t, out, `work_phone: "15551234567"`)
}

func TestExport_Unsupported(t *testing.T) {
	err := Export(&bytes.Buffer{}, Format("csv"), nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, err = Import(strings.NewReader(""), Format("csv"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExcel_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, FormatXLSX, sampleRecords()))

	wb, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	header, err := wb.GetCellValue(SheetName, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Last name", header)
	phone, err := wb.GetCellValue(SheetName, "F3")
	require.NoError(t, err)
	assert.Equal(t, "0012", phone)
	require.NoError(t, wb.Close())

	got, err := Import(bytes.NewReader(buf.Bytes()), FormatXLSX)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, records.Fields{LastName: "Ivanov", FirstName: "Ivan", Patronymic: "Ivanovich", Organization: "Acme", WorkPhone: "15551234567", PersonalPhone: "5559876543"}, got[0])
	assert.Equal(t, records.Fields{LastName: "Petrov", FirstName: "Petr", Patronymic: "Petrovich", Organization: "Beta", WorkPhone: "0012", PersonalPhone: ""}, got[1])
}

func TestImport_ExcelForeignSheet(t *testing.T) {
	wb := excelize.NewFile()
	defer wb.Close()
	for i, row := range [][]any{
		{"", "Sidorov", "Sidor", "Sidorovich", "Gamma", "1", "2"},
		{},
		{"x", "Bad"},
	} {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))

	_, err := Import(bytes.NewReader(buf.Bytes()), FormatXLSX)
	assert.ErrorContains(t, err, "row 3")
}

func TestImport_ExcelRejectsUnstorableCells(t *testing.T) {
	for name, row := range map[string][]any{
		"separator":  {"", "Iva;nov", "Ivan", "Ivanovich", "Acme", "1", "2"},
		"line break": {"", "Ivanov", "Ivan", "Ivanovich", "Ac\nme", "1", "2"},
		"carriage":   {"", "Ivanov", "Ivan", "Ivanovich", "Acme", "1", "2\r"},
	} {
		wb := excelize.NewFile()
		require.NoError(t, wb.SetSheetRow("Sheet1", "A2", &row), name)
		var buf bytes.Buffer
		require.NoError(t, wb.Write(&buf), name)
		require.NoError(t, wb.Close(), name)

		got, err := Import(bytes.NewReader(buf.Bytes()), FormatXLSX)
		assert.ErrorContains(t, err, "row 2", name)
		assert.Nil(t, got, name)
	}
}

func TestImport_Text(t *testing.T) {
	in := "Ivanov;Ivan;Ivanovich;Acme;1;2\r\nbroken\n\nPetrov;Petr;Petrovich;Beta;3;4"
	got, err := Import(strings.NewReader(in), FormatText)
	require.NoError(t, err)
	assert.Equal(t, []records.Fields{
		{LastName: "Ivanov", FirstName: "Ivan", Patronymic: "Ivanovich", Organization: "Acme", WorkPhone: "1", PersonalPhone: "2"},
		{LastName: "Petrov", FirstName: "Petr", Patronymic: "Petrovich", Organization: "Beta", WorkPhone: "3", PersonalPhone: "4"},
	}, got)
}

func TestImport_JSON(t *testing.T) {
	in := `{"contacts": [{"last_name": "Ivanov", "first_name": "Ivan", "work_phone": "+1 555"}]}`
	got, err := Import(strings.NewReader(in), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []records.Fields{{LastName: "Ivanov", FirstName: "Ivan", WorkPhone: "+1 555"}}, got)
}

func TestImport_JSONRejectsInvalidDocument(t *testing.T) {
	cases := map[string]string{
		"missing contacts":  `{"people": []}`,
		"missing last_name": `{"contacts": [{"first_name": "Ivan"}]}`,
		"separator":         `{"contacts": [{"last_name": "Iva;nov"}]}`,
		"wrong type":        `{"contacts": [{"last_name": 42}]}`,
	}
	for name, in := range cases {
		_, err := Import(strings.NewReader(in), FormatJSON)
		assert.ErrorContains(t, err, "schema validation failed", name)
	}

	_, err := Import(strings.NewReader("{"), FormatJSON)
	assert.ErrorContains(t, err, "decode")
}

func TestImport_YAML(t *testing.T) {
	in := "contacts:\n  - last_name: Ivanov\n    organization: Acme\n    personal_phone: \"007\"\n"
	got, err := Import(strings.NewReader(in), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []records.Fields{{LastName: "Ivanov", Organization: "Acme", PersonalPhone: "007"}}, got)

	_, err = Import(strings.NewReader("contacts:\n  - first_name: x\n"), FormatYAML)
	assert.ErrorContains(t, err, "schema validation failed")
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.json", "sub/c.txt", "sub/deeper/d.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}

	got, err := Expand([]string{
		filepath.Join(dir, "**", "*.txt"),
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "missing.yaml"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "sub", "c.txt"),
		filepath.Join(dir, "sub", "deeper", "d.txt"),
		filepath.Join(dir, "missing.yaml"),
	}, got)

	_, err = Expand([]string{filepath.Join(dir, "[")})
	assert.Error(t, err)
}
