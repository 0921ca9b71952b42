package importer

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseRows(t *testing.T) {
	rows := [][]string{
		{"Código", "Descripción Producto", "", "Lote"},
		{"A1", "STA Cleaner solution", "extra", "111"},
		{"", "", "", ""},
		{"B2", "STA CaCl2"},
	}

	parsed := ParseRows(rows)
	if len(parsed) != 2 {
		t.Fatalf("expected 2 rows after dropping the blank one, got %d", len(parsed))
	}

	first := parsed[0]
	if first["codigo"] != "A1" {
		t.Errorf("expected normalized 'codigo' header, got row %v", first)
	}
	if first["descripcion_producto"] != "STA Cleaner solution" {
		t.Errorf("expected normalized multiword header, got row %v", first)
	}
	if first["C"] != "extra" {
		t.Errorf("expected blank header to keep column letter C, got row %v", first)
	}

	// Short rows are padded so every row has every column.
	second := parsed[1]
	if second["lote"] != "" {
		t.Errorf("expected padded empty lote, got %q", second["lote"])
	}
}

func TestImportRowsCarriesMergedCells(t *testing.T) {
	e := NewEngine(0)
	rows := []map[string]string{
		{"codigo": "A1", "descripcion": "COAGUCHECK TP CONTROLS", "lote": "111", "caducidad": "08/31/25"},
		{"codigo": "", "descripcion": "", "lote": "222", "caducidad": "09/30/26"},
	}

	records := e.ImportRows(rows)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if records[1].Codigo != "A1" {
		t.Errorf("expected second lot row to inherit code A1, got %q", records[1].Codigo)
	}
	if records[1].Descripcion != "COAGUCHECK TP CONTROLS" {
		t.Errorf("expected carried description, got %q", records[1].Descripcion)
	}
	if records[0].FechaExpiracion != "45900" || records[1].FechaExpiracion != "46295" {
		t.Errorf("expected normalized dates 45900/46295, got %q/%q",
			records[0].FechaExpiracion, records[1].FechaExpiracion)
	}
}

func TestImportRowsDiscardsDateShapedCode(t *testing.T) {
	e := NewEngine(0)
	rows := []map[string]string{
		{"codigo": "30/06/26", "descripcion": "Control de calidad nivel alto"},
	}

	records := e.ImportRows(rows)
	if records[0].Codigo != "SIN-CODIGO-1" {
		t.Errorf("expected placeholder code, got %q", records[0].Codigo)
	}
}

func TestImportRowsPlaceholderDescription(t *testing.T) {
	e := NewEngine(0)
	rows := []map[string]string{
		{"codigo": "A1", "descripcion": ""},
	}

	records := e.ImportRows(rows)
	if records[0].Descripcion != "Producto sin descripción 1" {
		t.Errorf("expected placeholder description, got %q", records[0].Descripcion)
	}
}

func TestImportRowsFuzzyCodeReconciliation(t *testing.T) {
	e := NewEngine(0)
	rows := []map[string]string{
		{"codigo": "499-4V", "descripcion": "STA Cleaner solution grande"},
		{"codigo": "", "descripcion": "STA Cleaner sol"},
	}

	records := e.ImportRows(rows)
	if records[1].Codigo != "499-4V" {
		t.Errorf("expected fuzzy match to reuse 499-4V, got %q", records[1].Codigo)
	}
}

func TestImportRowsDefaults(t *testing.T) {
	e := NewEngine(0)
	rows := []map[string]string{
		{"codigo": "A1", "descripcion": "reactivo de control liquido"},
	}

	r := e.ImportRows(rows)[0]
	if r.Empresa != "Bioscientia" {
		t.Errorf("expected default empresa, got %q", r.Empresa)
	}
	if r.Marca != "GENÉRICO" {
		t.Errorf("expected default marca, got %q", r.Marca)
	}
	if r.Unidad != "PZ" {
		t.Errorf("expected default unidad, got %q", r.Unidad)
	}
}

func TestImportRowsFallbacksDoNotPoisonCarry(t *testing.T) {
	e := NewEngine(0)
	rows := []map[string]string{
		// Brand unresolvable: long lowercase first word forces the GENÉRICO
		// default, which must not become carry state.
		{"codigo": "A1", "descripcion": "reactivo de control liquido"},
		{"codigo": "B2", "descripcion": "ROCHE control nivel dos", "marca": "ROCHE"},
		{"codigo": "C3", "descripcion": "reactivo tampon de lavado"},
	}

	records := e.ImportRows(rows)
	if records[0].Marca != "GENÉRICO" {
		t.Errorf("expected default marca on first row, got %q", records[0].Marca)
	}
	if records[2].Marca != "ROCHE" {
		t.Errorf("expected genuinely resolved marca to carry forward, got %q", records[2].Marca)
	}
}

func TestImportRowsEmpresaCarry(t *testing.T) {
	e := NewEngine(0)
	rows := []map[string]string{
		{"codigo": "A1", "descripcion": "STA Cleaner solution", "empresa": "RBC"},
		{"codigo": "B2", "descripcion": "STA CaCl2 frasco"},
	}

	records := e.ImportRows(rows)
	if records[1].Empresa != "RBC" {
		t.Errorf("expected empresa to carry forward, got %q", records[1].Empresa)
	}
}

func TestImportSheet(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]string{
		{"Código", "Descripción", "Marca", "Lote", "Fecha Exp", "Unidad"},
		{"499-4V", "STA Cleaner solution", "STAGO", "271596", "30/06/26", "PZ"},
		{"", "", "", "278992", "09/30/26", ""},
		{"485-C1", "STA CaCl2 0.025M", "STAGO", "272336", "30/11/26", "PZ"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	e := NewEngine(0)
	records, err := e.ImportSheet(&buf)
	if err != nil {
		t.Fatalf("ImportSheet failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	if records[1].Codigo != "499-4V" {
		t.Errorf("expected merged-cell row to inherit 499-4V, got %q", records[1].Codigo)
	}
	if records[1].Lote != "278992" {
		t.Errorf("expected second lot 278992, got %q", records[1].Lote)
	}
	if records[0].FechaExpiracion != "46203" {
		t.Errorf("expected normalized date 46203, got %q", records[0].FechaExpiracion)
	}
	if records[2].Codigo != "485-C1" {
		t.Errorf("expected third row code 485-C1, got %q", records[2].Codigo)
	}
}
