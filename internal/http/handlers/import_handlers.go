package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/xuri/excelize/v2"

	models "github.com/hemolabs/labelstock/internal/models"
)

// ImportProductsHandler godoc
// @Summary Import products from a spreadsheet
// @Description Runs the heuristic import over an .xlsx upload, saves every reconstructed product locally and pushes the batch to the remote inventory.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Excel file"
// @Success 200 {object} ImportResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /products/import [post]
// @Security BearerAuth
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	flats, err := importEngine.ImportSheet(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	products := models.GroupProductsByCode(flats)

	var imported int
	var errorsList []ProductValidationError
	for _, p := range products {
		if err := productRepo.Upsert(p); err != nil {
			errorsList = append(errorsList, ProductValidationError{
				Field:       "codigo",
				Description: fmt.Sprintf("could not save '%s': %v", p.Codigo, err),
			})
			continue
		}
		imported++
	}

	result := ImportResult{
		ImportedProductsCount: imported,
		RecordCount:           len(flats),
		Errors:                errorsList,
	}

	if imported > 0 {
		pushRes := syncClient.PushFlat(r.Context(), flats)
		recordSync(pushRes)
		if pushRes.Err != nil {
			result.SyncError = pushRes.Err.Error()
		} else {
			result.Synced = true
			catalogCache.Invalidate(r.Context())
		}
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}

var templateRows = [][]string{
	{"area", "codigo", "descripcion", "marca", "lote", "fechaExpiracion", "unidad", "presentacion", "empresa"},
	{"COAGULACION", "6689E+09", "COAGUCHECK TP CONTROLS", "ROCHE", "77E+07", "2025-08-31", "CAJA", "CAJA CON 2 FRASCOS, 24 PRUEBAS C/U", "Bioscientia"},
	{"FUNCIONAMIENTO", "668E+09", "COAGUCHECK TP CONTROLS", "ROCHE", "81E+07", "2025-08-31", "CAJA", "Caja con 4 frascos con 2 niveles", "RBC"},
	{"TOMA DE MUESTRA/SANGRADO", "499-4V", "STA Cleaner solution", "STAGO", "271596", "2026-06-30", "PZ", "Botella de 2500mL", "Consumos"},
	{"INMUNOHEMATOLOGIA", "485-C1", "STA CaCl2 0.025M", "STAGO", "272336", "2026-11-30", "PZ", "Frasco 15mL", "Hemolife"},
	{"HEMATOLOGIA", "485-9v", "STA OWREN-KOLLER SOL. BUFFER PARA DET PT", "STAGO", "278992", "2026-09-30", "KIT", "Frasco 15mL", "Bioscientia"},
}

var templateInstructions = []string{
	"Instrucciones",
	"Esta plantilla contiene ejemplos de productos para importar al sistema.",
	"Campos obligatorios: código y descripción.",
	"El sistema detectará automáticamente las columnas aunque tengan nombres diferentes.",
	"Empresas disponibles: Bioscientia, RBC, Consumos, Hemolife.",
	"Formato de fecha recomendado: YYYY-MM-DD (ej: 2025-12-31).",
}

// ImportTemplateHandler godoc
// @Summary Download the import template
// @Description Returns an .xlsx workbook with example rows and an instructions sheet.
// @Tags import
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Template workbook"
// @Failure 500 {string} string "Internal error"
// @Router /products/import/template [get]
func ImportTemplateHandler(w http.ResponseWriter, r *http.Request) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Productos"
	f.SetSheetName(f.GetSheetName(0), sheet)
	for i, row := range templateRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			http.Error(w, "could not build template", http.StatusInternalServerError)
			return
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			http.Error(w, "could not build template", http.StatusInternalServerError)
			return
		}
	}

	if _, err := f.NewSheet("Instrucciones"); err == nil {
		for i, line := range templateInstructions {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				continue
			}
			f.SetCellStr("Instrucciones", cell, line)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="plantilla_productos.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Printf("Failed to write template workbook: %v", err)
	}
}
