package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hemolabs/labelstock/internal/models"
)

// DefaultMatchThreshold is how many of the first three significant
// description tokens must overlap for two descriptions to be considered the
// same product during code reconciliation.
const DefaultMatchThreshold = 2

// Engine turns arbitrary spreadsheet data into flat product records. It
// tolerates inconsistent column labels, merged-cell gaps and date cells
// bleeding into the code column; reading the workbook can fail, processing a
// row cannot.
type Engine struct {
	// MatchThreshold overrides DefaultMatchThreshold when > 0. The value is
	// domain-tuned, keep it configurable rather than constant.
	MatchThreshold int
}

func NewEngine(matchThreshold int) *Engine {
	return &Engine{MatchThreshold: matchThreshold}
}

func (e *Engine) threshold() int {
	if e.MatchThreshold > 0 {
		return e.MatchThreshold
	}
	return DefaultMatchThreshold
}

// ImportSheet reads the first worksheet of an xlsx workbook and returns one
// flat record per data row, in row order. An unreadable workbook aborts the
// whole import.
func (e *Engine) ImportSheet(r io.Reader) ([]models.ProductFlat, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not read workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q: %w", sheets[0], err)
	}

	return e.ImportRows(ParseRows(rows)), nil
}

// ParseRows converts positional rows into label→value maps. The first row is
// taken as the header: each non-empty header cell is normalized (lower-cased,
// whitespace collapsed to underscores, diacritics stripped) and names its
// column; columns with a blank header keep their spreadsheet letter (A, B,
// ...). Fully blank rows are dropped.
func ParseRows(rows [][]string) []map[string]string {
	if len(rows) == 0 {
		return nil
	}

	header := rows[0]
	width := len(header)
	for _, row := range rows[1:] {
		if len(row) > width {
			width = len(row)
		}
	}

	names := make([]string, width)
	for i := 0; i < width; i++ {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if i < len(header) && strings.TrimSpace(header[i]) != "" {
			name = normalizeHeader(header[i])
		}
		names[i] = name
	}

	var out []map[string]string
	for _, row := range rows[1:] {
		m := make(map[string]string, width)
		blank := true
		for i := 0; i < width; i++ {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			if v != "" {
				blank = false
			}
			m[names[i]] = v
		}
		if blank {
			continue
		}
		out = append(out, m)
	}
	return out
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.Join(strings.Fields(h), "_")
	return stripDiacritics(h)
}

// carryForward holds the last genuinely resolved value of each field, used
// to fill rows left blank by spreadsheet cell merges. Synthesized fallbacks
// (placeholders, derived brands, fixed defaults) are never written back, so
// they cannot poison later rows.
type carryForward struct {
	codigo       string
	descripcion  string
	marca        string
	unidad       string
	empresa      string
	area         string
	presentacion string
}

// ImportRows resolves every logical field of every row and reconstructs a
// consistent record set. Two passes: the first collects code↔description
// associations from rows where both are present, the second resolves each
// row using those associations plus carry-forward state. Row processing is
// total — every row yields exactly one record.
func (e *Engine) ImportRows(rows []map[string]string) []models.ProductFlat {
	assoc := newAssocMap()
	for _, row := range rows {
		codigo := strings.TrimSpace(ResolveField(row, codigoAliases))
		descripcion := strings.TrimSpace(ResolveField(row, descripcionAliases))
		if codigo != "" && descripcion != "" && !looksLikeDate(codigo) {
			assoc.put(descripcion, codigo)
		}
	}

	carry := carryForward{empresa: defaultEmpresa}
	records := make([]models.ProductFlat, 0, len(rows))

	for i, row := range rows {
		rowNum := i + 1

		codigo := strings.TrimSpace(ResolveField(row, codigoAliases))
		if looksLikeDate(codigo) {
			// A merged expiry cell shifted into the code column.
			codigo = ""
		}
		resolvedCodigo := codigo

		descripcion := strings.TrimSpace(ResolveField(row, descripcionAliases))
		resolvedDescripcion := descripcion
		if descripcion == "" {
			if carry.descripcion != "" {
				descripcion = carry.descripcion
			} else {
				descripcion = fmt.Sprintf("Producto sin descripción %d", rowNum)
			}
		}

		if codigo == "" {
			codigo = e.reconcileCode(descripcion, assoc, carry, rowNum)
		}

		// Brand uses the raw column scan: a brand derived from the
		// description is a fallback and must not enter the carry state.
		marca := resolveColumn(row, marcaAliases)
		unidad := ResolveField(row, unidadAliases)
		lote := ResolveField(row, loteAliases)
		fecha := NormalizeDate(ResolveField(row, fechaAliases))
		empresa := ResolveField(row, empresaAliases)
		area := ResolveField(row, areaAliases)
		presentacion := ResolveField(row, presentacionAliases)

		resolvedMarca, resolvedUnidad := marca, unidad
		resolvedEmpresa, resolvedArea, resolvedPresentacion := empresa, area, presentacion

		if marca == "" {
			marca = carry.marca
		}
		if unidad == "" {
			unidad = carry.unidad
		}
		if empresa == "" {
			empresa = carry.empresa
		}
		if area == "" {
			area = carry.area
		}
		if presentacion == "" {
			presentacion = carry.presentacion
		}

		if marca == "" {
			marca = brandFromDescription(descripcion)
		}
		if marca == "" {
			marca = defaultMarca
		}
		if unidad == "" {
			unidad = defaultUnidad
		}

		if resolvedCodigo != "" {
			carry.codigo = resolvedCodigo
		}
		if resolvedDescripcion != "" {
			carry.descripcion = resolvedDescripcion
		}
		if resolvedMarca != "" {
			carry.marca = resolvedMarca
		}
		if resolvedUnidad != "" {
			carry.unidad = resolvedUnidad
		}
		if resolvedEmpresa != "" {
			carry.empresa = resolvedEmpresa
		}
		if resolvedArea != "" {
			carry.area = resolvedArea
		}
		if resolvedPresentacion != "" {
			carry.presentacion = resolvedPresentacion
		}

		records = append(records, models.ProductFlat{
			Codigo:          codigo,
			Marca:           marca,
			Descripcion:     descripcion,
			Unidad:          unidad,
			Lote:            lote,
			FechaExpiracion: fecha,
			Empresa:         empresa,
			Area:            area,
			Presentacion:    presentacion,
		})
	}
	return records
}

// reconcileCode finds a code for a row whose own code cell was blank or
// date-shaped: exact description match first, then fuzzy match, then the
// last valid code in stream order, then a synthesized placeholder.
func (e *Engine) reconcileCode(descripcion string, assoc *assocMap, carry carryForward, rowNum int) string {
	if code, ok := assoc.exact(descripcion); ok {
		return code
	}
	if code, ok := assoc.similar(descripcion, e.threshold()); ok {
		return code
	}
	if carry.codigo != "" {
		return carry.codigo
	}
	return fmt.Sprintf("SIN-CODIGO-%d", rowNum)
}

// assocMap remembers which code belongs to which description, preserving
// insertion order so fuzzy lookups scan candidates deterministically.
type assocMap struct {
	codes map[string]string
	order []string
}

func newAssocMap() *assocMap {
	return &assocMap{codes: make(map[string]string)}
}

func (m *assocMap) put(descripcion, codigo string) {
	if _, ok := m.codes[descripcion]; !ok {
		m.order = append(m.order, descripcion)
	}
	m.codes[descripcion] = codigo
}

func (m *assocMap) exact(descripcion string) (string, bool) {
	code, ok := m.codes[strings.TrimSpace(descripcion)]
	return code, ok
}

// similar finds the first stored description whose leading significant
// tokens overlap the given one at least threshold times. Tokens shorter than
// three characters are noise (articles, units) and are skipped; overlap is
// substring containment in either direction, which tolerates truncated cells.
func (m *assocMap) similar(descripcion string, threshold int) (string, bool) {
	want := significantTokens(descripcion)
	if len(want) == 0 {
		return "", false
	}
	for _, stored := range m.order {
		matches := 0
		for _, st := range significantTokens(stored) {
			for _, wt := range want {
				if strings.Contains(wt, st) || strings.Contains(st, wt) {
					matches++
					break
				}
			}
		}
		if matches >= threshold {
			return m.codes[stored], true
		}
	}
	return "", false
}

// significantTokens returns the first three tokens longer than two runes,
// lower-cased with diacritics stripped.
func significantTokens(s string) []string {
	normalized := stripDiacritics(strings.ToLower(s))
	var tokens []string
	for _, w := range strings.Fields(normalized) {
		if len([]rune(w)) > 2 {
			tokens = append(tokens, w)
			if len(tokens) == 3 {
				break
			}
		}
	}
	return tokens
}
