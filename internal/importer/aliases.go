package importer

// Column aliases for each logical field, in priority order. Matching is
// case-insensitive, so only lower-case spellings are listed; accented
// variants stay because header normalization only strips diacritics from
// letter-headed sheets, not from sheets that already carry real labels.
var (
	codigoAliases       = []string{"codigo", "code", "sku", "id", "clave", "cód", "cod", "código"}
	descripcionAliases  = []string{"descripcion", "description", "desc", "nombre", "name", "producto", "product", "descripción"}
	marcaAliases        = []string{"marca", "brand", "fabricante", "manufacturer"}
	unidadAliases       = []string{"unidad", "unit", "medida", "measure", "um"}
	loteAliases         = []string{"lote", "lot", "batch", "no. lote", "numero de lote"}
	fechaAliases        = []string{"fechaexpiracion", "expiracion", "expiry", "caducidad", "vencimiento", "fecha exp", "exp date", "fecha caducidad", "fecha vencimiento", "f"}
	empresaAliases      = []string{"empresa", "company", "proveedor", "supplier"}
	areaAliases         = []string{"area", "área", "sector", "departamento", "depto", "seccion", "sección", "a"}
	presentacionAliases = []string{"presentacion", "presentación", "formato", "envase", "empaque", "package", "presentation", "h"}
)

// Defaults applied when a field cannot be resolved from the sheet at all.
const (
	defaultEmpresa = "Bioscientia"
	defaultMarca   = "GENÉRICO"
	defaultUnidad  = "PZ"
)
