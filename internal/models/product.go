package models

// Lote is a batch number plus its expiration date. The expiration date is
// kept as the numeric day-count string the remote inventory system expects.
type Lote struct {
	Lote            string `json:"lote"`
	FechaExpiracion string `json:"fechaExpiracion"`
}

// Product is the nested form: one product with all of its lots.
type Product struct {
	Codigo       string `json:"codigo"`
	Marca        string `json:"marca"`
	Descripcion  string `json:"descripcion"`
	Unidad       string `json:"unidad"`
	Empresa      string `json:"empresa"`
	Area         string `json:"area"`
	Presentacion string `json:"presentacion"`
	Lotes        []Lote `json:"lotes"`
}

// ProductFlat is one row of data with at most one lot. It is the import
// engine's output unit and the payload shape of the remote save endpoint.
type ProductFlat struct {
	Codigo          string `json:"codigo"`
	Marca           string `json:"marca"`
	Descripcion     string `json:"descripcion"`
	Unidad          string `json:"unidad"`
	Lote            string `json:"lote"`
	FechaExpiracion string `json:"fechaExpiracion"`
	Empresa         string `json:"empresa"`
	Area            string `json:"area"`
	Presentacion    string `json:"presentacion"`
}

// FlatToNested converts a single flat record into a product. The lot is
// kept only when both the lot number and the expiration date are present.
func FlatToNested(f ProductFlat) Product {
	p := Product{
		Codigo:       f.Codigo,
		Marca:        f.Marca,
		Descripcion:  f.Descripcion,
		Unidad:       f.Unidad,
		Empresa:      f.Empresa,
		Area:         f.Area,
		Presentacion: f.Presentacion,
		Lotes:        []Lote{},
	}
	if f.Lote != "" && f.FechaExpiracion != "" {
		p.Lotes = append(p.Lotes, Lote{Lote: f.Lote, FechaExpiracion: f.FechaExpiracion})
	}
	return p
}

// GroupProductsByCode merges flat records sharing a codigo into one product
// each. Products come out in first-seen order; product-level fields are
// taken from the first record for a given codigo and lots are appended in
// stream order, skipping entries missing either the lot or its date.
func GroupProductsByCode(flats []ProductFlat) []Product {
	index := make(map[string]int)
	products := make([]Product, 0, len(flats))

	for _, f := range flats {
		if i, ok := index[f.Codigo]; ok {
			if f.Lote != "" && f.FechaExpiracion != "" {
				products[i].Lotes = append(products[i].Lotes, Lote{Lote: f.Lote, FechaExpiracion: f.FechaExpiracion})
			}
			continue
		}
		index[f.Codigo] = len(products)
		products = append(products, FlatToNested(f))
	}
	return products
}

// Flatten expands a product into one flat record per lot. A product with no
// lots still yields a single record with empty lot fields, so the remote
// system learns about the product itself.
func Flatten(p Product) []ProductFlat {
	base := ProductFlat{
		Codigo:       p.Codigo,
		Marca:        p.Marca,
		Descripcion:  p.Descripcion,
		Unidad:       p.Unidad,
		Empresa:      p.Empresa,
		Area:         p.Area,
		Presentacion: p.Presentacion,
	}
	if len(p.Lotes) == 0 {
		return []ProductFlat{base}
	}
	flats := make([]ProductFlat, 0, len(p.Lotes))
	for _, l := range p.Lotes {
		f := base
		f.Lote = l.Lote
		f.FechaExpiracion = l.FechaExpiracion
		flats = append(flats, f)
	}
	return flats
}

// FlattenAll flattens a batch of products into one slice of flat records.
func FlattenAll(products []Product) []ProductFlat {
	var flats []ProductFlat
	for _, p := range products {
		flats = append(flats, Flatten(p)...)
	}
	return flats
}
