package models

import "testing"

func TestFlatToNested(t *testing.T) {
	f := ProductFlat{
		Codigo:          "499-4V",
		Descripcion:     "STA Cleaner solution",
		Lote:            "271596",
		FechaExpiracion: "46203",
	}

	p := FlatToNested(f)
	if p.Codigo != "499-4V" {
		t.Errorf("expected codigo 499-4V, got %q", p.Codigo)
	}
	if len(p.Lotes) != 1 || p.Lotes[0].Lote != "271596" {
		t.Errorf("expected one lot 271596, got %v", p.Lotes)
	}
}

func TestFlatToNestedDropsIncompleteLot(t *testing.T) {
	p := FlatToNested(ProductFlat{Codigo: "A1", Lote: "111"})
	if len(p.Lotes) != 0 {
		t.Errorf("expected lot without date to be dropped, got %v", p.Lotes)
	}

	p = FlatToNested(ProductFlat{Codigo: "A1", FechaExpiracion: "46203"})
	if len(p.Lotes) != 0 {
		t.Errorf("expected date without lot to be dropped, got %v", p.Lotes)
	}
}

func TestGroupProductsByCode(t *testing.T) {
	flats := []ProductFlat{
		{Codigo: "A1", Descripcion: "Primero", Lote: "111", FechaExpiracion: "46203"},
		{Codigo: "B2", Descripcion: "Segundo", Lote: "333", FechaExpiracion: "46295"},
		{Codigo: "A1", Descripcion: "Primero renombrado", Lote: "222", FechaExpiracion: "46295"},
	}

	products := GroupProductsByCode(flats)
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	if products[0].Codigo != "A1" || products[1].Codigo != "B2" {
		t.Errorf("expected first-seen order A1, B2, got %q, %q", products[0].Codigo, products[1].Codigo)
	}
	if products[0].Descripcion != "Primero" {
		t.Errorf("expected attributes from first record, got %q", products[0].Descripcion)
	}
	if len(products[0].Lotes) != 2 {
		t.Errorf("expected 2 lots on A1, got %v", products[0].Lotes)
	}
}

func TestFlattenZeroLotProduct(t *testing.T) {
	flats := Flatten(Product{Codigo: "A1", Descripcion: "Sin lotes"})
	if len(flats) != 1 {
		t.Fatalf("expected one record for a zero-lot product, got %d", len(flats))
	}
	if flats[0].Lote != "" || flats[0].FechaExpiracion != "" {
		t.Errorf("expected empty lot fields, got %+v", flats[0])
	}
}

func TestFlattenGroupRoundTrip(t *testing.T) {
	original := []Product{
		{Codigo: "A1", Descripcion: "Primero", Lotes: []Lote{
			{Lote: "111", FechaExpiracion: "46203"},
			{Lote: "222", FechaExpiracion: "46295"},
		}},
		{Codigo: "B2", Descripcion: "Segundo", Lotes: []Lote{
			{Lote: "333", FechaExpiracion: "45900"},
		}},
	}

	back := GroupProductsByCode(FlattenAll(original))
	if len(back) != len(original) {
		t.Fatalf("expected %d products back, got %d", len(original), len(back))
	}
	for i, p := range back {
		if p.Codigo != original[i].Codigo {
			t.Errorf("expected codigo %q, got %q", original[i].Codigo, p.Codigo)
		}
		if len(p.Lotes) != len(original[i].Lotes) {
			t.Errorf("%s: expected %d lots, got %d", p.Codigo, len(original[i].Lotes), len(p.Lotes))
			continue
		}
		for j, l := range p.Lotes {
			if l != original[i].Lotes[j] {
				t.Errorf("%s: lot %d mismatch: %+v vs %+v", p.Codigo, j, l, original[i].Lotes[j])
			}
		}
	}
}
