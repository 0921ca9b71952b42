package importer

import "testing"

func TestResolveFieldExactMatch(t *testing.T) {
	row := map[string]string{"codigo": "A-100", "descripcion": "STA Cleaner solution"}
	if got := ResolveField(row, codigoAliases); got != "A-100" {
		t.Errorf("expected A-100, got %q", got)
	}
}

func TestResolveFieldSubstringMatch(t *testing.T) {
	row := map[string]string{"cod. producto": "X1", "desc. articulo": "Algo"}
	if got := ResolveField(row, codigoAliases); got != "X1" {
		t.Errorf("expected X1 via substring match, got %q", got)
	}
	if got := ResolveField(row, descripcionAliases); got != "Algo" {
		t.Errorf("expected Algo via substring match, got %q", got)
	}
}

func TestResolveFieldTokenMatch(t *testing.T) {
	// "exp. del producto" matches no alias exactly or by substring, only the
	// "exp" token of "exp date".
	row := map[string]string{"exp. del producto": "30/06/26"}
	if got := ResolveField(row, fechaAliases); got != "30/06/26" {
		t.Errorf("expected 30/06/26 via token match, got %q", got)
	}
}

func TestResolveFieldSkipsEmptyValues(t *testing.T) {
	row := map[string]string{"codigo": "", "cod. interno": "Z9"}
	if got := ResolveField(row, codigoAliases); got != "Z9" {
		t.Errorf("expected blank exact column to lose to populated one, got %q", got)
	}
}

func TestResolveFieldEmptyRow(t *testing.T) {
	if got := ResolveField(nil, codigoAliases); got != "" {
		t.Errorf("expected empty result for nil row, got %q", got)
	}
	if got := ResolveField(map[string]string{}, codigoAliases); got != "" {
		t.Errorf("expected empty result for empty row, got %q", got)
	}
}

func TestResolveFieldBrandFromDescription(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want string
	}{
		{"uppercase brand", "ROCHE reactivo de control", "ROCHE"},
		{"short code brand", "Stago cleaner", "Stago"},
		{"long lowercase word is not a brand", "reactivo de control largo", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := map[string]string{"descripcion": tt.desc}
			if got := ResolveField(row, marcaAliases); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStripDiacritics(t *testing.T) {
	if got := stripDiacritics("descripción"); got != "descripcion" {
		t.Errorf("expected descripcion, got %q", got)
	}
	if got := stripDiacritics("área"); got != "area" {
		t.Errorf("expected area, got %q", got)
	}
}
