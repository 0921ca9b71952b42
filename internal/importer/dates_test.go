package importer

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"month first when it fits", "09/30/26", "46295"},
		{"month first full month", "08/31/25", "45900"},
		{"ambiguous read as month/day", "03/04/25", "45720"},
		{"day first when over twelve", "30/06/26", "46203"},
		{"two digit year in last century", "12/01/99", "36495"},
		{"four digit year", "31/08/2025", "45900"},
		{"already numeric passes through", "45900", "45900"},
		{"empty stays empty", "", ""},
		{"iso date passes through", "2025-08-31", "2025-08-31"},
		{"free text passes through", "por confirmar", "por confirmar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDate(tt.in); got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDateIdempotent(t *testing.T) {
	inputs := []string{"09/30/26", "30/06/26", "45900", "", "2025-08-31"}
	for _, in := range inputs {
		once := NormalizeDate(in)
		twice := NormalizeDate(once)
		if once != twice {
			t.Errorf("NormalizeDate not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestLooksLikeDate(t *testing.T) {
	if !looksLikeDate("30/06/26") {
		t.Error("expected slash date to look like a date")
	}
	if !looksLikeDate("08/2025") {
		t.Error("expected partial slash value to look like a date")
	}
	if looksLikeDate("499-4V") {
		t.Error("expected product code not to look like a date")
	}
	if looksLikeDate("46203") {
		t.Error("expected numeric day count not to look like a date")
	}
}
