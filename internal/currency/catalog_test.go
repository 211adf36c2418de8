package currency

import "testing"

func TestSymbolKnownCodes(t *testing.T) {
	cases := map[string]string{
		"USD": "$",
		"EUR": "€",
		"GBP": "£",
		"BDT": "৳",
		"JPY": "¥",
	}
	for code, want := range cases {
		if got := Symbol(code); got != want {
			t.Errorf("Symbol(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestSymbolFallback(t *testing.T) {
	if got := Symbol("XXX"); got != DefaultSymbol {
		t.Errorf("Symbol(unknown) = %q, want %q", got, DefaultSymbol)
	}
	if got := Symbol(""); got != DefaultSymbol {
		t.Errorf("Symbol(empty) = %q, want %q", got, DefaultSymbol)
	}
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("CHF")
	if !ok {
		t.Fatal("expected CHF in catalog")
	}
	if c.Name != "Swiss Franc" {
		t.Errorf("CHF name = %q", c.Name)
	}
	if _, ok := Lookup("NOPE"); ok {
		t.Error("unexpected hit for unknown code")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("catalog is empty")
	}
	all[0].Symbol = "mutated"
	if Symbol(all[0].Code) == "mutated" {
		t.Error("All must not expose internal catalog storage")
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount("USD", 1234.5); got != "$1,234.50" {
		t.Errorf("FormatAmount = %q", got)
	}
	if got := FormatAmount("ZZZ", 10); got != "$10.00" {
		t.Errorf("FormatAmount fallback = %q", got)
	}
}
