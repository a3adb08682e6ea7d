package tools

import "testing"

func TestNormalizeSymbols(t *testing.T) {
	got, err := normalizeSymbols(" btc , eth ,,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "BTC" || got[1] != "ETH" {
		t.Fatalf("unexpected symbols: %v", got)
	}

	if _, err := normalizeSymbols("BTC,TOOLONGSYMBOL"); err == nil {
		t.Fatal("expected error for oversized symbol")
	}
}

func TestNormalizeTicker(t *testing.T) {
	for raw, want := range map[string]string{
		"c:eurusd": "C:EURUSD",
		"EURUSD":   "EURUSD",
		"X:BTCUSD": "X:BTCUSD",
	} {
		got, err := normalizeTicker(raw)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("%q: got %q, want %q", raw, got, want)
		}
	}

	for _, raw := range []string{"", "EU", "EURUSDEURUSD", "eur/usd"} {
		if _, err := normalizeTicker(raw); err == nil {
			t.Fatalf("%q: expected error", raw)
		}
	}
}

func TestNormalizeLimit(t *testing.T) {
	if got, err := normalizeLimit(0, 10, 100); err != nil || got != 10 {
		t.Fatalf("zero limit: got %d, %v", got, err)
	}
	if got, err := normalizeLimit(42, 10, 100); err != nil || got != 42 {
		t.Fatalf("in-range limit: got %d, %v", got, err)
	}
	if _, err := normalizeLimit(101, 10, 100); err == nil {
		t.Fatal("expected error above max")
	}
	if _, err := normalizeLimit(-1, 10, 100); err == nil {
		t.Fatal("expected error below min")
	}
}

func TestNormalizeEnum(t *testing.T) {
	allowed := []string{"gainers", "losers"}

	if got, err := normalizeEnum(" Gainers ", "", "direction", allowed); err != nil || got != "gainers" {
		t.Fatalf("got %q, %v", got, err)
	}
	if _, err := normalizeEnum("", "", "direction", allowed); err == nil {
		t.Fatal("expected error for missing required value")
	}
	if got, err := normalizeEnum("", "gainers", "direction", allowed); err != nil || got != "gainers" {
		t.Fatalf("default: got %q, %v", got, err)
	}
	if _, err := normalizeEnum("sideways", "", "direction", allowed); err == nil {
		t.Fatal("expected error for unknown value")
	}
}
