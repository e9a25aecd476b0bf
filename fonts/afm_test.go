package fonts

import "testing"

func TestLoadCore14Helvetica(t *testing.T) {
	src, err := LoadCore14(Helvetica)
	if err != nil {
		t.Fatalf("LoadCore14: %v", err)
	}
	if !src.IsBuiltin() {
		t.Fatal("AFM source must report IsBuiltin")
	}
	if src.FontFile() != nil {
		t.Fatal("AFM source must have no embeddable font file")
	}
	if src.FontMetrics().UnitsPerEm != 1000 {
		t.Fatalf("units_per_em = %v, want 1000", src.FontMetrics().UnitsPerEm)
	}

	gid, ok := src.CharToGlyph('A')
	if !ok {
		t.Fatal("expected 'A' to map to a glyph")
	}
	if m := src.Metrics(gid); m.HorzAdvance <= 0 {
		t.Fatalf("expected positive advance for 'A', got %v", m.HorzAdvance)
	}
}

func TestAFMLigatureSubstitution(t *testing.T) {
	src, err := LoadCore14(Helvetica)
	if err != nil {
		t.Fatalf("LoadCore14: %v", err)
	}
	f, _ := src.CharToGlyph('f')
	i, _ := src.CharToGlyph('i')
	n, _ := src.CharToGlyph('n')

	res, ok := src.Substitute([]GlyphID{f, i, n}, nil)
	if !ok {
		t.Fatal("expected fi ligature substitution")
	}
	if len(res.NewGlyphs) != 2 {
		t.Fatalf("expected 2 output glyphs (fi, n), got %d", len(res.NewGlyphs))
	}
	if res.Consumed[0] != 2 {
		t.Fatalf("expected ligature to consume 2 input glyphs, got %d", res.Consumed[0])
	}
}

func TestAFMKerningPair(t *testing.T) {
	src, err := LoadCore14(Helvetica)
	if err != nil {
		t.Fatalf("LoadCore14: %v", err)
	}
	a, _ := src.CharToGlyph('A')
	v, _ := src.CharToGlyph('V')

	adj := src.Kerning([]GlyphID{a, v}, nil)
	if len(adj) == 0 {
		t.Fatal("expected a kerning adjustment for AV")
	}
	if adj[0] >= 0 {
		t.Fatalf("expected negative (tightening) kern for AV, got %v", adj[0])
	}
}

func TestAllCore14FontsLoad(t *testing.T) {
	for k := TimesRoman; k <= ZapfDingbats; k++ {
		if _, err := LoadCore14(k); err != nil {
			t.Errorf("LoadCore14(%d): %v", k, err)
		}
	}
}
