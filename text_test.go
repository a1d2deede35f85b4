package glint

import "testing"

func TestDefaultFont(t *testing.T) {
	f := DefaultFont()
	if f != DefaultFont() {
		t.Error("DefaultFont should be cached")
	}
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight = %v", f.LineHeight())
	}
}

func TestMeasureGrowsWithText(t *testing.T) {
	f := DefaultFont()
	w1, h1 := f.Measure("Alf")
	w2, _ := f.Measure("Alfred Nyongesa")
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("Measure(Alf) = %v x %v", w1, h1)
	}
	if w2 <= w1 {
		t.Errorf("longer text measured %v, not wider than %v", w2, w1)
	}
	if w, _ := f.Measure(""); w != 0 {
		t.Errorf("empty width = %v", w)
	}
}

func TestLoadFontInvalid(t *testing.T) {
	if _, err := LoadFont([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid font data")
	}
}
