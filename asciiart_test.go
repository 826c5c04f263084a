package asciiart

import "testing"

func TestGlyphTableExact(t *testing.T) {
	t.Parallel()

	want := [16]string{" ", "~", "$", ">", "╶", "=", "<", "=", "^", "+", "$", "$", "~", "*", "@", "#"}
	for i, g := range want {
		if Glyphs[i] != g {
			t.Errorf("Glyphs[%d] = %q, want %q", i, Glyphs[i], g)
		}
	}
	if got := Glyphs.Glyph(FullBlock); got != "#" {
		t.Errorf("Glyph(FullBlock) = %q, want \"#\"", got)
	}
}

func TestGlyphTableDuplicates(t *testing.T) {
	t.Parallel()

	groups := [][]PatternIndex{
		{1, 12},
		{5, 7},
		{2, 10, 11},
	}
	for _, group := range groups {
		for _, idx := range group[1:] {
			if Glyphs.Glyph(idx) != Glyphs.Glyph(group[0]) {
				t.Errorf("Glyph(%d) = %q, want same as Glyph(%d) = %q",
					idx, Glyphs.Glyph(idx), group[0], Glyphs.Glyph(group[0]))
			}
		}
	}

	// Every other pair is distinct.
	same := map[[2]PatternIndex]bool{
		{1, 12}: true, {5, 7}: true, {2, 10}: true, {2, 11}: true, {10, 11}: true,
	}
	for i := PatternIndex(0); i < 16; i++ {
		for j := i + 1; j < 16; j++ {
			if same[[2]PatternIndex{i, j}] {
				continue
			}
			if Glyphs.Glyph(i) == Glyphs.Glyph(j) {
				t.Errorf("Glyph(%d) and Glyph(%d) unexpectedly share %q", i, j, Glyphs.Glyph(i))
			}
		}
	}
}

func TestGlyphMasksHighBits(t *testing.T) {
	t.Parallel()

	if got := Glyphs.Glyph(0x10 | 8); got != "^" {
		t.Errorf("Glyph(0x18) = %q, want \"^\"", got)
	}
}
