package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// coverageFont is a test font covering a fixed set of codepoints.
type coverageFont struct {
	name   string
	covers func(rune) bool
}

func (f *coverageFont) GlyphForChar(r rune) (GlyphID, bool) {
	if f.covers(r) {
		return GlyphID(r & 0xffff), true
	}
	return 0, false
}

func (f *coverageFont) UnitsPerEm() uint16 { return 1000 }

func (f *coverageFont) Advance(GlyphID) (float32, error) { return 600, nil }

func (f *coverageFont) CopyFontData() []byte { return nil }

func (f *coverageFont) PostscriptName() string { return f.name }

func latinFont() *coverageFont {
	return &coverageFont{name: "Test-Latin", covers: func(r rune) bool {
		return r < 0x0300
	}}
}

func devaFont() *coverageFont {
	return &coverageFont{name: "Test-Deva", covers: func(r rune) bool {
		return r >= 0x0900 && r <= 0x097f
	}}
}

func itemizeAll(coll *Collection, text string) (starts, ends []int, refs []*Ref) {
	it := coll.Itemize(text)
	for s, e, ref, ok := it.Next(); ok; s, e, ref, ok = it.Next() {
		starts = append(starts, s)
		ends = append(ends, e)
		refs = append(refs, ref)
	}
	return
}

func TestItemizeSingleRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.fonts")
	defer teardown()
	//
	coll := NewCollection()
	coll.AddFamily(NewFamilyFromFont(latinFont()))
	starts, ends, refs := itemizeAll(coll, "hello")
	if len(refs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(refs))
	}
	if starts[0] != 0 || ends[0] != 5 {
		t.Errorf("expected run [0,5), got [%d,%d)", starts[0], ends[0])
	}
}

func TestItemizeMixedScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.fonts")
	defer teardown()
	//
	coll := NewCollection()
	coll.AddFamily(NewFamilyFromFont(latinFont()))
	coll.AddFamily(NewFamilyFromFont(devaFont()))
	text := "abब" // 2 Latin bytes + 3 Devanagari bytes
	starts, ends, refs := itemizeAll(coll, text)
	if len(refs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(refs))
	}
	if ends[0] != 2 || starts[1] != 2 || ends[1] != len(text) {
		t.Errorf("unexpected run boundaries: %v %v", starts, ends)
	}
	if refs[0].Font.PostscriptName() != "Test-Latin" ||
		refs[1].Font.PostscriptName() != "Test-Deva" {
		t.Errorf("runs assigned to wrong fonts: %v", refs)
	}
}

func TestItemizeFallsBackToFirstFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.fonts")
	defer teardown()
	//
	coll := NewCollection()
	coll.AddFamily(NewFamilyFromFont(latinFont()))
	coll.AddFamily(NewFamilyFromFont(devaFont()))
	// Hangul is covered by neither family
	starts, ends, refs := itemizeAll(coll, "a가b")
	if len(refs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(refs))
	}
	if refs[1].Font.PostscriptName() != "Test-Latin" {
		t.Errorf("expected uncovered codepoint to fall back on first font, got %v", refs[1])
	}
	if starts[0] != 0 || ends[2] != len("a가b") {
		t.Errorf("expected runs to cover the text, got %v %v", starts, ends)
	}
}

func TestItemizeCoverageFirstFontOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.fonts")
	defer teardown()
	//
	// alternates of a family never participate in coverage decisions,
	// and runs always carry the family's first font
	fam := NewFamily()
	fam.AddFont(NewRef(latinFont()))
	fam.AddFont(NewRef(devaFont()))
	coll := NewCollection()
	coll.AddFamily(fam)
	starts, ends, refs := itemizeAll(coll, "ब")
	if len(refs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(refs))
	}
	if refs[0].Font.PostscriptName() != "Test-Latin" {
		t.Errorf("expected fallback on the family's first font, got %v", refs[0])
	}
	if starts[0] != 0 || ends[0] != len("ब") {
		t.Errorf("expected run over the whole text, got [%d,%d)", starts[0], ends[0])
	}
}

func TestItemizeFamilyOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.fonts")
	defer teardown()
	//
	wide := &coverageFont{name: "Test-Wide", covers: func(r rune) bool { return true }}
	coll := NewCollection()
	coll.AddFamily(NewFamilyFromFont(latinFont()))
	coll.AddFamily(NewFamilyFromFont(wide))
	_, _, refs := itemizeAll(coll, "ab")
	if len(refs) != 1 || refs[0].Font.PostscriptName() != "Test-Latin" {
		t.Errorf("expected earlier family to win, got %v", refs)
	}
}

func TestItemizeEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.fonts")
	defer teardown()
	//
	coll := NewCollection()
	coll.AddFamily(NewFamilyFromFont(latinFont()))
	if _, _, _, ok := coll.Itemize("").Next(); ok {
		t.Errorf("expected no runs for empty text")
	}
	empty := NewCollection()
	if _, _, _, ok := empty.Itemize("abc").Next(); ok {
		t.Errorf("expected no runs for empty collection")
	}
}

func TestRefAxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.fonts")
	defer teardown()
	//
	ref := NewRef(latinFont())
	if ref.SetAxisLocation("weight", 700) { // not a 4-byte tag
		t.Errorf("expected long axis tag to be rejected")
	}
	if !ref.SetAxisLocation("wght", 700) {
		t.Errorf("expected wght tag to be accepted")
	}
	ref.SetAxisLocation("wdth", 80)
	ref.SetAxisLocation("wght", 400) // overrides earlier setting
	axes := ref.Axes()
	if len(axes) != 2 {
		t.Fatalf("expected 2 axis settings, got %d", len(axes))
	}
	if axes[0].Tag != "wght" || axes[0].Value != 400 {
		t.Errorf("expected wght=400 first, got %v", axes[0])
	}
	if ref.ID() != "Test-Latin" {
		t.Errorf("expected font ID from PostScript name, got %s", ref.ID())
	}
}
