package layout_test

import (
	"testing"

	"github.com/linebender/skribo/core/font"
	"github.com/linebender/skribo/core/ucd"
	"github.com/linebender/skribo/engine/glyphing"
	"github.com/linebender/skribo/engine/glyphing/monospace"
	"github.com/linebender/skribo/engine/layout"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// rangeFont is a test font covering a range of codepoints.
type rangeFont struct {
	name   string
	lo, hi rune
}

func (f *rangeFont) GlyphForChar(r rune) (font.GlyphID, bool) {
	if r >= f.lo && r <= f.hi {
		return font.GlyphID(r & 0xffff), true
	}
	return 0, false
}

func (f *rangeFont) UnitsPerEm() uint16 { return 1000 }

func (f *rangeFont) Advance(font.GlyphID) (float32, error) { return 500, nil }

func (f *rangeFont) CopyFontData() []byte { return nil }

func (f *rangeFont) PostscriptName() string { return f.name }

func testCollection() *font.Collection {
	coll := font.NewCollection()
	coll.AddFamily(font.NewFamilyFromFont(&rangeFont{name: "Test-Latin", lo: 0, hi: 0x2ff}))
	coll.AddFamily(font.NewFamilyFromFont(&rangeFont{name: "Test-Deva", lo: 0x900, hi: 0x97f}))
	return coll
}

// monospace cells are half an em wide, so at 10pt a narrow glyph
// advances by 5pt
const style10 = 10.0

func createSession(t *testing.T, text string) *layout.Session {
	s, err := layout.Create(text, layout.TextStyle{Size: style10}, testCollection(),
		layout.SessionParams{Shaper: monospace.Shaper(nil)})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSessionIterAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	s := createSession(t, "Hello")
	defer s.Close()
	it := s.IterAll()
	run, ok := it.Next()
	if !ok {
		t.Fatal("expected a run")
	}
	assert.Equal(t, ucd.Latin, run.Script)
	glyphs := run.Glyphs()
	if len(glyphs) != 5 {
		t.Fatalf("expected 5 glyphs, got %d", len(glyphs))
	}
	for i, g := range glyphs {
		assert.Equal(t, i, g.Cluster, "cluster should be the byte position")
		assert.InDelta(t, float32(i)*5, g.Offset.X, 0.001, "glyphs should advance by one cell")
	}
	assert.InDelta(t, 25.0, run.Advance.X, 0.001)
	if _, ok := it.Next(); ok {
		t.Errorf("expected a single run")
	}
}

func TestSessionMixedScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	s := createSession(t, "abबcd")
	defer s.Close()
	it := s.IterAll()
	var runs []layout.Run
	for run, ok := it.Next(); ok; run, ok = it.Next() {
		runs = append(runs, run)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	assert.Equal(t, ucd.Latin, runs[0].Script)
	assert.Equal(t, ucd.Devanagari, runs[1].Script)
	assert.Equal(t, ucd.Latin, runs[2].Script)
	assert.Equal(t, "Test-Deva", runs[1].Font.Font.PostscriptName())
	// positions continue across run boundaries
	assert.InDelta(t, 10.0, runs[1].Glyphs()[0].Offset.X, 0.001)
	assert.InDelta(t, 15.0, runs[2].Glyphs()[0].Offset.X, 0.001)
	// clusters are byte positions in the session text
	assert.Equal(t, 2, runs[1].Glyphs()[0].Cluster)
	assert.Equal(t, 5, runs[2].Glyphs()[0].Cluster)
}

func TestSessionIterSubstr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	s := createSession(t, "Hello world")
	defer s.Close()
	it, err := s.IterSubstr(6, 11)
	if err != nil {
		t.Fatal(err)
	}
	run, ok := it.Next()
	if !ok {
		t.Fatal("expected a run")
	}
	glyphs := run.Glyphs()
	if len(glyphs) != 5 {
		t.Fatalf("expected 5 glyphs for \"world\", got %d", len(glyphs))
	}
	assert.Equal(t, 6, glyphs[0].Cluster)
	assert.InDelta(t, 0.0, glyphs[0].Offset.X, 0.001, "offsets are relative to the query origin")
	assert.InDelta(t, 25.0, run.Advance.X, 0.001)
}

func TestSessionSubstrFullRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	text := "abबcd"
	s := createSession(t, text)
	defer s.Close()
	// material of the first query is copied out; the second query
	// overwrites the session's result buffer
	var want []layout.GlyphInfo
	it := s.IterAll()
	for run, ok := it.Next(); ok; run, ok = it.Next() {
		want = append(want, run.Glyphs()...)
	}
	sub, err := s.IterSubstr(0, len(text))
	if err != nil {
		t.Fatal(err)
	}
	var got []layout.GlyphInfo
	for run, ok := sub.Next(); ok; run, ok = sub.Next() {
		got = append(got, run.Glyphs()...)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d glyphs, got %d", len(want), len(got))
	}
	for i := range want {
		assert.Equal(t, want[i].Glyph, got[i].Glyph)
		assert.Equal(t, want[i].Cluster, got[i].Cluster)
		assert.InDelta(t, want[i].Offset.X, got[i].Offset.X, 0.001)
		assert.InDelta(t, want[i].Offset.Y, got[i].Offset.Y, 0.001)
	}
}

func TestSessionSubstrAdvancesSum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	text := "abबcd"
	s := createSession(t, text)
	defer s.Close()
	var total float32
	for _, cut := range [][2]int{{0, 2}, {2, 5}, {5, 7}} {
		it, err := s.IterSubstr(cut[0], cut[1])
		if err != nil {
			t.Fatal(err)
		}
		for run, ok := it.Next(); ok; run, ok = it.Next() {
			total += run.Advance.X
		}
	}
	it := s.IterAll()
	var whole float32
	for run, ok := it.Next(); ok; run, ok = it.Next() {
		whole += run.Advance.X
	}
	assert.InDelta(t, whole, total, 0.001, "substring advances should sum to the whole")
}

func TestSessionIterSubstrErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	s := createSession(t, "abबcd")
	defer s.Close()
	if _, err := s.IterSubstr(-1, 2); err == nil {
		t.Errorf("expected error for negative start")
	}
	if _, err := s.IterSubstr(2, 8); err == nil {
		t.Errorf("expected error for end past the text")
	}
	if _, err := s.IterSubstr(4, 5); err == nil {
		t.Errorf("expected error for a boundary inside a UTF-8 sequence")
	}
}

func TestSessionEmptyText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	s := createSession(t, "")
	defer s.Close()
	if _, ok := s.IterAll().Next(); ok {
		t.Errorf("expected no runs for empty text")
	}
}

func TestSessionEmptyCollection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	_, err := layout.Create("abc", layout.TextStyle{Size: style10}, font.NewCollection(),
		layout.SessionParams{Shaper: monospace.Shaper(nil)})
	if err == nil {
		t.Errorf("expected error for an empty collection")
	}
}

func TestSessionOpenTypeBackend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	coll := font.NewCollection()
	coll.AddFamily(font.NewFamilyFromFont(font.FallbackFont()))
	s, err := layout.Create("Hello", layout.TextStyle{Size: 12}, coll, layout.SessionParams{})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	run, ok := s.IterAll().Next()
	if !ok {
		t.Fatal("expected a run")
	}
	glyphs := run.Glyphs()
	if len(glyphs) != 5 {
		t.Fatalf("expected 5 glyphs, got %d", len(glyphs))
	}
	last := float32(-1)
	for _, g := range glyphs {
		if g.Offset.X <= last {
			t.Errorf("expected strictly increasing glyph positions")
		}
		last = g.Offset.X
	}
	if run.Advance.X <= last {
		t.Errorf("expected total advance beyond the last glyph position")
	}
}

func TestSessionSharedFaceCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	cache := glyphing.NewFaceCache(monospace.Shaper(nil))
	defer cache.Close()
	coll := testCollection()
	s1, err := layout.Create("one", layout.TextStyle{Size: style10}, coll,
		layout.SessionParams{Faces: cache})
	if err != nil {
		t.Fatal(err)
	}
	s2, err := layout.Create("two", layout.TextStyle{Size: style10}, coll,
		layout.SessionParams{Faces: cache})
	if err != nil {
		t.Fatal(err)
	}
	if cache.Len() != 1 {
		t.Errorf("expected sessions to share one compiled face, cache holds %d", cache.Len())
	}
	s1.Close()
	s2.Close()
	if cache.Len() != 1 {
		t.Errorf("expected shared cache to keep faces after session close")
	}
}
