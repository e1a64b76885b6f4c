package monospace_test

import (
	"testing"

	"github.com/linebender/skribo/core/font"
	"github.com/linebender/skribo/engine/glyphing"
	"github.com/linebender/skribo/engine/glyphing/monospace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMonospaceShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.glyphs")
	defer teardown()
	//
	sh := monospace.Shaper(nil)
	f := font.FallbackFont()
	face, err := sh.CompileFace(f)
	if err != nil {
		t.Fatal(err)
	}
	glyphs, err := sh.Shape(face, "Hello", nil, glyphing.Params{})
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 5 {
		t.Fatalf("expected 5 glyphs, got %d", len(glyphs))
	}
	cell := float32(f.UnitsPerEm()) / 2
	for i, g := range glyphs {
		if g.ClusterID != i {
			t.Errorf("expected cluster %d, got %d", i, g.ClusterID)
		}
		if g.XAdvance != cell {
			t.Errorf("expected narrow advance %f, got %f", cell, g.XAdvance)
		}
	}
}

func TestMonospaceWideCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.glyphs")
	defer teardown()
	//
	sh := monospace.Shaper(nil)
	face, err := sh.CompileFace(font.FallbackFont())
	if err != nil {
		t.Fatal(err)
	}
	glyphs, err := sh.Shape(face, "a世b", nil, glyphing.Params{}) // 世 is wide
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 3 {
		t.Fatalf("expected 3 glyphs, got %d", len(glyphs))
	}
	if glyphs[1].XAdvance != 2*glyphs[0].XAdvance {
		t.Errorf("expected wide character to take two cells")
	}
	if glyphs[2].ClusterID != 2 {
		t.Errorf("expected cluster positions in runes, got %d", glyphs[2].ClusterID)
	}
}

func TestMonospaceCombiningMark(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.glyphs")
	defer teardown()
	//
	sh := monospace.Shaper(nil)
	face, err := sh.CompileFace(font.FallbackFont())
	if err != nil {
		t.Fatal(err)
	}
	// lone combining acute, not attached to any base
	glyphs, err := sh.Shape(face, "́", nil, glyphing.Params{})
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 1 {
		t.Fatalf("expected 1 glyph, got %d", len(glyphs))
	}
	if glyphs[0].XAdvance != 0 {
		t.Errorf("expected zero advance for a lone combining mark")
	}
}
