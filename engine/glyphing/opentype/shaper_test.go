package opentype_test

import (
	"testing"

	"github.com/linebender/skribo/core/font"
	"github.com/linebender/skribo/core/ucd"
	"github.com/linebender/skribo/engine/glyphing"
	"github.com/linebender/skribo/engine/glyphing/opentype"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOTShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.glyphs")
	defer teardown()
	//
	input := "Hello"
	sh := opentype.Shaper()
	face, err := sh.CompileFace(font.FallbackFont())
	if err != nil {
		t.Fatal(err)
	}
	glyphs, err := sh.Shape(face, input, nil, glyphing.Params{
		Script: ucd.Latin,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != len(input) {
		t.Fatalf("expected %d output glyphs, have %d", len(input), len(glyphs))
	}
	for i, g := range glyphs {
		t.Logf("[%3d] %s", i, g)
		if g.ClusterID != i {
			t.Errorf("expected cluster %d for glyph %d, got %d", i, i, g.ClusterID)
		}
		if g.GID == 0 {
			t.Errorf("expected non-notdef glyph for %q", input[i])
		}
		if g.XAdvance <= 0 {
			t.Errorf("expected positive advance for glyph %d", i)
		}
		if g.UnsafeToBreak {
			t.Errorf("expected simple Latin text to be safe to break")
		}
	}
	if glyphs[2].GID != glyphs[3].GID { // 'l' and 'l'
		t.Errorf("expected equal glyphs for equal characters")
	}
}

func TestOTShapeEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.glyphs")
	defer teardown()
	//
	sh := opentype.Shaper()
	face, err := sh.CompileFace(font.FallbackFont())
	if err != nil {
		t.Fatal(err)
	}
	glyphs, err := sh.Shape(face, "", nil, glyphing.Params{})
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 0 {
		t.Errorf("expected no glyphs for empty text, got %d", len(glyphs))
	}
}

func TestOTFaceReportsFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.glyphs")
	defer teardown()
	//
	sh := opentype.Shaper()
	f := font.FallbackFont()
	face, err := sh.CompileFace(f)
	if err != nil {
		t.Fatal(err)
	}
	if face.Font() != font.Font(f) {
		t.Errorf("expected face to report its source font")
	}
}
