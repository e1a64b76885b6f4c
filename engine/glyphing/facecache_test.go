package glyphing

import (
	"testing"

	"github.com/linebender/skribo/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// countingShaper counts face compilations.
type countingShaper struct {
	compiled int
}

type dummyFace struct {
	f font.Font
}

func (d dummyFace) Font() font.Font { return d.f }

func (cs *countingShaper) CompileFace(f font.Font) (Face, error) {
	cs.compiled++
	return dummyFace{f: f}, nil
}

func (cs *countingShaper) Shape(face Face, text string, buf []Glyph, params Params) ([]Glyph, error) {
	return buf, nil
}

func TestFaceCacheCompilesOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.glyphs")
	defer teardown()
	//
	cs := &countingShaper{}
	cache := NewFaceCache(cs)
	defer cache.Close()
	f := font.FallbackFont()
	h1, err := cache.FaceFor(f)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := cache.FaceFor(f)
	if err != nil {
		t.Fatal(err)
	}
	if cs.compiled != 1 {
		t.Errorf("expected 1 compilation for repeated requests, got %d", cs.compiled)
	}
	if h1 != h2 {
		t.Errorf("expected both handles to share the cached face")
	}
	if cache.Len() != 1 {
		t.Errorf("expected 1 cached face, got %d", cache.Len())
	}
	h1.Release()
	h2.Release()
}

func TestFaceCacheClose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.glyphs")
	defer teardown()
	//
	cs := &countingShaper{}
	cache := NewFaceCache(cs)
	f := font.FallbackFont()
	h, err := cache.FaceFor(f)
	if err != nil {
		t.Fatal(err)
	}
	cache.Close()
	if cache.Len() != 0 {
		t.Errorf("expected cache to be empty after Close")
	}
	if h.Face() == nil {
		t.Errorf("expected retained face to survive Close")
	}
	h.Release()
	if h.Face() != nil {
		t.Errorf("expected face to be invalidated after final Release")
	}
}
