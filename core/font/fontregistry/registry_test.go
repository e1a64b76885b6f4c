package fontregistry

import (
	"testing"

	"github.com/linebender/skribo/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	xfont "golang.org/x/image/font"
)

func TestStoreAndFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	fr.StoreFont("go_sans", font.FallbackFont())
	f, err := fr.Font("go_sans")
	if err != nil {
		t.Fatal(err)
	}
	if f.Fontname != "Go Sans" {
		t.Errorf("expected to find Go Sans, got %s", f.Fontname)
	}
}

func TestFallbackOnMiss(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	f, err := fr.Font("no_such_font")
	if err == nil {
		t.Errorf("expected an error for a missing font")
	}
	if f == nil {
		t.Fatalf("expected a fallback font for a missing font")
	}
}

func TestNormalizeFontname(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.fonts")
	defer teardown()
	//
	n := NormalizeFontname("Clarendon", xfont.StyleItalic, xfont.WeightBold)
	if n != "clarendon-italic-bold" {
		t.Errorf("expected different normalized name for clarendon, got %s", n)
	}
}

func TestGuessStyleAndWeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.fonts")
	defer teardown()
	//
	for k, v := range map[string]struct {
		s xfont.Style
		w xfont.Weight
	}{
		"fonts/Clarendon-bold.ttf":               {xfont.StyleNormal, xfont.WeightBold},
		"Microsoft/Gill Sans MT Bold Italic.ttf": {xfont.StyleItalic, xfont.WeightBold},
		"Cambria Math.ttf":                       {xfont.StyleNormal, xfont.WeightNormal},
	} {
		style, weight := GuessStyleAndWeight(k)
		t.Logf("style = %d, weight = %d", style, weight)
		if style != v.s || weight != v.w {
			t.Errorf("expected different style or weight for %s", k)
		}
	}
}

func TestMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.fonts")
	defer teardown()
	//
	if !Matches("fonts/Clarendon-bold.ttf",
		"clarendon", xfont.StyleNormal, xfont.WeightBold) {
		t.Errorf("expected match for Clarendon, haven't")
	}
	if !Matches("Cambria Math.ttf",
		"cambria", xfont.StyleNormal, xfont.WeightNormal) {
		t.Errorf("expected match for Cambria Math, haven't")
	}
}
