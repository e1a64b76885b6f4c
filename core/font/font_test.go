package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseOpenTypeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.fonts")
	defer teardown()
	//
	f, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if f.Fontname == "" {
		t.Errorf("expected font to have a name")
	}
	if f.UnitsPerEm() == 0 {
		t.Errorf("expected units-per-em to be positive")
	}
	gid, ok := f.GlyphForChar('A')
	if !ok || gid == 0 {
		t.Fatalf("expected Go Regular to cover 'A'")
	}
	adv, err := f.Advance(gid)
	if err != nil {
		t.Fatal(err)
	}
	if adv <= 0 {
		t.Errorf("expected positive advance for 'A', got %f", adv)
	}
	if _, ok := f.GlyphForChar(0x0915); ok { // Devanagari KA
		t.Errorf("expected Go Regular not to cover Devanagari")
	}
}

func TestCopyFontData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.fonts")
	defer teardown()
	//
	f := FallbackFont()
	data := f.CopyFontData()
	if len(data) != len(goregular.TTF) {
		t.Fatalf("expected a full copy of the font data")
	}
	data[0] = 0xff // copies must not alias the font
	if f.Binary[0] == 0xff {
		t.Errorf("expected CopyFontData to return an independent copy")
	}
}

func TestPostscriptName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.fonts")
	defer teardown()
	//
	f := FallbackFont()
	if f.PostscriptName() == "" {
		t.Errorf("expected fallback font to have a PostScript name")
	}
	t.Logf("fallback = %s", f.PostscriptName())
}
