package font

import (
	"io/ioutil"
	"sync"

	"github.com/linebender/skribo/core"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// ID identifies a font across process boundaries, derived from the font's
// PostScript name. Two fonts with equal IDs are treated as interchangeable,
// e.g. by face caches.
type ID string

// Font is the font capability needed for itemization and layout: character
// coverage, basic metrics, and access to the underlying font data.
//
// Implementations need not be safe for concurrent use unless documented
// otherwise.
type Font interface {
	// GlyphForChar returns the glyph for a codepoint, or false if the font
	// has no coverage for it. Codepoints mapping to glyph 0 (.notdef)
	// count as uncovered.
	GlyphForChar(r rune) (GlyphID, bool)
	// UnitsPerEm returns the design units per em-square.
	UnitsPerEm() uint16
	// Advance returns the horizontal advance of a glyph in font units.
	Advance(gid GlyphID) (float32, error)
	// CopyFontData returns a copy of the raw font file, or nil if the
	// font's data is not available as a byte stream.
	CopyFontData() []byte
	// PostscriptName returns the font's PostScript name.
	PostscriptName() string
}

// ScalableFont wraps an OpenType font parsed from a font file.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

var _ Font = (*ScalableFont)(nil)

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := ioutil.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot load font %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses an OpenType font (TTF or OTF) from binary data.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "not a valid OpenType font")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return f, nil
}

// GlyphForChar looks up r in the font's character map.
func (sf *ScalableFont) GlyphForChar(r rune) (GlyphID, bool) {
	gid, err := sf.SFNT.GlyphIndex(nil, r)
	if err != nil || gid == 0 {
		return 0, false
	}
	return GlyphID(gid), true
}

// UnitsPerEm returns the design units per em-square.
func (sf *ScalableFont) UnitsPerEm() uint16 {
	return uint16(sf.SFNT.UnitsPerEm())
}

// Advance returns the horizontal advance of a glyph in font units.
func (sf *ScalableFont) Advance(gid GlyphID) (float32, error) {
	upem := fixed.Int26_6(sf.SFNT.UnitsPerEm()) << 6
	adv, err := sf.SFNT.GlyphAdvance(nil, sfnt.GlyphIndex(gid), upem, xfont.HintingNone)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "no advance for glyph %d", gid)
	}
	return float32(adv) / 64, nil
}

// CopyFontData returns a copy of the raw font file.
func (sf *ScalableFont) CopyFontData() []byte {
	if sf.Binary == nil {
		return nil
	}
	return append([]byte(nil), sf.Binary...)
}

// PostscriptName returns the font's PostScript name, falling back on the
// full font name if the name table carries no PostScript entry.
func (sf *ScalableFont) PostscriptName() string {
	if name, err := sf.SFNT.Name(nil, sfnt.NameIDPostScript); err == nil && name != "" {
		return name
	}
	return sf.Fontname
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}
