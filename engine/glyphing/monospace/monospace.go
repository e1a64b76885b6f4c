package monospace

import (
	"unicode/utf8"

	"github.com/linebender/skribo/core/font"
	"github.com/linebender/skribo/engine/glyphing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

type msshape struct {
	context *uax11.Context
}

// Shaper creates a shaper for monospace typesetting. An East Asian width
// context may be given to resolve ambiguous-width characters; if it is
// nil, a Latin context is used.
func Shaper(context *uax11.Context) glyphing.Shaper {
	if context == nil {
		context = uax11.LatinContext
	}
	grapheme.SetupGraphemeClasses()
	return &msshape{context: context}
}

type msFace struct {
	f font.Font
}

func (face msFace) Font() font.Font {
	return face.f
}

// CompileFace wraps a font. Monospace shaping needs no shaping tables.
func (ms *msshape) CompileFace(f font.Font) (glyphing.Face, error) {
	return msFace{f: f}, nil
}

// Shape creates a glyph sequence from a text. Every grapheme cluster maps
// to the glyph of its first code-point, advancing by its cell width in
// half-ems. Combining marks forming a degenerate cluster of their own get
// a zero advance.
func (ms *msshape) Shape(face glyphing.Face, text string, buf []glyphing.Glyph,
	params glyphing.Params) ([]glyphing.Glyph, error) {
	//
	f := face.Font()
	cell := float32(f.UnitsPerEm()) / 2
	unicode := params.Unicode
	if unicode == nil {
		unicode = glyphing.StandardUnicodeFuncs()
	}
	gstr := grapheme.StringFromString(text)
	if buf == nil {
		buf = make([]glyphing.Glyph, 0, gstr.Len())
	}
	runepos := 0
	for i, l := 0, gstr.Len(); i < l; i++ {
		grphm := gstr.Nth(i)
		w := uax11.Width([]byte(grphm), ms.context)
		codepoint, _ := utf8.DecodeRuneInString(grphm)
		if params.Direction == glyphing.RightToLeft && unicode.Mirror != nil {
			if m, ok := unicode.Mirror(codepoint); ok {
				codepoint = m
			}
		}
		g := glyphing.Glyph{
			ClusterID: runepos,
			XAdvance:  float32(w) * cell,
			CodePoint: codepoint,
		}
		if gid, ok := f.GlyphForChar(codepoint); ok {
			g.GID = gid
		}
		if unicode.CombiningClass != nil && unicode.CombiningClass(codepoint) > 0 {
			g.XAdvance = 0
		}
		buf = append(buf, g)
		runepos += utf8.RuneCountInString(grphm)
	}
	tracer().Debugf("monospace-shaped %d clusters", gstr.Len())
	return buf, nil
}
