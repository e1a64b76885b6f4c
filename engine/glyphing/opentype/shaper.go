package opentype

import (
	"strings"

	"github.com/boxesandglue/textshape/ot"
	"github.com/linebender/skribo/core"
	"github.com/linebender/skribo/core/font"
	"github.com/linebender/skribo/core/ucd"
	"github.com/linebender/skribo/engine/glyphing"
	"golang.org/x/text/language"
)

type otShaper struct{}

// Shaper creates a shaper for OpenType shaping (GSUB/GPOS substitution
// and positioning). Output glyphs live in font units.
func Shaper() glyphing.Shaper {
	return otShaper{}
}

// otFace is a compiled font: the parsed font tables plus the shaping
// engine's internal state for them.
type otFace struct {
	f      font.Font
	face   *ot.Face
	shaper *ot.Shaper
}

func (f *otFace) Font() font.Font {
	return f.f
}

// CompileFace parses the font's binary data and compiles the shaping
// tables. It panics if the font cannot provide its data as a byte stream.
func (otShaper) CompileFace(f font.Font) (glyphing.Face, error) {
	data := f.CopyFontData()
	if data == nil {
		panic("font data unavailable")
	}
	otf, err := ot.ParseFont(data, 0)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font %s", f.PostscriptName())
	}
	face, err := ot.NewFace(otf)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "no metrics in font %s", f.PostscriptName())
	}
	shaper, err := ot.NewShaperFromFace(face)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot shape with font %s", f.PostscriptName())
	}
	tracer().Debugf("compiled face for %s, upem=%d", f.PostscriptName(), face.Upem())
	return &otFace{f: f, face: face, shaper: shaper}, nil
}

// Shape shapes text with a face compiled by CompileFace.
//
// Glyph clusters index runes of text. Variation-axis settings are taken
// from params.Font on every call, since faces may be shared between Refs
// of one font.
func (otShaper) Shape(face glyphing.Face, text string, buf []glyphing.Glyph,
	params glyphing.Params) ([]glyphing.Glyph, error) {
	//
	fc, ok := face.(*otFace)
	if !ok {
		return nil, core.Error(core.EINVALID, "face was not compiled by this shaper")
	}
	fc.shaper.SetVariations(variations(params.Font))
	b := ot.NewBuffer()
	b.AddString(text)
	if params.Script != 0 && params.Script != ucd.Unknown {
		b.Script = ot.Tag(params.Script)
	}
	if tag := langTag(params.Language); tag != 0 {
		b.Language = tag
	}
	if params.Direction == glyphing.RightToLeft {
		b.SetDirection(ot.DirectionRTL)
	} else {
		b.SetDirection(ot.DirectionLTR)
	}
	b.GuessSegmentProperties()
	fc.shaper.Shape(b, features(params.Features))
	if buf == nil {
		buf = make([]glyphing.Glyph, 0, b.Len())
	}
	for i, info := range b.Info {
		pos := b.Pos[i]
		g := glyphing.Glyph{
			ClusterID: info.Cluster,
			GID:       font.GlyphID(info.GlyphID),
			XAdvance:  float32(pos.XAdvance),
			YAdvance:  float32(pos.YAdvance),
			XOffset:   float32(pos.XOffset),
			YOffset:   float32(pos.YOffset),
			CodePoint: rune(info.Codepoint),
		}
		// The engine reports no break safety, so flag cluster merges
		// conservatively: breaking inside a merged cluster re-shapes.
		if i > 0 && info.Cluster == b.Info[i-1].Cluster {
			g.UnsafeToBreak = true
			if n := len(buf); n > 0 {
				buf[n-1].UnsafeToBreak = true
			}
		}
		buf = append(buf, g)
	}
	return buf, nil
}

// langTag maps a BCP 47 tag to an OpenType language-system tag, using the
// uppercase ISO 639 alpha-3 code padded with a space. Returns 0 for the
// undetermined language.
func langTag(t language.Tag) ot.Tag {
	base, conf := t.Base()
	if conf == language.No {
		return 0
	}
	iso3 := base.ISO3()
	if len(iso3) != 3 {
		return 0
	}
	up := strings.ToUpper(iso3)
	return ot.MakeTag(up[0], up[1], up[2], ' ')
}

// variations converts the axis settings of a font reference.
func variations(ref *font.Ref) []ot.Variation {
	if ref == nil {
		return nil
	}
	axes := ref.Axes()
	if len(axes) == 0 {
		return nil
	}
	vars := make([]ot.Variation, len(axes))
	for i, a := range axes {
		vars[i] = ot.Variation{
			Tag:   ot.MakeTag(a.Tag[0], a.Tag[1], a.Tag[2], a.Tag[3]),
			Value: a.Value,
		}
	}
	return vars
}

// features converts feature ranges to the engine's format.
func features(ranges []glyphing.FeatureRange) []ot.Feature {
	if len(ranges) == 0 {
		return nil
	}
	feats := make([]ot.Feature, 0, len(ranges))
	for _, frng := range ranges {
		if len(frng.Feature) != 4 {
			tracer().Errorf("feature tag %q is not 4 bytes, ignored", frng.Feature)
			continue
		}
		f := ot.Feature{
			Tag:   ot.MakeTag(frng.Feature[0], frng.Feature[1], frng.Feature[2], frng.Feature[3]),
			Start: uint(frng.Start),
			End:   uint(frng.End),
		}
		if frng.End <= 0 { // unset range applies to the whole buffer
			f.End = ot.FeatureGlobalEnd
		}
		if frng.On {
			if frng.Arg > 0 {
				f.Value = uint32(frng.Arg)
			} else {
				f.Value = 1
			}
		}
		feats = append(feats, f)
	}
	return feats
}
