package layout

import (
	"github.com/linebender/skribo/core"
	"github.com/linebender/skribo/core/font"
	"github.com/linebender/skribo/core/ucd"
	"github.com/linebender/skribo/engine/glyphing"
	"golang.org/x/text/language"
)

// FragmentGlyph is one glyph of a shaped fragment, positioned in points
// relative to the fragment's origin.
type FragmentGlyph struct {
	Cluster       int          // byte offset of the glyph's cluster within the fragment text
	Glyph         font.GlyphID //
	Offset        Point        // pen position plus shaping offset
	Advance       float32      // horizontal advance
	UnsafeToBreak bool         // re-shaping is required when breaking before this glyph
}

// Fragment is a maximal run of text in a single script, shaped with a
// single font. Fragments retain the compiled face they were shaped with
// until their session is closed.
type Fragment struct {
	substrLen int        // byte length of the fragment's slice of the session text
	script    ucd.Script //
	advance   Point      // total advance of the fragment
	glyphs    []FragmentGlyph
	font      *font.Ref
	face      *glyphing.FaceHandle
}

// Script returns the script the fragment was shaped for.
func (frag *Fragment) Script() ucd.Script {
	return frag.script
}

// Font returns the font the fragment was shaped with.
func (frag *Fragment) Font() *font.Ref {
	return frag.font
}

// Advance returns the total advance of the fragment.
func (frag *Fragment) Advance() Point {
	return frag.advance
}

// shapeFragment shapes one itemized run of text and scales the shaper's
// font-unit output to points.
func shapeFragment(shaper glyphing.Shaper, face *glyphing.FaceHandle, style TextStyle,
	text string, script ucd.Script, ref *font.Ref, unicode *glyphing.UnicodeFuncs) (*Fragment, error) {
	//
	raw, err := shaper.Shape(face.Face(), text, nil, glyphing.Params{
		Font:      ref,
		Direction: glyphing.LeftToRight,
		Script:    script,
		Language:  language.AmericanEnglish,
		Unicode:   unicode,
	})
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot shape %q", text)
	}
	upem := ref.Font.UnitsPerEm()
	if upem == 0 {
		return nil, core.Error(core.EINVALID, "font %s has no em-square", ref)
	}
	scale := style.Size / float32(upem)
	frag := &Fragment{
		substrLen: len(text),
		script:    script,
		glyphs:    make([]FragmentGlyph, 0, len(raw)),
		font:      ref,
		face:      face,
	}
	byteOff := clusterOffsets(text)
	pen := Point{}
	for _, g := range raw {
		frag.glyphs = append(frag.glyphs, FragmentGlyph{
			Cluster: byteOff[g.ClusterID],
			Glyph:   g.GID,
			Offset: Point{
				X: pen.X + g.XOffset*scale,
				Y: pen.Y - g.YOffset*scale,
			},
			Advance:       g.XAdvance * scale,
			UnsafeToBreak: g.UnsafeToBreak,
		})
		pen.X += g.XAdvance * scale
		pen.Y -= g.YAdvance * scale
	}
	frag.advance = pen
	return frag, nil
}

// clusterOffsets maps rune indices of a text to byte offsets. Shapers
// report clusters as rune positions, fragments store byte positions.
func clusterOffsets(text string) []int {
	offsets := make([]int, 0, len(text))
	for i := range text {
		offsets = append(offsets, i)
	}
	return offsets
}
