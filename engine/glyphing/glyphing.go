/*
Package glyphing turns sequences of Unicode code-points into sequences of
positioned glyphs.

Shaping is delegated to pluggable backends implementing interface Shaper.
Backends compile a font into a Face, an opaque form suited for repeated
shaping calls; faces are expensive to build and meant to be cached, see
FaceCache.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2026 The skribo Authors

*/
package glyphing

import (
	"fmt"

	"github.com/linebender/skribo/core/font"
	"github.com/linebender/skribo/core/ucd"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces with key 'skribo.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("skribo.glyphs")
}

// Direction is the direction to typeset text in.
type Direction int

// Direction to typeset text in.
//
//go:generate stringer -type=Direction
const (
	LeftToRight Direction = iota
	RightToLeft
)

// UnicodeFuncs bundles the character property callbacks a shaping backend
// consults: script, canonical combining class, canonical composition and
// decomposition, and BiDi mirroring. A zero function falls back on the
// standard property, so clients only override what they need.
type UnicodeFuncs struct {
	Script         func(rune) ucd.Script
	CombiningClass func(rune) uint8
	Compose        func(a, b rune) (rune, bool)
	Decompose      func(rune) (rune, rune, bool)
	Mirror         func(rune) (rune, bool)
}

// StandardUnicodeFuncs returns property callbacks answering from the
// Unicode Character Database tables of package ucd.
func StandardUnicodeFuncs() *UnicodeFuncs {
	return &UnicodeFuncs{
		Script:         ucd.Lookup,
		CombiningClass: ucd.CombiningClass,
		Compose:        ucd.Compose,
		Decompose:      ucd.Decompose,
		Mirror:         ucd.Mirror,
	}
}

// FeatureRange tells a shaper to turn a certain OpenType feature on or off
// for a run of code-points.
type FeatureRange struct {
	Feature    string // 4-letter feature tag
	Arg        int    // optional argument for this feature
	On         bool   // turn it on or off?
	Start, End int    // position of code-points to apply feature for
}

// Params collects shaping parameters.
type Params struct {
	Font      *font.Ref      // font to shape with, including axis settings
	Direction Direction      // writing direction
	Script    ucd.Script     // script the text is written in
	Language  language.Tag   // BCP 47 language tag
	Features  []FeatureRange // OpenType features to apply
	Unicode   *UnicodeFuncs  // character property callbacks, nil = standard
}

// A Glyph lives in font units (the design space of the font it was shaped
// with). Scaling to a point-size is left to clients.
type Glyph struct {
	ClusterID     int          // position of code-point(s) for this glyph in original string
	GID           font.GlyphID // glyph index within font
	XAdvance      float32      // advance after glyph has been set, in font units
	YAdvance      float32      //
	XOffset       float32      // position of anchor dot for glyph, in font units
	YOffset       float32      //
	UnsafeToBreak bool         // re-shaping is required when breaking before this glyph
	CodePoint     rune         // code-point of first rune to produce this glyph
}

func (g Glyph) String() string {
	return fmt.Sprintf("(GID=%d, cluster=%d, advance=%.1f)", g.GID, g.ClusterID, g.XAdvance)
}

// Face is a compiled form of a font, specific to the shaper that built it.
type Face interface {
	Font() font.Font // the font this face was compiled from
}

// A Shaper creates a sequence of glyphs from a sequence of Unicode
// code-points, using glyphs from a previously compiled face.
type Shaper interface {
	// CompileFace prepares a font for repeated shaping calls.
	CompileFace(f font.Font) (Face, error)
	// Shape shapes text, appending positioned glyphs to buf (which may be
	// nil). face must have been compiled by this shaper.
	Shape(face Face, text string, buf []Glyph, params Params) ([]Glyph, error)
}
