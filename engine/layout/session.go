package layout

import (
	"unicode/utf8"

	"github.com/linebender/skribo/core"
	"github.com/linebender/skribo/core/font"
	"github.com/linebender/skribo/core/ucd"
	"github.com/linebender/skribo/engine/glyphing"
	"github.com/linebender/skribo/engine/glyphing/opentype"
)

// SessionParams configures layout session creation. The zero value shapes
// with the OpenType backend and a private face cache.
type SessionParams struct {
	// Shaper is the shaping backend. nil selects the OpenType backend.
	// Ignored when Faces is set; a face cache dictates its shaper.
	Shaper glyphing.Shaper
	// Faces is the face cache to draw compiled faces from, shared between
	// the sessions of one layout worker. nil creates a private cache,
	// closed together with the session.
	Faces *glyphing.FaceCache
	// Unicode overrides the character property callbacks used during
	// shaping. nil selects the standard UCD properties.
	Unicode *glyphing.UnicodeFuncs
}

// A Session retains the layout of one text: the text is segmented into
// script runs, itemized against a font collection, and shaped fragment by
// fragment at creation time. Queries then answer from the retained
// fragments without re-shaping.
//
// Sessions are confined to a single goroutine. Close a session to give
// its compiled faces back.
type Session struct {
	text         string
	style        TextStyle
	fragments    []*Fragment
	shaper       glyphing.Shaper
	faces        *glyphing.FaceCache
	ownFaces     bool
	unicode      *glyphing.UnicodeFuncs
	scratchFrags []*Fragment
	scratch      []GlyphInfo
	closed       bool
}

// Create lays out text in the fonts of a collection. The collection must
// hold at least one font if text is non-empty.
func Create(text string, style TextStyle, coll *font.Collection, params SessionParams) (*Session, error) {
	shaper := params.Shaper
	faces := params.Faces
	ownFaces := false
	if faces != nil {
		shaper = faces.Shaper()
	} else {
		if shaper == nil {
			shaper = opentype.Shaper()
		}
		faces = glyphing.NewFaceCache(shaper)
		ownFaces = true
	}
	s := &Session{
		text:     text,
		style:    style,
		shaper:   shaper,
		faces:    faces,
		ownFaces: ownFaces,
		unicode:  params.Unicode,
	}
	pos := 0
	for pos < len(text) {
		script, runlen := ScriptRun(text[pos:])
		runEnd := pos + runlen
		tracer().Debugf("script run %s over [%d,%d)", script, pos, runEnd)
		covered := false
		it := coll.Itemize(text[pos:runEnd])
		for start, end, ref, ok := it.Next(); ok; start, end, ref, ok = it.Next() {
			covered = true
			face, err := faces.FaceFor(ref.Font)
			if err != nil {
				s.Close()
				return nil, err
			}
			frag, err := shapeFragment(shaper, face, style, text[pos+start:pos+end],
				script, ref, params.Unicode)
			if err != nil {
				face.Release()
				s.Close()
				return nil, err
			}
			s.fragments = append(s.fragments, frag)
		}
		if !covered {
			s.Close()
			return nil, core.Error(core.EINVALID, "cannot lay out text with an empty font collection")
		}
		pos = runEnd
	}
	return s, nil
}

// Text returns the text the session was created for.
func (s *Session) Text() string {
	return s.text
}

// Style returns the text style the session was created with.
func (s *Session) Style() TextStyle {
	return s.style
}

// Close gives the session's compiled faces back. A private face cache is
// closed along with the session. Close is idempotent; queries on a closed
// session yield nothing.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, frag := range s.fragments {
		frag.face.Release()
	}
	s.fragments = nil
	s.scratchFrags = nil
	if s.ownFaces {
		s.faces.Close()
	}
}

// GlyphInfo is one glyph of a query result. Its offset is relative to the
// query origin: the pen position where the queried range begins.
type GlyphInfo struct {
	Glyph   font.GlyphID
	Offset  Point // position in points, relative to the query origin
	Cluster int   // byte offset of the glyph's cluster in the session text
}

// Run is a stretch of query-result glyphs sharing one script and font.
type Run struct {
	Script  ucd.Script
	Font    *font.Ref
	Advance Point // total advance of the run's glyphs
	glyphs  []GlyphInfo
}

// Glyphs returns the run's glyphs in visual order.
func (run Run) Glyphs() []GlyphInfo {
	return run.glyphs
}

// RangeIter iterates over the runs of a layout query.
type RangeIter struct {
	runs []Run
	pos  int
}

// Next reports the next run, or ok=false when the query is exhausted.
func (it *RangeIter) Next() (Run, bool) {
	if it.pos >= len(it.runs) {
		return Run{}, false
	}
	run := it.runs[it.pos]
	it.pos++
	return run, true
}

// IterAll returns the glyphs of the whole text, straight from the
// retained fragments.
//
// The result stays valid until the next query on the same session, which
// reuses the session's result buffer.
func (s *Session) IterAll() *RangeIter {
	textPos := make([]int, len(s.fragments))
	pos := 0
	for i, frag := range s.fragments {
		textPos[i] = pos
		pos += frag.substrLen
	}
	return s.materialize(s.fragments, textPos)
}

// IterSubstr returns the glyphs for the byte range [start,end) of the
// session text. The full range answers from the retained fragments; any
// narrower range re-shapes the clipped slice of every overlapped
// fragment, with the fragment's font and script. Offsets are relative to
// the start of the range. Both boundaries must lie on UTF-8 rune
// boundaries.
//
// The result stays valid until the next query on the same session, which
// reuses the session's result buffers.
func (s *Session) IterSubstr(start, end int) (*RangeIter, error) {
	if start < 0 || end < start || end > len(s.text) {
		return nil, core.Error(core.EINVALID, "substring [%d,%d) out of range for text of %d bytes",
			start, end, len(s.text))
	}
	if start < len(s.text) && !utf8.RuneStart(s.text[start]) ||
		end < len(s.text) && !utf8.RuneStart(s.text[end]) {
		return nil, core.Error(core.EINVALID, "substring [%d,%d) splits a UTF-8 sequence", start, end)
	}
	if start == 0 && end == len(s.text) {
		return s.IterAll(), nil
	}
	if start == end {
		return &RangeIter{}, nil
	}
	s.scratchFrags = s.scratchFrags[:0]
	var textPos []int
	fragStart := 0
	for _, frag := range s.fragments {
		fragEnd := fragStart + frag.substrLen
		if fragEnd <= start {
			fragStart = fragEnd
			continue
		}
		if fragStart >= end {
			break
		}
		clipLo, clipHi := fragStart, fragEnd
		if clipLo < start {
			clipLo = start
		}
		if clipHi > end {
			clipHi = end
		}
		sub, err := shapeFragment(s.shaper, frag.face, s.style, s.text[clipLo:clipHi],
			frag.script, frag.font, s.unicode)
		if err != nil {
			return nil, err
		}
		s.scratchFrags = append(s.scratchFrags, sub)
		textPos = append(textPos, clipLo)
		fragStart = fragEnd
	}
	return s.materialize(s.scratchFrags, textPos), nil
}

// materialize copies the fragments' glyphs into the session's result
// buffer, folding fragment advances into offsets from the query origin.
// textPos maps each fragment to the byte position of its text in the
// session text, for absolute cluster values.
func (s *Session) materialize(frags []*Fragment, textPos []int) *RangeIter {
	type span struct {
		lo, hi int
	}
	spans := make([]span, len(frags))
	s.scratch = s.scratch[:0]
	origin := Point{}
	for i, frag := range frags {
		lo := len(s.scratch)
		for _, g := range frag.glyphs {
			s.scratch = append(s.scratch, GlyphInfo{
				Glyph:   g.Glyph,
				Offset:  origin.Add(g.Offset),
				Cluster: textPos[i] + g.Cluster,
			})
		}
		spans[i] = span{lo: lo, hi: len(s.scratch)}
		origin = origin.Add(frag.advance)
	}
	runs := make([]Run, len(frags))
	for i, frag := range frags {
		runs[i] = Run{
			Script:  frag.script,
			Font:    frag.font,
			Advance: frag.advance,
			glyphs:  s.scratch[spans[i].lo:spans[i].hi],
		}
	}
	return &RangeIter{runs: runs}
}
