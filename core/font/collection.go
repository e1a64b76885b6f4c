package font

import (
	"fmt"
)

// Axis is a variation-axis setting of a variable font.
type Axis struct {
	Tag   string // 4-byte OpenType axis tag, e.g. "wght"
	Value float32
}

// Ref is a shareable reference to a font, together with the variation-axis
// settings to apply to it. Two Refs to the same Font are distinct fonts as
// far as itemization and shaping are concerned.
type Ref struct {
	Font Font
	axes []Axis
}

// NewRef wraps a font in a Ref with no axis settings.
func NewRef(f Font) *Ref {
	return &Ref{Font: f}
}

// SetAxisLocation sets the design-space location for one variation axis,
// replacing an earlier setting for the same tag. Tags must be exactly 4
// bytes long; other tags are rejected and false is returned.
func (r *Ref) SetAxisLocation(tag string, value float32) bool {
	if len(tag) != 4 {
		tracer().Errorf("variation axis tag %q is not 4 bytes", tag)
		return false
	}
	for i := range r.axes {
		if r.axes[i].Tag == tag {
			r.axes[i].Value = value
			return true
		}
	}
	r.axes = append(r.axes, Axis{Tag: tag, Value: value})
	return true
}

// Axes returns the axis settings of r, in the order they were first set.
// Callers must not modify the returned slice.
func (r *Ref) Axes() []Axis {
	return r.axes
}

// ID returns the identity of the underlying font.
func (r *Ref) ID() ID {
	return ID(r.Font.PostscriptName())
}

func (r *Ref) String() string {
	return fmt.Sprintf("Ref(%s)", r.Font.PostscriptName())
}

// --- Families and collections ----------------------------------------------

// Family is an ordered group of fonts sharing a typeface, e.g. the weights
// and slants of "Helvetica". Coverage queries try the fonts in order.
type Family struct {
	fonts []*Ref
}

// NewFamily creates an empty font family.
func NewFamily() *Family {
	return &Family{}
}

// NewFamilyFromFont creates a family holding a single font.
func NewFamilyFromFont(f Font) *Family {
	fam := NewFamily()
	fam.AddFont(NewRef(f))
	return fam
}

// AddFont appends a font to the family.
func (fam *Family) AddFont(ref *Ref) {
	fam.fonts = append(fam.fonts, ref)
}

// supportsCodepoint reports whether the family covers a codepoint.
// Coverage is tested against the first font only; the alternates of a
// family are assumed to share its coverage.
func (fam *Family) supportsCodepoint(r rune) bool {
	if len(fam.fonts) == 0 {
		return false
	}
	_, ok := fam.fonts[0].Font.GlyphForChar(r)
	return ok
}

// Collection is an ordered list of font families, acting as a single
// composite font for itemization: each codepoint is served by the first
// family that covers it.
type Collection struct {
	families []*Family
}

// NewCollection creates an empty font collection.
func NewCollection() *Collection {
	return &Collection{}
}

// AddFamily appends a family to the collection. Families added first take
// precedence during itemization.
func (coll *Collection) AddFamily(fam *Family) {
	coll.families = append(coll.families, fam)
}

// chooseFont selects the font to render a codepoint with: the first font
// of the first covering family, defaulting to the collection's very first
// font when nothing covers the codepoint. Returns nil only for an empty
// collection.
func (coll *Collection) chooseFont(r rune) *Ref {
	for _, fam := range coll.families {
		if fam.supportsCodepoint(r) {
			return fam.fonts[0]
		}
	}
	for _, fam := range coll.families {
		if len(fam.fonts) > 0 {
			return fam.fonts[0]
		}
	}
	tracer().Errorf("itemizing over an empty font collection")
	return nil
}

// Itemize segments text into maximal runs renderable with a single font.
// Runs are reported in text order and cover the text completely; their
// boundaries are byte positions.
func (coll *Collection) Itemize(text string) *Itemizer {
	return &Itemizer{coll: coll, text: text}
}

// Itemizer iterates over the font runs of a text. Use it like
//
//	it := coll.Itemize(text)
//	for start, end, ref, ok := it.Next(); ok; start, end, ref, ok = it.Next() {
//	    ...
//	}
type Itemizer struct {
	coll *Collection
	text string
	pos  int
}

// Next reports the next font run, or ok=false when the text is exhausted.
func (it *Itemizer) Next() (start, end int, ref *Ref, ok bool) {
	if it.pos >= len(it.text) {
		return 0, 0, nil, false
	}
	start = it.pos
	for i, r := range it.text[it.pos:] {
		f := it.coll.chooseFont(r)
		if f == nil { // empty collection
			return 0, 0, nil, false
		}
		if ref == nil {
			ref = f
		} else if f != ref {
			it.pos = start + i
			tracer().Debugf("font run [%d,%d) uses %s", start, it.pos, ref)
			return start, it.pos, ref, true
		}
	}
	it.pos = len(it.text)
	tracer().Debugf("font run [%d,%d) uses %s", start, it.pos, ref)
	return start, it.pos, ref, true
}
