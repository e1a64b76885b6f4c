package main

// skribo-render lays out a line of text and rasterizes it into a PGM
// (portable graymap) image:
//
//	skribo-render -text "Hello, world!" -size 32 -o hello.pgm
//
// Without -font, a built-in fallback font is used.

import (
	"flag"
	"fmt"
	"image"
	"math"
	"os"

	"github.com/linebender/skribo/core"
	"github.com/linebender/skribo/core/font"
	"github.com/linebender/skribo/core/font/fontregistry"
	"github.com/linebender/skribo/engine/layout"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// tracer traces with key 'skribo.layout'
func tracer() tracing.Trace {
	return tracing.Select("skribo.layout")
}

func main() {
	text := flag.String("text", "Hello, world!", "text to lay out")
	fontname := flag.String("font", "", "font to use (a system font name)")
	size := flag.Float64("size", 32, "font size in points")
	out := flag.String("o", "out.pgm", "output file (PGM)")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	setupTracing(*tlevel)
	//
	sf := resolveFont(*fontname)
	coll := font.NewCollection()
	coll.AddFamily(font.NewFamilyFromFont(sf))
	style := layout.TextStyle{Size: float32(*size)}
	session, err := layout.Create(*text, style, coll, layout.SessionParams{})
	if err != nil {
		core.UserError(err)
		os.Exit(1)
	}
	defer session.Close()
	img, err := render(session, sf, *size)
	if err != nil {
		core.UserError(err)
		os.Exit(1)
	}
	if err := writePGM(*out, img); err != nil {
		core.UserError(err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%dx%d)\n", *out, img.Rect.Dx(), img.Rect.Dy())
}

func setupTracing(level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.skribo.fonts":  level,
		"trace.skribo.glyphs": level,
		"trace.skribo.layout": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func resolveFont(name string) *font.ScalableFont {
	if name == "" {
		return font.FallbackFont()
	}
	f, err := fontregistry.GlobalRegistry().ResolveFont(name, xfont.StyleNormal, xfont.WeightNormal)
	if err != nil {
		tracer().Infof("font %s not found, using fallback", name)
	}
	return f
}

// render rasterizes the session's glyphs onto a white canvas.
func render(session *layout.Session, sf *font.ScalableFont, size float64) (*image.Alpha, error) {
	ppem := fixed.Int26_6(size * 64)
	var buf sfnt.Buffer
	metrics, err := sf.SFNT.Metrics(&buf, ppem, xfont.HintingNone)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font has no metrics")
	}
	ascent := float64(metrics.Ascent) / 64
	descent := float64(metrics.Descent) / 64
	margin := size / 2
	var width float64
	it := session.IterAll()
	for run, ok := it.Next(); ok; run, ok = it.Next() {
		width += float64(run.Advance.X)
	}
	w := int(math.Ceil(width + 2*margin))
	h := int(math.Ceil(ascent + descent + 2*margin))
	baseline := margin + ascent
	//
	rast := vector.NewRasterizer(w, h)
	it = session.IterAll()
	for run, ok := it.Next(); ok; run, ok = it.Next() {
		tracer().Debugf("rendering %d glyphs of script %s", len(run.Glyphs()), run.Script)
		for _, g := range run.Glyphs() {
			dx := float32(margin) + g.Offset.X
			dy := float32(baseline) + g.Offset.Y
			if err := appendGlyphPath(rast, sf, &buf, g.Glyph, ppem, dx, dy); err != nil {
				return nil, err
			}
		}
	}
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	rast.Draw(img, img.Bounds(), image.Opaque, image.Point{})
	return img, nil
}

// appendGlyphPath adds a glyph's outline to the rasterizer, translated by
// (dx, dy).
func appendGlyphPath(rast *vector.Rasterizer, sf *font.ScalableFont, buf *sfnt.Buffer,
	gid font.GlyphID, ppem fixed.Int26_6, dx, dy float32) error {
	//
	segments, err := sf.SFNT.LoadGlyph(buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot load outline for glyph %d", gid)
	}
	pt := func(p fixed.Point26_6) (float32, float32) {
		return dx + float32(p.X)/64, dy + float32(p.Y)/64
	}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := pt(seg.Args[0])
			rast.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			rast.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			rast.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			ex, ey := pt(seg.Args[2])
			rast.CubeTo(bx, by, cx, cy, ex, ey)
		}
	}
	rast.ClosePath()
	return nil
}

// writePGM writes the coverage image as a binary PGM file, dark text on a
// white background.
func writePGM(path string, img *image.Alpha) error {
	f, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create %s", path)
	}
	defer f.Close()
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if _, err := fmt.Fprintf(f, "P5\n%d %d\n255\n", w, h); err != nil {
		return err
	}
	row := make([]byte, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			row[x] = 255 - img.AlphaAt(img.Rect.Min.X+x, img.Rect.Min.Y+y).A
		}
		if _, err := f.Write(row); err != nil {
			return err
		}
	}
	return nil
}
