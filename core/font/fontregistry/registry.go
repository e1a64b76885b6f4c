package fontregistry

import (
	"path"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/linebender/skribo/core"
	"github.com/linebender/skribo/core/font"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
)

// Registry is a type for holding information about loaded fonts for a
// client application.
type Registry struct {
	sync.Mutex
	fonts map[string]*font.ScalableFont
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

func NewRegistry() *Registry {
	fr := &Registry{
		fonts: make(map[string]*font.ScalableFont),
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(normalizedName string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalizedName]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, normalizedName)
		fr.fonts[normalizedName] = f
	}
}

// Font returns a font stored under a normalized name.
//
// If no such font is present, Font will return a system-wide fallback font,
// together with an error.
func (fr *Registry) Font(normalizedName string) (*font.ScalableFont, error) {
	fr.Lock()
	defer fr.Unlock()
	if f, ok := fr.fonts[normalizedName]; ok {
		return f, nil
	}
	tracer().Infof("registry does not contain font %s", normalizedName)
	err := core.Error(core.EMISSING, "font %s not found in registry", normalizedName)
	return font.FallbackFont(), err
}

// ResolveFont locates a font by name, style and weight: first in the
// registry, then as a system font. Resolved system fonts are stored in the
// registry for later calls.
//
// If nothing can be located, ResolveFont returns a fallback font, together
// with an error.
func (fr *Registry) ResolveFont(name string, style xfont.Style, weight xfont.Weight) (*font.ScalableFont, error) {
	normalized := NormalizeFontname(name, style, weight)
	fr.Lock()
	if f, ok := fr.fonts[normalized]; ok {
		fr.Unlock()
		return f, nil
	}
	fr.Unlock()
	for _, filename := range fontFileCandidates(name, style, weight) {
		fpath, err := findfont.Find(filename)
		if err != nil || fpath == "" {
			continue
		}
		tracer().Debugf("%s is a system font: %s", name, fpath)
		f, err := font.LoadOpenTypeFont(fpath)
		if err != nil {
			tracer().Errorf("cannot load system font %s: %v", fpath, err)
			continue
		}
		fr.StoreFont(normalized, f)
		return f, nil
	}
	err := core.Error(core.EMISSING, "no font found for %s", normalized)
	return font.FallbackFont(), err
}

// fontFileCandidates builds the file names a font with a given style and
// weight is conventionally stored under.
func fontFileCandidates(name string, style xfont.Style, weight xfont.Weight) []string {
	base := strings.ReplaceAll(strings.TrimSpace(name), " ", "")
	var suffixes []string
	switch {
	case style == xfont.StyleItalic && weight >= xfont.WeightSemiBold:
		suffixes = []string{"-BoldItalic", "-BoldOblique", "bi"}
	case style == xfont.StyleItalic:
		suffixes = []string{"-Italic", "-Oblique", "i"}
	case weight >= xfont.WeightSemiBold:
		suffixes = []string{"-Bold", "b"}
	case weight <= xfont.WeightLight:
		suffixes = []string{"-Light", "-Regular", ""}
	default:
		suffixes = []string{"-Regular", ""}
	}
	var candidates []string
	for _, suffix := range suffixes {
		candidates = append(candidates, base+suffix+".ttf", base+suffix+".otf")
	}
	return candidates
}

// LogFontList is a helper function to dump the list of known fonts in a
// registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	fr.Lock()
	defer fr.Unlock()
	for k, v := range fr.fonts {
		tracer().Infof("font [%s] = %v", k, v.Fontname)
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// NormalizeFontname produces a canonical registry key from a font name plus
// style and weight attributes.
func NormalizeFontname(fname string, style xfont.Style, weight xfont.Weight) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	switch style {
	case xfont.StyleItalic, xfont.StyleOblique:
		fname += "-italic"
	}
	switch weight {
	case xfont.WeightLight, xfont.WeightExtraLight:
		fname += "-light"
	case xfont.WeightBold, xfont.WeightExtraBold, xfont.WeightSemiBold:
		fname += "-bold"
	}
	return fname
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") {
		style = xfont.StyleItalic
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}

// Matches returns true if a font's filename contains pattern and indicators
// for a given style and weight.
func Matches(fontfilename, pattern string, style xfont.Style, weight xfont.Weight) bool {
	basename := path.Base(fontfilename)
	basename = basename[:len(basename)-len(path.Ext(basename))]
	basename = strings.ToLower(basename)
	if !strings.Contains(basename, strings.ToLower(pattern)) {
		return false
	}
	s, w := GuessStyleAndWeight(basename)
	return s == style && w == weight
}
