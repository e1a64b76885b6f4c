/*
Package monospace implements a simple shaper for monospace output.

Each grapheme cluster becomes one glyph, advancing by one or two
half-em cells (UAX #11 East Asian width). There is no substitution and
no positioning, which makes this backend handy for terminal-style
output and for tests needing predictable glyph streams.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2026 The skribo Authors

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'skribo.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("skribo.glyphs")
}
