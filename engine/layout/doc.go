/*
Package layout computes text layout: Unicode string in, positioned glyphs
out.

Text is first segmented into script runs, each run itemized against a
font collection, and every resulting fragment shaped with a shaping
backend (see package glyphing). The result is retained in a Session,
which answers glyph queries for the whole text and for substrings.

A Session and its face cache are confined to one goroutine; create one
session per layout worker.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2026 The skribo Authors

*/
package layout

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'skribo.layout'.
func tracer() tracing.Trace {
	return tracing.Select("skribo.layout")
}
