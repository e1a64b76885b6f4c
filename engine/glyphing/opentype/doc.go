/*
Package opentype implements a shaping backend on top of a pure-Go
OpenType shaping engine.

The engine offers no hook for the character property callbacks of
glyphing.Params: normalization during shaping consults the engine's
built-in Unicode tables, and Params.Unicode is ignored by this backend.
Callbacks do govern everything outside the engine (script segmentation
and the script tags handed to it).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2026 The skribo Authors

*/
package opentype

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'skribo.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("skribo.glyphs")
}
