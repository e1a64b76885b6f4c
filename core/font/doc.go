/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Helvetica".
This corresponds to a TrueType "collection" (*.ttc).

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2026 The skribo Authors

*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'skribo.fonts'
func tracer() tracing.Trace {
	return tracing.Select("skribo.fonts")
}
