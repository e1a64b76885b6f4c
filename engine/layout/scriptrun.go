package layout

import (
	"github.com/linebender/skribo/core/ucd"
)

// ScriptRun returns the script of the leading script run of text, together
// with the byte length of the run.
//
// Codepoints with script Common or Inherited (digits, punctuation,
// combining marks) never end a run; they take on the script of the
// surrounding letters. All other scripts, including Unknown for
// unassigned codepoints, are concrete and delimit runs. A text
// consisting solely of Common/Inherited codepoints forms one run of
// script Common. Empty text yields (Unknown, 0).
func ScriptRun(text string) (ucd.Script, int) {
	if text == "" {
		return ucd.Unknown, 0
	}
	var script ucd.Script
	for i, r := range text {
		s := ucd.Lookup(r)
		switch {
		case i == 0:
			script = s
		case s == script:
			// run extends
		case script == ucd.Common || script == ucd.Inherited:
			// leading common/inherited codepoints adopt the first
			// concrete script
			script = s
		case s == ucd.Common || s == ucd.Inherited:
			// trailing common/inherited codepoints attach to the run
		default:
			return script, i
		}
	}
	if script == ucd.Inherited {
		script = ucd.Common
	}
	return script, len(text)
}
