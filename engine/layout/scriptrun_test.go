package layout

import (
	"testing"

	"github.com/linebender/skribo/core/ucd"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScriptRunLatin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	script, l := ScriptRun("Hello, world!")
	if script != ucd.Latin {
		t.Errorf("expected Latin, got %s", script)
	}
	if l != len("Hello, world!") {
		t.Errorf("expected run over the whole text, got %d", l)
	}
}

func TestScriptRunBoundary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	// digits are Common and belong to the preceding Latin run
	text := "A5ब"
	script, l := ScriptRun(text)
	if script != ucd.Latin {
		t.Errorf("expected Latin, got %s", script)
	}
	if l != 2 {
		t.Errorf("expected run of 2 bytes, got %d", l)
	}
	script, l = ScriptRun(text[l:])
	if script != ucd.Devanagari {
		t.Errorf("expected Devanagari, got %s", script)
	}
	if l != len("ब") {
		t.Errorf("expected run of %d bytes, got %d", len("ब"), l)
	}
}

func TestScriptRunCommonOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	script, l := ScriptRun("123 !?")
	if script != ucd.Common {
		t.Errorf("expected Common for script-less text, got %s", script)
	}
	if l != len("123 !?") {
		t.Errorf("expected run over the whole text, got %d", l)
	}
}

func TestScriptRunInheritedMarks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	// combining acute inherits the script of its base
	text := "éब"
	script, l := ScriptRun(text)
	if script != ucd.Latin {
		t.Errorf("expected Latin, got %s", script)
	}
	if l != len("é") {
		t.Errorf("expected mark to extend the Latin run, got %d", l)
	}
}

func TestScriptRunUnknownIsConcrete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	// U+0378 is unassigned; its Unknown script delimits runs like any
	// concrete script, it never adopts a neighboring one
	script, l := ScriptRun("͸A")
	if script != ucd.Unknown {
		t.Errorf("expected Unknown, got %s", script)
	}
	if l != len("͸") {
		t.Errorf("expected run of %d bytes, got %d", len("͸"), l)
	}
	script, l = ScriptRun("͸͹")
	if script != ucd.Unknown {
		t.Errorf("expected Unknown for all-unassigned text, got %s", script)
	}
	if l != len("͸͹") {
		t.Errorf("expected run over the whole text, got %d", l)
	}
}

func TestScriptRunEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.layout")
	defer teardown()
	//
	script, l := ScriptRun("")
	if script != ucd.Unknown || l != 0 {
		t.Errorf("expected empty Unknown run, got %s/%d", script, l)
	}
}
