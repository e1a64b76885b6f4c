package ucd

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScriptLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.glyphs")
	defer teardown()
	//
	cases := []struct {
		cp     rune
		script Script
	}{
		{'A', Latin},
		{'Ж', Cyrillic},
		{0x092c, Devanagari}, // ब
		{'5', Common},
		{0x0301, Inherited}, // combining acute
		{0xac00, Hangul},
		{0xe0000, Unknown}, // unassigned
	}
	for _, c := range cases {
		if s := Lookup(c.cp); s != c.script {
			t.Errorf("script of U+%04X: expected %s, got %s", c.cp, c.script, s)
		}
	}
}

func TestScriptLookupTotal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.glyphs")
	defer teardown()
	//
	for cp := rune(0); cp <= 0x10ffff; cp += 257 { // stride to keep it quick
		_ = Lookup(cp)
	}
	if Lookup(-1) != Unknown || Lookup(0x110000) != Unknown {
		t.Errorf("expected out-of-range codepoints to map to Unknown")
	}
}

func TestScriptString(t *testing.T) {
	if Latin.String() != "Latn" {
		t.Errorf("expected Latin tag to be Latn, is %s", Latin.String())
	}
	if Unknown.String() != "Zzzz" {
		t.Errorf("expected Unknown tag to be Zzzz, is %s", Unknown.String())
	}
}

func TestCombiningClass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.glyphs")
	defer teardown()
	//
	if ccc := CombiningClass(0x0300); ccc != 230 {
		t.Errorf("expected ccc(U+0300) = 230, is %d", ccc)
	}
	if ccc := CombiningClass('a'); ccc != 0 {
		t.Errorf("expected ccc(a) = 0, is %d", ccc)
	}
	if ccc := CombiningClass(0x3099); ccc != 8 { // kana voicing mark
		t.Errorf("expected ccc(U+3099) = 8, is %d", ccc)
	}
}

func TestComposeDecompose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.glyphs")
	defer teardown()
	//
	if c, ok := Compose('A', 0x0300); !ok || c != 0x00c0 {
		t.Errorf("expected A + grave = U+00C0, got U+%04X (%v)", c, ok)
	}
	a, b, ok := Decompose(0x00c0)
	if !ok || a != 'A' || b != 0x0300 {
		t.Errorf("expected U+00C0 to decompose to A + grave, got U+%04X U+%04X", a, b)
	}
	if _, ok := Compose('a', 'b'); ok {
		t.Errorf("expected a + b not to compose")
	}
	// U+0958 is a composition exclusion and must not re-compose
	if c, ok := Compose(0x0915, 0x093c); ok {
		t.Errorf("expected QA to stay excluded from composition, got U+%04X", c)
	}
}

func TestHangul(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.glyphs")
	defer teardown()
	//
	a, b, ok := Decompose(0xac00) // 가 = L+V
	if !ok || a != 0x1100 || b != 0x1161 {
		t.Errorf("expected U+AC00 = U+1100 U+1161, got U+%04X U+%04X", a, b)
	}
	a, b, ok = Decompose(0xac01) // 각 = LV+T
	if !ok || a != 0xac00 || b != 0x11a8 {
		t.Errorf("expected U+AC01 = U+AC00 U+11A8, got U+%04X U+%04X", a, b)
	}
	if c, ok := Compose(0x1100, 0x1161); !ok || c != 0xac00 {
		t.Errorf("expected L+V to compose to U+AC00, got U+%04X (%v)", c, ok)
	}
	if c, ok := Compose(0xac00, 0x11a8); !ok || c != 0xac01 {
		t.Errorf("expected LV+T to compose to U+AC01, got U+%04X (%v)", c, ok)
	}
	if _, _, ok := Decompose(0xd7a4); ok { // first codepoint past the block
		t.Errorf("expected U+D7A4 to have no decomposition")
	}
}

func TestMirror(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.glyphs")
	defer teardown()
	//
	if m, ok := Mirror('('); !ok || m != ')' {
		t.Errorf("expected ( to mirror to ), got %c (%v)", m, ok)
	}
	if m, ok := Mirror('<'); !ok || m != '>' {
		t.Errorf("expected < to mirror to >, got %c (%v)", m, ok)
	}
	if _, ok := Mirror('a'); ok {
		t.Errorf("expected a to have no mirror")
	}
}
