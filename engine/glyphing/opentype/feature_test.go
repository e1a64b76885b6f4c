package opentype

import (
	"testing"

	"github.com/boxesandglue/textshape/ot"
	"github.com/linebender/skribo/engine/glyphing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFeatureConversion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skribo.glyphs")
	defer teardown()
	//
	feats := features([]glyphing.FeatureRange{
		{Feature: "liga", On: true},
		{Feature: "kern", On: false, Start: 2, End: 5},
		{Feature: "x", On: true}, // dropped, not a 4-byte tag
	})
	if len(feats) != 2 {
		t.Fatalf("expected 2 features, got %d", len(feats))
	}
	if feats[0].Tag != ot.MakeTag('l', 'i', 'g', 'a') || feats[0].Value != 1 {
		t.Errorf("unexpected liga feature: %v", feats[0])
	}
	if feats[0].End != ot.FeatureGlobalEnd {
		t.Errorf("expected unset range to apply to the whole buffer, got end %d", feats[0].End)
	}
	if feats[1].Value != 0 || feats[1].Start != 2 || feats[1].End != 5 {
		t.Errorf("unexpected kern feature: %v", feats[1])
	}
}
