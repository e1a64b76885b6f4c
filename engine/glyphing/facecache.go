package glyphing

import (
	"github.com/linebender/skribo/core/font"
)

// FaceCache caches compiled faces of a single shaper, keyed by font
// identity (the font's PostScript name). Layout clients keep one cache per
// worker goroutine; a FaceCache is not safe for concurrent use.
//
// Fonts with equal PostScript names share a compiled face. Shapers
// therefore must not bake per-Ref state (such as variation-axis settings)
// into faces, but take it from Params on every Shape call.
type FaceCache struct {
	shaper  Shaper
	entries map[font.ID]*FaceHandle
}

// NewFaceCache creates a face cache for a shaper.
func NewFaceCache(shaper Shaper) *FaceCache {
	return &FaceCache{
		shaper:  shaper,
		entries: make(map[font.ID]*FaceHandle),
	}
}

// FaceHandle is a counted reference to a cached face. Every handle
// obtained from FaceFor or Retain must be given back with Release.
type FaceHandle struct {
	cache *FaceCache
	id    font.ID
	face  Face
	refs  int
}

// FaceFor returns a handle to the compiled face for a font, compiling it
// on the first request for the font's identity.
func (fc *FaceCache) FaceFor(f font.Font) (*FaceHandle, error) {
	id := font.ID(f.PostscriptName())
	if h, ok := fc.entries[id]; ok {
		return h.Retain(), nil
	}
	tracer().Debugf("face cache compiles face for font %s", id)
	face, err := fc.shaper.CompileFace(f)
	if err != nil {
		return nil, err
	}
	h := &FaceHandle{cache: fc, id: id, face: face, refs: 1} // cache's own reference
	fc.entries[id] = h
	return h.Retain(), nil
}

// Shaper returns the shaper this cache compiles faces with.
func (fc *FaceCache) Shaper() Shaper {
	return fc.shaper
}

// Len returns the number of faces currently cached.
func (fc *FaceCache) Len() int {
	return len(fc.entries)
}

// Close releases the cache's own references. Faces still retained by
// clients stay valid until their handles are released.
func (fc *FaceCache) Close() {
	for id, h := range fc.entries {
		delete(fc.entries, id)
		h.Release()
	}
}

// Face returns the compiled face.
func (h *FaceHandle) Face() Face {
	return h.face
}

// Retain acquires an additional reference to the face.
func (h *FaceHandle) Retain() *FaceHandle {
	h.refs++
	return h
}

// Release gives a reference back. The face is invalidated once all
// handles and the cache's own reference are released.
func (h *FaceHandle) Release() {
	if h.refs <= 0 {
		tracer().Errorf("face handle for %s released more often than retained", h.id)
		return
	}
	h.refs--
	if h.refs == 0 {
		h.face = nil
	}
}
