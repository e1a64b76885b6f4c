/*
Package ucd provides the Unicode character properties that script
itemization and shaping depend on: script, canonical combining class,
canonical composition and decomposition, and BiDi mirroring.

All properties are answered from tables generated offline by
scripts/gen_tables.py, except for Hangul syllables, which compose and
decompose algorithmically (Unicode 15.0, chapter 3.12). The package has
no state and is safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2026 The skribo Authors

*/
package ucd

import (
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Script is a Unicode script property value, encoded as its ISO 15924
// tag packed big-endian, e.g. Latin = 'Latn'.
type Script uint32

// String returns the 4-letter ISO 15924 tag.
func (s Script) String() string {
	return string([]byte{byte(s >> 24), byte(s >> 16), byte(s >> 8), byte(s)})
}

// Hangul syllable composition constants, Unicode chapter 3.12.
const (
	hangulSBase  = 0xac00
	hangulLBase  = 0x1100
	hangulVBase  = 0x1161
	hangulTBase  = 0x11a7
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)

type scriptRange struct {
	lo, hi rune
	script Script
}

// Lookup returns the script property of a codepoint. Codepoints outside
// every assigned range, including invalid ones, map to Unknown.
func Lookup(cp rune) Script {
	n := len(scriptRanges)
	i := sort.Search(n, func(i int) bool {
		return scriptRanges[i].hi >= cp
	})
	if i < n && scriptRanges[i].lo <= cp {
		return scriptRanges[i].script
	}
	return Unknown
}

// CombiningClass returns the canonical combining class of a codepoint.
func CombiningClass(cp rune) uint8 {
	return norm.NFD.PropertiesString(string(cp)).CCC()
}

// Compose returns the canonical composition of a pair of codepoints, or
// false if the pair has none. Composition exclusions and non-starter
// decompositions are already absent from the table.
func Compose(a, b rune) (rune, bool) {
	if hangulLBase <= a && a < hangulLBase+hangulLCount &&
		hangulVBase <= b && b < hangulVBase+hangulVCount {
		return hangulSBase + (a-hangulLBase)*hangulNCount + (b-hangulVBase)*hangulTCount, true
	}
	if hangulSBase <= a && a < hangulSBase+hangulSCount && (a-hangulSBase)%hangulTCount == 0 &&
		hangulTBase < b && b < hangulTBase+hangulTCount {
		return a + (b - hangulTBase), true
	}
	key := uint64(a)<<21 | uint64(b)
	n := len(composeKey)
	i := sort.Search(n, func(i int) bool {
		return composeKey[i] >= key
	})
	if i < n && composeKey[i] == key {
		return composeVal[i], true
	}
	return 0, false
}

// Decompose returns the canonical decomposition of a codepoint, or false
// if it has none. Singleton decompositions return 0 as second codepoint.
// Hangul syllables decompose to L+V or LV+T.
func Decompose(cp rune) (rune, rune, bool) {
	if s := cp - hangulSBase; 0 <= s && s < hangulSCount {
		if s%hangulTCount != 0 {
			return hangulSBase + (s/hangulTCount)*hangulTCount, hangulTBase + s%hangulTCount, true
		}
		return hangulLBase + s/hangulNCount, hangulVBase + (s%hangulNCount)/hangulTCount, true
	}
	n := len(decompKey)
	i := sort.Search(n, func(i int) bool {
		return decompKey[i] >= cp
	})
	if i < n && decompKey[i] == cp {
		return decompVal[i][0], decompVal[i][1], true
	}
	return 0, 0, false
}

// Mirror returns the BiDi-mirrored counterpart of a codepoint, or false
// if it has none.
func Mirror(cp rune) (rune, bool) {
	n := len(mirrorKey)
	i := sort.Search(n, func(i int) bool {
		return mirrorKey[i] >= cp
	})
	if i < n && mirrorKey[i] == cp {
		return mirrorVal[i], true
	}
	return 0, false
}
