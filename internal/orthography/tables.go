// Package orthography holds the static classification data for Vietnamese
// syllables: which letters are vowels, which trailing clusters may end a
// syllable, which vowel nuclei exist, and which tones an ending admits.
package orthography

import (
	"vnfe/internal/charstate"
)

var (
	vowelList     = []rune{'a', 'e', 'i', 'o', 'u', 'y'}
	consonantList = []rune{'b', 'c', 'd', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'x'}

	// Longest first so two-letter clusters win the backward scan.
	endingList = []string{"ch", "ng", "nh", "c", "m", "n", "p", "t"}
	sharpList  = []string{"c", "p", "t", "ch"}

	clusterList = []string{
		"a", "ă", "â", "e", "ê", "i", "o", "ô", "ơ", "u", "ư", "y",
		"ai", "ao", "au", "ay", "âu", "ây", "eo", "êu", "ia", "iê", "iu",
		"oa", "oă", "oe", "oi", "ôi", "ơi", "oo", "ua", "uâ", "uê", "ui",
		"uô", "uơ", "uy", "ưa", "ưi", "ươ", "ưu", "yê",
		"iêu", "oai", "oao", "oay", "oeo", "uây", "uôi", "uya", "uyê",
		"uyu", "ươi", "ươu", "yêu",
	}
)

// Diphthongs whose second vowel takes the tone when nothing follows them.
var secondMarkedPairs = map[[2]rune]struct{}{
	{'o', 'a'}: {},
	{'o', 'e'}: {},
	{'u', 'y'}: {},
}

var (
	vowelSet     = buildSet(vowelList)
	consonantSet = buildSet(consonantList)
	endingSet    = buildStringSet(endingList)
	sharpSet     = buildStringSet(sharpList)
	clusterSet   = buildStringSet(clusterList)
)

// Tones a sharp ending admits; other endings admit every tone.
var sharpTones = map[charstate.Tone]struct{}{
	charstate.ToneNone:  {},
	charstate.ToneAcute: {},
	charstate.ToneDot:   {},
}

func buildSet(list []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(list))
	for _, ch := range list {
		set[ch] = struct{}{}
	}
	return set
}

func buildStringSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, s := range list {
		set[s] = struct{}{}
	}
	return set
}

// IsVowel reports whether base is one of the six vowel letters.
func IsVowel(base rune) bool {
	_, ok := vowelSet[base]
	return ok
}

func IsConsonant(base rune) bool {
	_, ok := consonantSet[base]
	return ok
}

// Endings lists the valid trailing consonant clusters, longest first.
func Endings() []string {
	out := make([]string, len(endingList))
	copy(out, endingList)
	return out
}

func IsEnding(cluster string) bool {
	_, ok := endingSet[cluster]
	return ok
}

// IsSharpEnding reports whether cluster is a stop consonant ending.
func IsSharpEnding(cluster string) bool {
	_, ok := sharpSet[cluster]
	return ok
}

// IsVowelCluster reports whether the rendered, toneless nucleus exists in
// Vietnamese.
func IsVowelCluster(nucleus string) bool {
	_, ok := clusterSet[nucleus]
	return ok
}

// MarksSecond reports whether a two-vowel nucleus with no ending carries its
// tone on the second vowel.
func MarksSecond(first, second rune) bool {
	_, ok := secondMarkedPairs[[2]rune{first, second}]
	return ok
}

// IsQuCluster reports whether u after prev belongs to the consonant.
func IsQuCluster(prev, cur rune) bool { return prev == 'q' && cur == 'u' }

// IsGiCluster reports whether i after prev may belong to the consonant.
func IsGiCluster(prev, cur rune) bool { return prev == 'g' && cur == 'i' }
