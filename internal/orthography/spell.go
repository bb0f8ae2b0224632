package orthography

import "vnfe/internal/charstate"

// ToneAllowed reports whether tone may combine with the ending cluster. An
// empty ending means the syllable ends in a vowel.
func ToneAllowed(tone charstate.Tone, ending string) bool {
	if tone == charstate.ToneNone || !IsSharpEnding(ending) {
		return true
	}
	_, ok := sharpTones[tone]
	return ok
}
