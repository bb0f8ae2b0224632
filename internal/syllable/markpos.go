package syllable

import "vnfe/internal/orthography"

// VowelLayout describes the vowels of a syllable for tone placement.
type VowelLayout struct {
	// Positions are buffer indices of the vowels, in order.
	Positions []int
	// Bases are the lower-case base letters at Positions.
	Bases []rune
	// Modified is the rightmost vowel index carrying a circumflex, breve or
	// horn, or -1.
	Modified    int
	HasEnding   bool
	PrecededByQ bool
}

// ResolveMarkPosition returns the buffer index that carries the tone under
// modern orthography.
func ResolveMarkPosition(l VowelLayout) (int, bool) {
	if l.Modified >= 0 {
		return l.Modified, true
	}

	switch n := len(l.Positions); {
	case n == 0:
		return -1, false
	case n == 1:
		return l.Positions[0], true
	case n == 2:
		if l.HasEnding {
			return l.Positions[1], true
		}
		first, second := l.Bases[0], l.Bases[1]
		if orthography.MarksSecond(first, second) && !(first == 'u' && l.PrecededByQ) {
			return l.Positions[1], true
		}
		return l.Positions[0], true
	default:
		return l.Positions[n/2], true
	}
}
