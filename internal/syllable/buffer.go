// Package syllable tracks the letters of the syllable being typed and answers
// where its diacritics belong.
package syllable

import (
	"strings"

	"vnfe/internal/charstate"
	"vnfe/internal/orthography"
)

const (
	// Capacity bounds the number of letters in one syllable.
	Capacity    = 64
	keyCapacity = Capacity * 2
)

// Buffer is the syllable under composition plus the raw keys that produced
// it. A Buffer belongs to one typing session and is not safe for concurrent
// use.
type Buffer struct {
	entries []charstate.Char
	keys    []rune
	// counts[i] is the number of logged keys that produced entries[i].
	counts []int
	// pending keys belong to the next appended letter.
	pending int
}

// Snapshot is a copy of the buffer's letters, used to roll back a
// transformation.
type Snapshot []charstate.Char

func NewBuffer() *Buffer {
	return &Buffer{
		entries: make([]charstate.Char, 0, Capacity),
		keys:    make([]rune, 0, keyCapacity),
		counts:  make([]int, 0, Capacity),
	}
}

func (b *Buffer) Len() int { return len(b.entries) }

func (b *Buffer) IsEmpty() bool { return len(b.entries) == 0 }

func (b *Buffer) IsFull() bool { return len(b.entries) >= Capacity }

func (b *Buffer) At(i int) (charstate.Char, bool) {
	if i < 0 || i >= len(b.entries) {
		return charstate.Char{}, false
	}
	return b.entries[i], true
}

// Append adds c to the end of the syllable. It reports false, leaving the
// buffer untouched, when the buffer is full.
func (b *Buffer) Append(c charstate.Char) bool {
	if b.IsFull() {
		return false
	}
	b.entries = append(b.entries, c)
	b.counts = append(b.counts, b.pending)
	b.pending = 0
	return true
}

func (b *Buffer) RemoveLast() (charstate.Char, bool) {
	if len(b.entries) == 0 {
		return charstate.Char{}, false
	}
	n := len(b.entries) - 1
	last := b.entries[n]
	b.entries = b.entries[:n]
	b.keys = b.keys[:len(b.keys)-b.counts[n]]
	b.counts = b.counts[:n]
	return last, true
}

func (b *Buffer) Clear() {
	b.entries = b.entries[:0]
	b.keys = b.keys[:0]
	b.counts = b.counts[:0]
	b.pending = 0
}

// RecordOriginalKey logs a raw keystroke against the last letter. Several
// keys may collapse into one letter (aa, as); removing that letter drops all
// of them. It reports false when the buffer is empty or the log is full.
func (b *Buffer) RecordOriginalKey(r rune) bool {
	if len(b.entries) == 0 || b.KeysFull() {
		return false
	}
	b.keys = append(b.keys, r)
	b.counts[len(b.counts)-1]++
	return true
}

// KeysFull reports whether the keystroke log has no room left.
func (b *Buffer) KeysFull() bool { return len(b.keys) >= keyCapacity }

func (b *Buffer) OriginalKeys() string { return string(b.keys) }

func (b *Buffer) Snapshot() Snapshot {
	out := make(Snapshot, len(b.entries))
	copy(out, b.entries)
	return out
}

// Restore replaces the letters with s. The keys of letters that s drops are
// kept against the new last letter, since they were still typed; with no
// letters left they go to the next appended letter.
func (b *Buffer) Restore(s Snapshot) {
	if len(s) > Capacity {
		s = s[:Capacity]
	}
	switch {
	case len(s) == 0:
		b.pending = len(b.keys)
		b.counts = b.counts[:0]
	case len(s) < len(b.counts):
		dropped := 0
		for _, n := range b.counts[len(s):] {
			dropped += n
		}
		b.counts = b.counts[:len(s)]
		b.counts[len(s)-1] += dropped
	default:
		grown := len(b.counts) == 0
		for len(b.counts) < len(s) {
			b.counts = append(b.counts, 0)
		}
		if grown {
			b.counts[0] = b.pending
			b.pending = 0
		}
	}
	b.entries = append(b.entries[:0], s...)
}

// FindVowelPositions returns the indices of the syllable's vowels. A u after
// q belongs to the consonant unless it is the only vowel; an i after g
// belongs to the consonant when another vowel follows it.
func (b *Buffer) FindVowelPositions() []int {
	candidates := make([]int, 0, 4)
	for i, c := range b.entries {
		if orthography.IsVowel(c.Base) {
			candidates = append(candidates, i)
		}
	}

	positions := make([]int, 0, len(candidates))
	for n, i := range candidates {
		if i > 0 {
			prev, cur := b.entries[i-1].Base, b.entries[i].Base
			if orthography.IsQuCluster(prev, cur) && len(candidates) > 1 {
				continue
			}
			if orthography.IsGiCluster(prev, cur) && n < len(candidates)-1 {
				continue
			}
		}
		positions = append(positions, i)
	}
	return positions
}

// FindEndingConsonant matches the trailing letters against the valid ending
// clusters and returns the cluster with its start index. The cluster must
// follow a vowel.
func (b *Buffer) FindEndingConsonant() (string, int, bool) {
	vowels := b.FindVowelPositions()
	if len(vowels) == 0 {
		return "", -1, false
	}
	for _, pattern := range orthography.Endings() {
		start := len(b.entries) - len(pattern)
		if start <= vowels[len(vowels)-1] {
			continue
		}
		if b.matchesAt(start, pattern) {
			return pattern, start, true
		}
	}
	return "", -1, false
}

func (b *Buffer) matchesAt(start int, pattern string) bool {
	for k := 0; k < len(pattern); k++ {
		c := b.entries[start+k]
		if c.Base != rune(pattern[k]) || c.HasModifier(charstate.Stroke) {
			return false
		}
	}
	return true
}

func (b *Buffer) HasSharpEnding() bool {
	ending, _, ok := b.FindEndingConsonant()
	return ok && orthography.IsSharpEnding(ending)
}

func (b *Buffer) layout() VowelLayout {
	positions := b.FindVowelPositions()
	l := VowelLayout{Positions: positions, Modified: -1}
	l.Bases = make([]rune, len(positions))
	for n, i := range positions {
		c := b.entries[i]
		l.Bases[n] = c.Base
		if c.HasModifier(charstate.Circumflex) || c.HasModifier(charstate.Horn) {
			l.Modified = i
		}
	}
	if len(positions) > 0 && positions[0] > 0 {
		l.PrecededByQ = b.entries[positions[0]-1].Base == 'q'
	}
	_, _, l.HasEnding = b.FindEndingConsonant()
	return l
}

// FindMarkPosition returns the index that should carry the tone.
func (b *Buffer) FindMarkPosition() (int, bool) {
	return ResolveMarkPosition(b.layout())
}

// FindMarkedVowelPosition returns the index of the letter carrying a tone.
func (b *Buffer) FindMarkedVowelPosition() (int, bool) {
	for i, c := range b.entries {
		if c.HasTone() {
			return i, true
		}
	}
	return -1, false
}

// Tone returns the syllable's current tone.
func (b *Buffer) Tone() charstate.Tone {
	if i, ok := b.FindMarkedVowelPosition(); ok {
		return b.entries[i].Tone()
	}
	return charstate.ToneNone
}

// ApplyMark places tone on the resolved vowel, replacing any tone already in
// the syllable. ToneNone removes the mark.
func (b *Buffer) ApplyMark(tone charstate.Tone) bool {
	if tone == charstate.ToneNone {
		return b.RemoveMark()
	}
	pos, ok := b.FindMarkPosition()
	if !ok {
		return false
	}
	for i := range b.entries {
		b.entries[i].ClearTone()
	}
	b.entries[pos].SetTone(tone)
	return true
}

func (b *Buffer) RemoveMark() bool {
	i, ok := b.FindMarkedVowelPosition()
	if !ok {
		return false
	}
	b.entries[i].ClearTone()
	return true
}

// ApplyModifier sets m on the letter at index at.
func (b *Buffer) ApplyModifier(m charstate.Modifier, at int) bool {
	if at < 0 || at >= len(b.entries) {
		return false
	}
	b.entries[at].SetModifier(m)
	return true
}

func (b *Buffer) RemoveModifier(m charstate.Modifier, at int) bool {
	if at < 0 || at >= len(b.entries) || !b.entries[at].HasModifier(m) {
		return false
	}
	b.entries[at].ClearModifier(m)
	return true
}

// RefreshTonePosition moves an existing tone to where the syllable's current
// shape puts it, and reports whether it moved.
func (b *Buffer) RefreshTonePosition() bool {
	cur, ok := b.FindMarkedVowelPosition()
	if !ok {
		return false
	}
	want, ok := b.FindMarkPosition()
	if !ok || want == cur {
		return false
	}
	tone := b.entries[cur].Tone()
	b.entries[cur].ClearTone()
	b.entries[want].SetTone(tone)
	return true
}

func (b *Buffer) IsValidVietnameseSyllable() bool {
	ending, _, _ := b.FindEndingConsonant()
	return orthography.ToneAllowed(b.Tone(), ending)
}

// HasValidVowelCluster reports whether the vowels form a contiguous nucleus
// that Vietnamese uses. Syllables without vowels pass.
func (b *Buffer) HasValidVowelCluster() bool {
	positions := b.FindVowelPositions()
	if len(positions) == 0 {
		return true
	}
	var sb strings.Builder
	for n, i := range positions {
		if n > 0 && i != positions[n-1]+1 {
			return false
		}
		c := b.entries[i]
		c.State = c.State.Without(charstate.Capital).WithTone(charstate.ToneNone)
		sb.WriteRune(c.Rune())
	}
	return orthography.IsVowelCluster(sb.String())
}

func (b *Buffer) ToUnicodeString() string {
	var sb strings.Builder
	sb.Grow(len(b.entries) * 2)
	for _, c := range b.entries {
		sb.WriteRune(c.Rune())
	}
	return sb.String()
}
