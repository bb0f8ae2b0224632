package inputmethod

import (
	"unicode"

	"vnfe/internal/charstate"
)

// Transformation is the last applied decision, kept so that repeating its
// trigger key can undo it.
type Transformation struct {
	Category Category
	Tone     charstate.Tone
	Key      rune
	Original string
}

// Session is the per-context state threaded through ProcessKey. Each input
// context needs its own Session.
type Session struct {
	Last *Transformation
	// Suppressed is a key made inert by an undo until the next word
	// boundary. Zero means none.
	Suppressed rune
}

// Remember records d as the last transformation. Callers invoke it after
// applying a decision; none, undo and replace decisions are ignored.
func (s *Session) Remember(d Decision, key rune, original string) {
	switch d.Kind {
	case KindNone, KindUndo, KindReplace:
		return
	}
	s.Last = &Transformation{
		Category: d.Category,
		Tone:     d.Tone,
		Key:      unicode.ToLower(key),
		Original: original,
	}
}

func (s *Session) Forget() { s.Last = nil }

func (s *Session) ResetTempDisabled() { s.Suppressed = 0 }

// Reset clears everything at a word boundary.
func (s *Session) Reset() {
	s.Last = nil
	s.Suppressed = 0
}
