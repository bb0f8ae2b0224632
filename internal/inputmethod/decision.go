package inputmethod

import (
	"fmt"

	"vnfe/internal/charstate"
)

type Kind int

const (
	KindNone Kind = iota
	KindTone
	KindModifier
	KindStandalone
	KindUndo
	KindReplace
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTone:
		return "tone"
	case KindModifier:
		return "modifier"
	case KindStandalone:
		return "standalone"
	case KindUndo:
		return "undo"
	case KindReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Category identifies a transformation for undo matching.
type Category int

const (
	CategoryNone Category = iota
	CategoryCircumflex
	CategoryHorn
	CategoryBreve
	CategoryStroke
	CategoryTone
	CategoryStandaloneHorn
)

func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryCircumflex:
		return "circumflex"
	case CategoryHorn:
		return "horn"
	case CategoryBreve:
		return "breve"
	case CategoryStroke:
		return "stroke"
	case CategoryTone:
		return "tone"
	case CategoryStandaloneHorn:
		return "standalone-horn"
	default:
		return "unknown"
	}
}

// Decision is what a keystroke should do to the syllable. Only the fields
// matching Kind are meaningful.
type Decision struct {
	Kind     Kind
	Category Category
	Tone     charstate.Tone
	Modifier charstate.Modifier
	// Char is the letter inserted by a standalone decision.
	Char rune
	// Original holds the text an undo restores.
	Original string
	// Text replaces the syllable for KindReplace.
	Text string
}

func None() Decision { return Decision{} }

func Replace(text string) Decision { return Decision{Kind: KindReplace, Text: text} }

func (d Decision) IsNone() bool { return d.Kind == KindNone }

func (d Decision) String() string {
	switch d.Kind {
	case KindTone:
		return fmt.Sprintf("tone(%v)", d.Tone)
	case KindModifier:
		return fmt.Sprintf("modifier(%v)", d.Category)
	case KindStandalone:
		return fmt.Sprintf("standalone(%c)", d.Char)
	case KindUndo:
		return fmt.Sprintf("undo(%q)", d.Original)
	case KindReplace:
		return fmt.Sprintf("replace(%q)", d.Text)
	default:
		return d.Kind.String()
	}
}
