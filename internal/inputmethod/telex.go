// Package inputmethod decides, one keystroke at a time, which Telex
// transformation a key triggers. It does not touch the syllable buffer.
package inputmethod

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"

	"vnfe/internal/charstate"
	"vnfe/internal/orthography"
)

func tracer() tracing.Trace {
	return tracing.Select("vnfe.inputmethod")
}

// Method is a keystroke-to-decision scheme.
type Method interface {
	Name() string
	ProcessKey(key rune, context string, s *Session) Decision
	IsSpecialKey(key rune) bool
}

type rules struct {
	brackets    bool
	standaloneW bool
	undoable    map[Category]struct{}
}

// Telex implements Telex and its variants, which differ only in their rules.
type Telex struct {
	name  string
	rules rules
}

var toneKeys = map[rune]charstate.Tone{
	's': charstate.ToneAcute,
	'f': charstate.ToneGrave,
	'r': charstate.ToneHook,
	'x': charstate.ToneTilde,
	'j': charstate.ToneDot,
	'z': charstate.ToneNone,
}

var doubledKeys = map[rune]Category{
	'a': CategoryCircumflex,
	'e': CategoryCircumflex,
	'o': CategoryCircumflex,
	'd': CategoryStroke,
}

var brackets = map[rune]rune{
	'[': 'ơ',
	']': 'ư',
	'{': 'Ơ',
	'}': 'Ư',
}

// Letters after which a standalone horn vowel is not produced.
var blockers = map[rune]struct{}{
	'w': {}, 'e': {}, 'y': {}, 'f': {}, 'j': {}, 'k': {}, 'z': {},
}

func allCategories() map[Category]struct{} {
	return map[Category]struct{}{
		CategoryCircumflex:     {},
		CategoryStroke:         {},
		CategoryHorn:           {},
		CategoryBreve:          {},
		CategoryTone:           {},
		CategoryStandaloneHorn: {},
	}
}

func NewTelex() *Telex {
	return &Telex{
		name: "telex",
		rules: rules{
			brackets:    true,
			standaloneW: true,
			undoable:    allCategories(),
		},
	}
}

// NewSimpleTelex is Telex without bracket shortcuts or a standalone w, and
// with undo limited to the breve.
func NewSimpleTelex() *Telex {
	return &Telex{
		name: "simple-telex",
		rules: rules{
			undoable: map[Category]struct{}{CategoryBreve: {}},
		},
	}
}

func (t *Telex) Name() string { return t.name }

func (t *Telex) IsSpecialKey(key rune) bool {
	lower := unicode.ToLower(key)
	if _, ok := toneKeys[lower]; ok {
		return true
	}
	if _, ok := doubledKeys[lower]; ok {
		return true
	}
	if lower == 'w' {
		return true
	}
	_, ok := brackets[key]
	return ok && t.rules.brackets
}

// ProcessKey returns the decision for key given the rendered syllable typed
// so far. It reads s to detect undo and updates it when an undo fires;
// recording applied transformations is left to the caller.
func (t *Telex) ProcessKey(key rune, context string, s *Session) Decision {
	if s == nil {
		s = &Session{}
	}
	d := t.decide(key, context, s)
	if !d.IsNone() {
		tracer().Debugf("%s: key %q after %q -> %v", t.name, key, context, d)
	}
	return d
}

func (t *Telex) decide(key rune, context string, s *Session) Decision {
	lower := unicode.ToLower(key)
	if s.Suppressed != 0 && lower == s.Suppressed {
		return None()
	}

	if last := s.Last; last != nil && unicode.ToLower(last.Key) == lower && t.canUndo(last.Category) {
		s.Last = nil
		s.Suppressed = lower
		return Decision{Kind: KindUndo, Category: last.Category, Tone: last.Tone, Original: last.Original}
	}

	if r, ok := brackets[key]; ok {
		if !t.rules.brackets {
			return None()
		}
		return t.bracket(key, r, context)
	}

	if tone, ok := toneKeys[lower]; ok {
		return Decision{Kind: KindTone, Category: CategoryTone, Tone: tone}
	}

	prev, hasPrev := lastChar(context)

	if category, ok := doubledKeys[lower]; ok {
		if !hasPrev || prev.Base != lower {
			return None()
		}
		if category == CategoryStroke {
			if prev.HasModifier(charstate.Stroke) {
				return None()
			}
			return Decision{Kind: KindModifier, Category: CategoryStroke, Modifier: charstate.Stroke}
		}
		if prev.HasModifier(charstate.Circumflex) {
			return None()
		}
		return Decision{Kind: KindModifier, Category: CategoryCircumflex, Modifier: charstate.Circumflex}
	}

	if lower == 'w' {
		return t.w(key, prev, hasPrev)
	}
	return None()
}

func (t *Telex) canUndo(c Category) bool {
	_, ok := t.rules.undoable[c]
	return ok
}

func (t *Telex) bracket(key, r rune, context string) Decision {
	prev, hasPrev := lastChar(context)
	standalone := Decision{Kind: KindStandalone, Category: CategoryStandaloneHorn, Char: r}
	switch {
	case !hasPrev:
		return standalone
	case (key == '[' || key == '{') && prev.Base == 'u':
		return standalone
	case acceptsStandalone(prev):
		return standalone
	}
	return None()
}

func (t *Telex) w(key rune, prev charstate.Char, hasPrev bool) Decision {
	if hasPrev {
		switch prev.Base {
		case 'a':
			return Decision{Kind: KindModifier, Category: CategoryBreve, Modifier: charstate.Horn}
		case 'u', 'o':
			return Decision{Kind: KindModifier, Category: CategoryHorn, Modifier: charstate.Horn}
		}
	}
	if !t.rules.standaloneW {
		return None()
	}
	if hasPrev && !acceptsStandalone(prev) {
		return None()
	}
	r := 'ư'
	if unicode.IsUpper(key) {
		r = 'Ư'
	}
	return Decision{Kind: KindStandalone, Category: CategoryStandaloneHorn, Char: r}
}

// acceptsStandalone reports whether a horn vowel may follow prev without a
// vowel to attach to.
func acceptsStandalone(prev charstate.Char) bool {
	if orthography.IsVowel(prev.Base) {
		return false
	}
	if _, ok := blockers[prev.Base]; ok {
		return false
	}
	return unicode.IsLetter(prev.Base)
}

func lastChar(context string) (charstate.Char, bool) {
	if context == "" {
		return charstate.Char{}, false
	}
	r, _ := utf8.DecodeLastRuneInString(context)
	if c, ok := charstate.Decompose(r); ok {
		return c, true
	}
	return charstate.Char{Base: unicode.ToLower(r)}, true
}
