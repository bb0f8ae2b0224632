package charstate

import "unicode"

type Tone uint8

const (
	ToneNone Tone = iota
	ToneAcute
	ToneGrave
	ToneHook
	ToneTilde
	ToneDot
)

func (t Tone) String() string {
	switch t {
	case ToneNone:
		return "none"
	case ToneAcute:
		return "acute"
	case ToneGrave:
		return "grave"
	case ToneHook:
		return "hook"
	case ToneTilde:
		return "tilde"
	case ToneDot:
		return "dot"
	default:
		return "unknown"
	}
}

// Modifier is a non-tone diacritic flag. Horn doubles as the breve on 'a'.
type Modifier uint16

const (
	Circumflex Modifier = 1 << (iota + toneBits)
	Horn
	Stroke
	Capital
)

const (
	toneBits  = 3
	toneMask  = 1<<toneBits - 1
	modMask   = Circumflex | Horn | Stroke
	stateMask = toneMask | uint16(modMask|Capital)
)

// State packs the tone in the low three bits and modifier flags above it.
type State uint16

func (s State) Tone() Tone { return Tone(uint16(s) & toneMask) }

func (s State) Has(m Modifier) bool { return uint16(s)&uint16(m) != 0 }

func (s State) WithTone(t Tone) State {
	return State(uint16(s)&^toneMask | uint16(t)&toneMask)
}

func (s State) With(m Modifier) State { return State(uint16(s) | uint16(m)) }

func (s State) Without(m Modifier) State { return State(uint16(s) &^ uint16(m)) }

// Char is one typed letter: a lower-case base code plus its diacritic state.
type Char struct {
	Base  rune
	State State
}

func New(letter rune) Char {
	c := Char{Base: unicode.ToLower(letter)}
	if unicode.IsUpper(letter) {
		c.State = c.State.With(Capital)
	}
	return c
}

// FromRaw unpacks the form produced by Raw.
func FromRaw(raw uint32) Char {
	return Char{Base: rune(raw & 0xFFFF), State: State(uint16(raw>>16) & stateMask)}
}

func (c Char) Raw() uint32 {
	return uint32(c.State)<<16 | uint32(c.Base)&0xFFFF
}

func (c Char) HasTone() bool { return c.State.Tone() != ToneNone }

func (c Char) Tone() Tone { return c.State.Tone() }

func (c Char) HasModifier(m Modifier) bool { return c.State.Has(m) }

func (c Char) IsUpper() bool { return c.State.Has(Capital) }

func (c *Char) SetTone(t Tone) { c.State = c.State.WithTone(t) }

func (c *Char) ClearTone() { c.State = c.State.WithTone(ToneNone) }

// SetModifier sets m. Circumflex and Horn change vowel quality and replace
// each other.
func (c *Char) SetModifier(m Modifier) {
	switch m {
	case Circumflex:
		c.State = c.State.Without(Horn)
	case Horn:
		c.State = c.State.Without(Circumflex)
	}
	c.State = c.State.With(m)
}

func (c *Char) ClearModifier(m Modifier) { c.State = c.State.Without(m) }

// Rune renders the precomposed letter. Combinations the table does not know
// fall back to the base letter.
func (c Char) Rune() rune {
	r := c.Base
	tone := c.Tone()
	if tone > ToneDot {
		tone = ToneNone
	}
	if row, ok := letterTable[c.variant()]; ok {
		r = row[tone]
	} else if row, ok := letterTable[vowelKey{base: c.Base}]; ok {
		r = row[ToneNone]
	}
	if c.IsUpper() {
		return unicode.ToUpper(r)
	}
	return r
}

func (c Char) String() string { return string(c.Rune()) }

func (c Char) variant() vowelKey {
	return vowelKey{base: c.Base, mod: c.State.Without(Capital).WithTone(ToneNone)}
}

// Decompose maps a rendered letter back to its base and state.
func Decompose(r rune) (Char, bool) {
	lower := unicode.ToLower(r)
	entry, ok := reverseTable[lower]
	if !ok {
		if lower < unicode.MaxASCII && unicode.IsLetter(lower) {
			return New(r), true
		}
		return Char{}, false
	}
	if unicode.IsUpper(r) {
		entry.State = entry.State.With(Capital)
	}
	return entry, true
}

// BaseOf returns the lower-case base letter of r, or r itself when it is not a
// Vietnamese letter.
func BaseOf(r rune) rune {
	if c, ok := Decompose(r); ok {
		return c.Base
	}
	return unicode.ToLower(r)
}
