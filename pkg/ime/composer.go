package ime

import (
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"

	"vnfe/internal/charstate"
	"vnfe/internal/inputmethod"
	"vnfe/internal/macro"
	"vnfe/internal/syllable"
	"vnfe/internal/types"
)

func tracer() tracing.Trace {
	return tracing.Select("vnfe.ime")
}

type Options struct {
	// RestoreInvalid commits the raw keystrokes of a syllable that is not
	// valid Vietnamese.
	RestoreInvalid bool
	Form           Form
	Macros         *macro.Table
}

// Composer drives one input context: it feeds keys through an input method,
// applies the decisions to a syllable buffer and keeps the committed text.
type Composer struct {
	method  inputmethod.Method
	opts    Options
	mode    types.InputMode
	buf     *syllable.Buffer
	session inputmethod.Session
	before  syllable.Snapshot
	text    []rune
}

func NewComposer(method inputmethod.Method, opts Options) *Composer {
	return &Composer{
		method: method,
		opts:   opts,
		mode:   types.ModeVietnamese,
		buf:    syllable.NewBuffer(),
		text:   make([]rune, 0, 32),
	}
}

func (c *Composer) Method() inputmethod.Method { return c.method }

func (c *Composer) Mode() types.InputMode { return c.mode }

// SetMode commits the pending syllable and switches modes.
func (c *Composer) SetMode(mode types.InputMode) {
	if mode == c.mode {
		return
	}
	c.commitSyllable()
	c.mode = mode
}

func (c *Composer) ToggleMode() types.InputMode {
	c.SetMode(c.mode.Toggle())
	return c.mode
}

// TypeKey processes one keystroke. It reports whether the key became part
// of the syllable; other keys end the syllable and are appended literally.
func (c *Composer) TypeKey(key rune) bool {
	if c.mode == types.ModeLatin {
		c.AppendLiteral(key)
		return false
	}
	if !unicode.IsLetter(key) && !c.method.IsSpecialKey(key) {
		c.AppendLiteral(key)
		return false
	}
	if c.buf.KeysFull() {
		tracer().Debugf("key log full, committing %q", c.buf.ToUnicodeString())
		c.commitSyllable()
	}

	context := c.buf.ToUnicodeString()
	d := c.method.ProcessKey(key, context, &c.session)

	switch d.Kind {
	case inputmethod.KindUndo:
		c.undo(key, d)
		return true
	case inputmethod.KindTone, inputmethod.KindModifier, inputmethod.KindStandalone:
		snapshot := c.buf.Snapshot()
		if c.apply(d) {
			if len(snapshot) > c.buf.Len() {
				// the buffer filled up and a new syllable was started
				snapshot = syllable.Snapshot{}
			}
			c.before = snapshot
			c.buf.RecordOriginalKey(key)
			c.session.Remember(d, key, context)
			c.buf.RefreshTonePosition()
			return true
		}
	}

	if !unicode.IsLetter(key) {
		c.AppendLiteral(key)
		return false
	}
	c.session.Forget()
	c.insertLetter(charstate.New(key), key)
	return true
}

func (c *Composer) apply(d inputmethod.Decision) bool {
	switch d.Kind {
	case inputmethod.KindTone:
		return c.buf.ApplyMark(d.Tone)
	case inputmethod.KindModifier:
		return c.applyModifier(d)
	case inputmethod.KindStandalone:
		ch, ok := charstate.Decompose(d.Char)
		if !ok {
			return false
		}
		c.append(ch)
		return true
	}
	return false
}

// applyModifier puts the modifier on the last letter. A horn after "uo"
// marks both vowels, unless the u belongs to a "qu" onset.
func (c *Composer) applyModifier(d inputmethod.Decision) bool {
	last := c.buf.Len() - 1
	if d.Category == inputmethod.CategoryHorn && last >= 1 {
		prev, _ := c.buf.At(last - 1)
		cur, _ := c.buf.At(last)
		onset, _ := c.buf.At(last - 2)
		if prev.Base == 'u' && cur.Base == 'o' && onset.Base != 'q' {
			c.buf.ApplyModifier(d.Modifier, last-1)
		}
	}
	return c.buf.ApplyModifier(d.Modifier, last)
}

func (c *Composer) undo(key rune, d inputmethod.Decision) {
	if c.before != nil {
		c.buf.Restore(c.before)
	} else {
		c.restoreText(d.Original)
	}
	c.before = nil
	c.insertLetter(charstate.New(key), key)
}

func (c *Composer) restoreText(text string) {
	snapshot := make(syllable.Snapshot, 0, len(text))
	for _, r := range text {
		if ch, ok := charstate.Decompose(r); ok {
			snapshot = append(snapshot, ch)
		}
	}
	c.buf.Restore(snapshot)
}

func (c *Composer) insertLetter(ch charstate.Char, key rune) {
	c.append(ch)
	c.buf.RecordOriginalKey(key)
	c.buf.RefreshTonePosition()
}

// append adds ch, starting a new syllable when the buffer is full.
func (c *Composer) append(ch charstate.Char) {
	if c.buf.Append(ch) {
		return
	}
	tracer().Debugf("syllable buffer full, committing %q", c.buf.ToUnicodeString())
	c.commitSyllable()
	c.buf.Append(ch)
}

func (c *Composer) AppendLiteral(r rune) {
	c.commitSyllable()
	c.text = append(c.text, r)
}

func (c *Composer) Space() {
	c.AppendLiteral(' ')
}

func (c *Composer) Backspace() {
	c.before = nil
	c.session.Forget()
	if _, ok := c.buf.RemoveLast(); ok {
		c.buf.RefreshTonePosition()
		if c.buf.IsEmpty() {
			c.buf.Clear()
			c.session.Reset()
		}
		return
	}
	c.buf.Clear()
	if len(c.text) > 0 {
		c.text = c.text[:len(c.text)-1]
	}
}

// Commit ends the current syllable and moves it to the committed text.
func (c *Composer) Commit() {
	c.commitSyllable()
}

func (c *Composer) Enter() string {
	line := c.FlushText()
	c.text = make([]rune, 0, 32)
	return line
}

func (c *Composer) FlushText() string {
	c.commitSyllable()
	return c.opts.Form.Apply(string(c.text))
}

func (c *Composer) Reset() {
	c.buf.Clear()
	c.session.Reset()
	c.before = nil
	c.text = c.text[:0]
}

// Preedit is the syllable still under composition.
func (c *Composer) Preedit() string {
	return c.opts.Form.Apply(c.buf.ToUnicodeString())
}

func (c *Composer) Text() string {
	builder := strings.Builder{}
	builder.Grow(len(c.text) + c.buf.Len() + 4)
	builder.WriteString(string(c.text))
	builder.WriteString(c.buf.ToUnicodeString())
	return c.opts.Form.Apply(builder.String())
}

func (c *Composer) commitSyllable() {
	defer func() {
		c.buf.Clear()
		c.session.Reset()
		c.before = nil
	}()
	if c.buf.IsEmpty() {
		return
	}

	d := c.finalDecision()
	if d.Kind == inputmethod.KindReplace {
		c.text = append(c.text, []rune(d.Text)...)
		return
	}
	c.text = append(c.text, []rune(c.buf.ToUnicodeString())...)
}

// finalDecision decides what a finished syllable commits as: a macro
// expansion, its raw keystrokes, or none for the composed text.
func (c *Composer) finalDecision() inputmethod.Decision {
	composed := c.buf.ToUnicodeString()
	if expansion, ok := c.opts.Macros.Lookup(composed); ok {
		tracer().Debugf("macro %q -> %q", composed, expansion)
		return inputmethod.Replace(expansion)
	}
	if c.opts.RestoreInvalid && !c.isValid() {
		raw := c.buf.OriginalKeys()
		tracer().Debugf("restoring %q as %q", composed, raw)
		return inputmethod.Replace(raw)
	}
	return inputmethod.None()
}

func (c *Composer) isValid() bool {
	return c.buf.IsValidVietnameseSyllable() && c.buf.HasValidVowelCluster()
}
