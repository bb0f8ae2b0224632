package ime

import (
	"strings"
	"testing"

	"golang.org/x/text/unicode/norm"

	"vnfe/internal/inputmethod"
	"vnfe/internal/macro"
	"vnfe/internal/types"
)

func typeAll(c *Composer, keys string) {
	for _, r := range keys {
		c.TypeKey(r)
	}
}

func TestTelexWords(t *testing.T) {
	cases := map[string]string{
		"aa":       "â",
		"tieens":   "tiến",
		"tisen":    "tiến",
		"nguowif":  "người",
		"dduwowcj": "được",
		"ddi":      "đi",
		"hoaf":     "hoà",
		"hoanf":    "hoàn",
		"quow":     "quơ",
		"Vieetj":   "Việt",
		"t]":       "tư",
		"[":        "ơ",
		"giaf":     "già",
		"thuow":    "thươ",
		"thuowr":   "thưở",
	}
	for keys, want := range cases {
		c := NewComposer(inputmethod.NewTelex(), Options{})
		typeAll(c, keys)
		if got := c.Text(); got != want {
			t.Fatalf("%s: expected %q, got %q", keys, want, got)
		}
	}
}

func TestBreveUndoSuppressesKey(t *testing.T) {
	c := NewComposer(inputmethod.NewTelex(), Options{})
	c.TypeKey('a')
	c.TypeKey('w')
	if got := c.Preedit(); got != "ă" {
		t.Fatalf("expected ă, got %q", got)
	}
	c.TypeKey('w')
	if got := c.Preedit(); got != "aw" {
		t.Fatalf("expected undo to aw, got %q", got)
	}
	c.TypeKey('w')
	if got := c.Preedit(); got != "aww" {
		t.Fatalf("expected suppressed w to stay literal, got %q", got)
	}
}

func TestUndoStrokeAndTone(t *testing.T) {
	c := NewComposer(inputmethod.NewTelex(), Options{})
	typeAll(c, "ddd")
	if got := c.Preedit(); got != "dd" {
		t.Fatalf("expected dd, got %q", got)
	}

	c.Reset()
	typeAll(c, "bass")
	if got := c.Preedit(); got != "bas" {
		t.Fatalf("expected bas, got %q", got)
	}

	c.Reset()
	typeAll(c, "ww")
	if got := c.Preedit(); got != "w" {
		t.Fatalf("expected w, got %q", got)
	}
}

func TestSimpleTelexStandaloneW(t *testing.T) {
	simple := NewComposer(inputmethod.NewSimpleTelex(), Options{})
	typeAll(simple, "ow")
	if got := simple.Text(); got != "ơ" {
		t.Fatalf("expected ơ, got %q", got)
	}
	simple.Reset()
	typeAll(simple, "w")
	if got := simple.Text(); got != "w" {
		t.Fatalf("expected literal w, got %q", got)
	}

	telex := NewComposer(inputmethod.NewTelex(), Options{})
	typeAll(telex, "w")
	if got := telex.Text(); got != "ư" {
		t.Fatalf("expected ư, got %q", got)
	}
}

func TestSentenceAndBoundaries(t *testing.T) {
	c := NewComposer(inputmethod.NewTelex(), Options{})
	typeAll(c, "Tieengs Vieetj, xin chaof!")
	if got := c.FlushText(); got != "Tiếng Việt, xin chào!" {
		t.Fatalf("unexpected text %q", got)
	}
	if line := c.Enter(); line != "Tiếng Việt, xin chào!" {
		t.Fatalf("unexpected line %q", line)
	}
	if got := c.Text(); got != "" {
		t.Fatalf("expected empty text after enter, got %q", got)
	}
}

func TestToneWithoutVowelIsLiteral(t *testing.T) {
	c := NewComposer(inputmethod.NewTelex(), Options{})
	typeAll(c, "s")
	if got := c.Text(); got != "s" {
		t.Fatalf("expected literal s, got %q", got)
	}
	c.Reset()
	typeAll(c, "baz")
	if got := c.Text(); got != "baz" {
		t.Fatalf("expected literal z without a tone, got %q", got)
	}
}

func TestRestoreInvalidSyllable(t *testing.T) {
	plain := NewComposer(inputmethod.NewTelex(), Options{})
	typeAll(plain, "bacf ")
	if got := plain.FlushText(); got != "bàc " {
		t.Fatalf("expected bàc, got %q", got)
	}

	restoring := NewComposer(inputmethod.NewTelex(), Options{RestoreInvalid: true})
	typeAll(restoring, "bacf bacs ")
	if got := restoring.FlushText(); got != "bacf bác " {
		t.Fatalf("expected raw keys for the invalid syllable, got %q", got)
	}
}

func TestRestoreInvalidAfterBackspace(t *testing.T) {
	cases := []struct {
		before string
		after  string
		want   string
	}{
		{"bas", "icf ", "bicf "},
		{"aa", "bacf ", "bacf "},
		{"bacf", "ns ", "bán "},
	}
	for _, tc := range cases {
		c := NewComposer(inputmethod.NewTelex(), Options{RestoreInvalid: true})
		typeAll(c, tc.before)
		c.Backspace()
		typeAll(c, tc.after)
		if got := c.FlushText(); got != tc.want {
			t.Fatalf("%s<bs>%s: expected %q, got %q", tc.before, tc.after, tc.want, got)
		}
	}
}

func TestBackspaceDropsKeysOfComposedLetter(t *testing.T) {
	c := NewComposer(inputmethod.NewTelex(), Options{})
	typeAll(c, "dduwowc")
	c.Backspace()
	if got := c.buf.OriginalKeys(); got != "dduwow" {
		t.Fatalf("expected keys of the remaining letters, got %q", got)
	}
	c.Backspace()
	if got := c.buf.OriginalKeys(); got != "dduw" {
		t.Fatalf("expected ow to go with ơ, got %q", got)
	}
}

func TestFullKeyLogCommitsSyllable(t *testing.T) {
	c := NewComposer(inputmethod.NewTelex(), Options{RestoreInvalid: true})
	typeAll(c, "ba"+strings.Repeat("sf", 63))
	if got := c.buf.OriginalKeys(); len(got) != 128 {
		t.Fatalf("expected a full key log, got %d keys", len(got))
	}
	c.TypeKey('s')
	if got := c.Text(); got != "bàs" {
		t.Fatalf("expected the syllable to be committed before the next key, got %q", got)
	}
	if got := c.buf.OriginalKeys(); got != "s" {
		t.Fatalf("expected a fresh key log, got %q", got)
	}
}

func TestMacroExpansion(t *testing.T) {
	table := macro.NewTable()
	table.Add("vn", "Việt Nam")
	c := NewComposer(inputmethod.NewTelex(), Options{Macros: table})
	typeAll(c, "vn ")
	if got := c.Text(); got != "Việt Nam " {
		t.Fatalf("expected macro expansion, got %q", got)
	}
}

func TestBackspace(t *testing.T) {
	c := NewComposer(inputmethod.NewTelex(), Options{})
	typeAll(c, "vieetj")
	c.Backspace()
	if got := c.Preedit(); got != "việ" {
		t.Fatalf("expected việ, got %q", got)
	}
	c.Backspace()
	c.Backspace()
	c.Backspace()
	c.Backspace()
	if got := c.Text(); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}

	typeAll(c, "a b")
	c.Backspace()
	c.Backspace()
	if got := c.Text(); got != "a" {
		t.Fatalf("expected committed text to shrink, got %q", got)
	}
}

func TestLatinMode(t *testing.T) {
	c := NewComposer(inputmethod.NewTelex(), Options{})
	typeAll(c, "aa")
	if mode := c.ToggleMode(); mode != types.ModeLatin {
		t.Fatalf("expected latin mode, got %v", mode)
	}
	typeAll(c, "aa")
	if got := c.Text(); got != "âaa" {
		t.Fatalf("expected âaa, got %q", got)
	}
}

func TestDecomposedOutput(t *testing.T) {
	c := NewComposer(inputmethod.NewTelex(), Options{Form: FormNFD})
	typeAll(c, "vieetj")
	got := c.Text()
	if got != norm.NFD.String("việt") {
		t.Fatalf("expected decomposed output, got %q", got)
	}
	if !strings.HasPrefix(got, "vie") {
		t.Fatalf("expected base letters first, got %q", got)
	}
}

func TestFullBufferStartsNewSyllable(t *testing.T) {
	c := NewComposer(inputmethod.NewTelex(), Options{})
	long := strings.Repeat("b", 70)
	typeAll(c, long)
	if got := c.Text(); got != long {
		t.Fatalf("expected all letters to survive, got %d runes", len([]rune(got)))
	}
	if n := len([]rune(c.Preedit())); n != 6 {
		t.Fatalf("expected the overflow in a new syllable, got %d", n)
	}
}

func TestParseForm(t *testing.T) {
	if f, err := ParseForm("NFD"); err != nil || f != FormNFD {
		t.Fatalf("expected nfd, got %v (%v)", f, err)
	}
	if _, err := ParseForm("nfkc"); err == nil {
		t.Fatal("expected an error for an unknown form")
	}
}
