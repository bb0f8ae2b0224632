package charstate

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestRawRoundTrip(t *testing.T) {
	tones := []Tone{ToneNone, ToneAcute, ToneGrave, ToneHook, ToneTilde, ToneDot}
	mods := []Modifier{0, Circumflex, Horn, Stroke, Capital, Circumflex | Capital, Horn | Stroke | Capital}
	for _, base := range []rune{'a', 'd', 'q', 'y', 0x00FF, 0xFFFF} {
		for _, tone := range tones {
			for _, mod := range mods {
				c := Char{Base: base, State: State(mod).WithTone(tone)}
				got := FromRaw(c.Raw())
				if got != c {
					t.Fatalf("expected %+v after round trip, got %+v", c, got)
				}
				if c.Raw()&0xFFFF != uint32(base) {
					t.Fatalf("expected low bits to hold base %U, got %#x", base, c.Raw())
				}
			}
		}
	}
}

func TestComposeCircumflexAcute(t *testing.T) {
	c := New('a')
	c.SetModifier(Circumflex)
	c.SetTone(ToneAcute)
	if got := c.Rune(); got != 'ấ' {
		t.Fatalf("expected ấ, got %c", got)
	}
}

func TestSetToneReplacesPrevious(t *testing.T) {
	c := New('o')
	c.SetTone(ToneGrave)
	c.SetTone(ToneTilde)
	if c.Tone() != ToneTilde {
		t.Fatalf("expected tilde, got %v", c.Tone())
	}
	if got := c.Rune(); got != 'õ' {
		t.Fatalf("expected õ, got %c", got)
	}
	c.ClearTone()
	if c.HasTone() {
		t.Fatal("tone should be cleared")
	}
}

func TestCapitalLetters(t *testing.T) {
	c := New('U')
	if !c.IsUpper() || c.Base != 'u' {
		t.Fatalf("expected capital u, got %+v", c)
	}
	c.SetModifier(Horn)
	c.SetTone(ToneDot)
	if got := c.Rune(); got != 'Ự' {
		t.Fatalf("expected Ự, got %c", got)
	}
}

func TestModifierOnConsonantFallsBack(t *testing.T) {
	c := New('b')
	c.SetModifier(Circumflex)
	c.SetTone(ToneAcute)
	if got := c.Rune(); got != 'b' {
		t.Fatalf("expected plain b, got %c", got)
	}

	d := New('d')
	d.SetModifier(Stroke)
	if got := d.Rune(); got != 'đ' {
		t.Fatalf("expected đ, got %c", got)
	}
}

func TestCircumflexAndHornExclusive(t *testing.T) {
	c := New('a')
	c.SetModifier(Horn)
	c.SetModifier(Circumflex)
	if c.HasModifier(Horn) {
		t.Fatal("circumflex should replace the breve")
	}
	if got := c.Rune(); got != 'â' {
		t.Fatalf("expected â, got %c", got)
	}
}

func TestTableMatchesCanonicalComposition(t *testing.T) {
	toneMarks := [...]string{"", "\u0301", "\u0300", "\u0309", "\u0303", "\u0323"}
	modMarks := map[State]string{0: "", State(Circumflex): "\u0302", State(Horn): "\u031B"}

	for key, row := range letterTable {
		if key.base == 'd' {
			continue
		}
		mark, ok := modMarks[key.mod]
		if !ok {
			t.Fatalf("unexpected modifier state %v", key.mod)
		}
		if key.base == 'a' && key.mod == State(Horn) {
			mark = "\u0306"
		}
		for tone, want := range row {
			got := norm.NFC.String(string(key.base) + mark + toneMarks[tone])
			if got != string(want) {
				t.Fatalf("expected %q for %c/%v/%v, got %q", string(want), key.base, key.mod, Tone(tone), got)
			}
		}
	}
}

func TestDecompose(t *testing.T) {
	c, ok := Decompose('Ờ')
	if !ok {
		t.Fatal("expected Ờ to decompose")
	}
	if c.Base != 'o' || !c.HasModifier(Horn) || c.Tone() != ToneGrave || !c.IsUpper() {
		t.Fatalf("unexpected decomposition %+v", c)
	}
	if c.Rune() != 'Ờ' {
		t.Fatalf("expected recomposition to Ờ, got %c", c.Rune())
	}

	if base := BaseOf('ậ'); base != 'a' {
		t.Fatalf("expected base a, got %c", base)
	}
	if _, ok := Decompose('1'); ok {
		t.Fatal("digits are not letters")
	}
}
