package ime

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Form selects the Unicode normalization of composed output.
type Form int

const (
	FormNFC Form = iota
	FormNFD
)

func (f Form) String() string {
	switch f {
	case FormNFC:
		return "nfc"
	case FormNFD:
		return "nfd"
	default:
		return "unknown"
	}
}

func ParseForm(name string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "nfc", "precomposed":
		return FormNFC, nil
	case "nfd", "decomposed", "combining":
		return FormNFD, nil
	default:
		return FormNFC, fmt.Errorf("unknown output form %q (available: nfc, nfd)", name)
	}
}

func (f Form) Apply(s string) string {
	if f == FormNFD {
		return norm.NFD.String(s)
	}
	return norm.NFC.String(s)
}
