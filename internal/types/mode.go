package types

type InputMode int

const (
	ModeVietnamese InputMode = iota
	ModeLatin
)

func (m InputMode) String() string {
	switch m {
	case ModeVietnamese:
		return "vietnamese"
	case ModeLatin:
		return "latin"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode.
func (m InputMode) Toggle() InputMode {
	if m == ModeVietnamese {
		return ModeLatin
	}
	return ModeVietnamese
}
