package charstate

type vowelKey struct {
	base rune
	mod  State
}

// Rows are indexed by Tone: none, acute, grave, hook, tilde, dot.
var letterTable = map[vowelKey][6]rune{
	{'a', 0}:                 {'a', 'á', 'à', 'ả', 'ã', 'ạ'},
	{'a', State(Horn)}:       {'ă', 'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'},
	{'a', State(Circumflex)}: {'â', 'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'},
	{'e', 0}:                 {'e', 'é', 'è', 'ẻ', 'ẽ', 'ẹ'},
	{'e', State(Circumflex)}: {'ê', 'ế', 'ề', 'ể', 'ễ', 'ệ'},
	{'i', 0}:                 {'i', 'í', 'ì', 'ỉ', 'ĩ', 'ị'},
	{'o', 0}:                 {'o', 'ó', 'ò', 'ỏ', 'õ', 'ọ'},
	{'o', State(Circumflex)}: {'ô', 'ố', 'ồ', 'ổ', 'ỗ', 'ộ'},
	{'o', State(Horn)}:       {'ơ', 'ớ', 'ờ', 'ở', 'ỡ', 'ợ'},
	{'u', 0}:                 {'u', 'ú', 'ù', 'ủ', 'ũ', 'ụ'},
	{'u', State(Horn)}:       {'ư', 'ứ', 'ừ', 'ử', 'ữ', 'ự'},
	{'y', 0}:                 {'y', 'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'},
	{'d', State(Stroke)}:     {'đ', 'đ', 'đ', 'đ', 'đ', 'đ'},
}

var reverseTable = buildReverse(letterTable)

func buildReverse(src map[vowelKey][6]rune) map[rune]Char {
	dst := make(map[rune]Char, len(src)*6)
	for key, row := range src {
		for tone, r := range row {
			if _, ok := dst[r]; ok {
				continue
			}
			dst[r] = Char{Base: key.base, State: key.mod.WithTone(Tone(tone))}
		}
	}
	return dst
}
