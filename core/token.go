package core

// TokenKind is the lexical class of a single command-line token.
type TokenKind int

const (
	// TokenValue is anything that does not look like an option: plain values,
	// "-", "--", "---x" and negative numbers such as "-12".
	TokenValue TokenKind = iota
	// TokenShort is a dash followed by exactly one non-dash character, e.g. "-v".
	TokenShort
	// TokenLong is two dashes followed by a non-dash character and more, e.g. "--verbose".
	TokenLong
)

func (k TokenKind) String() string {
	switch k {
	case TokenShort:
		return "short"
	case TokenLong:
		return "long"
	default:
		return "value"
	}
}

// Classify reports whether s looks like a short option, a long option or a plain value.
// It only inspects the shape of s; whether the option is registered is decided elsewhere.
func Classify(s string) TokenKind {
	switch {
	case len(s) == 2 && s[0] == '-' && s[1] != '-':
		return TokenShort
	case len(s) > 2 && s[0] == '-' && s[1] == '-' && s[2] != '-':
		return TokenLong
	default:
		return TokenValue
	}
}

// IsOption reports whether s would end an option's run of values.
func IsOption(s string) bool {
	return Classify(s) != TokenValue
}
