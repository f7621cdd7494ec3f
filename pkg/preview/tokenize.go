package preview

// Class is the highlight category of a token.
type Class int

const (
	Space Class = iota
	Punct
	Key
	String
	Number
	Boolean
	Null
	// Text is any run that is not JSON, e.g. the preview placeholder.
	Text
)

var classNames = [...]string{"space", "punct", "key", "string", "number", "boolean", "null", "text"}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// Token is a classified slice of the input. Concatenating the Text of all
// tokens returned by Tokenize reproduces the input exactly.
type Token struct {
	Class Class
	Text  string
}

// Tokenize classifies formatted JSON text in a single forward pass. It
// accepts any input: an unterminated string runs to the end of the text and
// unknown characters become Text tokens.
func Tokenize(text string) []Token {
	var tokens []Token
	i := 0
	for i < len(text) {
		start := i
		c := text[i]
		var class Class
		switch {
		case isSpace(c):
			for i < len(text) && isSpace(text[i]) {
				i++
			}
			class = Space
		case c == '"':
			i = scanString(text, i)
			class = String
			if followedByColon(text, i) {
				class = Key
			}
		case c == '-' || isDigit(c):
			i = scanNumber(text, i)
			class = Number
		case isPunct(c):
			i++
			class = Punct
		default:
			i = scanWord(text, i)
			switch text[start:i] {
			case "true", "false":
				class = Boolean
			case "null":
				class = Null
			default:
				class = Text
			}
		}
		tokens = append(tokens, Token{Class: class, Text: text[start:i]})
	}
	return tokens
}

// scanString returns the index just past the closing quote of the string
// starting at i, or len(text) when the string is unterminated.
func scanString(text string, i int) int {
	i++
	for i < len(text) {
		switch text[i] {
		case '\\':
			i += 2
			continue
		case '"':
			return i + 1
		}
		i++
	}
	return len(text)
}

func scanNumber(text string, i int) int {
	i++
	for i < len(text) {
		c := text[i]
		if !isDigit(c) && c != '.' && c != 'e' && c != 'E' && c != '+' && c != '-' {
			break
		}
		i++
	}
	return i
}

func scanWord(text string, i int) int {
	i++
	for i < len(text) {
		c := text[i]
		if isSpace(c) || isPunct(c) || c == '"' {
			break
		}
		i++
	}
	return i
}

func followedByColon(text string, i int) bool {
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	return i < len(text) && text[i] == ':'
}

func isSpace(c byte) bool { return c == ' ' || c == '\n' || c == '\t' || c == '\r' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isPunct(c byte) bool {
	switch c {
	case '{', '}', '[', ']', ',', ':':
		return true
	}
	return false
}
