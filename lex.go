package pika

import "strings"

// isIdentChar reports whether b participates in an identifier: letters,
// digits, underscore, or '$'.
func isIdentChar(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_' || b == '$'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

// reservedWords are the identifiers that participate in the grammar rather
// than naming a variable.
var reservedWords = map[string]bool{
	"true": true, "false": true, "void": true, "if": true, "else": true,
	"for": true, "function": true, "infinity": true,
}

// scanner walks a source string by byte offset. The evaluator embeds one per
// parse; dry-mode recursion shares the same scanner so offsets stay in sync
// between the live and skipped branches of a parse.
type scanner struct {
	src string
	pos int
}

func (s *scanner) atEnd() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekAt(n int) byte {
	if s.pos+n >= len(s.src) {
		return 0
	}
	return s.src[s.pos+n]
}

func (s *scanner) advance() byte {
	b := s.peek()
	s.pos++
	return b
}

// skipSpace consumes whitespace, line comments ("//...") and block comments
// ("/*...*/"). An unterminated block comment fails with SyntaxError.
func (s *scanner) skipSpace() {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.pos++
			continue
		case '/':
			if s.peekAt(1) == '/' {
				for !s.atEnd() && s.peek() != '\n' {
					s.pos++
				}
				continue
			}
			if s.peekAt(1) == '*' {
				s.pos += 2
				closed := false
				for !s.atEnd() {
					if s.peek() == '*' && s.peekAt(1) == '/' {
						s.pos += 2
						closed = true
						break
					}
					s.pos++
				}
				if !closed {
					throw(SyntaxError, "unterminated block comment")
				}
				continue
			}
			return
		default:
			return
		}
	}
}

// scanIdentifier consumes a maximal run of identifier characters starting at
// the current position and returns it. The caller has already confirmed the
// current character is an identifier start.
func (s *scanner) scanIdentifier() string {
	start := s.pos
	for !s.atEnd() && isIdentChar(s.peek()) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// matchReserved reports whether word is a reserved word in its entirety,
// i.e. not merely a prefix of a longer identifier: the reserved-word matcher
// only fires when the scanned identifier text is exactly the reserved word.
func matchReserved(word string) bool {
	return reservedWords[word]
}

// scanNumber consumes a decimal numeral: digits, optional fractional part,
// optional exponent. It does not consume a sign; that is handled by the
// evaluator's unary prefix handling. Returns the matched text.
func (s *scanner) scanNumber() string {
	start := s.pos
	for !s.atEnd() && isDigit(s.peek()) {
		s.pos++
	}
	if !s.atEnd() && s.peek() == '.' && isDigit(s.peekAt(1)) {
		s.pos++
		for !s.atEnd() && isDigit(s.peek()) {
			s.pos++
		}
	}
	if !s.atEnd() && (s.peek() == 'e' || s.peek() == 'E') {
		save := s.pos
		s.pos++
		if !s.atEnd() && (s.peek() == '+' || s.peek() == '-') {
			s.pos++
		}
		if !s.atEnd() && isDigit(s.peek()) {
			for !s.atEnd() && isDigit(s.peek()) {
				s.pos++
			}
		} else {
			s.pos = save
		}
	}
	return s.src[start:s.pos]
}

// scanHex consumes a "0x" hexadecimal numeral (the prefix itself must have
// already been consumed by the caller) and returns the hex digit text.
func (s *scanner) scanHex() string {
	start := s.pos
	for !s.atEnd() && isHexDigit(s.peek()) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// scanSingleQuoted consumes a single-quoted string literal starting after
// the opening quote (already consumed by the caller) and returns its
// decoded content. "''" inside the literal encodes one apostrophe; there are
// no other escapes. Unterminated literal fails with SyntaxError.
func (s *scanner) scanSingleQuoted() string {
	var b strings.Builder
	for {
		if s.atEnd() {
			throw(SyntaxError, "unterminated string literal")
		}
		c := s.advance()
		if c == '\'' {
			if s.peek() == '\'' {
				b.WriteByte('\'')
				s.pos++
				continue
			}
			return b.String()
		}
		b.WriteByte(c)
	}
}

// scanDoubleQuoted consumes a double-quoted string literal starting after
// the opening quote and returns its decoded content, processing C-style
// escapes via scanEscape. Unterminated literal fails with SyntaxError.
func (s *scanner) scanDoubleQuoted() string {
	var b strings.Builder
	for {
		if s.atEnd() {
			throw(SyntaxError, "unterminated string literal")
		}
		c := s.advance()
		if c == '"' {
			return b.String()
		}
		if c == '\\' {
			b.WriteRune(s.scanEscape())
			continue
		}
		b.WriteByte(c)
	}
}
