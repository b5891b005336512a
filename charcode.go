package pika

import (
	"encoding/binary"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode/utf32"
)

// utf32Decoder validates a 32-bit code point the same way the teacher's
// sequence code validated wide-character conversions: by routing it through
// a real UTF-32 decoder rather than a hand-rolled range check, so the same
// notion of "valid code point" used for encoding conversions backs char()
// and ordinal() too.
var utf32Decoder = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM).NewDecoder()

// runeFromCodePoint converts a numeric code point to a rune, failing with
// IllegalCharacterCode if it is not a valid Unicode scalar value (surrogate
// halves and values above U+10FFFF are rejected, matching what char() in the
// standard natives refuses).
func runeFromCodePoint(code int64) (rune, error) {
	if code < 0 || code > 0x7fffffff {
		return 0, newError(IllegalCharacterCode, "illegal character code: %d", code)
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(code))
	dst := make([]byte, 8)
	n, _, err := utf32Decoder.Transform(dst, buf[:], true)
	if err != nil || n == 0 {
		return 0, newError(IllegalCharacterCode, "illegal character code: %d", code)
	}
	r, _ := utf8.DecodeRune(dst[:n])
	if r == utf8.RuneError && code != utf8.RuneError {
		return 0, newError(IllegalCharacterCode, "illegal character code: %d", code)
	}
	return r, nil
}

// decodeSingleRune decodes the first rune of s and reports its byte width,
// for natives that only accept a single-character string.
func decodeSingleRune(s string) (rune, int) {
	if s == "" {
		return 0, 0
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, 0
	}
	return r, size
}
