package expr

import "unicode/utf8"

// anyCharacter is cached because Normalised's `.* ≈ ¬∅` rule (see
// normalize.go) needs to compare an arbitrary subexpression against exactly
// this tree by structural equality.
var anyCharacter = buildAnyCharacter()

func buildAnyCharacter() *Expression {
	b1 := ByteRange(0x00, 0x7F) // 0xxxxxxx
	bx := ByteRange(0x80, 0xBF) // 10xxxxxx
	b2 := ByteRange(0xC0, 0xDF) // 110xxxxx
	b3 := ByteRange(0xE0, 0xEF) // 1110xxxx
	b4 := ByteRange(0xF0, 0xF7) // 11110xxx
	return Disjunction(
		b1,
		Concatenation(b2, bx),
		Concatenation(b3, bx, bx),
		Concatenation(b4, bx, bx, bx),
	)
}

// AnyCharacter returns the expression matching a single UTF-8 code point:
// the disjunction of the four UTF-8 byte-length alternatives over the fixed
// ranges {0x00-0x7F}, {0xC0-0xDF}·{0x80-0xBF}, {0xE0-0xEF}·{0x80-0xBF}²,
// {0xF0-0xF7}·{0x80-0xBF}³.
func AnyCharacter() *Expression { return anyCharacter }

// Character returns the expression matching the UTF-8 encoding of r, as a
// concatenation of one Byte expression per encoded byte.
func Character(r rune) *Expression {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	switch n {
	case 1:
		return Byte(buf[0])
	case 2:
		return Concatenation(Byte(buf[0]), Byte(buf[1]))
	case 3:
		return Concatenation(Byte(buf[0]), Byte(buf[1]), Byte(buf[2]))
	case 4:
		return Concatenation(Byte(buf[0]), Byte(buf[1]), Byte(buf[2]), Byte(buf[3]))
	default:
		panic("expr: Character: unreachable UTF-8 length")
	}
}

// CharacterClass returns the expression matching any one of the given code
// points, as a disjunction of Character expressions.
func CharacterClass(runes []rune) *Expression {
	if len(runes) == 0 {
		return EmptySet()
	}
	if len(runes) == 1 {
		return Character(runes[0])
	}
	subs := make([]*Expression, len(runes))
	for i, r := range runes {
		subs[i] = Character(r)
	}
	return rawDisjunction(subs, false)
}
