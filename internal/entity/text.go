package entity

import "strings"

func isDigit(b byte) bool   { return b >= '0' && b <= '9' }
func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
func isAlnum(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Decode replaces character references in s with the Unicode text they
// name. inAttribute enables the ambiguous-ampersand quirk that treats an
// unterminated reference as literal when it is immediately followed by
// '=' or an alphanumeric, since that combination is far more likely to be
// a raw '&' inside an attribute value than a reference.
func Decode(s string, inAttribute bool) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		c := s[i]
		if c != '&' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			b.WriteByte('&')
			i++
			continue
		}
		switch next := s[i+1]; {
		case next == '#':
			consumed, decoded, ok := decodeNumericRef(s[i:], inAttribute)
			if !ok {
				b.WriteByte('&')
				i++
				continue
			}
			b.WriteRune(decoded)
			i += consumed
		case isAlnum(next):
			matchLen, value, ok := Match(s[i+1:])
			if !ok {
				b.WriteByte('&')
				i++
				continue
			}
			name := s[i+1 : i+1+matchLen]
			afterIdx := i + 1 + matchLen
			if !HasSemicolon(name) && inAttribute && afterIdx < len(s) &&
				(isAlnum(s[afterIdx]) || s[afterIdx] == '=') {
				b.WriteByte('&')
				i++
				continue
			}
			for _, r := range value {
				b.WriteRune(r)
			}
			i = afterIdx
		default:
			b.WriteByte('&')
			i++
		}
	}
	return b.String()
}

// decodeNumericRef parses a numeric character reference starting at s[0]=='&',
// s[1]=='#'. It returns the number of bytes consumed, the resolved rune, and
// whether a valid reference was found at all (false means "treat the '&' as
// literal and retry one byte later").
func decodeNumericRef(s string, inAttribute bool) (consumed int, r rune, ok bool) {
	i := 2 // past "&#"
	hex := false
	if i < len(s) && (s[i] == 'x' || s[i] == 'X') {
		hex = true
		i++
	}
	digitsStart := i
	base := 10
	if hex {
		base = 16
	}
	var value int64
	for i < len(s) {
		c := s[i]
		var d int64
		switch {
		case hex && isHexDigit(c):
			d = int64(hexDigitValue(c))
		case !hex && isDigit(c):
			d = int64(c - '0')
		default:
			goto doneDigits
		}
		value = value*int64(base) + d
		if value > 0x110000 {
			value = 0x110000 // clamp; ResolveNumeric will map to U+FFFD
		}
		i++
	}
doneDigits:
	if i == digitsStart {
		return 0, 0, false
	}
	hasSemi := i < len(s) && s[i] == ';'
	if hasSemi {
		i++
	} else if inAttribute && i < len(s) && (isAlnum(s[i]) || s[i] == '=') {
		return 0, 0, false
	}
	return i, ResolveNumeric(value), true
}

func hexDigitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}
