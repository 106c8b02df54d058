package uritemplate

import "strings"

const upperhex = "0123456789ABCDEF"

// IsUnreserved reports whether c is an RFC 3986 unreserved character, which
// never needs percent-encoding.
func IsUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}

// IsReserved reports whether c is an RFC 3986 reserved character. Operators
// with reserved passthrough (+ and #) copy these through unescaped.
func IsReserved(c byte) bool {
	switch c {
	case ':', '/', '?', '#', '[', ']', '@',
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// Escape percent-encodes s for use in an expanded URI. When allowReserved is
// true, reserved characters and well-formed %XX triplets already present in
// the value are copied through instead of being double-encoded.
func Escape(s string, allowReserved bool) string {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case IsUnreserved(c):
			b.WriteByte(c)
		case allowReserved && IsReserved(c):
			b.WriteByte(c)
		case allowReserved && c == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]):
			b.WriteByte('%')
			b.WriteByte(s[i+1])
			b.WriteByte(s[i+2])
			i += 2
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
		}
	}

	return b.String()
}

// Unescape decodes %XX triplets in s. Malformed triplets are copied through
// unchanged rather than rejected; matching treats the raw bytes as the value.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '%') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(c)
	}

	return b.String()
}
