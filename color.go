package notapdf

import "strconv"

// RGBColor represents an RGB color value.
type RGBColor struct {
	R, G, B int
}

// ParseHexColor resolves a user-supplied color token into an RGB triple.
// Any non-hex prefix (such as "#") is stripped; a 3-digit token is expanded
// by duplicating each digit, a 6-digit token is parsed directly, and any
// other shape returns the fallback unchanged. Malformed branding data
// degrades visually, it never fails a render.
func ParseHexColor(token string, fallback RGBColor) RGBColor {
	i := 0
	for i < len(token) && !isHexDigit(token[i]) {
		i++
	}
	s := token[i:]

	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return fallback
	}

	r, err := strconv.ParseUint(s[0:2], 16, 8)
	if err != nil {
		return fallback
	}
	g, err := strconv.ParseUint(s[2:4], 16, 8)
	if err != nil {
		return fallback
	}
	b, err := strconv.ParseUint(s[4:6], 16, 8)
	if err != nil {
		return fallback
	}
	return RGBColor{int(r), int(g), int(b)}
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		return true
	}
	return false
}
