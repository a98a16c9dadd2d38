package notapdf

// ellipsis is appended to truncated text. It is a single cp1252 glyph, so
// the one-character-plus-ellipsis floor is always representable.
const ellipsis = "…"

// FitText shortens s until its rendered width, as reported by measure, is
// within maxW. A string already in budget is returned unchanged; otherwise
// the last character is dropped and the shortened form is re-measured with
// the ellipsis appended, stopping as soon as it fits or only one character
// remains. Fitting an already-fit string is a no-op, so the function is
// idempotent for a fixed measure and budget.
func FitText(measure func(string) float64, s string, maxW float64) string {
	if measure(s) <= maxW {
		return s
	}
	r := []rune(s)
	for len(r) > 1 {
		r = r[:len(r)-1]
		if measure(string(r)+ellipsis) <= maxW {
			break
		}
	}
	return string(r) + ellipsis
}
