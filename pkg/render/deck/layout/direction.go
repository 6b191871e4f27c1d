package layout

import "golang.org/x/text/unicode/bidi"

// DirectionAuto is accepted wherever a Direction is configured and resolved
// with DetectDirection against the input text.
const DirectionAuto = "auto"

// DetectDirection returns RightToLeft when the first strongly directional
// character across texts is Hebrew or Arabic, and LeftToRight otherwise
// (including when no text carries a strong direction at all).
func DetectDirection(texts ...string) Direction {
	for _, s := range texts {
		for _, r := range s {
			props, _ := bidi.LookupRune(r)
			switch props.Class() {
			case bidi.R, bidi.AL:
				return RightToLeft
			case bidi.L:
				return LeftToRight
			}
		}
	}
	return LeftToRight
}

// ResolveDirection parses s, resolving "auto" (or an empty string) against
// texts.
func ResolveDirection(s string, texts ...string) (Direction, error) {
	if s == "" || s == DirectionAuto {
		return DetectDirection(texts...), nil
	}
	return ParseDirection(s)
}
