package svgscale

import "regexp"

var numberRegex = regexp.MustCompile(`-?\d+\.?\d*`)

// Token is a number found in an attribute value or in path data.
// Start and End are byte offsets, s[Start:End] == Text.
type Token struct {
	Text       string
	Start, End int
}

// ScanNumbers returns every non-overlapping number of s, from left to right.
func ScanNumbers(s string) []Token {
	locs := numberRegex.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return nil
	}
	tokens := make([]Token, len(locs))
	for i, loc := range locs {
		tokens[i] = Token{Text: s[loc[0]:loc[1]], Start: loc[0], End: loc[1]}
	}
	return tokens
}

// IsNumber reports whether the whole of s is a single number token.
func IsNumber(s string) bool {
	loc := numberRegex.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}
