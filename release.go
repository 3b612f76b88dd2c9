package introduced

import (
	"regexp"
	"strconv"
)

// releasePattern matches MathWorks release tokens like "R2014b".
var releasePattern = regexp.MustCompile(`^R(20\d\d)([ab])$`)

// Release is a parsed MathWorks release token.
type Release struct {
	Year int
	Half string // "a" or "b"
}

// ParseRelease parses a token of the form R20yy(a|b).
func ParseRelease(token string) (Release, error) {
	m := releasePattern.FindStringSubmatch(token)
	if m == nil {
		return Release{}, Errorf(EINVALID, "invalid release token %q", token)
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return Release{}, Errorf(EINVALID, "invalid release year in %q", token)
	}
	return Release{Year: year, Half: m[2]}, nil
}

// Compare orders releases chronologically: negative if r predates other,
// zero if equal, positive if r is newer.
func (r Release) Compare(other Release) int {
	if r.Year != other.Year {
		return r.Year - other.Year
	}
	switch {
	case r.Half < other.Half:
		return -1
	case r.Half > other.Half:
		return 1
	}
	return 0
}
