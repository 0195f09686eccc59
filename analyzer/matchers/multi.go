package matchers

import "strings"

// LowercasedMulti lowercases the input once and returns the first match of
// any of its matchers. Offsets refer to the lowercased input.
func LowercasedMulti(matchers ...Matcher) Matcher {
	return &multi{
		matchers: matchers,
	}
}

type multi struct {
	matchers []Matcher
}

func (m *multi) Match(input string) (bool, int, int) {
	lowercased := strings.ToLower(input)
	for _, matcher := range m.matchers {
		if match, start, end := matcher.Match(lowercased); match {
			return true, start, end
		}
	}

	return false, 0, 0
}
