package matchers

type known struct {
	words map[string]struct{}
}

// Known matches inputs that are exactly one of words.
func Known(words ...string) Matcher {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}

	return &known{
		words: set,
	}
}

func (m *known) Match(input string) (bool, int, int) {
	if _, ok := m.words[input]; !ok {
		return false, 0, 0
	}

	return true, 0, len(input)
}
