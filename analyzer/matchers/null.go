package matchers

type nullMatcher struct{}

func Null() Matcher {
	return &nullMatcher{}
}

func (m *nullMatcher) Match(string) (bool, int, int) {
	return false, 0, 0
}
