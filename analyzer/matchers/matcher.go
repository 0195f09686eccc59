package matchers

//go:generate counterfeiter . Matcher

// Matcher reports whether its pattern occurs in the input and, if so, the
// byte range of the first occurrence.
type Matcher interface {
	Match(string) (bool, int, int)
}
