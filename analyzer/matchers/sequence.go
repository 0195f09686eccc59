package matchers

import "unicode"

// Sequence matches the first window of width runes that are either all
// digits or all letters.
func Sequence(width int) Matcher {
	return &sequence{
		width: width,
	}
}

type sequence struct {
	width int
}

func (m *sequence) Match(input string) (bool, int, int) {
	if m.width <= 0 {
		return false, 0, 0
	}

	var (
		runes   []rune
		offsets []int
	)
	for i, r := range input {
		runes = append(runes, r)
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(input))

	for i := 0; i+m.width <= len(runes); i++ {
		window := runes[i : i+m.width]
		if all(window, unicode.IsDigit) || all(window, unicode.IsLetter) {
			return true, offsets[i], offsets[i+m.width]
		}
	}

	return false, 0, 0
}

func all(runes []rune, is func(rune) bool) bool {
	for _, r := range runes {
		if !is(r) {
			return false
		}
	}

	return true
}
