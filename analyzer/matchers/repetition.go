package matchers

import "unicode/utf8"

// Repetition matches the first run of at least run identical characters.
// The whole run is reported, however long. Newlines never form a run, and
// invalid UTF-8 bytes only repeat when the bytes themselves are equal.
func Repetition(run int) Matcher {
	return &repetition{
		run: run,
	}
}

type repetition struct {
	run int
}

func (m *repetition) Match(input string) (bool, int, int) {
	if m.run <= 0 {
		return false, 0, 0
	}

	var (
		prev  string
		start int
		count int
	)

	for i := 0; i < len(input); {
		_, size := utf8.DecodeRuneInString(input[i:])
		char := input[i : i+size]

		if count > 0 && char == prev && char != "\n" {
			count++
		} else {
			if count >= m.run && prev != "\n" {
				return true, start, i
			}
			prev, start, count = char, i, 1
		}

		i += size
	}

	if count >= m.run && prev != "\n" {
		return true, start, len(input)
	}

	return false, 0, 0
}
