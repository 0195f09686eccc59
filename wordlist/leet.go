package wordlist

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Substitutes for each letter, the letter itself first.
var leetMap = map[rune][]rune{
	'a': {'a', '@', '4'},
	'e': {'e', '3'},
	'i': {'i', '1', '!'},
	'o': {'o', '0'},
	's': {'s', '$', '5'},
	't': {'t', '7'},
}

// LeetVariants expands the lowercased word into every combination of leet
// substitutions, in Cartesian order: the last position varies fastest.
// A word with n substitutable letters can yield up to 3^n variants.
func LeetVariants(word string) []string {
	return leetVariants(word, 0)
}

// leetVariants stops expanding once limit variants exist; limit <= 0 means
// no limit.
func leetVariants(word string, limit int) []string {
	variants := []string{""}

	for _, r := range cases.Lower(language.Und).String(word) {
		choices, ok := leetMap[r]
		if !ok {
			choices = []rune{r}
		}

		next := make([]string, 0, len(variants)*len(choices))
	expand:
		for _, prev := range variants {
			for _, c := range choices {
				if limit > 0 && len(next) == limit {
					break expand
				}
				next = append(next, prev+string(c))
			}
		}
		variants = next
	}

	return variants
}

// CaseVariants returns the lowercase, uppercase and title-case forms of
// word, without duplicates.
func CaseVariants(word string) []string {
	set := newOrderedSet()
	set.add(
		cases.Lower(language.Und).String(word),
		cases.Upper(language.Und).String(word),
		cases.Title(language.Und).String(word),
	)

	return set.items
}
