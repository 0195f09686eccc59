// Package wordlist derives password-guessing candidates from seed words.
//
// Every seed contributes its case variants and its leet-speak variants as
// base words. Each base word is emitted followed by one entry per suffix.
// Base words keep the order in which they were first produced, so the same
// seeds always yield the same list.
package wordlist

var defaultSuffixes = []string{"!", "@", "123", "2024", "2025"}

func DefaultSuffixes() []string {
	return append([]string(nil), defaultSuffixes...)
}

type Generator interface {
	Generate(seeds []string, maxItems int) []string
}

type Options struct {
	// Suffixes replaces the default suffixes when non-empty.
	Suffixes []string

	// MaxLeetVariants caps the leet variants produced per seed. Zero means
	// the full Cartesian product.
	MaxLeetVariants int
}

type generator struct {
	suffixes        []string
	maxLeetVariants int
}

func New(opts Options) Generator {
	suffixes := defaultSuffixes
	if len(opts.Suffixes) > 0 {
		suffixes = append([]string(nil), opts.Suffixes...)
	}

	return &generator{
		suffixes:        suffixes,
		maxLeetVariants: opts.MaxLeetVariants,
	}
}

func NewDefaultGenerator() Generator {
	return New(Options{})
}

var defaultGenerator = NewDefaultGenerator()

// Generate runs the default generator.
func Generate(seeds []string, maxItems int) []string {
	return defaultGenerator.Generate(seeds, maxItems)
}

// Generate returns at most maxItems distinct entries. Blocks are emitted
// whole until the list reaches maxItems and only then truncated, so the
// last base word may lose some of its suffixed forms.
func (g *generator) Generate(seeds []string, maxItems int) []string {
	if maxItems <= 0 {
		return []string{}
	}

	bases := newOrderedSet()
	for _, seed := range seeds {
		bases.add(CaseVariants(seed)...)
		bases.add(leetVariants(seed, g.maxLeetVariants)...)
	}

	entries := newOrderedSet()
	for _, base := range bases.items {
		entries.add(base)
		for _, suffix := range g.suffixes {
			entries.add(base + suffix)
		}

		if entries.len() >= maxItems {
			break
		}
	}

	list := entries.items
	if len(list) > maxItems {
		list = list[:maxItems]
	}
	if list == nil {
		list = []string{}
	}

	return list
}
