package wordlist

type orderedSet struct {
	index map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{
		index: map[string]struct{}{},
	}
}

func (s *orderedSet) add(words ...string) {
	for _, w := range words {
		if s.contains(w) {
			continue
		}
		s.index[w] = struct{}{}
		s.items = append(s.items, w)
	}
}

func (s *orderedSet) contains(word string) bool {
	_, ok := s.index[word]
	return ok
}

func (s *orderedSet) len() int {
	return len(s.items)
}
