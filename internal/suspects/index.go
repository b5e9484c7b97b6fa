// Package suspects maps clues to the suspect they incriminate.
package suspects

import (
	"slices"
)

// Association links one clue text to the suspect it points to.
type Association struct {
	Clue    string
	Suspect string
}

// Index answers which suspect a clue points to. It is built once and read-only afterwards.
type Index struct {
	suspectByClue map[string]string
}

// New builds an Index from associations in order. When a clue occurs more than once, the last association wins.
func New(associations ...Association) *Index {
	idx := &Index{suspectByClue: make(map[string]string, len(associations))}
	for _, a := range associations {
		idx.suspectByClue[a.Clue] = a.Suspect
	}
	return idx
}

// Lookup returns the suspect stored for clue. The match is exact and case-sensitive; ok is false when the clue
// points to nobody. A nil Index knows no clues.
func (idx *Index) Lookup(clue string) (suspect string, ok bool) {
	if idx == nil {
		return "", false
	}
	suspect, ok = idx.suspectByClue[clue]
	return suspect, ok
}

// Len returns the number of clues in the index.
func (idx *Index) Len() int {
	return len(idx.suspectByClue)
}

// Suspects returns the distinct suspect names in alphabetical order.
func (idx *Index) Suspects() []string {
	names := make([]string, 0, len(idx.suspectByClue))
	for _, s := range idx.suspectByClue {
		names = append(names, s)
	}
	slices.Sort(names)
	return slices.Compact(names)
}
