// Package clues keeps the clues a detective collected during one exploration in alphabetical order.
package clues

import (
	"github.com/myrjola/detectivequest/internal/tree"
)

// Set is an ordered set of clue texts. Clues compare byte-wise and case-sensitively.
// The zero Set is empty and ready to use.
type Set struct {
	tree tree.Tree[string]
}

// NewSet returns an empty Set with the given clues inserted in order.
func NewSet(clues ...string) *Set {
	s := &Set{}
	for _, c := range clues {
		s.Insert(c)
	}
	return s
}

// Insert adds clue to the set and reports whether the set grew. Empty clues and
// clues that are already present are ignored, so the first insertion wins.
func (s *Set) Insert(clue string) bool {
	if clue == "" {
		return false
	}
	return s.tree.Insert(clue)
}

// Contains reports whether clue was collected.
func (s *Set) Contains(clue string) bool {
	return s.tree.Contains(clue)
}

// Clues returns the collected clues in ascending order.
func (s *Set) Clues() []string {
	return s.tree.Keys()
}

// Each calls f for every clue in ascending order until f returns false.
func (s *Set) Each(f func(clue string) bool) {
	s.tree.InOrder(f)
}

func (s *Set) Len() int {
	return s.tree.Len()
}

func (s *Set) Empty() bool {
	return s.tree.Len() == 0
}
