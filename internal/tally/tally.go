// Package tally weighs collected clues against an accused suspect.
package tally

import (
	"strings"
)

// EvidenceThreshold is the number of matching clues needed for an accusation to hold.
const EvidenceThreshold = 2

// Resolver tells which suspect a clue points to. [suspects.Index] implements it.
type Resolver interface {
	Lookup(clue string) (suspect string, ok bool)
}

// ClueSource enumerates collected clues. [clues.Set] implements it.
type ClueSource interface {
	Each(f func(clue string) bool)
	Empty() bool
}

type Verdict int

const (
	Insufficient Verdict = iota
	Sufficient
)

func (v Verdict) String() string {
	if v == Sufficient {
		return "sufficient"
	}
	return "insufficient"
}

// Reason explains how an Outcome came about.
type Reason int

const (
	// ReasonTallied means the clues were counted against the accused.
	ReasonTallied Reason = iota
	// ReasonNoEvidence means no clues were collected at all.
	ReasonNoEvidence
	// ReasonNoAccusation means the accused name was blank.
	ReasonNoAccusation
)

func (r Reason) String() string {
	switch r {
	case ReasonTallied:
		return "tallied"
	case ReasonNoEvidence:
		return "no evidence"
	case ReasonNoAccusation:
		return "no accusation"
	default:
		return "unknown"
	}
}

// Outcome is the result of an accusation.
type Outcome struct {
	Reason  Reason
	Accused string
	Count   int
	Verdict Verdict
}

// CountForSuspect counts the clues that resolve to accused. Suspect names are compared case-insensitively.
func CountForSuspect(set ClueSource, resolver Resolver, accused string) int {
	count := 0
	set.Each(func(clue string) bool {
		if suspect, ok := resolver.Lookup(clue); ok && strings.EqualFold(suspect, accused) {
			count++
		}
		return true
	})
	return count
}

// VerdictFor judges a clue count against EvidenceThreshold.
func VerdictFor(count int) Verdict {
	if count >= EvidenceThreshold {
		return Sufficient
	}
	return Insufficient
}

// Accuse runs the whole accusation. An empty clue set is judged without consulting resolver and a blank accused
// name is not an accusation at all; both are insufficient.
func Accuse(set ClueSource, resolver Resolver, accused string) Outcome {
	if set.Empty() {
		return Outcome{Reason: ReasonNoEvidence, Verdict: Insufficient}
	}

	accused = strings.TrimSpace(accused)
	if accused == "" {
		return Outcome{Reason: ReasonNoAccusation, Verdict: Insufficient}
	}

	count := CountForSuspect(set, resolver, accused)
	return Outcome{
		Reason:  ReasonTallied,
		Accused: accused,
		Count:   count,
		Verdict: VerdictFor(count),
	}
}
