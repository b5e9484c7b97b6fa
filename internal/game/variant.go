package game

import (
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/explore"
	"github.com/myrjola/detectivequest/internal/mansion"
	"log/slog"
	"strings"
)

var ErrUnknownVariant = errors.NewSentinel("unknown variant")

// Variant selects how elaborate the game is.
type Variant string

const (
	// Novice walks an empty mansion until a dead end.
	Novice Variant = "novice"
	// Adventurer collects clues and lists them alphabetically.
	Adventurer Variant = "adventurer"
	// Master collects clues, hints at suspects and ends with an accusation.
	Master Variant = "master"
)

// Variants lists all variants from the simplest to the most elaborate.
var Variants = []Variant{Novice, Adventurer, Master}

// ParseVariant accepts a variant name case-insensitively.
func ParseVariant(name string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(name)))
	switch v {
	case Novice, Adventurer, Master:
		return v, nil
	default:
		return "", errors.Wrap(ErrUnknownVariant, "parse variant", slog.String("variant", name))
	}
}

// Title is shown in the banner.
func (v Variant) Title() string {
	switch v {
	case Novice:
		return "Detective Quest"
	case Adventurer:
		return "Detective Quest: Collecting Clues"
	case Master:
		return "Detective Quest: Final Judgement"
	default:
		return "Detective Quest"
	}
}

// Mansion builds a fresh mansion for the variant.
func (v Variant) Mansion() *mansion.Mansion {
	switch v {
	case Novice:
		return mansion.Novice()
	case Adventurer:
		return mansion.Adventurer()
	default:
		return mansion.Master()
	}
}

// DefaultOptions returns how exploration ends in the variant.
func (v Variant) DefaultOptions() explore.Options {
	return explore.Options{
		AllowQuit:    true,
		DeadEndExits: v == Novice,
	}
}

// CollectsClues reports whether the variant keeps the clues found along the way.
func (v Variant) CollectsClues() bool {
	return v == Adventurer || v == Master
}

// HasSuspects reports whether the variant hints at suspects and ends with an accusation.
func (v Variant) HasSuspects() bool {
	return v == Master
}
