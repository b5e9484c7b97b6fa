// Package explore walks the detective through the mansion one choice at a time.
package explore

import (
	"github.com/myrjola/detectivequest/internal/clues"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/tally"
	"slices"
)

// Command is one choice of the player.
type Command int

const (
	Invalid Command = iota
	Left
	Right
	Quit
)

// ParseCommand maps e/E to Left, d/D to Right and s/S to Quit. Anything else is Invalid.
func ParseCommand(c rune) Command {
	switch c {
	case 'e', 'E':
		return Left
	case 'd', 'D':
		return Right
	case 's', 'S':
		return Quit
	default:
		return Invalid
	}
}

func (c Command) String() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	case Quit:
		return "quit"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Options configure how an exploration ends.
type Options struct {
	// AllowQuit lets the player leave at any time. Without it, Quit is an invalid option.
	AllowQuit bool
	// DeadEndExits ends the exploration as soon as the player enters a room without paths.
	DeadEndExits bool
}

type EventKind int

const (
	// EventEntered means the walker arrived in Room.
	EventEntered EventKind = iota
	// EventNoPath means there is no room in the requested direction. The walker stays.
	EventNoPath
	// EventInvalid means the command was not understood. The walker stays.
	EventInvalid
	// EventQuit means the player left the mansion.
	EventQuit
)

// Event describes the outcome of one step.
type Event struct {
	Kind EventKind
	// Command is the command that caused the step. It is Invalid for the arrival in the starting room.
	Command Command
	// Room is the room occupied after the step.
	Room *mansion.Room
	// Clue is the clue found when entering Room, if any.
	Clue string
	// NewClue is set when Clue was not collected before.
	NewClue bool
	// Suspect is the suspect Clue points to; SuspectKnown is false when it points to nobody or
	// the walker has no suspect index.
	Suspect      string
	SuspectKnown bool
	// Exited is set when the exploration is over after this step.
	Exited bool
}

// Walker is the exploration cursor. It moves through the room tree, collects the clue of every room it enters
// and looks up the suspect for it. A Walker is used by a single session and is not safe for concurrent use.
type Walker struct {
	cursor   *mansion.Room
	opts     Options
	clues    *clues.Set
	resolver tally.Resolver
	exited   bool
	visited  []*mansion.Room
}

// NewWalker places a walker at entrance. Clues are collected into set and resolved with resolver; either may be
// nil for variants without clue collection or suspects.
func NewWalker(entrance *mansion.Room, opts Options, set *clues.Set, resolver tally.Resolver) *Walker {
	return &Walker{
		cursor:   entrance,
		opts:     opts,
		clues:    set,
		resolver: resolver,
	}
}

// Current returns the room the walker is in.
func (w *Walker) Current() *mansion.Room {
	return w.cursor
}

// Exited reports whether the exploration is over.
func (w *Walker) Exited() bool {
	return w.exited
}

// Visited returns a copy of the rooms in the order they were entered, revisits included.
func (w *Walker) Visited() []*mansion.Room {
	return slices.Clone(w.visited)
}

// Options returns the configuration of the walker.
func (w *Walker) Options() Options {
	return w.opts
}

// Enter handles the arrival in the starting room. It must be called once before the first Step.
func (w *Walker) Enter() Event {
	return w.enter(Invalid)
}

// Step applies one command. Steps after the exploration is over keep reporting EventQuit without moving.
func (w *Walker) Step(cmd Command) Event {
	if w.exited {
		return Event{Kind: EventQuit, Command: cmd, Room: w.cursor, Exited: true}
	}

	switch cmd {
	case Left, Right:
		next := w.cursor.Left()
		if cmd == Right {
			next = w.cursor.Right()
		}
		if next == nil {
			return Event{Kind: EventNoPath, Command: cmd, Room: w.cursor}
		}
		w.cursor = next
		return w.enter(cmd)
	case Quit:
		if w.opts.AllowQuit {
			w.exited = true
			return Event{Kind: EventQuit, Command: cmd, Room: w.cursor, Exited: true}
		}
	case Invalid:
	}

	return Event{Kind: EventInvalid, Command: cmd, Room: w.cursor}
}

func (w *Walker) enter(cmd Command) Event {
	ev := Event{Kind: EventEntered, Command: cmd, Room: w.cursor}
	w.visited = append(w.visited, w.cursor)

	if clue := w.cursor.Clue(); clue != "" {
		ev.Clue = clue
		if w.clues != nil {
			ev.NewClue = w.clues.Insert(clue)
		}
		if w.resolver != nil {
			ev.Suspect, ev.SuspectKnown = w.resolver.Lookup(clue)
		}
	}

	if w.opts.DeadEndExits && w.cursor.DeadEnd() {
		w.exited = true
		ev.Exited = true
	}

	return ev
}
