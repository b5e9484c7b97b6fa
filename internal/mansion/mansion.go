// Package mansion holds the fixed room layout of the mansion and the clues hidden in it.
package mansion

import (
	"fmt"
	"github.com/myrjola/detectivequest/internal/suspects"
	"github.com/myrjola/detectivequest/internal/tree"
	"strings"
)

// Room is a node in the mansion's binary room tree. Rooms are immutable once the mansion is built.
type Room struct {
	name        string
	clue        string
	left, right *Room
}

func newRoom(name, clue string) *Room {
	return &Room{name: name, clue: clue}
}

func (r *Room) Name() string {
	return r.name
}

// Clue returns the clue hidden in the room or the empty string when there is none.
func (r *Room) Clue() string {
	return r.clue
}

// Left returns the room down the left path or nil.
func (r *Room) Left() *Room {
	return r.left
}

// Right returns the room down the right path or nil.
func (r *Room) Right() *Room {
	return r.right
}

// DeadEnd reports whether no path leads on from the room.
func (r *Room) DeadEnd() bool {
	return r.left == nil && r.right == nil
}

// Mansion is a room tree together with the clue to suspect associations of the case.
type Mansion struct {
	Entrance     *Room
	Associations []suspects.Association
}

// Rooms returns every room in depth-first order starting from the entrance, left before right.
func (m *Mansion) Rooms() []*Room {
	var rooms []*Room
	var walk func(r *Room)
	walk = func(r *Room) {
		if r == nil {
			return
		}
		rooms = append(rooms, r)
		walk(r.left)
		walk(r.right)
	}
	walk(m.Entrance)
	return rooms
}

// String renders the room tree with the clue of each room.
func (m *Mansion) String() string {
	var sb strings.Builder
	tree.Render(&sb, m.Entrance, func(r *Room) (string, *Room, *Room) {
		if r.clue == "" {
			return r.name, r.left, r.right
		}
		return fmt.Sprintf("%s: %q", r.name, r.clue), r.left, r.right
	})
	return sb.String()
}

const (
	EntranceHall = "Entrance Hall"
	LivingRoom   = "Living Room"
	Kitchen      = "Kitchen"
	Library      = "Library"
	Garden       = "Garden"
	Cellar       = "Cellar"
	Study        = "Study"
)

// roomClues lists the clue of every room; rooms missing from the map have none.
type roomClues map[string]string

// build links the fixed layout shared by every variant:
//
//	Entrance Hall
//	├─L─Living Room
//	│   ├─L─Library
//	│   └─R─Garden
//	└─R─Kitchen
//	    └─R─Cellar
//	        └─R─Study
func build(clues roomClues) *Room {
	room := func(name string) *Room { return newRoom(name, clues[name]) }

	hall := room(EntranceHall)
	living := room(LivingRoom)
	kitchen := room(Kitchen)
	library := room(Library)
	garden := room(Garden)
	cellar := room(Cellar)
	study := room(Study)

	hall.left, hall.right = living, kitchen
	living.left, living.right = library, garden
	kitchen.right = cellar
	cellar.right = study

	return hall
}

// Novice builds the mansion without any clues.
func Novice() *Mansion {
	return &Mansion{Entrance: build(nil)}
}

// Adventurer builds the mansion with clues but without suspects.
func Adventurer() *Mansion {
	return &Mansion{Entrance: build(roomClues{
		EntranceHall: "The study key is missing.",
		LivingRoom:   "A portrait with a strange mark.",
		Kitchen:      "Muddy footprints near the sink.",
		Library:      "A book torn from the shelf.",
		Garden:       "A handkerchief with mysterious initials.",
		Cellar:       "A locked safe with no key.",
		Study:        "A torn note bearing the name 'Eleanor'.",
	})}
}

// Master builds the mansion where every clue points to one of the suspects.
func Master() *Mansion {
	const (
		eleanor = "Eleanor"
		carlos  = "Carlos"
		marta   = "Marta R."
	)
	placed := []struct {
		room    string
		clue    string
		suspect string
	}{
		{EntranceHall, "The study key is missing.", eleanor},
		{LivingRoom, "A portrait with a red stain.", carlos},
		{Kitchen, "Muddy footprints near the window.", marta},
		{Library, "A torn page mentioning \"Eleanor\".", eleanor},
		{Garden, "A handkerchief with the initials 'M.R.'", marta},
		{Cellar, "Tool marks next to the safe.", carlos},
		{Study, "A note signed 'Marta R.'", marta},
	}

	clues := make(roomClues, len(placed))
	associations := make([]suspects.Association, 0, len(placed))
	for _, p := range placed {
		clues[p.room] = p.clue
		associations = append(associations, suspects.Association{Clue: p.clue, Suspect: p.suspect})
	}

	return &Mansion{Entrance: build(clues), Associations: associations}
}
