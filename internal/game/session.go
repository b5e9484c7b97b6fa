// Package game runs one detective session: exploring the mansion, listing the clues and judging the accusation.
package game

import (
	"context"
	"github.com/google/uuid"
	"github.com/myrjola/detectivequest/internal/clues"
	"github.com/myrjola/detectivequest/internal/console"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/explore"
	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/suspects"
	"github.com/myrjola/detectivequest/internal/tally"
	"io"
	"log/slog"
	"strings"
)

// Session owns everything one player touches during a game. Sessions are never shared.
type Session struct {
	ID      string
	variant Variant
	opts    explore.Options
	mansion *mansion.Mansion
	clues   *clues.Set
	index   *suspects.Index
	logger  *slog.Logger
}

// Report summarises a finished session.
type Report struct {
	SessionID string
	Variant   Variant
	// Visited lists the names of the rooms in the order they were entered.
	Visited   []string
	FinalRoom string
	// Clues are the collected clues in alphabetical order.
	Clues []string
	// Outcome is set for variants with an accusation.
	Outcome *tally.Outcome
}

// New prepares a session of variant with a freshly built mansion, clue set and suspect index.
func New(variant Variant, opts explore.Options, logger *slog.Logger) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		variant: variant,
		opts:    opts,
		mansion: variant.Mansion(),
		logger:  logger.With(slog.String("source", "game")),
	}
	if variant.CollectsClues() {
		s.clues = clues.NewSet()
	}
	if variant.HasSuspects() {
		s.index = suspects.New(s.mansion.Associations...)
	}
	return s
}

// Play runs the session reading the player's choices from r and writing the narration to w. A session can be
// played once.
func (s *Session) Play(ctx context.Context, r io.Reader, w io.Writer) (*Report, error) {
	ctx = logging.WithAttrs(ctx, slog.String("sessionID", s.ID), slog.String("variant", string(s.variant)))
	s.logger.LogAttrs(ctx, slog.LevelInfo, "session started",
		slog.Int("rooms", len(s.mansion.Rooms())),
		slog.Bool("allowQuit", s.opts.AllowQuit),
		slog.Bool("deadEndExits", s.opts.DeadEndExits),
	)

	in := console.NewInput(r)
	defer in.CloseOnDone(ctx)()
	out := console.NewPrinter(w)
	s.banner(out)

	// Hand the walker an untyped nil when there are no suspects so that it skips the lookups.
	var resolver tally.Resolver
	if s.index != nil {
		resolver = s.index
	}
	walker := explore.NewWalker(s.mansion.Entrance, s.opts, s.clues, resolver)
	if err := explore.Run(ctx, walker, in, out, s.logger); err != nil {
		return nil, errors.Wrap(err, "explore mansion")
	}

	report := &Report{
		SessionID: s.ID,
		Variant:   s.variant,
		FinalRoom: walker.Current().Name(),
	}
	for _, room := range walker.Visited() {
		report.Visited = append(report.Visited, room.Name())
	}
	if s.clues != nil {
		report.Clues = s.clues.Clues()
	}

	switch {
	case s.variant.HasSuspects():
		outcome, err := s.accuse(ctx, in, out)
		if err != nil {
			return nil, errors.Wrap(err, "accuse suspect")
		}
		report.Outcome = &outcome
	case s.variant.CollectsClues():
		out.Println()
		out.Println("CLUES COLLECTED (alphabetical order):")
		s.listClues(out)
	}

	out.Println()
	out.Println("Thanks for playing Detective Quest!")

	s.logger.LogAttrs(ctx, slog.LevelInfo, "session finished",
		slog.String("finalRoom", report.FinalRoom),
		slog.Int("roomsVisited", len(report.Visited)),
		slog.Int("clues", len(report.Clues)),
	)

	if err := out.Err(); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *Session) banner(out *console.Printer) {
	out.Printf("=== %s ===\n", s.variant.Title())
	switch s.variant {
	case Novice:
		out.Println("Welcome to the mysterious mansion! You start exploring from the Entrance Hall.")
	case Adventurer:
		out.Println("Welcome, detective! Explore the mansion and collect every clue.")
	case Master:
		out.Println("You are the detective. Explore the mansion, collect clues and accuse a suspect.")
	}
	controls := []string{"'e' = left", "'d' = right"}
	if s.opts.AllowQuit {
		controls = append(controls, "'s' = leave")
	}
	out.Printf("Controls: %s\n", strings.Join(controls, ", "))
}

func (s *Session) listClues(out *console.Printer) {
	if s.clues.Empty() {
		out.Println(" (none)")
		return
	}
	s.clues.Each(func(clue string) bool {
		out.Printf(" - %s\n", clue)
		return true
	})
}

func (s *Session) accuse(ctx context.Context, in *console.Input, out *console.Printer) (tally.Outcome, error) {
	// The last choice leaves its line ending behind.
	if err := in.DiscardLine(); err != nil {
		return tally.Outcome{}, err
	}

	out.Println()
	out.Println("=== Accusation ===")
	if s.clues.Empty() {
		outcome := tally.Accuse(s.clues, s.index, "")
		out.Println("You collected no clues, there is not enough evidence to accuse anyone.")
		s.logOutcome(ctx, outcome)
		return outcome, nil
	}

	out.Println("Collected clues:")
	s.listClues(out)
	out.Printf("\nSuspects: %s\n", strings.Join(s.index.Suspects(), ", "))
	out.Printf("\nEnter the name of the suspect you accuse: ")
	if err := out.Err(); err != nil {
		return tally.Outcome{}, err
	}

	accused, err := in.ReadLine()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return tally.Outcome{}, ctxErr
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return tally.Outcome{}, err
	}

	outcome := tally.Accuse(s.clues, s.index, accused)
	switch outcome.Reason {
	case tally.ReasonNoAccusation:
		out.Println("No name given, nobody is accused.")
	case tally.ReasonNoEvidence:
		out.Println("There is no evidence to accuse anyone.")
	case tally.ReasonTallied:
		out.Printf("\n%s is linked to the crime by %d clue(s).\n", outcome.Accused, outcome.Count)
		if outcome.Verdict == tally.Sufficient {
			out.Printf("\nValid accusation: there is enough evidence to accuse %s.\n", outcome.Accused)
			out.Println("The case moves on to interrogation and possible conviction.")
		} else {
			out.Printf("\nWeak accusation: there are not enough clues to hold %s responsible.\n", outcome.Accused)
			out.Println("Keep investigating.")
		}
	}
	s.logOutcome(ctx, outcome)

	return outcome, nil
}

func (s *Session) logOutcome(ctx context.Context, outcome tally.Outcome) {
	s.logger.LogAttrs(ctx, slog.LevelInfo, "accusation judged",
		slog.String("reason", outcome.Reason.String()),
		slog.String("accused", outcome.Accused),
		slog.Int("count", outcome.Count),
		slog.String("verdict", outcome.Verdict.String()),
	)
}
