package explore

import (
	"context"
	"github.com/myrjola/detectivequest/internal/console"
	"github.com/myrjola/detectivequest/internal/errors"
	"io"
	"log/slog"
)

// Run drives w with the player's choices from in until the exploration is over and narrates every step to out.
// Running out of input ends the exploration like quitting does. Cancelling ctx closes the input and Run returns
// the context error, also while it waits for a choice.
func Run(ctx context.Context, w *Walker, in *console.Input, out *console.Printer, logger *slog.Logger) error {
	defer in.CloseOnDone(ctx)()

	ev := w.Enter()
	logStep(ctx, logger, ev)
	narrate(out, w, ev)

	for !w.Exited() {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "explore", slog.String("room", w.Current().Name()))
		}

		promptPaths(out, w)
		if err := out.Err(); err != nil {
			return err
		}

		c, err := in.ReadChoice()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrap(ctxErr, "explore", slog.String("room", w.Current().Name()))
		}
		if errors.Is(err, io.EOF) {
			logger.InfoContext(ctx, "input exhausted", slog.String("room", w.Current().Name()))
			out.Println()
			out.Println("No more input, you leave the mansion.")
			break
		}
		if err != nil {
			return errors.Wrap(err, "read choice", slog.String("room", w.Current().Name()))
		}

		ev = w.Step(ParseCommand(c))
		logStep(ctx, logger, ev)
		narrate(out, w, ev)
	}

	return out.Err()
}

func logStep(ctx context.Context, logger *slog.Logger, ev Event) {
	logger.LogAttrs(ctx, slog.LevelDebug, "exploration step",
		slog.String("command", ev.Command.String()),
		slog.Int("kind", int(ev.Kind)),
		slog.String("room", ev.Room.Name()),
		slog.String("clue", ev.Clue),
		slog.Bool("newClue", ev.NewClue),
		slog.Bool("exited", ev.Exited),
	)
}

func narrate(out *console.Printer, w *Walker, ev Event) {
	switch ev.Kind {
	case EventEntered:
		if ev.Command == Invalid {
			out.Printf("\nYou entered the %s.\n", ev.Room.Name())
		} else {
			out.Printf("\nYou went to the %s.\n", ev.Room.Name())
		}
		switch {
		case ev.Clue != "":
			out.Printf("Clue found: %q\n", ev.Clue)
			if ev.SuspectKnown {
				out.Printf("   (This clue points to: %s)\n", ev.Suspect)
			}
		case w.clues != nil:
			out.Println("No clue in this room.")
		}
		if ev.Exited {
			out.Printf("You reached the end of the path in the %s.\n", ev.Room.Name())
		}
	case EventNoPath:
		out.Printf("There is no path to the %s!\n", ev.Command)
	case EventInvalid:
		out.Println("Invalid option, try again.")
	case EventQuit:
		out.Println()
		out.Println("You ended the exploration.")
	}
}

func promptPaths(out *console.Printer, w *Walker) {
	room := w.Current()
	out.Printf("\nPaths from the %s:\n", room.Name())
	if left := room.Left(); left != nil {
		out.Printf("  (e) Go to the %s (left)\n", left.Name())
	}
	if right := room.Right(); right != nil {
		out.Printf("  (d) Go to the %s (right)\n", right.Name())
	}
	if w.opts.AllowQuit {
		out.Println("  (s) Leave the exploration")
	}
	out.Printf("\nChoose your action: ")
}
