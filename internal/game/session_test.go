package game_test

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/myrjola/detectivequest/internal/explore"
	"github.com/myrjola/detectivequest/internal/game"
	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/tally"
	"github.com/myrjola/detectivequest/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func play(t *testing.T, variant game.Variant, input string) (*game.Report, string) {
	t.Helper()
	session := game.New(variant, variant.DefaultOptions(), testhelpers.NewTestLogger(t))
	var out bytes.Buffer
	report, err := session.Play(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)
	require.NotNil(t, report)
	require.Equal(t, session.ID, report.SessionID)
	return report, out.String()
}

func TestSession_Play_novice(t *testing.T) {
	t.Parallel()
	report, out := play(t, game.Novice, "d\ne\nd\nd\n")

	require.Equal(t, []string{mansion.EntranceHall, mansion.Kitchen, mansion.Cellar, mansion.Study}, report.Visited)
	require.Equal(t, mansion.Study, report.FinalRoom)
	require.Empty(t, report.Clues)
	require.Nil(t, report.Outcome)
	require.Contains(t, out, "=== Detective Quest ===")
	require.Contains(t, out, "There is no path to the left!")
	require.Contains(t, out, "You reached the end of the path in the Study.")
	require.NotContains(t, out, "Clue found")
	require.NotContains(t, out, "No clue in this room.")
	require.NotContains(t, out, "Accusation")
}

func TestSession_Play_noviceQuit(t *testing.T) {
	t.Parallel()
	report, out := play(t, game.Novice, "e s")
	require.Equal(t, mansion.LivingRoom, report.FinalRoom)
	require.Contains(t, out, "You ended the exploration.")
}

func TestSession_Play_adventurer(t *testing.T) {
	t.Parallel()
	report, out := play(t, game.Adventurer, "e e\ns\n")

	require.Equal(t, []string{mansion.EntranceHall, mansion.LivingRoom, mansion.Library}, report.Visited)
	require.Equal(t, []string{
		"A book torn from the shelf.",
		"A portrait with a strange mark.",
		"The study key is missing.",
	}, report.Clues)
	require.Nil(t, report.Outcome)
	require.Contains(t, out, "CLUES COLLECTED (alphabetical order):\n"+
		" - A book torn from the shelf.\n"+
		" - A portrait with a strange mark.\n"+
		" - The study key is missing.\n")
	require.NotContains(t, out, "This clue points to", "adventurers have no suspects")
}

func TestSession_Play_master(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantClues   int
		wantOutcome tally.Outcome
		wantOutput  []string
	}{
		{
			name:      "sufficient evidence against Marta",
			input:     "d d d e\ns\nmarta r.\n",
			wantClues: 4,
			wantOutcome: tally.Outcome{
				Reason: tally.ReasonTallied, Accused: "marta r.", Count: 2, Verdict: tally.Sufficient,
			},
			wantOutput: []string{
				"(This clue points to: Marta R.)",
				"There is no path to the left!",
				"Suspects: Carlos, Eleanor, Marta R.",
				"marta r. is linked to the crime by 2 clue(s).",
				"Valid accusation",
			},
		},
		{
			name:      "two clues against Eleanor",
			input:     "e e\ns\nEleanor\n",
			wantClues: 3,
			wantOutcome: tally.Outcome{
				Reason: tally.ReasonTallied, Accused: "Eleanor", Count: 2, Verdict: tally.Sufficient,
			},
			wantOutput: []string{"Eleanor is linked to the crime by 2 clue(s)."},
		},
		{
			name:      "one clue is not enough",
			input:     "e s\nCarlos\n",
			wantClues: 2,
			wantOutcome: tally.Outcome{
				Reason: tally.ReasonTallied, Accused: "Carlos", Count: 1, Verdict: tally.Insufficient,
			},
			wantOutput: []string{"Weak accusation", "Keep investigating."},
		},
		{
			name:        "blank accusation",
			input:       "s\n   \n",
			wantClues:   1,
			wantOutcome: tally.Outcome{Reason: tally.ReasonNoAccusation, Verdict: tally.Insufficient},
			wantOutput:  []string{"No name given, nobody is accused."},
		},
		{
			name:        "input ends before the accusation",
			input:       "s",
			wantClues:   1,
			wantOutcome: tally.Outcome{Reason: tally.ReasonNoAccusation, Verdict: tally.Insufficient},
			wantOutput:  []string{"Enter the name of the suspect you accuse:"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			report, out := play(t, game.Master, tt.input)
			require.Len(t, report.Clues, tt.wantClues)
			require.NotNil(t, report.Outcome)
			require.Equal(t, tt.wantOutcome, *report.Outcome)
			for _, want := range tt.wantOutput {
				require.Contains(t, out, want)
			}
			require.Contains(t, out, "Thanks for playing Detective Quest!")
		})
	}
}

func TestSession_Play_logsSessionID(t *testing.T) {
	var logs bytes.Buffer
	logger, err := logging.NewLogger(&logs, slog.LevelInfo, "json")
	require.NoError(t, err)

	session := game.New(game.Master, game.Master.DefaultOptions(), logger)
	_, err = session.Play(context.Background(), strings.NewReader("s\nEleanor\n"), io.Discard)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		require.Equal(t, session.ID, record["sessionID"], line)
		require.Equal(t, "master", record["variant"], line)
	}
	require.Contains(t, logs.String(), `"msg":"accusation judged"`)
}

func TestSession_Play_customOptions(t *testing.T) {
	t.Parallel()
	session := game.New(game.Master, explore.Options{AllowQuit: false, DeadEndExits: true},
		testhelpers.NewTestLogger(t))
	var out bytes.Buffer
	report, err := session.Play(context.Background(), strings.NewReader("s e d\nCarlos\n"), &out)
	require.NoError(t, err)
	require.Equal(t, mansion.Garden, report.FinalRoom)
	require.NotContains(t, out.String(), "'s' = leave")
	require.Contains(t, out.String(), "Invalid option, try again.")
	require.Equal(t, 1, report.Outcome.Count)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestSession_Play_outputError(t *testing.T) {
	session := game.New(game.Adventurer, game.Adventurer.DefaultOptions(), testhelpers.NewLogger(io.Discard))
	report, err := session.Play(context.Background(), strings.NewReader("s\n"), brokenWriter{})
	require.ErrorIs(t, err, io.ErrClosedPipe)
	require.Nil(t, report)
}

func TestParseVariant(t *testing.T) {
	for _, v := range game.Variants {
		got, err := game.ParseVariant(strings.ToUpper(string(v)))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	_, err := game.ParseVariant("expert")
	require.ErrorIs(t, err, game.ErrUnknownVariant)
}

func TestSession_Play_cancelledDuringAccusation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pr, pw := io.Pipe()
	defer pw.Close()

	session := game.New(game.Master, game.Master.DefaultOptions(), testhelpers.NewLogger(io.Discard))
	type result struct {
		report *game.Report
		err    error
	}
	done := make(chan result, 1)
	go func() {
		report, err := session.Play(ctx, pr, io.Discard)
		done <- result{report, err}
	}()

	_, err := pw.Write([]byte("s\n"))
	require.NoError(t, err)
	cancel()

	select {
	case res := <-done:
		require.ErrorIs(t, res.err, context.Canceled)
		require.Nil(t, res.report)
	case <-time.After(5 * time.Second):
		t.Fatal("Play kept waiting for input after cancellation")
	}
}
