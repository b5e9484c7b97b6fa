// Package console adapts plain readers and writers to the turn-based conversation with the player.
package console

import (
	"bufio"
	"context"
	"fmt"
	"github.com/myrjola/detectivequest/internal/errors"
	"io"
	"strings"
	"unicode"
)

// Input reads the player's choices. Choices are single characters and whitespace between them is skipped, so
// "e d" and "e\nd\n" both yield two choices.
type Input struct {
	r      *bufio.Reader
	closer io.Closer
}

func NewInput(r io.Reader) *Input {
	in := &Input{r: bufio.NewReader(r)}
	if c, ok := r.(io.Closer); ok {
		in.closer = c
	}
	return in
}

// CloseOnDone closes the underlying reader once ctx is done so that a blocked read returns. Readers that cannot
// be closed are left alone. Calling the returned function detaches from ctx; it reports false when the reader
// was already closed.
func (in *Input) CloseOnDone(ctx context.Context) func() bool {
	if in.closer == nil {
		return func() bool { return true }
	}
	return context.AfterFunc(ctx, func() {
		_ = in.closer.Close()
	})
}

// ReadChoice returns the next non-space character. It returns io.EOF when the input is exhausted.
func (in *Input) ReadChoice() (rune, error) {
	for {
		c, _, err := in.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, io.EOF
			}
			return 0, errors.Wrap(err, "read choice")
		}
		if !unicode.IsSpace(c) {
			return c, nil
		}
	}
}

// ReadLine returns the next line without its line ending. A final line without line ending is returned as is;
// io.EOF is returned only when nothing is left to read.
func (in *Input) ReadLine() (string, error) {
	line, err := in.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "read line")
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// DiscardLine skips the rest of the current line, e.g. the line ending left behind by the last choice.
func (in *Input) DiscardLine() error {
	_, err := in.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "discard line")
	}
	return nil
}

// Printer writes to the player. The first write error sticks and later writes are skipped, so callers can
// check Err once after a batch of output.
type Printer struct {
	w   io.Writer
	err error
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = errors.Wrap(err, "write output")
	}
}

func (p *Printer) Println(args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintln(p.w, args...); err != nil {
		p.err = errors.Wrap(err, "write output")
	}
}

// Err returns the first write error.
func (p *Printer) Err() error {
	return p.err
}
