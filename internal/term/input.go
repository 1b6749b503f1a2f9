package term

import (
	"bufio"
	"context"
	"io"

	"spelltrainer/internal/models"
)

// Input reads lines on a background goroutine so a read in progress can
// be abandoned when the context is cancelled. End of input is reported as
// models.ErrInterrupted, same as Ctrl+C, so the caller treats a closed
// stdin like a cancelled session.
type Input struct {
	lines chan string
	errs  chan error
}

// NewInput starts reading lines from r
func NewInput(r io.Reader) *Input {
	in := &Input{
		lines: make(chan string),
		errs:  make(chan error, 1),
	}
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			in.lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			in.errs <- err
			return
		}
		in.errs <- io.EOF
	}()
	return in
}

// ReadLine returns the next line of input. It returns models.ErrInterrupted
// when the context is cancelled or the input stream ends.
func (in *Input) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", models.ErrInterrupted
	case line := <-in.lines:
		return line, nil
	case err := <-in.errs:
		// Put the error back so later reads fail the same way
		in.errs <- err
		if err == io.EOF {
			return "", models.ErrInterrupted
		}
		return "", err
	}
}
