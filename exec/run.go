package exec

import (
	"bufio"
	"context"
	"io"
	"sync"

	"github.com/davenverse/shellfish/effect"
	"github.com/davenverse/shellfish/errs"
)

// Result represents the collected output of a completed process.
type Result struct {
	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Combined is the combined stdout and stderr output
	Combined string

	// ExitCode is the exit code returned by the process
	ExitCode int
}

// Run describes a fire-and-forget execution: the process runs with its
// output discarded and the effect yields only the exit code. A non-zero
// exit is not an error.
func Run(program string, args []string, opts ...SpawnOption) effect.Effect[int] {
	return effect.Use(Scoped(program, args, opts...), func(h *Handle) effect.Effect[int] {
		return effect.Suspend(func(ctx context.Context) (int, error) {
			done := make(chan struct{})
			go func() {
				defer close(done)
				drainBoth(h, io.Discard, io.Discard)
			}()

			select {
			case <-done:
				return h.Wait(ctx)
			case <-ctx.Done():
				// The scope's release kills the process, which unblocks
				// the drain goroutines at EOF.
				return -1, ctx.Err()
			}
		})
	})
}

// Capture describes an execution that collects stdout, stderr, and their
// interleaved combination fully into memory alongside the exit code.
// Both streams are drained concurrently to avoid pipe deadlock. A non-zero
// exit is not an error.
func Capture(program string, args []string, opts ...SpawnOption) effect.Effect[*Result] {
	return effect.Use(Scoped(program, args, opts...), func(h *Handle) effect.Effect[*Result] {
		return effect.Suspend(func(ctx context.Context) (*Result, error) {
			var outCap, errCap, combined capture

			done := make(chan struct{})
			go func() {
				defer close(done)
				drainBoth(h, newTee(&outCap, &combined), newTee(&errCap, &combined))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				return nil, ctx.Err()
			}

			code, err := h.Wait(ctx)
			if err != nil {
				return nil, err
			}
			return &Result{
				Stdout:   outCap.String(),
				Stderr:   errCap.String(),
				Combined: combined.String(),
				ExitCode: code,
			}, nil
		})
	})
}

// RunStrict describes an execution that requires success: a non-zero exit
// fails the effect with an ExecError (tagged errs.CodeExecutionFailed)
// carrying the captured output.
func RunStrict(program string, args []string, opts ...SpawnOption) effect.Effect[*Result] {
	return effect.FlatMap(Capture(program, args, opts...), func(r *Result) effect.Effect[*Result] {
		if r.ExitCode != 0 {
			execErr := &ExecError{
				Command:  append([]string{program}, args...),
				ExitCode: r.ExitCode,
				Stdout:   r.Stdout,
				Stderr:   r.Stderr,
			}
			return effect.Fail[*Result](errs.Wrapf(execErr, errs.CodeExecutionFailed, "%s exited with code %d", program, r.ExitCode))
		}
		return effect.Pure(r)
	})
}

// Source identifies which stream a line came from.
type Source int

const (
	// SourceStdout marks lines read from standard output.
	SourceStdout Source = iota

	// SourceStderr marks lines read from standard error.
	SourceStderr
)

// String returns a string representation of the Source.
func (s Source) String() string {
	if s == SourceStderr {
		return "stderr"
	}
	return "stdout"
}

// Line is a single output line tagged with its originating stream.
type Line struct {
	Source Source
	Text   string
}

// ForEachLine describes a streaming execution: stdout and stderr are read
// concurrently, merged, and delivered line by line to fn as they arrive.
// No ordering is guaranteed between the two streams. If fn returns an
// error, delivery stops, the scope's release terminates the process, and
// the effect fails with fn's error. Otherwise the effect yields the exit
// code; a non-zero exit is not an error. Lines up to maxLineBytes are
// delivered intact; anything longer fails the effect.
func ForEachLine(program string, args []string, fn func(Line) error, opts ...SpawnOption) effect.Effect[int] {
	return effect.Use(Scoped(program, args, opts...), func(h *Handle) effect.Effect[int] {
		return effect.Suspend(func(ctx context.Context) (int, error) {
			lines := make(chan Line)
			scanErrs := make(chan error, 2)
			var wg sync.WaitGroup
			scan := func(r io.Reader, src Source) {
				defer wg.Done()
				sc := bufio.NewScanner(r)
				sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
				for sc.Scan() {
					lines <- Line{Source: src, Text: sc.Text()}
				}
				if err := sc.Err(); err != nil {
					scanErrs <- err
					// Keep the stream flowing so the process is not
					// blocked on a full pipe before release kills it.
					_, _ = io.Copy(io.Discard, r)
				}
			}
			wg.Add(2)
			go scan(h.Stdout(), SourceStdout)
			go scan(h.Stderr(), SourceStderr)
			go func() {
				wg.Wait()
				close(lines)
			}()

			// discard unblocks the producers when delivery stops early;
			// they terminate at EOF once release kills the process.
			discard := func() {
				go func() {
					for range lines {
					}
				}()
			}

			for {
				select {
				case <-ctx.Done():
					discard()
					return -1, ctx.Err()
				case line, ok := <-lines:
					if !ok {
						select {
						case err := <-scanErrs:
							return -1, errs.Wrapf(err, errs.CodeInternal, "reading %s output", program)
						default:
						}
						return h.Wait(ctx)
					}
					if err := fn(line); err != nil {
						discard()
						return -1, err
					}
				}
			}
		})
	})
}

// drainBoth copies stdout and stderr concurrently until both reach EOF.
func drainBoth(h *Handle, stdout, stderr io.Writer) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = io.Copy(stdout, h.Stdout())
	}()
	go func() {
		defer wg.Done()
		_, _ = io.Copy(stderr, h.Stderr())
	}()
	wg.Wait()
}
