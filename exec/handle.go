package exec

import (
	"context"
	"errors"
	"io"
	"os"
	osexec "os/exec"
	"strings"
	"sync"

	"github.com/davenverse/shellfish/effect"
	"github.com/davenverse/shellfish/errs"
)

// Handle is a live reference to a spawned OS process.
//
// The three streams are independent: Stdin is a sink the caller (or a
// background feeder) writes to, Stdout and Stderr are single-pass sources
// that reach EOF when the process exits. Restarting a stream means
// respawning the process.
//
// Exactly one exit-code observation is meaningful; Wait after exit returns
// the cached code.
type Handle struct {
	cmd     *osexec.Cmd
	command []string

	stdin  *os.File // parent's write end
	stdout *os.File // parent's read end
	stderr *os.File // parent's read end

	done chan struct{}

	mu       sync.Mutex
	exitCode int
	waitErr  error // non-exit failures only (I/O, wait syscall)
}

// Spawn starts a process and binds its three streams.
// Construction is the spawn: a Handle never exists in a not-yet-running
// state. Spawn failure (executable not found or not executable) is reported
// immediately with errs.CodeSpawnFailed.
//
// The context only gates the spawn itself; the process's lifetime is owned
// by the handle (see Scoped for guaranteed termination).
func Spawn(ctx context.Context, program string, args []string, opts ...SpawnOption) (*Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if program == "" {
		return nil, errs.New(errs.CodeInvalidInput, "no program given")
	}

	cfg := newSpawnConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	cmd := osexec.Command(program, args...)
	if cfg.dir != "" {
		cmd.Dir = cfg.dir
	}
	if cfg.inheritEnv {
		cmd.Env = os.Environ()
	} else {
		cmd.Env = []string{}
	}
	for k, v := range cfg.env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	stdinR, stdinW, err := os.Pipe()
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeSpawnFailed, "failed to create stdin pipe")
	}
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		closeAll(stdinR, stdinW)
		return nil, errs.Wrap(err, errs.CodeSpawnFailed, "failed to create stdout pipe")
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		closeAll(stdinR, stdinW, stdoutR, stdoutW)
		return nil, errs.Wrap(err, errs.CodeSpawnFailed, "failed to create stderr pipe")
	}

	cmd.Stdin = stdinR
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	if err := cmd.Start(); err != nil {
		closeAll(stdinR, stdinW, stdoutR, stdoutW, stderrR, stderrW)
		return nil, errs.Wrapf(err, errs.CodeSpawnFailed, "failed to spawn %s", program)
	}

	// The child holds its own copies of these ends; closing the parent's
	// copies lets readers see EOF when the child exits.
	closeAll(stdinR, stdoutW, stderrW)

	h := &Handle{
		cmd:     cmd,
		command: append([]string{program}, args...),
		stdin:   stdinW,
		stdout:  stdoutR,
		stderr:  stderrR,
		done:    make(chan struct{}),
	}
	go h.reap()

	if cfg.stdin != nil {
		h.Feed(cfg.stdin)
	}

	return h, nil
}

// reap waits for the process on a dedicated goroutine so Wait can block
// cooperatively on a channel instead of occupying an OS thread.
func (h *Handle) reap() {
	err := h.cmd.Wait()

	h.mu.Lock()
	h.exitCode = h.cmd.ProcessState.ExitCode()
	var exitErr *osexec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// A non-zero exit is not an error for the raw handle; anything
		// else (wait syscall failure, copy failure) is.
		h.waitErr = err
	}
	h.mu.Unlock()

	close(h.done)
}

// Command returns the program and arguments the handle was spawned with.
func (h *Handle) Command() []string {
	return h.command
}

// Stdin returns the process's standard input sink.
// Close it to signal end of input.
func (h *Handle) Stdin() io.WriteCloser {
	return h.stdin
}

// Stdout returns the process's standard output source.
// It is single-pass and reaches EOF when the process exits.
func (h *Handle) Stdout() io.Reader {
	return h.stdout
}

// Stderr returns the process's standard error source.
// Drain it (or use Capture) to keep the child from blocking on a full
// buffer; it reaches EOF once the process exits.
func (h *Handle) Stderr() io.Reader {
	return h.stderr
}

// Feed copies r to the process's standard input from a background goroutine
// and closes the input when r is exhausted. Writing concurrently with
// output draining avoids deadlock on processes that interleave reading
// and writing.
func (h *Handle) Feed(r io.Reader) {
	go func() {
		// A copy error here means the child stopped reading (EPIPE on a
		// dead child); the exit code tells the real story.
		_, _ = io.Copy(h.stdin, r)
		_ = h.stdin.Close()
	}()
}

// FeedLines feeds the given lines to standard input, each terminated with
// the platform line separator, then closes the input.
func (h *Handle) FeedLines(lines ...string) {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(lineSeparator)
	}
	h.Feed(strings.NewReader(b.String()))
}

// Wait blocks until the process terminates and returns its exit status.
// The wait is cooperative: it suspends on a channel and honors context
// cancellation without reaping the process. Calling Wait again after exit
// returns the cached code.
func (h *Handle) Wait(ctx context.Context) (int, error) {
	select {
	case <-ctx.Done():
		return -1, ctx.Err()
	case <-h.done:
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.exitCode, h.waitErr
}

// ExitCode returns the deferred exit-code effect for the handle.
func (h *Handle) ExitCode() effect.Effect[int] {
	return func(ctx context.Context) (int, error) {
		return h.Wait(ctx)
	}
}

// Exited reports whether the process has terminated.
func (h *Handle) Exited() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Kill requests best-effort termination of the process.
// It is a no-op if the process has already exited; an already-finished
// process is not an error.
func (h *Handle) Kill() error {
	if h.Exited() {
		return nil
	}
	if err := h.cmd.Process.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			return nil
		}
		return errs.Wrap(err, errs.CodeInternal, "failed to kill process")
	}
	return nil
}

// Close releases the handle's ends of the three streams.
func (h *Handle) Close() error {
	closeAll(h.stdin, h.stdout, h.stderr)
	return nil
}

// Scoped returns a process resource: acquisition spawns the process and
// release terminates it if it has not already exited, then reaps it and
// closes the streams. Release runs on every scope exit path, including
// cancellation, so an abandoned handle never leaks a running process.
func Scoped(program string, args []string, opts ...SpawnOption) effect.Resource[*Handle] {
	acquire := effect.Suspend(func(ctx context.Context) (*Handle, error) {
		return Spawn(ctx, program, args, opts...)
	})
	release := func(ctx context.Context, h *Handle) error {
		if err := h.Kill(); err != nil {
			return err
		}
		// Kill guarantees the reaper finishes; wait for it so the child
		// is never left as a zombie.
		<-h.done
		return h.Close()
	}
	return effect.NewResource(acquire, release)
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
