package exec_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/davenverse/shellfish/effect"
	"github.com/davenverse/shellfish/errs"
	"github.com/davenverse/shellfish/exec"
)

func TestCaptureEcho(t *testing.T) {
	result, err := exec.Capture("echo", []string{"hello"}).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Stdout != "hello\n" {
		t.Errorf("expected stdout %q, got: %q", "hello\n", result.Stdout)
	}
	if result.ExitCode != 0 {
		t.Errorf("expected exit code 0, got: %d", result.ExitCode)
	}
}

func TestRunNonZeroExitIsNotAnError(t *testing.T) {
	code, err := exec.Run("false", nil).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code == 0 {
		t.Error("expected non-zero exit code")
	}
}

func TestRunStrictFailsOnNonZeroExit(t *testing.T) {
	_, err := exec.RunStrict("false", nil).Run(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var execErr *exec.ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecError, got: %T", err)
	}
	if execErr.ExitCode == 0 {
		t.Error("expected non-zero exit code")
	}
	if errs.GetCode(err) != errs.CodeExecutionFailed {
		t.Errorf("expected EXECUTION_FAILED, got: %s", errs.GetCode(err))
	}
}

func TestRunStrictPassesOnSuccess(t *testing.T) {
	result, err := exec.RunStrict("true", nil).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ExitCode != 0 {
		t.Errorf("expected exit code 0, got: %d", result.ExitCode)
	}
}

func TestSpawnFailure(t *testing.T) {
	_, err := exec.Capture("definitely-not-a-real-binary-3f9c", nil).Run(context.Background())
	if err == nil {
		t.Fatal("expected spawn error, got nil")
	}
	if errs.GetCode(err) != errs.CodeSpawnFailed {
		t.Errorf("expected SPAWN_FAILED, got: %s", errs.GetCode(err))
	}
}

func TestWithStdin(t *testing.T) {
	result, err := exec.Capture("cat", nil, exec.WithStdin(strings.NewReader("piped input"))).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Stdout != "piped input" {
		t.Errorf("expected stdout %q, got: %q", "piped input", result.Stdout)
	}
}

func TestWithEnv(t *testing.T) {
	result, err := exec.Capture("sh", []string{"-c", "echo $TEST_VAR"}, exec.WithEnv(map[string]string{
		"TEST_VAR": "test_value",
	})).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Stdout, "test_value") {
		t.Errorf("expected stdout to contain 'test_value', got: %q", result.Stdout)
	}
}

func TestWithDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0o660); err != nil {
		t.Fatal(err)
	}

	result, err := exec.Capture("ls", nil, exec.WithDir(dir)).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Stdout, "marker.txt") {
		t.Errorf("expected stdout to contain 'marker.txt', got: %q", result.Stdout)
	}
}

func TestCaptureSeparatesStreams(t *testing.T) {
	result, err := exec.Capture("sh", []string{"-c", "echo out; echo err 1>&2"}).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Stdout != "out\n" {
		t.Errorf("expected stdout %q, got: %q", "out\n", result.Stdout)
	}
	if result.Stderr != "err\n" {
		t.Errorf("expected stderr %q, got: %q", "err\n", result.Stderr)
	}
	if !strings.Contains(result.Combined, "out") || !strings.Contains(result.Combined, "err") {
		t.Errorf("expected combined output to contain both streams, got: %q", result.Combined)
	}
}

func TestForEachLineTagsSources(t *testing.T) {
	var stdout, stderr []string
	code, err := exec.ForEachLine("sh", []string{"-c", "echo one; echo two 1>&2; echo three"}, func(line exec.Line) error {
		switch line.Source {
		case exec.SourceStdout:
			stdout = append(stdout, line.Text)
		case exec.SourceStderr:
			stderr = append(stderr, line.Text)
		}
		return nil
	}).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if code != 0 {
		t.Errorf("expected exit code 0, got: %d", code)
	}
	if len(stdout) != 2 || stdout[0] != "one" || stdout[1] != "three" {
		t.Errorf("unexpected stdout lines: %v", stdout)
	}
	if len(stderr) != 1 || stderr[0] != "two" {
		t.Errorf("unexpected stderr lines: %v", stderr)
	}
}

func TestForEachLineCallbackErrorStopsProcess(t *testing.T) {
	boom := errors.New("stop")
	start := time.Now()

	_, err := exec.ForEachLine("sh", []string{"-c", "echo first; sleep 30"}, func(exec.Line) error {
		return boom
	}).Run(context.Background())

	if !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("expected early termination, took %v", elapsed)
	}
}

func TestForEachLineDeliversLongLines(t *testing.T) {
	// 100000 bytes is past bufio.Scanner's default 64 KiB token size.
	var got []string
	code, err := exec.ForEachLine("sh", []string{"-c", "head -c 100000 /dev/zero | tr '\\0' x"}, func(line exec.Line) error {
		got = append(got, line.Text)
		return nil
	}).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if code != 0 {
		t.Errorf("expected exit code 0, got: %d", code)
	}
	if len(got) != 1 {
		t.Fatalf("expected one line, got: %d", len(got))
	}
	if len(got[0]) != 100000 {
		t.Errorf("expected line length 100000, got: %d", len(got[0]))
	}
}

func TestForEachLineOverlongLineFails(t *testing.T) {
	_, err := exec.ForEachLine("sh", []string{"-c", "head -c 2000000 /dev/zero | tr '\\0' x"}, func(exec.Line) error {
		return nil
	}).Run(context.Background())
	if err == nil {
		t.Fatal("expected an error for a line past the scan limit, got nil")
	}
	if errs.GetCode(err) != errs.CodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got: %s", errs.GetCode(err))
	}
}

func TestHandleWaitCachesExitCode(t *testing.T) {
	h, err := exec.Spawn(context.Background(), "sh", []string{"-c", "exit 3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = h.Close() }()

	first, err := h.Wait(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := h.Wait(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != 3 || second != 3 {
		t.Errorf("expected cached exit code 3, got: %d then %d", first, second)
	}
}

func TestHandleFeedLines(t *testing.T) {
	h, err := exec.Spawn(context.Background(), "cat", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = h.Close() }()

	h.FeedLines("alpha", "beta")

	out, err := io.ReadAll(h.Stdout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	code, err := h.Wait(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 0 {
		t.Errorf("expected exit code 0, got: %d", code)
	}
	if got := string(out); got != "alpha\nbeta\n" {
		t.Errorf("expected %q, got: %q", "alpha\nbeta\n", got)
	}
}

func TestScopedKillsAbandonedProcess(t *testing.T) {
	start := time.Now()

	// The use body abandons the handle without waiting; release must kill
	// the sleeping process rather than letting the scope hang.
	var handle *exec.Handle
	_, err := effect.Use(exec.Scoped("sleep", []string{"60"}), func(h *exec.Handle) effect.Effect[string] {
		handle = h
		return effect.Pure("abandoned")
	}).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Fatalf("expected scope to terminate the process quickly, took %v", elapsed)
	}
	if !handle.Exited() {
		t.Error("expected process to have exited after scope release")
	}
}

func TestKillIdempotentAfterExit(t *testing.T) {
	h, err := exec.Spawn(context.Background(), "true", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = h.Close() }()

	if _, err := h.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := h.Kill(); err != nil {
		t.Errorf("kill after exit must succeed, got: %v", err)
	}
}

func TestRunCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := exec.Run("sleep", []string{"30"}).Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("expected prompt cancellation, took %v", elapsed)
	}
}
