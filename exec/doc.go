// Package exec provides process spawning as scoped, lazily-evaluated effects.
//
// This package wraps the standard library's os/exec. The central type is
// Handle, a live reference to a spawned OS process: construction is the
// spawn (there is no not-yet-running state), and the handle exposes three
// independent byte streams plus a cooperative, cached exit-code wait.
// A handle obtained through Scoped is guaranteed to be terminated when its
// resource scope exits, even if the caller abandons it before observing the
// exit code.
//
// # Basic Usage
//
// Capture the output of a command:
//
//	result, err := exec.Capture("echo", []string{"hello"}).Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Stdout) // "hello\n"
//
// # Failure Semantics
//
// A non-zero exit code is not an error for Run, Capture, or the raw handle;
// only RunStrict raises on it. A process that cannot be spawned (executable
// missing or not executable) fails the acquiring effect immediately with
// errs.CodeSpawnFailed.
//
// # Deadlock Avoidance
//
// Stdin feeding runs as a background activity relative to output draining,
// and Capture drains stdout and stderr concurrently, so processes that
// interleave reading and writing cannot deadlock on a full pipe. Output
// streams reach EOF once the process exits, so a consumer blocked on stderr
// never hangs after exit.
package exec
