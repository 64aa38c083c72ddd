// Package shellfish is a referentially-transparent scripting facade over
// filesystem and process operations.
//
// Instead of executing side effects eagerly, every operation returns an
// effect.Effect describing the work; nothing touches the OS until the caller
// runs the effect. Operations sequence with deterministic left-to-right
// ordering, failures short-circuit unless explicitly recovered, and
// scoped resources (temporary files and directories, process handles)
// release exactly once on every exit path.
//
// # Basic Usage
//
// Build a script and run it:
//
//	sh := shellfish.New()
//	script := effect.FlatMap(sh.Read("in.txt"), func(content string) effect.Effect[effect.Unit] {
//	    return sh.Write("out.txt", strings.ToUpper(content))
//	})
//	_, err := script.Run(ctx)
//
// # Backends
//
// File operations run against a fs/core backend. The default is the
// go-billy local filesystem; pass WithBackend(billy.NewMemory()) to run a
// script entirely in memory.
//
// # Line Conventions
//
// WriteLines joins lines with "\n" and writes no trailing newline.
// AppendLine and AppendLines write a leading newline before the appended
// content unless the file is empty or absent, so appending k lines to an
// n-line file always yields an (n+k)-line file, and appending a line of
// length L to a non-empty file of length M yields length M+L+1.
//
// # Working Directory
//
// A Shell carries its own working directory as an explicit, mutex-guarded
// piece of state; relative paths resolve against it. There is no hidden
// process-global directory, so concurrent shells cannot corrupt each other.
package shellfish
