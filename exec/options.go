package exec

import "io"

// spawnConfig holds per-spawn settings.
type spawnConfig struct {
	dir        string
	env        map[string]string
	inheritEnv bool
	stdin      io.Reader
}

func newSpawnConfig() *spawnConfig {
	return &spawnConfig{
		env: make(map[string]string),
	}
}

// SpawnOption configures a spawn.
type SpawnOption func(*spawnConfig)

// WithDir sets the working directory for the process.
func WithDir(dir string) SpawnOption {
	return func(c *spawnConfig) {
		c.dir = dir
	}
}

// WithEnv sets environment variables for the process.
// These override inherited variables of the same name.
func WithEnv(env map[string]string) SpawnOption {
	return func(c *spawnConfig) {
		for k, v := range env {
			c.env[k] = v
		}
	}
}

// WithInheritEnv inherits environment variables from the parent process.
// Without this option the child sees only variables set via WithEnv.
func WithInheritEnv() SpawnOption {
	return func(c *spawnConfig) {
		c.inheritEnv = true
	}
}

// WithStdin feeds the reader to the process's standard input from a
// background goroutine, closing the input when the reader is exhausted.
// Feeding concurrently with output draining avoids pipe deadlock.
func WithStdin(r io.Reader) SpawnOption {
	return func(c *spawnConfig) {
		c.stdin = r
	}
}
