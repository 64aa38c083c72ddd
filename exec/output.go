package exec

import (
	"bytes"
	"io"
	"sync"
)

// lineSeparator terminates lines fed to a process's standard input.
const lineSeparator = "\n"

// maxLineBytes caps a single scanned output line, well past
// bufio.Scanner's 64 KiB default. Longer lines fail the streaming effect
// instead of ending it silently.
const maxLineBytes = 1024 * 1024

// capture is a concurrency-safe buffer for accumulating stream output.
type capture struct {
	mu     sync.Mutex
	buffer bytes.Buffer
}

// Write appends data to the buffer.
func (c *capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.Write(p)
}

// String returns the captured output.
func (c *capture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.String()
}

// tee writes to multiple writers, failing on the first error or short write.
// Similar to io.MultiWriter, kept local so captures can share a combined
// buffer without extra locking layers.
type tee struct {
	writers []io.Writer
}

func newTee(writers ...io.Writer) *tee {
	return &tee{writers: writers}
}

// Write writes data to all underlying writers.
func (t *tee) Write(p []byte) (n int, err error) {
	for _, w := range t.writers {
		n, err = w.Write(p)
		if err != nil {
			return
		}
		if n != len(p) {
			err = io.ErrShortWrite
			return
		}
	}
	return len(p), nil
}
