package shellfish

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/davenverse/shellfish/effect"
	"github.com/davenverse/shellfish/errs"
	"github.com/davenverse/shellfish/fs/billy"
	"github.com/davenverse/shellfish/fs/core"
)

const (
	// DefaultFilePerm is the default mode for created files:
	// read/write for owner and group, no execute.
	DefaultFilePerm fs.FileMode = 0o660

	// DefaultDirPerm is the default mode for created directories.
	DefaultDirPerm fs.FileMode = 0o770
)

// Shell is the entry point for building filesystem effects. It holds the
// backend all operations run against and an explicit working directory
// cell used to resolve relative paths.
//
// A Shell is safe for concurrent use; operations on the same paths from
// independently-running effects are the caller's responsibility to
// serialize.
type Shell struct {
	backend core.FS

	mu      sync.Mutex
	workdir string
}

// Option configures a Shell.
type Option func(*Shell)

// WithBackend sets the filesystem backend. The default is the go-billy
// local filesystem.
func WithBackend(backend core.FS) Option {
	return func(s *Shell) {
		s.backend = backend
	}
}

// WithWorkdir sets the initial working directory. The default is the
// invoking process's working directory, falling back to "/".
func WithWorkdir(dir string) Option {
	return func(s *Shell) {
		s.workdir = dir
	}
}

// New creates a Shell with the given options.
func New(opts ...Option) *Shell {
	s := &Shell{}
	for _, opt := range opts {
		opt(s)
	}
	if s.backend == nil {
		s.backend = billy.NewLocal()
	}
	if s.workdir == "" {
		if wd, err := os.Getwd(); err == nil {
			s.workdir = wd
		} else {
			s.workdir = "/"
		}
	}
	return s
}

// Backend returns the filesystem backend the shell operates on.
func (s *Shell) Backend() core.FS {
	return s.backend
}

// resolve turns a possibly-relative path into an absolute one against the
// shell's current working directory.
func (s *Shell) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	s.mu.Lock()
	wd := s.workdir
	s.mu.Unlock()
	return filepath.Join(wd, path)
}

// Workdir describes reading the shell's current working directory.
func (s *Shell) Workdir() effect.Effect[string] {
	return effect.Suspend(func(context.Context) (string, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.workdir, nil
	})
}

// ChangeDirectory describes changing the shell's working directory.
// The target must exist and be a directory.
func (s *Shell) ChangeDirectory(dir string) effect.Effect[effect.Unit] {
	return effect.Do(func(context.Context) error {
		target := s.resolve(dir)
		info, err := s.backend.Stat(target)
		if err != nil {
			return translate("chdir", target, err)
		}
		if !info.IsDir() {
			return errs.Newf(errs.CodeInvalidInput, "chdir %s: not a directory", target)
		}
		s.mu.Lock()
		s.workdir = target
		s.mu.Unlock()
		return nil
	})
}

// translate maps backend errors onto the structured taxonomy, preserving
// the cause chain.
func translate(op, path string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return errs.Wrapf(err, errs.CodeNotFound, "%s %s", op, path)
	case errors.Is(err, fs.ErrExist):
		return errs.Wrapf(err, errs.CodeAlreadyExists, "%s %s", op, path)
	case errors.Is(err, core.ErrUnsupported):
		return errs.Wrapf(err, errs.CodeUnsupported, "%s %s", op, path)
	default:
		return errs.Wrapf(err, errs.CodeUnknown, "%s %s", op, path)
	}
}

// translateCreate is translate for creation operations, where a missing
// path means the parent directory is absent. That is a conflict with the
// requested creation rather than a lookup failure.
func translateCreate(op, path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return errs.Wrapf(err, errs.CodeConflict, "%s %s: parent directory does not exist", op, path)
	}
	return translate(op, path, err)
}
