package shellfish

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/davenverse/shellfish/effect"
	"github.com/davenverse/shellfish/errs"
)

// tempNameAttempts bounds the retries on a name collision. With UUID
// names a single collision is already vanishingly unlikely.
const tempNameAttempts = 3

// TempOption configures temporary file and directory creation.
type TempOption func(*tempConfig)

type tempConfig struct {
	dir    string
	prefix string
	suffix string
	mode   fs.FileMode
}

// WithTempDir sets the directory the temporary entry is created in. The
// default is the platform temp directory.
func WithTempDir(dir string) TempOption {
	return func(c *tempConfig) {
		c.dir = dir
	}
}

// WithPrefix sets the name prefix of the temporary entry.
func WithPrefix(prefix string) TempOption {
	return func(c *tempConfig) {
		c.prefix = prefix
	}
}

// WithSuffix sets the name suffix of the temporary entry, for tools that
// care about extensions.
func WithSuffix(suffix string) TempOption {
	return func(c *tempConfig) {
		c.suffix = suffix
	}
}

// WithMode sets the permission bits of the temporary entry. The defaults
// are DefaultFilePerm for files and DefaultDirPerm for directories.
func WithMode(mode fs.FileMode) TempOption {
	return func(c *tempConfig) {
		c.mode = mode
	}
}

func (s *Shell) tempConfig(defaultMode fs.FileMode, opts []TempOption) tempConfig {
	cfg := tempConfig{
		dir:    os.TempDir(),
		prefix: "shellfish-",
		mode:   defaultMode,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// tempName generates a fresh candidate path. Collisions are detected by
// the exclusive-create at the call site, not here.
func (c tempConfig) tempName() string {
	return filepath.Join(c.dir, c.prefix+uuid.NewString()+c.suffix)
}

// CreateTempFile describes creating a temporary file with a unique name
// and yields its path. The file is NOT deleted automatically; use
// WithTempFile or TempFile for scoped cleanup.
func (s *Shell) CreateTempFile(opts ...TempOption) effect.Effect[string] {
	return effect.Suspend(func(context.Context) (string, error) {
		cfg := s.tempConfig(DefaultFilePerm, opts)
		for i := 0; i < tempNameAttempts; i++ {
			p := s.resolve(cfg.tempName())
			f, err := s.backend.OpenFile(p, os.O_RDWR|os.O_CREATE|os.O_EXCL, cfg.mode)
			if errors.Is(err, fs.ErrExist) {
				continue
			}
			if err != nil {
				return "", translateCreate("mktemp", p, err)
			}
			if err := f.Close(); err != nil {
				return "", translate("mktemp", p, err)
			}
			return p, nil
		}
		return "", errs.Newf(errs.CodeConflict, "mktemp: could not find a free name in %s", cfg.dir)
	})
}

// CreateTempDir describes creating a temporary directory with a unique
// name and yields its path. The directory is NOT deleted automatically;
// use WithTempDir or TempDir for scoped cleanup.
func (s *Shell) CreateTempDir(opts ...TempOption) effect.Effect[string] {
	return effect.Suspend(func(context.Context) (string, error) {
		cfg := s.tempConfig(DefaultDirPerm, opts)
		for i := 0; i < tempNameAttempts; i++ {
			p := s.resolve(cfg.tempName())
			if ok, err := s.backend.Exists(p); err != nil {
				return "", translate("mktemp", p, err)
			} else if ok {
				continue
			}
			if err := s.backend.MkdirAll(p, cfg.mode); err != nil {
				return "", translateCreate("mktemp", p, err)
			}
			return p, nil
		}
		return "", errs.Newf(errs.CodeConflict, "mktemp: could not find a free name in %s", cfg.dir)
	})
}

// TempFile returns a scoped temporary file: acquisition creates it and
// release deletes it. A file already removed inside the scope does not
// fail the release.
func (s *Shell) TempFile(opts ...TempOption) effect.Resource[string] {
	return effect.NewResource(s.CreateTempFile(opts...), func(_ context.Context, path string) error {
		err := s.backend.Remove(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	})
}

// TempDir returns a scoped temporary directory: acquisition creates it
// and release deletes it with everything inside.
func (s *Shell) TempDir(opts ...TempOption) effect.Resource[string] {
	return effect.NewResource(s.CreateTempDir(opts...), func(_ context.Context, path string) error {
		return s.backend.RemoveAll(path)
	})
}

// WithTempFile brackets use with a temporary file that is deleted on
// every exit path, including failures and panics in use.
func WithTempFile[A any](s *Shell, use func(path string) effect.Effect[A], opts ...TempOption) effect.Effect[A] {
	return effect.Use(s.TempFile(opts...), use)
}

// WithTempDirectory brackets use with a temporary directory that is
// removed recursively on every exit path.
func WithTempDirectory[A any](s *Shell, use func(path string) effect.Effect[A], opts ...TempOption) effect.Effect[A] {
	return effect.Use(s.TempDir(opts...), use)
}
