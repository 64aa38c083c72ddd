package shellfish

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/davenverse/shellfish/effect"
	"github.com/davenverse/shellfish/errs"
	"github.com/davenverse/shellfish/fs/core"
)

// Exists describes checking whether a path exists.
func (s *Shell) Exists(path string) effect.Effect[bool] {
	return effect.Suspend(func(context.Context) (bool, error) {
		p := s.resolve(path)
		ok, err := s.backend.Exists(p)
		if err != nil {
			return false, translate("stat", p, err)
		}
		return ok, nil
	})
}

// IsDirectory describes checking whether a path exists and is a directory.
// A missing path yields false rather than an error.
func (s *Shell) IsDirectory(path string) effect.Effect[bool] {
	return effect.Suspend(func(context.Context) (bool, error) {
		p := s.resolve(path)
		info, err := s.backend.Stat(p)
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		if err != nil {
			return false, translate("stat", p, err)
		}
		return info.IsDir(), nil
	})
}

// Size describes reading a file's size in bytes.
func (s *Shell) Size(path string) effect.Effect[int64] {
	return effect.Map(s.Stat(path), fs.FileInfo.Size)
}

// Stat describes reading a path's metadata.
func (s *Shell) Stat(path string) effect.Effect[fs.FileInfo] {
	return effect.Suspend(func(context.Context) (fs.FileInfo, error) {
		p := s.resolve(path)
		info, err := s.backend.Stat(p)
		if err != nil {
			return nil, translate("stat", p, err)
		}
		return info, nil
	})
}

// Delete describes removing a file or empty directory. A missing path
// fails with errs.CodeNotFound; use DeleteIfExists to absorb that case.
func (s *Shell) Delete(path string) effect.Effect[effect.Unit] {
	return effect.Do(func(context.Context) error {
		p := s.resolve(path)
		if err := s.backend.Remove(p); err != nil {
			return translate("delete", p, err)
		}
		return nil
	})
}

// DeleteIfExists describes removing a file or empty directory if present.
// It yields true when something was removed and false when the path was
// already absent, so running it twice yields true then false.
func (s *Shell) DeleteIfExists(path string) effect.Effect[bool] {
	return effect.Suspend(func(context.Context) (bool, error) {
		p := s.resolve(path)
		err := s.backend.Remove(p)
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		if err != nil {
			return false, translate("delete", p, err)
		}
		return true, nil
	})
}

// DeleteRecursively describes removing a path and everything beneath it.
// A missing path is not an error.
func (s *Shell) DeleteRecursively(path string) effect.Effect[effect.Unit] {
	return effect.Do(func(context.Context) error {
		p := s.resolve(path)
		if err := s.backend.RemoveAll(p); err != nil {
			return translate("delete", p, err)
		}
		return nil
	})
}

// CopyOption configures Copy.
type CopyOption func(*copyConfig)

type copyConfig struct {
	overwrite bool
}

// WithOverwrite allows Copy to replace an existing destination. Without
// it, copying onto an occupied path fails with errs.CodeAlreadyExists.
func WithOverwrite() CopyOption {
	return func(c *copyConfig) {
		c.overwrite = true
	}
}

// Copy describes copying a file's contents from src to dst, preserving
// the source's permission bits where the backend reports them.
func (s *Shell) Copy(src, dst string, opts ...CopyOption) effect.Effect[effect.Unit] {
	var cfg copyConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return effect.Do(func(context.Context) error {
		sp := s.resolve(src)
		dp := s.resolve(dst)

		if !cfg.overwrite {
			occupied, err := s.backend.Exists(dp)
			if err != nil {
				return translate("copy", dp, err)
			}
			if occupied {
				return errs.Newf(errs.CodeAlreadyExists, "copy %s: destination %s is occupied", sp, dp)
			}
		}

		perm := DefaultFilePerm
		info, err := s.backend.Stat(sp)
		if err != nil {
			return translate("copy", sp, err)
		}
		if m := info.Mode().Perm(); m != 0 {
			perm = m
		}

		in, err := s.backend.Open(sp)
		if err != nil {
			return translate("copy", sp, err)
		}
		defer func() { _ = in.Close() }()

		out, err := s.backend.OpenFile(dp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
		if err != nil {
			return translate("copy", dp, err)
		}
		if _, err := io.Copy(out, in); err != nil {
			_ = out.Close()
			return translate("copy", dp, err)
		}
		return out.Close()
	})
}

// Move describes renaming src to dst. After it runs, the content lives at
// dst and src no longer exists.
func (s *Shell) Move(src, dst string) effect.Effect[effect.Unit] {
	return effect.Do(func(context.Context) error {
		sp := s.resolve(src)
		dp := s.resolve(dst)
		if err := s.backend.Rename(sp, dp); err != nil {
			return translate("move", sp, err)
		}
		return nil
	})
}

// Symlink describes creating a symbolic link at link pointing to target.
// Backends without symlink support fail with errs.CodeUnsupported.
func (s *Shell) Symlink(target, link string) effect.Effect[effect.Unit] {
	return effect.Do(func(context.Context) error {
		lp := s.resolve(link)
		sl, ok := s.backend.(core.SymlinkFS)
		if !ok {
			return errs.Newf(errs.CodeUnsupported, "symlink %s: backend does not support symlinks", lp)
		}
		if err := sl.Symlink(target, lp); err != nil {
			return translate("symlink", lp, err)
		}
		return nil
	})
}

// Readlink describes reading the target of a symbolic link.
func (s *Shell) Readlink(link string) effect.Effect[string] {
	return effect.Suspend(func(context.Context) (string, error) {
		lp := s.resolve(link)
		sl, ok := s.backend.(core.SymlinkFS)
		if !ok {
			return "", errs.Newf(errs.CodeUnsupported, "readlink %s: backend does not support symlinks", lp)
		}
		target, err := sl.Readlink(lp)
		if err != nil {
			return "", translate("readlink", lp, err)
		}
		return target, nil
	})
}

// SetPermissions describes changing a path's permission bits. Backends
// without metadata support fail with errs.CodeUnsupported.
func (s *Shell) SetPermissions(path string, mode fs.FileMode) effect.Effect[effect.Unit] {
	return effect.Do(func(context.Context) error {
		p := s.resolve(path)
		md, ok := s.backend.(core.MetadataFS)
		if !ok {
			return errs.Newf(errs.CodeUnsupported, "chmod %s: backend does not support metadata changes", p)
		}
		if err := md.Chmod(p, mode); err != nil {
			return translate("chmod", p, err)
		}
		return nil
	})
}

// SetTimes describes changing a path's access and modification times.
func (s *Shell) SetTimes(path string, atime, mtime time.Time) effect.Effect[effect.Unit] {
	return effect.Do(func(context.Context) error {
		p := s.resolve(path)
		md, ok := s.backend.(core.MetadataFS)
		if !ok {
			return errs.Newf(errs.CodeUnsupported, "chtimes %s: backend does not support metadata changes", p)
		}
		if err := md.Chtimes(p, atime, mtime); err != nil {
			return translate("chtimes", p, err)
		}
		return nil
	})
}
