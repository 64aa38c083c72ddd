// Package billy adapts go-billy filesystems to the core backend contracts.
//
// Two constructors are provided: NewLocal wraps billy's osfs for real disk
// access, and NewMemory wraps billy's memfs so scripts can run entirely
// in memory. Both return the same adapter type implementing core.FS and
// core.SymlinkFS; metadata operations are available where the underlying
// billy filesystem supports billy.Change.
package billy

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/davenverse/shellfish/fs/core"
)

// FS adapts a billy.Filesystem to the core backend interfaces.
type FS struct {
	bfs billy.Filesystem
}

// NewLocal creates a billy-backed local filesystem rooted at "/".
// Paths passed to the adapter are interpreted as absolute OS paths.
func NewLocal() *FS {
	return &FS{bfs: osfs.New("/")}
}

// NewMemory creates a billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory() *FS {
	return &FS{bfs: memfs.New()}
}

// Unwrap returns the underlying billy.Filesystem.
func (a *FS) Unwrap() billy.Filesystem {
	return a.bfs
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// Open opens the named file for reading.
func (a *FS) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := a.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: a.bfs, name: name}, nil
}

// Stat returns file metadata for the named file.
func (a *FS) Stat(name string) (fs.FileInfo, error) {
	return a.bfs.Stat(normalize(name))
}

// ReadFile reads the named file and returns its contents.
func (a *FS) ReadFile(name string) ([]byte, error) {
	f, err := a.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (a *FS) Exists(name string) (bool, error) {
	_, err := a.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file for writing.
func (a *FS) Create(name string) (core.File, error) {
	name = normalize(name)
	f, err := a.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: a.bfs, name: name}, nil
}

// OpenFile opens a file with the specified flags and permissions.
func (a *FS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	f, err := a.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: a.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (a *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := a.bfs.OpenFile(normalize(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = f.Write(data)
	return err
}

// Mkdir creates a new directory. Billy only exposes MkdirAll, so the
// single-level contract (fail on existing path or missing parent) is
// enforced with explicit checks first.
func (a *FS) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := a.bfs.Stat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := filepath.Dir(name)
	if parent != "." && parent != "/" {
		if _, err := a.bfs.Stat(parent); err != nil {
			return &fs.PathError{Op: "mkdir", Path: name, Err: err}
		}
	}
	return a.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (a *FS) MkdirAll(path string, perm fs.FileMode) error {
	return a.bfs.MkdirAll(normalize(path), perm)
}

// Remove removes the named file or empty directory.
func (a *FS) Remove(name string) error {
	return a.bfs.Remove(normalize(name))
}

// RemoveAll removes path and any children it contains.
// Billy has no RemoveAll, so directories are walked bottom-up. The walk
// uses Lstat so symbolic links are removed as links, never followed into
// their targets.
func (a *FS) RemoveAll(path string) error {
	path = normalize(path)
	info, err := a.bfs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if !info.IsDir() {
		return a.bfs.Remove(path)
	}

	entries, err := a.bfs.ReadDir(path)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := a.RemoveAll(normalize(filepath.Join(path, entry.Name()))); err != nil {
			return err
		}
	}
	return a.bfs.Remove(path)
}

// Rename renames (moves) oldpath to newpath.
func (a *FS) Rename(oldpath, newpath string) error {
	return a.bfs.Rename(normalize(oldpath), normalize(newpath))
}

// Symlink creates a symbolic link named newname pointing to oldname.
func (a *FS) Symlink(oldname, newname string) error {
	return a.bfs.Symlink(oldname, normalize(newname))
}

// Readlink returns the destination of the named symbolic link.
func (a *FS) Readlink(name string) (string, error) {
	return a.bfs.Readlink(normalize(name))
}

// Lstat returns file info without following symbolic links.
func (a *FS) Lstat(name string) (fs.FileInfo, error) {
	return a.bfs.Lstat(normalize(name))
}

// Chmod changes the mode of the named file.
// Returns core.ErrUnsupported when the billy backend does not implement
// billy.Change (e.g., memfs).
func (a *FS) Chmod(name string, mode fs.FileMode) error {
	ch, ok := a.bfs.(billy.Change)
	if !ok {
		return &fs.PathError{Op: "chmod", Path: name, Err: core.ErrUnsupported}
	}
	return ch.Chmod(normalize(name), mode)
}

// Chtimes changes the access and modification times of the named file.
// Returns core.ErrUnsupported when the billy backend does not implement
// billy.Change.
func (a *FS) Chtimes(name string, atime, mtime time.Time) error {
	ch, ok := a.bfs.(billy.Change)
	if !ok {
		return &fs.PathError{Op: "chtimes", Path: name, Err: core.ErrUnsupported}
	}
	return ch.Chtimes(normalize(name), atime, mtime)
}

// SupportsMetadata reports whether metadata operations are available on the
// underlying billy backend.
func (a *FS) SupportsMetadata() bool {
	_, ok := a.bfs.(billy.Change)
	return ok
}

// Compile-time interface checks.
var (
	_ core.FS         = (*FS)(nil)
	_ core.SymlinkFS  = (*FS)(nil)
	_ core.MetadataFS = (*FS)(nil)
)
