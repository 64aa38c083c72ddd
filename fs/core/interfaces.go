package core

import (
	"io"
	"io/fs"
	"time"
)

// FS is the primary backend interface combining all required operations.
type FS interface {
	ReadFS
	WriteFS
	ManageFS
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Open opens the named file for reading.
	// Returns fs.File for compatibility with the io/fs package.
	Open(name string) (fs.File, error)

	// Stat returns file metadata for the named file.
	Stat(name string) (fs.FileInfo, error)

	// ReadFile reads the named file and returns its contents.
	// A successful call returns err == nil, not err == EOF.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined, not that the path is missing.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// Create creates or truncates the named file for writing.
	// The returned file must be closed when no longer needed.
	Create(name string) (File, error)

	// OpenFile opens a file with the specified flags and permissions.
	// The flags are a bitmask (os.O_RDONLY, os.O_WRONLY, os.O_CREATE,
	// os.O_APPEND, os.O_EXCL, ...). If the file is created, perm is used
	// (before umask).
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating it if necessary
	// and truncating it if it already exists.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a new directory. It fails with ErrExist if the path
	// already exists and with ErrNotExist if the parent is missing.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any necessary parents.
	// An existing directory at path is not an error.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines structural operations.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	// A missing path is an error (ErrNotExist).
	Remove(name string) error

	// RemoveAll removes path and any children it contains.
	// A missing path is not an error.
	RemoveAll(path string) error

	// Rename renames (moves) oldpath to newpath.
	// If newpath exists and is not a directory, Rename replaces it.
	Rename(oldpath, newpath string) error
}

// SymlinkFS defines symbolic link operations.
//
// Use type assertion to check whether a backend supports them:
//
//	if sfs, ok := backend.(core.SymlinkFS); ok {
//	    err := sfs.Symlink("target", "linkname")
//	}
type SymlinkFS interface {
	// Symlink creates a symbolic link named newname pointing to oldname.
	// The oldname path is stored as-is; broken links are valid.
	Symlink(oldname, newname string) error

	// Readlink returns the destination of the named symbolic link.
	Readlink(name string) (string, error)

	// Lstat returns file info without following symbolic links.
	Lstat(name string) (fs.FileInfo, error)
}

// MetadataFS defines metadata operations. In-memory backends typically do
// not support these; use type assertion.
type MetadataFS interface {
	// Chmod changes the mode of the named file.
	Chmod(name string, mode fs.FileMode) error

	// Chtimes changes the access and modification times of the named file.
	Chtimes(name string, atime, mtime time.Time) error
}

// File represents an open file handle supporting both reads and writes.
type File interface {
	fs.File
	io.Writer

	// Name returns the name provided to Open or Create.
	Name() string
}
