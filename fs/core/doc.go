// Package core provides the backend contracts the shellfish facade sequences
// its filesystem effects against.
//
// The main FS interface is composed of three sub-interfaces:
//
//   - ReadFS: read-only operations (Open, Stat, ReadFile, Exists)
//   - WriteFS: write operations (Create, OpenFile, WriteFile, Mkdir, MkdirAll)
//   - ManageFS: structural operations (Remove, RemoveAll, Rename)
//
// Optional capabilities are separate interfaces checked via type assertion,
// since not every backend supports them:
//
//   - SymlinkFS: symbolic link operations (Symlink, Readlink, Lstat)
//   - MetadataFS: metadata operations (Chmod, Chtimes)
//
// Backends are plain syscall-level wrappers; sequencing, scoping, and error
// taxonomy live in the packages built on top of them.
package core
