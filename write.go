package shellfish

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/davenverse/shellfish/effect"
)

// WriteBytes describes writing data to a file, creating it if needed and
// truncating any previous contents. Created files get DefaultFilePerm.
func (s *Shell) WriteBytes(path string, data []byte) effect.Effect[effect.Unit] {
	return effect.Do(func(context.Context) error {
		p := s.resolve(path)
		if err := s.backend.WriteFile(p, data, DefaultFilePerm); err != nil {
			return translate("write", p, err)
		}
		return nil
	})
}

// Write describes writing a string to a file, creating it if needed and
// truncating any previous contents.
func (s *Shell) Write(path, content string) effect.Effect[effect.Unit] {
	return s.WriteBytes(path, []byte(content))
}

// WriteLines describes writing lines joined with "\n". No trailing
// newline is written; see the package documentation for the line
// conventions.
func (s *Shell) WriteLines(path string, lines []string) effect.Effect[effect.Unit] {
	return s.Write(path, joinLines(lines))
}

// AppendBytes describes appending raw data to the end of a file, creating
// it if it does not exist.
func (s *Shell) AppendBytes(path string, data []byte) effect.Effect[effect.Unit] {
	return effect.Do(func(context.Context) error {
		return s.appendRaw(s.resolve(path), data)
	})
}

// Append describes appending a string to the end of a file.
func (s *Shell) Append(path, content string) effect.Effect[effect.Unit] {
	return s.AppendBytes(path, []byte(content))
}

// AppendLine describes appending a line to a file: the content is preceded
// by a newline unless the file is empty or absent. The file always gains
// exactly one line, and a non-empty file of length M grows to exactly
// M+len(line)+1 bytes.
func (s *Shell) AppendLine(path, line string) effect.Effect[effect.Unit] {
	return s.appendSeparated(path, line)
}

// AppendLines describes appending lines to a file, so a file with n lines
// gains exactly len(lines) lines.
func (s *Shell) AppendLines(path string, lines []string) effect.Effect[effect.Unit] {
	if len(lines) == 0 {
		return effect.Pure(effect.Unit{})
	}
	return s.appendSeparated(path, joinLines(lines))
}

// appendSeparated appends content preceded by a newline separator. The
// separator is omitted for an empty or absent file, which keeps line
// counts exact at the empty boundary.
func (s *Shell) appendSeparated(path, content string) effect.Effect[effect.Unit] {
	return effect.Do(func(context.Context) error {
		p := s.resolve(path)
		sep := "\n"
		info, err := s.backend.Stat(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			sep = ""
		case err != nil:
			return translate("append", p, err)
		case info.Size() == 0:
			sep = ""
		}
		return s.appendRaw(p, []byte(sep+content))
	})
}

func (s *Shell) appendRaw(p string, data []byte) error {
	f, err := s.backend.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_APPEND, DefaultFilePerm)
	if err != nil {
		return translate("append", p, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return translate("append", p, err)
	}
	if err := f.Close(); err != nil {
		return translate("append", p, err)
	}
	return nil
}

// CreateFile describes creating an empty file with the given permissions.
// It fails with errs.CodeAlreadyExists if the path is occupied and with
// errs.CodeConflict if the parent directory does not exist.
func (s *Shell) CreateFile(path string, perm fs.FileMode) effect.Effect[effect.Unit] {
	return effect.Do(func(context.Context) error {
		p := s.resolve(path)
		f, err := s.backend.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
		if err != nil {
			return translateCreate("create", p, err)
		}
		return f.Close()
	})
}

// CreateDirectory describes creating a single directory with the given
// permissions. The parent must already exist; a missing parent fails with
// errs.CodeConflict.
func (s *Shell) CreateDirectory(path string, perm fs.FileMode) effect.Effect[effect.Unit] {
	return effect.Do(func(context.Context) error {
		p := s.resolve(path)
		if err := s.backend.Mkdir(p, perm); err != nil {
			return translateCreate("mkdir", p, err)
		}
		return nil
	})
}

// CreateDirectories describes creating a directory along with any missing
// parents. Existing directories are left untouched.
func (s *Shell) CreateDirectories(path string, perm fs.FileMode) effect.Effect[effect.Unit] {
	return effect.Do(func(context.Context) error {
		p := s.resolve(path)
		if err := s.backend.MkdirAll(p, perm); err != nil {
			return translate("mkdir", p, err)
		}
		return nil
	})
}
