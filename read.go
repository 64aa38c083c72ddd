package shellfish

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/davenverse/shellfish/effect"
	"github.com/davenverse/shellfish/errs"
)

// ReadBytes describes reading the full contents of a file.
func (s *Shell) ReadBytes(path string) effect.Effect[[]byte] {
	return effect.Suspend(func(context.Context) ([]byte, error) {
		p := s.resolve(path)
		data, err := s.backend.ReadFile(p)
		if err != nil {
			return nil, translate("read", p, err)
		}
		return data, nil
	})
}

// Read describes reading the full contents of a file as a UTF-8 string.
// Contents that are not valid UTF-8 fail with errs.CodeDecodeFailed.
func (s *Shell) Read(path string) effect.Effect[string] {
	return effect.FlatMap(s.ReadBytes(path), func(data []byte) effect.Effect[string] {
		if !utf8.Valid(data) {
			return effect.Fail[string](errs.Newf(errs.CodeDecodeFailed, "read %s: contents are not valid utf-8", s.resolve(path)))
		}
		return effect.Pure(string(data))
	})
}

// ReadLines describes reading a file and splitting it into lines on "\n".
// An empty file yields no lines. A trailing newline does not produce a
// final empty line.
func (s *Shell) ReadLines(path string) effect.Effect[[]string] {
	return effect.Map(s.Read(path), splitLines)
}

// splitLines is the inverse of joinLines for content produced by
// WriteLines, and tolerates a trailing newline from other writers.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// joinLines renders lines for WriteLines and the append helpers. No
// trailing newline is written so that appends stay line-accurate.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
