// Package source owns the Read phase: loading a source file from disk into
// a byte buffer that the lexer can scan, addressed by a small File handle.
package source

import (
	"os"

	"github.com/pkg/errors"

	"sourcecc/internal/arena"
	"sourcecc/internal/intern"
)

// File is a handle into the file arena. The zero value never refers to a
// loaded file.
type File int32

type fileInfo struct {
	Path  intern.String
	Size  int
	Bytes []byte
}

// Files owns every file loaded during a compilation.
type Files struct {
	strs  *intern.Table
	infos *arena.Arena[File, fileInfo]
}

// NewFiles creates an empty file arena backed by strs for path interning.
func NewFiles(strs *intern.Table) *Files {
	return &Files{strs: strs, infos: arena.New[File, fileInfo](8)}
}

// Read loads path from disk and returns its File handle. I/O failures are
// wrapped with github.com/pkg/errors so the originating syscall error and a
// stack trace survive up to the diagnostic sink.
func (f *Files) Read(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, "read source file %q", path)
	}
	h := f.infos.Alloc(fileInfo{
		Path:  f.strs.InternString(path),
		Size:  len(data),
		Bytes: data,
	})
	return h, nil
}

// Path returns the interned path string handle for a file.
func (f *Files) Path(h File) intern.String { return f.infos.Get(h).Path }

// PathString returns the file's path as a plain string, for diagnostics.
func (f *Files) PathString(h File) string { return f.strs.String(f.Path(h)) }

// Bytes returns the file's raw content.
func (f *Files) Bytes(h File) []byte { return f.infos.Get(h).Bytes }

// Size returns the file's byte length.
func (f *Files) Size(h File) int { return f.infos.Get(h).Size }

// Len reports how many files have been loaded.
func (f *Files) Len() int { return f.infos.Len() }

// LineCol converts a byte offset into a 1-based (line, column) pair, for
// caret-style diagnostic rendering.
func (f *Files) LineCol(h File, offset int) (line, col int) {
	data := f.Bytes(h)
	if offset > len(data) {
		offset = len(data)
	}
	line, col = 1, 1
	for i := 0; i < offset; i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// LineText returns the full text of the line containing offset, for caret
// rendering in diagnostics.
func (f *Files) LineText(h File, offset int) string {
	data := f.Bytes(h)
	if offset > len(data) {
		offset = len(data)
	}
	start := offset
	for start > 0 && data[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(data) && data[end] != '\n' {
		end++
	}
	return string(data[start:end])
}
