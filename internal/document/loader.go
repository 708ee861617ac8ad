// Package document loads search targets into memory.
package document

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// ErrInvalidUTF8 indicates the file content is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// FileReadError reports a failure to read a document.
// Err is the underlying cause exactly as the filesystem returned it.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// Document owns the full text of a loaded file.
//
// Search results taken from Text are substrings of it; they stay valid for as
// long as they are referenced, but they should be reported and dropped
// together with the document rather than cached on their own.
type Document struct {
	path string
	text string
}

// Path returns the path the document was loaded from.
func (d *Document) Path() string { return d.path }

// Text returns the decoded contents.
func (d *Document) Text() string { return d.text }

// Len returns the size of the contents in bytes.
func (d *Document) Len() int { return len(d.text) }

// Loader reads documents from a filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader over fs. A nil fs means the OS filesystem.
func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs}
}

// Load reads the whole file at path.
// There is no existence check ahead of the read; every failure, including
// invalid text, comes back as a *FileReadError.
func (l *Loader) Load(path string) (*Document, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		return nil, &FileReadError{Path: path, Err: ErrInvalidUTF8}
	}

	return &Document{path: path, text: string(data)}, nil
}
