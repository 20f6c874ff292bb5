// Package fsutil holds the read-file-to-string steps shared by every error
// strategy. The steps are split so callers can report open and read failures
// separately.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// ErrInvalidUTF8 is returned by ReadString when the data is not UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// NewFs returns the filesystem readers use when none is configured.
func NewFs() afero.Fs {
	return afero.NewOsFs()
}

// Open opens path on fsys for reading. The caller owns the returned file.
func Open(fsys afero.Fs, path string) (afero.File, error) {
	return fsys.Open(path)
}

// ReadString reads r to EOF and decodes it as text.
func ReadString(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// Echo writes the quoted contents to w. A nil writer is a no-op.
func Echo(w io.Writer, contents string) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "%q\n", contents)
}
