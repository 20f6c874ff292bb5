// Package fsutiltest provides afero filesystems that fail in controlled ways,
// for exercising the failure paths of the readers.
package fsutiltest

import (
	"io/fs"
	"sync/atomic"

	"github.com/spf13/afero"
)

// DenyFs rejects every Open with a permission error.
type DenyFs struct {
	afero.Fs
}

func (d DenyFs) Open(name string) (afero.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
}

// BrokenReadFs opens files normally, but every Read on them fails with Err.
type BrokenReadFs struct {
	afero.Fs
	Err error
}

func (b BrokenReadFs) Open(name string) (afero.File, error) {
	f, err := b.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return &brokenFile{File: f, err: b.Err}, nil
}

type brokenFile struct {
	afero.File
	err error
}

func (f *brokenFile) Read(p []byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: f.Name(), Err: f.err}
}

// CountingFs counts opened and closed files.
type CountingFs struct {
	afero.Fs
	opened atomic.Int32
	closed atomic.Int32
}

func NewCountingFs(base afero.Fs) *CountingFs {
	return &CountingFs{Fs: base}
}

func (c *CountingFs) Open(name string) (afero.File, error) {
	f, err := c.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	c.opened.Add(1)
	return &countedFile{File: f, closed: &c.closed}, nil
}

// Opened returns the number of files opened so far.
func (c *CountingFs) Opened() int { return int(c.opened.Load()) }

// Closed returns the number of files closed so far.
func (c *CountingFs) Closed() int { return int(c.closed.Load()) }

type countedFile struct {
	afero.File
	closed *atomic.Int32
}

func (f *countedFile) Close() error {
	f.closed.Add(1)
	return f.File.Close()
}
