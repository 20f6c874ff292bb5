package erased_test

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/oldmonad/readerr/pkg/fsutil"
	"github.com/oldmonad/readerr/pkg/fsutil/fsutiltest"
	"github.com/oldmonad/readerr/pkg/logger"
	"github.com/oldmonad/readerr/pkg/strategy"
	"github.com/oldmonad/readerr/pkg/strategy/erased"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.SetLogger(zap.NewNop())
	os.Exit(m.Run())
}

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0644))
	}
	return fsys
}

func TestReadMissingFile(t *testing.T) {
	r := erased.NewReader(strategy.WithFs(memFs(t, nil)))

	contents, err := r.Read("myfile.txt")
	require.Error(t, err)
	assert.Empty(t, contents)

	assert.Equal(t, "not found: failed to open myfile.txt", err.Error())
	assert.Equal(t, `KindError{kind: not found, error: "failed to open myfile.txt"}`, fmt.Sprintf("%+v", err))
	assert.Equal(t, fsutil.NotFound, fsutil.Classify(err))

	// The original cause does not survive.
	assert.False(t, errors.Is(err, fs.ErrNotExist))
	_, ok := erased.Downcast[*fs.PathError](err)
	assert.False(t, ok)
	assert.Nil(t, errors.Unwrap(err))
}

func TestDowncast(t *testing.T) {
	err := erased.New(fsutil.PermissionDenied, "failed to open x")

	ke, ok := erased.Downcast[*erased.KindError](err)
	require.True(t, ok)
	assert.Equal(t, fsutil.PermissionDenied, ke.Kind())
	assert.Equal(t, "failed to open x", ke.Message())

	_, ok = erased.Downcast[*erased.KindError](nil)
	assert.False(t, ok)

	_, ok = erased.Downcast[*erased.KindError](errors.New("plain"))
	assert.False(t, ok)
}

func TestReadFailures(t *testing.T) {
	base := memFs(t, map[string]string{"a.txt": "alpha", "bin.dat": "\xff"})

	tests := []struct {
		name string
		fsys afero.Fs
		path string
		want string
	}{
		{
			name: "permission denied",
			fsys: fsutiltest.DenyFs{Fs: base},
			path: "a.txt",
			want: "permission denied: failed to open a.txt",
		},
		{
			name: "read error",
			fsys: fsutiltest.BrokenReadFs{Fs: base, Err: errors.New("device error")},
			path: "a.txt",
			want: "other: failed to read a.txt",
		},
		{
			name: "invalid utf8",
			fsys: base,
			path: "bin.dat",
			want: "invalid data: failed to read bin.dat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := erased.NewReader(strategy.WithFs(tt.fsys)).Read(tt.path)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.NotContains(t, err.Error(), "device error")
		})
	}
}

func TestReadClosesFileOnEveryPath(t *testing.T) {
	counting := fsutiltest.NewCountingFs(memFs(t, map[string]string{"a.txt": "alpha", "bin.dat": "\xff"}))
	broken := fsutiltest.BrokenReadFs{Fs: counting, Err: errors.New("device error")}

	_, err := erased.NewReader(strategy.WithFs(counting)).Read("a.txt")
	require.NoError(t, err)
	_, err = erased.NewReader(strategy.WithFs(counting)).Read("bin.dat")
	require.Error(t, err)
	_, err = erased.NewReader(strategy.WithFs(broken)).Read("a.txt")
	require.Error(t, err)
	_, err = erased.NewReader(strategy.WithFs(counting)).Read("missing.txt")
	require.Error(t, err)

	assert.Equal(t, 3, counting.Opened())
	assert.Equal(t, 3, counting.Closed())
}

func TestRewrapLosesHistory(t *testing.T) {
	_, err := erased.NewReader(strategy.WithFs(memFs(t, nil))).Read("myfile.txt")
	require.Error(t, err)

	once := erased.Rewrap(err, "failed to load settings")
	twice := erased.Rewrap(once, "startup failed")

	assert.Equal(t, "not found: startup failed", twice.Error())
	assert.NotContains(t, twice.Error(), "myfile.txt")
	assert.NotContains(t, twice.Error(), "failed to load settings")
	assert.Equal(t, fsutil.NotFound, fsutil.Classify(twice), "only the classification survives")

	foreign := erased.Rewrap(fmt.Errorf("wrapped: %w", fs.ErrNotExist), "lost")
	assert.Equal(t, "other: lost", foreign.Error())

	assert.Nil(t, erased.Rewrap(nil, "x"))
}

func TestNewDefaultsToOther(t *testing.T) {
	err := erased.New("", "unclassified")
	assert.Equal(t, "other: unclassified", err.Error())
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
}

func TestReadExistingFile(t *testing.T) {
	var echo bytes.Buffer
	r := erased.NewReader(strategy.WithFs(memFs(t, map[string]string{"a.txt": "alpha"})), strategy.WithEcho(&echo))

	got, err := r.Read("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "alpha", got)
	assert.Equal(t, "\"alpha\"\n", echo.String())
}
