package tagged

import (
	"strings"

	"github.com/oldmonad/readerr/pkg/fsutil"
	"github.com/oldmonad/readerr/pkg/strategy"
	"go.uber.org/zap"
)

// Reader reads files and reports failures as tagged errors.
type Reader struct {
	cfg strategy.Config
}

func NewReader(opts ...strategy.Option) *Reader {
	return &Reader{cfg: strategy.NewConfig(opts...)}
}

// Read returns the full text contents of path. Open and read failures both
// become IoFailure.
func (r *Reader) Read(path string) (string, Error) {
	f, err := fsutil.Open(r.cfg.Fs, path)
	if err != nil {
		return "", r.fail(path, err)
	}
	defer f.Close()

	contents, err := fsutil.ReadString(f)
	if err != nil {
		return "", r.fail(path, err)
	}

	fsutil.Echo(r.cfg.Echo, contents)
	return contents, nil
}

func (r *Reader) fail(path string, err error) Error {
	e := IoFailure{Cause: err, File: path}
	r.cfg.Logger.Debug("Read failed",
		zap.String("strategy", string(strategy.Tagged)),
		zap.String("path", path),
		zap.String("kind", string(e.Kind())),
		zap.Error(err),
	)
	return e
}

// ExpectHeader checks that the first line of contents equals want.
func ExpectHeader(contents, want string) Error {
	found, _, _ := strings.Cut(contents, "\n")
	found = strings.TrimSuffix(found, "\r")
	if found != want {
		return InvalidHeader{Expected: want, Found: found}
	}
	return nil
}
