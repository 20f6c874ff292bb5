package contextual

import (
	"github.com/oldmonad/readerr/pkg/fsutil"
	"github.com/oldmonad/readerr/pkg/strategy"
	"go.uber.org/zap"
)

// Reader reads files and reports failures as context chains.
type Reader struct {
	cfg strategy.Config
}

func NewReader(opts ...strategy.Option) *Reader {
	return &Reader{cfg: strategy.NewConfig(opts...)}
}

// Read returns the full text contents of path. A non-nil error is always a
// *Chain naming the step that failed.
func (r *Reader) Read(path string) (string, error) {
	f, err := fsutil.Open(r.cfg.Fs, path)
	if err != nil {
		return "", r.fail(path, Wrapf(err, "failed to open %s", path))
	}
	defer f.Close()

	contents, err := fsutil.ReadString(f)
	if err != nil {
		return "", r.fail(path, Wrapf(err, "failed to read %s", path))
	}

	fsutil.Echo(r.cfg.Echo, contents)
	return contents, nil
}

func (r *Reader) fail(path string, err error) error {
	r.cfg.Logger.Debug("Read failed",
		zap.String("strategy", string(strategy.Contextual)),
		zap.String("path", path),
		zap.String("kind", string(fsutil.Classify(err))),
		zap.Error(err),
	)
	return err
}
