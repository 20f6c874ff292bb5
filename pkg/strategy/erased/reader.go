package erased

import (
	"github.com/oldmonad/readerr/pkg/fsutil"
	"github.com/oldmonad/readerr/pkg/strategy"
	"go.uber.org/zap"
)

// Reader reads files and reports failures as erased errors.
type Reader struct {
	cfg strategy.Config
}

func NewReader(opts ...strategy.Option) *Reader {
	return &Reader{cfg: strategy.NewConfig(opts...)}
}

// Read returns the full text contents of path. On failure only the
// classification of the original error is kept.
func (r *Reader) Read(path string) (string, error) {
	f, err := fsutil.Open(r.cfg.Fs, path)
	if err != nil {
		return "", r.fail(path, err, "failed to open "+path)
	}
	defer f.Close()

	contents, err := fsutil.ReadString(f)
	if err != nil {
		return "", r.fail(path, err, "failed to read "+path)
	}

	fsutil.Echo(r.cfg.Echo, contents)
	return contents, nil
}

func (r *Reader) fail(path string, cause error, msg string) error {
	kind := fsutil.Classify(cause)
	// The cause is logged here for the last time.
	r.cfg.Logger.Debug("Read failed",
		zap.String("strategy", string(strategy.Erased)),
		zap.String("path", path),
		zap.String("kind", string(kind)),
		zap.Error(cause),
	)
	return New(kind, msg)
}
