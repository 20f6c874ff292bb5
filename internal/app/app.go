package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oldmonad/readerr/pkg/config/env"
	cerrors "github.com/oldmonad/readerr/pkg/errors"
	"github.com/oldmonad/readerr/pkg/fsutil"
	"github.com/oldmonad/readerr/pkg/logger"
	"github.com/oldmonad/readerr/pkg/output"
	"github.com/oldmonad/readerr/pkg/strategy"
	"github.com/oldmonad/readerr/pkg/strategy/contextual"
	"github.com/oldmonad/readerr/pkg/strategy/erased"
	"github.com/oldmonad/readerr/pkg/strategy/tagged"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type App struct {
	Logger         *zap.Logger
	configurations env.Configurations
	out            io.Writer

	tagged     *tagged.Reader
	contextual *contextual.Reader
	erased     *erased.Reader
}

// AppRunner defines the contract for running the demonstration
type AppRunner interface {
	Run(ctx context.Context, path string, strategies []strategy.Name, header string) error
}

// Option configures an App.
type Option func(*settings)

type settings struct {
	fs  afero.Fs
	out io.Writer
}

// WithFs sets the filesystem every reader reads from.
func WithFs(fsys afero.Fs) Option { return func(s *settings) { s.fs = fsys } }

// WithOutput sets where contents, error renderings and the table are written.
func WithOutput(w io.Writer) Option { return func(s *settings) { s.out = w } }

// NewApp initializes and returns a new App instance
func NewApp(configurations env.Configurations, opts ...Option) *App {
	s := settings{fs: fsutil.NewFs(), out: os.Stdout}
	for _, o := range opts {
		o(&s)
	}

	log := logger.GetLogger()
	readerOpts := []strategy.Option{
		strategy.WithFs(s.fs),
		strategy.WithEcho(s.out),
		strategy.WithLogger(log),
	}

	return &App{
		Logger:         log,
		configurations: configurations,
		out:            s.out,
		tagged:         tagged.NewReader(readerOpts...),
		contextual:     contextual.NewReader(readerOpts...),
		erased:         erased.NewReader(readerOpts...),
	}
}

// Configurations returns the application's configuration settings
func (a *App) Configurations() env.Configurations {
	return a.configurations
}

// Run reads path with each strategy in turn, writes every failure in its debug
// form and finishes with a comparison table. Reader failures are reported,
// never returned: Run only fails for an unknown strategy, checked before any
// read, or a context that is already done.
func (a *App) Run(ctx context.Context, path string, strategies []strategy.Name, header string) error {
	a.Logger.Info("Running demonstration",
		zap.String("path", path),
		zap.Int("strategies", len(strategies)),
	)

	var unknown []string
	for _, s := range strategies {
		if !known(s) {
			unknown = append(unknown, string(s))
		}
	}
	if len(unknown) > 0 {
		return cerrors.NewUnknownStrategiesError(unknown, names(strategy.All))
	}

	outcomes := make([]output.Outcome, 0, len(strategies))
	for _, s := range strategies {
		if err := ctx.Err(); err != nil {
			return err
		}

		outcomes = append(outcomes, a.Report(s, a.read(s, path, header)))
	}

	output.PrintTable(a.out, outcomes)
	return nil
}

// read runs a single known strategy.
func (a *App) read(s strategy.Name, path, header string) error {
	switch s {
	case strategy.Tagged:
		contents, err := a.tagged.Read(path)
		if err != nil {
			return err
		}
		if header != "" {
			if err := tagged.ExpectHeader(contents, header); err != nil {
				return err
			}
		}
	case strategy.Contextual:
		_, err := a.contextual.Read(path)
		return err
	case strategy.Erased:
		_, err := a.erased.Read(path)
		return err
	}
	return nil
}

func known(s strategy.Name) bool {
	for _, k := range strategy.All {
		if k == s {
			return true
		}
	}
	return false
}

// Report writes err in its debug form and summarises it for the table.
func (a *App) Report(s strategy.Name, err error) output.Outcome {
	if err == nil {
		a.Logger.Info("Read succeeded", zap.String("strategy", string(s)))
		return output.Outcome{Strategy: string(s), Succeeded: true}
	}

	fmt.Fprintf(a.out, "%s error: %+v\n", label(s), err)
	a.Logger.Info("Read failed and was reported", zap.String("strategy", string(s)))

	return output.Outcome{
		Strategy:  string(s),
		ErrorType: errorType(err),
		Kind:      string(fsutil.Classify(err)),
		CauseKept: errors.Unwrap(err) != nil,
	}
}

func label(s strategy.Name) string {
	switch s {
	case strategy.Tagged:
		return "Tagged"
	case strategy.Contextual:
		return "Contextual"
	case strategy.Erased:
		return "Erased"
	default:
		return string(s)
	}
}

// variantName names the tagged variant behind an error.
type variantName struct{}

func (variantName) IoFailure(tagged.IoFailure) string         { return "tagged.IoFailure" }
func (variantName) InvalidHeader(tagged.InvalidHeader) string { return "tagged.InvalidHeader" }
func (variantName) Wrapped(tagged.Wrapped) string             { return "tagged.Wrapped" }

func errorType(err error) string {
	if t, ok := err.(tagged.Error); ok {
		return tagged.Match[string](t, variantName{})
	}
	return fmt.Sprintf("%T", err)
}

func names(all []strategy.Name) []string {
	out := make([]string, 0, len(all))
	for _, s := range all {
		out = append(out, string(s))
	}
	return out
}
