// Package strategy holds what the three error-reporting readers share: their
// names and construction options.
package strategy

import (
	"io"

	"github.com/oldmonad/readerr/pkg/fsutil"
	"github.com/oldmonad/readerr/pkg/logger"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Name identifies an error-reporting strategy.
type Name string

const (
	Tagged     Name = "tagged"
	Contextual Name = "contextual"
	Erased     Name = "erased"
)

// All lists the strategies in the order the driver runs them.
var All = []Name{Tagged, Contextual, Erased}

// Config is the resolved reader configuration.
type Config struct {
	Fs     afero.Fs
	Echo   io.Writer
	Logger *zap.Logger
}

// Option configures a reader during construction.
type Option func(*Config)

// WithFs sets the filesystem files are read from. Defaults to the OS filesystem.
func WithFs(fsys afero.Fs) Option { return func(c *Config) { c.Fs = fsys } }

// WithEcho sets where successfully read contents are echoed. Nil disables the echo.
func WithEcho(w io.Writer) Option { return func(c *Config) { c.Echo = w } }

// WithLogger overrides the package-global logger.
func WithLogger(l *zap.Logger) Option { return func(c *Config) { c.Logger = l } }

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) Config {
	c := Config{}
	for _, o := range opts {
		o(&c)
	}
	if c.Fs == nil {
		c.Fs = fsutil.NewFs()
	}
	if c.Logger == nil {
		c.Logger = logger.GetLogger()
	}
	return c
}
