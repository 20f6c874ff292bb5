package env

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	cerrors "github.com/oldmonad/readerr/pkg/errors"
	"github.com/oldmonad/readerr/pkg/logger"
)

// DefaultDemoPath is intentionally missing so every strategy shows its error.
const DefaultDemoPath = "myfile.txt"

// DefaultEnvFile is the optional dotenv file read before the environment.
const DefaultEnvFile = ".env"

type Configurations struct {
	DebugMode bool
	DemoPath  string
	NoColor   bool
}

func NewConfiguration() *Configurations {
	return &Configurations{
		// Can still be overridden by setting DEMO_PATH
		DemoPath: DefaultDemoPath,
	}
}

// LoadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return cerrors.NewErrEnvLoad(path, err)
	}
	return nil
}

func (c *Configurations) LoadGeneralConfig() error {
	mode, err := parseBool("DEBUG")
	if err != nil {
		return err
	}
	c.DebugMode = mode

	noColor, err := parseBool("NO_COLOR")
	if err != nil {
		return err
	}
	c.NoColor = noColor

	if path, ok := os.LookupEnv("DEMO_PATH"); ok {
		if path == "" {
			return cerrors.NewErrEmptyPath()
		}
		c.DemoPath = path
	}

	return nil
}

func (c *Configurations) InitiateLogger() {
	logger.Init(c.DebugMode)
}

func SetupConfigurations() (*Configurations, error) {
	if err := LoadEnvFile(DefaultEnvFile); err != nil {
		return nil, err
	}

	configurations := NewConfiguration()

	if err := configurations.LoadGeneralConfig(); err != nil {
		return nil, cerrors.NewErrConfigSetup(err)
	}

	configurations.InitiateLogger()

	return configurations, nil
}

// parseBool reads a boolean variable; unset or empty means false.
func parseBool(name string) (bool, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, cerrors.NewErrBoolParse(name, raw, err)
	}
	return v, nil
}
