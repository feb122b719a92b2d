// Public domain.

package tcprog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/soniakeys/timecorr/usno"
)

// defaults
const (
	defConfigFile = "timecorr.yaml"
	defDir        = "tables"
	defLogLevel   = "info"
)

// environment variables, overriding the config file
const (
	envDir      = "TIMECORR_DIR"
	envBaseURL  = "TIMECORR_BASE_URL"
	envLogLevel = "TIMECORR_LOG_LEVEL"
)

// config holds settings that may come from the config file, the
// environment, or the command line, in increasing order of precedence.
type config struct {
	Dir      string `yaml:"dir"`
	BaseURL  string `yaml:"base-url"`
	LogLevel string `yaml:"log-level"`
}

func defaultConfig() config {
	return config{Dir: defDir, BaseURL: usno.BaseURL, LogLevel: defLogLevel}
}

// readConfigFile reads a YAML config file into c.
//
// A missing file is not an error when it is the default file.
func readConfigFile(c *config, fn string, required bool) error {
	b, err := os.ReadFile(fn)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	var fc config
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", fn, err)
	}
	c.merge(fc)
	return nil
}

// merge copies non-empty fields of o to c.
func (c *config) merge(o config) {
	if o.Dir != "" {
		c.Dir = o.Dir
	}
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

// resolveConfig applies the config file, then the environment, then flags
// set on the command line.
func resolveConfig(flags *pflag.FlagSet, cl *commandLine) (config, error) {
	c := defaultConfig()
	fn := cl.configFile
	if fn == "" {
		fn = defConfigFile
	}
	if err := readConfigFile(&c, fn, flags.Changed("config")); err != nil {
		return c, err
	}
	c.merge(config{
		Dir:      os.Getenv(envDir),
		BaseURL:  os.Getenv(envBaseURL),
		LogLevel: os.Getenv(envLogLevel),
	})
	var fl config
	if flags.Changed("dir") {
		fl.Dir = cl.dir
	}
	if flags.Changed("base-url") {
		fl.BaseURL = cl.baseURL
	}
	if flags.Changed("log-level") {
		fl.LogLevel = cl.logLevel
	}
	c.merge(fl)
	return c, nil
}

// slogLevel maps LogLevel to an slog.Level.
func (c *config) slogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
