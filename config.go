package gocalc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"fortio.org/log"
	"gopkg.in/yaml.v3"
)

// Config holds the session settings read from a YAML file.
type Config struct {
	Prompt    string             `yaml:"prompt"`
	Fold      bool               `yaml:"fold"`
	Prelude   bool               `yaml:"prelude"`
	Precision int                `yaml:"precision"`
	LogLevel  string             `yaml:"log_level"`
	Variables map[string]float64 `yaml:"variables"`
}

func DefaultConfig() *Config {
	return &Config{
		Prompt:    ">> ",
		Prelude:   true,
		Precision: -1,
		LogLevel:  "info",
	}
}

var logLevels = map[string]log.Level{
	"debug":   log.Debug,
	"verbose": log.Verbose,
	"info":    log.Info,
	"warning": log.Warning,
	"error":   log.Error,
}

// ConfigError aggregates validation failures.
type ConfigError struct {
	Issues []string
}

func (e *ConfigError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadConfig reads path on top of DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: empty path")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig reads a YAML document from r on top of DefaultConfig. An
// empty document yields the defaults.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs ConfigError
	if _, ok := logLevels[c.LogLevel]; !ok {
		errs.Issues = append(errs.Issues, fmt.Sprintf("log_level %q is not one of debug, verbose, info, warning, error", c.LogLevel))
	}
	if c.Precision < -1 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("precision must be -1 or more, got %d", c.Precision))
	}
	for _, name := range c.variableNames() {
		if !isIdentifier(name) {
			errs.Issues = append(errs.Issues, fmt.Sprintf("variables.%s: name must be lowercase letters a-z", name))
		} else if name == defineKeyword {
			errs.Issues = append(errs.Issues, fmt.Sprintf("variables.%s: name is reserved", name))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func (c *Config) variableNames() []string {
	names := make([]string, 0, len(c.Variables))
	for name := range c.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Level returns the configured log level.
func (c *Config) Level() log.Level {
	if l, ok := logLevels[c.LogLevel]; ok {
		return l
	}
	return log.Info
}

// Apply seeds env with the configured variables, in name order.
func (c *Config) Apply(env *Env) error {
	for _, name := range c.variableNames() {
		if err := DefineVariable(env, name, &Literal{Value: c.Variables[name]}); err != nil {
			return err
		}
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isIdentLetter(r) {
			return false
		}
	}
	return true
}
