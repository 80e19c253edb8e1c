package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/c2h5oh/datasize"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"

	"github.com/ozontech/truthtab/consts"
	"github.com/ozontech/truthtab/limits"
	"github.com/ozontech/truthtab/truthtable"
)

// Bytes is a size written as "64KB", "1MB" or a plain number of bytes.
type Bytes uint64

func (b *Bytes) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	var v datasize.ByteSize
	if err := v.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("parsing size %q: %w", s, err)
	}
	*b = Bytes(v)
	return nil
}

func (b Bytes) String() string {
	return datasize.ByteSize(b).HR()
}

type Config struct {
	Display struct {
		// Unicode renders operators with logic glyphs instead of ASCII.
		Unicode bool `yaml:"unicode"`
		// HeaderLine draws a rule under the header.
		HeaderLine bool `yaml:"headerLine"`
		// ColumnLines separates columns with vertical lines.
		ColumnLines bool `yaml:"columnLines"`
		Color       bool `yaml:"color"`
	} `yaml:"display"`

	Limits struct {
		// MaxVariables refuses expressions with more distinct variables.
		MaxVariables int `yaml:"maxVariables"`
		// Workers evaluating rows of large tables, defaults to the number of CPUs.
		Workers int `yaml:"workers"`
	} `yaml:"limits"`

	Server struct {
		Addr        string `yaml:"addr"`
		DebugAddr   string `yaml:"debugAddr"`
		MaxBodySize Bytes  `yaml:"maxBodySize"`

		ReadTimeout     time.Duration `yaml:"readTimeout"`
		ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	} `yaml:"server"`

	Tracing struct {
		SamplingRate float64 `yaml:"samplingRate"`
	} `yaml:"tracing"`
}

func Default() Config {
	var c Config

	c.Display.HeaderLine = true
	c.Display.ColumnLines = true

	c.Limits.MaxVariables = consts.DefaultMaxVariables
	c.Limits.Workers = limits.NumCPU

	c.Server.Addr = ":9002"
	c.Server.DebugAddr = ":9200"
	c.Server.MaxBodySize = consts.DefaultMaxBodySize
	c.Server.ReadTimeout = consts.DefaultReadTimeout
	c.Server.ShutdownTimeout = consts.DefaultShutdownTimeout

	c.Tracing.SamplingRate = 0.01

	return c
}

// Parse reads the yaml file over the defaults. An empty path means defaults.
func Parse(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	c.Limits.Workers = limits.Workers(c.Limits.Workers)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs error
	if c.Limits.MaxVariables < 1 || c.Limits.MaxVariables > truthtable.MaxVariables {
		errs = multierr.Append(errs, fmt.Errorf("limits.maxVariables must be in [1, %d], got %d", truthtable.MaxVariables, c.Limits.MaxVariables))
	}
	if c.Limits.Workers < 1 {
		errs = multierr.Append(errs, fmt.Errorf("limits.workers must be positive, got %d", c.Limits.Workers))
	}
	if c.Server.Addr == "" {
		errs = multierr.Append(errs, errors.New("server.addr is empty"))
	}
	if c.Server.MaxBodySize == 0 {
		errs = multierr.Append(errs, errors.New("server.maxBodySize must be positive"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = multierr.Append(errs, errors.New("server.shutdownTimeout must be positive"))
	}
	if c.Tracing.SamplingRate < 0 || c.Tracing.SamplingRate > 1 {
		errs = multierr.Append(errs, fmt.Errorf("tracing.samplingRate must be in [0, 1], got %v", c.Tracing.SamplingRate))
	}
	return errs
}
