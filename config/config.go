// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netrepair/flow"
	"github.com/katalvlaran/netrepair/topology"
)

var (
	// ErrUnsupportedFormat indicates a config file extension other than
	// .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid classifies every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Defaults carried over from the reference experiment on the Kdl topology.
const (
	DefaultGML        = "Kdl.gml"
	DefaultSource     = 52
	DefaultSink       = 725
	DefaultIntervals  = 50
	DefaultFailure    = FailureRandom
	DefaultPercent    = 10
	DefaultLogLevel   = "info"
	DefaultLogMaxSize = 100
	DefaultBackups    = 7
)

// Failure modes.
const (
	FailureRandom     = "random"
	FailureGeographic = "geographic"
)

// Config is the complete description of one experiment.
type Config struct {
	Topology   Topology   `yaml:"topology" toml:"topology"`
	Failure    Failure    `yaml:"failure" toml:"failure"`
	Experiment Experiment `yaml:"experiment" toml:"experiment"`
	Log        Log        `yaml:"log" toml:"log"`
	Metrics    Metrics    `yaml:"metrics" toml:"metrics"`
}

// Topology selects the network shape: a GML file or a synthetic builder.
// Exactly one of GML and Builder must be set.
type Topology struct {
	GML             string  `yaml:"gml" toml:"gml"`
	Builder         string  `yaml:"builder" toml:"builder" validate:"omitempty,oneof=cycle path star wheel complete grid random"`
	Size            int     `yaml:"size" toml:"size" validate:"omitempty,min=1"`
	Cols            int     `yaml:"cols" toml:"cols" validate:"omitempty,min=1"`
	Probability     float64 `yaml:"probability" toml:"probability" validate:"gte=0,lte=1"`
	MaxRepairTime   int     `yaml:"max_repair_time" toml:"max_repair_time" validate:"min=1"`
	MaxLinkCapacity int     `yaml:"max_link_capacity" toml:"max_link_capacity" validate:"min=1"`
}

// Params returns the draw bounds for topology.Build.
func (t Topology) Params() topology.Params {
	return topology.Params{MaxRepairTime: t.MaxRepairTime, MaxLinkCapacity: t.MaxLinkCapacity}
}

// Failure describes the damaging event.
type Failure struct {
	Mode    string  `yaml:"mode" toml:"mode" validate:"oneof=random geographic"`
	Percent float64 `yaml:"percent" toml:"percent" validate:"gte=0,lte=100"`
}

// Experiment holds the measurement settings.
type Experiment struct {
	Source    int      `yaml:"source" toml:"source" validate:"min=0"`
	Sink      int      `yaml:"sink" toml:"sink" validate:"min=0,nefield=Source"`
	Intervals int      `yaml:"intervals" toml:"intervals" validate:"min=1"`
	Seed      int64    `yaml:"seed" toml:"seed"`
	Policies  []string `yaml:"policies" toml:"policies" validate:"min=1,dive,oneof=random greedy"`
	Algorithm string   `yaml:"algorithm" toml:"algorithm"`
}

// Log configures the console and optional rotated file output.
type Log struct {
	Level      string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	File       string `yaml:"file" toml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb" validate:"min=1"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups" validate:"min=0"`
	NoColor    bool   `yaml:"no_color" toml:"no_color"`
}

// Metrics toggles the Prometheus registry dump after a run.
type Metrics struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Output  string `yaml:"output" toml:"output"` // "" or "-" means stdout
}

// Default returns the reference experiment: the Kdl topology with the
// original draw bounds, terminals and sampling resolution.
func Default() Config {
	params := topology.DefaultParams()
	return Config{
		Topology: Topology{
			GML:             DefaultGML,
			MaxRepairTime:   params.MaxRepairTime,
			MaxLinkCapacity: params.MaxLinkCapacity,
		},
		Failure: Failure{Mode: DefaultFailure, Percent: DefaultPercent},
		Experiment: Experiment{
			Source:    DefaultSource,
			Sink:      DefaultSink,
			Intervals: DefaultIntervals,
			Policies:  []string{"random", "greedy"},
		},
		Log: Log{Level: DefaultLogLevel, MaxSizeMB: DefaultLogMaxSize, MaxBackups: DefaultBackups},
	}
}

var validate = validator.New()

// Validate checks struct tags and the cross-field rules tags cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, formatValidationError(err))
	}
	if (c.Topology.GML == "") == (c.Topology.Builder == "") {
		return fmt.Errorf("%w: exactly one of topology.gml and topology.builder must be set", ErrInvalid)
	}
	if c.Topology.Builder != "" && c.Topology.Size == 0 {
		return fmt.Errorf("%w: topology.size is required with builder %q", ErrInvalid, c.Topology.Builder)
	}
	if c.Topology.Builder == "grid" && c.Topology.Cols == 0 {
		return fmt.Errorf("%w: topology.cols is required with builder \"grid\"", ErrInvalid)
	}
	if c.Failure.Mode == FailureRandom && c.Failure.Percent != math.Trunc(c.Failure.Percent) {
		return fmt.Errorf("%w: failure.percent must be a whole number for random failures, got %g",
			ErrInvalid, c.Failure.Percent)
	}
	if _, err := flow.ParseAlgorithm(c.Experiment.Algorithm); err != nil {
		return fmt.Errorf("%w: experiment.algorithm: %w", ErrInvalid, err)
	}

	return nil
}

// formatValidationError flattens validator errors into one readable line.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (value %v)", field, fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", field, fe.Tag()))
		}
	}

	return strings.Join(msgs, "; ")
}

// Load reads the file at path over Default() and validates the result.
// The format follows the extension: .yaml/.yml or .toml. Unknown keys are
// rejected in both formats. A file that selects a builder without naming a
// GML file drops the default GML path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}

	var explicit Config
	if err := decode(path, data, &explicit); err != nil {
		return Config{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	cfg := Default()
	if err := decode(path, data, &cfg); err != nil {
		return Config{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	if explicit.Topology.Builder != "" && explicit.Topology.GML == "" {
		cfg.Topology.GML = ""
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("Load(%s): %w", path, err)
	}

	return cfg, nil
}

// decode overlays data onto cfg using the format chosen by the extension.
func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown keys %v: %w", undecoded, ErrInvalid)
		}
	default:
		return ErrUnsupportedFormat
	}

	return nil
}
