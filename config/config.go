// Package config loads lyricwalk settings from a YAML file, environment
// variables and defaults, and validates them with struct tags.
//
// Precedence (later wins): Default() → YAML file → LYRICWALK_* env → CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lyricwalk/walk"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LYRICWALK_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// validate is a singleton validator instance
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds every knob of a lyricwalk run.
type Config struct {
	Input       string `yaml:"input" validate:"required"`
	Count       int    `yaml:"count" validate:"min=1,max=10000"`
	MinLength   int    `yaml:"min_length" validate:"min=1,max=1000"`
	MaxLength   int    `yaml:"max_length" validate:"min=1,max=1000,gtefield=MinLength"`
	Seed        int64  `yaml:"seed"`
	Workers     int    `yaml:"workers" validate:"min=1,max=256"`
	Start       string `yaml:"start"`
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat   string `yaml:"log_format" validate:"oneof=text json"`
	MetricsAddr string `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
}

// Default returns the classic run: lyrics.txt, five lines of 5–6 words.
func Default() Config {
	p := walk.DefaultPlan()
	return Config{
		Input:     "lyrics.txt",
		Count:     p.Count,
		MinLength: p.MinLength,
		MaxLength: p.MaxLength,
		Workers:   1,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads path over the defaults. An empty path returns Default().
// Unknown YAML keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from LYRICWALK_* variables found by lookup
// (os.LookupEnv in production). Malformed numbers are reported, not ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, key, v, err)
		}
		*dst = n
		return nil
	}

	str("INPUT", &c.Input)
	str("START", &c.Start)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("METRICS_ADDR", &c.MetricsAddr)
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		s, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("config: %sSEED=%q: %w", EnvPrefix, v, err)
		}
		c.Seed = s
	}

	return errors.Join(
		num("COUNT", &c.Count),
		num("MIN_LENGTH", &c.MinLength),
		num("MAX_LENGTH", &c.MaxLength),
		num("WORKERS", &c.Workers),
	)
}

// Normalize folds the case of the enumerated fields so "DEBUG" and "debug"
// select the same level.
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

// Validate checks struct tags on a normalized copy; every failing field is
// reported.
func (c Config) Validate() error {
	c.Normalize()
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (%v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// Plan converts the generation fields into a walk.Plan.
func (c Config) Plan() walk.Plan {
	return walk.Plan{
		Count:     c.Count,
		MinLength: c.MinLength,
		MaxLength: c.MaxLength,
		Workers:   c.Workers,
		Start:     c.Start,
	}
}
