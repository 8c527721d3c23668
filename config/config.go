// Package config assembles the maxcut run configuration from defaults, an
// optional YAML file, MAXCUT_* environment variables and command-line flags,
// in increasing order of precedence, and validates the result.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidConfig wraps every loading or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Keys shared by flags, the config file and the environment.
const (
	KeyWorkers     = "workers"
	KeySeed        = "seed"
	KeyMaxRounds   = "max-rounds"
	KeyILP         = "ilp"
	KeyMaxVertices = "max-vertices"
	KeyOutput      = "output"
	KeyLogLevel    = "log-level"

	envPrefix = "MAXCUT"
)

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config is the validated run configuration.
type Config struct {
	// Workers is the goroutine count for parallel heuristics; 0 = one per CPU.
	Workers int `mapstructure:"workers" validate:"gte=0"`

	// Seed fixes heuristic randomness; 0 = entropy.
	Seed uint64 `mapstructure:"seed"`

	// MaxRounds caps BestOfRandom rounds; 0 = unlimited.
	MaxRounds int `mapstructure:"max-rounds" validate:"gte=0"`

	// ILPTimeout is the exact solver budget in seconds: -1 disables the
	// exact solver, 0 means no limit.
	ILPTimeout int `mapstructure:"ilp" validate:"gte=-1"`

	// MaxVertices caps the exact solver's instance size.
	MaxVertices int `mapstructure:"max-vertices" validate:"gte=1,lte=64"`

	Output   string `mapstructure:"output" validate:"oneof=text yaml"`
	LogLevel string `mapstructure:"log-level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		ILPTimeout:  -1,
		MaxVertices: 40,
		Output:      OutputText,
		LogLevel:    "info",
	}
}

// RegisterFlags adds the configuration flags to fs with Default values.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int(KeyWorkers, d.Workers, "goroutines for parallel heuristics (0 = one per CPU)")
	fs.Uint64(KeySeed, d.Seed, "random seed for heuristics (0 = entropy)")
	fs.Int(KeyMaxRounds, d.MaxRounds, "cap on best-of-random rounds (0 = unlimited)")
	fs.Int(KeyILP, d.ILPTimeout, "solve exactly with a timeout in seconds (-1 = off, 0 = no limit)")
	fs.Int(KeyMaxVertices, d.MaxVertices, "largest instance the exact solver accepts")
	fs.String(KeyOutput, d.Output, "result format: text or yaml")
	fs.String(KeyLogLevel, d.LogLevel, "log level: debug, info, warn or error")
}

// Load reads the YAML file at path (skipped when empty), MAXCUT_* environment
// variables and the flags in fs (may be nil), then validates the result.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
		}
	}
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("%w: bind flags: %w", ErrInvalidConfig, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyMaxRounds, d.MaxRounds)
	v.SetDefault(KeyILP, d.ILPTimeout)
	v.SetDefault(KeyMaxVertices, d.MaxVertices)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyLogLevel, d.LogLevel)
}

// Validate checks the field constraints and reports every violation in
// English, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Translate(trans))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
