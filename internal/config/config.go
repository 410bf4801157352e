// Package config loads runtime settings for the actorgraph tools.
// Values come from .actorgraph.yaml, ACTORGRAPH_* env vars, and CLI flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/actorgraph/core"
	"github.com/katalvlaran/actorgraph/prim_kruskal"
	"github.com/katalvlaran/actorgraph/predict"
)

// EnvPrefix is prepended to every environment override, e.g. ACTORGRAPH_TOP_K.
const EnvPrefix = "ACTORGRAPH"

// ErrInvalid is returned when a loaded value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// MSTConfig selects the spanning forest algorithm.
type MSTConfig struct {
	Method string `mapstructure:"method"` // kruskal or prim
	Root   string `mapstructure:"root"`   // optional first Prim root
}

// Config holds all runtime configuration for one tool invocation.
type Config struct {
	ReferenceYear int       `mapstructure:"reference_year"`
	TopK          int       `mapstructure:"top_k"`
	MST           MSTConfig `mapstructure:"mst"`
	Log           LogConfig `mapstructure:"log"`
	MetricsFile   string    `mapstructure:"metrics_file"`
	ReportFile    string    `mapstructure:"report_file"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("reference_year", core.DefaultReferenceYear)
	v.SetDefault("top_k", predict.DefaultTopK)
	v.SetDefault("mst.method", prim_kruskal.MethodKruskal)
	v.SetDefault("mst.root", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("metrics_file", "")
	v.SetDefault("report_file", "")
}

// BindEnv enables ACTORGRAPH_* overrides on v. Nested keys use underscores:
// ACTORGRAPH_MST_METHOD overrides mst.method.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads configuration from the global viper instance.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom applies defaults to v, decodes it and validates the result.
func LoadFrom(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects values the tools cannot run with.
func (c Config) Validate() error {
	if c.ReferenceYear < 1 {
		return fmt.Errorf("%w: reference_year must be >= 1, got %d", ErrInvalid, c.ReferenceYear)
	}
	if c.TopK < 1 {
		return fmt.Errorf("%w: top_k must be >= 1, got %d", ErrInvalid, c.TopK)
	}
	switch c.MST.Method {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
	default:
		return fmt.Errorf("%w: mst.method %q", ErrInvalid, c.MST.Method)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// MSTOptions converts the forest settings for prim_kruskal.Compute.
func (c Config) MSTOptions() prim_kruskal.MSTOptions {
	return prim_kruskal.MSTOptions{Method: c.MST.Method, Root: c.MST.Root}
}
