// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gogama/quadtree"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFlag   = "config"
	logLevelFlag = "log-level"
	countFlag    = "count"
	seedFlag     = "seed"
	widthFlag    = "width"
	heightFlag   = "height"
	minSizeFlag  = "min-size"
	maxSizeFlag  = "max-size"
	outputFlag   = "output"
	formatFlag   = "format"
)

const (
	formatJSON = "json"
	formatFlat = "flat"
)

const (
	envPrefix       = "QTGEN"
	defaultLogLevel = "info"
)

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	logLevelFlag: "log_level",
	countFlag:    "count",
	seedFlag:     "seed",
	widthFlag:    "bounds.w",
	heightFlag:   "bounds.h",
	minSizeFlag:  "min_size",
	maxSizeFlag:  "max_size",
	outputFlag:   "output",
	formatFlag:   "format",
}

type boundsConfig struct {
	X int64 `mapstructure:"x"`
	Y int64 `mapstructure:"y"`
	W int64 `mapstructure:"w"`
	H int64 `mapstructure:"h"`
}

func (b boundsConfig) rect() quadtree.Rect {
	return quadtree.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

type config struct {
	Bounds   boundsConfig `mapstructure:"bounds"`
	Count    int          `mapstructure:"count"`
	Seed     int64        `mapstructure:"seed"`
	MinSize  int64        `mapstructure:"min_size"`
	MaxSize  int64        `mapstructure:"max_size"`
	Output   string       `mapstructure:"output"`
	Format   string       `mapstructure:"format"`
	LogLevel string       `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("bounds.x", 0)
	v.SetDefault("bounds.y", 0)
	v.SetDefault("bounds.w", 600)
	v.SetDefault("bounds.h", 600)
	v.SetDefault("count", 500)
	v.SetDefault("seed", 0)
	v.SetDefault("min_size", 4)
	v.SetDefault("max_size", 32)
	v.SetDefault("output", "output.json")
	v.SetDefault("format", formatJSON)
	v.SetDefault("log_level", defaultLogLevel)
}

// newViper layers the configuration sources for cmd. Values come, in
// decreasing order of priority, from flags set on the command line,
// QTGEN_* environment variables, the config file and defaults.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	if configPath != "" {
		if err = mergeConfigFile(v, configPath); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return nil, fmt.Errorf("bind flags: %w", bindErr)
	}

	return v, nil
}

// mergeConfigFile merges a YAML config file into v. The file is decoded
// with yaml.v3, which follows YAML 1.2 and keeps keys such as `y` and
// `n` as strings rather than booleans.
func mergeConfigFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var m map[string]interface{}
	if err = yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("decode YAML: %w", err)
	}

	return v.MergeConfigMap(m)
}

// loadConfig resolves and validates the full generate configuration.
func loadConfig(cmd *cobra.Command) (*config, error) {
	v, err := newViper(cmd)
	if err != nil {
		return nil, err
	}

	var cfg config
	if err = v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err = validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// loadLogLevel resolves and validates only the log level, for commands
// that ignore the generate settings.
func loadLogLevel(cmd *cobra.Command) (string, error) {
	v, err := newViper(cmd)
	if err != nil {
		return "", err
	}

	level := v.GetString("log_level")
	if err = validateLogLevel(level); err != nil {
		return "", fmt.Errorf("validate config: %w", err)
	}

	return level, nil
}

func validateConfig(c *config) error {
	if err := validateBounds(c.Bounds, c.MaxSize); err != nil {
		return fmt.Errorf("validate `bounds`: %w", err)
	}

	if c.Count < 0 {
		return fmt.Errorf("invalid value of field `count`: %v", c.Count)
	}

	if c.MinSize <= 0 {
		return fmt.Errorf("invalid value of field `min_size`: %v", c.MinSize)
	}

	if c.MaxSize <= c.MinSize {
		return fmt.Errorf("invalid value of field `max_size`: %v (must exceed `min_size` %v)", c.MaxSize, c.MinSize)
	}

	if c.Output == "" {
		return fmt.Errorf("required field `output` is missing")
	}

	if c.Format != formatJSON && c.Format != formatFlat {
		return fmt.Errorf("invalid value of field `format`: %q", c.Format)
	}

	return validateLogLevel(c.LogLevel)
}

func validateLogLevel(level string) error {
	if _, err := parseLogLevel(level); err != nil {
		return fmt.Errorf("invalid value of field `log_level`: %q", level)
	}

	return nil
}

func validateBounds(b boundsConfig, maxSize int64) error {
	if b.W <= maxSize {
		return fmt.Errorf("invalid value of field `w`: %v (must exceed `max_size` %v)", b.W, maxSize)
	}

	if b.H <= maxSize {
		return fmt.Errorf("invalid value of field `h`: %v (must exceed `max_size` %v)", b.H, maxSize)
	}

	return nil
}
