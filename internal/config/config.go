// Package config loads CLI settings from flags, environment, .env and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ukaji3/assetprep-go/pkg/assetprep/output"
	"github.com/ukaji3/assetprep-go/pkg/assetprep/parser"
)

// Default file names and settings.
const (
	DefaultLogLevel  = "info"
	DefaultRenameDir = "."
	DefaultSheetIn   = "sheet.xml"
	DefaultSheetOut  = "result.lua"
	DefaultEnvFile   = ".env"
	ConfigName       = "assetprep"
	EnvPrefix        = "ASSETPREP"
)

// ConfigExts are the recognised config file extensions, in lookup order.
var ConfigExts = []string{".yaml", ".yml"}

// Config holds all CLI settings.
type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Rename   RenameConfig `mapstructure:"rename"`
	Sheet    SheetConfig  `mapstructure:"sheet"`
}

// RenameConfig configures the rename command.
type RenameConfig struct {
	DryRun bool `mapstructure:"dry_run"`
}

// SheetConfig configures the sheet command.
type SheetConfig struct {
	Output    string `mapstructure:"output"`
	Global    string `mapstructure:"global"`
	Workbook  string `mapstructure:"workbook"`
	RegionTag string `mapstructure:"region_tag"`
	ImageAttr string `mapstructure:"image_attr"`
}

// LoadOptions locates the optional configuration sources.
type LoadOptions struct {
	// ConfigFile is an explicit YAML file. When empty, assetprep.yaml is
	// looked up in ConfigDirs and may be absent.
	ConfigFile string
	// ConfigDirs are searched for assetprep.yaml (default ".").
	ConfigDirs []string
	// EnvFile is loaded into the environment first if it exists.
	EnvFile string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("rename.dry_run", false)
	v.SetDefault("sheet.output", DefaultSheetOut)
	v.SetDefault("sheet.global", "")
	v.SetDefault("sheet.workbook", "")
	v.SetDefault("sheet.region_tag", parser.DefaultRegionTag)
	v.SetDefault("sheet.image_attr", parser.DefaultImageAttr)
}

// BindFlags binds each config key to the named flag in flags.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, flag := range keys {
		f := flags.Lookup(flag)
		if f == nil {
			return fmt.Errorf("flag --%s not defined", flag)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// Load resolves the configuration. Precedence, highest first: changed
// flags bound to v, ASSETPREP_* environment variables (including those
// from the .env file), the YAML file, defaults.
func Load(v *viper.Viper, opts LoadOptions) (Config, error) {
	var cfg Config

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = findConfigFile(opts.ConfigDirs)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// findConfigFile returns the first assetprep.yaml or assetprep.yml found in
// dirs (default "."), or "" when there is none. Only these exact names are
// considered; a file called plain "assetprep" (such as the binary) is not.
func findConfigFile(dirs []string) string {
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	for _, d := range dirs {
		for _, ext := range ConfigExts {
			path := filepath.Join(d, ConfigName+ext)
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				return path
			}
		}
	}
	return ""
}

// Validate checks settings that cannot be checked by type alone.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.Sheet.Output == "" {
		return errors.New("sheet output path must not be empty")
	}
	if err := c.Sheet.LuaOptions().Validate(); err != nil {
		return err
	}
	if c.Sheet.RegionTag == "" || c.Sheet.ImageAttr == "" {
		return errors.New("region tag and image attribute must not be empty")
	}
	return nil
}

// ParseOptions returns the descriptor parser settings.
func (c SheetConfig) ParseOptions() parser.Options {
	return parser.Options{
		RegionTag: c.RegionTag,
		ImageAttr: c.ImageAttr,
	}
}

// LuaOptions returns the Lua writer settings.
func (c SheetConfig) LuaOptions() output.LuaOptions {
	return output.LuaOptions{Global: c.Global}
}
