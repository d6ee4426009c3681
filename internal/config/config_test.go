package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// noEnvFile points Load at a .env path that does not exist.
func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), LoadOptions{
		ConfigDirs: []string{t.TempDir()},
		EnvFile:    noEnvFile(t),
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, expected %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.Sheet.Output != DefaultSheetOut {
		t.Errorf("Sheet.Output = %q, expected %q", cfg.Sheet.Output, DefaultSheetOut)
	}
	if cfg.Sheet.RegionTag != "SubTexture" || cfg.Sheet.ImageAttr != "imagePath" {
		t.Errorf("Unexpected descriptor names: %+v", cfg.Sheet)
	}
	if cfg.Rename.DryRun {
		t.Error("DryRun should default to false")
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	yaml := "log_level: debug\nsheet:\n  output: from_file.lua\n  global: fileGlobal\n  workbook: manifest.xlsx\n"
	if err := os.WriteFile(filepath.Join(dir, "assetprep.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv("ASSETPREP_SHEET_GLOBAL", "envGlobal")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("output", DefaultSheetOut, "")
	v := viper.New()
	if err := BindFlags(v, fs, map[string]string{"sheet.output": "output"}); err != nil {
		t.Fatalf("BindFlags failed: %v", err)
	}
	if err := fs.Parse([]string{"--output", "from_flag.lua"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cfg, err := Load(v, LoadOptions{ConfigDirs: []string{dir}, EnvFile: noEnvFile(t)})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		field string
		got   string
		want  string
	}{
		{"log_level", cfg.LogLevel, "debug"},
		{"sheet.output", cfg.Sheet.Output, "from_flag.lua"},
		{"sheet.global", cfg.Sheet.Global, "envGlobal"},
		{"sheet.workbook", cfg.Sheet.Workbook, "manifest.xlsx"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, expected %q", tt.field, tt.got, tt.want)
		}
	}
}

func TestLoadIgnoresExtensionlessConfigName(t *testing.T) {
	dir := t.TempDir()
	// Something like the built binary sitting next to the assets.
	binary := []byte("\x7fELF\x02\x01\x01\x00: not: [yaml")
	if err := os.WriteFile(filepath.Join(dir, "assetprep"), binary, 0755); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(viper.New(), LoadOptions{ConfigDirs: []string{dir}, EnvFile: noEnvFile(t)})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Sheet.Output != DefaultSheetOut {
		t.Errorf("Sheet.Output = %q, expected %q", cfg.Sheet.Output, DefaultSheetOut)
	}
}

func TestLoadYmlExtension(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "assetprep"), []byte("\x7fELF"), 0755); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "assetprep.yml"), []byte("sheet:\n  global: fromYml\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(viper.New(), LoadOptions{ConfigDirs: []string{dir}, EnvFile: noEnvFile(t)})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Sheet.Global != "fromYml" {
		t.Errorf("Sheet.Global = %q, expected 'fromYml'", cfg.Sheet.Global)
	}
}

func TestLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("ASSETPREP_SHEET_REGION_TAG=frame\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("ASSETPREP_SHEET_REGION_TAG") })

	cfg, err := Load(viper.New(), LoadOptions{ConfigDirs: []string{t.TempDir()}, EnvFile: envFile})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Sheet.RegionTag != "frame" {
		t.Errorf("RegionTag = %q, expected 'frame'", cfg.Sheet.RegionTag)
	}
}

func TestLoadExplicitConfigMissing(t *testing.T) {
	_, err := Load(viper.New(), LoadOptions{
		ConfigFile: filepath.Join(t.TempDir(), "nope.yaml"),
		EnvFile:    noEnvFile(t),
	})
	if err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}

func TestBindFlagsUnknownFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(viper.New(), fs, map[string]string{"sheet.output": "output"}); err == nil {
		t.Error("Expected error for undefined flag")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		LogLevel: "info",
		Sheet:    SheetConfig{Output: "r.lua", RegionTag: "SubTexture", ImageAttr: "imagePath"},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"valid global", func(c *Config) { c.Sheet.Global = "sprites" }, false},
		{"bad level", func(c *Config) { c.LogLevel = "chatty" }, true},
		{"keyword global", func(c *Config) { c.Sheet.Global = "end" }, true},
		{"dashed global", func(c *Config) { c.Sheet.Global = "my-sheet" }, true},
		{"empty output", func(c *Config) { c.Sheet.Output = "" }, true},
		{"empty tag", func(c *Config) { c.Sheet.RegionTag = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
