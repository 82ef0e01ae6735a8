// Package config loads the optional project configuration: adf.yaml
// in the source directory, plus .env / environment overrides with the
// ADF_ prefix.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the project configuration file looked up in the
// source directory.
const ConfigFileName = "adf.yaml"

// EnvFileName is the optional dotenv file loaded before environment
// overrides apply.
const EnvFileName = ".env"

// ProjectConfig describes one ADF source directory.
type ProjectConfig struct {
	// Source is the module directory, relative to the config file's
	// own directory. Defaults to ".".
	Source string `yaml:"source,omitempty"`

	// Keywords are default task keywords merged with the ones given
	// on the command line.
	Keywords []string `yaml:"keywords,omitempty"`

	// LockFile overrides the lock file name.
	LockFile string `yaml:"lockfile,omitempty"`
}

// Load reads adf.yaml from dir. Returns ErrConfigNotFound when the
// file does not exist.
func Load(dir string) (*ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWithDefaults reads adf.yaml when present, applies .env and
// ADF_* environment overrides and fills in defaults. A missing config
// file is not an error.
func LoadWithDefaults(dir string) (*ProjectConfig, error) {
	cfg, err := Load(dir)
	if err != nil {
		if !errors.Is(err, ErrConfigNotFound) {
			return nil, err
		}
		cfg = &ProjectConfig{}
	}

	// .env values never override real environment variables.
	_ = godotenv.Load(filepath.Join(dir, EnvFileName))

	applyEnv(cfg)

	if cfg.Source == "" {
		cfg.Source = "."
	}
	return cfg, nil
}

// Environment overrides, highest precedence.
const (
	envSource   = "ADF_SOURCE"
	envKeywords = "ADF_KEYWORDS"
	envLockFile = "ADF_LOCKFILE"
)

func applyEnv(cfg *ProjectConfig) {
	if v := os.Getenv(envSource); v != "" {
		cfg.Source = v
	}
	if v := os.Getenv(envKeywords); v != "" {
		cfg.Keywords = splitKeywords(v)
	}
	if v := os.Getenv(envLockFile); v != "" {
		cfg.LockFile = v
	}
}

func splitKeywords(v string) []string {
	var out []string
	for _, k := range strings.Split(v, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
