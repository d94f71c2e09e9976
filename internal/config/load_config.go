package config

import (
	_ "embed"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"setup-build-env/internal/logger"
)

// AppName names the user configuration file and its XDG directory.
const AppName = "setup-build-env"

//go:embed defaults.yaml
var defaultsYAML []byte

// Default returns the built-in configuration. It panics if the embedded
// defaults cannot be decoded, which only happens on a broken build.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		panic("Failed to unmarshal embedded defaults.yaml: " + err.Error())
	}
	return &cfg
}

// Load returns the built-in configuration with the file at path on fs decoded
// on top. An empty path yields the defaults. YAML (.yaml, .yml) and TOML (.toml)
// files are supported; values present in the file replace the defaults, lists
// are replaced wholesale.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing YAML config %s", path)
		}
	case ".toml":
		if err := toml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing TOML config %s", path)
		}
	default:
		return nil, errors.WithHint(
			errors.Newf("unsupported config format %q", ext),
			"use a .yaml, .yml or .toml file",
		)
	}

	logger.Debug("[DEBUG] Loaded config overrides from %s\n", path)
	return cfg, cfg.Validate()
}

// Resolve picks the configuration file for a run. An explicit path always wins.
// Otherwise setup-build-env.yaml in dir is used if present, then the user's XDG
// config file (setup-build-env/config.yaml). An empty result means defaults only.
func Resolve(fs afero.Fs, explicit, dir string) string {
	if explicit != "" {
		return explicit
	}

	local := filepath.Join(dir, AppName+".yaml")
	if ok, _ := afero.Exists(fs, local); ok {
		logger.Debug("[DEBUG] Using project config %s\n", local)
		return local
	}

	user := userConfigPath()
	if ok, _ := afero.Exists(fs, user); ok {
		logger.Debug("[DEBUG] Using user config %s\n", user)
		return user
	}
	return ""
}

// userConfigPath is the per-user config file under the XDG config home. It is
// a plain path; nothing is created.
func userConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}
