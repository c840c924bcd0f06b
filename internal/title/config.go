package title

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Location of the optional per-directory configuration file.
const (
	ConfigDir  = ".decree"
	ConfigFile = "config.toml"
)

// Config holds the title policy read from <dir>/.decree/config.toml.
type Config struct {
	Rename bool
}

// DefaultConfig returns the policy used when no config file exists.
func DefaultConfig() Config {
	return Config{Rename: true}
}

// ConfigPath returns the config file location for dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigDir, ConfigFile)
}

// LoadConfig reads the [title] table of the config file in dir. A missing
// file yields DefaultConfig; a file that cannot be read or parsed is an
// ErrConfigMalformed error naming the path.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()
	path := ConfigPath(dir)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, configMalformed(err, "Invalid configuration in %s: %v", path, err)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return cfg, configMalformed(err, "Invalid configuration in %s: %v", path, err)
	}

	raw, ok := doc["title"]
	if !ok {
		return cfg, nil
	}
	table, ok := raw.(map[string]any)
	if !ok {
		return cfg, configMalformed(nil, "Invalid configuration in %s: [title] must be a table", path)
	}
	if v, ok := table["rename"]; ok {
		cfg.Rename = coerceBool(v)
	}
	return cfg, nil
}

// coerceBool accepts booleans, a fixed set of truthy strings, and falls back
// to truthiness for anything else (zero numbers and empty collections are false).
func coerceBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(t) {
		case "1", "true", "yes", "on":
			return true
		}
		return false
	case int64:
		return t != 0
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	case nil:
		return false
	default:
		return true
	}
}
