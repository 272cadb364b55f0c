package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/depot/pkg/errors"
	"github.com/arthur-debert/depot/pkg/paths"
)

// EnvPrefix namespaces depot's environment overrides, e.g.
// DEPOT_MANAGER=pnpm or DEPOT_VERBOSE=false.
const EnvPrefix = "DEPOT_"

// Config holds depot's application-level settings. These are defaults
// for runs; a project manifest can override manager and global options
// for its own installs.
type Config struct {
	// Manager is the default package manager preset.
	Manager string `koanf:"manager"`
	// Verbose mirrors the run log to the console.
	Verbose bool `koanf:"verbose"`
	// Format selects the output rendering: auto, term, plain, or json.
	Format string `koanf:"format"`
	// GlobalOptions apply to every non-overriding dependency when the
	// manifest declares none of its own.
	GlobalOptions []string `koanf:"global_options"`
}

// Load builds the application config by layering, in order: embedded
// defaults, the user config file under the depot XDG config directory
// (depot.toml or depot.yaml), DEPOT_* environment variables, and
// finally the given overrides map (typically set command-line flags).
func Load(p paths.Paths, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	// 2. User config file, first match wins
	for _, name := range []string{"depot.toml", "depot.yaml"} {
		path := filepath.Join(p.ConfigDir(), name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		break
	}

	// 3. Environment variables
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Command-line overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// Default returns the embedded defaults without touching the
// filesystem or environment.
func Default() *Config {
	return &Config{
		Manager: "npm",
		Verbose: true,
		Format:  "auto",
	}
}

// parserFor picks the koanf parser matching a config file's extension.
func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
