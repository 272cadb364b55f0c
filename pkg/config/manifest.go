package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/depot/pkg/errors"
	"github.com/arthur-debert/depot/pkg/logging"
	"github.com/arthur-debert/depot/pkg/types"
)

var log = logging.GetLogger("config")

// rawManifest mirrors the on-disk manifest before normalization.
// Option values and dependency entries are interface{} because the
// manifest grammar allows both string and array forms; normalization
// into the InstallSpec shapes happens below.
type rawManifest struct {
	Manager       string        `toml:"manager" yaml:"manager"`
	GlobalOptions interface{}   `toml:"global_options" yaml:"global_options"`
	Verbose       *bool         `toml:"verbose" yaml:"verbose"`
	Dependencies  []interface{} `toml:"dependencies" yaml:"dependencies"`
}

// LoadManifest reads a project manifest and produces the InstallSpec
// it declares. TOML and YAML manifests are equivalent; the format is
// picked from the file extension.
func LoadManifest(path string) (*types.InstallSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "failed to read manifest %s", path)
	}

	spec, err := ParseManifest(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "invalid manifest %s", path)
	}

	log.Debug().
		Str("path", path).
		Int("dependencies", len(spec.Dependencies)).
		Str("manager", spec.Manager).
		Msg("Loaded manifest")

	return spec, nil
}

// ParseManifest decodes manifest bytes in the format implied by ext
// (".yaml"/".yml" for YAML, anything else TOML) and normalizes the
// string-vs-array dualities into the canonical InstallSpec.
func ParseManifest(data []byte, ext string) (*types.InstallSpec, error) {
	var raw rawManifest

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrManifestParse, "YAML parse failed")
		}
	default:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrManifestParse, "TOML parse failed")
		}
	}

	globalOptions, err := stringList(raw.GlobalOptions)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "global_options")
	}

	deps := make([]types.Dependency, 0, len(raw.Dependencies))
	for i, entry := range raw.Dependencies {
		dep, err := dependency(entry)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestParse, "dependencies[%d]", i)
		}
		deps = append(deps, dep)
	}

	// verbose defaults to true when the manifest omits it.
	quiet := false
	if raw.Verbose != nil {
		quiet = !*raw.Verbose
	}

	return &types.InstallSpec{
		Manager:       raw.Manager,
		GlobalOptions: globalOptions,
		Dependencies:  deps,
		Quiet:         quiet,
	}, nil
}

// dependency normalizes one manifest entry: either a bare name string
// or a table with name, options, and override keys.
func dependency(entry interface{}) (types.Dependency, error) {
	switch v := entry.(type) {
	case string:
		return types.Dependency{Name: v}, nil
	case map[string]interface{}:
		name, ok := v["name"].(string)
		if !ok {
			return types.Dependency{}, errors.New(errors.ErrManifestParse, "dependency table needs a name string")
		}
		options, err := stringList(v["options"])
		if err != nil {
			return types.Dependency{}, errors.Wrapf(err, errors.ErrManifestParse, "options of %s", name)
		}
		override := false
		if o, present := v["override"]; present {
			b, ok := o.(bool)
			if !ok {
				return types.Dependency{}, errors.Newf(errors.ErrManifestParse, "override of %s must be a boolean", name)
			}
			override = b
		}
		return types.Dependency{Name: name, Options: options, Override: override}, nil
	default:
		return types.Dependency{}, errors.Newf(errors.ErrManifestParse, "dependency entries are names or tables, got %T", entry)
	}
}

// stringList normalizes an option value: absent stays nil, a single
// string becomes a one-element list (token splitting happens at the
// validation boundary), and arrays must hold only strings.
func stringList(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.Newf(errors.ErrManifestParse, "expected string entries, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrManifestParse, "expected string or array of strings, got %T", value)
	}
}
