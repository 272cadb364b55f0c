// Package manager defines the package-manager presets depot can drive
// and builds their install command lines. A preset pairs a manager name
// with its install verb; depot treats the manager CLI itself as an
// opaque child process.
package manager

import (
	"sort"
	"strings"

	"github.com/arthur-debert/depot/pkg/errors"
)

// Manager is one package-manager preset. The zero value is not usable;
// obtain instances through New or Default.
type Manager struct {
	name string
	verb string
}

// DefaultName is the preset used when a spec names no manager.
const DefaultName = "npm"

var presets = map[string]Manager{
	"npm":  {name: "npm", verb: "npm install"},
	"pnpm": {name: "pnpm", verb: "pnpm add"},
	"yarn": {name: "yarn", verb: "yarn add"},
	"bun":  {name: "bun", verb: "bun add"},
}

// New returns the preset for the given name. The empty string selects
// the default manager. Unknown names yield an UNKNOWN_MANAGER error.
func New(name string) (Manager, error) {
	if name == "" {
		return Default(), nil
	}
	m, ok := presets[name]
	if !ok {
		return Manager{}, errors.Newf(errors.ErrUnknownManager, "unknown package manager: %q", name).
			WithDetail("manager", name).
			WithDetail("known", Names())
	}
	return m, nil
}

// Default returns the npm preset.
func Default() Manager {
	return presets[DefaultName]
}

// Names lists the known preset names in stable order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the preset's name.
func (m Manager) Name() string {
	return m.name
}

// InstallVerb returns the manager's install invocation, e.g.
// "npm install".
func (m Manager) InstallVerb() string {
	return m.verb
}

// BuildCommand composes the full install command for one dependency:
// the install verb, the validated name, then the validated options
// joined by single spaces. Option order is preserved exactly as given;
// no deduplication or reordering happens here, so when the underlying
// manager lets later flags override earlier ones, composition order
// decides which flag wins. No trailing whitespace when options are
// empty.
func (m Manager) BuildCommand(name string, options []string) string {
	parts := make([]string, 0, 2+len(options))
	parts = append(parts, m.verb, name)
	parts = append(parts, options...)
	return strings.Join(parts, " ")
}
