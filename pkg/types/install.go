package types

// Dependency is one caller-supplied request to install a named package
// with optional flags. Declarations are consumed read-only; depot never
// mutates them.
type Dependency struct {
	Name string `json:"name"`
	// Options holds the dependency's own install flags. Each element may
	// itself contain several space-separated tokens; normalization into
	// single tokens happens at the validation boundary.
	Options []string `json:"options,omitempty"`
	// Override discards the spec's global options entirely in favor of
	// the dependency's own options, even when the global list is invalid.
	Override bool `json:"override,omitempty"`
}

// InstallSpec is the single input to an install run.
type InstallSpec struct {
	// Manager names the package manager preset to drive. Empty selects
	// the default (npm).
	Manager string `json:"manager,omitempty"`
	// GlobalOptions are prepended to every non-overriding dependency's
	// own options, in declaration order.
	GlobalOptions []string     `json:"globalOptions,omitempty"`
	Dependencies  []Dependency `json:"dependencies"`
	// Quiet disables the live console mirror of the run log. The zero
	// value keeps mirroring on, matching the manifest's verbose=true
	// default.
	Quiet bool `json:"quiet,omitempty"`
	// DryRun validates and builds commands but spawns nothing.
	DryRun bool `json:"dryRun,omitempty"`
}
