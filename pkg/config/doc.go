// Package config handles configuration management for depot.
// Application settings are layered from embedded defaults, the user's
// XDG config file, DEPOT_* environment variables, and command-line
// overrides. Project manifests (depot.toml / depot.yaml) are loaded
// separately and produce the InstallSpec consumed by the installer.
package config
