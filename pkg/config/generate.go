package config

import (
	"strings"
)

// starterManifest is the reference project manifest written by
// depot init. Everything is commented out so a fresh manifest is
// valid and installs nothing until edited.
const starterManifest = `# depot project manifest.
# Declare the dependencies depot installs for this project, then run
# "depot install". See "depot help manifest" for the full grammar.

# Package manager preset: npm, pnpm, yarn, or bun.
manager = "npm"

# Mirror the run log to the console while installing.
verbose = true

# Flags applied to every dependency that does not set override = true.
# String form ("--no-fund --no-audit") and array form work alike.
global_options = []

[[dependencies]]
name = "left-pad"
options = "--save-exact"

[[dependencies]]
name = "typescript"
options = ["--save-dev"]
override = true
`

// GenerateManifestContent generates the starter manifest content with
// commented values
func GenerateManifestContent() string {
	return commentOutManifestValues(starterManifest)
}

// commentOutManifestValues comments out every non-comment, non-blank
// line, table headers included. A dependency table with its name
// commented out would be a parse error, so headers cannot stay live
// the way plain config sections could.
func commentOutManifestValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
