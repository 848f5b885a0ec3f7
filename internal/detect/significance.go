package detect

import "strings"

// Indicator catalog for architecturally significant paths, grouped by
// what the path represents. Matching is case-sensitive and does not
// normalize separators; callers supply forward-slash repo-relative paths.

// Build and dependency manifests across common ecosystems.
var manifestIndicators = []string{
	"package.json",
	"go.mod",
	"Cargo.toml",
	"pom.xml",
	"build.gradle",
	"pyproject.toml",
	"requirements.txt",
	"Gemfile",
	"composer.json",
	"pubspec.yaml",
	"CMakeLists.txt",
	"Dockerfile",
	"docker-compose.yml",
	"tsconfig.json",
}

// Language entry points.
var entrypointIndicators = []string{
	"main.go",
	"main.py",
	"main.rs",
	"main.ts",
	"main.js",
	"index.ts",
	"index.js",
	"app.py",
	"server.ts",
	"server.js",
}

// Architecture documentation paths.
var docIndicators = []string{
	"ARCHITECTURE.md",
	"docs/architecture",
	"docs/adr",
	"docs/decisions",
	"adr/",
}

// Core, infrastructure, and framework directory prefixes.
var infraIndicators = []string{
	"src/core/",
	"src/infra/",
	"src/infrastructure/",
	"src/framework/",
	"internal/",
	"pkg/",
}

// Matcher decides whether a file path is architecturally significant by
// checking it against a fixed indicator catalog. A Matcher is immutable
// after construction and safe for concurrent use.
type Matcher struct {
	indicators []string
}

// NewMatcher creates a Matcher with the built-in catalog.
func NewMatcher() *Matcher {
	return NewMatcherExtra(nil)
}

// NewMatcherExtra creates a Matcher with the built-in catalog plus
// repo-specific indicators, typically sourced from POLICY.toml.
func NewMatcherExtra(extra []string) *Matcher {
	catalog := make([]string, 0,
		len(manifestIndicators)+len(entrypointIndicators)+len(docIndicators)+len(infraIndicators)+len(extra))
	catalog = append(catalog, manifestIndicators...)
	catalog = append(catalog, entrypointIndicators...)
	catalog = append(catalog, docIndicators...)
	catalog = append(catalog, infraIndicators...)
	catalog = append(catalog, extra...)

	return &Matcher{indicators: catalog}
}

// IsArchitecturallySignificant reports whether the path contains any
// catalog indicator as a substring or ends with one as a suffix, so a
// recognized manifest matches at any nesting depth.
func (m *Matcher) IsArchitecturallySignificant(path string) bool {
	for _, indicator := range m.indicators {
		if strings.Contains(path, indicator) || strings.HasSuffix(path, indicator) {
			return true
		}
	}
	return false
}
