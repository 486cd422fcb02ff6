package architecture_test

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const modulePath = "dwex-demo"

type layerRule struct {
	sourcePrefix string
	forbidden    []string
	hint         string
}

func internalPkgs(names ...string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, modulePath+"/internal/"+n)
	}
	return out
}

var architectureRules = []layerRule{
	{
		sourcePrefix: modulePath + "/internal/domain",
		forbidden: append(internalPkgs("router", "shell", "session", "workspace", "ui", "db", "middleware", "app", "demo", "config"),
			modulePath+"/cmd", modulePath+"/pkg/cli"),
		hint: "domain may only import domain",
	},
	{
		sourcePrefix: modulePath + "/internal/demo",
		forbidden: append(internalPkgs("domain", "router", "shell", "session", "workspace", "ui", "db", "middleware", "app", "config"),
			modulePath+"/cmd", modulePath+"/pkg/cli"),
		hint: "demo data is self-contained",
	},
	{
		sourcePrefix: modulePath + "/internal/router",
		forbidden:    internalPkgs("shell", "session", "workspace", "ui", "db", "middleware", "app"),
		hint:         "router may only import domain",
	},
	{
		sourcePrefix: modulePath + "/internal/shell",
		forbidden:    internalPkgs("session", "workspace", "ui", "db", "middleware", "app", "config"),
		hint:         "shell coordinators depend on domain, router and each other",
	},
	{
		sourcePrefix: modulePath + "/internal/workspace",
		forbidden:    internalPkgs("shell", "session", "ui", "db", "middleware", "app"),
		hint:         "workspace config depends on domain only",
	},
	{
		sourcePrefix: modulePath + "/internal/session",
		forbidden:    internalPkgs("ui", "db", "middleware", "app", "config"),
		hint:         "session composes shell coordinators; storage arrives through theme.Store",
	},
	{
		sourcePrefix: modulePath + "/internal/db",
		forbidden: append(internalPkgs("router", "shell/tabs", "shell/splitview", "shell/keys", "session", "workspace", "ui", "middleware", "app"),
			modulePath+"/cmd", modulePath+"/pkg/cli"),
		hint: "db should depend on domain, shell/theme and db-local packages",
	},
	{
		sourcePrefix: modulePath + "/internal/middleware",
		forbidden:    internalPkgs("ui", "db", "app"),
		hint:         "middleware should depend on domain, session and middleware-local packages",
	},
	{
		sourcePrefix: modulePath + "/internal/ui",
		forbidden: append(internalPkgs("db", "app", "config"),
			modulePath+"/cmd", modulePath+"/pkg/cli"),
		hint: "ui reaches storage through domain.PreferenceRepository",
	},
}

func collectGoFiles(root string) ([]string, error) {
	files := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".go") {
			files = append(files, filepath.ToSlash(path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func repoRootDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}

func internalRootDir() string {
	return filepath.Join(repoRootDir(), "internal")
}

func findRule(sourcePkg string) (layerRule, bool) {
	for _, rule := range architectureRules {
		if hasPathPrefix(sourcePkg, rule.sourcePrefix) {
			return rule, true
		}
	}
	return layerRule{}, false
}

func violatesRule(importPath string, forbidden []string) bool {
	for _, prefix := range forbidden {
		if hasPathPrefix(importPath, prefix) {
			return true
		}
	}
	return false
}

func matchingForbiddenPrefix(importPath string, forbidden []string) string {
	for _, prefix := range forbidden {
		if hasPathPrefix(importPath, prefix) {
			return prefix
		}
	}
	return ""
}

func hasPathPrefix(value string, prefix string) bool {
	return value == prefix || strings.HasPrefix(value, prefix+"/")
}

func packageImportPath(file string) string {
	path := filepath.ToSlash(file)
	idx := strings.Index(path, "/internal/")
	if idx >= 0 {
		return modulePath + path[idx:]
	}
	dir := filepath.Dir(path)
	return modulePath + "/" + dir
}

func shouldSkipGeneratedFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasSuffix(base, ".gen.go") || strings.HasSuffix(base, "_gen.go") || strings.HasSuffix(base, ".sql.go") {
		return true
	}
	return false
}

func isTestFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, "_test.go")
}

func shouldSkipProductionGovernanceFile(path string) bool {
	if isTestFile(path) {
		return true
	}
	return shouldSkipGeneratedFile(path)
}

func parseImports(t *testing.T, file string) []string {
	t.Helper()

	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
	require.NoErrorf(t, err, "parse imports for %s", file)

	imports := make([]string, 0, len(parsed.Imports))
	for _, imp := range parsed.Imports {
		imports = append(imports, strings.Trim(imp.Path.Value, "\""))
	}
	return imports
}

func relToRepoRoot(path string) string {
	rel, err := filepath.Rel(repoRootDir(), path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
