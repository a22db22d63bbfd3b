package engine

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/lixenwraith/vi-mandel"

// packageImports returns the imports of the non-test files in dir
func packageImports(t *testing.T, dir string) []string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		t.Fatalf("glob %s: %v", dir, err)
	}

	fset := token.NewFileSet()
	var imports []string
	for _, f := range files {
		if strings.HasSuffix(f, "_test.go") {
			continue
		}
		af, err := parser.ParseFile(fset, f, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", f, err)
		}
		for _, spec := range af.Imports {
			path, _ := strconv.Unquote(spec.Path.Value)
			imports = append(imports, path)
		}
	}
	return imports
}

// The loop must build on hosts without an audio device stack
func TestEngine_DoesNotLinkAudioBackend(t *testing.T) {
	forbidden := []string{modulePath + "/audio", "github.com/gopxl/beep", "github.com/ebitengine/oto"}

	seen := map[string]bool{}
	queue := []string{"."}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]
		if seen[dir] {
			continue
		}
		seen[dir] = true

		for _, imp := range packageImports(t, dir) {
			for _, bad := range forbidden {
				if strings.HasPrefix(imp, bad) {
					t.Errorf("Package %s imports %s", dir, imp)
				}
			}
			if rel, ok := strings.CutPrefix(imp, modulePath+"/"); ok {
				queue = append(queue, filepath.Join("..", rel))
			}
		}
	}
}
