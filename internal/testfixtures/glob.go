// Package testfixtures discovers golden end-to-end scenario fixtures
// for scalp's own tests. It is test-support tooling, not part of the
// public API.
package testfixtures

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Scenario is one golden end-to-end fixture: a grammar description is
// out of scope here (scenarios are hand-built in Go within the test
// that loads them), so only the fixture's own path and raw bytes are
// returned; callers unmarshal as they see fit.
type Scenario struct {
	Path string
	Data []byte
}

// Find walks root for files matching pattern (a doublestar pattern,
// e.g. "**/*.scenario.json"), returning them sorted by path so test
// output is stable across filesystems.
func Find(root, pattern string) ([]Scenario, error) {
	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	out := make([]Scenario, 0, len(matches))
	for _, m := range matches {
		data, err := os.ReadFile(filepath.Join(root, m))
		if err != nil {
			return nil, err
		}
		out = append(out, Scenario{Path: filepath.Join(root, m), Data: data})
	}
	return out, nil
}
