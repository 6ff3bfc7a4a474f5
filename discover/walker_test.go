package discover

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, p)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("x = 1\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func baseNames(paths []string) []string {
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	sort.Strings(names)
	return names
}

func TestWalkDir(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"app.rb",
		"lib/util.rb",
		"lib/util_spec.rb",
		"README.md",
		"vendor/gem.rb",
		".hidden/secret.rb",
	)

	t.Run("finds ruby files only", func(t *testing.T) {
		files, err := ListFiles(root, WalkOptions{})
		if err != nil {
			t.Fatalf("ListFiles() error = %v", err)
		}
		got := baseNames(files)
		want := []string{"app.rb", "gem.rb", "secret.rb", "util.rb", "util_spec.rb"}
		if len(got) != len(want) {
			t.Fatalf("ListFiles() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("ListFiles() = %v, want %v", got, want)
				break
			}
		}
	})

	t.Run("skips vendor hidden and specs", func(t *testing.T) {
		opts := WalkOptions{SkipSpecs: true, SkipVendor: true, SkipHidden: true}
		files, err := ListFiles(root, opts)
		if err != nil {
			t.Fatalf("ListFiles() error = %v", err)
		}
		got := baseNames(files)
		want := []string{"app.rb", "util.rb"}
		if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("ListFiles() = %v, want %v", got, want)
		}
	})

	t.Run("skips excluded directories", func(t *testing.T) {
		opts := WalkOptions{ExcludeDirs: []string{"lib", "vendor", ".hidden"}}
		files, err := ListFiles(root, opts)
		if err != nil {
			t.Fatalf("ListFiles() error = %v", err)
		}
		got := baseNames(files)
		if len(got) != 1 || got[0] != "app.rb" {
			t.Errorf("ListFiles() = %v, want [app.rb]", got)
		}
	})
}
