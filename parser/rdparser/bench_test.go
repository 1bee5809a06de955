package rdparser

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/homonoid/hyperlisp/parser/ast"
)

const fixtureDir = "testdata"

func BenchmarkParser(b *testing.B) {
	files, err := filepath.Glob(filepath.Join(fixtureDir, "*.hl"))
	if err != nil {
		b.Fatalf("Failed to list test fixtures: %v", err)
	}
	sort.Strings(files) // should be redundant
	for _, path := range files {
		text, err := os.ReadFile(path)
		if err != nil {
			b.Fatalf("Failed to read test fixture: %v", err)
		}
		b.Run(filepath.Base(path), func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				_, err := NewReader().Read(ast.NewSource(path, string(text)))
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func TestFixtures(t *testing.T) {
	files, err := filepath.Glob(filepath.Join(fixtureDir, "*.hl"))
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range files {
		text, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		root, err := NewReader().Read(ast.NewSource(path, string(text)))
		if err != nil {
			t.Errorf("%s: %v", path, err)
			continue
		}
		// printing and reading a tree again yields the same tree
		again, err := NewReader().Read(ast.NewSource(path, root.String()))
		if err != nil {
			t.Errorf("%s: %v", path, err)
			continue
		}
		if root.String() != again.String() {
			t.Errorf("%s: tree changed after printing: %s", path, again.String())
		}
	}
}
