// Package iotesting provides shared test utilities.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gnlineage/pkg/config"
	"github.com/gnames/gnlineage/pkg/lineage"
	"github.com/gnames/gnlineage/pkg/taxonomy"
)

// DumpDir returns the absolute path to the test taxonomy dump.
//
// The dump has the following tree (h marks hidden nodes):
//
//	1 root
//	└─ 131567 cellular organisms (h)
//	   ├─ 2759 Eukaryota
//	   │  └─ 33154 Opisthokonta (h)
//	   │     └─ 33208 Metazoa
//	   │        └─ 7711 Chordata
//	   │           └─ 40674 Mammalia
//	   │              └─ 9443 Primates
//	   │                 └─ 314295 Hominoidea (h)
//	   │                    └─ 9604 Hominidae
//	   │                       ├─ 9605 Homo
//	   │                       │  └─ 9606 Homo sapiens
//	   │                       └─ 9596 Pan
//	   │                          └─ 9598 Pan troglodytes
//	   └─ 2 Bacteria
//	      └─ 1224 Pseudomonadota
//	         └─ 1236 Gammaproteobacteria
//	            └─ 561 Escherichia
//	               └─ 562 Escherichia coli
func DumpDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", "ncbi")
}

// GetTestConfig returns a configuration that points to the test dump
// and keeps logs and config files inside a temporary home directory.
func GetTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDumpDir(DumpDir()),
		config.OptHomeDir(t.TempDir()),
		config.OptWithProgress(false),
	})
	return cfg
}

// Resolver loads the test dump into a lineage.Resolver.
func Resolver(t *testing.T) *lineage.Resolver {
	t.Helper()
	ctx := context.Background()
	dir := DumpDir()

	namesPath := filepath.Join(dir, "names.dmp")
	f, err := os.Open(namesPath)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", namesPath, err)
	}
	defer f.Close()
	names, err := taxonomy.ReadNames(ctx, f, namesPath)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", namesPath, err)
	}

	nodesPath := filepath.Join(dir, "nodes.dmp")
	g, err := os.Open(nodesPath)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", nodesPath, err)
	}
	defer g.Close()
	tree, err := taxonomy.ReadNodes(ctx, g, nodesPath, taxonomy.DefaultRootID)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", nodesPath, err)
	}

	return lineage.NewResolver(names, tree)
}

// WriteDump writes names.dmp and nodes.dmp with the given content into
// a temporary directory and returns the directory.
func WriteDump(t *testing.T, names, nodes string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{"names.dmp": names, "nodes.dmp": nodes}
	for k, v := range files {
		err := os.WriteFile(filepath.Join(dir, k), []byte(v), 0644)
		if err != nil {
			t.Fatalf("Failed to write %s: %v", k, err)
		}
	}
	return dir
}
