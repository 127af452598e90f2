// Package testutil exposes the markup fixtures shared by the package tests.
package testutil

import (
	"embed"
	"io/fs"
	"path"
	"strings"
	"testing"
)

//go:embed testdata
var testdataFS embed.FS

// ReadTestData returns the content of the embedded fixture name, failing t
// when it does not exist.
func ReadTestData(t testing.TB, name string) []byte {
	t.Helper()
	data, err := fs.ReadFile(testdataFS, path.Join("testdata", name))
	if err != nil {
		t.Fatalf("failed to read test data file '%s': %v", name, err)
	}
	return data
}

// Fixtures returns the names of the embedded fixtures ending in ext, sorted.
func Fixtures(ext string) []string {
	entries, err := fs.ReadDir(testdataFS, "testdata")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
			names = append(names, e.Name())
		}
	}
	return names
}
