package testutil

import (
	"path/filepath"
	"testing"

	"github.com/google/renameio/v2"
)

// ClusterFile is the file name the program reads from its working directory.
const ClusterFile = "cluster.json"

// WriteClusterFile atomically writes content as cluster.json in dir and
// returns the full path.
func WriteClusterFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ClusterFile)
	if err := renameio.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ClusterDir creates a temp dir holding cluster.json with content and
// makes it the working directory for the rest of the test.
func ClusterDir(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	WriteClusterFile(t, dir, content)
	t.Chdir(dir)
	return dir
}

// EmptyDir makes a fresh temp dir without cluster.json the working directory.
func EmptyDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}
