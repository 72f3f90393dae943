package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cohort.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCohortManifest(t *testing.T) {
	path := writeManifest(t, `{
		"entries": [
			{"stream_ref": "s1", "recipient": "cosmos1aaa"},
			{"stream_ref": "s2", "recipient": "cosmos1bbb"}
		]
	}`)

	m, err := loadCohortManifest(path)
	require.NoError(t, err)
	require.Equal(t, []string{"s1", "s2"}, m.refs())
}

func TestLoadCohortManifestEmpty(t *testing.T) {
	path := writeManifest(t, `{"entries": []}`)

	_, err := loadCohortManifest(path)
	require.Error(t, err)
}

func TestCohortManifestPageClamps(t *testing.T) {
	path := writeManifest(t, `{
		"entries": [
			{"stream_ref": "s1", "recipient": "cosmos1aaa"},
			{"stream_ref": "s2", "recipient": "cosmos1bbb"},
			{"stream_ref": "s3", "recipient": "cosmos1ccc"}
		]
	}`)
	m, err := loadCohortManifest(path)
	require.NoError(t, err)

	require.Len(t, m.page(0, 2), 2)
	require.Len(t, m.page(2, 2), 1)
	require.Len(t, m.page(3, 2), 0)
	require.Nil(t, m.page(5, 2))
}
