package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir replicates t.Chdir (added in Go 1.24) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func setupDirs(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	workDir := t.TempDir()
	chdir(t, workDir)
	return workDir
}

func TestLoad_Defaults(t *testing.T) {
	setupDirs(t)
	t.Setenv("BRAINSENTRY_API_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_ProjectFile(t *testing.T) {
	workDir := setupDirs(t)
	t.Setenv("BRAINSENTRY_API_URL", "")

	path := filepath.Join(workDir, ProjectFileName)
	require.NoError(t, SaveProjectFile(path, &ProjectConfig{APIURL: "https://sentry.example.com/api"}))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://sentry.example.com/api", cfg.APIURL)
}

func TestLoad_EnvOverridesProjectFile(t *testing.T) {
	workDir := setupDirs(t)

	path := filepath.Join(workDir, ProjectFileName)
	require.NoError(t, SaveProjectFile(path, &ProjectConfig{APIURL: "https://project.example.com"}))

	t.Setenv("BRAINSENTRY_API_URL", "https://env.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.APIURL)
}

func TestFindProjectFile_SearchesParents(t *testing.T) {
	workDir := setupDirs(t)

	path := filepath.Join(workDir, ProjectFileName)
	require.NoError(t, SaveProjectFile(path, &ProjectConfig{APIURL: "https://x.example.com"}))

	subDir := filepath.Join(workDir, "a", "b")
	require.NoError(t, os.MkdirAll(subDir, 0755))
	chdir(t, subDir)

	found, err := FindProjectFile()
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindProjectFile_NotFound(t *testing.T) {
	setupDirs(t)

	_, err := FindProjectFile()
	assert.Error(t, err)
}
