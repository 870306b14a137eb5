package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{"job_url": "https://linkedin.com/jobs/view/1", "port": 9090, "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://linkedin.com/jobs/view/1", cfg.JobURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, "{not json")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveInputs(t *testing.T) {
	jobPath := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("posting"), 0644))

	cfg := &Config{Job: jobPath, JobURL: "https://example.com"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_PortRange(t *testing.T) {
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.NoError(t, (&Config{Port: 8080}).Validate())
}

func TestValidate_NegativeTimeout(t *testing.T) {
	assert.Error(t, (&Config{TimeoutSec: -5}).Validate())
}

func TestValidate_MissingFiles(t *testing.T) {
	assert.Error(t, (&Config{Job: "/nonexistent/job.txt"}).Validate())
	assert.Error(t, (&Config{Resume: "/nonexistent/resume.txt"}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Job: "cli-job.txt"}
	defaults := Config{Job: "file-job.txt", Resume: "file-resume.txt", Port: 9090, TimeoutSec: 30}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "cli-job.txt", merged.Job, "explicit value wins")
	assert.Equal(t, "file-resume.txt", merged.Resume)
	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, 30, merged.TimeoutSec)
}
