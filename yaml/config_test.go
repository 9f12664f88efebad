package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/coursecheck"
	"github.com/fwojciec/coursecheck/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults for empty document", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.DecodeConfig(strings.NewReader(""))

		require.NoError(t, err)
		assert.Equal(t, coursecheck.DefaultConfig(), cfg)
	})

	t.Run("overrides only keys present", func(t *testing.T) {
		t.Parallel()

		input := `
threshold: 80
program_b:
  name: FinTech Master
  path: exports/fintech.html
  format: html
  selector: "#courses"
`

		cfg, err := yaml.DecodeConfig(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, 80, cfg.Threshold)
		assert.Equal(t, coursecheck.DefaultModel, cfg.Model)
		assert.Equal(t, "SIM", cfg.ProgramA.Name)
		assert.Equal(t, "FinTech Master", cfg.ProgramB.Name)
		assert.Equal(t, "exports/fintech.html", cfg.ProgramB.Path)
		assert.Equal(t, coursecheck.FormatHTML, cfg.ProgramB.Layout.Format)
		assert.Equal(t, "#courses", cfg.ProgramB.Layout.Selector)
		assert.Equal(t, "Name", cfg.ProgramB.Layout.NameColumn)
	})

	t.Run("accepts zero threshold", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.DecodeConfig(strings.NewReader("threshold: 0\n"))

		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Threshold)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeConfig(strings.NewReader("treshold: 80\n"))

		require.Error(t, err)
		assert.Equal(t, coursecheck.EINVALID, coursecheck.ErrorCode(err))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeConfig(strings.NewReader("threshold: [80\n"))

		require.Error(t, err)
		assert.Equal(t, coursecheck.EINVALID, coursecheck.ErrorCode(err))
	})

	t.Run("validates the merged config", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeConfig(strings.NewReader("threshold: 101\n"))

		require.Error(t, err)
		assert.Equal(t, coursecheck.EINVALID, coursecheck.ErrorCode(err))
		assert.Contains(t, coursecheck.ErrorMessage(err), "threshold")
	})

	t.Run("rejects programs with the same name", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeConfig(strings.NewReader("program_b:\n  name: SIM\n"))

		require.Error(t, err)
		assert.Equal(t, coursecheck.EINVALID, coursecheck.ErrorCode(err))
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative paths against the file directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "coursecheck.yaml")
		content := "db: state/catalogs.db\nprogram_a:\n  path: sim.csv\nprogram_b:\n  path: /data/fintech.csv\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := yaml.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "state", "catalogs.db"), cfg.DBPath)
		assert.Equal(t, filepath.Join(dir, "sim.csv"), cfg.ProgramA.Path)
		assert.Equal(t, "/data/fintech.csv", cfg.ProgramB.Path)
	})

	t.Run("keeps default catalog paths unresolved", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "coursecheck.yaml")
		require.NoError(t, os.WriteFile(path, []byte("model: gemini-2.0-flash\n"), 0644))

		cfg, err := yaml.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "gemini-2.0-flash", cfg.Model)
		assert.Equal(t, "sim_courses_clean.csv", cfg.ProgramA.Path)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.Equal(t, coursecheck.ENOTFOUND, coursecheck.ErrorCode(err))
	})
}
