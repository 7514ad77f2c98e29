package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/hrsite/pkg/config"
)

func TestNewRootCommand(t *testing.T) {
	t.Run("creates root command", func(t *testing.T) {
		cmd := NewRootCommand("1.0.0")
		assert.Equal(t, "hrsite", cmd.Use)
		assert.Equal(t, "1.0.0", cmd.Version)
	})

	t.Run("has subcommands", func(t *testing.T) {
		cmd := NewRootCommand("1.0.0")
		for _, name := range [][]string{{"serve"}, {"browse"}, {"menu", "show"}, {"menu", "validate"}} {
			sub, _, err := cmd.Find(name)
			require.NoError(t, err)
			assert.Equal(t, name[len(name)-1], sub.Name())
		}
	})

	t.Run("serve flags", func(t *testing.T) {
		cmd := NewRootCommand("1.0.0")
		serve, _, err := cmd.Find([]string{"serve"})
		require.NoError(t, err)

		port := serve.Flags().Lookup("port")
		require.NotNil(t, port)
		assert.Equal(t, "p", port.Shorthand)
		assert.Equal(t, "9876", port.DefValue)
		assert.NotNil(t, serve.Flags().Lookup("menu"))
	})

	t.Run("prints version", func(t *testing.T) {
		cmd := NewRootCommand("1.2.3")
		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetArgs([]string{"--version"})
		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "1.2.3")
	})
}

func TestMenuShow(t *testing.T) {
	t.Run("navigation", func(t *testing.T) {
		cmd := NewRootCommand("dev")
		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetArgs([]string{"menu", "show"})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "Peoplewise")
		assert.Contains(t, out.String(), "Recruitment")
		assert.Contains(t, out.String(), "/services/applicant-tracking")
	})

	t.Run("countries", func(t *testing.T) {
		cmd := NewRootCommand("dev")
		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetArgs([]string{"menu", "show", "--countries"})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "United Arab Emirates")
	})
}

func TestMenuValidate(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "ok.yaml")
		require.NoError(t, os.WriteFile(path, []byte("title: T\nitems:\n  - id: a\n    label: A\n    path: /a\n"), 0o600))

		cmd := NewRootCommand("dev")
		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetArgs([]string{"menu", "validate", path})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "1 nodes, 1 leaves")
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("title: T\nitems:\n  - id: a\n    label: A\n"), 0o600))

		cmd := NewRootCommand("dev")
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"menu", "validate", path})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "leaf must have a path")
	})

	t.Run("requires file", func(t *testing.T) {
		cmd := NewRootCommand("dev")
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"menu", "validate"})
		assert.Error(t, cmd.Execute())
	})
}

func TestLoadTrees(t *testing.T) {
	trees, err := loadTrees("", "")
	require.NoError(t, err)
	assert.NotNil(t, trees.Nav)
	assert.NotNil(t, trees.Countries)

	_, err = loadTrees(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.Error(t, err)
}

func TestRunServeStopsOnCancel(t *testing.T) {
	cfg := &config.Config{
		Port:            0,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
		LogLevel:        "error",
		Session:         config.SessionConfig{TTL: time.Minute, Sweep: time.Second},
		Forms:           config.FormConfig{RatePerMinute: 5, Burst: 3},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	assert.NoError(t, runServe(ctx, cfg, "test"))
}

func TestRunServeBadMenu(t *testing.T) {
	cfg := &config.Config{
		MenuFile: filepath.Join(t.TempDir(), "missing.yaml"),
		LogLevel: "error",
	}
	assert.Error(t, runServe(context.Background(), cfg, "test"))
}
