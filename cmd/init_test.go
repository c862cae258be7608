package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hmans/usergraph/internal/config"
)

func TestInitCommand(t *testing.T) {
	t.Run("writes default config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.ConfigFile)

		out, err := runRoot(t, "--config", path, "init")
		if err != nil {
			t.Fatalf("init command error = %v", err)
		}
		if !strings.Contains(out, "Wrote "+path) {
			t.Errorf("output = %q", out)
		}

		cfg, err := config.Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Server.Port != config.DefaultPort {
			t.Errorf("Port = %d, want %d", cfg.Server.Port, config.DefaultPort)
		}
		if len(cfg.Seed) != 1 || cfg.Seed[0].Email != "GraphQL@isCool.com" {
			t.Errorf("Seed = %+v, want default seed", cfg.Seed)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.ConfigFile)
		existing := "[server]\nport = 3000\n"
		if err := os.WriteFile(path, []byte(existing), 0644); err != nil {
			t.Fatalf("WriteFile error = %v", err)
		}

		_, err := runRoot(t, "--config", path, "init")
		if err == nil || !strings.Contains(err.Error(), "already exists") {
			t.Fatalf("error = %v, want already exists", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile error = %v", err)
		}
		if string(data) != existing {
			t.Errorf("config was modified: %q", data)
		}
	})

	t.Run("force overwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.ConfigFile)
		if err := os.WriteFile(path, []byte("[server]\nport = 3000\n"), 0644); err != nil {
			t.Fatalf("WriteFile error = %v", err)
		}

		if _, err := runRoot(t, "--config", path, "init", "--force"); err != nil {
			t.Fatalf("init command error = %v", err)
		}

		cfg, err := config.Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Server.Port != config.DefaultPort {
			t.Errorf("Port = %d, want %d", cfg.Server.Port, config.DefaultPort)
		}
	})

	t.Run("yaml path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "usergraph.yml")

		if _, err := runRoot(t, "--config", path, "init"); err != nil {
			t.Fatalf("init command error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile error = %v", err)
		}
		if !strings.Contains(string(data), "first_name: GraphQL") {
			t.Errorf("config = %q, want YAML", data)
		}
	})
}
