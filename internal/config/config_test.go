package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"rsakit/internal/config"
)

func writeYAML(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RSAKIT_HOME", home)

	c, err := config.Load(nil, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Home != home {
		t.Fatalf("home: got %q, want %q", c.Home, home)
	}
	if c.Bits != 1024 || c.Encoding != "decimal" || c.Log.Level != "warn" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.Generation.MaxKeyAttempts != 16 || c.Generation.MaxPrimeAttempts != 0 {
		t.Fatalf("unexpected generation defaults: %+v", c.Generation)
	}
}

func TestLoad_FileInHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RSAKIT_HOME", home)
	writeYAML(t, home, "bits: 512\nencoding: base64\ngeneration:\n  max_key_attempts: 3\n")

	c, err := config.Load(nil, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Bits != 512 || c.Encoding != "base64" || c.Generation.MaxKeyAttempts != 3 {
		t.Fatalf("file values not applied: %+v", c)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RSAKIT_HOME", home)
	t.Setenv("RSAKIT_BITS", "256")
	t.Setenv("RSAKIT_GENERATION_MAX_PRIME_ATTEMPTS", "99")
	writeYAML(t, home, "bits: 512\n")

	c, err := config.Load(nil, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Bits != 256 {
		t.Fatalf("bits: got %d, want 256 from env", c.Bits)
	}
	if c.Generation.MaxPrimeAttempts != 99 {
		t.Fatalf("max prime attempts: got %d, want 99 from env", c.Generation.MaxPrimeAttempts)
	}
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RSAKIT_HOME", home)
	t.Setenv("RSAKIT_BITS", "256")
	t.Setenv("RSAKIT_LOG_LEVEL", "info")

	cmd := &cobra.Command{}
	cmd.Flags().Int("bits", 0, "")
	cmd.Flags().String("log-level", "", "")
	if err := cmd.Flags().Set("bits", "128"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	c, err := config.Load(cmd, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Bits != 128 {
		t.Fatalf("bits: got %d, want 128 from flag", c.Bits)
	}
	// Unchanged flags must not shadow the environment.
	if c.Log.Level != "info" {
		t.Fatalf("log level: got %q, want info from env", c.Log.Level)
	}
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	t.Setenv("RSAKIT_HOME", t.TempDir())
	if _, err := config.Load(nil, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "home")
	t.Setenv("RSAKIT_HOME", dir)

	want := config.Config{
		Home:     dir,
		Bits:     2048,
		Encoding: "runes",
		Log:      config.Log{Level: "debug"},
		Generation: config.Generation{
			MaxKeyAttempts:   5,
			MaxPrimeAttempts: 7000,
		},
	}
	path := filepath.Join(dir, config.FileName)
	if err := config.WriteFile(path, want); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := config.Load(nil, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}
