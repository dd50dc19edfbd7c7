package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"rsakit/internal/app"
)

func TestNewWireCreatesHome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "home")
	w, err := app.NewWire(app.Config{Home: home, MaxKeyAttempts: 4})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if fi, err := os.Stat(home); err != nil || !fi.IsDir() {
		t.Fatalf("home not created: %v", err)
	}
	if w.Generator.MaxAttempts != 4 {
		t.Fatalf("MaxAttempts = %d, want 4", w.Generator.MaxAttempts)
	}

	if _, err := w.Keys.Generate(context.Background(), "Correct-Horse-9!", "k", 32); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "keyring.json")); err != nil {
		t.Fatalf("keyring not written: %v", err)
	}
}

func TestNewWireRequiresHome(t *testing.T) {
	if _, err := app.NewWire(app.Config{}); err == nil {
		t.Fatalf("expected error for empty home")
	}
}
