package config

import (
	"testing"
)

// Test that LoadConfig returns a non-nil config and respects APPENV=test
func TestLoadConfigAndConnectMySQL_TestEnv(t *testing.T) {
	// Ensure APPENV=test so ConnectMySQL uses in-memory sqlite
	t.Setenv("APPENV", "test")

	cfg := LoadConfig()
	if cfg == nil {
		t.Fatalf("expected non-nil config")
	}
	if cfg.AppEnv != "test" {
		t.Fatalf("expected AppEnv=test, got %q", cfg.AppEnv)
	}
	if cfg.AppPort == 0 {
		t.Fatalf("expected a default app port, got 0")
	}
	if cfg.GinMode == "" {
		t.Fatalf("expected a default gin mode, got empty string")
	}

	db, err := ConnectMySQL()
	if err != nil {
		t.Fatalf("ConnectMySQL failed in test env: %v", err)
	}
	if db == nil {
		t.Fatalf("expected non-nil DB connection")
	}
}
