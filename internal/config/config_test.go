package config

import "testing"

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.DefaultSmallBlind != 5 || cfg.DefaultBigBlind != 10 {
		t.Fatalf("default blinds = %d/%d, want 5/10", cfg.DefaultSmallBlind, cfg.DefaultBigBlind)
	}
}

func TestLoadServerParseTypes(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("DEFAULT_SMALL_BLIND", "25")
	t.Setenv("DEFAULT_BIG_BLIND", "50")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("HTTPAddr = %q, want :9999", cfg.HTTPAddr)
	}
	if cfg.DefaultSmallBlind != 25 || cfg.DefaultBigBlind != 50 {
		t.Fatalf("blinds = %d/%d, want 25/50", cfg.DefaultSmallBlind, cfg.DefaultBigBlind)
	}
}

func TestLoadLogDefaults(t *testing.T) {
	cfg, err := LoadLog()
	if err != nil {
		t.Fatalf("LoadLog() error = %v", err)
	}
	if cfg.Level != "info" || cfg.Pretty || cfg.MaxMB != 10 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadTrainerDefaults(t *testing.T) {
	cfg, err := LoadTrainer()
	if err != nil {
		t.Fatalf("LoadTrainer() error = %v", err)
	}
	if cfg.PlayerName != "Hero" || cfg.StartingStack != 1000 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SmallBlind != 5 || cfg.BigBlind != 10 || cfg.Opponents != 3 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadTestRequiresDSN(t *testing.T) {
	t.Setenv("TEST_POSTGRES_DSN", "")
	if _, err := LoadTest(); err == nil {
		t.Fatal("LoadTest() expected error, got nil")
	}
}
