package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("unexpected port default: %q", cfg.Port)
	}
	if cfg.Mongo.Database != "hotel_louvain" {
		t.Fatalf("unexpected database default: %q", cfg.Mongo.Database)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.Limit != 20 {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
}

func TestDatabaseName_TestEnvGetsSuffix(t *testing.T) {
	cfg := &Config{Env: "production"}
	cfg.Mongo.Database = "hotel_louvain"
	if got := cfg.DatabaseName(); got != "hotel_louvain" {
		t.Fatalf("production: got %q", got)
	}

	cfg.Env = "test"
	if got := cfg.DatabaseName(); got != "hotel_louvain_test" {
		t.Fatalf("test env: got %q", got)
	}
}
