package config

import (
	"testing"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.CacheMode != CacheModeRedis {
		t.Errorf("expected default cache mode redis, got %s", cfg.CacheMode)
	}
	if cfg.FlushHour != 14 || cfg.FlushMinute != 11 {
		t.Errorf("expected default cutover 14:11, got %02d:%02d", cfg.FlushHour, cfg.FlushMinute)
	}
	if cfg.PostgresDB != "trading_results" {
		t.Errorf("expected default database trading_results, got %s", cfg.PostgresDB)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CACHE_MODE", "memory")
	t.Setenv("FLUSH_HOUR", "3")
	t.Setenv("FLUSH_MINUTE", "30")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.HTTPPort)
	}
	if cfg.CacheMode != CacheModeMemory {
		t.Errorf("expected cache mode memory, got %s", cfg.CacheMode)
	}
	if cfg.FlushHour != 3 || cfg.FlushMinute != 30 {
		t.Errorf("expected cutover 03:30, got %02d:%02d", cfg.FlushHour, cfg.FlushMinute)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty port", func(c *Config) { c.HTTPPort = "" }, true},
		{"bad cache mode", func(c *Config) { c.CacheMode = "memcached" }, true},
		{"cache mode none", func(c *Config) { c.CacheMode = CacheModeNone }, false},
		{"redis mode without addr", func(c *Config) { c.RedisAddr = "" }, true},
		{"memory mode without addr", func(c *Config) { c.CacheMode = CacheModeMemory; c.RedisAddr = "" }, false},
		{"flush hour too high", func(c *Config) { c.FlushHour = 24 }, true},
		{"flush hour negative", func(c *Config) { c.FlushHour = -1 }, true},
		{"flush minute too high", func(c *Config) { c.FlushMinute = 60 }, true},
		{"midnight cutover", func(c *Config) { c.FlushHour = 0; c.FlushMinute = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				HTTPPort:    "8080",
				CacheMode:   CacheModeRedis,
				RedisAddr:   "localhost:6379",
				FlushHour:   14,
				FlushMinute: 11,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}
