package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || !cfg.IsDevelopment() {
		t.Errorf("unexpected server defaults: %+v", cfg)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour || cfg.Auth.BcryptCost != 12 || cfg.Auth.LegacyDefaults {
		t.Errorf("unexpected auth defaults: %+v", cfg.Auth)
	}
	if cfg.Store.Driver != StoreMongo || cfg.Store.Timeout != 5*time.Second {
		t.Errorf("unexpected store defaults: %+v", cfg.Store)
	}
	if cfg.Mongo.Database != "attendance" || cfg.Redis.Addr != "localhost:6379" || cfg.Redis.URL != "" {
		t.Errorf("unexpected connection defaults: %+v %+v", cfg.Mongo, cfg.Redis)
	}
	if cfg.Throttle.MaxAttempts != 5 || cfg.Throttle.Lockout != 15*time.Minute {
		t.Errorf("unexpected throttle defaults: %+v", cfg.Throttle)
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":               "s3cret",
		"LEGACY_DEFAULT_PASSWORDS": "true",
		"STORE_DRIVER":             "memory",
		"STORE_TIMEOUT":            "250ms",
		"REDIS_ADDR":               "",
		"REDIS_URL":                "redis://:pw@cache:6380/2",
		"REDIS_PASSWORD":           "pw",
		"ENV":                      "production",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Auth.JWTSecret != "s3cret" || !cfg.Auth.LegacyDefaults {
		t.Errorf("unexpected auth: %+v", cfg.Auth)
	}
	if cfg.Store.Driver != StoreMemory || cfg.Store.Timeout != 250*time.Millisecond {
		t.Errorf("unexpected store: %+v", cfg.Store)
	}
	if cfg.Redis.URL != "redis://:pw@cache:6380/2" || cfg.Redis.Password != "pw" {
		t.Errorf("unexpected redis: %+v", cfg.Redis)
	}
	if cfg.IsDevelopment() {
		t.Errorf("production must not be development")
	}
}

func TestLoadWith_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"driver":    {"STORE_DRIVER": "postgres"},
		"cost low":  {"BCRYPT_COST": "2"},
		"cost high": {"BCRYPT_COST": "40"},
		"ttl":       {"TOKEN_TTL": "-1h"},
		"malformed": {"STORE_TIMEOUT": "soon"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadWith(context.Background(), envconfig.MapLookuper(env)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
