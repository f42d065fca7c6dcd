package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.App.Port != "3333" {
		t.Errorf("port = %q, want 3333", cfg.App.Port)
	}
	if cfg.App.CORSOrigin != "http://localhost:5173" {
		t.Errorf("cors origin = %q", cfg.App.CORSOrigin)
	}
	if cfg.App.PropertyPolicy != PropertyPolicyOptional {
		t.Errorf("policy = %q, want optional", cfg.App.PropertyPolicy)
	}
	if cfg.JWT.RememberMeExpiry != 720*time.Hour {
		t.Errorf("remember-me expiry = %s", cfg.JWT.RememberMeExpiry)
	}
	if cfg.App.Location().String() != "America/Sao_Paulo" {
		t.Errorf("location = %s", cfg.App.Location())
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APPOINTMENT_PROPERTY_POLICY", "REQUIRED")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_ACCESS_EXPIRY", "5m")
	t.Setenv("LOGIN_RATE_LIMIT_BURST", "9")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.App.Port != "8080" || cfg.App.PropertyPolicy != PropertyPolicyRequired {
		t.Fatalf("unexpected app config: %+v", cfg.App)
	}
	if cfg.DB.Driver != DriverSQLite {
		t.Fatalf("driver = %q", cfg.DB.Driver)
	}
	if cfg.JWT.AccessExpiry != 5*time.Minute {
		t.Fatalf("access expiry = %s", cfg.JWT.AccessExpiry)
	}
	if cfg.RateLimit.LoginBurst != 9 {
		t.Fatalf("burst = %d", cfg.RateLimit.LoginBurst)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App: AppConfig{PropertyPolicy: PropertyPolicyOptional, Timezone: "UTC"},
			DB:  DBConfig{Driver: DriverPostgres},
			JWT: JWTConfig{Secret: "s"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"unknown policy", func(c *Config) { c.App.PropertyPolicy = "sometimes" }, "APPOINTMENT_PROPERTY_POLICY"},
		{"unknown driver", func(c *Config) { c.DB.Driver = "mysql" }, "DB_DRIVER"},
		{"bad timezone", func(c *Config) { c.App.Timezone = "Mars/Olympus" }, "APP_TIMEZONE"},
		{"missing secret", func(c *Config) { c.JWT.Secret = "" }, "JWT_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
