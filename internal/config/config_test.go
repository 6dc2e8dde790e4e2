package config

import (
	"os"
	"testing"
	"time"
)

const testHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func setRequiredEnv() {
	os.Setenv("ADMIN_JWT_SECRET", "test-secret-32-characters-long!!")
	os.Setenv("ADMIN_PASSWORD_HASH", testHash)
	os.Setenv("DB_PASSWORD", "test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv()
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}

	if cfg.Admin.TokenTTL != 1*time.Hour {
		t.Errorf("TokenTTL: got %v, want %v", cfg.Admin.TokenTTL, 1*time.Hour)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port: got %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.RateLimit.LoginPerMinute != 5 {
		t.Errorf("LoginPerMinute: got %d, want 5", cfg.RateLimit.LoginPerMinute)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("Redis.Addr: got %q, want empty", cfg.Redis.Addr)
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	os.Clearenv()
	os.Setenv("ADMIN_PASSWORD_HASH", testHash)
	os.Setenv("DB_PASSWORD", "test")
	defer os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil, want error for missing ADMIN_JWT_SECRET")
	}
}

func TestLoad_MissingPasswordHash(t *testing.T) {
	os.Clearenv()
	os.Setenv("ADMIN_JWT_SECRET", "test-secret-32-characters-long!!")
	os.Setenv("DB_PASSWORD", "test")
	defer os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil, want error for missing ADMIN_PASSWORD_HASH")
	}
}

func TestLoad_RejectsNonBcryptHash(t *testing.T) {
	setRequiredEnv()
	os.Setenv("ADMIN_PASSWORD_HASH", "plaintext-password")
	defer os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil, want error for non-bcrypt ADMIN_PASSWORD_HASH")
	}
}

func TestLoad_WeakSecretRejectedInProduction(t *testing.T) {
	setRequiredEnv()
	os.Setenv("ENV", "production")
	os.Setenv("ADMIN_JWT_SECRET", "short")
	defer os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil, want error for short secret in production")
	}
}

func TestLoad_CustomTokenTTL(t *testing.T) {
	setRequiredEnv()
	os.Setenv("ADMIN_TOKEN_TTL", "30m")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if cfg.Admin.TokenTTL != 30*time.Minute {
		t.Errorf("TokenTTL: got %v, want %v", cfg.Admin.TokenTTL, 30*time.Minute)
	}
}
