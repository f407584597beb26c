package config

import (
	"testing"

	"github.com/aiaiai-hi/Report-App/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.Server.APIPort != "8081" {
		t.Errorf("ports = %s, %s", cfg.Server.Port, cfg.Server.APIPort)
	}
	if cfg.Admin.User != "admin" || cfg.Admin.Password != "secret" {
		t.Errorf("admin = %+v", cfg.Admin)
	}
	if cfg.Data.Dir != "data" {
		t.Errorf("data dir = %s", cfg.Data.Dir)
	}
	if cfg.Data.MaxUploadBytes != 20<<20 {
		t.Errorf("upload cap = %d", cfg.Data.MaxUploadBytes)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_DIR", "/var/lib/reports")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("port = %s", cfg.Server.Port)
	}
	if cfg.Data.Dir != "/var/lib/reports" {
		t.Errorf("data dir = %s", cfg.Data.Dir)
	}
	if cfg.Data.MaxUploadBytes != 1048576 {
		t.Errorf("upload cap = %d", cfg.Data.MaxUploadBytes)
	}
}

func TestLoadRequiresAdminPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error without ADMIN_PASSWORD")
	}
	if !errors.HasCode(err, errors.CodeConfigInvalid) {
		t.Errorf("error code = %q", errors.GetCode(err))
	}
}
