package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
}

func TestLoadAppConfig(t *testing.T) {
	writeConfig(t, `
server:
  port: 9000
  corsOrigins:
    - http://localhost:5173
analysis:
  topN: 10
  zThreshold: 3.0
dataset:
  path: /data/ridership.csv
`)
	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if Config.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", Config.Server.Port)
	}
	if Config.Analysis.TopN != 10 || Config.Analysis.ZThreshold != 3.0 {
		t.Errorf("analysis config not loaded: %+v", Config.Analysis)
	}
	if Config.Dataset.Path != "/data/ridership.csv" {
		t.Errorf("dataset path not loaded: %q", Config.Dataset.Path)
	}
	if Config.Dataset.MaxUploadBytes != 32<<20 {
		t.Errorf("default upload cap not applied: %d", Config.Dataset.MaxUploadBytes)
	}
}

func TestLoadAppConfigDefaults(t *testing.T) {
	writeConfig(t, `
server:
  port: 8080
`)
	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if Config.Analysis.TopN != 5 {
		t.Errorf("expected default topN 5, got %d", Config.Analysis.TopN)
	}
	if Config.Analysis.ZThreshold != 2.5 {
		t.Errorf("expected default zThreshold 2.5, got %g", Config.Analysis.ZThreshold)
	}
}

func TestLoadAppConfigRejectsBadPort(t *testing.T) {
	writeConfig(t, `
server:
  port: -1
`)
	if err := LoadAppConfig(); err == nil {
		t.Fatal("expected validation error for negative port")
	}
}

func TestApplyDefaultsStandalone(t *testing.T) {
	var cfg AppConfig
	ApplyDefaults(&cfg)
	if cfg.Server.Port == 0 || cfg.Analysis.TopN == 0 || cfg.Analysis.ZThreshold == 0 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}
