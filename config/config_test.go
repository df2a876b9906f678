package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if cfg.AppPort != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.AppPort)
	}
	if cfg.DatabaseName != "fieldcal" {
		t.Errorf("expected default database fieldcal, got %q", cfg.DatabaseName)
	}
	if cfg.DirectorySource != "mongo" {
		t.Errorf("expected mongo directory source, got %q", cfg.DirectorySource)
	}
	if cfg.SessionTTLMinutes != 720 {
		t.Errorf("expected 720 minute session ttl, got %d", cfg.SessionTTLMinutes)
	}
}

func TestSessionTTLFallback(t *testing.T) {
	saved := AppConfig
	defer func() { AppConfig = saved }()

	AppConfig.SessionTTLMinutes = 0
	if got := SessionTTL(); got != 12*time.Hour {
		t.Errorf("expected 12h fallback, got %v", got)
	}
	AppConfig.SessionTTLMinutes = 30
	if got := SessionTTL(); got != 30*time.Minute {
		t.Errorf("expected 30m, got %v", got)
	}
}

func TestLocationFallsBackToLocal(t *testing.T) {
	saved := AppConfig
	defer func() { AppConfig = saved }()

	AppConfig.Timezone = "Not/AZone"
	if Location() != time.Local {
		t.Error("expected time.Local for an unknown zone")
	}
	AppConfig.Timezone = "UTC"
	if Location().String() != "UTC" {
		t.Errorf("expected UTC, got %s", Location())
	}
}
