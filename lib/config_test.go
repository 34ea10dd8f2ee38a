package awp5

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestConnectionString(t *testing.T) {
	cfg := Config{
		Server:    "p5.example.com",
		Port:      8000,
		Username:  "admin",
		Password:  "secret",
		SessionID: "sid",
	}

	expected := "awsock:/admin:secret:sid@p5.example.com:9001"
	if result := cfg.connectionString(); result != expected {
		t.Errorf("does not match: %v %v", expected, result)
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	if cfg.Server != DefaultServer || cfg.Port != DefaultPort || cfg.Username != DefaultUsername {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("unexpected timeout: %v", cfg.Timeout)
	}
	if !strings.HasPrefix(cfg.SessionID, "awp5_") {
		t.Errorf("unexpected session id: %v", cfg.SessionID)
	}

	// Session ids must not collide between connections
	var other Config
	other.applyDefaults()
	if other.SessionID == cfg.SessionID {
		t.Error("session id not unique")
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Server: "p5.example.com", Port: 8000, Username: "admin"}
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}

	cfg.Port = 65000 // no room left for the CLI port offset
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidArg) {
		t.Errorf("expected ErrInvalidArg, got %v", err)
	}

	cfg = Config{Server: "p5.example.com", Port: 8000}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidArg) {
		t.Errorf("expected ErrInvalidArg, got %v", err)
	}
}

func TestNsdchatCommand(t *testing.T) {
	cfg := Config{Path: "/opt/aw"}
	result := cfg.nsdchatCommand()
	if len(result) != 1 || !strings.HasPrefix(result[0], filepath.Join("/opt/aw", "bin")) {
		t.Errorf("unexpected command: %v", result)
	}

	cfg = Config{Nsdchat: "ssh p5host /usr/local/aw/bin/nsdchat"}
	expected := []string{"ssh", "p5host", "/usr/local/aw/bin/nsdchat"}
	if result := cfg.nsdchatCommand(); !reflect.DeepEqual(result, expected) {
		t.Errorf("does not match: %v %v", expected, result)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("AWP5_SERVER", "env.example.com")
	t.Setenv("AWP5_PORT", "8010")
	t.Setenv("AWP5_SESSION_ID", "envsession")
	t.Setenv("AWP5_TIMEOUT", "90s")

	cfg := Config{Server: "file.example.com", Username: "admin"}
	cfg.ApplyEnv()

	if cfg.Server != "env.example.com" || cfg.Port != 8010 || cfg.SessionID != "envsession" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.Timeout)
	}
	if cfg.Username != "admin" {
		t.Errorf("username should be untouched, got %v", cfg.Username)
	}
}

func TestProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	f, err := LoadProfiles(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Profiles) != 0 {
		t.Errorf("expected no profiles, got %v", f.Profiles)
	}

	// No profiles at all: the empty name resolves to a zero config so
	// that flags and environment variables can drive the connection
	cfg, err := f.Profile("")
	if err != nil {
		t.Error(err)
	} else if !reflect.DeepEqual(cfg, Config{}) {
		t.Errorf("expected a zero config, got %+v", cfg)
	}

	f.DefaultProfile = "lab"
	f.Profiles["lab"] = Config{Server: "lab.example.com", Username: "admin", Password: "secret"}
	f.Profiles["prod"] = Config{Server: "prod.example.com", Username: "operator"}

	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("profiles file should be private, got %v", info.Mode().Perm())
	}

	loaded, err := LoadProfiles(path)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err = loaded.Profile("")
	if err != nil {
		t.Error(err)
	} else if cfg.Server != "lab.example.com" {
		t.Errorf("default profile not resolved: %+v", cfg)
	}

	cfg, err = loaded.Profile("prod")
	if err != nil {
		t.Error(err)
	} else if cfg.Server != "prod.example.com" {
		t.Errorf("does not match: %+v", cfg)
	}

	if _, err := loaded.Profile("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadProfilesBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("profiles: [not, a, map]"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadProfiles(path); err == nil {
		t.Error("expected an error for a malformed file")
	}
}
