package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDemoConfigPriority(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	if err := os.WriteFile(path, []byte("transition:\n  duration: 1.25\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fromFile, err := loadDemoConfig(Config{ConfigPath: path, ConfigData: []byte("transition:\n  duration: 3\n")})
	if err != nil {
		t.Fatalf("loadDemoConfig(file): %v", err)
	}
	if fromFile.Transition.Duration != 1.25 {
		t.Errorf("file config duration = %v, want 1.25", fromFile.Transition.Duration)
	}

	fromData, err := loadDemoConfig(Config{ConfigData: []byte("transition:\n  duration: 3\n")})
	if err != nil {
		t.Fatalf("loadDemoConfig(data): %v", err)
	}
	if fromData.Transition.Duration != 3 {
		t.Errorf("embedded config duration = %v, want 3", fromData.Transition.Duration)
	}

	defaults, err := loadDemoConfig(Config{})
	if err != nil {
		t.Fatalf("loadDemoConfig(default): %v", err)
	}
	if defaults.Transition.Duration != 0.75 {
		t.Errorf("default duration = %v, want 0.75", defaults.Transition.Duration)
	}
}

func TestLoadDemoConfigErrors(t *testing.T) {
	if _, err := loadDemoConfig(Config{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("missing config file should fail")
	}
	if _, err := loadDemoConfig(Config{ConfigData: []byte("transition:\n  duration: -1\n")}); err == nil {
		t.Error("invalid embedded config should fail")
	}
}

func TestOpenStorage(t *testing.T) {
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", t.TempDir())
	defer os.Setenv("HOME", originalHome)

	if m := openStorage("test_arspawn_app"); m == nil {
		t.Error("openStorage should succeed with a writable HOME")
	}
}
