package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	want := &Config{
		Name:         "Dana Reyes",
		Address:      "12 Elm St",
		CityStateZip: "Springfield, IL 62701",
		Email:        "dana@example.org",
		Phone:        "555-0142",
	}
	if err := SaveConfig(dir, want); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	got, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if *got != *want {
		t.Errorf("LoadConfig() = %+v, want %+v", got, want)
	}
}

func TestLoadMissingReturnsEmpty(t *testing.T) {
	got, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if *got != (Config{}) {
		t.Errorf("LoadConfig() on missing file = %+v, want empty", got)
	}
}

func TestLoadCorruptFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(dir); err == nil {
		t.Error("LoadConfig() on corrupt file succeeded, want error")
	}
}

func TestSaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", ".foia")

	if err := SaveConfig(dir, &Config{Name: "Dana"}); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.json")); err != nil {
		t.Errorf("config.json not created: %v", err)
	}
}
