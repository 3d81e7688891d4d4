package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", DefaultPath))
	if err == nil {
		t.Fatal("explicit missing path must error")
	}
	_ = cfg

	// Default path missing is fine.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load with absent default file: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clipgrep.yaml")
	body := "transcripts_dir: /srv/transcripts\nffmpeg_path: /opt/bin/ffmpeg\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CLIPGREP_MEDIA_DIR", "/srv/media")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TranscriptsDir != "/srv/transcripts" {
		t.Fatalf("TranscriptsDir = %q", cfg.TranscriptsDir)
	}
	if cfg.FFmpegPath != "/opt/bin/ffmpeg" {
		t.Fatalf("FFmpegPath = %q", cfg.FFmpegPath)
	}
	if cfg.MediaDir != "/srv/media" {
		t.Fatalf("env override lost: MediaDir = %q", cfg.MediaDir)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clipgrep.yaml")
	if err := os.WriteFile(path, []byte(":\t not yaml ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("err = %v, want parse error", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	cfg.FFmpegPath = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty ffmpeg_path must fail validation")
	}
}
