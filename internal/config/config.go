package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "clipgrep.yaml"

type Config struct {
	// TranscriptsDir holds the transcript files served by the store.
	TranscriptsDir string `yaml:"transcripts_dir"`
	// MediaDir holds the media files that clips are cut from.
	MediaDir string `yaml:"media_dir"`
	// FFmpegPath names the ffmpeg binary used in exported commands.
	FFmpegPath string `yaml:"ffmpeg_path"`
}

func Default() Config {
	return Config{
		TranscriptsDir: ".",
		MediaDir:       ".",
		FFmpegPath:     "ffmpeg",
	}
}

// Load reads the YAML config, falling back to defaults when the file does
// not exist, then applies environment overrides and validates.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; defaults plus env cover it.
	default:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CLIPGREP_TRANSCRIPTS_DIR"); v != "" {
		c.TranscriptsDir = v
	}
	if v := os.Getenv("CLIPGREP_MEDIA_DIR"); v != "" {
		c.MediaDir = v
	}
	if v := os.Getenv("CLIPGREP_FFMPEG"); v != "" {
		c.FFmpegPath = v
	}
}

func (c Config) Validate() error {
	if c.TranscriptsDir == "" {
		return errors.New("transcripts_dir is empty")
	}
	if c.MediaDir == "" {
		return errors.New("media_dir is empty")
	}
	if c.FFmpegPath == "" {
		return errors.New("ffmpeg_path is empty")
	}
	return nil
}
