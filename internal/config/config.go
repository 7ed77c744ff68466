package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Preview    PreviewConfig    `yaml:"preview"`
	Export     ExportConfig     `yaml:"export"`
	Templates  TemplatesConfig  `yaml:"templates"`
	Thumbnails ThumbnailsConfig `yaml:"thumbnails"`
}

// PreviewConfig caps the on-screen rendition. The interactive preview
// and the batch exporter share these bounds; that is what keeps them
// pixel-identical.
type PreviewConfig struct {
	MaxWidth  int `yaml:"max_width" env:"PREVIEW_MAX_WIDTH" env-default:"900" validate:"min=1"`
	MaxHeight int `yaml:"max_height" env:"PREVIEW_MAX_HEIGHT" env-default:"700" validate:"min=1"`
}

type ExportConfig struct {
	Workers int `yaml:"workers" env:"EXPORT_WORKERS" env-default:"1" validate:"min=1,max=64"`
}

type TemplatesConfig struct {
	Dir string `yaml:"dir" env:"TEMPLATES_DIR" env-default:"templates"`
}

type ThumbnailsConfig struct {
	Width  int `yaml:"width" env:"THUMBNAIL_WIDTH" env-default:"128" validate:"min=1"`
	Height int `yaml:"height" env:"THUMBNAIL_HEIGHT" env-default:"128" validate:"min=1"`
}

// Load reads configuration from an optional YAML file plus the
// environment, then validates it.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q not found: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from environment: %w", err)
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
