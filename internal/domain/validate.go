package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate rejects out-of-range parameters at the configuration
// boundary, before a spec reaches the rendering engine.
func (s WatermarkSpec) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid watermark spec: %w", err)
	}
	if s.Mode == ModeImage && s.Image.SourcePath == "" {
		return fmt.Errorf("invalid watermark spec: image mode requires a source path")
	}
	return nil
}

func (s ExportSettings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid export settings: %w", err)
	}
	return nil
}
