package domain

type ExportFormat string

const (
	FormatPNG  ExportFormat = "png"
	FormatJPEG ExportFormat = "jpeg"
)

type NamingRule string

const (
	NamingKeep   NamingRule = "keep"
	NamingPrefix NamingRule = "prefix"
	NamingSuffix NamingRule = "suffix"
)

type ResizeMode string

const (
	ResizeWidth   ResizeMode = "width"
	ResizeHeight  ResizeMode = "height"
	ResizePercent ResizeMode = "percent"
)

// ResizeSpec scales the composed output before saving. Value is a pixel
// count for width/height modes and a percentage for percent mode.
type ResizeSpec struct {
	Mode  ResizeMode `json:"mode" validate:"oneof=width height percent"`
	Value int        `json:"value" validate:"min=1"`
}

type ExportSettings struct {
	OutputDir   string       `json:"output_dir" validate:"required"`
	Format      ExportFormat `json:"format" validate:"oneof=png jpeg"`
	NamingRule  NamingRule   `json:"naming_rule" validate:"oneof=keep prefix suffix"`
	Prefix      string       `json:"prefix"`
	Suffix      string       `json:"suffix"`
	JPEGQuality int          `json:"jpeg_quality" validate:"min=1,max=100"`
	Resize      *ResizeSpec  `json:"resize,omitempty"`
}

// DefaultExportSettings mirrors the values a fresh export dialog offers.
func DefaultExportSettings(outputDir string) ExportSettings {
	return ExportSettings{
		OutputDir:   outputDir,
		Format:      FormatPNG,
		NamingRule:  NamingKeep,
		JPEGQuality: 90,
	}
}

// BatchReport aggregates a batch run. Per-file detail is deliberately
// not reported; failures are logged as they happen.
type BatchReport struct {
	Succeeded int
	Failed    int
}
