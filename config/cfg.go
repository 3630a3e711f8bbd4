package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	// TOCConfig controls the generated table of contents page.
	TOCConfig struct {
		Title      string        `yaml:"title" validate:"required"`
		EntryStyle TOCEntryStyle `yaml:"entry_style" validate:"gte=0"`
	}

	// StrictConfig lists exemption markers honored by strict-mode extraction.
	// Heading text equal to one of EndMarkers, or a trailing section whose
	// text contains one of FooterMarkers, is skipped instead of rejected.
	StrictConfig struct {
		EndMarkers    []string `yaml:"end_markers" validate:"dive,required"`
		FooterMarkers []string `yaml:"footer_markers" validate:"dive,required"`
	}

	// PageConfig describes print page geometry, inches.
	PageConfig struct {
		Width          float64 `yaml:"width" validate:"gt=0"`
		Height         float64 `yaml:"height" validate:"gt=0"`
		MarginTop      float64 `yaml:"margin_top" validate:"gte=0"`
		MarginBottom   float64 `yaml:"margin_bottom" validate:"gte=0"`
		MarginInside   float64 `yaml:"margin_inside" validate:"gte=0"`
		MarginOutside  float64 `yaml:"margin_outside" validate:"gte=0"`
		HeaderDistance float64 `yaml:"header_distance" validate:"gte=0"`
		MirrorMargins  bool    `yaml:"mirror_margins"`
	}

	// TabStopConfig is a single tab stop inside a named style.
	TabStopConfig struct {
		PositionIn float64 `yaml:"position" validate:"gt=0"`
		Align      string  `yaml:"align" validate:"oneof=left right center"`
		Leader     string  `yaml:"leader,omitempty" validate:"omitempty,oneof=none dot"`
	}

	// StyleConfig is one entry of the named paragraph style table. The table
	// is typesetting data, not logic; the renderer applies it verbatim.
	StyleConfig struct {
		Name              string          `yaml:"name" validate:"required"`
		Font              string          `yaml:"font" validate:"required"`
		SizePt            float64         `yaml:"size_pt" validate:"gt=0"`
		Bold              bool            `yaml:"bold,omitempty"`
		Italic            bool            `yaml:"italic,omitempty"`
		Align             string          `yaml:"align,omitempty" validate:"omitempty,oneof=left right center justify"`
		LineSpacing       float64         `yaml:"line_spacing,omitempty" validate:"gte=0"`
		SpaceBeforePt     float64         `yaml:"space_before_pt,omitempty" validate:"gte=0"`
		SpaceAfterPt      float64         `yaml:"space_after_pt,omitempty" validate:"gte=0"`
		FirstLineIndentIn *float64        `yaml:"first_line_indent,omitempty"`
		LeftIndentIn      float64         `yaml:"left_indent,omitempty" validate:"gte=0"`
		RightIndentIn     float64         `yaml:"right_indent,omitempty" validate:"gte=0"`
		Tabs              []TabStopConfig `yaml:"tabs,omitempty"`
	}

	DocumentConfig struct {
		FixZip                bool          `yaml:"fix_zip"`
		ForceBlankVersoPages  bool          `yaml:"force_blank_verso_pages"`
		FileNameTransliterate bool          `yaml:"file_name_transliterate"`
		TOC                   TOCConfig     `yaml:"toc"`
		Strict                StrictConfig  `yaml:"strict"`
		Page                  PageConfig    `yaml:"page"`
		Styles                []StyleConfig `yaml:"styles" validate:"min=1,dive"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// Style returns the named style table entry or nil when the table has none.
func (conf *DocumentConfig) Style(name string) *StyleConfig {
	for i := range conf.Styles {
		if conf.Styles[i].Name == name {
			return &conf.Styles[i]
		}
	}
	return nil
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
