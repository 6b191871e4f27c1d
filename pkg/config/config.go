// Package config holds the settings of a sprintdeck run.
//
// A [Config] starts from [Default], is optionally overlaid by a TOML or YAML
// file ([Load]) and by SPRINTDECK_* environment variables ([Config.ApplyEnv]),
// and finally by command line flags. Nothing in the rest of the program reads
// the environment or the working directory: relative paths are resolved
// against [Config.WorkDir], which the CLI captures once at startup.
//
// Layout numbers left at zero mean "use the preset for the resolved
// direction"; see [Config.Geometry].
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/sprintdeck/pkg/errors"
	"github.com/matzehuels/sprintdeck/pkg/render/deck"
	"github.com/matzehuels/sprintdeck/pkg/render/deck/layout"
	"github.com/matzehuels/sprintdeck/pkg/sprint"
)

// Defaults matching the directory layout sprint boards have always used.
const (
	DefaultInputDir  = "csv files"
	DefaultInputFile = "jobs.csv"
	DefaultOutputDir = "sprints"
	DefaultPrefix    = "presentation"
	DefaultTitle     = "Sprint"
)

// Output formats.
const (
	FormatPPTX = "pptx"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPPTX: true,
	FormatSVG:  true,
	FormatPDF:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// FileNames are looked up by [Find], in order.
var FileNames = []string{"sprintdeck.toml", "sprintdeck.yaml", "sprintdeck.yml"}

// Config is the complete configuration of a run.
type Config struct {
	// WorkDir anchors every relative path. Empty means the process working
	// directory at the time paths are resolved.
	WorkDir string `toml:"-" yaml:"-"`

	Input  InputConfig  `toml:"input" yaml:"input"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Layout LayoutConfig `toml:"layout" yaml:"layout"`
	Style  StyleConfig  `toml:"style" yaml:"style"`
}

// InputConfig locates and parses the sprint table.
type InputConfig struct {
	Dir  string `toml:"dir" yaml:"dir"`
	File string `toml:"file" yaml:"file"`

	// Path, when set, names the input file directly and wins over Dir/File.
	Path string `toml:"path,omitempty" yaml:"path,omitempty"`

	// Delimiter is a single character; empty means ',' ('\t' for .tsv).
	Delimiter string `toml:"delimiter,omitempty" yaml:"delimiter,omitempty"`

	// Columns overrides the accepted header names per field
	// (mission, name, time).
	Columns map[string][]string `toml:"columns,omitempty" yaml:"columns,omitempty"`
}

// OutputConfig controls where and what is written.
type OutputConfig struct {
	Dir     string   `toml:"dir" yaml:"dir"`
	Prefix  string   `toml:"prefix" yaml:"prefix"`
	Formats []string `toml:"formats" yaml:"formats"`
	Title   string   `toml:"title" yaml:"title"`
}

// LayoutConfig selects a preset and optionally overrides its geometry.
// Units are centimetres.
type LayoutConfig struct {
	// Direction is "ltr", "rtl" or "auto" (detect from the table text).
	Direction string `toml:"direction" yaml:"direction"`

	// Decorative toggles the dot grid. Unset follows the preset.
	Decorative *bool `toml:"decorative,omitempty" yaml:"decorative,omitempty"`

	BoxWidths         map[string]float64 `toml:"box_widths,omitempty" yaml:"box_widths,omitempty"`
	BoxHeight         float64            `toml:"box_height,omitempty" yaml:"box_height,omitempty"`
	HorizontalSpacing float64            `toml:"horizontal_spacing,omitempty" yaml:"horizontal_spacing,omitempty"`
	VerticalSpacing   float64            `toml:"vertical_spacing,omitempty" yaml:"vertical_spacing,omitempty"`
	OriginX           *float64           `toml:"origin_x,omitempty" yaml:"origin_x,omitempty"`
	OriginY           *float64           `toml:"origin_y,omitempty" yaml:"origin_y,omitempty"`
}

// StyleConfig controls colours and sizes of drawn shapes.
type StyleConfig struct {
	Background  string  `toml:"background" yaml:"background"`
	BorderColor string  `toml:"border_color" yaml:"border_color"`
	BorderWidth float64 `toml:"border_width" yaml:"border_width"`
	DotColor    string  `toml:"dot_color" yaml:"dot_color"`
	DotSpacing  float64 `toml:"dot_spacing" yaml:"dot_spacing"`
	DotDiameter float64 `toml:"dot_diameter" yaml:"dot_diameter"`
	FontSize    float64 `toml:"font_size" yaml:"font_size"`
	PageWidth   float64 `toml:"page_width" yaml:"page_width"`
	PageHeight  float64 `toml:"page_height" yaml:"page_height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: InputConfig{
			Dir:  DefaultInputDir,
			File: DefaultInputFile,
		},
		Output: OutputConfig{
			Dir:     DefaultOutputDir,
			Prefix:  DefaultPrefix,
			Formats: []string{FormatPPTX},
			Title:   DefaultTitle,
		},
		Layout: LayoutConfig{
			Direction: layout.DirectionAuto,
		},
		Style: StyleConfig{
			Background:  deck.White.CSS(),
			BorderColor: deck.Black.CSS(),
			BorderWidth: deck.DefaultBorderWidth,
			DotColor:    deck.Pink.CSS(),
			DotSpacing:  layout.DotSpacing,
			DotDiameter: layout.DotDiameter,
			FontSize:    deck.DefaultFontSize,
			PageWidth:   layout.PageWidth,
			PageHeight:  layout.PageHeight,
		},
	}
}

// Load overlays the file at path on top of [Default]. The format follows
// the extension: .toml, .yaml or .yml. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "config file %s not found", path)
		}
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, errs.New(errs.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
			return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return cfg, errs.New(errs.ErrCodeInvalidConfig, "unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}
	return cfg, nil
}

// Find returns the first of [FileNames] present in dir, or "".
func Find(dir string) string {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Save writes cfg to path in the format implied by its extension,
// creating parent directories as needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errs.Wrap(errs.ErrCodeWrite, err, "create config directory")
	}

	var data []byte
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return errs.Wrap(errs.ErrCodeInternal, err, "encode config")
		}
		data = buf.Bytes()
	case ".yaml", ".yml":
		out, err := yaml.Marshal(c)
		if err != nil {
			return errs.Wrap(errs.ErrCodeInternal, err, "encode config")
		}
		data = out
	default:
		return errs.New(errs.ErrCodeInvalidConfig, "unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeWrite, err, "write %s", path)
	}
	return nil
}

// ApplyEnv overrides settings from SPRINTDECK_* variables. lookup is
// usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("SPRINTDECK_INPUT_DIR"); ok && v != "" {
		c.Input.Dir = v
	}
	if v, ok := lookup("SPRINTDECK_OUTPUT_DIR"); ok && v != "" {
		c.Output.Dir = v
	}
	if v, ok := lookup("SPRINTDECK_DIRECTION"); ok && v != "" {
		c.Layout.Direction = v
	}
	if v, ok := lookup("SPRINTDECK_FORMATS"); ok && v != "" {
		c.Output.Formats = SplitList(v)
	}
	if v, ok := lookup("SPRINTDECK_DECORATIVE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "SPRINTDECK_DECORATIVE")
		}
		c.Layout.Decorative = &b
	}
	return nil
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}

// Validate checks every setting and returns the first problem as an
// INVALID_CONFIG error.
func (c Config) Validate() error {
	if c.Input.Path == "" && (c.Input.Dir == "" || c.Input.File == "") {
		return invalid("input.dir and input.file are required when input.path is not set")
	}
	if c.Input.Delimiter != "" && utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return invalid("input.delimiter must be a single character, got %q", c.Input.Delimiter)
	}
	for name := range c.Input.Columns {
		if !isRequiredField(name) {
			return invalid("input.columns: unknown field %q (must be mission, name or time)", name)
		}
	}

	if c.Output.Dir == "" {
		return invalid("output.dir is required")
	}
	if c.Output.Prefix == "" || strings.ContainsAny(c.Output.Prefix, `/\`) {
		return invalid("output.prefix must be a plain file name prefix, got %q", c.Output.Prefix)
	}
	if len(c.Output.Formats) == 0 {
		return invalid("at least one output format is required")
	}
	for _, f := range c.Output.Formats {
		if !ValidFormats[f] {
			return invalid("invalid format: %q (must be one of: pptx, svg, pdf, png, json)", f)
		}
	}

	switch c.Layout.Direction {
	case "", layout.DirectionAuto, string(layout.LeftToRight), string(layout.RightToLeft):
	default:
		return invalid("invalid direction: %q (must be 'ltr', 'rtl' or 'auto')", c.Layout.Direction)
	}
	for name, w := range c.Layout.BoxWidths {
		if name != string(sprint.FieldIndex) && !isRequiredField(name) {
			return invalid("layout.box_widths: unknown field %q", name)
		}
		if w <= 0 {
			return invalid("layout.box_widths.%s must be positive, got %v", name, w)
		}
	}
	for name, v := range map[string]float64{
		"layout.box_height":         c.Layout.BoxHeight,
		"layout.horizontal_spacing": c.Layout.HorizontalSpacing,
		"layout.vertical_spacing":   c.Layout.VerticalSpacing,
		"style.border_width":        c.Style.BorderWidth,
	} {
		if v < 0 {
			return invalid("%s must not be negative, got %v", name, v)
		}
	}
	for name, v := range map[string]float64{
		"style.dot_spacing":  c.Style.DotSpacing,
		"style.dot_diameter": c.Style.DotDiameter,
		"style.font_size":    c.Style.FontSize,
		"style.page_width":   c.Style.PageWidth,
		"style.page_height":  c.Style.PageHeight,
	} {
		if v <= 0 {
			return invalid("%s must be positive, got %v", name, v)
		}
	}
	for _, s := range []string{c.Style.Background, c.Style.BorderColor, c.Style.DotColor} {
		if _, err := deck.ParseColor(s); err != nil {
			return err
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errs.New(errs.ErrCodeInvalidConfig, format, args...)
}

func isRequiredField(name string) bool {
	for _, f := range sprint.Required {
		if string(f) == name {
			return true
		}
	}
	return false
}
