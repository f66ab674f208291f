package pointedit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned when a config format or file extension is not
// one of toml, yaml, yml or json.
var ErrUnknownFormat = errors.New("pointedit: unknown config format")

// ConfigError reports a config file that could not be decoded.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("pointedit: config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// GridConfig generates entities on a regular grid with PointGrid.
type GridConfig struct {
	Width    float64 `toml:"width" yaml:"width" json:"width"`
	Height   float64 `toml:"height" yaml:"height" json:"height"`
	Distance float64 `toml:"distance" yaml:"distance" json:"distance"`
}

// Config is the file representation of an editor's construction input.
type Config struct {
	Entities      []Point     `toml:"entities" yaml:"entities" json:"entities"`
	Grid          *GridConfig `toml:"grid" yaml:"grid" json:"grid"`
	View          *View       `toml:"view" yaml:"view" json:"view"`
	Speed         float64     `toml:"speed" yaml:"speed" json:"speed"`
	HitThreshold  float64     `toml:"hit_threshold" yaml:"hit_threshold" json:"hit_threshold"`
	MoveThreshold float64     `toml:"move_threshold" yaml:"move_threshold" json:"move_threshold"`
	Debug         bool        `toml:"debug" yaml:"debug" json:"debug"`
}

// LoadConfig reads a config file. The format is chosen by extension.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pointedit: reading config file %s: %w", path, err)
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	cfg, err := ParseConfig(data, format)
	if err != nil {
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			cerr.Path = path
		}
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfig decodes data in the given format ("toml", "yaml", "yml" or "json").
// Unknown keys are rejected in every format.
func ParseConfig(data []byte, format string) (Config, error) {
	var cfg Config
	var err error
	switch strings.ToLower(format) {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	// An empty document is an empty config.
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return Config{}, &ConfigError{Path: "<" + format + ">", Err: err}
	}
	return cfg, nil
}

// Input converts the config into an editor construction input. Grid points
// follow explicit entities. Out-of-range values are reported and replaced by
// their defaults.
func (c Config) Input() Input {
	in := Input{
		Entities:      clonePoints(c.Entities),
		Speed:         c.Speed,
		HitThreshold:  c.HitThreshold,
		MoveThreshold: c.MoveThreshold,
	}
	if c.Grid != nil {
		in.Entities = append(in.Entities, PointGrid(c.Grid.Width, c.Grid.Height, c.Grid.Distance)...)
	}
	if c.View != nil {
		v := *c.View
		if s := v.sanitize(); s != v {
			log.Printf("pointedit: config view %+v is invalid, using %+v", v, s)
		}
		in.View = &v
	}
	if c.Speed < 0 {
		log.Printf("pointedit: config speed %v is negative, using %v", c.Speed, DefaultSpeed)
	}
	if c.HitThreshold < 0 {
		log.Printf("pointedit: config hit_threshold %v is negative, using %v", c.HitThreshold, DefaultHitThreshold)
	}
	if c.MoveThreshold < 0 {
		log.Printf("pointedit: config move_threshold %v is negative, using %v", c.MoveThreshold, DefaultMoveThreshold)
	}
	return in
}

// NewEditorFromConfig creates an editor from a decoded config, enabling
// debug mode when the config asks for it.
func NewEditorFromConfig(c Config) *Editor {
	e := NewEditor(c.Input())
	e.SetDebugMode(c.Debug)
	return e
}
