package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/behavior"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var configSchemaJSON string

const configSchemaURL = "config.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

type Config struct {
	// Window
	Title        string `json:"title"`
	WindowWidth  int    `json:"windowWidth"`
	WindowHeight int    `json:"windowHeight"`

	// World Dimensions, in grid units
	GridWidth  int `json:"gridWidth"`
	GridHeight int `json:"gridHeight"`

	// Population
	NumAgents   int     `json:"numAgents"`
	MaxVelocity float64 `json:"maxVelocity"` // initial speed of every boid

	// Integration: dtau = dt = 1/characteristicTime
	CharacteristicTime float64 `json:"characteristicTime"`

	// Seed of the random generator, 0 picks one from the clock
	Seed uint64 `json:"seed"`

	// Boids flocking parameters (matching pkg/behavior/rules.go)
	FieldOfView string         `json:"fieldOfView"` // "position" or "heading"
	Gains       behavior.Gains `json:"gains"`

	LogLevel     string `json:"logLevel"`
	ShowControls bool   `json:"showControls"`
	TPS          int    `json:"tps"` // ticks per second
}

func DefaultConfig() *Config {
	return &Config{
		Title:              "Boids",
		WindowWidth:        640,
		WindowHeight:       480,
		GridWidth:          10,
		GridHeight:         10,
		NumAgents:          100,
		MaxVelocity:        1.0,
		CharacteristicTime: 25,
		FieldOfView:        behavior.ViewFromOrigin.String(),
		Gains:              behavior.DefaultGains(),
		LogLevel:           "info",
		ShowControls:       false,
		TPS:                60,
	}
}

// WindowConfig is what the renderer needs to open the window.
type WindowConfig struct {
	Title    string
	WidthPx  int
	HeightPx int
}

// Window extracts the window options of the configuration.
func (c *Config) Window() WindowConfig {
	return WindowConfig{Title: c.Title, WidthPx: c.WindowWidth, HeightPx: c.WindowHeight}
}

// Rules builds the steering rules described by the configuration.
func (c *Config) Rules() (behavior.Rules, error) {
	view, err := behavior.ParseFieldOfView(c.FieldOfView)
	if err != nil {
		return behavior.Rules{}, err
	}
	r := behavior.DefaultRules()
	r.Gains = c.Gains
	r.View = view
	return r, nil
}

// TickParams builds the fixed integration step of the configuration.
func (c *Config) TickParams() behavior.TickParams {
	return behavior.NewTickParams(c.CharacteristicTime, c.GridWidth, c.GridHeight)
}

// Validate checks the configuration against the embedded JSON schema.
func (c *Config) Validate() error {
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return validateDocument(b)
}

// LoadConfig reads a JSON or TOML configuration file, validates it against
// the schema and overlays it on DefaultConfig. Keys left out of the file keep
// their default value.
func LoadConfig(configFile string) (*Config, error) {
	raw, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	// 1. Decode into a generic document
	var doc map[string]interface{}
	switch ext := strings.ToLower(filepath.Ext(configFile)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode config json: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(raw), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode config toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .json or .toml)", ext)
	}

	// 2. Validate, both formats go through the same JSON form
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize config: %w", err)
	}
	if err := validateDocument(b); err != nil {
		return nil, err
	}

	// 3. Overlay on defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString(configSchemaURL, configSchemaJSON)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

func validateDocument(b []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
