package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	SceneFile  = "scene.yaml"
	TuningFile = "tuning.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SceneSpec struct {
	Name    string      `yaml:"name"`
	Player  PointSpec   `yaml:"player"`
	Camera  *PointSpec  `yaml:"camera"`
	Ledges  []LedgeSpec `yaml:"ledges"`
	Pipes   []PipeSpec  `yaml:"pipes"`
	Layout  *LayoutSpec `yaml:"layout"`
	Palette PaletteSpec `yaml:"palette"`
}

func LoadSceneSpec(filename string) (SceneSpec, error) {
	return LoadSpec[SceneSpec](filename)
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type LedgeSpec struct {
	ID uint32  `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

type PipeSpec struct {
	Top    bool    `yaml:"top"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LayoutSpec generates the classic grid of ledges and pipe pairs. Zero
// fields take the defaults of the base resolution.
type LayoutSpec struct {
	Count       int     `yaml:"count"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Spacing     float64 `yaml:"spacing"`
	LedgeOffset float64 `yaml:"ledge_offset"`
	LedgeDrop   float64 `yaml:"ledge_drop"`
	PipeWidth   float64 `yaml:"pipe_width"`
	PipeHeight  float64 `yaml:"pipe_height"`
	Gap         float64 `yaml:"gap"`
}

type PaletteSpec struct {
	Background *YAMLColor `yaml:"background"`
	Player     *YAMLColor `yaml:"player"`
	Ledge      *YAMLColor `yaml:"ledge"`
	Target     *YAMLColor `yaml:"target"`
	Pipe       *YAMLColor `yaml:"pipe"`
	Rope       *YAMLColor `yaml:"rope"`
}

// TuningSpec overrides the simulation defaults. Absent keys keep the default.
type TuningSpec struct {
	Gravity        *float64   `yaml:"gravity"`
	Damping        *float64   `yaml:"damping"`
	SwingSpeed     *float64   `yaml:"swing_speed"`
	AttachImpulse  *PointSpec `yaml:"attach_impulse"`
	CameraFollow   *PointSpec `yaml:"camera_follow"`
	AttachEase     *float64   `yaml:"attach_ease"`
	FixedStep      *float64   `yaml:"fixed_step"`
	MaxSubsteps    *int       `yaml:"max_substeps"`
	PlayerRadius   *float64   `yaml:"player_radius"`
	ResetOnContact bool       `yaml:"reset_on_contact"`

	SwingFollowsImpulse bool `yaml:"swing_follows_impulse"`
}

func LoadTuningSpec(filename string) (TuningSpec, error) {
	return LoadSpec[TuningSpec](filename)
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed color, or fallback when the key was absent.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
