// Package scene loads YAML scene files and builds their objects.
//
// A scene lists ships and targets:
//
//	objects:
//	  - kind: ship
//	    name: red
//	    color: "#ff0000"
//	    x: 0
//	    y: 0
//	    dir: {x: 1, y: 1}
//	    gun: {x: 0, y: 0, size: 50}
//	  - kind: target
//	    x: 300
//	    y: 200
//	    width: 20
//	    height: 20
//	respawn:
//	  - {x: 100, y: 100}
//
// Destroyed targets respawn at the respawn points in turn.
package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	KindShip   = "ship"
	KindTarget = "target"
)

//go:embed default.yaml
var defaultScene []byte

type Spec struct {
	Objects []ObjectSpec `yaml:"objects"`
	Respawn []PointSpec  `yaml:"respawn"`
}

type ObjectSpec struct {
	Kind  string  `yaml:"kind"`
	Name  string  `yaml:"name"`
	Color Color   `yaml:"color"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`

	// targets
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// ships
	Dir *PointSpec `yaml:"dir"`
	Gun *GunSpec   `yaml:"gun"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type GunSpec struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
}

// Color is a "#rrggbb" or "#rrggbbaa" hex color. The zero value means the
// kind's default color.
type Color color.RGBA

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a string", value.Line)
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("line %d: invalid color format: %s", value.Line, value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("line %d: invalid color %s: %w", value.Line, value.Value, err)
		}
		rgba[i] = v
	}

	// stored premultiplied, as color.RGBA expects
	nrgba := color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	*c = Color(color.RGBAModel.Convert(nrgba).(color.RGBA))
	return nil
}

// Or returns c, or def if c is unset.
func (c Color) Or(def color.RGBA) color.RGBA {
	if c == (Color{}) {
		return def
	}
	return color.RGBA(c)
}

// Parse decodes a scene. Unknown keys are rejected. An empty document is an
// empty scene.
func Parse(data []byte) (*Spec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var spec Spec
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &spec, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: unmarshal %s: %w", path, err)
	}
	return spec, nil
}

// Default returns the built-in scene: one ship and a few targets.
func Default() *Spec {
	spec, err := Parse(defaultScene)
	if err != nil {
		panic(fmt.Sprintf("scene: built-in scene: %v", err))
	}
	return spec
}
