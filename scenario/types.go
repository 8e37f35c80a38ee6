// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for scenario files and runs.
var (
	// ErrInvalidFile indicates a document that cannot be run as written.
	ErrInvalidFile = errors.New("scenario: invalid file")
	// ErrBuild indicates an object declaration rejected by its constructor.
	ErrBuild = errors.New("scenario: cannot build object")
)

// Kind is the object family a declaration belongs to.
type Kind string

const (
	KindElevator Kind = "elevator"
	KindMixer    Kind = "mixer"
	KindPen      Kind = "pen"
	KindSpell    Kind = "spell"
)

// File is a parsed scenario document.
type File struct {
	Name        string         `yaml:"name" validate:"required,max=128"`
	Description string         `yaml:"description,omitempty"`
	Elevators   []ElevatorSpec `yaml:"elevators,omitempty" validate:"dive"`
	Mixers      []MixerSpec    `yaml:"mixers,omitempty" validate:"dive"`
	Pens        []PenSpec      `yaml:"pens,omitempty" validate:"dive"`
	Spells      []SpellSpec    `yaml:"spells,omitempty" validate:"dive"`
	Steps       []Step         `yaml:"steps" validate:"required,min=1,dive"`
}

// ElevatorSpec declares an elevator.
type ElevatorSpec struct {
	ID        string  `yaml:"id" validate:"required,max=64"`
	Floors    int     `yaml:"floors"`
	MaxWeight float64 `yaml:"max_weight"`
	Speed     float64 `yaml:"speed"`
}

// MixerSpec declares a water mixer.
type MixerSpec struct {
	ID              string  `yaml:"id" validate:"required,max=64"`
	HotTemperature  float64 `yaml:"hot_temperature"`
	HotSpeed        float64 `yaml:"hot_speed"`
	ColdTemperature float64 `yaml:"cold_temperature"`
	ColdSpeed       float64 `yaml:"cold_speed"`
}

// PenSpec declares a pen.
type PenSpec struct {
	ID        string `yaml:"id" validate:"required,max=64"`
	Thickness int    `yaml:"thickness"`
	Color     string `yaml:"color"`
}

// SpellSpec declares a spell; setting Heals makes it a healing spell.
type SpellSpec struct {
	ID          string `yaml:"id" validate:"required,max=64"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
	ManaCost    int    `yaml:"mana_cost"`
	MinLevel    int    `yaml:"min_level"`
	Heals       *int   `yaml:"heals,omitempty"`
}

// Step is one operation call and its expectation.
type Step struct {
	Target string `yaml:"target" validate:"required"`
	Op     string `yaml:"op" validate:"required"`
	Args   Args   `yaml:"args,omitempty"`
	Expect Expect `yaml:"expect,omitempty"`
}

// Args holds every argument any operation takes; unset ones are nil.
type Args struct {
	Floor      *int     `yaml:"floor,omitempty"`
	Weight     *float64 `yaml:"weight,omitempty"`
	Hot        *float64 `yaml:"hot,omitempty"`
	Cold       *float64 `yaml:"cold,omitempty"`
	Begin      *Point   `yaml:"begin,omitempty"`
	End        *Point   `yaml:"end,omitempty"`
	Center     *Point   `yaml:"center,omitempty"`
	Radius     *float64 `yaml:"radius,omitempty"`
	StartAngle *Angle   `yaml:"start_angle,omitempty"`
	EndAngle   *Angle   `yaml:"end_angle,omitempty"`
	Mana       *int     `yaml:"mana,omitempty"`
	Level      *int     `yaml:"level,omitempty"`
}

// Expect is what a step must produce. Value and Error are exclusive; with
// neither set the step only has to succeed.
type Expect struct {
	Value interface{} `yaml:"value,omitempty"`
	Error string      `yaml:"error,omitempty" validate:"omitempty,oneof=validation state"`
}

// Point is a canvas coordinate in a scenario file.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Angle is a radian value that also accepts pi, -pi, pi/N and -pi/N.
type Angle float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Angle) UnmarshalYAML(node *yaml.Node) error {
	var f float64
	if err := node.Decode(&f); err == nil {
		*a = Angle(f)
		return nil
	}
	v, err := parsePiExpr(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*a = Angle(v)

	return nil
}

func parsePiExpr(s string) (float64, error) {
	expr := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	sign := 1.0
	if strings.HasPrefix(expr, "-") {
		sign, expr = -1, expr[1:]
	}
	if !strings.HasPrefix(expr, "pi") {
		return 0, fmt.Errorf("angle %q: want a number or [-]pi[/N]", s)
	}
	rest := strings.TrimPrefix(expr, "pi")
	if rest == "" {
		return sign * math.Pi, nil
	}
	if !strings.HasPrefix(rest, "/") {
		return 0, fmt.Errorf("angle %q: want a number or [-]pi[/N]", s)
	}
	div, err := strconv.ParseFloat(rest[1:], 64)
	if err != nil || div == 0 {
		return 0, fmt.Errorf("angle %q: bad divisor", s)
	}

	return sign * math.Pi / div, nil
}
