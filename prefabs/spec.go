package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/clockchase/common"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// LoadSpec reads filename and decodes it over a copy of base, so fields the
// file leaves out keep their defaults.
func LoadSpec[T any](filename string, base T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return base, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return base, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`
}

type SpriteSpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	FrameCount   int     `yaml:"frame_count"`
	ArtFacesLeft bool    `yaml:"art_faces_left"`
}

type ClipSpec struct {
	Frames       []int   `yaml:"frames"`
	FrameSeconds float64 `yaml:"frame_seconds"`
}

type PhysicsSpec struct {
	Gravity   float64 `yaml:"gravity"`
	WalkSpeed float64 `yaml:"walk_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

type BoundsSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlayerSpec struct {
	Name      string              `yaml:"name"`
	Physics   PhysicsSpec         `yaml:"physics"`
	Bounds    BoundsSpec          `yaml:"bounds"`
	Collider  ColliderSpec        `yaml:"collider"`
	Sprite    SpriteSpec          `yaml:"sprite"`
	Animation map[string]ClipSpec `yaml:"animation"`
}

type PatrolSpec struct {
	DirectionSeconds float64 `yaml:"direction_seconds"`
	Speed            float64 `yaml:"speed"`
}

type PursueSpec struct {
	Speed float64 `yaml:"speed"`
}

type LungeSpec struct {
	BeforeSeconds float64 `yaml:"before_seconds"`
	AfterSeconds  float64 `yaml:"after_seconds"`
	Speed         float64 `yaml:"speed"`
}

type SpewSpec struct {
	DurationSeconds float64 `yaml:"duration_seconds"`
	IntervalSeconds float64 `yaml:"interval_seconds"`
	MinVelocity     float64 `yaml:"min_velocity"`
	MaxVelocity     float64 `yaml:"max_velocity"`
	MinAngle        float64 `yaml:"min_angle"`
	MaxAngle        float64 `yaml:"max_angle"`
	SourceX         float64 `yaml:"source_x"`
	SourceY         float64 `yaml:"source_y"`
}

// AttackSpec picks the attack once the player is in range. Script, when
// set, names a tengo script under scripts/ that overrides LungeWeight.
type AttackSpec struct {
	LungeWeight int    `yaml:"lunge_weight"`
	Script      string `yaml:"script"`
}

type EnemySpec struct {
	Name        string              `yaml:"name"`
	PatrolRange float64             `yaml:"patrol_range"`
	AttackRange float64             `yaml:"attack_range"`
	Collider    ColliderSpec        `yaml:"collider"`
	Sprite      SpriteSpec          `yaml:"sprite"`
	Patrol      PatrolSpec          `yaml:"patrol"`
	Pursue      PursueSpec          `yaml:"pursue"`
	Lunge       LungeSpec           `yaml:"lunge"`
	Spew        SpewSpec            `yaml:"spew"`
	Attack      AttackSpec          `yaml:"attack"`
	Animation   map[string]ClipSpec `yaml:"animation"`
}

type ClockSpec struct {
	Name     string       `yaml:"name"`
	Lifetime float64      `yaml:"lifetime"`
	Collider ColliderSpec `yaml:"collider"`
	Sprite   SpriteSpec   `yaml:"sprite"`
}

func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name: "player",
		Physics: PhysicsSpec{
			Gravity:   common.Gravity,
			WalkSpeed: common.WalkSpeed,
			JumpSpeed: common.JumpSpeed,
		},
		Bounds:   BoundsSpec{X: 400, Y: 300},
		Collider: ColliderSpec{Width: 32, Height: 32, Mass: 1},
		Sprite:   SpriteSpec{Width: 32, Height: 32, FrameCount: 3},
		Animation: map[string]ClipSpec{
			"idle": {Frames: []int{0}, FrameSeconds: 0.125},
			"walk": {Frames: []int{0, 1, 2}, FrameSeconds: 0.125},
		},
	}
}

func DefaultEnemySpec() EnemySpec {
	return EnemySpec{
		Name:        "enemy",
		PatrolRange: 160,
		AttackRange: 80,
		Collider:    ColliderSpec{Width: 64, Height: 32, Mass: 1},
		Sprite:      SpriteSpec{Width: 64, Height: 32, FrameCount: 4, ArtFacesLeft: true},
		Patrol:      PatrolSpec{DirectionSeconds: 3, Speed: 120},
		Pursue:      PursueSpec{Speed: 200},
		Lunge:       LungeSpec{BeforeSeconds: 1, AfterSeconds: 2, Speed: 200},
		Spew: SpewSpec{
			DurationSeconds: 5,
			IntervalSeconds: 1,
			MinVelocity:     100,
			MaxVelocity:     200,
			MinAngle:        0,
			MaxAngle:        90,
			SourceX:         -24,
			SourceY:         8,
		},
		Attack: AttackSpec{LungeWeight: 60},
		Animation: map[string]ClipSpec{
			"patrol":       {Frames: []int{0, 1}, FrameSeconds: 0.125},
			"pursue":       {Frames: []int{0, 1, 2}, FrameSeconds: 0.125},
			"lunge_attack": {Frames: []int{2}, FrameSeconds: 0.125},
			"spew_attack":  {Frames: []int{3}, FrameSeconds: 0.125},
		},
	}
}

func DefaultClockSpec() ClockSpec {
	return ClockSpec{
		Name:     "clock",
		Lifetime: 5,
		Collider: ColliderSpec{Width: 16, Height: 16, Mass: 0.25},
		Sprite:   SpriteSpec{Width: 32, Height: 32, FrameCount: 6},
	}
}

func (s PlayerSpec) Validate() error {
	if s.Physics.WalkSpeed < 0 || s.Physics.JumpSpeed < 0 {
		return fmt.Errorf("%w: player %q: negative speed", ErrInvalidSpec, s.Name)
	}
	if s.Collider.Width <= 0 || s.Collider.Height <= 0 {
		return fmt.Errorf("%w: player %q: collider must have a positive size", ErrInvalidSpec, s.Name)
	}
	return nil
}

func (s EnemySpec) Validate() error {
	if s.PatrolRange < 0 || s.AttackRange < 0 {
		return fmt.Errorf("%w: enemy %q: negative range", ErrInvalidSpec, s.Name)
	}
	// The attack check runs after the pursue check; it only stays
	// consistent while the attack range sits inside the patrol range.
	if s.AttackRange > s.PatrolRange {
		return fmt.Errorf("%w: enemy %q: attack_range %.1f exceeds patrol_range %.1f", ErrInvalidSpec, s.Name, s.AttackRange, s.PatrolRange)
	}
	if s.Spew.MinVelocity > s.Spew.MaxVelocity {
		return fmt.Errorf("%w: enemy %q: spew min_velocity exceeds max_velocity", ErrInvalidSpec, s.Name)
	}
	if s.Spew.MinAngle > s.Spew.MaxAngle {
		return fmt.Errorf("%w: enemy %q: spew min_angle exceeds max_angle", ErrInvalidSpec, s.Name)
	}
	if s.Attack.LungeWeight < 0 || s.Attack.LungeWeight > 100 {
		return fmt.Errorf("%w: enemy %q: lunge_weight must be within [0,100]", ErrInvalidSpec, s.Name)
	}
	if s.Collider.Width <= 0 || s.Collider.Height <= 0 {
		return fmt.Errorf("%w: enemy %q: collider must have a positive size", ErrInvalidSpec, s.Name)
	}
	return nil
}

func (s ClockSpec) Validate() error {
	if s.Lifetime <= 0 {
		return fmt.Errorf("%w: clock %q: lifetime must be positive", ErrInvalidSpec, s.Name)
	}
	return nil
}

func LoadPlayerSpec() (PlayerSpec, error) {
	spec, err := LoadSpec("player.yaml", DefaultPlayerSpec())
	if err != nil {
		return spec, err
	}
	return spec, spec.Validate()
}

func LoadEnemySpec() (EnemySpec, error) {
	spec, err := LoadSpec("enemy.yaml", DefaultEnemySpec())
	if err != nil {
		return spec, err
	}
	return spec, spec.Validate()
}

func LoadClockSpec() (ClockSpec, error) {
	spec, err := LoadSpec("clock.yaml", DefaultClockSpec())
	if err != nil {
		return spec, err
	}
	return spec, spec.Validate()
}
