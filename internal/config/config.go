// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/leob-arcade/internal/engine"
)

// WorldConfig is the size of a game's playfield in world units.
// The canvas scales it onto the terminal.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	World           WorldConfig      `yaml:"world"`
	CollisionMatrix []int            `yaml:"collision_matrix"`
	Physics         PongPhysics      `yaml:"physics"`
	Paddles         PongPaddles      `yaml:"paddles"`
	Gameplay        PongGameplay     `yaml:"gameplay"`
	CPU             PongCPU          `yaml:"cpu"`
	Difficulty      DifficultyConfig `yaml:"difficulty"`
}

// PongPhysics defines ball and paddle motion for Pong.
type PongPhysics struct {
	BallVelocityX float64 `yaml:"ball_velocity_x"` // world units per second
	BallVelocityY float64 `yaml:"ball_velocity_y"`
	BallSize      float64 `yaml:"ball_size"`
	BallStartX    float64 `yaml:"ball_start_x"`
	BallStartY    float64 `yaml:"ball_start_y"`
	PaddleSpeed   float64 `yaml:"paddle_speed"`
	MaxDeflection float64 `yaml:"max_deflection"` // degrees off straight
}

// PongPaddles defines paddle geometry.
type PongPaddles struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	WallDistance float64 `yaml:"wall_distance"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore   int `yaml:"win_score"`   // 0 plays forever
	ServeDelay int `yaml:"serve_delay"` // ticks the ball waits after a point
}

// PongCPU configures the computer-controlled right paddle.
type PongCPU struct {
	Enabled  bool    `yaml:"enabled"`
	MinSkill float64 `yaml:"min_skill"` // 0..1 tracking accuracy at the lowest difficulty
	MaxSkill float64 `yaml:"max_skill"`
}

// Validate checks the config for values the game cannot run with.
func (c PongConfig) Validate() error {
	if err := validateWorld(c.World); err != nil {
		return err
	}
	if _, err := engine.NewCollisionMatrix(c.CollisionMatrix); err != nil {
		return fmt.Errorf("config: pong: %w", err)
	}
	if c.Paddles.Width <= 0 || c.Paddles.Height <= 0 {
		return invalid("paddles", "width and height must be positive")
	}
	if c.Physics.BallSize <= 0 {
		return invalid("physics.ball_size", "must be positive")
	}
	if c.Gameplay.WinScore < 0 {
		return invalid("gameplay.win_score", "must not be negative")
	}
	return nil
}

// BreaktonConfig contains all configuration for Breakton.
type BreaktonConfig struct {
	World           WorldConfig      `yaml:"world"`
	CollisionMatrix []int            `yaml:"collision_matrix"`
	Physics         BreaktonPhysics  `yaml:"physics"`
	Paddle          BreaktonPaddle   `yaml:"paddle"`
	Bricks          BreaktonBricks   `yaml:"bricks"`
	Gameplay        BreaktonGameplay `yaml:"gameplay"`
	Difficulty      DifficultyConfig `yaml:"difficulty"`
}

// BreaktonPhysics defines ball, paddle and token motion.
type BreaktonPhysics struct {
	BallVelocityX float64 `yaml:"ball_velocity_x"`
	BallVelocityY float64 `yaml:"ball_velocity_y"`
	BallSize      float64 `yaml:"ball_size"`
	PaddleSpeed   float64 `yaml:"paddle_speed"`
	MaxDeflection float64 `yaml:"max_deflection"` // degrees off straight
	TokenSpeed    float64 `yaml:"token_speed"`
}

// BreaktonPaddle defines paddle geometry.
type BreaktonPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreaktonBricks defines the brick grid.
type BreaktonBricks struct {
	Rows    int     `yaml:"rows"`
	PerRow  int     `yaml:"per_row"`
	Height  float64 `yaml:"height"`
	Spacing float64 `yaml:"spacing"`
}

// BreaktonGameplay defines scoring and power-up rules.
type BreaktonGameplay struct {
	Lives       int     `yaml:"lives"`
	BrickPoints int     `yaml:"brick_points"`
	TokenChance float64 `yaml:"token_chance"` // probability a broken brick drops a multiball token
}

// Validate checks the config for values the game cannot run with.
func (c BreaktonConfig) Validate() error {
	if err := validateWorld(c.World); err != nil {
		return err
	}
	if _, err := engine.NewCollisionMatrix(c.CollisionMatrix); err != nil {
		return fmt.Errorf("config: breakton: %w", err)
	}
	if c.Bricks.Rows <= 0 || c.Bricks.PerRow <= 0 {
		return invalid("bricks", "rows and per_row must be positive")
	}
	if c.Bricks.Height <= 0 || c.Bricks.Spacing < 0 {
		return invalid("bricks", "height must be positive and spacing not negative")
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return invalid("paddle", "width and height must be positive")
	}
	if c.Physics.BallSize <= 0 {
		return invalid("physics.ball_size", "must be positive")
	}
	if c.Gameplay.Lives <= 0 {
		return invalid("gameplay.lives", "must be positive")
	}
	if c.Gameplay.TokenChance < 0 || c.Gameplay.TokenChance > 1 {
		return invalid("gameplay.token_chance", "must be within [0, 1]")
	}
	return nil
}

func validateWorld(w WorldConfig) error {
	if w.Width <= 0 || w.Height <= 0 {
		return invalid("world", fmt.Sprintf("size %gx%g must be positive", w.Width, w.Height))
	}
	return nil
}

func invalid(field, reason string) error {
	return fmt.Errorf("config: %w", &engine.ConfigurationError{Field: field, Reason: reason})
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	PaddleShrink    float64 `yaml:"paddle_shrink"`    // Fraction of paddle length lost at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
