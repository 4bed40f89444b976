package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/breakton.yaml
var defaultBreaktonYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		World:           WorldConfig{Width: 800, Height: 600},
		CollisionMatrix: []int{0b10},
		Physics: PongPhysics{
			BallVelocityX: 200,
			BallVelocityY: 100,
			BallSize:      10,
			BallStartX:    100,
			BallStartY:    300,
			PaddleSpeed:   200,
			MaxDeflection: 60,
		},
		Paddles: PongPaddles{
			Width:        10,
			Height:       100,
			WallDistance: 30,
		},
		Gameplay: PongGameplay{
			WinScore:   5,
			ServeDelay: 60,
		},
		CPU: PongCPU{
			Enabled:  false,
			MinSkill: 0.6,
			MaxSkill: 0.85,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				PaddleShrink:    0.2,
			},
		},
	}
}

// DefaultBreaktonConfig returns the default Breakton configuration.
func DefaultBreaktonConfig() BreaktonConfig {
	return BreaktonConfig{
		World:           WorldConfig{Width: 800, Height: 600},
		CollisionMatrix: []int{0b0110, 0b1001},
		Physics: BreaktonPhysics{
			BallVelocityX: 300,
			BallVelocityY: 200,
			BallSize:      10,
			PaddleSpeed:   400,
			MaxDeflection: 60,
			TokenSpeed:    50,
		},
		Paddle: BreaktonPaddle{
			Width:  80,
			Height: 10,
		},
		Bricks: BreaktonBricks{
			Rows:    5,
			PerRow:  16,
			Height:  10,
			Spacing: 4,
		},
		Gameplay: BreaktonGameplay{
			Lives:       3,
			BrickPoints: 10,
			TokenChance: 0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				PaddleShrink:    0.25,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pong":
		return defaultPongYAML
	case "breakton":
		return defaultBreaktonYAML
	default:
		return nil
	}
}
