package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the default arkanoid configuration.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Ball: BallConfig{
			Radius: 0.4,
			Speed:  0.45,
		},
		Paddle: PaddleConfig{
			Width:  9,
			Height: 1,
			Speed:  1.0,
		},
		Bricks: BrickConfig{
			Columns:    11,
			Rows:       4,
			Width:      6,
			Height:     1,
			HardEveryN: 2,
			HardHits:   3,
		},
		Bullets: BulletConfig{
			Speed:    1.2,
			Radius:   0.3,
			Cooldown: 10,
		},
		Gameplay: GameplayConfig{
			Lives:             3,
			PointsPerStrength: 10,
		},
		Campaign: CampaignConfig{
			Stages:        3,
			StageSeconds:  120,
			SpeedBonus:    0.08,
			ExtraHardRows: 1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
