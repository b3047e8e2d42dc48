// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// ArkanoidConfig contains all tunables for the arkanoid game. Both
// variants (classic and campaign) read from the same config; the
// campaign section is ignored by the classic variant.
type ArkanoidConfig struct {
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BrickConfig    `yaml:"bricks"`
	Bullets  BulletConfig   `yaml:"bullets"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Campaign CampaignConfig `yaml:"campaign"`
}

// BallConfig defines ball parameters.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Cells per tick on each axis
}

// PaddleConfig defines paddle parameters.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Cells per tick
}

// BrickConfig defines the brick wall layout. Every hard_every_n-th column
// holds reinforced bricks needing hard_hits hits.
type BrickConfig struct {
	Columns    int     `yaml:"columns"`
	Rows       int     `yaml:"rows"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	HardEveryN int     `yaml:"hard_every_n"`
	HardHits   int     `yaml:"hard_hits"`
}

// BulletConfig defines paddle-gun parameters.
type BulletConfig struct {
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	Cooldown int     `yaml:"cooldown"` // Ticks between shots
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives             int `yaml:"lives"`
	PointsPerStrength int `yaml:"points_per_strength"`
}

// CampaignConfig defines multi-stage progression for the campaign variant.
type CampaignConfig struct {
	Stages        int     `yaml:"stages"`
	StageSeconds  int     `yaml:"stage_seconds"`   // Countdown per stage; 0 disables the timer
	SpeedBonus    float64 `yaml:"speed_bonus"`     // Ball speed added per cleared stage
	ExtraHardRows int     `yaml:"extra_hard_rows"` // Hard rows added per stage
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset modifies the config based on a difficulty preset. Normal
// leaves the loaded config untouched.
func ApplyPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = cfg.Paddle.Width + 3
		cfg.Ball.Speed = cfg.Ball.Speed * 0.8
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = cfg.Paddle.Width - 2
		if cfg.Paddle.Width < 3 {
			cfg.Paddle.Width = 3
		}
		cfg.Ball.Speed = cfg.Ball.Speed * 1.3
	}
}
