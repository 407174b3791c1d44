// Package config provides YAML-based game configuration loading for the
// invaders platform.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains all configuration for the invaders game.
// Canvas-space values use a 600x600 playfield; the renderer scales
// them to the terminal.
type InvadersConfig struct {
	Canvas   CanvasConfig  `yaml:"canvas"`
	Ship     ShipConfig    `yaml:"ship"`
	Shields  ShieldConfig  `yaml:"shields"`
	Bullets  BulletConfig  `yaml:"bullets"`
	Invaders InvaderConfig `yaml:"invaders"`
	Boss     BossConfig    `yaml:"boss"`
	Patrol   PatrolConfig  `yaml:"patrol"`
}

// CanvasConfig defines the playfield.
type CanvasConfig struct {
	Size float64 `yaml:"size"` // Width and height in canvas units
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Radius     float64 `yaml:"radius"`
	WrapOffset float64 `yaml:"wrap_offset"` // Added before the modulo so x stays non-negative
}

// ShieldConfig defines the shields escorting the ship.
type ShieldConfig struct {
	Count      int     `yaml:"count"`
	Radius     float64 `yaml:"radius"`      // Radius of the first shield
	RadiusStep float64 `yaml:"radius_step"` // Added per subsequent shield
}

// BulletConfig defines projectile parameters shared by all bullets.
type BulletConfig struct {
	Radius           float64 `yaml:"radius"`
	Speed            float64 `yaml:"speed"`
	ExpirationTicks  int     `yaml:"expiration_ticks"`
	FiringAdjustment float64 `yaml:"firing_adjustment"` // Upward offset of a new ship bullet
}

// InvaderConfig defines the invader grid.
type InvaderConfig struct {
	Count      int     `yaml:"count"`
	Columns    int     `yaml:"columns"`
	Radius     float64 `yaml:"radius"`
	SpawnX     float64 `yaml:"spawn_x"`
	SpawnY     float64 `yaml:"spawn_y"`
	Gap        float64 `yaml:"gap"`
	Speed      float64 `yaml:"speed"`
	FirePeriod int     `yaml:"fire_period"` // Invaders fire when time is a multiple of this
}

// BossConfig defines the optional boss stage.
type BossConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Radius     float64 `yaml:"radius"`
	Speed      float64 `yaml:"speed"`
	FirePeriod int     `yaml:"fire_period"`
	Bonus      int     `yaml:"bonus"` // Score awarded per boss destroyed
}

// PatrolConfig defines the scripted enemy patrol cycle.
// Phases are inclusive upper bounds within one cycle:
// right until RightUntil, down until DownUntil, left until LeftUntil,
// down until SecondDownUntil, right until Cycle.
type PatrolConfig struct {
	Cycle           int `yaml:"cycle"`
	RightUntil      int `yaml:"right_until"`
	DownUntil       int `yaml:"down_until"`
	LeftUntil       int `yaml:"left_until"`
	SecondDownUntil int `yaml:"second_down_until"`
}

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("config: invalid invaders config")

// Validate checks that the configuration can drive a simulation.
func (c InvadersConfig) Validate() error {
	switch {
	case c.Canvas.Size <= 0:
		return fmt.Errorf("%w: canvas.size must be positive", ErrInvalidConfig)
	case c.Ship.Radius <= 0 || c.Bullets.Radius <= 0 || c.Invaders.Radius <= 0:
		return fmt.Errorf("%w: radii must be positive", ErrInvalidConfig)
	case c.Ship.WrapOffset < c.Canvas.Size:
		return fmt.Errorf("%w: ship.wrap_offset must be at least canvas.size", ErrInvalidConfig)
	case c.Invaders.Columns <= 0:
		return fmt.Errorf("%w: invaders.columns must be positive", ErrInvalidConfig)
	case c.Invaders.Count < 0 || c.Shields.Count < 0:
		return fmt.Errorf("%w: counts must not be negative", ErrInvalidConfig)
	case c.Invaders.FirePeriod <= 0 || c.Bullets.ExpirationTicks <= 0:
		return fmt.Errorf("%w: periods must be positive", ErrInvalidConfig)
	case c.Boss.Enabled && (c.Boss.FirePeriod <= 0 || c.Boss.Radius <= 0):
		return fmt.Errorf("%w: boss.fire_period and boss.radius must be positive", ErrInvalidConfig)
	}

	p := c.Patrol
	if !(0 < p.RightUntil && p.RightUntil < p.DownUntil && p.DownUntil < p.LeftUntil &&
		p.LeftUntil < p.SecondDownUntil && p.SecondDownUntil < p.Cycle) {
		return fmt.Errorf("%w: patrol phases must be strictly increasing and below cycle", ErrInvalidConfig)
	}
	return nil
}
