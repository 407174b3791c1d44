package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
// Kept in sync with defaults/invaders.yaml.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Canvas: CanvasConfig{
			Size: 600,
		},
		Ship: ShipConfig{
			X:          300,
			Y:          550,
			Radius:     12,
			WrapOffset: 60000,
		},
		Shields: ShieldConfig{
			Count:      3,
			Radius:     35,
			RadiusStep: 5,
		},
		Bullets: BulletConfig{
			Radius:           3,
			Speed:            1,
			ExpirationTicks:  700,
			FiringAdjustment: 15,
		},
		Invaders: InvaderConfig{
			Count:      50,
			Columns:    10,
			Radius:     12,
			SpawnX:     120,
			SpawnY:     50,
			Gap:        40,
			Speed:      0.5,
			FirePeriod: 50,
		},
		Boss: BossConfig{
			Enabled:    false,
			Radius:     24,
			Speed:      1.5,
			FirePeriod: 50,
			Bonus:      10,
		},
		Patrol: PatrolConfig{
			Cycle:           740,
			RightUntil:      180,
			DownUntil:       190,
			LeftUntil:       550,
			SecondDownUntil: 560,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvadersYAML
}
