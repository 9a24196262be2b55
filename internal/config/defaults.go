package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: RunnerWorld{
			ScreenWidth:   960,
			ScreenHeight:  300,
			CullMargin:    200,
			UnitsPerMeter: 20,
		},
		Physics: RunnerPhysics{
			Gravity:        1800,
			JumpImpulse:    760,
			WalkSpeed:      240,
			AirAccel:       1400,
			BackwardFactor: 0.3,
			CrouchFactor:   0.5,
			FallDecay:      0.85,
			FallMomentum:   0.5,
			MomentumSnap:   1,
			MaxFallSpeed:   1200,
		},
		Player: RunnerPlayer{
			StartX:           120,
			HalfWidth:        14,
			HalfHeight:       30,
			CrouchHalfHeight: 18,
			MaxEnergy:        5,
			Damage:           1,
		},
		Timing: RunnerTiming{
			Tripping:      0.15,
			Lying:         0.25,
			GettingUp:     0.15,
			Invincibility: 5.0,
			BlinkInterval: 0.1,
			KnockedDwell:  3.0,
			TutorialTime:  6.0,
		},
		Spawner: RunnerSpawner{
			StartBuffer:      900,
			EndBuffer:        600,
			MinSpacing:       300,
			MaxSpacing:       700,
			OverheadChance:   0.25,
			ComboChance:      0.15,
			ComboMin:         180,
			ComboMax:         240,
			MarkerClearance:  120,
			FlagClearance:    300,
			PickupMinSpacing: 1400,
			PickupMaxSpacing: 2600,
			PickupTreeGap:    120,
			PickupShift:      200,
			HeartChance:      0.4,
			AmmoChance:       0.3,
		},
		NPC: RunnerNPC{
			BirdInterval:      7,
			BirdSpeed:         90,
			JoggerSpeed:       110,
			SkaterSpeed:       320,
			MinInterval:       4,
			MaxInterval:       9,
			SkaterFromLevel:   2,
			BeagleFromLevel:   3,
			CrowdedFromLevel:  4,
			SkaterChance:      0.35,
			BeagleFollowGap:   70,
			BeagleRunSpeed:    300,
			BeagleReturnSpeed: 450,
		},
		Camera: RunnerCamera{
			Lead:      0.3,
			Smoothing: 6,
		},
		PowerUps: RunnerPowerUps{
			AutoShootTime:    8,
			FireCooldown:     0.45,
			ProjectileSpeed:  720,
			SpeedBoostTime:   6,
			SpeedBoostFactor: 1.5,
			HeartHeal:        1,
		},
		EndState: RunnerEndState{
			WalkTargetOffset: 140,
			HugTime:          2.5,
			HugHeartEvery:    0.3,
			GameOverTime:     3.0,
			GameOverBlink:    0.3,
		},
		Audio: RunnerAudio{
			MusicVolume:    0.35,
			SFXVolume:      0.6,
			WakeIntervalMS: 25,
			LookAheadMS:    100,
		},
		Input: RunnerInput{
			HoldTime: 0.35,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 0.4,
			},
		},
		Levels: []LevelConfig{
			{Number: 1, Name: "Harbour Promenade", Length: 6000, FlagX: 5600, SpeedMultiplier: 1.0, Track: "coast",
				Markers: []float64{2400, 4300}},
			{Number: 2, Name: "Lighthouse Path", Length: 8000, FlagX: 7600, SpeedMultiplier: 1.05, Track: "coast",
				Markers: []float64{2000, 4100, 6200}},
			{Number: 3, Name: "Dune Boardwalk", Length: 10000, FlagX: 9600, SpeedMultiplier: 1.1, Track: "boardwalk",
				Markers: []float64{3000, 7000},
				Hazards: []HazardConfig{{Kind: "bonfire", X: 5200}}},
			{Number: 4, Name: "Surfer Bay", Length: 11000, FlagX: 10600, SpeedMultiplier: 1.15, Track: "boardwalk",
				Markers: []float64{2600, 5400, 8800},
				Hazards: []HazardConfig{{Kind: "hippie", X: 4000}, {Kind: "bonfire", X: 7400}}},
			{Number: 5, Name: "Cliff Walk", Length: 12000, FlagX: 11600, SpeedMultiplier: 1.2, Track: "boardwalk",
				Markers: []float64{3300, 6600, 9900},
				Hazards: []HazardConfig{{Kind: "hippie", X: 5000}, {Kind: "bonfire", X: 8200}}},
		},
	}
}

// DefaultYAML returns the embedded default runner YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
