// Package config provides YAML-based game configuration loading and
// difficulty management for coastrun.
package config

// RunnerConfig contains all tunables of the coastal runner.
type RunnerConfig struct {
	World      RunnerWorld      `yaml:"world"`
	Physics    RunnerPhysics    `yaml:"physics"`
	Player     RunnerPlayer     `yaml:"player"`
	Timing     RunnerTiming     `yaml:"timing"`
	Spawner    RunnerSpawner    `yaml:"spawner"`
	NPC        RunnerNPC        `yaml:"npc"`
	Camera     RunnerCamera     `yaml:"camera"`
	PowerUps   RunnerPowerUps   `yaml:"powerups"`
	EndState   RunnerEndState   `yaml:"end_state"`
	Audio      RunnerAudio      `yaml:"audio"`
	Input      RunnerInput      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Levels     []LevelConfig    `yaml:"levels"`
}

// RunnerWorld defines world-space dimensions.
type RunnerWorld struct {
	ScreenWidth   float64 `yaml:"screen_width"`    // Visible world units
	ScreenHeight  float64 `yaml:"screen_height"`   // Visible world units above ground
	CullMargin    float64 `yaml:"cull_margin"`     // Units behind the camera before culling
	UnitsPerMeter float64 `yaml:"units_per_meter"` // Conversion for the distance score
}

// RunnerPhysics defines player physics. Units are world units and seconds.
type RunnerPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	WalkSpeed      float64 `yaml:"walk_speed"`
	AirAccel       float64 `yaml:"air_accel"`
	BackwardFactor float64 `yaml:"backward_factor"`
	CrouchFactor   float64 `yaml:"crouch_factor"`
	FallDecay      float64 `yaml:"fall_decay"`     // Per-tick decay of fall momentum
	FallMomentum   float64 `yaml:"fall_momentum"`  // Share of vx kept when tripping
	MomentumSnap   float64 `yaml:"momentum_snap"`  // Below this, fall momentum is zero
	MaxFallSpeed   float64 `yaml:"max_fall_speed"` // Terminal downward speed
}

// RunnerPlayer defines the player body and health.
type RunnerPlayer struct {
	StartX           float64 `yaml:"start_x"`
	HalfWidth        float64 `yaml:"half_width"`
	HalfHeight       float64 `yaml:"half_height"`
	CrouchHalfHeight float64 `yaml:"crouch_half_height"`
	MaxEnergy        int     `yaml:"max_energy"`
	Damage           int     `yaml:"damage"`
}

// RunnerTiming defines fixed state-machine durations in seconds.
type RunnerTiming struct {
	Tripping      float64 `yaml:"tripping"`
	Lying         float64 `yaml:"lying"`
	GettingUp     float64 `yaml:"getting_up"`
	Invincibility float64 `yaml:"invincibility"`
	BlinkInterval float64 `yaml:"blink_interval"`
	KnockedDwell  float64 `yaml:"knocked_dwell"`
	TutorialTime  float64 `yaml:"tutorial_time"`
}

// RunnerSpawner defines procedural placement of obstacles and pickups.
type RunnerSpawner struct {
	StartBuffer      float64 `yaml:"start_buffer"`
	EndBuffer        float64 `yaml:"end_buffer"`
	MinSpacing       float64 `yaml:"min_spacing"`
	MaxSpacing       float64 `yaml:"max_spacing"`
	OverheadChance   float64 `yaml:"overhead_chance"`
	ComboChance      float64 `yaml:"combo_chance"`
	ComboMin         float64 `yaml:"combo_min"`
	ComboMax         float64 `yaml:"combo_max"`
	MarkerClearance  float64 `yaml:"marker_clearance"`
	FlagClearance    float64 `yaml:"flag_clearance"`
	PickupMinSpacing float64 `yaml:"pickup_min_spacing"`
	PickupMaxSpacing float64 `yaml:"pickup_max_spacing"`
	PickupTreeGap    float64 `yaml:"pickup_tree_gap"`
	PickupShift      float64 `yaml:"pickup_shift"`
	HeartChance      float64 `yaml:"heart_chance"`
	AmmoChance       float64 `yaml:"ammo_chance"`
}

// RunnerNPC defines NPC speeds, spawn timers and level gates.
type RunnerNPC struct {
	BirdInterval      float64 `yaml:"bird_interval"`
	BirdSpeed         float64 `yaml:"bird_speed"`
	JoggerSpeed       float64 `yaml:"jogger_speed"`
	SkaterSpeed       float64 `yaml:"skater_speed"`
	MinInterval       float64 `yaml:"min_interval"`
	MaxInterval       float64 `yaml:"max_interval"`
	SkaterFromLevel   int     `yaml:"skater_from_level"`
	BeagleFromLevel   int     `yaml:"beagle_from_level"`
	CrowdedFromLevel  int     `yaml:"crowded_from_level"` // Below this, avoid on-screen overlap
	SkaterChance      float64 `yaml:"skater_chance"`
	BeagleFollowGap   float64 `yaml:"beagle_follow_gap"`
	BeagleRunSpeed    float64 `yaml:"beagle_run_speed"`
	BeagleReturnSpeed float64 `yaml:"beagle_return_speed"`
}

// RunnerCamera defines the follow camera.
type RunnerCamera struct {
	Lead      float64 `yaml:"lead"`      // Player position as a share of screen width
	Smoothing float64 `yaml:"smoothing"` // Follow rate per second
}

// RunnerPowerUps defines pickup effects.
type RunnerPowerUps struct {
	AutoShootTime    float64 `yaml:"auto_shoot_time"`
	FireCooldown     float64 `yaml:"fire_cooldown"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	SpeedBoostTime   float64 `yaml:"speed_boost_time"`
	SpeedBoostFactor float64 `yaml:"speed_boost_factor"`
	HeartHeal        int     `yaml:"heart_heal"`
}

// RunnerEndState defines the level-complete and game-over sequences.
type RunnerEndState struct {
	WalkTargetOffset float64 `yaml:"walk_target_offset"`
	HugTime          float64 `yaml:"hug_time"`
	HugHeartEvery    float64 `yaml:"hug_heart_every"`
	GameOverTime     float64 `yaml:"game_over_time"`
	GameOverBlink    float64 `yaml:"game_over_blink"`
}

// RunnerAudio defines the music scheduler and mix.
type RunnerAudio struct {
	MusicVolume    float64 `yaml:"music_volume"`
	SFXVolume      float64 `yaml:"sfx_volume"`
	WakeIntervalMS int     `yaml:"wake_interval_ms"`
	LookAheadMS    int     `yaml:"look_ahead_ms"`
}

// RunnerInput defines input approximation for terminals.
type RunnerInput struct {
	HoldTime float64 `yaml:"hold_time"`
}

// LevelConfig describes one level of the route.
type LevelConfig struct {
	Number          int            `yaml:"number"`
	Name            string         `yaml:"name"`
	Length          float64        `yaml:"length"`
	FlagX           float64        `yaml:"flag_x"`
	SpeedMultiplier float64        `yaml:"speed_multiplier"`
	Track           string         `yaml:"track"`
	Markers         []float64      `yaml:"markers"` // Dog markers, kept obstacle-free
	Hazards         []HazardConfig `yaml:"hazards"`
}

// HazardConfig places a decorative hazard (bonfire, hippie).
type HazardConfig struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level number at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to NPC speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Share of NPC spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
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

// Level returns the level config with the given number, or false.
func (c RunnerConfig) Level(number int) (LevelConfig, bool) {
	for _, l := range c.Levels {
		if l.Number == number {
			return l, true
		}
	}
	return LevelConfig{}, false
}
