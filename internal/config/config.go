// Package config provides YAML-based tuning for Galactic Defender: world
// size, player and weapon numbers, enemy stats, wave scaling, power-ups and
// the shop catalogue, plus difficulty presets.
package config

// DefenderConfig contains every tunable number of the game.
type DefenderConfig struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Weapons   WeaponsConfig   `yaml:"weapons"`
	Enemies   EnemiesConfig   `yaml:"enemies"`
	Waves     WavesConfig     `yaml:"waves"`
	Combat    CombatConfig    `yaml:"combat"`
	PowerUps  PowerUpsConfig  `yaml:"powerups"`
	Shop      ShopConfig      `yaml:"shop"`
	Particles ParticlesConfig `yaml:"particles"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MaxDelta     float64 `yaml:"max_delta"`     // Upper bound on a single frame delta, seconds
	EnemyMargin  float64 `yaml:"enemy_margin"`  // Enemies are clamped this far outside the edges
	BulletMargin float64 `yaml:"bullet_margin"` // Bullets are culled this far outside the edges
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Radius        float64 `yaml:"radius"`
	BaseHP        float64 `yaml:"base_hp"`
	HPPerLevel    float64 `yaml:"hp_per_level"`
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedPerLevel float64 `yaml:"speed_per_level"`
	EdgeMargin    float64 `yaml:"edge_margin"`
	StartX        float64 `yaml:"start_x"` // Fraction of world width
	StartY        float64 `yaml:"start_y"` // Fraction of world height
	StartBombs    int     `yaml:"start_bombs"`
	DashSpeed     float64 `yaml:"dash_speed"`
	DashImpulse   float64 `yaml:"dash_impulse"` // Seconds of dash speed applied instantly
	DashCooldown  float64 `yaml:"dash_cooldown"`
}

// WeaponsConfig defines the three weapon modes.
type WeaponsConfig struct {
	BulletSpeed      float64 `yaml:"bullet_speed"`
	BulletRadius     float64 `yaml:"bullet_radius"`
	MuzzleOffset     float64 `yaml:"muzzle_offset"`
	RapidFactor      float64 `yaml:"rapid_factor"`
	SingleRate       float64 `yaml:"single_rate"`
	SingleDamage     float64 `yaml:"single_damage"`
	SingleDamageStep float64 `yaml:"single_damage_step"` // Extra damage per damage upgrade
	SpreadRate       float64 `yaml:"spread_rate"`
	SpreadDamage     float64 `yaml:"spread_damage"`
	SpreadDamageStep float64 `yaml:"spread_damage_step"`
	SpreadAngle      float64 `yaml:"spread_angle"` // Degrees between adjacent pellets
	LaserRate        float64 `yaml:"laser_rate"`
	LaserDPS         float64 `yaml:"laser_dps"`
	LaserDPSStep     float64 `yaml:"laser_dps_step"`
	LaserLife        float64 `yaml:"laser_life"`
	LaserOffset      float64 `yaml:"laser_offset"`
	LaserReach       float64 `yaml:"laser_reach"` // Extra hit radius around the beam
}

// EnemiesConfig defines enemy stats and behaviour.
type EnemiesConfig struct {
	Radius          float64 `yaml:"radius"`
	BossRadius      float64 `yaml:"boss_radius"`
	BaseHP          float64 `yaml:"base_hp"`
	HPPerLevel      float64 `yaml:"hp_per_level"`
	BossHPFactor    float64 `yaml:"boss_hp_factor"`
	BaseSpeed       float64 `yaml:"base_speed"`
	SpeedPerLevel   float64 `yaml:"speed_per_level"`
	BossSpeed       float64 `yaml:"boss_speed"`
	BossHoverY      float64 `yaml:"boss_hover_y"`
	CooldownMin     float64 `yaml:"cooldown_min"`
	CooldownMax     float64 `yaml:"cooldown_max"`
	ZigzagSpeed     float64 `yaml:"zigzag_speed"`     // Fraction of base speed
	ZigzagFrequency float64 `yaml:"zigzag_frequency"` // Radians per second of age
	ZigzagAmplitude float64 `yaml:"zigzag_amplitude"`
	ShooterSpeed    float64 `yaml:"shooter_speed"` // Fraction of base speed
	ShotSpeed       float64 `yaml:"shot_speed"`
	ShotDamage      float64 `yaml:"shot_damage"`
	ShotRadius      float64 `yaml:"shot_radius"`
	ShotCooldown    float64 `yaml:"shot_cooldown"`
	ShotCooldownCut float64 `yaml:"shot_cooldown_cut"` // Cooldown reduction per level
	ShotCooldownMax float64 `yaml:"shot_cooldown_max"` // Cap on the total reduction
	RingInterval    float64 `yaml:"ring_interval"`
	RingBullets     int     `yaml:"ring_bullets"`
	RingSpin        float64 `yaml:"ring_spin"` // Degrees of rotation per second of age
	RingSpeed       float64 `yaml:"ring_speed"`
	RingDamage      float64 `yaml:"ring_damage"`
	RingRadius      float64 `yaml:"ring_radius"`
}

// WavesConfig defines the wave scheduler. See WaveScaler for the formulas.
type WavesConfig struct {
	FirstInterlude   float64 `yaml:"first_interlude"`
	Interlude        float64 `yaml:"interlude"`
	DifficultyStep   float64 `yaml:"difficulty_step"`
	BaseCount        int     `yaml:"base_count"`
	CountPerWave     int     `yaml:"count_per_wave"`
	MaxCount         int     `yaml:"max_count"`
	LevelDivisor     int     `yaml:"level_divisor"`
	BossEvery        int     `yaml:"boss_every"`
	BossBaseLevel    int     `yaml:"boss_base_level"`
	BossLevelDivisor int     `yaml:"boss_level_divisor"`
	BossSpawnY       float64 `yaml:"boss_spawn_y"`
	SpawnInterval    float64 `yaml:"spawn_interval"`
	SpawnMinInterval float64 `yaml:"spawn_min_interval"`
	SpawnAccel       float64 `yaml:"spawn_accel"`
	ExtraChance      float64 `yaml:"extra_chance"`
	ExtraDivisor     int     `yaml:"extra_divisor"`
	EdgeInset        float64 `yaml:"edge_inset"`
	EdgeOffset       float64 `yaml:"edge_offset"`
	ChaserWeight     float64 `yaml:"chaser_weight"`
	ShooterWeight    float64 `yaml:"shooter_weight"`
	ZigzagWeight     float64 `yaml:"zigzag_weight"`
}

// CombatConfig defines collision damage and rewards.
type CombatConfig struct {
	KillScoreBase    int     `yaml:"kill_score_base"`
	KillScorePerLvl  int     `yaml:"kill_score_per_level"`
	KillCoinsBase    int     `yaml:"kill_coins_base"`
	KillCoinsDivisor int     `yaml:"kill_coins_divisor"`
	DropChance       float64 `yaml:"drop_chance"`
	ContactDamage    float64 `yaml:"contact_damage"`
	LaserDamageScale float64 `yaml:"laser_damage_scale"`
	BombRadius       float64 `yaml:"bomb_radius"`
	BombScore        int     `yaml:"bomb_score"`
	BombCoins        int     `yaml:"bomb_coins"`
	BombGap          float64 `yaml:"bomb_gap"` // Real seconds between bombs
}

// PowerUpsConfig defines power-up drops.
type PowerUpsConfig struct {
	FallSpeed    float64 `yaml:"fall_speed"`
	PickupRange  float64 `yaml:"pickup_range"` // Added to the player radius
	DiscardBelow float64 `yaml:"discard_below"`
	Heal         float64 `yaml:"heal"`
	BuffDuration float64 `yaml:"buff_duration"`
	MaxBombs     int     `yaml:"max_bombs"`
	Coins        int     `yaml:"coins"`
}

// ShopConfig lists the items offered between waves.
type ShopConfig struct {
	Items []ShopItem `yaml:"items"`
	Heal  float64    `yaml:"heal"`
}

// ShopItem is a single shop entry. Key is one of hp, speed, damage, bomb, heal.
type ShopItem struct {
	Label string `yaml:"label"`
	Key   string `yaml:"key"`
	Cost  int    `yaml:"cost"`
}

// ParticlesConfig defines explosion and trail particles.
type ParticlesConfig struct {
	Damping        float64 `yaml:"damping"`
	ExplosionSpeed float64 `yaml:"explosion_speed"`
	KillAmount     int     `yaml:"kill_amount"`
	ContactAmount  int     `yaml:"contact_amount"`
	BombAmount     int     `yaml:"bomb_amount"`
	LifeMin        float64 `yaml:"life_min"`
	LifeMax        float64 `yaml:"life_max"`
	TrailSpread    float64 `yaml:"trail_spread"`
	TrailLifeMin   float64 `yaml:"trail_life_min"`
	TrailLifeMax   float64 `yaml:"trail_life_max"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return DifficultyNormal, false
	}
}
