package config

import (
	_ "embed"
)

//go:embed defaults/defender.yaml
var defaultDefenderYAML []byte

// DefaultDefenderConfig returns the built-in tuning. The embedded
// defaults/defender.yaml carries the same numbers.
func DefaultDefenderConfig() DefenderConfig {
	return DefenderConfig{
		World: WorldConfig{
			Width:        1000,
			Height:       650,
			MaxDelta:     0.1,
			EnemyMargin:  100,
			BulletMargin: 50,
		},
		Player: PlayerConfig{
			Radius:        16,
			BaseHP:        120,
			HPPerLevel:    20,
			BaseSpeed:     300,
			SpeedPerLevel: 30,
			EdgeMargin:    20,
			StartX:        0.5,
			StartY:        0.7,
			StartBombs:    2,
			DashSpeed:     700,
			DashImpulse:   0.12,
			DashCooldown:  1.0,
		},
		Weapons: WeaponsConfig{
			BulletSpeed:      700,
			BulletRadius:     4,
			MuzzleOffset:     18,
			RapidFactor:      0.6,
			SingleRate:       0.16,
			SingleDamage:     12,
			SingleDamageStep: 2,
			SpreadRate:       0.26,
			SpreadDamage:     10,
			SpreadDamageStep: 1,
			SpreadAngle:      18,
			LaserRate:        0.38,
			LaserDPS:         6,
			LaserDPSStep:     1,
			LaserLife:        0.25,
			LaserOffset:      10,
			LaserReach:       4,
		},
		Enemies: EnemiesConfig{
			Radius:          12,
			BossRadius:      36,
			BaseHP:          20,
			HPPerLevel:      6,
			BossHPFactor:    6,
			BaseSpeed:       90,
			SpeedPerLevel:   8,
			BossSpeed:       45,
			BossHoverY:      120,
			CooldownMin:     0.6,
			CooldownMax:     1.8,
			ZigzagSpeed:     0.9,
			ZigzagFrequency: 4,
			ZigzagAmplitude: 0.8,
			ShooterSpeed:    0.6,
			ShotSpeed:       420,
			ShotDamage:      8,
			ShotRadius:      4,
			ShotCooldown:    0.9,
			ShotCooldownCut: 0.03,
			ShotCooldownMax: 0.5,
			RingInterval:    0.35,
			RingBullets:     12,
			RingSpin:        40,
			RingSpeed:       200,
			RingDamage:      10,
			RingRadius:      5,
		},
		Waves: WavesConfig{
			FirstInterlude:   4,
			Interlude:        6,
			DifficultyStep:   0.12,
			BaseCount:        4,
			CountPerWave:     2,
			MaxCount:         40,
			LevelDivisor:     3,
			BossEvery:        5,
			BossBaseLevel:    3,
			BossLevelDivisor: 5,
			BossSpawnY:       -120,
			SpawnInterval:    1.2,
			SpawnMinInterval: 0.3,
			SpawnAccel:       0.08,
			ExtraChance:      0.6,
			ExtraDivisor:     2,
			EdgeInset:        50,
			EdgeOffset:       40,
			ChaserWeight:     0.5,
			ShooterWeight:    0.25,
			ZigzagWeight:     0.25,
		},
		Combat: CombatConfig{
			KillScoreBase:    10,
			KillScorePerLvl:  3,
			KillCoinsBase:    1,
			KillCoinsDivisor: 2,
			DropChance:       0.18,
			ContactDamage:    18,
			LaserDamageScale: 8,
			BombRadius:       180,
			BombScore:        15,
			BombCoins:        2,
			BombGap:          0.5,
		},
		PowerUps: PowerUpsConfig{
			FallSpeed:    40,
			PickupRange:  12,
			DiscardBelow: 40,
			Heal:         40,
			BuffDuration: 6,
			MaxBombs:     6,
			Coins:        5,
		},
		Shop: ShopConfig{
			Items: []ShopItem{
				{Label: "Max HP +20", Key: "hp", Cost: 8},
				{Label: "Speed +30", Key: "speed", Cost: 10},
				{Label: "Damage +1", Key: "damage", Cost: 12},
				{Label: "Extra Bomb", Key: "bomb", Cost: 6},
				{Label: "Restore HP", Key: "heal", Cost: 5},
			},
			Heal: 40,
		},
		Particles: ParticlesConfig{
			Damping:        0.98,
			ExplosionSpeed: 200,
			KillAmount:     14,
			ContactAmount:  20,
			BombAmount:     18,
			LifeMin:        0.3,
			LifeMax:        0.9,
			TrailSpread:    30,
			TrailLifeMin:   0.2,
			TrailLifeMax:   0.45,
		},
	}
}
