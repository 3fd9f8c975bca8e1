package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadDefender("")
	if err != nil {
		t.Fatalf("LoadDefender: %v", err)
	}
	def := DefaultDefenderConfig()

	if cfg.World != def.World || cfg.Player != def.Player || cfg.Weapons != def.Weapons {
		t.Errorf("embedded world/player/weapons differ from DefaultDefenderConfig")
	}
	if cfg.Enemies != def.Enemies || cfg.Waves != def.Waves || cfg.Combat != def.Combat {
		t.Errorf("embedded enemies/waves/combat differ from DefaultDefenderConfig")
	}
	if cfg.PowerUps != def.PowerUps || cfg.Particles != def.Particles {
		t.Errorf("embedded powerups/particles differ from DefaultDefenderConfig")
	}
	if len(cfg.Shop.Items) != len(def.Shop.Items) {
		t.Fatalf("shop items = %d, expected %d", len(cfg.Shop.Items), len(def.Shop.Items))
	}
	for i := range def.Shop.Items {
		if cfg.Shop.Items[i] != def.Shop.Items[i] {
			t.Errorf("shop item %d = %+v, expected %+v", i, cfg.Shop.Items[i], def.Shop.Items[i])
		}
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", configFile), "player:\n  base_hp: 200\n")
	cfg, err := LoadDefender("")
	if err != nil {
		t.Fatalf("LoadDefender: %v", err)
	}
	if cfg.Player.BaseHP != 200 {
		t.Errorf("local config not used: base_hp = %g", cfg.Player.BaseHP)
	}
	if cfg.Player.BaseSpeed != 300 {
		t.Errorf("unset keys should keep defaults, base_speed = %g", cfg.Player.BaseSpeed)
	}

	writeFile(t, filepath.Join(home, ".defender", "configs", configFile), "player:\n  base_hp: 250\n")
	cfg, _ = LoadDefender("")
	if cfg.Player.BaseHP != 250 {
		t.Errorf("user config should win over local, base_hp = %g", cfg.Player.BaseHP)
	}

	custom := filepath.Join(t.TempDir(), "mine.yaml")
	writeFile(t, custom, "player:\n  base_hp: 300\n")
	cfg, err = LoadDefender(custom)
	if err != nil {
		t.Fatalf("LoadDefender(custom): %v", err)
	}
	if cfg.Player.BaseHP != 300 {
		t.Errorf("custom path should win, base_hp = %g", cfg.Player.BaseHP)
	}
}

func TestLoadSkipsBrokenFiles(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".defender", "configs", configFile), "world: [not, a, map")

	cfg, err := LoadDefender("")
	if err != nil {
		t.Fatalf("broken user config should be skipped, got %v", err)
	}
	if cfg.World.Width != 1000 {
		t.Errorf("expected default width, got %g", cfg.World.Width)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadDefender(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "shop:\n  items:\n    - {label: x, key: teleport, cost: 1}\n")
	if _, err := LoadDefender(bad); err == nil {
		t.Error("unknown shop key should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DefenderConfig)
		ok     bool
	}{
		{"defaults", func(*DefenderConfig) {}, true},
		{"zero width", func(c *DefenderConfig) { c.World.Width = 0 }, false},
		{"zero delta", func(c *DefenderConfig) { c.World.MaxDelta = 0 }, false},
		{"inverted cooldown", func(c *DefenderConfig) { c.Enemies.CooldownMin = 3 }, false},
		{"zero divisor", func(c *DefenderConfig) { c.Waves.LevelDivisor = 0 }, false},
		{"no kind weights", func(c *DefenderConfig) {
			c.Waves.ChaserWeight, c.Waves.ShooterWeight, c.Waves.ZigzagWeight = 0, 0, 0
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDefenderConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	normal := DefaultDefenderConfig()
	ApplyDefenderPreset(&normal, DifficultyNormal)
	if normal.Player != DefaultDefenderConfig().Player {
		t.Error("normal preset should not change the player")
	}

	easy := DefaultDefenderConfig()
	ApplyDefenderPreset(&easy, DifficultyEasy)
	hard := DefaultDefenderConfig()
	ApplyDefenderPreset(&hard, DifficultyHard)

	if !(easy.Player.BaseHP > normal.Player.BaseHP && normal.Player.BaseHP > hard.Player.BaseHP) {
		t.Errorf("hp should fall with difficulty: %g / %g / %g", easy.Player.BaseHP, normal.Player.BaseHP, hard.Player.BaseHP)
	}
	if !(easy.Combat.DropChance > hard.Combat.DropChance) {
		t.Error("easy should drop more power-ups than hard")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"nightmare", DifficultyNormal, false},
	}
	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = %q, %v; expected %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestWaveScaler(t *testing.T) {
	w := NewWaveScaler(DefaultDefenderConfig().Waves)

	tests := []struct {
		wave      int
		count     int
		level     int
		boss      bool
		bossLevel int
		extra     int
	}{
		{1, 6, 1, false, 3, 1},
		{3, 10, 2, false, 3, 2},
		{5, 14, 2, true, 4, 3},
		{10, 24, 4, true, 5, 6},
		{18, 40, 7, false, 6, 10},
		{30, 40, 11, true, 9, 16},
	}

	for _, tc := range tests {
		if got := w.Count(tc.wave); got != tc.count {
			t.Errorf("Count(%d) = %d, expected %d", tc.wave, got, tc.count)
		}
		if got := w.Level(tc.wave); got != tc.level {
			t.Errorf("Level(%d) = %d, expected %d", tc.wave, got, tc.level)
		}
		if got := w.HasBoss(tc.wave); got != tc.boss {
			t.Errorf("HasBoss(%d) = %v, expected %v", tc.wave, got, tc.boss)
		}
		if got := w.BossLevel(tc.wave); got != tc.bossLevel {
			t.Errorf("BossLevel(%d) = %d, expected %d", tc.wave, got, tc.bossLevel)
		}
		if got := w.ExtraLevel(tc.wave); got != tc.extra {
			t.Errorf("ExtraLevel(%d) = %d, expected %d", tc.wave, got, tc.extra)
		}
	}

	if d := w.Difficulty(5); d < 1.5999 || d > 1.6001 {
		t.Errorf("Difficulty(5) = %f, expected 1.6", d)
	}
	if got := w.SpawnInterval(0); got != 1.2 {
		t.Errorf("SpawnInterval(0) = %f, expected 1.2", got)
	}
	if got := w.SpawnInterval(1000); got != 0.3 {
		t.Errorf("SpawnInterval should floor at 0.3, got %f", got)
	}
	if w.Interlude(1) != 4 || w.Interlude(2) != 6 {
		t.Errorf("Interlude = %f/%f, expected 4/6", w.Interlude(1), w.Interlude(2))
	}
}
