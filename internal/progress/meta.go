// Package progress holds the state that outlives a single run: the
// hi-score and the permanent upgrade levels bought in the shop.
package progress

import "maps"

// Upgrade names a permanent upgrade track.
type Upgrade string

const (
	UpgradeHP     Upgrade = "hp"
	UpgradeSpeed  Upgrade = "speed"
	UpgradeDamage Upgrade = "damage"
)

// Upgrades lists the permanent upgrade tracks in display order.
func Upgrades() []Upgrade {
	return []Upgrade{UpgradeHP, UpgradeSpeed, UpgradeDamage}
}

// IsUpgrade reports whether key names a permanent upgrade.
func IsUpgrade(key string) bool {
	switch Upgrade(key) {
	case UpgradeHP, UpgradeSpeed, UpgradeDamage:
		return true
	}
	return false
}

// MetaState is the persisted record.
type MetaState struct {
	HiScore  int            `yaml:"hiscore" json:"hiscore"`
	Upgrades map[string]int `yaml:"upgrades" json:"upgrades"`
}

// NewMetaState returns the defaults used when nothing was saved yet.
func NewMetaState() MetaState {
	return MetaState{Upgrades: map[string]int{}}
}

// Level returns the level of an upgrade track, 0 if never bought.
func (m MetaState) Level(u Upgrade) int {
	return m.Upgrades[string(u)]
}

// Raise adds one level to an upgrade track.
func (m *MetaState) Raise(u Upgrade) {
	if m.Upgrades == nil {
		m.Upgrades = map[string]int{}
	}
	m.Upgrades[string(u)]++
}

// Record raises the hi-score to score if it is higher. Reports whether it did.
func (m *MetaState) Record(score int) bool {
	if score > m.HiScore {
		m.HiScore = score
		return true
	}
	return false
}

// Clone returns a deep copy.
func (m MetaState) Clone() MetaState {
	c := MetaState{HiScore: m.HiScore, Upgrades: make(map[string]int, len(m.Upgrades))}
	maps.Copy(c.Upgrades, m.Upgrades)
	return c
}

// Sanitize fixes values a hand-edited or damaged record may carry:
// negative numbers become 0 and a nil map becomes empty.
func (m MetaState) Sanitize() MetaState {
	c := m.Clone()
	c.HiScore = max(c.HiScore, 0)
	for k, v := range c.Upgrades {
		if v < 0 {
			c.Upgrades[k] = 0
		}
	}
	return c
}
