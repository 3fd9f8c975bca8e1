package defender

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/galactic-defender/internal/config"
	"github.com/vovakirdan/galactic-defender/internal/core"
	"github.com/vovakirdan/galactic-defender/internal/progress"
)

var (
	// ErrInsufficientCoins is returned by Buy when the player cannot afford the item.
	ErrInsufficientCoins = errors.New("defender: not enough coins")

	// ErrNoRun is returned by Buy before the first run has started.
	ErrNoRun = errors.New("defender: no run in progress")
)

// ShopItems returns the catalogue in display order.
func (g *Game) ShopItems() []config.ShopItem {
	return g.cfg.Shop.Items
}

// ShopSelection returns the highlighted shop entry.
func (g *Game) ShopSelection() int {
	return g.shopSel
}

// Buy purchases the shop item at index. Either the whole purchase happens
// or nothing changes.
func (g *Game) Buy(index int) error {
	if g.run == nil {
		return ErrNoRun
	}
	items := g.cfg.Shop.Items
	if index < 0 || index >= len(items) {
		return fmt.Errorf("defender: no shop item %d", index)
	}
	item := items[index]
	p := g.run.Player
	if p.Coins < item.Cost {
		return ErrInsufficientCoins
	}
	p.Coins -= item.Cost

	switch item.Key {
	case string(progress.UpgradeHP), string(progress.UpgradeSpeed), string(progress.UpgradeDamage):
		u := progress.Upgrade(item.Key)
		g.meta.Raise(u)
		p.Upgrades[u]++
		switch u {
		case progress.UpgradeHP:
			p.MaxHP += g.cfg.Player.HPPerLevel
			p.HP = p.MaxHP
		case progress.UpgradeSpeed:
			p.Speed += g.cfg.Player.SpeedPerLevel
		}
	case "bomb":
		p.Bombs++
	case "heal":
		p.heal(g.cfg.Shop.Heal)
	}
	return nil
}

// stepShop handles navigation inside the shop.
func (g *Game) stepShop(in core.InputFrame) {
	n := len(g.cfg.Shop.Items)
	switch {
	case g.pressed(in, core.ActionCancel):
		g.state = StatePlay
	case n == 0:
	case g.pressed(in, core.ActionMenuUp):
		g.shopSel = (g.shopSel - 1 + n) % n
	case g.pressed(in, core.ActionMenuDown):
		g.shopSel = (g.shopSel + 1) % n
	case g.pressed(in, core.ActionConfirm):
		_ = g.Buy(g.shopSel) // not enough coins: nothing happens
	}
}
