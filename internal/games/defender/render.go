package defender

import (
	"fmt"
	"math"

	"github.com/vovakirdan/galactic-defender/internal/core"
	"github.com/vovakirdan/galactic-defender/internal/progress"
)

var (
	colorBackground = core.RGB(8, 10, 18)
	colorStar       = core.RGB(200, 200, 230)
	colorTitle      = core.RGB(160, 220, 255)
	colorText       = core.RGB(220, 220, 220)
	colorHUD        = core.RGB(220, 220, 240)
	colorHUDDim     = core.RGB(200, 200, 220)
	colorHint       = core.RGB(120, 130, 150)
	colorBanner     = core.RGB(200, 200, 255)
	colorSelected   = core.RGB(200, 255, 200)
	colorOption     = core.RGB(180, 200, 220)
	colorCoins      = core.RGB(255, 240, 200)
	colorGameOver   = core.RGB(255, 160, 160)
	colorEnemyHPBg  = core.RGB(50, 50, 70)
	colorEnemyHP    = core.RGB(200, 80, 80)
	colorOverlay    = core.Color{R: 0, G: 0, B: 0, A: 150}
)

const (
	glyphPlayer     = '▲'
	glyphShot       = '|'
	glyphEnemyShot  = '•'
	glyphLaser      = '┃'
	glyphParticle   = '·'
	glyphNose       = '^'
	controlsHint    = "Move WASD/Arrows  Fire Space/J  Switch Q/E  Dash K  Bomb B  Pause P  Shop Tab (interlude)"
	starCount       = 40
	backgroundBands = 8
)

var helpLines = []string{
	"How to Play:",
	"Move: WASD / Arrow keys",
	"Fire: Space / J",
	"Switch Weapon: Q / E",
	"Dash: K",
	"Bomb: B (consumable)",
	"Interludes between waves allow the Shop (Tab)",
	"Pick up power-ups for temporary boosts",
	"Press Enter or Esc to return",
}

// ID returns the identifier used for logs and storage.
func (g *Game) ID() string {
	return "defender"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Galactic Defender"
}

// Render builds the draw list for the current state. The returned list is
// reused by the next call.
func (g *Game) Render() *core.DrawList {
	d := g.draw
	d.Reset()
	d.Width, d.Height = g.cfg.World.Width, g.cfg.World.Height

	switch g.state {
	case StateMenu:
		g.drawMenu(d)
	case StateHelp:
		g.drawHelp(d)
	case StatePlay:
		g.drawWorld(d)
	case StatePause:
		g.drawWorld(d)
		d.Rect(core.V(0, 0), core.V(d.Width, d.Height), colorOverlay)
		d.BigText(core.V(d.Width/2, d.Height/2-40), "PAUSED", core.RGB(240, 240, 255), core.AlignCenter, 2)
		d.Text(core.V(d.Width/2, d.Height/2+10), "P / Esc to resume   M to abandon the run", colorHUDDim, core.AlignCenter)
	case StateShop:
		g.drawShop(d)
	case StateGameOver:
		g.drawGameOver(d)
	}
	return d
}

func (g *Game) drawMenu(d *core.DrawList) {
	w := d.Width
	d.Background = core.RGB(6, 8, 12)
	g.drawStars(d)
	d.BigText(core.V(w/2, 120), "GALACTIC DEFENDER", colorTitle, core.AlignCenter, 2.5)
	for i, label := range menuLabels {
		c, text := colorOption, "  "+label+"  "
		if i == g.menuSel {
			c, text = colorSelected, "> "+label+" <"
		}
		d.Text(core.V(w/2, 220+float64(i)*36), text, c, core.AlignCenter)
	}
	d.Text(core.V(w/2, 360), fmt.Sprintf("Hi-Score: %d", g.meta.HiScore), colorHUDDim, core.AlignCenter)
	d.Text(core.V(w/2, 400), "Enter to select   H = How to Play   Esc = Quit", colorHint, core.AlignCenter)
}

func (g *Game) drawHelp(d *core.DrawList) {
	d.Background = core.RGB(10, 12, 18)
	for i, line := range helpLines {
		d.Text(core.V(120, 120+float64(i)*30), line, colorText, core.AlignLeft)
	}
}

func (g *Game) drawShop(d *core.DrawList) {
	w, h := d.Width, d.Height
	d.Background = core.RGB(12, 14, 22)
	d.BigText(core.V(w/2, 80), "SHOP", core.RGB(200, 220, 255), core.AlignCenter, 2)
	coins := 0
	if g.run != nil {
		coins = g.run.Player.Coins
	}
	d.Text(core.V(w-200, 120), fmt.Sprintf("Coins: %d", coins), colorCoins, core.AlignLeft)

	for i, it := range g.cfg.Shop.Items {
		c, prefix := colorOption, "  "
		if i == g.shopSel {
			c, prefix = colorSelected, "> "
		}
		line := fmt.Sprintf("%s%s - %d coins", prefix, it.Label, it.Cost)
		if progress.IsUpgrade(it.Key) {
			line += fmt.Sprintf("  (lvl %d)", g.meta.Level(progress.Upgrade(it.Key)))
		}
		d.Text(core.V(w/3, 180+float64(i)*36), line, c, core.AlignLeft)
	}
	d.Text(core.V(w/2, h-80), "Up/Down to choose, Enter to buy, Esc to leave", core.RGB(160, 160, 180), core.AlignCenter)
}

func (g *Game) drawGameOver(d *core.DrawList) {
	w := d.Width
	d.Background = core.RGB(6, 8, 10)
	score := 0
	if g.run != nil {
		score = g.run.Player.Score
	}
	d.BigText(core.V(w/2, 160), "GAME OVER", colorGameOver, core.AlignCenter, 2.5)
	d.Text(core.V(w/2, 260), fmt.Sprintf("Score: %d  Hi: %d", score, g.meta.HiScore), colorText, core.AlignCenter)
	if g.run != nil {
		d.Text(core.V(w/2, 290), fmt.Sprintf("Reached wave %d", g.run.Wave), colorHUDDim, core.AlignCenter)
	}
	d.Text(core.V(w/2, 320), "Press Enter to return to Menu", colorText, core.AlignCenter)
}

// drawStars scatters a slowly drifting star field.
func (g *Game) drawStars(d *core.DrawList) {
	w, h := int(d.Width), int(d.Height)
	if w <= 0 || h <= 0 {
		return
	}
	for i := range starCount {
		x := (i*37 + int(g.clock*20)) % w
		y := (i*61 + int(g.clock*12)) % h
		d.Circle(core.V(float64(x), float64(y)), 1, colorStar, '.')
	}
}

func (g *Game) drawWorld(d *core.DrawList) {
	r := g.run
	w, h := d.Width, d.Height
	d.Background = colorBackground

	band := h / backgroundBands
	for i := range backgroundBands {
		v := uint8(18 + i*6)
		d.Rect(core.V(0, float64(i)*band), core.V(w, band), core.RGB(v+20, v+10, v+35).WithAlpha(0.35))
	}
	g.drawStars(d)

	for _, p := range r.PowerUps {
		d.Add(core.Shape{Kind: core.ShapeRing, Pos: p.Pos, Radius: 10, Width: 2, Color: p.Kind.color(), Glyph: p.Kind.Glyph()})
	}

	for _, e := range r.Enemies {
		d.Circle(e.Pos, e.Radius, e.Color, e.Kind.Glyph())
		ratio := 0.0
		if e.MaxHP > 0 {
			ratio = core.ClampF(e.HP/e.MaxHP, 0, 1)
		}
		bar := core.V(e.Pos.X-e.Radius, e.Pos.Y-e.Radius-8)
		d.Rect(bar, core.V(e.Radius*2, 4), colorEnemyHPBg)
		d.Rect(bar, core.V(e.Radius*2*ratio, 4), colorEnemyHP)
	}

	for _, b := range r.Bullets {
		glyph := glyphEnemyShot
		if b.Owner == OwnerPlayer {
			glyph = glyphShot
		}
		d.Circle(b.Pos, b.Radius, b.Color, glyph)
	}

	for _, l := range r.Lasers {
		end := l.Origin.Add(l.Dir.Scale(2000))
		d.Line(l.Origin, end, 3, colorLaser.WithAlpha(l.Alpha()), glyphLaser)
	}

	p := r.Player
	if p.Shielded() {
		pulse := 120 + 40*math.Sin(r.Elapsed*10)
		d.Ring(p.Pos, p.Radius*1.8, 3, colorShield.WithAlpha(pulse/255))
	}
	d.Circle(p.Pos, p.Radius, colorPlayer, glyphPlayer)
	d.Circle(core.V(p.Pos.X, p.Pos.Y-p.Radius-6), 3, colorNose, glyphNose)

	for _, pt := range r.particles.items {
		d.Circle(pt.Pos, pt.Radius, pt.Color.WithAlpha(pt.Alpha()), glyphParticle)
	}

	g.drawHUD(d)

	if r.Phase == PhaseInterlude {
		d.BigText(core.V(w/2, 120), "INTERLUDE - Press Tab to Open Shop", colorBanner, core.AlignCenter, 1.5)
		d.Text(core.V(w/2, 160), fmt.Sprintf("Wave %d in %.0fs", r.Wave+1, math.Ceil(r.PhaseTimer)), colorHUDDim, core.AlignCenter)
	}
}

func (g *Game) drawHUD(d *core.DrawList) {
	r := g.run
	p := r.Player

	pct := 0.0
	if p.MaxHP > 0 {
		pct = core.ClampF(p.HP/p.MaxHP, 0, 1)
	}
	d.Rect(core.V(18, 14), core.V(260, 18), colorHPBack)
	d.Rect(core.V(18, 14), core.V(260*pct, 18), colorHPFront)
	d.Text(core.V(22, 36), fmt.Sprintf("HP %d/%d", int(p.HP), int(p.MaxHP)), core.ColorWhite, core.AlignLeft)
	d.Text(core.V(18, 58), fmt.Sprintf("Score: %d  Coins: %d  Bombs: %d", p.Score, p.Coins, p.Bombs), colorHUD, core.AlignLeft)
	d.Text(core.V(18, 84), fmt.Sprintf("Wave: %d  Hi: %d  Weapon: %s", r.Wave, g.meta.HiScore, p.Weapon), colorHUDDim, core.AlignLeft)

	buffs := ""
	if p.Rapid > 0 {
		buffs += fmt.Sprintf("Rapid %.1fs  ", p.Rapid)
	}
	if p.Shield > 0 {
		buffs += fmt.Sprintf("Shield %.1fs", p.Shield)
	}
	if buffs != "" {
		d.Text(core.V(18, 110), buffs, colorShield, core.AlignLeft)
	}

	d.Text(core.V(d.Width-12, d.Height-28), controlsHint, colorHint, core.AlignRight)
}
