package tui

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/galactic-defender/internal/config"
	"github.com/vovakirdan/galactic-defender/internal/core"
	"github.com/vovakirdan/galactic-defender/internal/games/defender"
	"github.com/vovakirdan/galactic-defender/internal/progress"
	"github.com/vovakirdan/galactic-defender/internal/storage"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key  string
		want []core.Action
	}{
		{"w", []core.Action{core.ActionMoveUp, core.ActionMenuUp}},
		{"up", []core.Action{core.ActionMoveUp, core.ActionMenuUp}},
		{"left", []core.Action{core.ActionMoveLeft}},
		{" ", []core.Action{core.ActionFire}},
		{"j", []core.Action{core.ActionFire}},
		{"q", []core.Action{core.ActionSwitchLeft}},
		{"e", []core.Action{core.ActionSwitchRight}},
		{"k", []core.Action{core.ActionDash}},
		{"b", []core.Action{core.ActionBomb}},
		{"p", []core.Action{core.ActionPause}},
		{"esc", []core.Action{core.ActionPause, core.ActionCancel}},
		{"m", []core.Action{core.ActionCancel}},
		{"tab", []core.Action{core.ActionShop}},
		{"enter", []core.Action{core.ActionConfirm}},
		{"h", []core.Action{core.ActionHelp}},
		{"z", nil},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got := km.Actions(keyMsg(tc.key))
			if !slices.Equal(got, tc.want) {
				t.Errorf("Actions(%q) = %v, expected %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestHeldKeysDecay(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(t0, core.ActionFire, core.ActionMoveLeft)
	if in := h.Frame(t0.Add(50 * time.Millisecond)); !in.Has(core.ActionFire) || !in.Has(core.ActionMoveLeft) {
		t.Error("keys should be held inside the window")
	}

	h.Press(t0.Add(80*time.Millisecond), core.ActionFire) // auto-repeat
	in := h.Frame(t0.Add(150 * time.Millisecond))
	if !in.Has(core.ActionFire) {
		t.Error("repeated key should stay held")
	}
	if in.Has(core.ActionMoveLeft) {
		t.Error("key without repeat should be released")
	}

	h.Release()
	if h.Frame(t0.Add(151 * time.Millisecond)).Has(core.ActionFire) {
		t.Error("Release should drop every key")
	}
}

func TestHeldKeysDefaultWindow(t *testing.T) {
	h := NewHeldKeys(0)
	if h.window != DefaultHoldWindow {
		t.Errorf("window = %v, expected %v", h.window, DefaultHoldWindow)
	}
	if h.window <= 500*time.Millisecond {
		t.Errorf("window %v does not cover a 500ms repeat delay", h.window)
	}
}

// holdKey feeds a tracker the way a terminal reports a held key: one press
// at start, a repeat delay, then repeats every 33ms until release.
// It steps game every 16ms until settle and returns each new screen seen.
func holdKey(game *defender.Game, h *HeldKeys, start time.Time, a core.Action, delay, release, settle time.Duration) []defender.State {
	const tick = 16 * time.Millisecond
	next := delay
	h.Press(start, a)

	screens := []defender.State{game.Screen()}
	for at := tick; at <= settle; at += tick {
		for next <= at && next <= release {
			h.Press(start.Add(next), a)
			next += 33 * time.Millisecond
		}
		game.Step(h.Frame(start.Add(at)), tick.Seconds())
		if s := game.Screen(); s != screens[len(screens)-1] {
			screens = append(screens, s)
		}
	}
	return screens
}

func newPlayingGame() *defender.Game {
	meta := progress.NewMetaState()
	game := defender.New(&meta, defender.WithConfig(config.DefaultDefenderConfig()))
	game.Reset(core.RuntimeConfig{TickRate: 60, Seed: 3})
	game.Start()
	return game
}

func TestHeldKeyTogglesOnce(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name  string
		delay time.Duration
	}{
		{"short delay", 250 * time.Millisecond},
		{"typical delay", 500 * time.Millisecond},
		{"slow delay", 580 * time.Millisecond},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			game := newPlayingGame()
			screens := holdKey(game, NewHeldKeys(0), t0, core.ActionPause, tc.delay, 1500*time.Millisecond, 2500*time.Millisecond)
			want := []defender.State{defender.StatePlay, defender.StatePause}
			if !slices.Equal(screens, want) {
				t.Errorf("holding pause once gave screens %v, expected %v", screens, want)
			}
		})
	}
}

func TestHeldSwitchFiresOnce(t *testing.T) {
	game := newPlayingGame()
	before := game.Run().Player.Weapon

	holdKey(game, NewHeldKeys(0), time.Unix(1000, 0), core.ActionSwitchRight, 500*time.Millisecond, 1200*time.Millisecond, 2000*time.Millisecond)

	game2 := newPlayingGame()
	game2.Step(core.NewInputFrame(), 0.016)
	in := core.NewInputFrame()
	in.Set(core.ActionSwitchRight)
	game2.Step(in, 0.016)

	if got, want := game.Run().Player.Weapon, game2.Run().Player.Weapon; got != want || got == before {
		t.Errorf("weapon after holding switch = %v, expected a single step to %v", got, want)
	}
}

func TestHeldMovementStopsSoonAfterRelease(t *testing.T) {
	h := NewHeldKeys(0)
	t0 := time.Unix(1000, 0)

	h.Press(t0, core.ActionMoveLeft)
	if !h.Frame(t0.Add(550 * time.Millisecond)).Has(core.ActionMoveLeft) {
		t.Error("key should stay held through the repeat delay")
	}
	for at := 500 * time.Millisecond; at <= time.Second; at += 33 * time.Millisecond {
		h.Press(t0.Add(at), core.ActionMoveLeft, core.ActionPause)
	}
	last := t0.Add(995 * time.Millisecond)

	in := h.Frame(last.Add(RepeatHoldWindow + time.Millisecond))
	if in.Has(core.ActionMoveLeft) {
		t.Error("repeating movement should release after the repeat window")
	}
	if !in.Has(core.ActionPause) {
		t.Error("pause should stay latched for the full window")
	}
	if h.Frame(last.Add(DefaultHoldWindow + time.Millisecond)).Has(core.ActionPause) {
		t.Error("pause should release after the full window")
	}
}

func TestRasterizeScalesAndClips(t *testing.T) {
	d := core.NewDrawList(100, 50, core.RGB(1, 2, 3))
	d.Circle(core.V(50, 25), 1, core.ColorWhite, '@')
	d.Circle(core.V(-500, 25), 1, core.ColorWhite, 'X')
	d.Text(core.V(0, 0), "HI", core.ColorWhite, core.AlignLeft)
	d.Text(core.V(100, 49), "END", core.ColorWhite, core.AlignRight)

	s := core.NewScreen(10, 5)
	Rasterize(d, s)

	if s.Get(5, 2) != '@' {
		t.Errorf("centre disc missing, screen:\n%s", s.String())
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("off-screen shape should be clipped")
	}
	if s.Row(0)[:2] != "HI" {
		t.Errorf("row 0 = %q", s.Row(0))
	}
	if !strings.HasSuffix(s.Row(4), "END") {
		t.Errorf("right-aligned text row = %q", s.Row(4))
	}
	if s.GetCell(9, 0).Bg != core.RGB(1, 2, 3) {
		t.Error("background should fill every cell")
	}
}

func TestRasterizeRectTintsBackground(t *testing.T) {
	d := core.NewDrawList(10, 10, core.ColorBlack)
	d.Text(core.V(0, 0), "A", core.ColorWhite, core.AlignLeft)
	d.Rect(core.V(0, 0), core.V(10, 10), core.Color{R: 255, A: 255})

	s := core.NewScreen(10, 10)
	Rasterize(d, s)

	c := s.GetCell(0, 0)
	if c.Rune != 'A' || c.Bg != core.RGB(255, 0, 0) {
		t.Errorf("rect should only change the background, got %+v", c)
	}
}

func TestRasterizeAlphaBlends(t *testing.T) {
	d := core.NewDrawList(10, 10, core.ColorBlack)
	d.Circle(core.V(5, 5), 0.1, core.Color{R: 200, G: 200, B: 200, A: 127}, '*')
	d.Circle(core.V(1, 1), 0.1, core.Color{R: 200, A: 0}, '!')

	s := core.NewScreen(10, 10)
	Rasterize(d, s)

	if c := s.GetCell(5, 5); c.Color.R >= 200 || c.Color.R == 0 || c.Color.A != 255 {
		t.Errorf("half transparent glyph should be dimmed, got %+v", c.Color)
	}
	if s.Get(1, 1) == '!' {
		t.Error("fully transparent shapes should not be drawn")
	}
}

func TestRasterizeLine(t *testing.T) {
	d := core.NewDrawList(10, 10, core.ColorBlack)
	d.Line(core.V(0.5, 9.5), core.V(0.5, -5000), 1, core.ColorWhite, '|')

	s := core.NewScreen(10, 10)
	Rasterize(d, s)
	for y := range 10 {
		if s.Get(0, y) != '|' {
			t.Fatalf("beam missing at row %d", y)
		}
	}
}

func TestRasterizeEmptyScreen(t *testing.T) {
	d := core.NewDrawList(10, 10, core.ColorBlack)
	d.Circle(core.V(5, 5), 3, core.ColorWhite, 0)
	Rasterize(d, core.NewScreen(0, 0))
}

func TestRenderScreenGroupsColours(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawTextColored(0, 0, "ab", core.RGB(255, 0, 0))
	s.DrawTextColored(2, 0, "cd", core.RGB(0, 255, 0))

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output %q missing %q", out, want)
		}
	}

	plain := core.NewScreen(3, 2)
	plain.DrawTextColored(0, 0, "xyz", core.ColorDefault)
	if got := RenderScreen(plain); got != "xyz\n   " {
		t.Errorf("uncoloured screen should render as plain text, got %q", got)
	}
}

type fakeRuns struct {
	saved []storage.RunRecord
	err   error
}

func (f *fakeRuns) SaveRun(r storage.RunRecord) (int64, error) {
	f.saved = append(f.saved, r)
	return int64(len(f.saved)), f.err
}

func (f *fakeRuns) TopRuns(int) ([]storage.RunRecord, error) {
	return f.saved, f.err
}

func (f *fakeRuns) RecentRuns(int) ([]storage.RunRecord, error) {
	out := slices.Clone(f.saved)
	slices.Reverse(out)
	return out, f.err
}

func newTestModel(t *testing.T) (Model, *fakeRuns, *progress.MemoryStore) {
	t.Helper()
	meta := progress.NewMetaState()
	game := defender.New(&meta, defender.WithConfig(config.DefaultDefenderConfig()))
	runs := &fakeRuns{}
	store := progress.NewMemoryStore()
	m := NewModel(game, Options{
		Runtime:    core.RuntimeConfig{TickRate: 60, Seed: 9},
		Width:      80,
		Height:     24,
		Store:      store,
		Runs:       runs,
		Difficulty: "hard",
	})
	m.Init()
	return m, runs, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelStartsRunFromMenu(t *testing.T) {
	m, _, _ := newTestModel(t)
	now := time.Now()

	m = update(t, m, TickMsg(now))
	if m.GameState().Screen != "menu" {
		t.Fatalf("screen = %q, expected menu", m.GameState().Screen)
	}

	m = update(t, m, keyMsg("enter"))
	m = update(t, m, TickMsg(now.Add(16*time.Millisecond)))
	if m.GameState().Screen != "play" {
		t.Errorf("Enter should start a run, screen = %q", m.GameState().Screen)
	}

	if !strings.Contains(m.View(), "INTERLUDE") {
		t.Error("view should show the interlude banner")
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	m, runs, store := newTestModel(t)
	now := time.Now()
	m.game.Start()
	m.game.Run().Player.Score = 40
	m.game.Run().Player.HP = 0

	for i := range 5 {
		m = update(t, m, TickMsg(now.Add(time.Duration(i)*16*time.Millisecond)))
	}
	if !m.GameState().GameOver {
		t.Fatal("run should be over")
	}
	if len(runs.saved) != 1 {
		t.Fatalf("run recorded %d times, expected once", len(runs.saved))
	}
	if r := runs.saved[0]; r.Score != 40 || r.Difficulty != "hard" {
		t.Errorf("recorded %+v", r)
	}
	meta, err := store.LoadMeta()
	if err != nil || meta.HiScore != 40 {
		t.Errorf("progress not saved: %+v, %v", meta, err)
	}
}

func TestModelRecordFailureIsIgnored(t *testing.T) {
	m, runs, _ := newTestModel(t)
	runs.err = errors.New("disk full")
	m.game.Start()
	m.game.Run().Player.Score = 5
	m.game.Run().Player.HP = 0

	m = update(t, m, TickMsg(time.Now()))
	if !m.GameState().GameOver {
		t.Error("a failed save should not disturb the game")
	}
}

func TestModelQuit(t *testing.T) {
	m, _, store := newTestModel(t)
	next, cmd := m.Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatal("ctrl+c should return a quit command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
	if _, err := store.LoadMeta(); err != nil {
		t.Errorf("progress should be saved on quit: %v", err)
	}
}

func TestModelResize(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestScoreboardViews(t *testing.T) {
	runs := &fakeRuns{saved: []storage.RunRecord{
		{ID: 1, Score: 300, Wave: 6, Difficulty: "normal"},
		{ID: 2, Score: 120, Wave: 3, Difficulty: "easy"},
	}}
	m := NewScoreboardModel(runs, 100, 30)
	if m.CurrentView() != ViewTop || len(m.Runs()) != 2 {
		t.Fatalf("view=%s runs=%d", m.CurrentView(), len(m.Runs()))
	}
	if !strings.Contains(m.View(), "300") {
		t.Error("top view should list the best score")
	}

	next, _ := m.Update(keyMsg("tab"))
	m = next.(ScoreboardModel)
	if m.CurrentView() != ViewRecent || m.Runs()[0].ID != 2 {
		t.Errorf("tab should switch to recent runs, got %s", m.CurrentView())
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	if v := NewScoreboardModel(nil, 80, 24).View(); !strings.Contains(v, "No runs recorded yet") {
		t.Error("empty board should say so")
	}
	m := NewScoreboardModel(&fakeRuns{err: errors.New("locked")}, 80, 24)
	if !strings.Contains(m.View(), "locked") {
		t.Error("load error should be shown")
	}
}
