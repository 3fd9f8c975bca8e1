package progress

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
)

func sampleMeta() MetaState {
	m := NewMetaState()
	m.HiScore = 4200
	m.Raise(UpgradeHP)
	m.Raise(UpgradeHP)
	m.Raise(UpgradeDamage)
	return m
}

func sameMeta(a, b MetaState) bool {
	if a.HiScore != b.HiScore || len(a.Upgrades) != len(b.Upgrades) {
		return false
	}
	for k, v := range a.Upgrades {
		if b.Upgrades[k] != v {
			return false
		}
	}
	return true
}

func newTestLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	return l, &buf
}

func TestMetaStateHelpers(t *testing.T) {
	var m MetaState // nil map must be safe
	if m.Level(UpgradeSpeed) != 0 {
		t.Error("zero MetaState should report level 0")
	}
	m.Raise(UpgradeSpeed)
	if m.Level(UpgradeSpeed) != 1 {
		t.Errorf("Level after Raise = %d, expected 1", m.Level(UpgradeSpeed))
	}

	if !m.Record(100) || m.HiScore != 100 {
		t.Error("Record should raise the hi-score")
	}
	if m.Record(50) || m.HiScore != 100 {
		t.Error("Record should never lower the hi-score")
	}

	c := m.Clone()
	c.Raise(UpgradeSpeed)
	if m.Level(UpgradeSpeed) != 1 {
		t.Error("Clone should not share the upgrades map")
	}
}

func TestSanitize(t *testing.T) {
	m := MetaState{HiScore: -5, Upgrades: map[string]int{"hp": -2, "speed": 3}}
	s := m.Sanitize()
	if s.HiScore != 0 || s.Upgrades["hp"] != 0 || s.Upgrades["speed"] != 3 {
		t.Errorf("Sanitize() = %+v", s)
	}
	if m.Upgrades["hp"] != -2 {
		t.Error("Sanitize should not modify the receiver")
	}
	if (MetaState{}).Sanitize().Upgrades == nil {
		t.Error("Sanitize should allocate the upgrades map")
	}
}

func TestIsUpgrade(t *testing.T) {
	for _, u := range Upgrades() {
		if !IsUpgrade(string(u)) {
			t.Errorf("IsUpgrade(%q) = false", u)
		}
	}
	for _, k := range []string{"bomb", "heal", ""} {
		if IsUpgrade(k) {
			t.Errorf("IsUpgrade(%q) = true", k)
		}
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.LoadMeta(); !errors.Is(err, ErrNoData) {
		t.Fatalf("empty store LoadMeta() error = %v, expected ErrNoData", err)
	}

	want := sampleMeta()
	if err := s.SaveMeta(want); err != nil {
		t.Fatalf("SaveMeta: %v", err)
	}
	want.Raise(UpgradeSpeed) // must not leak into the store

	got, err := s.LoadMeta()
	if err != nil {
		t.Fatalf("LoadMeta: %v", err)
	}
	if !sameMeta(got, sampleMeta()) {
		t.Errorf("LoadMeta() = %+v, expected %+v", got, sampleMeta())
	}
}

type failingStore struct {
	loadErr, saveErr error
	meta             MetaState
}

func (f *failingStore) LoadMeta() (MetaState, error) { return f.meta, f.loadErr }
func (f *failingStore) SaveMeta(MetaState) error     { return f.saveErr }

func TestLoadOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		store    Store
		wantHi   int
		wantWarn bool
	}{
		{"nil store", nil, 0, false},
		{"no data", &failingStore{loadErr: ErrNoData}, 0, false},
		{"wrapped no data", &failingStore{loadErr: fmt.Errorf("x: %w", ErrNoData)}, 0, false},
		{"corrupt", &failingStore{loadErr: errors.New("bad yaml")}, 0, true},
		{"ok", &failingStore{meta: MetaState{HiScore: 7}}, 7, false},
		{"negative sanitized", &failingStore{meta: MetaState{HiScore: -7}}, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, buf := newTestLogger()
			m := LoadOrDefault(tc.store, logger)
			if m.HiScore != tc.wantHi {
				t.Errorf("HiScore = %d, expected %d", m.HiScore, tc.wantHi)
			}
			if m.Upgrades == nil {
				t.Error("Upgrades should never be nil")
			}
			if warned := strings.Contains(buf.String(), "WARN"); warned != tc.wantWarn {
				t.Errorf("warn logged = %v, expected %v (log: %q)", warned, tc.wantWarn, buf.String())
			}
		})
	}
}

func TestSaveBestEffort(t *testing.T) {
	logger, buf := newTestLogger()
	SaveBestEffort(&failingStore{saveErr: errors.New("disk full")}, sampleMeta(), logger)
	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("save failure should be logged, got %q", buf.String())
	}

	// nil store is a no-op
	SaveBestEffort(nil, sampleMeta(), logger)

	s := NewMemoryStore()
	SaveBestEffort(s, sampleMeta(), logger)
	if got, err := s.LoadMeta(); err != nil || got.HiScore != 4200 {
		t.Errorf("SaveBestEffort did not persist: %+v, %v", got, err)
	}
}

// openTestFileStore creates a gdata store under a throwaway app name.
func openTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	appName := fmt.Sprintf("defender_test_%d", time.Now().UnixNano())
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("cannot open gdata storage: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return NewFileStore(m)
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := openTestFileStore(t)

	if _, err := s.LoadMeta(); !errors.Is(err, ErrNoData) {
		t.Fatalf("fresh store LoadMeta() error = %v, expected ErrNoData", err)
	}

	want := sampleMeta()
	if err := s.SaveMeta(want); err != nil {
		t.Fatalf("SaveMeta: %v", err)
	}
	got, err := s.LoadMeta()
	if err != nil {
		t.Fatalf("LoadMeta: %v", err)
	}
	if !sameMeta(got, want) {
		t.Errorf("LoadMeta() = %+v, expected %+v", got, want)
	}

	// Overwrite keeps only the latest record.
	want.HiScore = 9000
	if err := s.SaveMeta(want); err != nil {
		t.Fatalf("SaveMeta: %v", err)
	}
	if got, _ := s.LoadMeta(); got.HiScore != 9000 {
		t.Errorf("HiScore after overwrite = %d, expected 9000", got.HiScore)
	}
}

func TestFileStoreCorruptRecord(t *testing.T) {
	s := openTestFileStore(t)
	if err := s.manager.SaveObjectProp(metaObject, metaProperty, []byte("hiscore: [")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	if _, err := s.LoadMeta(); err == nil || errors.Is(err, ErrNoData) {
		t.Errorf("corrupt record should fail to decode, got %v", err)
	}

	logger, _ := newTestLogger()
	if m := LoadOrDefault(s, logger); m.HiScore != 0 {
		t.Errorf("corrupt record should fall back to defaults, got %+v", m)
	}
}

func TestFileStoreDegraded(t *testing.T) {
	s := NewFileStore(nil)
	if _, err := s.LoadMeta(); !errors.Is(err, ErrNoData) {
		t.Errorf("degraded LoadMeta() error = %v, expected ErrNoData", err)
	}
	if err := s.SaveMeta(sampleMeta()); err != nil {
		t.Errorf("degraded SaveMeta() should be a no-op, got %v", err)
	}
}
