package progress

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrNoData is returned by LoadMeta when nothing was saved yet.
var ErrNoData = errors.New("progress: no saved data")

// Store persists a MetaState.
type Store interface {
	LoadMeta() (MetaState, error)
	SaveMeta(MetaState) error
}

// LoadOrDefault loads the record from s, falling back to defaults on any
// failure. Missing data is normal on a first run and is not logged; other
// errors are logged at warn level. A nil store yields defaults.
func LoadOrDefault(s Store, logger *log.Logger) MetaState {
	if logger == nil {
		logger = log.Default()
	}
	if s == nil {
		return NewMetaState()
	}
	m, err := s.LoadMeta()
	switch {
	case errors.Is(err, ErrNoData):
		logger.Debug("no saved progress, starting fresh")
		return NewMetaState()
	case err != nil:
		logger.Warn("cannot load progress, using defaults", "err", err)
		return NewMetaState()
	}
	m = m.Sanitize()
	logger.Debug("progress loaded", "hiscore", m.HiScore, "upgrades", m.Upgrades)
	return m
}

// SaveBestEffort writes m to s, logging instead of returning failures.
func SaveBestEffort(s Store, m MetaState, logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	if s == nil {
		return
	}
	if err := s.SaveMeta(m); err != nil {
		logger.Warn("cannot save progress", "err", err)
		return
	}
	logger.Debug("progress saved", "hiscore", m.HiScore)
}

// MemoryStore keeps the record in memory. Used by tests and by --backend=memory.
type MemoryStore struct {
	mu    sync.Mutex
	meta  MetaState
	saved bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadMeta returns a copy of the last saved record.
func (s *MemoryStore) LoadMeta() (MetaState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return MetaState{}, ErrNoData
	}
	return s.meta.Clone(), nil
}

// SaveMeta stores a copy of m.
func (s *MemoryStore) SaveMeta(m MetaState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta = m.Clone()
	s.saved = true
	return nil
}

var _ Store = (*MemoryStore)(nil)
