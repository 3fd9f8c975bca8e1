package progress

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	metaObject   = "progress"
	metaProperty = "meta"
)

// FileStore keeps the record as a YAML document in the per-user data
// directory managed by gdata (~/.local/share/<app> on Linux).
// A FileStore with a nil manager is in degraded mode: loads report
// ErrNoData and saves are dropped.
type FileStore struct {
	manager *gdata.Manager
}

// OpenFileStore opens the gdata storage for appName.
func OpenFileStore(appName string) (*FileStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &FileStore{}, fmt.Errorf("progress: cannot open data dir for %s: %w", appName, err)
	}
	return &FileStore{manager: m}, nil
}

// NewFileStore wraps an already opened manager. m may be nil.
func NewFileStore(m *gdata.Manager) *FileStore {
	return &FileStore{manager: m}
}

// LoadMeta reads and decodes the record.
func (s *FileStore) LoadMeta() (MetaState, error) {
	if s.manager == nil || !s.manager.ObjectPropExists(metaObject, metaProperty) {
		return MetaState{}, ErrNoData
	}

	data, err := s.manager.LoadObjectProp(metaObject, metaProperty)
	if err != nil {
		return MetaState{}, fmt.Errorf("progress: cannot read record: %w", err)
	}

	var m MetaState
	if err := yaml.Unmarshal(data, &m); err != nil {
		return MetaState{}, fmt.Errorf("progress: cannot decode record: %w", err)
	}
	return m, nil
}

// SaveMeta encodes and writes the record.
func (s *FileStore) SaveMeta(m MetaState) error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("progress: cannot encode record: %w", err)
	}
	if err := s.manager.SaveObjectProp(metaObject, metaProperty, data); err != nil {
		return fmt.Errorf("progress: cannot write record: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
