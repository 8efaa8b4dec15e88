package theme

import (
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

type stored struct {
	Theme string `yaml:"theme"`
}

// FileStore keeps the mode in a small yaml document.
type FileStore struct {
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, "theme.yaml")}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() (Mode, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Light, false, nil
		}
		return Light, false, err
	}

	var doc stored
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Light, false, err
	}
	if doc.Theme == "" {
		return Light, false, nil
	}
	mode, err := Parse(doc.Theme)
	if err != nil {
		return Light, false, err
	}
	return mode, true, nil
}

func (s *FileStore) Save(mode Mode) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(stored{Theme: mode.String()})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

type MemoryStore struct {
	mu   sync.Mutex
	mode Mode
	ok   bool
}

func (s *MemoryStore) Load() (Mode, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, s.ok, nil
}

func (s *MemoryStore) Save(mode Mode) error {
	s.mu.Lock()
	s.mode, s.ok = mode, true
	s.mu.Unlock()
	return nil
}
