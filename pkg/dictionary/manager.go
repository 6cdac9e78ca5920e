package dictionary

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Manager ties a Store to the word list file it was loaded from and mediates
// load/reload requests coming from the server or CLI.
type Manager struct {
	store *Store
	mu    sync.RWMutex
	path  string
}

// Info describes the current dictionary state.
type Info struct {
	Path   string
	Words  int
	Loaded bool
}

// NewManager creates a manager around an existing store.
func NewManager(store *Store) *Manager {
	return &Manager{store: store}
}

// Store returns the managed store.
func (m *Manager) Store() *Store {
	return m.store
}

// Load validates and loads the word list at path, replacing any previously
// loaded dictionary. On failure the store is empty and no path is recorded,
// so all subsequent queries see "no dictionary" semantics until a successful
// reload.
func (m *Manager) Load(path string) error {
	if err := ValidateWordList(path); err != nil {
		m.store.Reset()
		m.setPath("")
		return err
	}
	if err := m.store.LoadFile(path); err != nil {
		m.setPath("")
		return err
	}
	m.setPath(path)
	log.Debugf("Dictionary active: %s (%d words)", path, m.store.Len())
	return nil
}

// Reload re-reads the currently active word list file.
func (m *Manager) Reload() error {
	m.mu.RLock()
	path := m.path
	m.mu.RUnlock()

	if path == "" {
		return fmt.Errorf("no dictionary loaded")
	}
	return m.Load(path)
}

// GetInfo returns the current dictionary state.
func (m *Manager) GetInfo() Info {
	m.mu.RLock()
	path := m.path
	m.mu.RUnlock()

	words := m.store.Len()
	return Info{
		Path:   path,
		Words:  words,
		Loaded: path != "" && words > 0,
	}
}

func (m *Manager) setPath(path string) {
	m.mu.Lock()
	m.path = path
	m.mu.Unlock()
}
