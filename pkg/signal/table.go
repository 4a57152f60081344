package signal

import (
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/sigcast/pkg/domain"
)

// Table is a directory of signals by name, used by the loaders and tools
// that address signals textually.
type Table struct {
	mu      sync.RWMutex
	signals map[string]*Signal
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{signals: make(map[string]*Signal)}
}

// Add inserts s. Names are unique.
func (t *Table) Add(s *Signal) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.signals[s.Name()]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateSignal, s.Name())
	}
	t.signals[s.Name()] = s
	return nil
}

// Lookup returns the signal called name.
func (t *Table) Lookup(name string) (*Signal, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s, ok := t.signals[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSignalNotFound, name)
	}
	return s, nil
}

// Names returns the signal names in sorted order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.signals))
	for name := range t.signals {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of signals.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.signals)
}
