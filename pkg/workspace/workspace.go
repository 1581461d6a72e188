// Package workspace manages the peak lists registered in a processing
// session. Tasks receive a Workspace explicitly instead of reaching into a
// process-wide registry.
package workspace

import (
	"fmt"
	"sync"

	"github.com/ChrisMcGann/isotoper/pkg/core"
)

// Workspace registers and removes peak lists produced by processing tasks.
type Workspace interface {
	Register(list *core.PeakList) error
	Remove(list *core.PeakList) error
}

// Memory is an in-memory Workspace keyed by peak-list name. It is safe for
// concurrent use.
type Memory struct {
	mu    sync.RWMutex
	lists map[string]*core.PeakList
	order []string
}

// NewMemory creates an empty in-memory workspace.
func NewMemory() *Memory {
	return &Memory{
		lists: make(map[string]*core.PeakList),
	}
}

// Register adds a peak list to the workspace. Registering a nil list, a
// list without a name, or a name already in use is an error.
func (m *Memory) Register(list *core.PeakList) error {
	if list == nil {
		return fmt.Errorf("cannot register nil peak list")
	}
	if list.Name == "" {
		return fmt.Errorf("cannot register peak list without a name")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.lists[list.Name]; exists {
		return fmt.Errorf("peak list %q is already registered", list.Name)
	}
	m.lists[list.Name] = list
	m.order = append(m.order, list.Name)
	return nil
}

// Remove deletes a peak list from the workspace.
func (m *Memory) Remove(list *core.PeakList) error {
	if list == nil {
		return fmt.Errorf("cannot remove nil peak list")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.lists[list.Name]; !exists {
		return fmt.Errorf("peak list %q is not registered", list.Name)
	}
	delete(m.lists, list.Name)
	for i, name := range m.order {
		if name == list.Name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the registered peak list with the given name, if present.
func (m *Memory) Get(name string) (*core.PeakList, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list, ok := m.lists[name]
	return list, ok
}

// Names returns the registered peak-list names in registration order.
func (m *Memory) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}
