package ledger

import (
	"context"
	"sort"
	"sync"
)

var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository keeps bindings in process memory.
type MemoryRepository struct {
	mu        sync.RWMutex
	transfers map[string]map[string]Binding
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{transfers: make(map[string]map[string]Binding)}
}

func (r *MemoryRepository) Record(_ context.Context, b Binding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names, ok := r.transfers[b.Transfer]
	if !ok {
		names = make(map[string]Binding)
		r.transfers[b.Transfer] = names
	}
	names[b.Name] = b
	return nil
}

func (r *MemoryRepository) List(_ context.Context, transfer string) ([]Binding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Binding, 0, len(r.transfers[transfer]))
	for _, b := range r.transfers[transfer] {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *MemoryRepository) Close() error {
	return nil
}
