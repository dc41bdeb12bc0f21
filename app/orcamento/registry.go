package orcamento

import "sync"

// Registry hands out one Service per cart ID. Carts are browser-scoped: the
// ID comes from the session cookie and never references catalog rows.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*Service
	dir   string
}

// NewRegistry creates a registry persisting carts under dir. An empty dir
// keeps carts in memory only.
func NewRegistry(dir string) *Registry {
	return &Registry{
		carts: make(map[string]*Service),
		dir:   dir,
	}
}

func (r *Registry) Get(cartID string) *Service {
	r.mu.Lock()
	defer r.mu.Unlock()

	if svc, ok := r.carts[cartID]; ok {
		return svc
	}

	var storage Storage
	if r.dir != "" {
		storage = NewFileStorage(r.dir, cartID)
	} else {
		storage = NewMemoryStorage()
	}
	svc := NewService(storage)
	r.carts[cartID] = svc
	return svc
}
