package orcamento

import (
	"log"
	"sync"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"github.com/shopspring/decimal"
)

// Service is the observable orçamento store. Every mutation is persisted and
// then announced to subscribers, so any mounted surface (header badge, cart
// endpoint) re-reads instead of polling.
type Service struct {
	mu      sync.Mutex
	lines   []Line
	storage Storage

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewService loads the persisted cart from storage. A read or parse failure
// degrades to an empty cart; it never takes the caller down.
func NewService(storage Storage) *Service {
	s := &Service{
		storage: storage,
		subs:    make(map[int]func()),
	}
	lines, err := storage.Load()
	if err != nil {
		log.Printf("orcamento: failed to load persisted cart, starting empty: %v", err)
		lines = nil
	}
	s.lines = lines
	return s
}

// Subscribe registers a callback fired after every committed mutation. The
// returned function unsubscribes; calling it twice is harmless.
func (s *Service) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// AddItem merges into an existing (product, modality) line, otherwise appends
// preserving insertion order. The unit price is whatever the caller snapshot
// carried; it is never re-fetched.
func (s *Service) AddItem(line Line) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	s.mu.Lock()
	merged := false
	for i := range s.lines {
		if s.lines[i].Product.ID == line.Product.ID && s.lines[i].Modality == line.Modality {
			s.lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, line)
	}
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// UpdateQuantity sets the quantity of an existing line. A quantity below 1 or
// a missing line is a silent no-op.
func (s *Service) UpdateQuantity(productID string, modality models.Modality, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	changed := false
	for i := range s.lines {
		if s.lines[i].Product.ID == productID && s.lines[i].Modality == modality {
			s.lines[i].Quantity = quantity
			changed = true
			break
		}
	}
	if changed {
		s.persistLocked()
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// RemoveItem drops the matching line. Absent lines are ignored, so removal is
// idempotent.
func (s *Service) RemoveItem(productID string, modality models.Modality) {
	s.mu.Lock()
	changed := false
	for i := range s.lines {
		if s.lines[i].Product.ID == productID && s.lines[i].Modality == modality {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			changed = true
			break
		}
	}
	if changed {
		s.persistLocked()
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *Service) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Items returns the lines in insertion order.
func (s *Service) Items() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total sums unit price × quantity over all lines. Prices already coerce to
// zero at decode time, so the result is always a well-formed decimal.
func (s *Service) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// TotalItemCount sums quantities across lines (the header badge number).
func (s *Service) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

func (s *Service) persistLocked() {
	if err := s.storage.Save(s.lines); err != nil {
		log.Printf("orcamento: failed to persist cart: %v", err)
	}
}

// notify runs subscriber callbacks outside the line lock so a subscriber may
// call back into the service.
func (s *Service) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
