package repository

import (
	"context"
	"maps"
	"slices"
	"sync"

	"staffing/internal/domain"
)

// MemoryStore keeps the directory and committed slots in process memory.
// Records are returned in id order.
type MemoryStore struct {
	mu            sync.RWMutex
	professionals map[int64]domain.Professional
	orders        map[int64]domain.Order
	slots         map[int64]domain.ScheduleSlot
	lastSlotID    int64

	locks *keyedMutex
}

func NewMemoryStore(professionals []domain.Professional, orders []domain.Order) *MemoryStore {
	s := &MemoryStore{
		professionals: make(map[int64]domain.Professional, len(professionals)),
		orders:        make(map[int64]domain.Order, len(orders)),
		slots:         make(map[int64]domain.ScheduleSlot),
		locks:         newKeyedMutex(),
	}
	for _, p := range professionals {
		s.professionals[p.ID] = p
	}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	return s
}

// Reset drops every committed slot and restarts the slot id sequence.
// Test harnesses only.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots = make(map[int64]domain.ScheduleSlot)
	s.lastSlotID = 0
}

func (s *MemoryStore) Professionals() ProfessionalRepository { return memoryProfessionals{s} }
func (s *MemoryStore) Orders() OrderRepository { return memoryOrders{s} }
func (s *MemoryStore) Slots() SlotRepository { return memorySlots{s} }

func (s *MemoryStore) WithProfessionalLock(ctx context.Context, professionalID int64, fn func(ctx context.Context, slots SlotRepository) error) error {
	unlock := s.locks.Lock(professionalID)
	defer unlock()

	tx := &memorySlotTx{store: s}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, slot := range tx.pending {
		s.lastSlotID++
		slot.ID = s.lastSlotID
		s.slots[slot.ID] = *slot
	}
	return nil
}

func (s *MemoryStore) listSlots(match func(domain.ScheduleSlot) bool) []domain.ScheduleSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slots := make([]domain.ScheduleSlot, 0)
	for _, id := range slices.Sorted(maps.Keys(s.slots)) {
		if slot := s.slots[id]; match(slot) {
			slots = append(slots, slot)
		}
	}
	return slots
}

type memoryProfessionals struct{ s *MemoryStore }

func (r memoryProfessionals) List(_ context.Context) ([]domain.Professional, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	professionals := make([]domain.Professional, 0, len(r.s.professionals))
	for _, id := range slices.Sorted(maps.Keys(r.s.professionals)) {
		professionals = append(professionals, r.s.professionals[id])
	}
	return professionals, nil
}

func (r memoryProfessionals) GetByID(_ context.Context, id int64) (*domain.Professional, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.professionals[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type memoryOrders struct{ s *MemoryStore }

func (r memoryOrders) List(_ context.Context) ([]domain.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.s.orders))
	for _, id := range slices.Sorted(maps.Keys(r.s.orders)) {
		orders = append(orders, r.s.orders[id])
	}
	return orders, nil
}

func (r memoryOrders) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

type memorySlots struct{ s *MemoryStore }

func (r memorySlots) List(_ context.Context, filter domain.ScheduleFilter) ([]domain.ScheduleSlot, error) {
	return r.s.listSlots(func(slot domain.ScheduleSlot) bool {
		return filter.ProfessionalID == nil || slot.ProfessionalID == *filter.ProfessionalID
	}), nil
}

func (r memorySlots) ListByProfessional(_ context.Context, professionalID int64) ([]domain.ScheduleSlot, error) {
	return r.s.listSlots(func(slot domain.ScheduleSlot) bool {
		return slot.ProfessionalID == professionalID
	}), nil
}

func (r memorySlots) Create(_ context.Context, slot *domain.ScheduleSlot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.lastSlotID++
	slot.ID = r.s.lastSlotID
	r.s.slots[slot.ID] = *slot
	return nil
}

// memorySlotTx stages created slots until WithProfessionalLock commits them.
// Staged slots have no id until then. Reads see committed slots followed by
// staged ones.
type memorySlotTx struct {
	store   *MemoryStore
	pending []*domain.ScheduleSlot
}

func (t *memorySlotTx) List(ctx context.Context, filter domain.ScheduleFilter) ([]domain.ScheduleSlot, error) {
	slots, _ := memorySlots{t.store}.List(ctx, filter)
	for _, slot := range t.pending {
		if filter.ProfessionalID == nil || slot.ProfessionalID == *filter.ProfessionalID {
			slots = append(slots, *slot)
		}
	}
	return slots, nil
}

func (t *memorySlotTx) ListByProfessional(ctx context.Context, professionalID int64) ([]domain.ScheduleSlot, error) {
	return t.List(ctx, domain.ScheduleFilter{ProfessionalID: &professionalID})
}

func (t *memorySlotTx) Create(_ context.Context, slot *domain.ScheduleSlot) error {
	t.pending = append(t.pending, slot)
	return nil
}

// keyedMutex hands out one mutex per key and forgets keys nobody holds.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[int64]*refMutex)}
}

func (k *keyedMutex) Lock(key int64) (unlock func()) {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()

		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
