package testfixtures

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/spec-kit/medequip-service/internal/domain"
	"github.com/spec-kit/medequip-service/internal/repository"
)

// The in-memory stores below mirror the Postgres repositories closely enough
// for service and handler tests: they enforce the same unique keys, return
// repository.ErrNotFound / ErrDuplicate, and hand out copies. Setting Err
// makes every call fail with it.

// UserStore is an in-memory repository.UserRepository.
type UserStore struct {
	mu    sync.Mutex
	users []domain.User
	Err   error
}

var _ repository.UserRepository = (*UserStore)(nil)

func (s *UserStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *UserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	return s.find(func(u domain.User) bool { return u.ID == id })
}

func (s *UserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	return s.find(func(u domain.User) bool { return u.Username == username })
}

func (s *UserStore) FindByUsernameOrEmail(_ context.Context, username, email string) (*domain.User, error) {
	return s.find(func(u domain.User) bool { return u.Username == username || u.Email == email })
}

func (s *UserStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.users)), nil
}

func (s *UserStore) find(match func(domain.User) bool) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

// EquipmentStore is an in-memory repository.EquipmentRepository.
type EquipmentStore struct {
	mu    sync.Mutex
	items []domain.Equipment
	Err   error
}

var _ repository.EquipmentRepository = (*EquipmentStore)(nil)

func (s *EquipmentStore) Create(_ context.Context, e *domain.Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.serialTaken(e.SerialNumber, "") {
		return repository.ErrDuplicate
	}
	s.items = append(s.items, *e)
	return nil
}

func (s *EquipmentStore) GetByID(_ context.Context, id string) (*domain.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	i := s.index(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	found := s.items[i]
	return &found, nil
}

func (s *EquipmentStore) List(_ context.Context) ([]domain.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := slices.Clone(s.items)
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b domain.Equipment) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (s *EquipmentStore) Update(_ context.Context, id string, patch domain.EquipmentPatch, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	i := s.index(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	if serial, ok := patch.SerialNumber.Get(); ok && s.serialTaken(serial, id) {
		return repository.ErrDuplicate
	}
	patch.Apply(&s.items[i])
	s.items[i].UpdatedAt = updatedAt
	return nil
}

func (s *EquipmentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	i := s.index(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

func (s *EquipmentStore) Count(_ context.Context, status *domain.EquipmentStatus) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	var n int64
	for _, e := range s.items {
		if status == nil || e.Status == *status {
			n++
		}
	}
	return n, nil
}

func (s *EquipmentStore) index(id string) int {
	return slices.IndexFunc(s.items, func(e domain.Equipment) bool { return e.ID == id })
}

func (s *EquipmentStore) serialTaken(serial, exceptID string) bool {
	return slices.ContainsFunc(s.items, func(e domain.Equipment) bool {
		return e.SerialNumber == serial && e.ID != exceptID
	})
}

// TicketStore is an in-memory repository.TicketRepository.
type TicketStore struct {
	mu      sync.Mutex
	tickets []domain.Ticket
	Err     error
	// Updates counts successful Update calls.
	Updates int
}

var _ repository.TicketRepository = (*TicketStore)(nil)

func (s *TicketStore) Create(_ context.Context, t *domain.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.tickets = append(s.tickets, *t)
	return nil
}

func (s *TicketStore) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	i := s.index(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	found := s.tickets[i]
	return &found, nil
}

func (s *TicketStore) List(_ context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []domain.Ticket
	for _, t := range s.tickets {
		if filter.CreatedBy != nil && t.CreatedBy != *filter.CreatedBy {
			continue
		}
		if filter.EquipmentID != nil && t.EquipmentID != *filter.EquipmentID {
			continue
		}
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, t.Status) {
			continue
		}
		out = append(out, t)
	}
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b domain.Ticket) int { return b.CreatedAt.Compare(a.CreatedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *TicketStore) Update(_ context.Context, id string, patch domain.TicketPatch, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	i := s.index(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	patch.Apply(&s.tickets[i])
	s.tickets[i].UpdatedAt = updatedAt
	s.Updates++
	return nil
}

func (s *TicketStore) CountByStatus(_ context.Context, status domain.TicketStatus) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	var n int64
	for _, t := range s.tickets {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

// Len reports how many tickets are stored.
func (s *TicketStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickets)
}

func (s *TicketStore) index(id string) int {
	return slices.IndexFunc(s.tickets, func(t domain.Ticket) bool { return t.ID == id })
}

// MaintenanceStore is an in-memory repository.MaintenanceRepository.
type MaintenanceStore struct {
	mu      sync.Mutex
	records []domain.MaintenanceRecord
	Err     error
}

var _ repository.MaintenanceRepository = (*MaintenanceStore)(nil)

func (s *MaintenanceStore) Create(_ context.Context, r *domain.MaintenanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.records = append(s.records, *r)
	return nil
}

func (s *MaintenanceStore) ListByEquipment(_ context.Context, equipmentID string) ([]domain.MaintenanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []domain.MaintenanceRecord
	for _, r := range s.records {
		if r.EquipmentID == equipmentID {
			out = append(out, r)
		}
	}
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b domain.MaintenanceRecord) int { return b.PerformedAt.Compare(a.PerformedAt) })
	return out, nil
}

// Len reports how many records are stored.
func (s *MaintenanceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
