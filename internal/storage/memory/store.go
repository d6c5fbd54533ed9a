package memory

import (
	"context"
	"sync"

	"hotel_server/internal/domain"
)

// Store holds bookings in insertion order in process memory. Mutations are
// serialized by a mutex, so concurrent admissions cannot observe the same
// next identifier. Identifiers are assigned as count+1, which means an id
// can be reissued after a delete; the numbering is part of the contract.
type Store struct {
	mu       sync.Mutex
	bookings []domain.Booking
}

// New returns a store preloaded with seed, keeping the seed's identifiers.
func New(seed []domain.Booking) *Store {
	s := &Store{}
	s.bookings = append(s.bookings, seed...)
	return s
}

func (s *Store) List(ctx context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *Store) Find(ctx context.Context, id int64) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Booking{}, domain.ErrNotFound
}

func (s *Store) Insert(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = int64(len(s.bookings)) + 1
	s.bookings = append(s.bookings, b)
	return b, nil
}

// Remove deletes the first booking whose identifier matches.
func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
