package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel_server/internal/app"
	"hotel_server/internal/domain"
)

// ---- fakes ----

type fakeDirectory struct {
	customer domain.Customer
	bookings []domain.CustomerBooking
	hotel    domain.Hotel
	hotels   []domain.Hotel

	createErr    error
	emailUpdates []string
	deleted      []int64
	created      []domain.Hotel
}

func (f *fakeDirectory) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return []domain.Customer{f.customer}, nil
}
func (f *fakeDirectory) GetCustomer(ctx context.Context, id int64) (domain.Customer, error) {
	return f.customer, nil
}
func (f *fakeDirectory) CustomerBookings(ctx context.Context, id int64) ([]domain.CustomerBooking, error) {
	return f.bookings, nil
}
func (f *fakeDirectory) ListHotels(ctx context.Context, name string) ([]domain.Hotel, error) {
	return f.hotels, nil
}
func (f *fakeDirectory) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	return f.hotel, nil
}
func (f *fakeDirectory) UpdateCustomerEmail(ctx context.Context, id int64, email string) error {
	f.emailUpdates = append(f.emailUpdates, email)
	return nil
}
func (f *fakeDirectory) DeleteCustomer(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}
func (f *fakeDirectory) CreateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	if f.createErr != nil {
		return domain.Hotel{}, f.createErr
	}
	h.ID = int64(len(f.created)) + 1
	f.created = append(f.created, h)
	return h, nil
}
func (f *fakeDirectory) InsertCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	return c, nil
}
func (f *fakeDirectory) InsertBooking(ctx context.Context, customerID, hotelID, roomID int64, checkIn, checkOut string) error {
	return nil
}

type fakeCache struct {
	store map[string]any
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.Customer:
		*d = v.(domain.Customer)
	case *domain.Hotel:
		*d = v.(domain.Hotel)
	case *[]domain.Hotel:
		*d = v.([]domain.Hotel)
	case *[]domain.CustomerBooking:
		*d = v.([]domain.CustomerBooking)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

// ---- tests ----

func TestGetHotel_CacheMissThenHit(t *testing.T) {
	dir := &fakeDirectory{hotel: domain.Hotel{ID: 7, Name: "The Grand", Rooms: 40, Postcode: "AB1 2CD"}}
	cache := &fakeCache{}
	s := app.NewDirectoryService(dir, cache, 10*time.Minute)

	h, err := s.GetHotel(context.Background(), 7)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h.Name != "The Grand" {
		t.Fatalf("unexpected hotel: %+v", h)
	}

	// Mutate repo to ensure the second read comes from cache
	dir.hotel.Name = "SHOULD NOT SEE THIS"

	h2, err := s.GetHotel(context.Background(), 7)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h2.Name != "The Grand" {
		t.Fatalf("expected cached name, got %s", h2.Name)
	}
}

func TestUpdateCustomerEmail(t *testing.T) {
	dir := &fakeDirectory{customer: domain.Customer{ID: 3, Name: "Ann Lee", Email: "ann@x.com"}}
	cache := &fakeCache{}
	s := app.NewDirectoryService(dir, cache, time.Minute)
	ctx := context.Background()

	if err := s.UpdateCustomerEmail(ctx, 3, "   "); !errors.Is(err, domain.ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}
	if len(dir.emailUpdates) != 0 {
		t.Fatalf("repo must not be reached on a blank email")
	}

	// warm the cache, then verify the write evicts it
	if _, err := s.GetCustomer(ctx, 3); err != nil {
		t.Fatalf("err: %v", err)
	}
	if err := s.UpdateCustomerEmail(ctx, 3, "new@x.com"); err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(dir.emailUpdates) != 1 || dir.emailUpdates[0] != "new@x.com" {
		t.Fatalf("unexpected updates: %v", dir.emailUpdates)
	}
	if len(cache.dels) != 1 || cache.dels[0] != "customer:3" {
		t.Fatalf("expected customer:3 eviction, got %v", cache.dels)
	}
}

func TestDeleteCustomer_EvictsBothKeys(t *testing.T) {
	dir := &fakeDirectory{}
	cache := &fakeCache{}
	s := app.NewDirectoryService(dir, cache, time.Minute)

	if err := s.DeleteCustomer(context.Background(), 5); err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(dir.deleted) != 1 || dir.deleted[0] != 5 {
		t.Fatalf("unexpected deletes: %v", dir.deleted)
	}
	want := map[string]bool{"customer:5": true, "customer:5:bookings": true}
	for _, k := range cache.dels {
		delete(want, k)
	}
	if len(want) != 0 {
		t.Fatalf("missing evictions: %v (got %v)", want, cache.dels)
	}
}

func TestCreateHotel_RoomCountGuard(t *testing.T) {
	dir := &fakeDirectory{}
	s := app.NewDirectoryService(dir, &fakeCache{}, time.Minute)
	ctx := context.Background()

	for _, rooms := range []int{0, -1} {
		_, err := s.CreateHotel(ctx, domain.Hotel{Name: "The Grand", Rooms: rooms, Postcode: "AB1 2CD"})
		if !errors.Is(err, domain.ErrInvalidRoomCount) {
			t.Fatalf("rooms %d: expected ErrInvalidRoomCount, got %v", rooms, err)
		}
	}
	if len(dir.created) != 0 {
		t.Fatalf("no row may be created on an invalid room count")
	}
}

func TestCreateHotel_DuplicatePassthroughAndEviction(t *testing.T) {
	dir := &fakeDirectory{}
	cache := &fakeCache{}
	s := app.NewDirectoryService(dir, cache, time.Minute)
	ctx := context.Background()

	created, err := s.CreateHotel(ctx, domain.Hotel{Name: "The Grand", Rooms: 40, Postcode: "AB1 2CD"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("unexpected hotel: %+v", created)
	}
	if len(cache.dels) != 1 || cache.dels[0] != "hotels:" {
		t.Fatalf("expected unfiltered listing eviction, got %v", cache.dels)
	}

	dir.createErr = domain.ErrDuplicateHotel
	if _, err := s.CreateHotel(ctx, domain.Hotel{Name: "The Grand", Rooms: 40}); !errors.Is(err, domain.ErrDuplicateHotel) {
		t.Fatalf("expected ErrDuplicateHotel, got %v", err)
	}
}

func TestGetHotel_NilCache(t *testing.T) {
	dir := &fakeDirectory{hotel: domain.Hotel{ID: 1, Name: "The Grand", Rooms: 2, Postcode: "X"}}
	s := app.NewDirectoryService(dir, nil, time.Minute)

	if _, err := s.GetHotel(context.Background(), 1); err != nil {
		t.Fatalf("nil cache must be tolerated: %v", err)
	}
}
