package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel_server/internal/domain"
)

// DirectoryService serves customer and hotel records with a cache-aside
// read path. Writes invalidate the affected keys so readers never see a
// stale row past one write.
type DirectoryService struct {
	repo     domain.Directory
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewDirectoryService(r domain.Directory, c domain.Cache, ttl time.Duration) *DirectoryService {
	return &DirectoryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *DirectoryService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *DirectoryService) GetCustomer(ctx context.Context, id int64) (domain.Customer, error) {
	key := customerKey(id)
	var c domain.Customer
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &c); ok {
			return c, nil
		}
	}
	c, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, c, int(s.cacheTTL.Seconds()))
	}
	return c, nil
}

func (s *DirectoryService) CustomerBookings(ctx context.Context, id int64) ([]domain.CustomerBooking, error) {
	key := customerBookingsKey(id)
	var out []domain.CustomerBooking
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}
	out, err := s.repo.CustomerBookings(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func (s *DirectoryService) UpdateCustomerEmail(ctx context.Context, id int64, email string) error {
	if strings.TrimSpace(email) == "" {
		return domain.ErrMissingEmail
	}
	if err := s.repo.UpdateCustomerEmail(ctx, id, email); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, customerKey(id))
	}
	return nil
}

// DeleteCustomer removes the customer's bookings and then the customer row.
// The repo performs both inside one transaction.
func (s *DirectoryService) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, customerKey(id))
		_ = s.cache.Del(ctx, customerBookingsKey(id))
	}
	return nil
}

func (s *DirectoryService) ListHotels(ctx context.Context, name string) ([]domain.Hotel, error) {
	key := hotelsKey(name)
	var out []domain.Hotel
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}
	out, err := s.repo.ListHotels(ctx, name)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func (s *DirectoryService) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	key := hotelKey(id)
	var h domain.Hotel
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &h); ok {
			return h, nil
		}
	}
	h, err := s.repo.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	}
	return h, nil
}

func (s *DirectoryService) CreateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	if h.Rooms <= 0 {
		return domain.Hotel{}, domain.ErrInvalidRoomCount
	}
	created, err := s.repo.CreateHotel(ctx, h)
	if err != nil {
		return domain.Hotel{}, err
	}
	if s.cache != nil {
		// the unfiltered listing is the common variant; filtered ones expire by TTL
		_ = s.cache.Del(ctx, hotelsKey(""))
	}
	return created, nil
}

func customerKey(id int64) string         { return fmt.Sprintf("customer:%d", id) }
func customerBookingsKey(id int64) string { return fmt.Sprintf("customer:%d:bookings", id) }
func hotelKey(id int64) string            { return fmt.Sprintf("hotel:%d", id) }
func hotelsKey(name string) string        { return "hotels:" + strings.ToUpper(name) }
