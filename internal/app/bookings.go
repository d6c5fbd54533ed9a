package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"hotel_server/internal/domain"
)

// local-part@domain with at least one dot-separated label and an alpha TLD
var emailRx = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)*\.[A-Za-z]{2,}$`)

// BookingService is the booking query and admission engine. All collection
// access goes through the injected store so the engine is testable without
// a live process.
type BookingService struct {
	store domain.BookingStore
	now   func() time.Time
}

func NewBookingService(s domain.BookingStore) *BookingService {
	return &BookingService{store: s, now: time.Now}
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.store.List(ctx)
}

// Search dispatches on exactly one of term/date. A present term wins over a
// present date; neither present fails with ErrMissingQuery. An unparseable
// date matches nothing, which the caller reports as an empty (successful)
// result rather than an error.
func (s *BookingService) Search(ctx context.Context, term, date string) ([]domain.Booking, error) {
	if term == "" && date == "" {
		return nil, domain.ErrMissingQuery
	}
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(all))
	if term != "" {
		for _, b := range all {
			if b.MatchesTerm(term) {
				out = append(out, b)
			}
		}
		return out, nil
	}
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return out, nil
	}
	for _, b := range all {
		if b.Spans(d) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BookingService) Get(ctx context.Context, id int64) (domain.Booking, error) {
	b, err := s.store.Find(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Booking{}, &domain.LookupNotFoundError{ID: id}
	}
	return b, err
}

// Admit validates and stores a new booking. The pipeline is ordered and each
// stage is a hard stop: field presence, then email syntax, then date order.
// The returned confirmation carries the admission date.
func (s *BookingService) Admit(ctx context.Context, b domain.Booking) (domain.Booking, string, error) {
	if b.Title == "" || b.FirstName == "" || b.Surname == "" || b.Email == "" ||
		b.RoomID == 0 || b.CheckInDate == "" || b.CheckOutDate == "" {
		return domain.Booking{}, "", domain.ErrMissingFields
	}
	if !emailRx.MatchString(b.Email) {
		return domain.Booking{}, "", domain.ErrInvalidEmail
	}
	in, inErr := time.Parse(domain.DateLayout, b.CheckInDate)
	out, outErr := time.Parse(domain.DateLayout, b.CheckOutDate)
	if inErr != nil || outErr != nil || !in.Before(out) {
		return domain.Booking{}, "", &domain.DateOrderError{CheckIn: b.CheckInDate, CheckOut: b.CheckOutDate}
	}

	stored, err := s.store.Insert(ctx, b)
	if err != nil {
		return domain.Booking{}, "", err
	}
	msg := fmt.Sprintf("Booking #%d confirmed on %s", stored.ID, s.now().Format(domain.DateLayout))
	return stored, msg, nil
}

func (s *BookingService) Delete(ctx context.Context, id int64) (string, error) {
	if err := s.store.Remove(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", &domain.DeleteNotFoundError{ID: id}
		}
		return "", err
	}
	return fmt.Sprintf("Booking #%d deleted!", id), nil
}
