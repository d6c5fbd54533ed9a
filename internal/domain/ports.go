package domain

import "context"

// BookingStore owns the booking collection. Implementations return
// ErrNotFound for absent identifiers and assign identifiers on Insert.
type BookingStore interface {
	List(ctx context.Context) ([]Booking, error)
	Find(ctx context.Context, id int64) (Booking, error)
	Insert(ctx context.Context, b Booking) (Booking, error)
	Remove(ctx context.Context, id int64) error
}

// Directory is the relational customer/hotel surface.
type Directory interface {
	// Read paths
	ListCustomers(ctx context.Context) ([]Customer, error)
	GetCustomer(ctx context.Context, id int64) (Customer, error)
	CustomerBookings(ctx context.Context, id int64) ([]CustomerBooking, error)
	ListHotels(ctx context.Context, name string) ([]Hotel, error)
	GetHotel(ctx context.Context, id int64) (Hotel, error)

	// Write paths
	UpdateCustomerEmail(ctx context.Context, id int64, email string) error
	DeleteCustomer(ctx context.Context, id int64) error
	CreateHotel(ctx context.Context, h Hotel) (Hotel, error)
	InsertCustomer(ctx context.Context, c Customer) (Customer, error)
	InsertBooking(ctx context.Context, customerID, hotelID, roomID int64, checkIn, checkOut string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
