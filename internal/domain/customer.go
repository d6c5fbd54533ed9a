package domain

import "time"

type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CustomerBooking is the read model produced by joining a customer's
// bookings with the hotels they were made against.
type CustomerBooking struct {
	CustomerName string    `json:"customer"`
	HotelName    string    `json:"hotel"`
	RoomID       int64     `json:"roomId"`
	CheckIn      time.Time `json:"checkInDate"`
	CheckOut     time.Time `json:"checkOutDate"`
}
