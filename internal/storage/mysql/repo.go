package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"hotel_server/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, listCustomersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) GetCustomer(ctx context.Context, id int64) (domain.Customer, error) {
	var c domain.Customer
	err := r.db.QueryRowContext(ctx, getCustomerSQL, id).Scan(&c.ID, &c.Name, &c.Email)
	if err == sql.ErrNoRows {
		return domain.Customer{}, domain.ErrNotFound
	}
	return c, err
}

func (r *Repo) CustomerBookings(ctx context.Context, id int64) ([]domain.CustomerBooking, error) {
	rows, err := r.db.QueryContext(ctx, customerBookingsSQL, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CustomerBooking
	for rows.Next() {
		var cb domain.CustomerBooking
		if err := rows.Scan(&cb.CustomerName, &cb.HotelName, &cb.RoomID, &cb.CheckIn, &cb.CheckOut); err != nil {
			return nil, err
		}
		out = append(out, cb)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateCustomerEmail(ctx context.Context, id int64, email string) error {
	_, err := r.db.ExecContext(ctx, updateCustomerEmailSQL, email, id)
	return err
}

// DeleteCustomer removes the customer's bookings and then the customer row
// inside one transaction, so a failure leaves neither half applied.
func (r *Repo) DeleteCustomer(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, deleteCustomerBookingsSQL, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, deleteCustomerSQL, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *Repo) InsertCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	res, err := r.db.ExecContext(ctx, insertCustomerSQL, c.Name, c.Email)
	if err != nil {
		return domain.Customer{}, err
	}
	c.ID, err = res.LastInsertId()
	return c, err
}

func (r *Repo) InsertBooking(ctx context.Context, customerID, hotelID, roomID int64, checkIn, checkOut string) error {
	_, err := r.db.ExecContext(ctx, insertBookingSQL, customerID, hotelID, roomID, checkIn, checkOut)
	return err
}

func (r *Repo) ListHotels(ctx context.Context, name string) ([]domain.Hotel, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if name == "" {
		rows, err = r.db.QueryContext(ctx, listHotelsSQL)
	} else {
		rows, err = r.db.QueryContext(ctx, searchHotelsSQL, name)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Rooms, &h.Postcode); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	var h domain.Hotel
	err := r.db.QueryRowContext(ctx, getHotelSQL, id).Scan(&h.ID, &h.Name, &h.Rooms, &h.Postcode)
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, err
}

// CreateHotel checks the name for uniqueness before inserting. The schema's
// UNIQUE constraint remains the backstop for a race between both steps.
func (r *Repo) CreateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, hotelExistsSQL, h.Name).Scan(&exists); err != nil {
		return domain.Hotel{}, err
	}
	if exists {
		return domain.Hotel{}, fmt.Errorf("hotel %q: %w", h.Name, domain.ErrDuplicateHotel)
	}
	res, err := r.db.ExecContext(ctx, insertHotelSQL, h.Name, h.Rooms, h.Postcode)
	if err != nil {
		return domain.Hotel{}, err
	}
	h.ID, err = res.LastInsertId()
	return h, err
}
