package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used on the wire and in storage.
const DateLayout = "2006-01-02"

type Booking struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	FirstName    string `json:"firstName"`
	Surname      string `json:"surname"`
	Email        string `json:"email"`
	RoomID       int64  `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

// MatchesTerm reports whether term is a case-insensitive substring of the
// guest's first name, surname or email. Both sides are uppercase-folded, so
// the contract is "term ⊆ field" regardless of case.
func (b Booking) MatchesTerm(term string) bool {
	t := strings.ToUpper(term)
	return strings.Contains(strings.ToUpper(b.FirstName), t) ||
		strings.Contains(strings.ToUpper(b.Surname), t) ||
		strings.Contains(strings.ToUpper(b.Email), t)
}

// Spans reports whether d falls within the stay, boundaries included.
// A booking with an unparseable date never spans anything.
func (b Booking) Spans(d time.Time) bool {
	in, err := time.Parse(DateLayout, b.CheckInDate)
	if err != nil {
		return false
	}
	out, err := time.Parse(DateLayout, b.CheckOutDate)
	if err != nil {
		return false
	}
	return !d.Before(in) && !d.After(out)
}
