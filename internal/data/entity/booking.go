package entity

import "time"

type BookingStatus string

const (
	BookingStatusActive     BookingStatus = "Active"
	BookingStatusCancelled  BookingStatus = "Cancelled"
	BookingStatusCheckedOut BookingStatus = "CheckedOut"
)

// Booking mirrors the upstream booking record with its nested room and
// guest graph. The console holds these only for the current screen.
type Booking struct {
	BookingID     int64         `json:"bookingId"`
	Room          Room          `json:"room"`
	Guest         Guest         `json:"guest"`
	CheckIn       time.Time     `json:"checkIn"`
	CheckOut      time.Time     `json:"checkOut"`
	TotalDays     int           `json:"totalDays"`
	BookingStatus BookingStatus `json:"bookingStatus"`
}
