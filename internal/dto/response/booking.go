package response

import (
	"time"

	"hotel-console/internal/data/entity"
)

// BookingRow is the flat shape the bookings table renders.
type BookingRow struct {
	BookingID     int64     `json:"bookingId"`
	GuestID       int64     `json:"guestID"`
	GuestName     string    `json:"guestName"`
	RoomNo        int       `json:"roomNo"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	TotalDays     int       `json:"totalDays"`
	BookingStatus string    `json:"bookingStatus"`
}

func BookingToRow(booking *entity.Booking) BookingRow {
	return BookingRow{
		BookingID:     booking.BookingID,
		GuestID:       booking.Guest.GuestID,
		GuestName:     booking.Guest.Name,
		RoomNo:        booking.Room.RoomNo,
		CheckIn:       booking.CheckIn,
		CheckOut:      booking.CheckOut,
		TotalDays:     booking.TotalDays,
		BookingStatus: string(booking.BookingStatus),
	}
}

func BookingsToRows(bookings []entity.Booking) []BookingRow {
	rows := make([]BookingRow, 0, len(bookings))
	for i := range bookings {
		rows = append(rows, BookingToRow(&bookings[i]))
	}
	return rows
}
