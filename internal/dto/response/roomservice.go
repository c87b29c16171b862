package response

import (
	"time"

	"hotel-console/internal/data/entity"
)

// RoomServiceRow is the flat shape the room-service management table
// renders. Staff fields are nil until someone is assigned.
type RoomServiceRow struct {
	ServiceRoomID     int64     `json:"serviceRoomId"`
	BookingID         int64     `json:"bookingId"`
	ServiceTypeID     int64     `json:"serviceTypeId"`
	ServiceTypeName   string    `json:"serviceTypeName"`
	StaffID           *int64    `json:"staffId"`
	StaffName         *string   `json:"staffName"`
	StaffRole         *string   `json:"staffRole"`
	ServiceRoomDate   time.Time `json:"serviceRoomDate"`
	ServiceRoomStatus string    `json:"serviceRoomStatus"`
	RoomNo            int       `json:"roomNo"`
	CheckIn           time.Time `json:"checkIn"`
	CheckOut          time.Time `json:"checkOut"`
}

func RoomServiceToRow(service *entity.RoomService) RoomServiceRow {
	row := RoomServiceRow{
		ServiceRoomID:     service.ServiceRoomID,
		BookingID:         service.Booking.BookingID,
		ServiceTypeID:     service.ServiceType.ServiceTypeID,
		ServiceTypeName:   service.ServiceType.ServiceName,
		ServiceRoomDate:   service.ServiceRoomDate,
		ServiceRoomStatus: string(service.ServiceRoomStatus),
		RoomNo:            service.Booking.Room.RoomNo,
		CheckIn:           service.Booking.CheckIn,
		CheckOut:          service.Booking.CheckOut,
	}

	if service.Staff != nil {
		row.StaffID = &service.Staff.StaffID
		row.StaffName = &service.Staff.Name
		row.StaffRole = &service.Staff.Role
	}

	return row
}

func RoomServicesToRows(services []entity.RoomService) []RoomServiceRow {
	rows := make([]RoomServiceRow, 0, len(services))
	for i := range services {
		rows = append(rows, RoomServiceToRow(&services[i]))
	}
	return rows
}
