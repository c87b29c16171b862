package entity

import "time"

type RoomServiceStatus string

const (
	RoomServiceStatusOrdered   RoomServiceStatus = "Ordered"
	RoomServiceStatusCompleted RoomServiceStatus = "Completed"
	RoomServiceStatusCancelled RoomServiceStatus = "Cancelled"
)

type ServiceType struct {
	ServiceTypeID      int64   `json:"serviceTypeID"`
	ServiceName        string  `json:"serviceName"`
	ServicePrice       float64 `json:"servicePrice"`
	ServiceDescription string  `json:"serviceDescription"`
}

// RoomService is one ancillary service ordered against a booking. Staff is
// nil until someone is assigned to carry it out.
type RoomService struct {
	ServiceRoomID     int64             `json:"serviceRoomId"`
	Booking           Booking           `json:"booking"`
	ServiceType       ServiceType       `json:"serviceType"`
	Staff             *Staff            `json:"staff"`
	ServiceRoomDate   time.Time         `json:"serviceRoomDate"`
	ServiceRoomStatus RoomServiceStatus `json:"serviceRoomStatus"`
}
