package entity

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "Available"
	RoomStatusOccupied    RoomStatus = "Occupied"
	RoomStatusMaintenance RoomStatus = "Maintenance"
)

type Room struct {
	RoomID          int64      `json:"roomID"`
	RoomNo          int        `json:"roomNo"`
	RoomType        string     `json:"roomType"`
	PricePerNight   float64    `json:"pricePerNight"`
	RoomStatus      RoomStatus `json:"roomStatus"`
	RoomDescription string     `json:"roomDescription"`
}
