package request

type CreateRoomRequest struct {
	RoomNo          int     `json:"roomNo" validate:"required,gt=0"`
	RoomType        string  `json:"roomType" validate:"required"`
	PricePerNight   float64 `json:"pricePerNight" validate:"required,gt=0"`
	RoomStatus      string  `json:"roomStatus" validate:"required,oneof=Available Occupied Maintenance"`
	RoomDescription string  `json:"roomDescription"`
}
