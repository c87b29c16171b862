package request

type CreateBookingRequest struct {
	RoomID   int64  `json:"roomId" validate:"required,gt=0"`
	GuestID  int64  `json:"guestId" validate:"required,gt=0"`
	CheckIn  string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" validate:"required,datetime=2006-01-02"`
}

type ExtendCheckoutRequest struct {
	Days int `json:"days" validate:"required,gt=0"`
}
