package entity

type Guest struct {
	GuestID int64  `json:"guestID"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	PhoneNo string `json:"phoneNo"`
	Address string `json:"address"`
	Gender  string `json:"gender"`
}
