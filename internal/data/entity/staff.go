package entity

type Staff struct {
	StaffID int64  `json:"staffID"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	PhoneNo string `json:"phoneNo"`
	Address string `json:"address"`
	Gender  string `json:"gender"`
}
