package request

type OrderRoomServiceRequest struct {
	BookingID     int64 `json:"bookingId" validate:"required,gt=0"`
	ServiceTypeID int64 `json:"serviceTypeId" validate:"required,gt=0"`
}

type ServiceTypeRequest struct {
	ServiceName        string  `json:"serviceName" validate:"required"`
	ServicePrice       float64 `json:"servicePrice" validate:"required,gt=0"`
	ServiceDescription string  `json:"serviceDescription"`
}

type AssignStaffRequest struct {
	StaffID int64 `json:"staffId" validate:"required,gt=0"`
}
