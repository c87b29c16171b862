package request

type SubmitPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
