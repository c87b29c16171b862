package response

import (
	"time"

	"hotel-console/internal/data/entity"
)

type PaymentReceiptResponse struct {
	PaymentID   int64     `json:"paymentID"`
	InvoiceID   int64     `json:"invoiceID"`
	AmountPaid  float64   `json:"amountPaid"`
	PaymentDate time.Time `json:"paymentDate"`
}

func PaymentReceiptToResponse(receipt *entity.PaymentReceipt) *PaymentReceiptResponse {
	return &PaymentReceiptResponse{
		PaymentID:   receipt.PaymentID,
		InvoiceID:   receipt.InvoiceID,
		AmountPaid:  receipt.AmountPaid,
		PaymentDate: receipt.PaymentDate,
	}
}
