package models

import "github.com/shopspring/decimal"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Payment is one installment against a booking.
type Payment struct {
	ID            int64           `json:"id"`
	BookingID     int64           `json:"bookingId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentDate   string          `json:"paymentDate"`
	Status        PaymentStatus   `json:"status"`
	TransactionID string          `json:"transactionId"`
	Installment   int             `json:"installment"`
	Timestamps
}

type PaymentInput struct {
	BookingID     *int64           `json:"bookingId,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	PaymentDate   *string          `json:"paymentDate,omitempty"`
	Status        *PaymentStatus   `json:"status,omitempty"`
	TransactionID *string          `json:"transactionId,omitempty"`
	Installment   *int             `json:"installment,omitempty"`
}

type PaymentFilter struct {
	BookingID     *int64         `json:"bookingId,omitempty"`
	Status        *PaymentStatus `json:"status,omitempty"`
	PaymentMethod *string        `json:"paymentMethod,omitempty"`
}

// ServicePayment is one installment against a booking service.
type ServicePayment struct {
	ID               int64           `json:"id"`
	BookingServiceID int64           `json:"bookingServiceId"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentMethod    string          `json:"paymentMethod"`
	PaymentDate      string          `json:"paymentDate"`
	Status           PaymentStatus   `json:"status"`
	TransactionID    string          `json:"transactionId"`
	Installment      int             `json:"installment"`
	Timestamps
}

type ServicePaymentInput struct {
	BookingServiceID *int64           `json:"bookingServiceId,omitempty"`
	Amount           *decimal.Decimal `json:"amount,omitempty"`
	PaymentMethod    *string          `json:"paymentMethod,omitempty"`
	PaymentDate      *string          `json:"paymentDate,omitempty"`
	Status           *PaymentStatus   `json:"status,omitempty"`
	TransactionID    *string          `json:"transactionId,omitempty"`
	Installment      *int             `json:"installment,omitempty"`
}
