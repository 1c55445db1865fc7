package validators

import "schooladmin/internal/domain/models"

type PaymentForm struct {
	BookingID     Numeric `json:"bookingId" validate:"required,integer"`
	Amount        Numeric `json:"amount" validate:"required,decimal"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,oneof=CASH CARD UPI BANK_TRANSFER CHEQUE"`
	PaymentDate   string  `json:"paymentDate" validate:"required,date"`
	Status        string  `json:"status" validate:"omitempty,oneof=PENDING COMPLETED FAILED REFUNDED"`
	TransactionID string  `json:"transactionId" validate:"omitempty,max=64"`
	Installment   Numeric `json:"installment" validate:"omitempty,integer"`
}

func (f *PaymentForm) Input(fields Fields) models.PaymentInput {
	return models.PaymentInput{
		BookingID:     ref(fields, "bookingId", f.BookingID),
		Amount:        money(fields, "amount", f.Amount),
		PaymentMethod: text(fields, "paymentMethod", f.PaymentMethod),
		PaymentDate:   text(fields, "paymentDate", f.PaymentDate),
		Status:        enum[models.PaymentStatus](fields, "status", f.Status),
		TransactionID: optText(fields, "transactionId", f.TransactionID),
		Installment:   integer(fields, "installment", f.Installment),
	}
}

type ServicePaymentForm struct {
	BookingServiceID Numeric `json:"bookingServiceId" validate:"omitempty,integer"`
	Amount           Numeric `json:"amount" validate:"required,decimal"`
	PaymentMethod    string  `json:"paymentMethod" validate:"required,oneof=CASH CARD UPI BANK_TRANSFER CHEQUE"`
	PaymentDate      string  `json:"paymentDate" validate:"required,date"`
	Status           string  `json:"status" validate:"omitempty,oneof=PENDING COMPLETED FAILED REFUNDED"`
	TransactionID    string  `json:"transactionId" validate:"omitempty,max=64"`
	Installment      Numeric `json:"installment" validate:"omitempty,integer"`
}

func (f *ServicePaymentForm) Input(fields Fields) models.ServicePaymentInput {
	return models.ServicePaymentInput{
		BookingServiceID: ref(fields, "bookingServiceId", f.BookingServiceID),
		Amount:           money(fields, "amount", f.Amount),
		PaymentMethod:    text(fields, "paymentMethod", f.PaymentMethod),
		PaymentDate:      text(fields, "paymentDate", f.PaymentDate),
		Status:           enum[models.PaymentStatus](fields, "status", f.Status),
		TransactionID:    optText(fields, "transactionId", f.TransactionID),
		Installment:      integer(fields, "installment", f.Installment),
	}
}
