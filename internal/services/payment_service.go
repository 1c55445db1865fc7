package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/amendment"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/utils"
)

// PaymentService derives paid totals and balances. Only COMPLETED payments
// count; pending, failed and refunded ones are listed but never summed.
type PaymentService struct {
	Bookings        bookingStore
	Payments        paymentLister
	ServicePayments servicePaymentLister
	RequestID       string
}

type BalanceSummary struct {
	BookingID   int64            `json:"bookingId"`
	TotalAmount decimal.Decimal  `json:"totalAmount"`
	TotalPaid   decimal.Decimal  `json:"totalPaid"`
	Balance     decimal.Decimal  `json:"balance"`
	Payments    []models.Payment `json:"payments"`
	Formatted   string           `json:"formatted"`
}

func (s PaymentService) GetTotalPaidAmount(ctx context.Context, bookingID int64) (decimal.Decimal, error) {
	payments, err := s.Payments.ListByBooking(ctx, bookingID)
	if err != nil {
		return decimal.Zero, err
	}
	return amendment.TotalPaid(payments), nil
}

func (s PaymentService) GetServiceTotalPaid(ctx context.Context, bookingServiceID int64) (decimal.Decimal, error) {
	payments, err := s.ServicePayments.ListByBookingService(ctx, bookingServiceID)
	if err != nil {
		return decimal.Zero, err
	}
	return amendment.TotalServicePaid(payments), nil
}

// Balance compares the booking's total snapshot with what has been paid.
// Overpayment shows as a negative balance.
func (s PaymentService) Balance(ctx context.Context, schoolID, bookingID int64) (BalanceSummary, error) {
	b, err := s.Bookings.Get(ctx, bookingID)
	if err != nil {
		return BalanceSummary{}, err
	}
	if b.SchoolID != schoolID {
		return BalanceSummary{}, domain.NotFoundError{Resource: "Booking", ID: bookingID}
	}
	payments, err := s.Payments.ListByBooking(ctx, bookingID)
	if err != nil {
		return BalanceSummary{}, err
	}
	paid := amendment.TotalPaid(payments)
	balance := b.TotalAmount.Sub(paid)

	utils.LogEvent(s.RequestID, "payment", "balance", fmt.Sprintf("booking_id=%d paid=%s balance=%s", bookingID, utils.FormatMoney(paid), utils.FormatMoney(balance)))
	return BalanceSummary{
		BookingID:   bookingID,
		TotalAmount: b.TotalAmount,
		TotalPaid:   paid,
		Balance:     balance,
		Payments:    payments,
		Formatted:   fmt.Sprintf("%s of %s paid", utils.FormatRupees(paid), utils.FormatRupees(b.TotalAmount)),
	}, nil
}
