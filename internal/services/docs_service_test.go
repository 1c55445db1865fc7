package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
)

func TestDocsServiceGenerateReceipt(t *testing.T) {
	loader := func(_ context.Context, _, bookingID int64) (receiptData, error) {
		return receiptData{
			BookingID:    bookingID,
			BookingCode:  "BK-0010",
			CustomerName: "Asha Rao",
			CustomerTel:  "9876543210",
			CourseName:   "Beginner 15 days",
			CarName:      "Swift",
			CarReg:       "KA01AB1234",
			Slot:         "07:00-08:00",
			BookingDate:  "2024-03-01T00:00:00Z",
			Sessions: []models.BookingSession{
				{DayNumber: 1, SessionDate: "2024-03-01", Status: models.BookingCompleted},
				{DayNumber: 2, SessionDate: "2024-03-02", Status: models.BookingPending},
			},
			TotalAmount: decimal.NewFromInt(5300),
			Payments: []models.Payment{
				{Installment: 1, Amount: decimal.NewFromInt(3000), Status: models.PaymentCompleted, PaymentMethod: "UPI"},
			},
			DateStatus: models.DateStatusActive,
		}, nil
	}

	svc := DocsService{Loader: loader}
	pdf, filename, err := svc.GenerateReceipt(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("GenerateReceipt returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if !strings.HasPrefix(filename, "RECEIPT_10_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestDocsServiceScopesBySchool(t *testing.T) {
	svc := DocsService{
		Bookings: &fakeBookings{byID: map[int64]models.Booking{10: {ID: 10, SchoolID: 1}}},
		Payments: fakePayments{},
	}
	if _, _, err := svc.GenerateReceipt(context.Background(), 2, 10); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	d, err := svc.loadReceiptData(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("loadReceiptData: %v", err)
	}
	if _, _, err := buildReceiptPDF(d, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("buildReceiptPDF with empty booking: %v", err)
	}
}
