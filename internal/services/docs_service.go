package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/amendment"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/utils"
)

// DocsService renders the booking receipt PDF.
type DocsService struct {
	Bookings  bookingStore
	Payments  paymentLister
	RequestID string
	Loader    func(ctx context.Context, schoolID, bookingID int64) (receiptData, error)
}

type receiptData struct {
	BookingID    int64
	BookingCode  string
	CustomerName string
	CustomerTel  string
	CourseName   string
	CarName      string
	CarReg       string
	Slot         string
	BookingDate  string
	Sessions     []models.BookingSession
	Services     []models.BookingService
	TotalAmount  decimal.Decimal
	Payments     []models.Payment
	DateStatus   models.DateStatus
}

func (s DocsService) GenerateReceipt(ctx context.Context, schoolID, bookingID int64) ([]byte, string, error) {
	load := s.Loader
	if load == nil {
		load = s.loadReceiptData
	}
	data, err := load(ctx, schoolID, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("booking_id=%d", bookingID))
	return buildReceiptPDF(data, time.Now())
}

func (s DocsService) loadReceiptData(ctx context.Context, schoolID, bookingID int64) (receiptData, error) {
	b, err := s.Bookings.Get(ctx, bookingID)
	if err != nil {
		return receiptData{}, err
	}
	if b.SchoolID != schoolID {
		return receiptData{}, domain.NotFoundError{Resource: "Booking", ID: bookingID}
	}
	payments, err := s.Payments.ListByBooking(ctx, bookingID)
	if err != nil {
		return receiptData{}, err
	}

	d := receiptData{
		BookingID:   b.ID,
		BookingCode: b.BookingID,
		Slot:        b.Slot,
		BookingDate: b.BookingDate,
		Sessions:    b.Sessions,
		Services:    b.Services,
		TotalAmount: b.TotalAmount,
		Payments:    payments,
		DateStatus:  b.DateStatus,
	}
	if b.Customer != nil {
		d.CustomerName = b.Customer.Name
		d.CustomerTel = b.Customer.Contact1
	}
	if b.Course != nil {
		d.CourseName = b.Course.CourseName
	}
	if b.Car != nil {
		d.CarName = b.Car.CarName
		d.CarReg = b.Car.RegistrationNumber
	}
	return d, nil
}

func buildReceiptPDF(d receiptData, printedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking      : %s (#%d)", utils.Safe(d.BookingCode, "-"), d.BookingID),
		fmt.Sprintf("Printed      : %s", printedAt.Format("2006-01-02 15:04")),
		fmt.Sprintf("Customer     : %s", utils.Safe(d.CustomerName, "-")),
		fmt.Sprintf("Contact      : %s", utils.Safe(d.CustomerTel, "-")),
		fmt.Sprintf("Course       : %s", utils.Safe(d.CourseName, "-")),
		fmt.Sprintf("Car          : %s %s", utils.Safe(d.CarName, "-"), d.CarReg),
		fmt.Sprintf("Slot         : %s", utils.Safe(d.Slot, "-")),
		fmt.Sprintf("Booked on    : %s", utils.Safe(utils.DateOnly(d.BookingDate), "-")),
		fmt.Sprintf("Status       : %s", utils.Safe(string(d.DateStatus), "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	if len(d.Sessions) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Sessions:")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, sess := range d.Sessions {
			pdf.Cell(0, 6, fmt.Sprintf("Day %d  %s  %s  %s", sess.DayNumber, utils.DateOnly(sess.SessionDate), utils.Safe(sess.Slot, "-"), amendment.StateOf(sess.Status)))
			pdf.Ln(6)
		}
	}

	if len(d.Services) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Services:")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for i, svc := range d.Services {
			pdf.Cell(0, 6, fmt.Sprintf("%d) %s #%d  %s", i+1, svc.ServiceType, svc.SchoolServiceID, utils.FormatRupees(svc.Price)))
			pdf.Ln(6)
		}
	}

	paid := amendment.TotalPaid(d.Payments)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Payments:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, p := range d.Payments {
		pdf.Cell(0, 6, fmt.Sprintf("#%d  %s  %s  %s  %s", p.Installment, utils.DateOnly(p.PaymentDate), p.PaymentMethod, p.Status, utils.FormatRupees(p.Amount)))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total   : "+utils.FormatRupees(d.TotalAmount))
	pdf.Ln(8)
	pdf.Cell(0, 8, "Paid    : "+utils.FormatRupees(paid))
	pdf.Ln(8)
	pdf.Cell(0, 8, "Balance : "+utils.FormatRupees(d.TotalAmount.Sub(paid)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Only completed payments are counted as paid.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", d.BookingID, utils.SafeFilenamePart(d.CustomerName))
	return buf.Bytes(), filename, nil
}
