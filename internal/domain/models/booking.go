package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingNoShow    BookingStatus = "NO_SHOW"
)

// Booking sessions share the booking status vocabulary.
type SessionStatus = BookingStatus

// DateStatus is the roll-up of a booking's dated sessions.
type DateStatus string

const (
	DateStatusActive    DateStatus = "active"
	DateStatusCompleted DateStatus = "completed"
	DateStatusCancelled DateStatus = "cancelled"
	DateStatusPartial   DateStatus = "partial"
)

type Booking struct {
	ID          int64            `json:"id"`
	BookingID   string           `json:"bookingId"`
	SchoolID    int64            `json:"schoolId"`
	UserID      int64            `json:"userId"`
	CarID       int64            `json:"carId"`
	CourseID    int64            `json:"courseId"`
	Slot        string           `json:"slot"`
	BookingDate string           `json:"bookingDate"`
	TotalAmount decimal.Decimal  `json:"totalAmount"`
	Status      BookingStatus    `json:"status"`
	DateStatus  DateStatus       `json:"dateStatus"`
	Notes       string           `json:"notes"`
	Customer    *User            `json:"customer,omitempty"`
	Car         *Car             `json:"car,omitempty"`
	Course      *Course          `json:"course,omitempty"`
	Sessions    []BookingSession `json:"sessions"`
	Services    []BookingService `json:"services"`
	Timestamps
}

type BookingInput struct {
	SchoolID    *int64           `json:"schoolId,omitempty"`
	UserID      *int64           `json:"userId,omitempty"`
	CarID       *int64           `json:"carId,omitempty"`
	CourseID    *int64           `json:"courseId,omitempty"`
	Slot        *string          `json:"slot,omitempty"`
	BookingDate *string          `json:"bookingDate,omitempty"`
	TotalAmount *decimal.Decimal `json:"totalAmount,omitempty"`
	Status      *BookingStatus   `json:"status,omitempty"`
	DateStatus  *DateStatus      `json:"dateStatus,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	// SessionDates is only honoured on create: one session per date.
	SessionDates []string `json:"sessionDates,omitempty"`
	// Services is only honoured on create.
	Services []BookingServiceInput `json:"services,omitempty"`
}

type BookingFilter struct {
	SchoolID *int64         `json:"schoolId,omitempty"`
	UserID   *int64         `json:"userId,omitempty"`
	CarID    *int64         `json:"carId,omitempty"`
	CourseID *int64         `json:"courseId,omitempty"`
	Status   *BookingStatus `json:"status,omitempty"`
	FromDate *string        `json:"fromDate,omitempty"`
	ToDate   *string        `json:"toDate,omitempty"`
}

type BookingSession struct {
	ID                 int64         `json:"id"`
	BookingID          int64         `json:"bookingId"`
	DayNumber          int           `json:"dayNumber"`
	SessionDate        string        `json:"sessionDate"`
	Slot               string        `json:"slot"`
	Status             SessionStatus `json:"status"`
	Attendance         bool          `json:"attendance"`
	DriverNotes        string        `json:"driverNotes"`
	PerformanceRating  int           `json:"performanceRating"`
	CancellationReason string        `json:"cancellationReason"`
	CancelledAt        *time.Time    `json:"cancelledAt,omitempty"`
}

type BookingSessionInput struct {
	SessionDate        *string        `json:"sessionDate,omitempty"`
	Slot               *string        `json:"slot,omitempty"`
	Status             *SessionStatus `json:"status,omitempty"`
	Attendance         *bool          `json:"attendance,omitempty"`
	DriverNotes        *string        `json:"driverNotes,omitempty"`
	PerformanceRating  *int           `json:"performanceRating,omitempty"`
	CancellationReason *string        `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time     `json:"cancelledAt,omitempty"`
}

type BookingServiceType string

const (
	BookingServiceLicense BookingServiceType = "LICENSE"
	BookingServiceAddon   BookingServiceType = "ADDON"
)

// BookingService is a school service attached to a booking at its own price.
type BookingService struct {
	ID                 int64              `json:"id"`
	BookingID          int64              `json:"bookingId"`
	SchoolServiceID    int64              `json:"schoolServiceId"`
	ServiceType        BookingServiceType `json:"serviceType"`
	Price              decimal.Decimal    `json:"price"`
	ConfirmationNumber string             `json:"confirmationNumber"`
	Status             string             `json:"status"`
	SchoolService      *SchoolService     `json:"schoolService,omitempty"`
}

type BookingServiceInput struct {
	BookingID          *int64              `json:"bookingId,omitempty"`
	SchoolServiceID    *int64              `json:"schoolServiceId,omitempty"`
	ServiceType        *BookingServiceType `json:"serviceType,omitempty"`
	Price              *decimal.Decimal    `json:"price,omitempty"`
	ConfirmationNumber *string             `json:"confirmationNumber,omitempty"`
	Status             *string             `json:"status,omitempty"`
}

// SessionChange is one session rewritten by an amendment.
type SessionChange struct {
	ID                 int64         `json:"id"`
	SessionDate        string        `json:"sessionDate"`
	Status             SessionStatus `json:"status"`
	CancellationReason *string       `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time    `json:"cancelledAt,omitempty"`
}

// AmendBookingInput carries every session change of one amendment together
// with the recomputed roll-up so the backend applies them as one write.
type AmendBookingInput struct {
	Action     string          `json:"action"`
	Reason     string          `json:"reason,omitempty"`
	Sessions   []SessionChange `json:"sessions"`
	DateStatus DateStatus      `json:"dateStatus"`
	Status     BookingStatus   `json:"status"`
}

// SessionStatusInput updates one session and its booking's roll-up together.
type SessionStatusInput struct {
	Session           BookingSessionInput `json:"session"`
	BookingDateStatus DateStatus          `json:"bookingDateStatus"`
	BookingStatus     BookingStatus       `json:"bookingStatus"`
}
