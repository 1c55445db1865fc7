package validators

import (
	"strings"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/amendment"
	"schooladmin/internal/domain/models"
)

type BookingServiceLine struct {
	SchoolServiceID Numeric `json:"schoolServiceId" validate:"required,integer"`
	ServiceType     string  `json:"serviceType" validate:"required,oneof=LICENSE ADDON"`
}

// BookingForm is the create/update form. Discounts only feed the total
// computed on create; they are not stored on their own.
type BookingForm struct {
	SchoolID        Numeric              `json:"schoolId" validate:"omitempty,integer"`
	UserID          Numeric              `json:"userId" validate:"required,integer"`
	CarID           Numeric              `json:"carId" validate:"required,integer"`
	CourseID        Numeric              `json:"courseId" validate:"required,integer"`
	Slot            string               `json:"slot" validate:"required,min=3,max=20"`
	BookingDate     string               `json:"bookingDate" validate:"required,date"`
	SessionDates    []string             `json:"sessionDates" validate:"omitempty,unique,dive,date"`
	Services        []BookingServiceLine `json:"services" validate:"omitempty,dive"`
	Discount        Numeric              `json:"discount" validate:"omitempty,decimal"`
	ServiceDiscount Numeric              `json:"serviceDiscount" validate:"omitempty,decimal"`
	Status          string               `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLED NO_SHOW"`
	Notes           string               `json:"notes" validate:"omitempty,max=1000"`
}

func (f *BookingForm) Input(fields Fields) models.BookingInput {
	in := models.BookingInput{
		SchoolID:    ref(fields, "schoolId", f.SchoolID),
		UserID:      ref(fields, "userId", f.UserID),
		CarID:       ref(fields, "carId", f.CarID),
		CourseID:    ref(fields, "courseId", f.CourseID),
		Slot:        text(fields, "slot", f.Slot),
		BookingDate: text(fields, "bookingDate", f.BookingDate),
		Status:      enum[models.BookingStatus](fields, "status", f.Status),
		Notes:       optText(fields, "notes", f.Notes),
	}
	// sessions and services are fixed at creation
	if fields == nil {
		in.SessionDates = f.SessionDates
		for _, line := range f.Services {
			id := ref(nil, "", line.SchoolServiceID)
			kind := models.BookingServiceType(line.ServiceType)
			in.Services = append(in.Services, models.BookingServiceInput{SchoolServiceID: id, ServiceType: &kind})
		}
	}
	return in
}

// Discounts returns the booking and service discounts, zero when blank.
func (f *BookingForm) Discounts() (booking, service Numeric) {
	booking, service = f.Discount, f.ServiceDiscount
	if booking == "" {
		booking = "0"
	}
	if service == "" {
		service = "0"
	}
	return booking, service
}

type BookingSessionForm struct {
	SessionDate        string  `json:"sessionDate" validate:"omitempty,date"`
	Slot               string  `json:"slot" validate:"omitempty,min=3,max=20"`
	Status             string  `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLED NO_SHOW"`
	Attendance         *bool   `json:"attendance" validate:"omitempty"`
	DriverNotes        string  `json:"driverNotes" validate:"omitempty,max=500"`
	PerformanceRating  Numeric `json:"performanceRating" validate:"omitempty,oneof=1 2 3 4 5"`
	CancellationReason string  `json:"cancellationReason" validate:"omitempty,max=255"`
}

func (f *BookingSessionForm) Input(fields Fields) models.BookingSessionInput {
	in := models.BookingSessionInput{
		SessionDate:        text(fields, "sessionDate", f.SessionDate),
		Slot:               text(fields, "slot", f.Slot),
		Status:             enum[models.SessionStatus](fields, "status", f.Status),
		DriverNotes:        text(fields, "driverNotes", f.DriverNotes),
		PerformanceRating:  integer(fields, "performanceRating", f.PerformanceRating),
		CancellationReason: text(fields, "cancellationReason", f.CancellationReason),
	}
	if fields.Has("attendance") {
		in.Attendance = f.Attendance
	}
	return in
}

type BookingServiceForm struct {
	SchoolServiceID    Numeric `json:"schoolServiceId" validate:"required,integer"`
	ServiceType        string  `json:"serviceType" validate:"required,oneof=LICENSE ADDON"`
	Price              Numeric `json:"price" validate:"omitempty,decimal"`
	ConfirmationNumber string  `json:"confirmationNumber" validate:"omitempty,max=40"`
	Status             string  `json:"status" validate:"omitempty,oneof=PENDING ACTIVE COMPLETED CANCELLED"`
}

func (f *BookingServiceForm) Input(fields Fields) models.BookingServiceInput {
	return models.BookingServiceInput{
		SchoolServiceID:    ref(fields, "schoolServiceId", f.SchoolServiceID),
		ServiceType:        enum[models.BookingServiceType](fields, "serviceType", f.ServiceType),
		Price:              money(fields, "price", f.Price),
		ConfirmationNumber: optText(fields, "confirmationNumber", f.ConfirmationNumber),
		Status:             enum[string](fields, "status", f.Status),
	}
}

type AmendmentForm struct {
	Action     string   `json:"action" validate:"required,oneof=CANCEL_BOOKING CHANGE_DATE CAR_BREAKDOWN CAR_HOLIDAY RELEASE_HOLD"`
	TargetDate string   `json:"targetDate" validate:"omitempty,date"`
	NewDate    string   `json:"newDate" validate:"omitempty,date"`
	Dates      []string `json:"dates" validate:"omitempty,unique,dive,date"`
	Reason     string   `json:"reason" validate:"omitempty,max=255"`
	Hold       bool     `json:"hold"`
}

func (f *AmendmentForm) crossCheck(_ Fields, errs domain.ValidationErrors) {
	switch amendment.Action(f.Action) {
	case amendment.ChangeDate:
		if f.TargetDate == "" {
			errs["targetDate"] = "is required"
		}
		if f.NewDate == "" {
			errs["newDate"] = "is required"
		} else if f.NewDate == f.TargetDate {
			errs["newDate"] = "must differ from the current date"
		}
	case amendment.ReleaseHold:
		if f.TargetDate == "" {
			errs["targetDate"] = "is required"
		}
	case amendment.CancelBooking:
		if f.Hold {
			errs["hold"] = "only applies to car breakdown or car holiday"
		}
	}
}

func (f *AmendmentForm) Request() amendment.Request {
	return amendment.Request{
		Action:     amendment.Action(f.Action),
		TargetDate: f.TargetDate,
		NewDate:    f.NewDate,
		Dates:      f.Dates,
		Reason:     strings.TrimSpace(f.Reason),
		Hold:       f.Hold,
	}
}
