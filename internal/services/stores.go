package services

import (
	"context"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/repositories"
)

// The services depend on these narrow views of the repositories so tests can
// swap in fakes.

type bookingStore interface {
	Paginate(ctx context.Context, q domain.PageQuery, f models.BookingFilter) (domain.Page[models.Booking], error)
	Get(ctx context.Context, id int64) (models.Booking, error)
	Create(ctx context.Context, in models.BookingInput) (models.Booking, error)
	Update(ctx context.Context, id int64, in models.BookingInput) (models.Booking, error)
	Delete(ctx context.Context, id int64) (models.Deleted, error)
	Amend(ctx context.Context, id int64, in models.AmendBookingInput) (models.Booking, error)
}

type sessionStore interface {
	Get(ctx context.Context, id int64) (models.BookingSession, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]models.BookingSession, error)
	UpdateStatus(ctx context.Context, id int64, in models.SessionStatusInput) (models.BookingSession, error)
}

type courseReader interface {
	Get(ctx context.Context, id int64) (models.Course, error)
}

type schoolServiceReader interface {
	Get(ctx context.Context, id int64) (models.SchoolService, error)
}

type schoolReader interface {
	Get(ctx context.Context, id int64) (models.School, error)
}

type paymentLister interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]models.Payment, error)
}

type servicePaymentLister interface {
	ListByBookingService(ctx context.Context, bookingServiceID int64) ([]models.ServicePayment, error)
}

type serviceStore interface {
	Paginate(ctx context.Context, q domain.PageQuery, f models.ServiceFilter) (domain.Page[models.Service], error)
	All(ctx context.Context, f models.ServiceFilter) ([]models.Service, error)
	Get(ctx context.Context, id int64) (models.Service, error)
	Create(ctx context.Context, in models.ServiceInput) (models.Service, error)
	Update(ctx context.Context, id int64, in models.ServiceInput) (models.Service, error)
	Delete(ctx context.Context, id int64) (models.Deleted, error)
}

type amendmentJournal interface {
	Enabled() bool
	Record(ctx context.Context, entry repositories.AmendmentEntry, holds []repositories.HoldChange) (int64, error)
	Holds(ctx context.Context, bookingID int64) (map[int64]string, error)
	History(ctx context.Context, bookingID int64) ([]repositories.AmendmentEntry, error)
}
