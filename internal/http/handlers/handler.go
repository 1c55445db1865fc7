package handlers

import (
	"github.com/gin-gonic/gin"

	"schooladmin/internal/graphql"
	"schooladmin/internal/http/middleware"
	"schooladmin/internal/repositories"
	"schooladmin/internal/services"
)

// Handler holds the resource clients every route works through.
type Handler struct {
	Schools             repositories.SchoolRepository
	Cars                repositories.CarRepository
	Drivers             repositories.DriverRepository
	Courses             repositories.CourseRepository
	Services            repositories.ServiceRepository
	SchoolServices      repositories.SchoolServiceRepository
	Users               repositories.UserRepository
	Bookings            repositories.BookingRepository
	Sessions            repositories.BookingSessionRepository
	BookingServices     repositories.BookingServiceRepository
	Payments            repositories.PaymentRepository
	ServicePayments     repositories.ServicePaymentRepository
	Holidays            repositories.HolidayRepository
	LicenseApplications repositories.LicenseApplicationRepository
	Journal             repositories.AmendmentJournal
}

func New(gql *graphql.Client, journal repositories.AmendmentJournal) *Handler {
	return &Handler{
		Schools:             repositories.NewSchoolRepository(gql),
		Cars:                repositories.NewCarRepository(gql),
		Drivers:             repositories.NewDriverRepository(gql),
		Courses:             repositories.NewCourseRepository(gql),
		Services:            repositories.NewServiceRepository(gql),
		SchoolServices:      repositories.NewSchoolServiceRepository(gql),
		Users:               repositories.NewUserRepository(gql),
		Bookings:            repositories.NewBookingRepository(gql),
		Sessions:            repositories.NewBookingSessionRepository(gql),
		BookingServices:     repositories.NewBookingServiceRepository(gql),
		Payments:            repositories.NewPaymentRepository(gql),
		ServicePayments:     repositories.NewServicePaymentRepository(gql),
		Holidays:            repositories.NewHolidayRepository(gql),
		LicenseApplications: repositories.NewLicenseApplicationRepository(gql),
		Journal:             journal,
	}
}

func (h *Handler) bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Bookings:       h.Bookings,
		Sessions:       h.Sessions,
		Courses:        h.Courses,
		SchoolServices: h.SchoolServices,
		Journal:        h.Journal,
		RequestID:      middleware.GetRequestID(c),
	}
}

func (h *Handler) paymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		Bookings:        h.Bookings,
		Payments:        h.Payments,
		ServicePayments: h.ServicePayments,
		RequestID:       middleware.GetRequestID(c),
	}
}

func (h *Handler) catalogService(c *gin.Context) services.CatalogService {
	return services.CatalogService{Services: h.Services, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) docsService(c *gin.Context) services.DocsService {
	return services.DocsService{Bookings: h.Bookings, Payments: h.Payments, RequestID: middleware.GetRequestID(c)}
}

// Profiles backs the RequireCompleteProfile gate.
func (h *Handler) Profiles() services.ProfileService {
	return services.ProfileService{Schools: h.Schools}
}
