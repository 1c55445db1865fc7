package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/validators"
)

// ownBooking returns the booking when it belongs to schoolID.
func (h *Handler) ownBooking(c *gin.Context, schoolID, id int64) (models.Booking, error) {
	return h.bookingService(c).Get(c.Request.Context(), schoolID, id)
}

// ownBookingService resolves a booking service through its booking.
func (h *Handler) ownBookingService(c *gin.Context, schoolID, id int64) (models.BookingService, error) {
	bs, err := h.BookingServices.Get(c.Request.Context(), id)
	if err != nil {
		return models.BookingService{}, err
	}
	if _, err := h.ownBooking(c, schoolID, bs.BookingID); err != nil {
		if domain.IsNotFound(err) {
			return models.BookingService{}, domain.NotFoundError{Resource: "BookingService", ID: id}
		}
		return models.BookingService{}, err
	}
	return bs, nil
}

func (h *Handler) ListBookings(c *gin.Context) {
	q, err := pageQuery(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	f := models.BookingFilter{
		Status:   queryEnum[models.BookingStatus](c, "status"),
		FromDate: queryText(c, "fromDate"),
		ToDate:   queryText(c, "toDate"),
	}
	for key, dst := range map[string]**int64{"userId": &f.UserID, "carId": &f.CarID, "courseId": &f.CourseID} {
		if *dst, err = queryID(c, key); err != nil {
			RespondDomainError(c, err)
			return
		}
	}
	page, err := h.bookingService(c).List(c.Request.Context(), caller(c).SchoolID, q, f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "booking list", page)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	b, err := h.ownBooking(c, caller(c).SchoolID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "booking found", b)
}

// CreateBooking prices the booking from the course and the selected school
// services and lays out its sessions.
func (h *Handler) CreateBooking(c *gin.Context) {
	who := caller(c)
	raw, _, err := readBody(c)
	if err == nil {
		raw, err = withSchool(raw, who.SchoolID)
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	var form validators.BookingForm
	if err := decodeForm(raw, &form); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := validators.ValidateCreate(&form); err != nil {
		RespondDomainError(c, err)
		return
	}
	in := form.Input(nil)
	if _, err := h.cars().load(c, who, idOf(in.CarID)); err != nil {
		RespondDomainError(c, err)
		return
	}
	bookingDiscount, serviceDiscount := form.Discounts()
	b, err := h.bookingService(c).Create(c.Request.Context(), who.SchoolID, in,
		decimal.RequireFromString(string(bookingDiscount)), decimal.RequireFromString(string(serviceDiscount)))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusCreated, "booking created", b)
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	who := caller(c)
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	raw, fields, err := readBody(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	delete(fields, "schoolId")
	var form validators.BookingForm
	if err := decodeForm(raw, &form); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := validators.ValidateUpdate(&form, fields); err != nil {
		RespondDomainError(c, err)
		return
	}
	in := form.Input(fields)
	if in.CarID != nil {
		if _, err := h.cars().load(c, who, *in.CarID); err != nil {
			RespondDomainError(c, err)
			return
		}
	}
	b, err := h.bookingService(c).Update(c.Request.Context(), who.SchoolID, id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "booking updated", b)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	deleted, err := h.bookingService(c).Delete(c.Request.Context(), caller(c).SchoolID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "booking deleted", deleted)
}

// GetAmendments returns the booking's dates, the actions they allow and the
// amendment history.
func (h *Handler) GetAmendments(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	view, err := h.bookingService(c).Amendments(c.Request.Context(), caller(c).SchoolID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "booking amendments", view)
}

func (h *Handler) AmendBooking(c *gin.Context) {
	who := caller(c)
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	raw, _, err := readBody(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	var form validators.AmendmentForm
	if err := decodeForm(raw, &form); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := validators.ValidateCreate(&form); err != nil {
		RespondDomainError(c, err)
		return
	}
	res, err := h.bookingService(c).Amend(c.Request.Context(), who.SchoolID, who.UserID, id, form.Request())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "booking amended", res)
}

func (h *Handler) GetAmendmentHistory(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	history, err := h.bookingService(c).History(c.Request.Context(), caller(c).SchoolID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "amendment history", history)
}

func (h *Handler) ListBookingSessions(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := h.ownBooking(c, caller(c).SchoolID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	sessions, err := h.Sessions.ListByBooking(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "booking sessions", sessions)
}

// UpdateBookingSession changes one session; the booking's roll-up is
// recomputed and written with it.
func (h *Handler) UpdateBookingSession(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	raw, fields, err := readBody(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	var form validators.BookingSessionForm
	if err := decodeForm(raw, &form); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := validators.ValidateUpdate(&form, fields); err != nil {
		RespondDomainError(c, err)
		return
	}
	s, err := h.bookingService(c).UpdateSession(c.Request.Context(), caller(c).SchoolID, id, form.Input(fields))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "booking session updated", s)
}

func (h *Handler) ListBookingServices(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := h.ownBooking(c, caller(c).SchoolID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	items, err := h.BookingServices.ListByBooking(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "booking services", items)
}

// CreateBookingService attaches a school service to an existing booking. A
// missing price is taken from the school's price list. The booking total is a
// snapshot and does not move.
func (h *Handler) CreateBookingService(c *gin.Context) {
	who := caller(c)
	bookingID, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	raw, _, err := readBody(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	var form validators.BookingServiceForm
	if err := decodeForm(raw, &form); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := validators.ValidateCreate(&form); err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := h.ownBooking(c, who.SchoolID, bookingID); err != nil {
		RespondDomainError(c, err)
		return
	}
	in := form.Input(nil)
	ss, err := h.schoolServices().load(c, who, idOf(in.SchoolServiceID))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if ss.Status != models.SchoolServiceActive {
		RespondDomainError(c, domain.ValidationError{Field: "schoolServiceId", Msg: "service is not offered by this school"})
		return
	}
	if in.Price == nil {
		price := ss.AddonPrice
		if *in.ServiceType == models.BookingServiceLicense {
			price = ss.LicensePrice
		}
		in.Price = &price
	}
	in.BookingID = &bookingID
	bs, err := h.BookingServices.Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusCreated, "booking service created", bs)
}

func (h *Handler) UpdateBookingService(c *gin.Context) {
	who := caller(c)
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	raw, fields, err := readBody(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	delete(fields, "schoolServiceId")
	if _, err := h.ownBookingService(c, who.SchoolID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	var form validators.BookingServiceForm
	if err := decodeForm(raw, &form); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := validators.ValidateUpdate(&form, fields); err != nil {
		RespondDomainError(c, err)
		return
	}
	bs, err := h.BookingServices.Update(c.Request.Context(), id, form.Input(fields))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "booking service updated", bs)
}

func (h *Handler) DeleteBookingService(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := h.ownBookingService(c, caller(c).SchoolID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	deleted, err := h.BookingServices.Delete(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "booking service deleted", deleted)
}
