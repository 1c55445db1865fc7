package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/validators"
)

// Payments belong to a school through their booking.
func (h *Handler) payments() crud[models.Payment, models.PaymentInput, models.PaymentFilter] {
	return crud[models.Payment, models.PaymentInput, models.PaymentFilter]{
		name:    "payment",
		repo:    h.Payments,
		newForm: func() form[models.PaymentInput] { return &validators.PaymentForm{} },
		filter: func(c *gin.Context, schoolID int64) (models.PaymentFilter, error) {
			bookingID, err := queryID(c, "bookingId")
			if err != nil {
				return models.PaymentFilter{}, err
			}
			if bookingID == nil {
				return models.PaymentFilter{}, domain.ValidationError{Field: "bookingId", Msg: "is required"}
			}
			if _, err := h.ownBooking(c, schoolID, *bookingID); err != nil {
				return models.PaymentFilter{}, err
			}
			return models.PaymentFilter{
				BookingID:     bookingID,
				Status:        queryEnum[models.PaymentStatus](c, "status"),
				PaymentMethod: queryText(c, "paymentMethod"),
			}, nil
		},
		owner: func(c *gin.Context, p models.Payment) (int64, error) {
			b, err := h.Bookings.Get(c.Request.Context(), p.BookingID)
			return b.SchoolID, err
		},
		admit: func(c *gin.Context, schoolID int64, in models.PaymentInput) error {
			_, err := h.ownBooking(c, schoolID, idOf(in.BookingID))
			return err
		},
		pinned: []string{"bookingId"},
		remove: plainDelete(h.Payments.Delete),
	}
}

func (h *Handler) ListPayments(c *gin.Context)  { h.payments().list(c) }
func (h *Handler) GetPayment(c *gin.Context)    { h.payments().get(c) }
func (h *Handler) CreatePayment(c *gin.Context) { h.payments().create(c) }
func (h *Handler) UpdatePayment(c *gin.Context) { h.payments().update(c) }
func (h *Handler) DeletePayment(c *gin.Context) { h.payments().destroy(c) }

// GetTotalPaid sums the booking's completed payments.
func (h *Handler) GetTotalPaid(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := h.ownBooking(c, caller(c).SchoolID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	paid, err := h.paymentService(c).GetTotalPaidAmount(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "total paid", gin.H{"bookingId": id, "totalPaid": paid})
}

func (h *Handler) GetBalance(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sum, err := h.paymentService(c).Balance(c.Request.Context(), caller(c).SchoolID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "booking balance", sum)
}

func (h *Handler) ListServicePayments(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := h.ownBookingService(c, caller(c).SchoolID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	items, err := h.ServicePayments.ListByBookingService(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "service payments", items)
}

func (h *Handler) GetServiceTotalPaid(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := h.ownBookingService(c, caller(c).SchoolID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	paid, err := h.paymentService(c).GetServiceTotalPaid(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "total paid", gin.H{"bookingServiceId": id, "totalPaid": paid})
}

func (h *Handler) CreateServicePayment(c *gin.Context) {
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
	var form validators.ServicePaymentForm
	if err := decodeForm(raw, &form); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := validators.ValidateCreate(&form); err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := h.ownBookingService(c, caller(c).SchoolID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	in := form.Input(nil)
	in.BookingServiceID = &id
	sp, err := h.ServicePayments.Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusCreated, "service payment created", sp)
}

// ownServicePayment resolves a service payment through its booking service.
func (h *Handler) ownServicePayment(c *gin.Context, id int64) error {
	sp, err := h.ServicePayments.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	if _, err := h.ownBookingService(c, caller(c).SchoolID, sp.BookingServiceID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NotFoundError{Resource: "ServicePayment", ID: id}
		}
		return err
	}
	return nil
}

func (h *Handler) UpdateServicePayment(c *gin.Context) {
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
	delete(fields, "bookingServiceId")
	if err := h.ownServicePayment(c, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	var form validators.ServicePaymentForm
	if err := decodeForm(raw, &form); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := validators.ValidateUpdate(&form, fields); err != nil {
		RespondDomainError(c, err)
		return
	}
	sp, err := h.ServicePayments.Update(c.Request.Context(), id, form.Input(fields))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "service payment updated", sp)
}

func (h *Handler) DeleteServicePayment(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := h.ownServicePayment(c, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	deleted, err := h.ServicePayments.Delete(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "service payment deleted", deleted)
}
