package repositories

import (
	"context"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/graphql"
)

type PaymentRepository struct {
	resource[models.Payment, models.PaymentInput, models.PaymentFilter]
}

func NewPaymentRepository(c *graphql.Client) PaymentRepository {
	return PaymentRepository{newResource[models.Payment, models.PaymentInput, models.PaymentFilter](c, "Payment", "Payments", paymentFields)}
}

// ListByBooking returns every installment recorded against the booking,
// whatever its status.
func (r PaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]models.Payment, error) {
	if bookingID <= 0 {
		return nil, domain.ValidationError{Field: "bookingId", Msg: "must be a positive integer"}
	}
	return r.All(ctx, models.PaymentFilter{BookingID: &bookingID})
}

type ServicePaymentRepository struct {
	gql *graphql.Client
}

func NewServicePaymentRepository(c *graphql.Client) ServicePaymentRepository {
	return ServicePaymentRepository{gql: c}
}

func (r ServicePaymentRepository) ListByBookingService(ctx context.Context, bookingServiceID int64) ([]models.ServicePayment, error) {
	if bookingServiceID <= 0 {
		return nil, domain.ValidationError{Field: "bookingServiceId", Msg: "must be a positive integer"}
	}
	doc := `query GetServicePayments($bookingServiceId: Int!) {
  getServicePaymentsByBookingServiceId(bookingServiceId: $bookingServiceId) { ` + servicePaymentFields + ` }
}`
	out, err := run[[]models.ServicePayment](ctx, r.gql, "GetServicePayments", "getServicePaymentsByBookingServiceId", doc,
		map[string]any{"bookingServiceId": bookingServiceID}, "BookingService", bookingServiceID, false)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.ServicePayment{}
	}
	return out, nil
}

func (r ServicePaymentRepository) Get(ctx context.Context, id int64) (models.ServicePayment, error) {
	if id <= 0 {
		return models.ServicePayment{}, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	doc := `query GetServicePayment($id: Int!) {
  getServicePaymentById(id: $id) { ` + servicePaymentFields + ` }
}`
	return run[models.ServicePayment](ctx, r.gql, "GetServicePayment", "getServicePaymentById", doc,
		map[string]any{"id": id}, "ServicePayment", id, true)
}

func (r ServicePaymentRepository) Create(ctx context.Context, input models.ServicePaymentInput) (models.ServicePayment, error) {
	doc := `mutation CreateServicePayment($input: CreateServicePaymentInput!) {
  createServicePayment(input: $input) { ` + servicePaymentFields + ` }
}`
	return run[models.ServicePayment](ctx, r.gql, "CreateServicePayment", "createServicePayment", doc,
		map[string]any{"input": input}, "ServicePayment", 0, false)
}

func (r ServicePaymentRepository) Update(ctx context.Context, id int64, input models.ServicePaymentInput) (models.ServicePayment, error) {
	if id <= 0 {
		return models.ServicePayment{}, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	doc := `mutation UpdateServicePayment($id: Int!, $input: UpdateServicePaymentInput!) {
  updateServicePayment(id: $id, input: $input) { ` + servicePaymentFields + ` }
}`
	return run[models.ServicePayment](ctx, r.gql, "UpdateServicePayment", "updateServicePayment", doc,
		map[string]any{"id": id, "input": input}, "ServicePayment", id, true)
}

func (r ServicePaymentRepository) Delete(ctx context.Context, id int64) (models.Deleted, error) {
	if id <= 0 {
		return models.Deleted{}, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	doc := `mutation DeleteServicePayment($id: Int!) {
  deleteServicePayment(id: $id) { id deletedAt }
}`
	return run[models.Deleted](ctx, r.gql, "DeleteServicePayment", "deleteServicePayment", doc,
		map[string]any{"id": id}, "ServicePayment", id, true)
}
