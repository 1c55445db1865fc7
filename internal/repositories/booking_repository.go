package repositories

import (
	"context"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/graphql"
)

type BookingRepository struct {
	resource[models.Booking, models.BookingInput, models.BookingFilter]
}

func NewBookingRepository(c *graphql.Client) BookingRepository {
	return BookingRepository{newResource[models.Booking, models.BookingInput, models.BookingFilter](c, "Booking", "Bookings", bookingFields)}
}

// Amend sends every session change of one amendment with the recomputed
// roll-up in a single mutation.
func (r BookingRepository) Amend(ctx context.Context, bookingID int64, input models.AmendBookingInput) (models.Booking, error) {
	if bookingID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "bookingId", Msg: "must be a positive integer"}
	}
	doc := `mutation AmendBooking($id: Int!, $input: AmendBookingInput!) {
  amendBooking(id: $id, input: $input) { ` + bookingFields + ` }
}`
	return run[models.Booking](ctx, r.gql, "AmendBooking", "amendBooking", doc,
		map[string]any{"id": bookingID, "input": input}, "Booking", bookingID, true)
}

type BookingSessionRepository struct {
	gql *graphql.Client
}

func NewBookingSessionRepository(c *graphql.Client) BookingSessionRepository {
	return BookingSessionRepository{gql: c}
}

func (r BookingSessionRepository) Get(ctx context.Context, id int64) (models.BookingSession, error) {
	if id <= 0 {
		return models.BookingSession{}, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	doc := `query GetBookingSession($id: Int!) {
  getBookingSessionById(id: $id) { ` + sessionFields + ` }
}`
	return run[models.BookingSession](ctx, r.gql, "GetBookingSession", "getBookingSessionById", doc,
		map[string]any{"id": id}, "BookingSession", id, true)
}

func (r BookingSessionRepository) ListByBooking(ctx context.Context, bookingID int64) ([]models.BookingSession, error) {
	if bookingID <= 0 {
		return nil, domain.ValidationError{Field: "bookingId", Msg: "must be a positive integer"}
	}
	doc := `query GetBookingSessions($bookingId: Int!) {
  getBookingSessionsByBookingId(bookingId: $bookingId) { ` + sessionFields + ` }
}`
	out, err := run[[]models.BookingSession](ctx, r.gql, "GetBookingSessions", "getBookingSessionsByBookingId", doc,
		map[string]any{"bookingId": bookingID}, "Booking", bookingID, false)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.BookingSession{}
	}
	return out, nil
}

// UpdateStatus writes the session change and its booking's new roll-up in
// one mutation.
func (r BookingSessionRepository) UpdateStatus(ctx context.Context, id int64, input models.SessionStatusInput) (models.BookingSession, error) {
	if id <= 0 {
		return models.BookingSession{}, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	doc := `mutation UpdateBookingSession($id: Int!, $input: UpdateBookingSessionInput!, $bookingDateStatus: String!, $bookingStatus: String!) {
  updateBookingSession(id: $id, input: $input, bookingDateStatus: $bookingDateStatus, bookingStatus: $bookingStatus) { ` + sessionFields + ` }
}`
	vars := map[string]any{
		"id":                id,
		"input":             input.Session,
		"bookingDateStatus": input.BookingDateStatus,
		"bookingStatus":     input.BookingStatus,
	}
	return run[models.BookingSession](ctx, r.gql, "UpdateBookingSession", "updateBookingSession", doc, vars, "BookingSession", id, true)
}

type BookingServiceRepository struct {
	gql *graphql.Client
}

func NewBookingServiceRepository(c *graphql.Client) BookingServiceRepository {
	return BookingServiceRepository{gql: c}
}

func (r BookingServiceRepository) Get(ctx context.Context, id int64) (models.BookingService, error) {
	if id <= 0 {
		return models.BookingService{}, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	doc := `query GetBookingService($id: Int!) {
  getBookingServiceById(id: $id) { ` + bookingServiceFields + ` }
}`
	return run[models.BookingService](ctx, r.gql, "GetBookingService", "getBookingServiceById", doc,
		map[string]any{"id": id}, "BookingService", id, true)
}

func (r BookingServiceRepository) ListByBooking(ctx context.Context, bookingID int64) ([]models.BookingService, error) {
	if bookingID <= 0 {
		return nil, domain.ValidationError{Field: "bookingId", Msg: "must be a positive integer"}
	}
	doc := `query GetBookingServices($bookingId: Int!) {
  getBookingServicesByBookingId(bookingId: $bookingId) { ` + bookingServiceFields + ` }
}`
	out, err := run[[]models.BookingService](ctx, r.gql, "GetBookingServices", "getBookingServicesByBookingId", doc,
		map[string]any{"bookingId": bookingID}, "Booking", bookingID, false)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.BookingService{}
	}
	return out, nil
}

func (r BookingServiceRepository) Create(ctx context.Context, input models.BookingServiceInput) (models.BookingService, error) {
	doc := `mutation CreateBookingService($input: CreateBookingServiceInput!) {
  createBookingService(input: $input) { ` + bookingServiceFields + ` }
}`
	return run[models.BookingService](ctx, r.gql, "CreateBookingService", "createBookingService", doc,
		map[string]any{"input": input}, "BookingService", 0, false)
}

func (r BookingServiceRepository) Update(ctx context.Context, id int64, input models.BookingServiceInput) (models.BookingService, error) {
	if id <= 0 {
		return models.BookingService{}, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	doc := `mutation UpdateBookingService($id: Int!, $input: UpdateBookingServiceInput!) {
  updateBookingService(id: $id, input: $input) { ` + bookingServiceFields + ` }
}`
	return run[models.BookingService](ctx, r.gql, "UpdateBookingService", "updateBookingService", doc,
		map[string]any{"id": id, "input": input}, "BookingService", id, true)
}

func (r BookingServiceRepository) Delete(ctx context.Context, id int64) (models.Deleted, error) {
	if id <= 0 {
		return models.Deleted{}, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	doc := `mutation DeleteBookingService($id: Int!) {
  deleteBookingService(id: $id) { id deletedAt }
}`
	return run[models.Deleted](ctx, r.gql, "DeleteBookingService", "deleteBookingService", doc,
		map[string]any{"id": id}, "BookingService", id, true)
}
