package services

import (
	"context"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/repositories"
)

type fakeBookings struct {
	byID    map[int64]models.Booking
	created []models.BookingInput
	amended []models.AmendBookingInput
	updated []models.BookingInput
}

func (f *fakeBookings) Paginate(_ context.Context, q domain.PageQuery, _ models.BookingFilter) (domain.Page[models.Booking], error) {
	page := domain.Page[models.Booking]{Skip: q.Skip, Take: q.Take}
	for _, b := range f.byID {
		page.Data = append(page.Data, b)
	}
	page.Total = len(page.Data)
	return page, nil
}

func (f *fakeBookings) Get(_ context.Context, id int64) (models.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return models.Booking{}, domain.NotFoundError{Resource: "Booking", ID: id}
	}
	return b, nil
}

func (f *fakeBookings) Create(_ context.Context, in models.BookingInput) (models.Booking, error) {
	f.created = append(f.created, in)
	b := models.Booking{ID: 100, SchoolID: *in.SchoolID, TotalAmount: *in.TotalAmount, Status: *in.Status, DateStatus: *in.DateStatus}
	return b, nil
}

func (f *fakeBookings) Update(_ context.Context, id int64, in models.BookingInput) (models.Booking, error) {
	f.updated = append(f.updated, in)
	return f.byID[id], nil
}

func (f *fakeBookings) Delete(_ context.Context, id int64) (models.Deleted, error) {
	return models.Deleted{ID: id}, nil
}

func (f *fakeBookings) Amend(_ context.Context, id int64, in models.AmendBookingInput) (models.Booking, error) {
	f.amended = append(f.amended, in)
	b := f.byID[id]
	b.DateStatus = in.DateStatus
	b.Status = in.Status
	return b, nil
}

type fakeSessions struct {
	byBooking map[int64][]models.BookingSession
	updates   []models.SessionStatusInput
}

func (f *fakeSessions) Get(_ context.Context, id int64) (models.BookingSession, error) {
	for _, list := range f.byBooking {
		for _, s := range list {
			if s.ID == id {
				return s, nil
			}
		}
	}
	return models.BookingSession{}, domain.NotFoundError{Resource: "BookingSession", ID: id}
}

func (f *fakeSessions) ListByBooking(_ context.Context, bookingID int64) ([]models.BookingSession, error) {
	return f.byBooking[bookingID], nil
}

func (f *fakeSessions) UpdateStatus(ctx context.Context, id int64, in models.SessionStatusInput) (models.BookingSession, error) {
	f.updates = append(f.updates, in)
	s, err := f.Get(ctx, id)
	if err != nil {
		return s, err
	}
	if in.Session.Status != nil {
		s.Status = *in.Session.Status
	}
	return s, nil
}

type fakeCourses map[int64]models.Course

func (f fakeCourses) Get(_ context.Context, id int64) (models.Course, error) {
	c, ok := f[id]
	if !ok {
		return models.Course{}, domain.NotFoundError{Resource: "Course", ID: id}
	}
	return c, nil
}

type fakeSchoolServices map[int64]models.SchoolService

func (f fakeSchoolServices) Get(_ context.Context, id int64) (models.SchoolService, error) {
	ss, ok := f[id]
	if !ok {
		return models.SchoolService{}, domain.NotFoundError{Resource: "SchoolService", ID: id}
	}
	return ss, nil
}

type fakeJournal struct {
	disabled bool
	holds    map[int64]map[int64]string
	entries  []repositories.AmendmentEntry
	changes  [][]repositories.HoldChange
	failWith error
}

func (f *fakeJournal) Enabled() bool { return !f.disabled }

func (f *fakeJournal) Record(_ context.Context, e repositories.AmendmentEntry, holds []repositories.HoldChange) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	f.entries = append(f.entries, e)
	f.changes = append(f.changes, holds)
	if f.holds == nil {
		f.holds = map[int64]map[int64]string{}
	}
	if f.holds[e.BookingID] == nil {
		f.holds[e.BookingID] = map[int64]string{}
	}
	for _, h := range holds {
		if h.Held {
			f.holds[e.BookingID][h.SessionID] = h.Reason
		} else {
			delete(f.holds[e.BookingID], h.SessionID)
		}
	}
	return int64(len(f.entries)), nil
}

func (f *fakeJournal) Holds(_ context.Context, bookingID int64) (map[int64]string, error) {
	out := map[int64]string{}
	for k, v := range f.holds[bookingID] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeJournal) History(_ context.Context, bookingID int64) ([]repositories.AmendmentEntry, error) {
	var out []repositories.AmendmentEntry
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].BookingID == bookingID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

type fakePayments map[int64][]models.Payment

func (f fakePayments) ListByBooking(_ context.Context, bookingID int64) ([]models.Payment, error) {
	return f[bookingID], nil
}

type fakeServicePayments map[int64][]models.ServicePayment

func (f fakeServicePayments) ListByBookingService(_ context.Context, id int64) ([]models.ServicePayment, error) {
	return f[id], nil
}

type fakeSchools map[int64]models.School

func (f fakeSchools) Get(_ context.Context, id int64) (models.School, error) {
	s, ok := f[id]
	if !ok {
		return models.School{}, domain.NotFoundError{Resource: "School", ID: id}
	}
	return s, nil
}
