package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/amendment"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/repositories"
	"schooladmin/internal/utils"
)

// BookingService owns booking creation (with its total snapshot), the
// amendment flow and session status changes. Every call is scoped to the
// caller's school.
type BookingService struct {
	Bookings       bookingStore
	Sessions       sessionStore
	Courses        courseReader
	SchoolServices schoolServiceReader
	Journal        amendmentJournal
	RequestID      string
	Now            func() time.Time
}

// AmendmentView is what the amendment screen needs: current dates, the
// actions they allow and the journal.
type AmendmentView struct {
	Dates   []amendment.BookingDate       `json:"dates"`
	RollUp  models.DateStatus             `json:"rollUp"`
	Legal   []amendment.Action            `json:"legalActions"`
	History []repositories.AmendmentEntry `json:"history"`
}

type AmendmentResult struct {
	Booking models.Booking    `json:"booking"`
	Outcome amendment.Outcome `json:"outcome"`
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s BookingService) List(ctx context.Context, schoolID int64, q domain.PageQuery, f models.BookingFilter) (domain.Page[models.Booking], error) {
	f.SchoolID = &schoolID
	return s.Bookings.Paginate(ctx, q, f)
}

// Get returns the booking when it belongs to schoolID; another school's
// booking is reported as not found.
func (s BookingService) Get(ctx context.Context, schoolID, id int64) (models.Booking, error) {
	b, err := s.Bookings.Get(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}
	if b.SchoolID != schoolID {
		return models.Booking{}, domain.NotFoundError{Resource: "Booking", ID: id}
	}
	return b, nil
}

// Create prices the course and the selected school services, stores the
// total as a snapshot and lays out one session per date. Without explicit
// dates the course days run consecutively from the booking date.
func (s BookingService) Create(ctx context.Context, schoolID int64, in models.BookingInput, bookingDiscount, serviceDiscount decimal.Decimal) (models.Booking, error) {
	if in.CourseID == nil || in.BookingDate == nil {
		return models.Booking{}, domain.ValidationError{Msg: "courseId and bookingDate are required"}
	}
	course, err := s.Courses.Get(ctx, *in.CourseID)
	if err != nil {
		return models.Booking{}, err
	}
	if course.SchoolID != schoolID {
		return models.Booking{}, domain.ValidationError{Field: "courseId", Msg: "course belongs to another school"}
	}

	prices := make([]decimal.Decimal, 0, len(in.Services))
	for i := range in.Services {
		line := &in.Services[i]
		if line.SchoolServiceID == nil {
			return models.Booking{}, domain.ValidationError{Field: fmt.Sprintf("services[%d].schoolServiceId", i), Msg: "is required"}
		}
		ss, err := s.SchoolServices.Get(ctx, *line.SchoolServiceID)
		if err != nil {
			return models.Booking{}, err
		}
		if ss.SchoolID != schoolID || ss.Status != models.SchoolServiceActive {
			return models.Booking{}, domain.ValidationError{Field: fmt.Sprintf("services[%d].schoolServiceId", i), Msg: "service is not offered by this school"}
		}
		price := ss.AddonPrice
		if line.ServiceType != nil && *line.ServiceType == models.BookingServiceLicense {
			price = ss.LicensePrice
		}
		line.Price = &price
		prices = append(prices, price)
	}

	if len(in.SessionDates) == 0 {
		dates, err := consecutiveDates(*in.BookingDate, course.CourseDays)
		if err != nil {
			return models.Booking{}, domain.ValidationError{Field: "bookingDate", Msg: "must be a date in YYYY-MM-DD"}
		}
		in.SessionDates = dates
	}

	total := amendment.TotalAmount(course.Price, prices, bookingDiscount, serviceDiscount)
	in.SchoolID = &schoolID
	in.TotalAmount = &total
	if in.Status == nil {
		pending := models.BookingPending
		in.Status = &pending
	}
	active := models.DateStatusActive
	in.DateStatus = &active

	b, err := s.Bookings.Create(ctx, in)
	if err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("booking_id=%d total=%s sessions=%d", b.ID, utils.FormatMoney(total), len(in.SessionDates)))
	return b, nil
}

// Update edits the booking header. The total, the roll-up and the session
// layout are not editable here, and a status must agree with the roll-up.
func (s BookingService) Update(ctx context.Context, schoolID, id int64, in models.BookingInput) (models.Booking, error) {
	b, err := s.Get(ctx, schoolID, id)
	if err != nil {
		return models.Booking{}, err
	}
	if in.Status != nil {
		sessions := b.Sessions
		if sessions == nil {
			if sessions, err = s.Sessions.ListByBooking(ctx, id); err != nil {
				return models.Booking{}, err
			}
		}
		rollup := amendment.RollUp(amendment.DatesFromSessions(sessions, nil))
		if !amendment.StatusAgrees(rollup, *in.Status) {
			return models.Booking{}, domain.ConflictError{
				Resource: "Booking",
				Msg:      fmt.Sprintf("status %s does not match %s dates", *in.Status, rollup),
			}
		}
	}
	in.SchoolID = nil
	in.TotalAmount = nil
	in.DateStatus = nil
	in.SessionDates = nil
	in.Services = nil
	return s.Bookings.Update(ctx, id, in)
}

func (s BookingService) Delete(ctx context.Context, schoolID, id int64) (models.Deleted, error) {
	if _, err := s.Get(ctx, schoolID, id); err != nil {
		return models.Deleted{}, err
	}
	return s.Bookings.Delete(ctx, id)
}

func (s BookingService) dates(ctx context.Context, b models.Booking) ([]amendment.BookingDate, []models.BookingSession, error) {
	sessions := b.Sessions
	if sessions == nil {
		var err error
		sessions, err = s.Sessions.ListByBooking(ctx, b.ID)
		if err != nil {
			return nil, nil, err
		}
	}
	holds, err := s.Journal.Holds(ctx, b.ID)
	if err != nil {
		return nil, nil, err
	}
	return amendment.DatesFromSessions(sessions, holds), sessions, nil
}

func (s BookingService) Amendments(ctx context.Context, schoolID, id int64) (AmendmentView, error) {
	b, err := s.Get(ctx, schoolID, id)
	if err != nil {
		return AmendmentView{}, err
	}
	dates, _, err := s.dates(ctx, b)
	if err != nil {
		return AmendmentView{}, err
	}
	history, err := s.Journal.History(ctx, id)
	if err != nil {
		return AmendmentView{}, err
	}
	return AmendmentView{
		Dates:   dates,
		RollUp:  amendment.RollUp(dates),
		Legal:   amendment.LegalActions(dates),
		History: history,
	}, nil
}

// Amend applies one amendment. Actions that change sessions go to the
// backend as a single mutation carrying the new roll-up; holds and releases
// only touch the local journal.
func (s BookingService) Amend(ctx context.Context, schoolID, actorID, id int64, req amendment.Request) (AmendmentResult, error) {
	b, err := s.Get(ctx, schoolID, id)
	if err != nil {
		return AmendmentResult{}, err
	}
	dates, sessions, err := s.dates(ctx, b)
	if err != nil {
		return AmendmentResult{}, err
	}

	holdOnly := req.Action == amendment.ReleaseHold ||
		(req.Hold && (req.Action == amendment.CarBreakdown || req.Action == amendment.CarHoliday))
	if holdOnly && !s.Journal.Enabled() {
		return AmendmentResult{}, domain.InternalError{Msg: "holds need the amendment journal"}
	}

	out, err := amendment.Apply(dates, req, s.now())
	if err != nil {
		return AmendmentResult{}, err
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return AmendmentResult{}, domain.InternalError{Msg: "encode amendment", Err: err}
	}
	status := amendment.LifecycleStatus(out.RollUp, b.Status)

	updated := b
	if !holdOnly {
		updated, err = s.Bookings.Amend(ctx, id, models.AmendBookingInput{
			Action:     string(req.Action),
			Reason:     req.Reason,
			Sessions:   sessionChanges(out.Changed, sessions),
			DateStatus: out.RollUp,
			Status:     status,
		})
		if err != nil {
			return AmendmentResult{}, err
		}
	}

	entry := repositories.AmendmentEntry{
		BookingID:  id,
		Action:     string(req.Action),
		Reason:     req.Reason,
		Payload:    string(payload),
		Changed:    len(out.Changed),
		DateStatus: string(out.RollUp),
		ActorID:    actorID,
		CreatedAt:  s.now(),
	}
	holds := make([]repositories.HoldChange, 0, len(out.Changed))
	for _, d := range out.Changed {
		holds = append(holds, repositories.HoldChange{SessionID: d.SessionID, Held: d.OnHold, Reason: d.HoldReason})
	}

	if s.Journal.Enabled() {
		if _, err := s.Journal.Record(ctx, entry, holds); err != nil {
			if holdOnly {
				return AmendmentResult{}, err
			}
			// the backend already applied the amendment
			utils.Log.WithError(err).WithField("booking_id", id).Error("amendment journal write failed")
		}
	}

	utils.LogEvent(s.RequestID, "booking", "amend", fmt.Sprintf("booking_id=%d action=%s changed=%d roll_up=%s", id, req.Action, len(out.Changed), out.RollUp))
	if holdOnly {
		updated.DateStatus = out.RollUp
	}
	return AmendmentResult{Booking: updated, Outcome: out}, nil
}

// UpdateSession changes one session and recomputes its booking's roll-up;
// both are written by the same mutation.
func (s BookingService) UpdateSession(ctx context.Context, schoolID, sessionID int64, in models.BookingSessionInput) (models.BookingSession, error) {
	current, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return models.BookingSession{}, err
	}
	b, err := s.Get(ctx, schoolID, current.BookingID)
	if err != nil {
		return models.BookingSession{}, err
	}
	dates, sessions, err := s.dates(ctx, b)
	if err != nil {
		return models.BookingSession{}, err
	}

	next := make([]models.BookingSession, len(sessions))
	copy(next, sessions)
	for i := range next {
		if next[i].ID != sessionID {
			continue
		}
		if in.Status != nil {
			next[i].Status = *in.Status
		}
		if in.SessionDate != nil {
			next[i].SessionDate = *in.SessionDate
		}
	}
	if in.Status != nil && amendment.StateOf(*in.Status) == amendment.Cancelled && in.CancelledAt == nil {
		at := s.now()
		in.CancelledAt = &at
	}

	holds := map[int64]string{}
	for _, d := range dates {
		if d.OnHold {
			holds[d.SessionID] = d.HoldReason
		}
	}
	rollUp := amendment.RollUp(amendment.DatesFromSessions(next, holds))

	updated, err := s.Sessions.UpdateStatus(ctx, sessionID, models.SessionStatusInput{
		Session:           in,
		BookingDateStatus: rollUp,
		BookingStatus:     amendment.LifecycleStatus(rollUp, b.Status),
	})
	if err != nil {
		return models.BookingSession{}, err
	}

	// a session that left the scheduled state cannot stay on hold
	if _, held := holds[sessionID]; held && amendment.StateOf(updated.Status) != amendment.Scheduled && s.Journal.Enabled() {
		entry := repositories.AmendmentEntry{
			BookingID:  b.ID,
			Action:     "SESSION_STATUS",
			Payload:    fmt.Sprintf(`{"sessionId":%d,"status":%q}`, sessionID, updated.Status),
			Changed:    1,
			DateStatus: string(rollUp),
			CreatedAt:  s.now(),
		}
		if _, err := s.Journal.Record(ctx, entry, []repositories.HoldChange{{SessionID: sessionID}}); err != nil {
			utils.Log.WithError(err).WithField("session_id", sessionID).Error("hold cleanup failed")
		}
	}

	utils.LogEvent(s.RequestID, "booking", "session_status", fmt.Sprintf("session_id=%d status=%s roll_up=%s", sessionID, updated.Status, rollUp))
	return updated, nil
}

func (s BookingService) History(ctx context.Context, schoolID, id int64) ([]repositories.AmendmentEntry, error) {
	if _, err := s.Get(ctx, schoolID, id); err != nil {
		return nil, err
	}
	return s.Journal.History(ctx, id)
}

// sessionChanges turns changed dates back into session writes. A date that
// is still scheduled keeps its session's own status.
func sessionChanges(changed []amendment.BookingDate, sessions []models.BookingSession) []models.SessionChange {
	byID := make(map[int64]models.BookingSession, len(sessions))
	for _, s := range sessions {
		byID[s.ID] = s
	}
	out := make([]models.SessionChange, 0, len(changed))
	for _, d := range changed {
		c := models.SessionChange{ID: d.SessionID, SessionDate: d.Date, Status: byID[d.SessionID].Status}
		if d.Status == amendment.Cancelled {
			reason := d.CancellationReason
			c.Status = models.BookingCancelled
			c.CancellationReason = &reason
			c.CancelledAt = d.CancelledAt
		}
		out = append(out, c)
	}
	return out
}

func consecutiveDates(start string, days int) ([]string, error) {
	first, err := utils.ParseDate(start)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		days = 1
	}
	out := make([]string, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, first.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return out, nil
}
