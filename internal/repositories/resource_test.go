package repositories

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/graphql"
)

type recorded struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

type fakeBackend struct {
	mu    sync.Mutex
	calls []recorded
}

func (f *fakeBackend) last(t *testing.T) recorded {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatalf("backend was never called")
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeBackend) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// newFakeBackend answers each operation name with a canned body.
func newFakeBackend(t *testing.T, replies map[string]string) (*graphql.Client, *fakeBackend) {
	t.Helper()
	fb := &fakeBackend{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var req recorded
		if err := json.Unmarshal(raw, &req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		fb.mu.Lock()
		fb.calls = append(fb.calls, req)
		fb.mu.Unlock()

		body, ok := replies[req.OperationName]
		if !ok {
			body = `{"errors":[{"message":"unexpected operation ` + req.OperationName + `"}]}`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return graphql.NewClient(srv.URL, "", nil), fb
}

func TestPaginateTruncatesOverlongPage(t *testing.T) {
	c, fb := newFakeBackend(t, map[string]string{
		"GetPaginatedCars": `{"data":{"getPaginatedCars":{"data":[{"id":1},{"id":2},{"id":3}],"total":1,"skip":0,"take":2}}}`,
	})
	repo := NewCarRepository(c)
	schoolID := int64(4)

	page, err := repo.Paginate(context.Background(), domain.PageQuery{Skip: 0, Take: 2, Search: "swift"}, models.CarFilter{SchoolID: &schoolID})
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if len(page.Data) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(page.Data))
	}
	if page.Total < len(page.Data) {
		t.Fatalf("total %d below row count %d", page.Total, len(page.Data))
	}

	call := fb.last(t)
	if call.Variables["take"] != float64(2) || call.Variables["search"] != "swift" {
		t.Fatalf("unexpected variables %+v", call.Variables)
	}
	filter, _ := call.Variables["filter"].(map[string]any)
	if filter["schoolId"] != float64(4) {
		t.Fatalf("filter not forwarded: %+v", call.Variables["filter"])
	}
	if _, ok := filter["status"]; ok {
		t.Fatalf("unset filter fields must be omitted: %+v", filter)
	}
}

func TestPaginateDefaultsWindow(t *testing.T) {
	c, fb := newFakeBackend(t, map[string]string{
		"GetPaginatedCourses": `{"data":{"getPaginatedCourses":{"data":[],"total":0,"skip":0,"take":10}}}`,
	})
	page, err := NewCourseRepository(c).Paginate(context.Background(), domain.PageQuery{Skip: -5}, models.CourseFilter{})
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if page.Data == nil || page.Skip != 0 || page.Take != domain.DefaultTake {
		t.Fatalf("unexpected page %+v", page)
	}
	if _, ok := fb.last(t).Variables["search"]; ok {
		t.Fatalf("empty search should not be sent")
	}
}

func TestGetNullIsNotFound(t *testing.T) {
	c, _ := newFakeBackend(t, map[string]string{
		"GetSchool": `{"data":{"getSchoolById":null}}`,
	})
	_, err := NewSchoolRepository(c).Get(context.Background(), 99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetRejectsNonPositiveIDWithoutCalling(t *testing.T) {
	c, fb := newFakeBackend(t, nil)
	_, err := NewDriverRepository(c).Get(context.Background(), 0)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if fb.count() != 0 {
		t.Fatalf("backend should not be called")
	}
}

func TestBackendErrorsBecomeApplicationError(t *testing.T) {
	c, _ := newFakeBackend(t, map[string]string{
		"CreateCourse": `{"errors":[{"message":"course name already exists"}]}`,
	})
	name := "Basic"
	_, err := NewCourseRepository(c).Create(context.Background(), models.CourseInput{CourseName: &name})
	if !domain.IsApplication(err) {
		t.Fatalf("expected application error, got %v", err)
	}
	if err.Error() != "course name already exists" {
		t.Fatalf("message not surfaced: %q", err.Error())
	}
}

func TestUpdateSendsOnlyPresentFields(t *testing.T) {
	c, fb := newFakeBackend(t, map[string]string{
		"UpdateUser": `{"data":{"updateUser":{"id":3,"name":"Asha","email":"a@x.in"}}}`,
	})
	name := "Asha"
	user, err := NewUserRepository(c).Update(context.Background(), 3, models.UserInput{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if user.Name != "Asha" {
		t.Fatalf("unexpected user %+v", user)
	}
	input, _ := fb.last(t).Variables["input"].(map[string]any)
	if len(input) != 1 || input["name"] != "Asha" {
		t.Fatalf("patch should hold only name, got %+v", input)
	}
}

func TestDeleteReturnsTombstone(t *testing.T) {
	c, _ := newFakeBackend(t, map[string]string{
		"DeleteCar": `{"data":{"deleteCar":{"id":5,"deletedAt":"2024-03-01T10:00:00Z"}}}`,
	})
	del, err := NewCarRepository(c).Delete(context.Background(), 5)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if del.ID != 5 || del.DeletedAt == nil {
		t.Fatalf("unexpected tombstone %+v", del)
	}
}

func TestHolidayDeleteSendsUser(t *testing.T) {
	c, fb := newFakeBackend(t, map[string]string{
		"DeleteHoliday": `{"data":{"deleteHoliday":{"id":8,"deletedAt":"2024-03-01T10:00:00Z"}}}`,
	})
	if _, err := NewHolidayRepository(c).Delete(context.Background(), 8, 21); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	vars := fb.last(t).Variables
	if vars["id"] != float64(8) || vars["userId"] != float64(21) {
		t.Fatalf("unexpected variables %+v", vars)
	}
}

func TestSchoolServiceCreateDefaultsActive(t *testing.T) {
	c, fb := newFakeBackend(t, map[string]string{
		"CreateSchoolService": `{"data":{"createSchoolService":{"id":1,"schoolId":2,"serviceId":3,"licensePrice":1500,"addonPrice":500,"status":"ACTIVE"}}}`,
	})
	schoolID, serviceID := int64(2), int64(3)
	ss, err := NewSchoolServiceRepository(c).Create(context.Background(), models.SchoolServiceInput{SchoolID: &schoolID, ServiceID: &serviceID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ss.LicensePrice.String() != "1500" {
		t.Fatalf("license price decoded as %s", ss.LicensePrice)
	}
	input, _ := fb.last(t).Variables["input"].(map[string]any)
	if input["status"] != "ACTIVE" {
		t.Fatalf("status should default to ACTIVE, got %+v", input)
	}
}

func TestServiceDecodesEncodedLists(t *testing.T) {
	c, _ := newFakeBackend(t, map[string]string{
		"GetService": `{"data":{"getServiceById":{"id":1,"serviceName":"New License","features":"[\"A\",\"B\"]","includedServices":["LL"]}}}`,
	})
	svc, err := NewServiceRepository(c).Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(svc.Features) != 2 || svc.Features[1] != "B" {
		t.Fatalf("features decoded as %v", svc.Features)
	}
	if len(svc.IncludedServices) != 1 || svc.IncludedServices[0] != "LL" {
		t.Fatalf("includedServices decoded as %v", svc.IncludedServices)
	}
}

func TestAmendSendsRollUpWithSessions(t *testing.T) {
	c, fb := newFakeBackend(t, map[string]string{
		"AmendBooking": `{"data":{"amendBooking":{"id":12,"status":"CANCELLED","dateStatus":"cancelled","totalAmount":1500}}}`,
	})
	b, err := NewBookingRepository(c).Amend(context.Background(), 12, models.AmendBookingInput{
		Action:     "CANCEL_BOOKING",
		Sessions:   []models.SessionChange{{ID: 1, SessionDate: "2024-03-01", Status: models.BookingCancelled}},
		DateStatus: models.DateStatusCancelled,
		Status:     models.BookingCancelled,
	})
	if err != nil {
		t.Fatalf("Amend: %v", err)
	}
	if b.DateStatus != models.DateStatusCancelled {
		t.Fatalf("unexpected booking %+v", b)
	}
	input, _ := fb.last(t).Variables["input"].(map[string]any)
	if input["dateStatus"] != "cancelled" || input["status"] != "CANCELLED" {
		t.Fatalf("roll-up missing from mutation: %+v", input)
	}
	if sessions, _ := input["sessions"].([]any); len(sessions) != 1 {
		t.Fatalf("sessions missing from mutation: %+v", input)
	}
}

func TestListByBookingUsesFilter(t *testing.T) {
	c, fb := newFakeBackend(t, map[string]string{
		"GetAllPayments": `{"data":{"getAllPayments":[{"id":1,"bookingId":9,"amount":"1000","status":"COMPLETED"}]}}`,
	})
	payments, err := NewPaymentRepository(c).ListByBooking(context.Background(), 9)
	if err != nil {
		t.Fatalf("ListByBooking: %v", err)
	}
	if len(payments) != 1 || payments[0].Amount.String() != "1000" {
		t.Fatalf("unexpected payments %+v", payments)
	}
	filter, _ := fb.last(t).Variables["filter"].(map[string]any)
	if filter["bookingId"] != float64(9) {
		t.Fatalf("booking filter not sent: %+v", filter)
	}
}

func TestTransportFailurePassesThrough(t *testing.T) {
	c := graphql.NewClient("http://127.0.0.1:1/graphql", "", nil)
	_, err := NewSchoolRepository(c).All(context.Background(), models.SchoolFilter{})
	if !domain.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
