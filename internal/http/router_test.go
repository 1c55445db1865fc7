package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"

	intconfig "schooladmin/internal/config"
	"schooladmin/internal/graphql"
	"schooladmin/internal/http/handlers"
	"schooladmin/internal/http/middleware"
	"schooladmin/internal/repositories"
)

const testSecret = "router-secret"

type gqlCall struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

type backend struct {
	mu    sync.Mutex
	calls []gqlCall
}

func (b *backend) ops() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.calls))
	for _, c := range b.calls {
		out = append(out, c.OperationName)
	}
	return out
}

func (b *backend) call(t *testing.T, op string) gqlCall {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.calls {
		if c.OperationName == op {
			return c
		}
	}
	t.Fatalf("operation %s never sent; saw %v", op, b.calls)
	return gqlCall{}
}

// newTestRouter wires the full router against a GraphQL stub that answers
// each operation name with a canned body.
func newTestRouter(t *testing.T, replies map[string]string) (*gin.Engine, *backend) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	be := &backend{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var call gqlCall
		if err := json.Unmarshal(raw, &call); err != nil {
			t.Errorf("bad graphql body: %v", err)
		}
		be.mu.Lock()
		be.calls = append(be.calls, call)
		be.mu.Unlock()

		body, ok := replies[call.OperationName]
		if !ok {
			body = `{"errors":[{"message":"unexpected operation ` + call.OperationName + `"}]}`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	gql := graphql.NewClient(srv.URL, "", nil)
	reg := prometheus.NewRegistry()
	if err := graphql.Register(reg); err != nil {
		t.Fatalf("register metrics: %v", err)
	}
	env := intconfig.Env{JWTSecret: testSecret, CORSAllowedOrigins: []string{"*"}}
	return NewRouter(env, handlers.New(gql, repositories.AmendmentJournal{}), reg), be
}

func token(t *testing.T, schoolID int64, role string) string {
	t.Helper()
	claims := middleware.Claims{
		SchoolID: schoolID,
		UserID:   42,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return raw
}

func do(r http.Handler, method, path, tok, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return body
}

const validCar = `{"carName":"Swift Dzire","model":"VXI","make":"Maruti","year":"2021",
	"registrationNumber":"mh12ab1234","fuelType":"PETROL","transmission":"MANUAL","schoolId":77}`

func TestHealthAndUnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health: %d", w.Code)
	}
	data, _ := envelope(t, w)["data"].(map[string]any)
	if data["journal"] != "disabled" {
		t.Fatalf("expected disabled journal, got %+v", data)
	}

	w = do(r, http.MethodGet, "/api/nope", "", "")
	if w.Code != http.StatusNotFound || envelope(t, w)["status"] != false {
		t.Fatalf("expected 404 envelope, got %d %s", w.Code, w.Body.String())
	}
}

func TestMetricsExposed(t *testing.T) {
	r, _ := newTestRouter(t, map[string]string{
		"GetCar": `{"data":{"getCarById":{"id":5,"schoolId":3}}}`,
	})
	do(r, http.MethodGet, "/api/cars/5", token(t, 3, "owner"), "")

	w := do(r, http.MethodGet, "/metrics", "", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "schooladmin_graphql_requests_total") {
		t.Fatalf("metrics missing: %d %s", w.Code, w.Body.String())
	}
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	r, be := newTestRouter(t, nil)
	w := do(r, http.MethodGet, "/api/cars", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if len(be.ops()) != 0 {
		t.Fatalf("backend called without a token: %v", be.ops())
	}
}

func TestCreateCarStampsCallerSchool(t *testing.T) {
	r, be := newTestRouter(t, map[string]string{
		"CreateCar": `{"data":{"createCar":{"id":11,"schoolId":3,"carName":"Swift Dzire","registrationNumber":"MH12AB1234"}}}`,
	})

	w := do(r, http.MethodPost, "/api/cars", token(t, 3, "owner"), validCar)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	input, _ := be.call(t, "CreateCar").Variables["input"].(map[string]any)
	if input["schoolId"] != float64(3) {
		t.Fatalf("schoolId not taken from token: %+v", input)
	}
	if input["registrationNumber"] != "MH12AB1234" {
		t.Fatalf("registration number not normalized: %+v", input)
	}
	if _, sent := input["color"]; sent {
		t.Fatalf("blank optional field sent: %+v", input)
	}
}

func TestCreateCarValidationNeverReachesBackend(t *testing.T) {
	r, be := newTestRouter(t, nil)

	w := do(r, http.MethodPost, "/api/cars", token(t, 3, "owner"), `{"carName":"X","year":"1890"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	body := envelope(t, w)
	if body["message"] != "validation failed" {
		t.Fatalf("unexpected message %v", body["message"])
	}
	errs, _ := body["errors"].(map[string]any)
	for _, key := range []string{"carName", "year", "make", "registrationNumber"} {
		if _, ok := errs[key]; !ok {
			t.Fatalf("expected error on %s, got %+v", key, errs)
		}
	}
	if len(be.ops()) != 0 {
		t.Fatalf("backend called on invalid input: %v", be.ops())
	}
}

func TestForeignCarIsHidden(t *testing.T) {
	r, be := newTestRouter(t, map[string]string{
		"GetCar": `{"data":{"getCarById":{"id":5,"schoolId":99}}}`,
	})
	tok := token(t, 3, "owner")

	if w := do(r, http.MethodGet, "/api/cars/5", tok, ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on get, got %d", w.Code)
	}
	if w := do(r, http.MethodPut, "/api/cars/5", tok, `{"color":"White"}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on update, got %d", w.Code)
	}
	for _, op := range be.ops() {
		if op == "UpdateCar" {
			t.Fatalf("foreign car was updated")
		}
	}
}

func TestDeleteNeedsOwnerOrAdmin(t *testing.T) {
	r, be := newTestRouter(t, map[string]string{
		"GetCar":    `{"data":{"getCarById":{"id":5,"schoolId":3}}}`,
		"DeleteCar": `{"data":{"deleteCar":{"id":5,"deletedAt":"2024-03-01T10:00:00Z"}}}`,
	})

	w := do(r, http.MethodDelete, "/api/cars/5", token(t, 3, "instructor"), "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if len(be.ops()) != 0 {
		t.Fatalf("backend called for a forbidden delete: %v", be.ops())
	}

	w = do(r, http.MethodDelete, "/api/cars/5", token(t, 3, "admin"), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProfileGateBlocksIncompleteSchool(t *testing.T) {
	r, be := newTestRouter(t, map[string]string{
		"GetSchool": `{"data":{"getSchoolById":{"id":3,"name":"Apex Driving","ownerName":"R Mehta"}}}`,
	})

	w := do(r, http.MethodPost, "/api/holidays", token(t, 3, "owner"), `{"startDate":"2024-05-01","endDate":"2024-05-02"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
	}
	if msg, _ := envelope(t, w)["message"].(string); !strings.Contains(msg, "bankName") {
		t.Fatalf("missing fields not named: %q", msg)
	}
	if ops := be.ops(); len(ops) != 1 || ops[0] != "GetSchool" {
		t.Fatalf("unexpected backend calls %v", ops)
	}
}

func TestSchoolsListIsSuperadminOnly(t *testing.T) {
	r, _ := newTestRouter(t, map[string]string{
		"GetPaginatedSchools": `{"data":{"getPaginatedSchools":{"data":[{"id":3}],"total":1,"skip":0,"take":10}}}`,
	})
	if w := do(r, http.MethodGet, "/api/schools", token(t, 3, "owner"), ""); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/api/schools", token(t, 3, "superadmin"), ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBalanceCountsCompletedPaymentsOnly(t *testing.T) {
	r, _ := newTestRouter(t, map[string]string{
		"GetBooking": `{"data":{"getBookingById":{"id":7,"schoolId":3,"totalAmount":"1500"}}}`,
		"GetAllPayments": `{"data":{"getAllPayments":[
			{"id":1,"bookingId":7,"amount":"1000","status":"COMPLETED"},
			{"id":2,"bookingId":7,"amount":"500","status":"PENDING"}]}}`,
	})

	w := do(r, http.MethodGet, "/api/bookings/7/balance", token(t, 3, "owner"), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data, _ := envelope(t, w)["data"].(map[string]any)
	if data["totalPaid"] != "1000" || data["balance"] != "500" {
		t.Fatalf("unexpected balance %+v", data)
	}

	if w := do(r, http.MethodGet, "/api/bookings/7/balance", token(t, 4, "owner"), ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another school, got %d", w.Code)
	}
}

func TestBackendErrorsMapToStatus(t *testing.T) {
	r, _ := newTestRouter(t, map[string]string{
		"GetCar": `{"errors":[{"message":"car table locked"}]}`,
	})
	w := do(r, http.MethodGet, "/api/cars/5", token(t, 3, "owner"), "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if envelope(t, w)["message"] != "car table locked" {
		t.Fatalf("backend message not surfaced: %s", w.Body.String())
	}
}

func TestCustomerVisibleOnlyToBookingSchool(t *testing.T) {
	r, be := newTestRouter(t, map[string]string{
		"GetUser":              `{"data":{"getUserById":{"id":9,"name":"Asha Rao"}}}`,
		"GetPaginatedBookings": `{"data":{"getPaginatedBookings":{"data":[],"total":0,"skip":0,"take":1}}}`,
	})
	tok := token(t, 3, "owner")

	if w := do(r, http.MethodGet, "/api/users/9", tok, ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a customer without bookings here, got %d", w.Code)
	}
	if w := do(r, http.MethodPut, "/api/users/9", tok, `{"name":"Asha R"}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on update, got %d", w.Code)
	}
	filter, _ := be.call(t, "GetPaginatedBookings").Variables["filter"].(map[string]any)
	if filter["schoolId"] != float64(3) || filter["userId"] != float64(9) {
		t.Fatalf("ownership lookup filter = %+v", filter)
	}
	for _, op := range be.ops() {
		if op == "UpdateUser" {
			t.Fatalf("foreign customer was updated")
		}
	}

	r, _ = newTestRouter(t, map[string]string{
		"GetUser":              `{"data":{"getUserById":{"id":9,"name":"Asha Rao"}}}`,
		"GetPaginatedBookings": `{"data":{"getPaginatedBookings":{"data":[{"id":7,"schoolId":3,"userId":9}],"total":1,"skip":0,"take":1}}}`,
	})
	if w := do(r, http.MethodGet, "/api/users/9", tok, ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for a booked customer, got %d: %s", w.Code, w.Body.String())
	}
}
