package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"schooladmin/internal/domain"
)

var testSecret = []byte("test-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

func signed(t *testing.T, claims Claims, method jwt.SigningMethod, key any) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func validClaims() Claims {
	return Claims{
		SchoolID: 3,
		UserID:   9,
		Role:     " Owner ",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", append(mw, func(c *gin.Context) {
		id, _ := Identity(c)
		c.JSON(http.StatusOK, id)
	})...)
	return r
}

func serve(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return body
}

func TestRequestIDKeepsCallerValue(t *testing.T) {
	r := newEngine()
	w := serve(r, map[string]string{"X-Request-ID": "abc-123"})
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected caller id, got %q", got)
	}

	w = serve(r, nil)
	if len(w.Header().Get("X-Request-ID")) != 36 {
		t.Fatalf("expected generated uuid, got %q", w.Header().Get("X-Request-ID"))
	}
}

func TestAuthRequiredStoresIdentity(t *testing.T) {
	r := newEngine(AuthRequired(testSecret))
	tok := signed(t, validClaims(), jwt.SigningMethodHS256, testSecret)

	w := serve(r, map[string]string{"Authorization": "Bearer " + tok})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var id domain.RequestContext
	if err := json.Unmarshal(w.Body.Bytes(), &id); err != nil {
		t.Fatalf("decode identity: %v", err)
	}
	if id.SchoolID != 3 || id.UserID != 9 || id.Role != "owner" {
		t.Fatalf("unexpected identity %+v", id)
	}
}

func TestAuthRequiredRejects(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	noSchool := validClaims()
	noSchool.SchoolID = 0

	cases := map[string]struct {
		header string
		secret []byte
		msg    string
	}{
		"missing":    {header: "", secret: testSecret, msg: "bearer token required"},
		"not bearer": {header: "Token abc", secret: testSecret, msg: "bearer token required"},
		"wrong key":  {header: "Bearer " + signed(t, validClaims(), jwt.SigningMethodHS256, []byte("other")), secret: testSecret, msg: "invalid token"},
		"wrong alg":  {header: "Bearer " + signed(t, validClaims(), jwt.SigningMethodHS512, testSecret), secret: testSecret, msg: "invalid token"},
		"expired":    {header: "Bearer " + signed(t, expired, jwt.SigningMethodHS256, testSecret), secret: testSecret, msg: "token expired"},
		"no school":  {header: "Bearer " + signed(t, noSchool, jwt.SigningMethodHS256, testSecret), secret: testSecret, msg: "token carries no school or user"},
		"no secret":  {header: "Bearer " + signed(t, validClaims(), jwt.SigningMethodHS256, testSecret), secret: nil, msg: "authentication is not configured"},
	}
	for name, tc := range cases {
		w := serve(newEngine(AuthRequired(tc.secret)), map[string]string{"Authorization": tc.header})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, w.Code)
		}
		body := decode(t, w)
		if body["status"] != false || body["message"] != tc.msg {
			t.Fatalf("%s: unexpected body %+v", name, body)
		}
		if body["request_id"] == "" {
			t.Fatalf("%s: request id missing", name)
		}
	}
}

func TestRequireRoles(t *testing.T) {
	tok := signed(t, validClaims(), jwt.SigningMethodHS256, testSecret)
	auth := map[string]string{"Authorization": "Bearer " + tok}

	if w := serve(newEngine(AuthRequired(testSecret), RequireRoles("owner", "admin")), auth); w.Code != http.StatusOK {
		t.Fatalf("owner should pass, got %d", w.Code)
	}

	w := serve(newEngine(AuthRequired(testSecret), RequireRoles("superadmin")), auth)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	if w := serve(newEngine(RequireRoles("owner")), nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", w.Code)
	}
}

type stubProfiles struct{ err error }

func (s stubProfiles) RequireComplete(context.Context, int64) error { return s.err }

func TestRequireCompleteProfile(t *testing.T) {
	tok := signed(t, validClaims(), jwt.SigningMethodHS256, testSecret)
	auth := map[string]string{"Authorization": "Bearer " + tok}

	if w := serve(newEngine(AuthRequired(testSecret), RequireCompleteProfile(stubProfiles{})), auth); w.Code != http.StatusOK {
		t.Fatalf("complete profile should pass, got %d", w.Code)
	}

	gate := RequireCompleteProfile(stubProfiles{err: domain.ForbiddenError{Msg: "complete the school profile first"}})
	w := serve(newEngine(AuthRequired(testSecret), gate), auth)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if body := decode(t, w); body["message"] != "complete the school profile first" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestErrorBodyShapes(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	body := ErrorBody(c, http.StatusBadRequest, domain.ValidationErrors{"name": "is required"})
	if body["message"] != "validation failed" {
		t.Fatalf("unexpected message %v", body["message"])
	}
	if fields, ok := body["errors"].(domain.ValidationErrors); !ok || fields["name"] != "is required" {
		t.Fatalf("unexpected errors %+v", body["errors"])
	}

	body = ErrorBody(c, http.StatusBadRequest, domain.ValidationError{Field: "id", Msg: "must be a positive integer"})
	if fields, ok := body["errors"].(domain.ValidationErrors); !ok || fields["id"] != "must be a positive integer" {
		t.Fatalf("single field error not listed: %+v", body)
	}

	body = ErrorBody(c, StatusFor(context.DeadlineExceeded), context.DeadlineExceeded)
	if body["message"] != "internal error" {
		t.Fatalf("internal cause leaked: %+v", body)
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ValidationErrors{"a": "b"}, http.StatusBadRequest},
		{domain.NotFoundError{Resource: "car", ID: 1}, http.StatusNotFound},
		{domain.ConflictError{Resource: "booking"}, http.StatusConflict},
		{domain.ForbiddenError{}, http.StatusForbidden},
		{domain.ApplicationError{Msg: "nope"}, http.StatusUnprocessableEntity},
		{domain.TransportError{Err: context.Canceled}, http.StatusBadGateway},
	}
	for _, tc := range cases {
		if got := StatusFor(tc.err); got != tc.want {
			t.Fatalf("StatusFor(%T) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestCORSWildcardAndList(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	w := serve(r, map[string]string{"Origin": "http://example.test"})
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard, got %q", got)
	}

	r = gin.New()
	r.Use(CORS([]string{"http://admin.test"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	w = serve(r, map[string]string{"Origin": "http://admin.test"})
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://admin.test" {
		t.Fatalf("expected echoed origin, got %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatalf("expected credentials allowed")
	}
	w = serve(r, map[string]string{"Origin": "http://evil.test"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected foreign origin rejected, got %d", w.Code)
	}
}
