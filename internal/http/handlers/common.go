package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"schooladmin/internal/domain"
	"schooladmin/internal/http/middleware"
	"schooladmin/internal/validators"
)

// respond writes the success envelope.
func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{
		"status":  true,
		"message": message,
		"data":    data,
	})
}

// readBody returns the raw JSON object and the set of keys it carries.
func readBody(c *gin.Context) ([]byte, validators.Fields, error) {
	if c.Request.Body == nil {
		return nil, nil, domain.ValidationError{Msg: "request body is empty"}
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, nil, domain.ValidationError{Msg: "could not read request body", Err: err}
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil, domain.ValidationError{Msg: "request body is empty"}
	}
	fields, err := validators.FieldsOf(raw)
	if err != nil {
		return nil, nil, err
	}
	return raw, fields, nil
}

// decodeForm fills form from raw. Type mismatches are reported on the field.
func decodeForm(raw []byte, form any) error {
	if err := json.Unmarshal(raw, form); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domain.ValidationErrors{typeErr.Field: "has the wrong type"}
		}
		return domain.ValidationError{Msg: "payload is not valid", Err: err}
	}
	return nil
}

// withSchool forces the schoolId key of a JSON object to the caller's school.
func withSchool(raw []byte, schoolID int64) ([]byte, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, domain.ValidationError{Msg: "body must be a JSON object", Err: err}
	}
	obj["schoolId"] = json.RawMessage(strconv.FormatInt(schoolID, 10))
	return json.Marshal(obj)
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationError{Field: name, Msg: "must be a positive integer"}
	}
	return id, nil
}

// idOf reads an optional reference; a missing one is 0, which every lookup
// rejects.
func idOf(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func pageQuery(c *gin.Context) (domain.PageQuery, error) {
	q := domain.PageQuery{Search: strings.TrimSpace(c.Query("search"))}
	for key, dst := range map[string]*int{"skip": &q.Skip, "take": &q.Take} {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, domain.ValidationError{Field: key, Msg: "must be an integer"}
		}
		*dst = n
	}
	return q.Normalize(), nil
}

func queryID(c *gin.Context, key string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, domain.ValidationError{Field: key, Msg: "must be a positive integer"}
	}
	return &id, nil
}

func queryText(c *gin.Context, key string) *string {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	return &raw
}

func queryEnum[E ~string](c *gin.Context, key string) *E {
	raw := queryText(c, key)
	if raw == nil {
		return nil
	}
	v := E(strings.ToUpper(*raw))
	return &v
}

// caller is the verified identity; every route using it sits behind
// AuthRequired.
func caller(c *gin.Context) domain.RequestContext {
	id, _ := middleware.Identity(c)
	return id
}

func pdf(c *gin.Context, filename string, body []byte) {
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", body)
}
