// Package validators holds the per-entity form schemas. Forms keep every
// scalar as text so a failing field can be reported without coercion; Input
// converts a validated form into the typed repository input.
package validators

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"schooladmin/internal/domain"
	"schooladmin/internal/utils"
)

var validate *validator.Validate

var (
	phoneRe   = regexp.MustCompile(`^\+?[0-9]{10,13}$`)
	ifscRe    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	gstRe     = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	yearRe    = regexp.MustCompile(`^(19|20)[0-9]{2}$`)
	decimalRe = regexp.MustCompile(`^[0-9]{1,12}(\.[0-9]{1,2})?$`)
	integerRe = regexp.MustCompile(`^[0-9]{1,9}$`)
	digitsRe  = regexp.MustCompile(`^[0-9]+$`)
	hhmmRe    = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	pincodeRe = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("phone", matches(phoneRe))
	validate.RegisterValidation("ifsc", matches(ifscRe))
	validate.RegisterValidation("gst", matches(gstRe))
	validate.RegisterValidation("year", matches(yearRe))
	validate.RegisterValidation("decimal", matches(decimalRe))
	validate.RegisterValidation("integer", matches(integerRe))
	validate.RegisterValidation("digits", matches(digitsRe))
	validate.RegisterValidation("hhmm", matches(hhmmRe))
	validate.RegisterValidation("pincode", matches(pincodeRe))
	validate.RegisterValidation("date", validateDate)
	validate.RegisterValidation("nowhitespace", validateNoWhitespace)
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func validateNoWhitespace(fl validator.FieldLevel) bool {
	return !utils.HasWhitespace(fl.Field().String())
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("needs at least %s entries", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "phone":
		return "must be a 10 to 13 digit phone number"
	case "nowhitespace":
		return "must not contain spaces"
	case "ifsc":
		return "must be a valid IFSC code"
	case "gst":
		return "must be a valid GST number"
	case "year":
		return "must be a four digit year"
	case "decimal":
		return "must be a number with at most two decimals"
	case "integer":
		return "must be a whole number"
	case "digits":
		return "must contain only digits"
	case "hhmm":
		return "must be a time in HH:mm"
	case "date":
		return "must be a date in YYYY-MM-DD"
	case "pincode":
		return "must be a six digit pincode"
	case "unique":
		return "must not repeat"
	default:
		return "is invalid"
	}
}

// crossChecker is implemented by forms with rules spanning several fields.
// Checks run only when no single-field rule failed.
type crossChecker interface {
	crossCheck(fields Fields, errs domain.ValidationErrors)
}

// ValidateCreate validates every field of form, a pointer to a form struct.
func ValidateCreate(form any) error {
	return check(form, nil, validate.Struct(form))
}

// ValidateUpdate validates only the fields whose JSON keys were submitted.
func ValidateUpdate(form any, fields Fields) error {
	names := fieldNames(form, fields)
	if len(names) == 0 {
		return domain.ValidationError{Msg: "no fields to update"}
	}
	return check(form, fields, validate.StructPartial(form, names...))
}

func check(form any, fields Fields, err error) error {
	errs := domain.ValidationErrors{}
	if err != nil {
		var verrs validator.ValidationErrors
		if !asValidationErrors(err, &verrs) {
			return domain.InternalError{Msg: "validation failed", Err: err}
		}
		for _, fe := range verrs {
			key := fieldKey(fe)
			if _, seen := errs[key]; !seen {
				errs[key] = messageFor(fe)
			}
		}
	}
	if len(errs) == 0 {
		if cc, ok := form.(crossChecker); ok {
			cc.crossCheck(fields, errs)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func asValidationErrors(err error, out *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*out = verrs
	}
	return ok
}

// fieldKey strips the form name from the namespace: "SchoolForm.phone" -> "phone",
// "BookingForm.sessionDates[1]" -> "sessionDates[1]".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// fieldNames maps submitted JSON keys to the form's Go field names, the form
// StructPartial expects. Unknown keys are ignored.
func fieldNames(form any, fields Fields) []string {
	t := reflect.TypeOf(form)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		key := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if key == "" || key == "-" {
			continue
		}
		if fields.Has(key) {
			names = append(names, f.Name)
		}
	}
	return names
}

// Fields is the set of JSON keys present in a submitted body. A nil set
// stands for every field, which is what create uses.
type Fields map[string]bool

func (f Fields) Has(key string) bool {
	return f == nil || f[key]
}

// FieldsOf lists the top-level keys of a JSON object.
func FieldsOf(raw []byte) (Fields, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, domain.ValidationError{Msg: "body must be a JSON object", Err: err}
	}
	out := Fields{}
	for k := range obj {
		out[k] = true
	}
	return out, nil
}

// Numeric is form text that also accepts a bare JSON number, so clients may
// send 1500 or "1500" for a price.
type Numeric string

func (n *Numeric) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		*n = ""
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*n = Numeric(strings.TrimSpace(s))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return fmt.Errorf("expected a number or numeric string")
	}
	*n = Numeric(num.String())
	return nil
}
