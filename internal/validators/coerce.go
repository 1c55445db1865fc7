package validators

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The coercers run after validation. An absent key yields nil so it is left
// out of the patch; a blank numeric yields nil as well since the backend has
// no way to clear a number.

func text(fields Fields, key, v string) *string {
	if !fields.Has(key) {
		return nil
	}
	s := strings.TrimSpace(v)
	return &s
}

// optText is text for create forms where a blank optional field is omitted.
func optText(fields Fields, key, v string) *string {
	if fields == nil && strings.TrimSpace(v) == "" {
		return nil
	}
	return text(fields, key, v)
}

func integer(fields Fields, key string, v Numeric) *int {
	if !fields.Has(key) || v == "" {
		return nil
	}
	n, err := strconv.Atoi(string(v))
	if err != nil {
		return nil
	}
	return &n
}

func ref(fields Fields, key string, v Numeric) *int64 {
	if !fields.Has(key) || v == "" {
		return nil
	}
	n, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

func money(fields Fields, key string, v Numeric) *decimal.Decimal {
	if !fields.Has(key) || v == "" {
		return nil
	}
	d, err := decimal.NewFromString(string(v))
	if err != nil {
		return nil
	}
	return &d
}

func enum[E ~string](fields Fields, key, v string) *E {
	if !fields.Has(key) || strings.TrimSpace(v) == "" {
		return nil
	}
	e := E(strings.TrimSpace(v))
	return &e
}

func upper(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}
