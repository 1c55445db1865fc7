package validators

import (
	"strings"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
)

type SchoolForm struct {
	Name             string `json:"name" validate:"required,min=3,max=120"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required,nowhitespace,phone"`
	Address          string `json:"address" validate:"required,min=5"`
	City             string `json:"city" validate:"required,min=2"`
	State            string `json:"state" validate:"required,min=2"`
	Pincode          string `json:"pincode" validate:"required,pincode"`
	OwnerName        string `json:"ownerName" validate:"omitempty,min=3"`
	DayStartTime     string `json:"dayStartTime" validate:"omitempty,hhmm"`
	DayEndTime       string `json:"dayEndTime" validate:"omitempty,hhmm"`
	LunchStartTime   string `json:"lunchStartTime" validate:"omitempty,hhmm"`
	LunchEndTime     string `json:"lunchEndTime" validate:"omitempty,hhmm"`
	BankName         string `json:"bankName" validate:"omitempty,min=3"`
	AccountNumber    string `json:"accountNumber" validate:"omitempty,digits,min=9,max=18"`
	IfscCode         string `json:"ifscCode" validate:"omitempty,ifsc"`
	GstNumber        string `json:"gstNumber" validate:"omitempty,gst"`
	RtoLicenseNumber string `json:"rtoLicenseNumber" validate:"omitempty,min=5"`
	Status           string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
}

func (f *SchoolForm) crossCheck(fields Fields, errs domain.ValidationErrors) {
	after(fields, errs, "dayStartTime", f.DayStartTime, "dayEndTime", f.DayEndTime, "must be after the day start time")
	after(fields, errs, "lunchStartTime", f.LunchStartTime, "lunchEndTime", f.LunchEndTime, "must be after the lunch start time")
}

func (f *SchoolForm) Input(fields Fields) models.SchoolInput {
	return models.SchoolInput{
		Name:             text(fields, "name", f.Name),
		Email:            text(fields, "email", strings.ToLower(f.Email)),
		Phone:            text(fields, "phone", f.Phone),
		Address:          text(fields, "address", f.Address),
		City:             text(fields, "city", f.City),
		State:            text(fields, "state", f.State),
		Pincode:          text(fields, "pincode", f.Pincode),
		OwnerName:        optText(fields, "ownerName", f.OwnerName),
		DayStartTime:     optText(fields, "dayStartTime", f.DayStartTime),
		DayEndTime:       optText(fields, "dayEndTime", f.DayEndTime),
		LunchStartTime:   optText(fields, "lunchStartTime", f.LunchStartTime),
		LunchEndTime:     optText(fields, "lunchEndTime", f.LunchEndTime),
		BankName:         optText(fields, "bankName", f.BankName),
		AccountNumber:    optText(fields, "accountNumber", f.AccountNumber),
		IfscCode:         optText(fields, "ifscCode", upper(f.IfscCode)),
		GstNumber:        optText(fields, "gstNumber", upper(f.GstNumber)),
		RtoLicenseNumber: optText(fields, "rtoLicenseNumber", f.RtoLicenseNumber),
		Status:           enum[models.SchoolStatus](fields, "status", f.Status),
	}
}

type UserForm struct {
	Name     string `json:"name" validate:"required,min=3,max=120"`
	Email    string `json:"email" validate:"omitempty,email"`
	Contact1 string `json:"contact1" validate:"required,nowhitespace,phone"`
	Contact2 string `json:"contact2" validate:"omitempty,nowhitespace,phone"`
	Address  string `json:"address" validate:"omitempty,min=5"`
}

func (f *UserForm) Input(fields Fields) models.UserInput {
	return models.UserInput{
		Name:     text(fields, "name", f.Name),
		Email:    optText(fields, "email", strings.ToLower(f.Email)),
		Contact1: text(fields, "contact1", f.Contact1),
		Contact2: optText(fields, "contact2", f.Contact2),
		Address:  optText(fields, "address", f.Address),
	}
}

// after requires end > start when both are set and were submitted. Fixed-width
// HH:mm and YYYY-MM-DD values order lexically.
func after(fields Fields, errs domain.ValidationErrors, startKey, start, endKey, end, msg string) {
	if !fields.Has(startKey) || !fields.Has(endKey) || start == "" || end == "" {
		return
	}
	if end <= start {
		errs[endKey] = msg
	}
}

// notBefore requires end >= start under the same conditions as after.
func notBefore(fields Fields, errs domain.ValidationErrors, startKey, start, endKey, end, msg string) {
	if !fields.Has(startKey) || !fields.Has(endKey) || start == "" || end == "" {
		return
	}
	if end < start {
		errs[endKey] = msg
	}
}
