package models

import "strings"

type SchoolStatus string

const (
	SchoolActive    SchoolStatus = "ACTIVE"
	SchoolInactive  SchoolStatus = "INACTIVE"
	SchoolSuspended SchoolStatus = "SUSPENDED"
)

type School struct {
	ID               int64        `json:"id"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Address          string       `json:"address"`
	City             string       `json:"city"`
	State            string       `json:"state"`
	Pincode          string       `json:"pincode"`
	OwnerName        string       `json:"ownerName"`
	DayStartTime     string       `json:"dayStartTime"`
	DayEndTime       string       `json:"dayEndTime"`
	LunchStartTime   string       `json:"lunchStartTime"`
	LunchEndTime     string       `json:"lunchEndTime"`
	BankName         string       `json:"bankName"`
	AccountNumber    string       `json:"accountNumber"`
	IfscCode         string       `json:"ifscCode"`
	GstNumber        string       `json:"gstNumber"`
	RtoLicenseNumber string       `json:"rtoLicenseNumber"`
	Status           SchoolStatus `json:"status"`
	Timestamps
}

// ProfileComplete reports whether every field that dependent features need
// (operating hours, owner, bank details, RTO license) is filled in.
func (s School) ProfileComplete() bool {
	return len(s.MissingProfileFields()) == 0
}

// MissingProfileFields lists the empty required profile fields in a stable order.
func (s School) MissingProfileFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"dayStartTime", s.DayStartTime},
		{"dayEndTime", s.DayEndTime},
		{"ownerName", s.OwnerName},
		{"bankName", s.BankName},
		{"accountNumber", s.AccountNumber},
		{"ifscCode", s.IfscCode},
		{"rtoLicenseNumber", s.RtoLicenseNumber},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

type SchoolInput struct {
	Name             *string       `json:"name,omitempty"`
	Email            *string       `json:"email,omitempty"`
	Phone            *string       `json:"phone,omitempty"`
	Address          *string       `json:"address,omitempty"`
	City             *string       `json:"city,omitempty"`
	State            *string       `json:"state,omitempty"`
	Pincode          *string       `json:"pincode,omitempty"`
	OwnerName        *string       `json:"ownerName,omitempty"`
	DayStartTime     *string       `json:"dayStartTime,omitempty"`
	DayEndTime       *string       `json:"dayEndTime,omitempty"`
	LunchStartTime   *string       `json:"lunchStartTime,omitempty"`
	LunchEndTime     *string       `json:"lunchEndTime,omitempty"`
	BankName         *string       `json:"bankName,omitempty"`
	AccountNumber    *string       `json:"accountNumber,omitempty"`
	IfscCode         *string       `json:"ifscCode,omitempty"`
	GstNumber        *string       `json:"gstNumber,omitempty"`
	RtoLicenseNumber *string       `json:"rtoLicenseNumber,omitempty"`
	Status           *SchoolStatus `json:"status,omitempty"`
}

type SchoolFilter struct {
	Status *SchoolStatus `json:"status,omitempty"`
	City   *string       `json:"city,omitempty"`
}
