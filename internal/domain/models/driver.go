package models

import "github.com/shopspring/decimal"

type DriverStatus string

const (
	DriverActive    DriverStatus = "ACTIVE"
	DriverInactive  DriverStatus = "INACTIVE"
	DriverOnLeave   DriverStatus = "ON_LEAVE"
	DriverSuspended DriverStatus = "SUSPENDED"
)

type Driver struct {
	ID                int64           `json:"id"`
	SchoolID          int64           `json:"schoolId"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	Address           string          `json:"address"`
	LicenseNumber     string          `json:"licenseNumber"`
	LicenseIssueDate  string          `json:"licenseIssueDate"`
	LicenseExpiryDate string          `json:"licenseExpiryDate"`
	ExperienceYears   int             `json:"experienceYears"`
	JoiningDate       string          `json:"joiningDate"`
	Salary            decimal.Decimal `json:"salary"`
	TotalBookings     int             `json:"totalBookings"`
	CompletedBookings int             `json:"completedBookings"`
	CancelledBookings int             `json:"cancelledBookings"`
	Rating            float64         `json:"rating"`
	Status            DriverStatus    `json:"status"`
	Timestamps
}

// DriverInput deliberately carries no booking counters; those move only with
// session and booking status transitions on the backend.
type DriverInput struct {
	SchoolID          *int64           `json:"schoolId,omitempty"`
	Name              *string          `json:"name,omitempty"`
	Email             *string          `json:"email,omitempty"`
	Phone             *string          `json:"phone,omitempty"`
	Address           *string          `json:"address,omitempty"`
	LicenseNumber     *string          `json:"licenseNumber,omitempty"`
	LicenseIssueDate  *string          `json:"licenseIssueDate,omitempty"`
	LicenseExpiryDate *string          `json:"licenseExpiryDate,omitempty"`
	ExperienceYears   *int             `json:"experienceYears,omitempty"`
	JoiningDate       *string          `json:"joiningDate,omitempty"`
	Salary            *decimal.Decimal `json:"salary,omitempty"`
	Status            *DriverStatus    `json:"status,omitempty"`
}

type DriverFilter struct {
	SchoolID *int64        `json:"schoolId,omitempty"`
	Status   *DriverStatus `json:"status,omitempty"`
}

type LeaveHistory struct {
	ID        int64  `json:"id"`
	DriverID  int64  `json:"driverId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
}

type SalaryHistory struct {
	ID       int64           `json:"id"`
	DriverID int64           `json:"driverId"`
	Amount   decimal.Decimal `json:"amount"`
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	PaidOn   string          `json:"paidOn"`
	Status   string          `json:"status"`
}
