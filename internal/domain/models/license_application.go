package models

type TestStatus string

const (
	TestNone   TestStatus = "NONE"
	TestPassed TestStatus = "PASSED"
	TestFailed TestStatus = "FAILED"
	TestAbsent TestStatus = "ABSENT"
)

type LicenseApplicationStatus string

const (
	LicensePending   LicenseApplicationStatus = "PENDING"
	LicenseClosed    LicenseApplicationStatus = "CLOSED"
	LicenseLLApplied LicenseApplicationStatus = "LL_APPLIED"
	LicenseDLPending LicenseApplicationStatus = "DL_PENDING"
	LicenseDLApplied LicenseApplicationStatus = "DL_APPLIED"
)

// LicenseApplication tracks learner's and driving license progress for a
// license-type booking service.
type LicenseApplication struct {
	ID                   int64                    `json:"id"`
	BookingServiceID     int64                    `json:"bookingServiceId"`
	SchoolID             int64                    `json:"schoolId"`
	UserID               int64                    `json:"userId"`
	LearnerLicenseNumber string                   `json:"learnerLicenseNumber"`
	LearnerTestDate      string                   `json:"learnerTestDate"`
	DrivingLicenseNumber string                   `json:"drivingLicenseNumber"`
	DrivingTestDate      string                   `json:"drivingTestDate"`
	TestStatus           TestStatus               `json:"testStatus"`
	Status               LicenseApplicationStatus `json:"status"`
	Remarks              string                   `json:"remarks"`
	Timestamps
}

type LicenseApplicationInput struct {
	BookingServiceID     *int64                    `json:"bookingServiceId,omitempty"`
	SchoolID             *int64                    `json:"schoolId,omitempty"`
	UserID               *int64                    `json:"userId,omitempty"`
	LearnerLicenseNumber *string                   `json:"learnerLicenseNumber,omitempty"`
	LearnerTestDate      *string                   `json:"learnerTestDate,omitempty"`
	DrivingLicenseNumber *string                   `json:"drivingLicenseNumber,omitempty"`
	DrivingTestDate      *string                   `json:"drivingTestDate,omitempty"`
	TestStatus           *TestStatus               `json:"testStatus,omitempty"`
	Status               *LicenseApplicationStatus `json:"status,omitempty"`
	Remarks              *string                   `json:"remarks,omitempty"`
}

type LicenseApplicationFilter struct {
	SchoolID   *int64                    `json:"schoolId,omitempty"`
	Status     *LicenseApplicationStatus `json:"status,omitempty"`
	TestStatus *TestStatus               `json:"testStatus,omitempty"`
}
