package validators

import (
	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
)

type HolidayForm struct {
	SchoolID  Numeric `json:"schoolId" validate:"omitempty,integer"`
	CarID     Numeric `json:"carId" validate:"omitempty,integer"`
	StartDate string  `json:"startDate" validate:"required,date"`
	EndDate   string  `json:"endDate" validate:"required,date"`
	Reason    string  `json:"reason" validate:"required,min=3,max=255"`
	Slots     string  `json:"slots" validate:"omitempty,max=255"`
}

func (f *HolidayForm) crossCheck(fields Fields, errs domain.ValidationErrors) {
	notBefore(fields, errs, "startDate", f.StartDate, "endDate", f.EndDate, "must not be before the start date")
}

func (f *HolidayForm) Input(fields Fields) models.HolidayInput {
	return models.HolidayInput{
		SchoolID:  ref(fields, "schoolId", f.SchoolID),
		CarID:     ref(fields, "carId", f.CarID),
		StartDate: text(fields, "startDate", f.StartDate),
		EndDate:   text(fields, "endDate", f.EndDate),
		Reason:    text(fields, "reason", f.Reason),
		Slots:     optText(fields, "slots", f.Slots),
	}
}

type LicenseApplicationForm struct {
	BookingServiceID     Numeric `json:"bookingServiceId" validate:"required,integer"`
	SchoolID             Numeric `json:"schoolId" validate:"omitempty,integer"`
	UserID               Numeric `json:"userId" validate:"required,integer"`
	LearnerLicenseNumber string  `json:"learnerLicenseNumber" validate:"omitempty,min=5,max=30"`
	LearnerTestDate      string  `json:"learnerTestDate" validate:"omitempty,date"`
	DrivingLicenseNumber string  `json:"drivingLicenseNumber" validate:"omitempty,min=5,max=30"`
	DrivingTestDate      string  `json:"drivingTestDate" validate:"omitempty,date"`
	TestStatus           string  `json:"testStatus" validate:"omitempty,oneof=NONE PASSED FAILED ABSENT"`
	Status               string  `json:"status" validate:"omitempty,oneof=PENDING CLOSED LL_APPLIED DL_PENDING DL_APPLIED"`
	Remarks              string  `json:"remarks" validate:"omitempty,max=500"`
}

func (f *LicenseApplicationForm) crossCheck(fields Fields, errs domain.ValidationErrors) {
	notBefore(fields, errs, "learnerTestDate", f.LearnerTestDate, "drivingTestDate", f.DrivingTestDate, "must not be before the learner test")
}

func (f *LicenseApplicationForm) Input(fields Fields) models.LicenseApplicationInput {
	return models.LicenseApplicationInput{
		BookingServiceID:     ref(fields, "bookingServiceId", f.BookingServiceID),
		SchoolID:             ref(fields, "schoolId", f.SchoolID),
		UserID:               ref(fields, "userId", f.UserID),
		LearnerLicenseNumber: optText(fields, "learnerLicenseNumber", upper(f.LearnerLicenseNumber)),
		LearnerTestDate:      optText(fields, "learnerTestDate", f.LearnerTestDate),
		DrivingLicenseNumber: optText(fields, "drivingLicenseNumber", upper(f.DrivingLicenseNumber)),
		DrivingTestDate:      optText(fields, "drivingTestDate", f.DrivingTestDate),
		TestStatus:           enum[models.TestStatus](fields, "testStatus", f.TestStatus),
		Status:               enum[models.LicenseApplicationStatus](fields, "status", f.Status),
		Remarks:              optText(fields, "remarks", f.Remarks),
	}
}
