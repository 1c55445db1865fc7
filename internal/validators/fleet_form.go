package validators

import (
	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
)

type CarForm struct {
	SchoolID           Numeric `json:"schoolId" validate:"required,integer"`
	CarName            string  `json:"carName" validate:"required,min=2,max=80"`
	Model              string  `json:"model" validate:"required,min=1"`
	Make               string  `json:"make" validate:"required,min=2"`
	Year               string  `json:"year" validate:"required,year"`
	Color              string  `json:"color" validate:"omitempty,min=3"`
	RegistrationNumber string  `json:"registrationNumber" validate:"required,min=6,max=13"`
	FuelType           string  `json:"fuelType" validate:"required,oneof=PETROL DIESEL CNG ELECTRIC HYBRID"`
	Transmission       string  `json:"transmission" validate:"required,oneof=MANUAL AUTOMATIC"`
	SeatingCapacity    Numeric `json:"seatingCapacity" validate:"omitempty,integer"`
	InsuranceExpiry    string  `json:"insuranceExpiry" validate:"omitempty,date"`
	PucExpiry          string  `json:"pucExpiry" validate:"omitempty,date"`
	FitnessExpiry      string  `json:"fitnessExpiry" validate:"omitempty,date"`
	DriverID           Numeric `json:"driverId" validate:"omitempty,integer"`
	Status             string  `json:"status" validate:"omitempty,oneof=AVAILABLE IN_USE MAINTENANCE INACTIVE"`
}

func (f *CarForm) Input(fields Fields) models.CarInput {
	return models.CarInput{
		SchoolID:           ref(fields, "schoolId", f.SchoolID),
		CarName:            text(fields, "carName", f.CarName),
		Model:              text(fields, "model", f.Model),
		Make:               text(fields, "make", f.Make),
		Year:               text(fields, "year", f.Year),
		Color:              optText(fields, "color", f.Color),
		RegistrationNumber: text(fields, "registrationNumber", upper(f.RegistrationNumber)),
		FuelType:           text(fields, "fuelType", f.FuelType),
		Transmission:       text(fields, "transmission", f.Transmission),
		SeatingCapacity:    integer(fields, "seatingCapacity", f.SeatingCapacity),
		InsuranceExpiry:    optText(fields, "insuranceExpiry", f.InsuranceExpiry),
		PucExpiry:          optText(fields, "pucExpiry", f.PucExpiry),
		FitnessExpiry:      optText(fields, "fitnessExpiry", f.FitnessExpiry),
		DriverID:           ref(fields, "driverId", f.DriverID),
		Status:             enum[models.CarStatus](fields, "status", f.Status),
	}
}

// DriverForm has no booking counters; the backend moves those with session
// and booking transitions.
type DriverForm struct {
	SchoolID          Numeric `json:"schoolId" validate:"required,integer"`
	Name              string  `json:"name" validate:"required,min=3,max=120"`
	Email             string  `json:"email" validate:"omitempty,email"`
	Phone             string  `json:"phone" validate:"required,nowhitespace,phone"`
	Address           string  `json:"address" validate:"omitempty,min=5"`
	LicenseNumber     string  `json:"licenseNumber" validate:"required,min=8,max=20"`
	LicenseIssueDate  string  `json:"licenseIssueDate" validate:"required,date"`
	LicenseExpiryDate string  `json:"licenseExpiryDate" validate:"required,date"`
	ExperienceYears   Numeric `json:"experienceYears" validate:"omitempty,integer"`
	JoiningDate       string  `json:"joiningDate" validate:"omitempty,date"`
	Salary            Numeric `json:"salary" validate:"omitempty,decimal"`
	Status            string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE ON_LEAVE SUSPENDED"`
}

func (f *DriverForm) crossCheck(fields Fields, errs domain.ValidationErrors) {
	after(fields, errs, "licenseIssueDate", f.LicenseIssueDate, "licenseExpiryDate", f.LicenseExpiryDate, "must be after the issue date")
}

func (f *DriverForm) Input(fields Fields) models.DriverInput {
	return models.DriverInput{
		SchoolID:          ref(fields, "schoolId", f.SchoolID),
		Name:              text(fields, "name", f.Name),
		Email:             optText(fields, "email", f.Email),
		Phone:             text(fields, "phone", f.Phone),
		Address:           optText(fields, "address", f.Address),
		LicenseNumber:     text(fields, "licenseNumber", upper(f.LicenseNumber)),
		LicenseIssueDate:  text(fields, "licenseIssueDate", f.LicenseIssueDate),
		LicenseExpiryDate: text(fields, "licenseExpiryDate", f.LicenseExpiryDate),
		ExperienceYears:   integer(fields, "experienceYears", f.ExperienceYears),
		JoiningDate:       optText(fields, "joiningDate", f.JoiningDate),
		Salary:            money(fields, "salary", f.Salary),
		Status:            enum[models.DriverStatus](fields, "status", f.Status),
	}
}
