package models

type CarStatus string

const (
	CarAvailable   CarStatus = "AVAILABLE"
	CarInUse       CarStatus = "IN_USE"
	CarMaintenance CarStatus = "MAINTENANCE"
	CarInactive    CarStatus = "INACTIVE"
)

type Car struct {
	ID                 int64     `json:"id"`
	SchoolID           int64     `json:"schoolId"`
	CarName            string    `json:"carName"`
	Model              string    `json:"model"`
	Make               string    `json:"make"`
	Year               string    `json:"year"`
	Color              string    `json:"color"`
	RegistrationNumber string    `json:"registrationNumber"`
	FuelType           string    `json:"fuelType"`
	Transmission       string    `json:"transmission"`
	SeatingCapacity    int       `json:"seatingCapacity"`
	InsuranceExpiry    string    `json:"insuranceExpiry"`
	PucExpiry          string    `json:"pucExpiry"`
	FitnessExpiry      string    `json:"fitnessExpiry"`
	DriverID           *int64    `json:"driverId,omitempty"`
	Status             CarStatus `json:"status"`
	Timestamps
}

type CarInput struct {
	SchoolID           *int64     `json:"schoolId,omitempty"`
	CarName            *string    `json:"carName,omitempty"`
	Model              *string    `json:"model,omitempty"`
	Make               *string    `json:"make,omitempty"`
	Year               *string    `json:"year,omitempty"`
	Color              *string    `json:"color,omitempty"`
	RegistrationNumber *string    `json:"registrationNumber,omitempty"`
	FuelType           *string    `json:"fuelType,omitempty"`
	Transmission       *string    `json:"transmission,omitempty"`
	SeatingCapacity    *int       `json:"seatingCapacity,omitempty"`
	InsuranceExpiry    *string    `json:"insuranceExpiry,omitempty"`
	PucExpiry          *string    `json:"pucExpiry,omitempty"`
	FitnessExpiry      *string    `json:"fitnessExpiry,omitempty"`
	DriverID           *int64     `json:"driverId,omitempty"`
	Status             *CarStatus `json:"status,omitempty"`
}

type CarFilter struct {
	SchoolID *int64     `json:"schoolId,omitempty"`
	DriverID *int64     `json:"driverId,omitempty"`
	Status   *CarStatus `json:"status,omitempty"`
}
