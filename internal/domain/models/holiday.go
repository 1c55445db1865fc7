package models

// Holiday blocks a date range for the whole school (CarID nil) or one car.
type Holiday struct {
	ID          int64  `json:"id"`
	SchoolID    int64  `json:"schoolId"`
	CarID       *int64 `json:"carId,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Reason      string `json:"reason"`
	Slots       string `json:"slots"`
	DeletedByID *int64 `json:"deletedById,omitempty"`
	Timestamps
}

type HolidayInput struct {
	SchoolID  *int64  `json:"schoolId,omitempty"`
	CarID     *int64  `json:"carId,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	Slots     *string `json:"slots,omitempty"`
}

type HolidayFilter struct {
	SchoolID *int64  `json:"schoolId,omitempty"`
	CarID    *int64  `json:"carId,omitempty"`
	FromDate *string `json:"fromDate,omitempty"`
	ToDate   *string `json:"toDate,omitempty"`
}
