package models

import "github.com/shopspring/decimal"

type CourseType string

const (
	CourseBeginner     CourseType = "BEGINNER"
	CourseIntermediate CourseType = "INTERMEDIATE"
	CourseAdvanced     CourseType = "ADVANCED"
	CourseRefresher    CourseType = "REFRESHER"
)

type CourseStatus string

const (
	CourseActive   CourseStatus = "ACTIVE"
	CourseInactive CourseStatus = "INACTIVE"
	CourseUpcoming CourseStatus = "UPCOMING"
	CourseArchived CourseStatus = "ARCHIVED"
)

type Course struct {
	ID               int64           `json:"id"`
	SchoolID         int64           `json:"schoolId"`
	CourseName       string          `json:"courseName"`
	CourseType       CourseType      `json:"courseType"`
	Description      string          `json:"description"`
	Syllabus         string          `json:"syllabus"`
	MinsPerDay       int             `json:"minsPerDay"`
	CourseDays       int             `json:"courseDays"`
	Price            decimal.Decimal `json:"price"`
	EnrolledStudents int             `json:"enrolledStudents"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	Status           CourseStatus    `json:"status"`
	Timestamps
}

type CourseInput struct {
	SchoolID    *int64           `json:"schoolId,omitempty"`
	CourseName  *string          `json:"courseName,omitempty"`
	CourseType  *CourseType      `json:"courseType,omitempty"`
	Description *string          `json:"description,omitempty"`
	Syllabus    *string          `json:"syllabus,omitempty"`
	MinsPerDay  *int             `json:"minsPerDay,omitempty"`
	CourseDays  *int             `json:"courseDays,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Status      *CourseStatus    `json:"status,omitempty"`
}

type CourseFilter struct {
	SchoolID   *int64        `json:"schoolId,omitempty"`
	CourseType *CourseType   `json:"courseType,omitempty"`
	Status     *CourseStatus `json:"status,omitempty"`
}
