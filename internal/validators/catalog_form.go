package validators

import (
	"strings"

	"schooladmin/internal/domain/models"
)

type CourseForm struct {
	SchoolID    Numeric `json:"schoolId" validate:"required,integer"`
	CourseName  string  `json:"courseName" validate:"required,min=3,max=120"`
	CourseType  string  `json:"courseType" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED REFRESHER"`
	Description string  `json:"description" validate:"omitempty,min=10"`
	Syllabus    string  `json:"syllabus" validate:"omitempty"`
	MinsPerDay  Numeric `json:"minsPerDay" validate:"required,integer"`
	CourseDays  Numeric `json:"courseDays" validate:"required,integer"`
	Price       Numeric `json:"price" validate:"required,decimal"`
	Status      string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE UPCOMING ARCHIVED"`
}

func (f *CourseForm) Input(fields Fields) models.CourseInput {
	return models.CourseInput{
		SchoolID:    ref(fields, "schoolId", f.SchoolID),
		CourseName:  text(fields, "courseName", f.CourseName),
		CourseType:  enum[models.CourseType](fields, "courseType", f.CourseType),
		Description: optText(fields, "description", f.Description),
		Syllabus:    optText(fields, "syllabus", f.Syllabus),
		MinsPerDay:  integer(fields, "minsPerDay", f.MinsPerDay),
		CourseDays:  integer(fields, "courseDays", f.CourseDays),
		Price:       money(fields, "price", f.Price),
		Status:      enum[models.CourseStatus](fields, "status", f.Status),
	}
}

// ServiceForm takes features and includedServices as plain lists; Input
// encodes them into the stored string form.
type ServiceForm struct {
	ServiceName      string   `json:"serviceName" validate:"required,min=3,max=120"`
	Category         string   `json:"category" validate:"required,oneof=NEW_LICENSE I_HOLD_LICENSE TRANSPORT IDP"`
	Description      string   `json:"description" validate:"omitempty,min=10"`
	Duration         Numeric  `json:"duration" validate:"required,integer"`
	Features         []string `json:"features" validate:"omitempty,dive,required"`
	IncludedServices []string `json:"includedServices" validate:"omitempty,dive,required"`
	Status           string   `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE UPCOMING DISCONTINUED"`
}

func (f *ServiceForm) Input(fields Fields) models.ServiceInput {
	return models.ServiceInput{
		ServiceName:      text(fields, "serviceName", f.ServiceName),
		Category:         enum[models.ServiceCategory](fields, "category", f.Category),
		Description:      optText(fields, "description", f.Description),
		Duration:         integer(fields, "duration", f.Duration),
		Features:         list(fields, "features", f.Features),
		IncludedServices: list(fields, "includedServices", f.IncludedServices),
		Status:           enum[models.ServiceStatus](fields, "status", f.Status),
	}
}

func list(fields Fields, key string, items []string) *string {
	if !fields.Has(key) {
		return nil
	}
	clean := make(models.StringList, 0, len(items))
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			clean = append(clean, s)
		}
	}
	encoded := clean.Encode()
	return &encoded
}

type SchoolServiceForm struct {
	SchoolID     Numeric `json:"schoolId" validate:"required,integer"`
	ServiceID    Numeric `json:"serviceId" validate:"required,integer"`
	LicensePrice Numeric `json:"licensePrice" validate:"required,decimal"`
	AddonPrice   Numeric `json:"addonPrice" validate:"required,decimal"`
	Status       string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (f *SchoolServiceForm) Input(fields Fields) models.SchoolServiceInput {
	return models.SchoolServiceInput{
		SchoolID:     ref(fields, "schoolId", f.SchoolID),
		ServiceID:    ref(fields, "serviceId", f.ServiceID),
		LicensePrice: money(fields, "licensePrice", f.LicensePrice),
		AddonPrice:   money(fields, "addonPrice", f.AddonPrice),
		Status:       enum[models.SchoolServiceStatus](fields, "status", f.Status),
	}
}
