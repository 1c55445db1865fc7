package models

import "github.com/shopspring/decimal"

type ServiceCategory string

const (
	CategoryNewLicense   ServiceCategory = "NEW_LICENSE"
	CategoryIHoldLicense ServiceCategory = "I_HOLD_LICENSE"
	CategoryTransport    ServiceCategory = "TRANSPORT"
	CategoryIDP          ServiceCategory = "IDP"
)

type ServiceStatus string

const (
	ServiceActive       ServiceStatus = "ACTIVE"
	ServiceInactive     ServiceStatus = "INACTIVE"
	ServiceUpcoming     ServiceStatus = "UPCOMING"
	ServiceDiscontinued ServiceStatus = "DISCONTINUED"
)

// Service is a catalog item offered to schools.
type Service struct {
	ID               int64           `json:"id"`
	ServiceName      string          `json:"serviceName"`
	Category         ServiceCategory `json:"category"`
	Description      string          `json:"description"`
	Duration         int             `json:"duration"`
	Features         StringList      `json:"features"`
	IncludedServices StringList      `json:"includedServices"`
	Status           ServiceStatus   `json:"status"`
	Timestamps
}

// ServiceInput carries list fields already encoded into their stored JSON form.
type ServiceInput struct {
	ServiceName      *string          `json:"serviceName,omitempty"`
	Category         *ServiceCategory `json:"category,omitempty"`
	Description      *string          `json:"description,omitempty"`
	Duration         *int             `json:"duration,omitempty"`
	Features         *string          `json:"features,omitempty"`
	IncludedServices *string          `json:"includedServices,omitempty"`
	Status           *ServiceStatus   `json:"status,omitempty"`
}

type ServiceFilter struct {
	Category *ServiceCategory `json:"category,omitempty"`
	Status   *ServiceStatus   `json:"status,omitempty"`
}

type SchoolServiceStatus string

const (
	SchoolServiceActive   SchoolServiceStatus = "ACTIVE"
	SchoolServiceInactive SchoolServiceStatus = "INACTIVE"
)

// SchoolService prices a catalog Service for one School. Its status is
// independent of the Service's own status.
type SchoolService struct {
	ID           int64               `json:"id"`
	SchoolID     int64               `json:"schoolId"`
	ServiceID    int64               `json:"serviceId"`
	LicensePrice decimal.Decimal     `json:"licensePrice"`
	AddonPrice   decimal.Decimal     `json:"addonPrice"`
	Status       SchoolServiceStatus `json:"status"`
	Service      *Service            `json:"service,omitempty"`
	Timestamps
}

type SchoolServiceInput struct {
	SchoolID     *int64               `json:"schoolId,omitempty"`
	ServiceID    *int64               `json:"serviceId,omitempty"`
	LicensePrice *decimal.Decimal     `json:"licensePrice,omitempty"`
	AddonPrice   *decimal.Decimal     `json:"addonPrice,omitempty"`
	Status       *SchoolServiceStatus `json:"status,omitempty"`
}

type SchoolServiceFilter struct {
	SchoolID  *int64               `json:"schoolId,omitempty"`
	ServiceID *int64               `json:"serviceId,omitempty"`
	Status    *SchoolServiceStatus `json:"status,omitempty"`
}
