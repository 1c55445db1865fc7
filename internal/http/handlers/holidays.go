package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/validators"
)

func (h *Handler) holidays() crud[models.Holiday, models.HolidayInput, models.HolidayFilter] {
	return crud[models.Holiday, models.HolidayInput, models.HolidayFilter]{
		name:    "holiday",
		repo:    h.Holidays,
		newForm: func() form[models.HolidayInput] { return &validators.HolidayForm{} },
		filter: func(c *gin.Context, schoolID int64) (models.HolidayFilter, error) {
			carID, err := queryID(c, "carId")
			return models.HolidayFilter{
				SchoolID: &schoolID,
				CarID:    carID,
				FromDate: queryText(c, "fromDate"),
				ToDate:   queryText(c, "toDate"),
			}, err
		},
		owner: schoolField(func(hd models.Holiday) int64 { return hd.SchoolID }),
		admit: func(c *gin.Context, schoolID int64, in models.HolidayInput) error {
			if in.CarID == nil {
				return nil
			}
			_, err := h.cars().load(c, domain.RequestContext{SchoolID: schoolID}, *in.CarID)
			return err
		},
		stampSchool: true,
		remove: func(ctx context.Context, id int64, who domain.RequestContext) (models.Deleted, error) {
			return h.Holidays.Delete(ctx, id, who.UserID)
		},
	}
}

func (h *Handler) ListHolidays(c *gin.Context)  { h.holidays().list(c) }
func (h *Handler) GetHoliday(c *gin.Context)    { h.holidays().get(c) }
func (h *Handler) CreateHoliday(c *gin.Context) { h.holidays().create(c) }
func (h *Handler) UpdateHoliday(c *gin.Context) { h.holidays().update(c) }
func (h *Handler) DeleteHoliday(c *gin.Context) { h.holidays().destroy(c) }

func (h *Handler) licenseApplications() crud[models.LicenseApplication, models.LicenseApplicationInput, models.LicenseApplicationFilter] {
	return crud[models.LicenseApplication, models.LicenseApplicationInput, models.LicenseApplicationFilter]{
		name:    "license application",
		repo:    h.LicenseApplications,
		newForm: func() form[models.LicenseApplicationInput] { return &validators.LicenseApplicationForm{} },
		filter: func(c *gin.Context, schoolID int64) (models.LicenseApplicationFilter, error) {
			return models.LicenseApplicationFilter{
				SchoolID:   &schoolID,
				Status:     queryEnum[models.LicenseApplicationStatus](c, "status"),
				TestStatus: queryEnum[models.TestStatus](c, "testStatus"),
			}, nil
		},
		owner: schoolField(func(la models.LicenseApplication) int64 { return la.SchoolID }),
		admit: func(c *gin.Context, schoolID int64, in models.LicenseApplicationInput) error {
			_, err := h.ownBookingService(c, schoolID, idOf(in.BookingServiceID))
			return err
		},
		stampSchool: true,
		pinned:      []string{"bookingServiceId", "userId"},
		remove:      plainDelete(h.LicenseApplications.Delete),
	}
}

func (h *Handler) ListLicenseApplications(c *gin.Context)  { h.licenseApplications().list(c) }
func (h *Handler) GetLicenseApplication(c *gin.Context)    { h.licenseApplications().get(c) }
func (h *Handler) CreateLicenseApplication(c *gin.Context) { h.licenseApplications().create(c) }
func (h *Handler) UpdateLicenseApplication(c *gin.Context) { h.licenseApplications().update(c) }
func (h *Handler) DeleteLicenseApplication(c *gin.Context) { h.licenseApplications().destroy(c) }
