package repositories

import (
	"context"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/graphql"
)

type HolidayRepository struct {
	resource[models.Holiday, models.HolidayInput, models.HolidayFilter]
}

func NewHolidayRepository(c *graphql.Client) HolidayRepository {
	return HolidayRepository{newResource[models.Holiday, models.HolidayInput, models.HolidayFilter](c, "Holiday", "Holidays", holidayFields)}
}

// Delete soft-deletes the holiday and records who removed it.
func (r HolidayRepository) Delete(ctx context.Context, id, userID int64) (models.Deleted, error) {
	if id <= 0 {
		return models.Deleted{}, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	if userID <= 0 {
		return models.Deleted{}, domain.ValidationError{Field: "userId", Msg: "must be a positive integer"}
	}
	doc := `mutation DeleteHoliday($id: Int!, $userId: Int!) {
  deleteHoliday(id: $id, userId: $userId) { id deletedAt }
}`
	return run[models.Deleted](ctx, r.gql, "DeleteHoliday", "deleteHoliday", doc,
		map[string]any{"id": id, "userId": userID}, "Holiday", id, true)
}

type LicenseApplicationRepository struct {
	resource[models.LicenseApplication, models.LicenseApplicationInput, models.LicenseApplicationFilter]
}

func NewLicenseApplicationRepository(c *graphql.Client) LicenseApplicationRepository {
	return LicenseApplicationRepository{newResource[models.LicenseApplication, models.LicenseApplicationInput, models.LicenseApplicationFilter](
		c, "LicenseApplication", "LicenseApplications", licenseApplicationFields)}
}

func (r LicenseApplicationRepository) GetByBookingService(ctx context.Context, bookingServiceID int64) (models.LicenseApplication, error) {
	if bookingServiceID <= 0 {
		return models.LicenseApplication{}, domain.ValidationError{Field: "bookingServiceId", Msg: "must be a positive integer"}
	}
	doc := `query GetLicenseApplicationByBookingService($bookingServiceId: Int!) {
  getLicenseApplicationByBookingServiceId(bookingServiceId: $bookingServiceId) { ` + licenseApplicationFields + ` }
}`
	return run[models.LicenseApplication](ctx, r.gql, "GetLicenseApplicationByBookingService", "getLicenseApplicationByBookingServiceId", doc,
		map[string]any{"bookingServiceId": bookingServiceID}, "LicenseApplication", 0, true)
}
