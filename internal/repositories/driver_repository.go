package repositories

import (
	"context"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/graphql"
)

type DriverRepository struct {
	resource[models.Driver, models.DriverInput, models.DriverFilter]
}

func NewDriverRepository(c *graphql.Client) DriverRepository {
	return DriverRepository{newResource[models.Driver, models.DriverInput, models.DriverFilter](c, "Driver", "Drivers", driverFields)}
}

func (r DriverRepository) LeaveHistory(ctx context.Context, driverID int64) ([]models.LeaveHistory, error) {
	if driverID <= 0 {
		return nil, domain.ValidationError{Field: "driverId", Msg: "must be a positive integer"}
	}
	doc := `query GetDriverLeaves($driverId: Int!) {
  getDriverLeaves(driverId: $driverId) { ` + leaveFields + ` }
}`
	out, err := run[[]models.LeaveHistory](ctx, r.gql, "GetDriverLeaves", "getDriverLeaves", doc,
		map[string]any{"driverId": driverID}, "Driver", driverID, false)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.LeaveHistory{}
	}
	return out, nil
}

func (r DriverRepository) SalaryHistory(ctx context.Context, driverID int64) ([]models.SalaryHistory, error) {
	if driverID <= 0 {
		return nil, domain.ValidationError{Field: "driverId", Msg: "must be a positive integer"}
	}
	doc := `query GetDriverSalaries($driverId: Int!) {
  getDriverSalaries(driverId: $driverId) { ` + salaryFields + ` }
}`
	out, err := run[[]models.SalaryHistory](ctx, r.gql, "GetDriverSalaries", "getDriverSalaries", doc,
		map[string]any{"driverId": driverID}, "Driver", driverID, false)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.SalaryHistory{}
	}
	return out, nil
}
