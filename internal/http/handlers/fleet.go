package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/validators"
)

func (h *Handler) cars() crud[models.Car, models.CarInput, models.CarFilter] {
	return crud[models.Car, models.CarInput, models.CarFilter]{
		name:    "car",
		repo:    h.Cars,
		newForm: func() form[models.CarInput] { return &validators.CarForm{} },
		filter: func(c *gin.Context, schoolID int64) (models.CarFilter, error) {
			driverID, err := queryID(c, "driverId")
			return models.CarFilter{
				SchoolID: &schoolID,
				DriverID: driverID,
				Status:   queryEnum[models.CarStatus](c, "status"),
			}, err
		},
		owner: schoolField(func(car models.Car) int64 { return car.SchoolID }),
		admit: func(c *gin.Context, schoolID int64, in models.CarInput) error {
			if in.DriverID == nil {
				return nil
			}
			_, err := h.drivers().load(c, domain.RequestContext{SchoolID: schoolID}, *in.DriverID)
			return err
		},
		stampSchool: true,
		remove:      plainDelete(h.Cars.Delete),
	}
}

func (h *Handler) ListCars(c *gin.Context)  { h.cars().list(c) }
func (h *Handler) AllCars(c *gin.Context)   { h.cars().all(c) }
func (h *Handler) GetCar(c *gin.Context)    { h.cars().get(c) }
func (h *Handler) CreateCar(c *gin.Context) { h.cars().create(c) }
func (h *Handler) UpdateCar(c *gin.Context) { h.cars().update(c) }
func (h *Handler) DeleteCar(c *gin.Context) { h.cars().destroy(c) }

func (h *Handler) drivers() crud[models.Driver, models.DriverInput, models.DriverFilter] {
	return crud[models.Driver, models.DriverInput, models.DriverFilter]{
		name:    "driver",
		repo:    h.Drivers,
		newForm: func() form[models.DriverInput] { return &validators.DriverForm{} },
		filter: func(c *gin.Context, schoolID int64) (models.DriverFilter, error) {
			return models.DriverFilter{SchoolID: &schoolID, Status: queryEnum[models.DriverStatus](c, "status")}, nil
		},
		owner:       schoolField(func(d models.Driver) int64 { return d.SchoolID }),
		stampSchool: true,
		remove:      plainDelete(h.Drivers.Delete),
	}
}

func (h *Handler) ListDrivers(c *gin.Context)  { h.drivers().list(c) }
func (h *Handler) GetDriver(c *gin.Context)    { h.drivers().get(c) }
func (h *Handler) CreateDriver(c *gin.Context) { h.drivers().create(c) }
func (h *Handler) UpdateDriver(c *gin.Context) { h.drivers().update(c) }
func (h *Handler) DeleteDriver(c *gin.Context) { h.drivers().destroy(c) }

// GetDriverLeaves lists the driver's leave history.
func (h *Handler) GetDriverLeaves(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := h.drivers().load(c, caller(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	leaves, err := h.Drivers.LeaveHistory(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "driver leaves", leaves)
}

// GetDriverSalaries lists the driver's salary history.
func (h *Handler) GetDriverSalaries(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := h.drivers().load(c, caller(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	salaries, err := h.Drivers.SalaryHistory(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, "driver salaries", salaries)
}
