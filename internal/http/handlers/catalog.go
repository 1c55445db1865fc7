package handlers

import (
	"github.com/gin-gonic/gin"

	"schooladmin/internal/domain/models"
	"schooladmin/internal/validators"
)

func (h *Handler) courses() crud[models.Course, models.CourseInput, models.CourseFilter] {
	return crud[models.Course, models.CourseInput, models.CourseFilter]{
		name:    "course",
		repo:    h.Courses,
		newForm: func() form[models.CourseInput] { return &validators.CourseForm{} },
		filter: func(c *gin.Context, schoolID int64) (models.CourseFilter, error) {
			return models.CourseFilter{
				SchoolID:   &schoolID,
				CourseType: queryEnum[models.CourseType](c, "courseType"),
				Status:     queryEnum[models.CourseStatus](c, "status"),
			}, nil
		},
		owner:       schoolField(func(co models.Course) int64 { return co.SchoolID }),
		stampSchool: true,
		remove:      plainDelete(h.Courses.Delete),
	}
}

func (h *Handler) ListCourses(c *gin.Context)  { h.courses().list(c) }
func (h *Handler) GetCourse(c *gin.Context)    { h.courses().get(c) }
func (h *Handler) CreateCourse(c *gin.Context) { h.courses().create(c) }
func (h *Handler) UpdateCourse(c *gin.Context) { h.courses().update(c) }
func (h *Handler) DeleteCourse(c *gin.Context) { h.courses().destroy(c) }

// The service catalog is shared by every school.
func (h *Handler) services() crud[models.Service, models.ServiceInput, models.ServiceFilter] {
	return crud[models.Service, models.ServiceInput, models.ServiceFilter]{
		name: "service",
		perRequest: func(c *gin.Context) store[models.Service, models.ServiceInput, models.ServiceFilter] {
			return h.catalogService(c)
		},
		newForm: func() form[models.ServiceInput] { return &validators.ServiceForm{} },
		filter: func(c *gin.Context, _ int64) (models.ServiceFilter, error) {
			return models.ServiceFilter{
				Category: queryEnum[models.ServiceCategory](c, "category"),
				Status:   queryEnum[models.ServiceStatus](c, "status"),
			}, nil
		},
		remove: plainDelete(h.Services.Delete),
	}
}

func (h *Handler) ListServices(c *gin.Context)  { h.services().list(c) }
func (h *Handler) AllServices(c *gin.Context)   { h.services().all(c) }
func (h *Handler) GetService(c *gin.Context)    { h.services().get(c) }
func (h *Handler) CreateService(c *gin.Context) { h.services().create(c) }
func (h *Handler) UpdateService(c *gin.Context) { h.services().update(c) }
func (h *Handler) DeleteService(c *gin.Context) { h.services().destroy(c) }

func (h *Handler) schoolServices() crud[models.SchoolService, models.SchoolServiceInput, models.SchoolServiceFilter] {
	return crud[models.SchoolService, models.SchoolServiceInput, models.SchoolServiceFilter]{
		name:    "school service",
		repo:    h.SchoolServices,
		newForm: func() form[models.SchoolServiceInput] { return &validators.SchoolServiceForm{} },
		filter: func(c *gin.Context, schoolID int64) (models.SchoolServiceFilter, error) {
			serviceID, err := queryID(c, "serviceId")
			return models.SchoolServiceFilter{
				SchoolID:  &schoolID,
				ServiceID: serviceID,
				Status:    queryEnum[models.SchoolServiceStatus](c, "status"),
			}, err
		},
		owner:       schoolField(func(ss models.SchoolService) int64 { return ss.SchoolID }),
		stampSchool: true,
		pinned:      []string{"serviceId"},
		remove:      plainDelete(h.SchoolServices.Delete),
	}
}

func (h *Handler) ListSchoolServices(c *gin.Context)  { h.schoolServices().list(c) }
func (h *Handler) GetSchoolService(c *gin.Context)    { h.schoolServices().get(c) }
func (h *Handler) CreateSchoolService(c *gin.Context) { h.schoolServices().create(c) }
func (h *Handler) UpdateSchoolService(c *gin.Context) { h.schoolServices().update(c) }
func (h *Handler) DeleteSchoolService(c *gin.Context) { h.schoolServices().destroy(c) }
