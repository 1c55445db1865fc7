package repositories

import (
	"context"

	"schooladmin/internal/domain/models"
	"schooladmin/internal/graphql"
)

type SchoolRepository struct {
	resource[models.School, models.SchoolInput, models.SchoolFilter]
}

func NewSchoolRepository(c *graphql.Client) SchoolRepository {
	return SchoolRepository{newResource[models.School, models.SchoolInput, models.SchoolFilter](c, "School", "Schools", schoolFields)}
}

type CarRepository struct {
	resource[models.Car, models.CarInput, models.CarFilter]
}

func NewCarRepository(c *graphql.Client) CarRepository {
	return CarRepository{newResource[models.Car, models.CarInput, models.CarFilter](c, "Car", "Cars", carFields)}
}

type CourseRepository struct {
	resource[models.Course, models.CourseInput, models.CourseFilter]
}

func NewCourseRepository(c *graphql.Client) CourseRepository {
	return CourseRepository{newResource[models.Course, models.CourseInput, models.CourseFilter](c, "Course", "Courses", courseFields)}
}

type UserRepository struct {
	resource[models.User, models.UserInput, models.UserFilter]
}

func NewUserRepository(c *graphql.Client) UserRepository {
	return UserRepository{newResource[models.User, models.UserInput, models.UserFilter](c, "User", "Users", userFields)}
}

// ServiceRepository reads features and includedServices through
// models.StringList, which accepts both the encoded string and a JSON array.
type ServiceRepository struct {
	resource[models.Service, models.ServiceInput, models.ServiceFilter]
}

func NewServiceRepository(c *graphql.Client) ServiceRepository {
	return ServiceRepository{newResource[models.Service, models.ServiceInput, models.ServiceFilter](c, "Service", "Services", serviceFields)}
}

type SchoolServiceRepository struct {
	resource[models.SchoolService, models.SchoolServiceInput, models.SchoolServiceFilter]
}

func NewSchoolServiceRepository(c *graphql.Client) SchoolServiceRepository {
	return SchoolServiceRepository{newResource[models.SchoolService, models.SchoolServiceInput, models.SchoolServiceFilter](c, "SchoolService", "SchoolServices", schoolServiceFields)}
}

// Create defaults the status to ACTIVE when the caller leaves it unset.
func (r SchoolServiceRepository) Create(ctx context.Context, input models.SchoolServiceInput) (models.SchoolService, error) {
	if input.Status == nil {
		active := models.SchoolServiceActive
		input.Status = &active
	}
	return r.resource.Create(ctx, input)
}
