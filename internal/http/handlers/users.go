package handlers

import (
	"github.com/gin-gonic/gin"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/validators"
)

// Customers carry no school of their own. A school sees the customers it
// has booked; anyone else answers not found.
func (h *Handler) users() crud[models.User, models.UserInput, models.UserFilter] {
	return crud[models.User, models.UserInput, models.UserFilter]{
		name:    "user",
		repo:    h.Users,
		newForm: func() form[models.UserInput] { return &validators.UserForm{} },
		filter: func(_ *gin.Context, schoolID int64) (models.UserFilter, error) {
			return models.UserFilter{SchoolID: &schoolID}, nil
		},
		owner: func(c *gin.Context, u models.User) (int64, error) {
			school := caller(c).SchoolID
			userID := u.ID
			page, err := h.Bookings.Paginate(c.Request.Context(), domain.PageQuery{Take: 1},
				models.BookingFilter{SchoolID: &school, UserID: &userID})
			if err != nil {
				return 0, err
			}
			if page.Total == 0 {
				return 0, nil
			}
			return school, nil
		},
	}
}

func (h *Handler) ListUsers(c *gin.Context)  { h.users().list(c) }
func (h *Handler) GetUser(c *gin.Context)    { h.users().get(c) }
func (h *Handler) CreateUser(c *gin.Context) { h.users().create(c) }
func (h *Handler) UpdateUser(c *gin.Context) { h.users().update(c) }
