package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/validators"
)

func (h *Handler) schools() crud[models.School, models.SchoolInput, models.SchoolFilter] {
	return crud[models.School, models.SchoolInput, models.SchoolFilter]{
		name:    "school",
		repo:    h.Schools,
		newForm: func() form[models.SchoolInput] { return &validators.SchoolForm{} },
		filter: func(c *gin.Context, _ int64) (models.SchoolFilter, error) {
			return models.SchoolFilter{
				Status: queryEnum[models.SchoolStatus](c, "status"),
				City:   queryText(c, "city"),
			}, nil
		},
		owner: func(c *gin.Context, s models.School) (int64, error) {
			if who := caller(c); who.Role == RoleSuperAdmin {
				return who.SchoolID, nil
			}
			return s.ID, nil
		},
		remove: plainDelete(h.Schools.Delete),
	}
}

// RoleSuperAdmin manages every school; other roles see only their own.
const RoleSuperAdmin = "superadmin"

func (h *Handler) ListSchools(c *gin.Context)  { h.schools().list(c) }
func (h *Handler) GetSchool(c *gin.Context)    { h.schools().get(c) }
func (h *Handler) CreateSchool(c *gin.Context) { h.schools().create(c) }
func (h *Handler) UpdateSchool(c *gin.Context) { h.schools().update(c) }
func (h *Handler) DeleteSchool(c *gin.Context) { h.schools().destroy(c) }

// GetProfileStatus reports which profile fields the school still misses.
func (h *Handler) GetProfileStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if id != caller(c).SchoolID {
		RespondDomainError(c, domain.NotFoundError{Resource: "school", ID: id})
		return
	}
	st, err := h.Profiles().Status(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	msg := "profile complete"
	if !st.Complete {
		msg = "profile incomplete"
	}
	respond(c, http.StatusOK, msg, st)
}
