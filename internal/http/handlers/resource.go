package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/validators"
)

type store[T, I, F any] interface {
	Paginate(ctx context.Context, q domain.PageQuery, f F) (domain.Page[T], error)
	All(ctx context.Context, f F) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, in I) (T, error)
	Update(ctx context.Context, id int64, in I) (T, error)
}

type form[I any] interface {
	Input(fields validators.Fields) I
}

// crud serves the list/get/create/update/delete routes of one entity.
type crud[T, I, F any] struct {
	name string
	repo store[T, I, F]
	// perRequest replaces repo when the store needs request data.
	perRequest func(c *gin.Context) store[T, I, F]
	newForm    func() form[I]
	// filter parses the list query string for the caller's school.
	filter func(c *gin.Context, schoolID int64) (F, error)
	// owner returns the school an item belongs to; nil for shared entities.
	owner func(c *gin.Context, item T) (int64, error)
	// admit checks a create input that points at a parent record.
	admit func(c *gin.Context, schoolID int64, in I) error
	// stampSchool forces schoolId on create and drops it from updates.
	stampSchool bool
	// pinned keys are never sent on update.
	pinned []string
	remove func(ctx context.Context, id int64, who domain.RequestContext) (models.Deleted, error)
}

func (x crud[T, I, F]) store(c *gin.Context) store[T, I, F] {
	if x.perRequest != nil {
		return x.perRequest(c)
	}
	return x.repo
}

// schoolField adapts a plain accessor into an owner func.
func schoolField[T any](get func(T) int64) func(*gin.Context, T) (int64, error) {
	return func(_ *gin.Context, item T) (int64, error) { return get(item), nil }
}

func plainDelete(del func(ctx context.Context, id int64) (models.Deleted, error)) func(context.Context, int64, domain.RequestContext) (models.Deleted, error) {
	return func(ctx context.Context, id int64, _ domain.RequestContext) (models.Deleted, error) {
		return del(ctx, id)
	}
}

// load fetches one item and hides it when it belongs to another school.
func (x crud[T, I, F]) load(c *gin.Context, who domain.RequestContext, id int64) (T, error) {
	var zero T
	item, err := x.store(c).Get(c.Request.Context(), id)
	if err != nil || x.owner == nil {
		return item, err
	}
	school, err := x.owner(c, item)
	if err != nil {
		return zero, err
	}
	if school != who.SchoolID {
		return zero, domain.NotFoundError{Resource: x.name, ID: id}
	}
	return item, nil
}

func (x crud[T, I, F]) list(c *gin.Context) {
	q, err := pageQuery(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	f, err := x.filter(c, caller(c).SchoolID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, err := x.store(c).Paginate(c.Request.Context(), q, f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, x.name+" list", page)
}

func (x crud[T, I, F]) all(c *gin.Context) {
	f, err := x.filter(c, caller(c).SchoolID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	items, err := x.store(c).All(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, x.name+" list", items)
}

func (x crud[T, I, F]) get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	item, err := x.load(c, caller(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, x.name+" found", item)
}

func (x crud[T, I, F]) create(c *gin.Context) {
	raw, _, err := readBody(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if x.stampSchool {
		if raw, err = withSchool(raw, caller(c).SchoolID); err != nil {
			RespondDomainError(c, err)
			return
		}
	}
	f := x.newForm()
	if err := decodeForm(raw, f); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := validators.ValidateCreate(f); err != nil {
		RespondDomainError(c, err)
		return
	}
	in := f.Input(nil)
	if x.admit != nil {
		if err := x.admit(c, caller(c).SchoolID, in); err != nil {
			RespondDomainError(c, err)
			return
		}
	}
	item, err := x.store(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusCreated, x.name+" created", item)
}

func (x crud[T, I, F]) update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	raw, fields, err := readBody(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if x.stampSchool {
		delete(fields, "schoolId")
	}
	for _, key := range x.pinned {
		delete(fields, key)
	}
	who := caller(c)
	if _, err := x.load(c, who, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	f := x.newForm()
	if err := decodeForm(raw, f); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := validators.ValidateUpdate(f, fields); err != nil {
		RespondDomainError(c, err)
		return
	}
	item, err := x.store(c).Update(c.Request.Context(), id, f.Input(fields))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, x.name+" updated", item)
}

func (x crud[T, I, F]) destroy(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	who := caller(c)
	if _, err := x.load(c, who, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	deleted, err := x.remove(c.Request.Context(), id, who)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, x.name+" deleted", deleted)
}
