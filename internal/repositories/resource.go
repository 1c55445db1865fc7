package repositories

import (
	"context"
	"fmt"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/graphql"
)

// resource is the resource-client pattern shared by every entity: it derives
// the conventional operation names from the entity name (getPaginatedCars,
// getCarById, createCar, ...) and owns the field selection.
//
// T is the read model, I the create/update input and F the list filter.
type resource[T, I, F any] struct {
	gql    *graphql.Client
	name   string
	plural string
	fields string
}

func newResource[T, I, F any](c *graphql.Client, name, plural, fields string) resource[T, I, F] {
	return resource[T, I, F]{gql: c, name: name, plural: plural, fields: fields}
}

// Paginate returns one window of the filtered list. The returned page never
// holds more than q.Take items and its Total is never below len(Data).
func (r resource[T, I, F]) Paginate(ctx context.Context, q domain.PageQuery, filter F) (domain.Page[T], error) {
	q = q.Normalize()
	field := "getPaginated" + r.plural
	doc := fmt.Sprintf(`query GetPaginated%[1]s($skip: Int!, $take: Int!, $search: String, $filter: %[2]sFilterInput) {
  %[3]s(skip: $skip, take: $take, search: $search, filter: $filter) {
    data { %[4]s }
    total
    skip
    take
  }
}`, r.plural, r.name, field, r.fields)

	vars := map[string]any{"skip": q.Skip, "take": q.Take, "filter": filter}
	if q.Search != "" {
		vars["search"] = q.Search
	}
	page, err := run[domain.Page[T]](ctx, r.gql, "GetPaginated"+r.plural, field, doc, vars, r.name, 0, false)
	if err != nil {
		return domain.Page[T]{}, err
	}
	return clampPage(page, q), nil
}

// All returns the unpaginated list, typically for pickers.
func (r resource[T, I, F]) All(ctx context.Context, filter F) ([]T, error) {
	field := "getAll" + r.plural
	doc := fmt.Sprintf(`query GetAll%[1]s($filter: %[2]sFilterInput) {
  %[3]s(filter: $filter) { %[4]s }
}`, r.plural, r.name, field, r.fields)
	items, err := run[[]T](ctx, r.gql, "GetAll"+r.plural, field, doc, map[string]any{"filter": filter}, r.name, 0, false)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r resource[T, I, F]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	if id <= 0 {
		return zero, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	field := "get" + r.name + "ById"
	doc := fmt.Sprintf(`query Get%[1]s($id: Int!) {
  %[2]s(id: $id) { %[3]s }
}`, r.name, field, r.fields)
	return run[T](ctx, r.gql, "Get"+r.name, field, doc, map[string]any{"id": id}, r.name, id, true)
}

func (r resource[T, I, F]) Create(ctx context.Context, input I) (T, error) {
	field := "create" + r.name
	doc := fmt.Sprintf(`mutation Create%[1]s($input: Create%[1]sInput!) {
  %[2]s(input: $input) { %[3]s }
}`, r.name, field, r.fields)
	return run[T](ctx, r.gql, "Create"+r.name, field, doc, map[string]any{"input": input}, r.name, 0, false)
}

// Update sends only the fields set on input and returns the full entity.
func (r resource[T, I, F]) Update(ctx context.Context, id int64, input I) (T, error) {
	var zero T
	if id <= 0 {
		return zero, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	field := "update" + r.name
	doc := fmt.Sprintf(`mutation Update%[1]s($id: Int!, $input: Update%[1]sInput!) {
  %[2]s(id: $id, input: $input) { %[3]s }
}`, r.name, field, r.fields)
	return run[T](ctx, r.gql, "Update"+r.name, field, doc, map[string]any{"id": id, "input": input}, r.name, id, true)
}

// Delete soft-deletes the entity; the backend keeps it with deletedAt set.
func (r resource[T, I, F]) Delete(ctx context.Context, id int64) (models.Deleted, error) {
	if id <= 0 {
		return models.Deleted{}, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	field := "delete" + r.name
	doc := fmt.Sprintf(`mutation Delete%[1]s($id: Int!) {
  %[2]s(id: $id) { id deletedAt }
}`, r.name, field)
	return run[models.Deleted](ctx, r.gql, "Delete"+r.name, field, doc, map[string]any{"id": id}, r.name, id, true)
}

// run executes one operation and folds the normalized result into the error
// taxonomy: transport failures pass through, Status=false becomes an
// ApplicationError, and a null payload becomes NotFoundError when byID is set.
func run[R any](ctx context.Context, c *graphql.Client, op, field, doc string, vars map[string]any, resourceName string, id int64, byID bool) (R, error) {
	var zero R
	res, err := graphql.Execute[R](ctx, c, graphql.Request{Query: doc, Variables: vars, OperationName: op}, field)
	if err != nil {
		return zero, err
	}
	if res.NotFound {
		if byID {
			return zero, domain.NotFoundError{Resource: resourceName, ID: id}
		}
		return zero, domain.ApplicationError{Operation: op, Msg: res.Message}
	}
	if !res.Status {
		return zero, domain.ApplicationError{Operation: op, Msg: res.Message}
	}
	return res.Data, nil
}

func clampPage[T any](page domain.Page[T], q domain.PageQuery) domain.Page[T] {
	if page.Data == nil {
		page.Data = []T{}
	}
	if len(page.Data) > q.Take {
		page.Data = page.Data[:q.Take]
	}
	if page.Total < len(page.Data) {
		page.Total = len(page.Data)
	}
	page.Skip = q.Skip
	page.Take = q.Take
	return page
}
