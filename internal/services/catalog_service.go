package services

import (
	"context"
	"fmt"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/models"
	"schooladmin/internal/utils"
)

// CatalogService manages the service catalog. Lists travel as
// models.StringList in reads and as their encoded string in writes.
type CatalogService struct {
	Services  serviceStore
	RequestID string
}

func (s CatalogService) Paginate(ctx context.Context, q domain.PageQuery, f models.ServiceFilter) (domain.Page[models.Service], error) {
	return s.Services.Paginate(ctx, q, f)
}

func (s CatalogService) All(ctx context.Context, f models.ServiceFilter) ([]models.Service, error) {
	return s.Services.All(ctx, f)
}

func (s CatalogService) Active(ctx context.Context) ([]models.Service, error) {
	active := models.ServiceActive
	return s.Services.All(ctx, models.ServiceFilter{Status: &active})
}

func (s CatalogService) Get(ctx context.Context, id int64) (models.Service, error) {
	return s.Services.Get(ctx, id)
}

func (s CatalogService) Create(ctx context.Context, in models.ServiceInput) (models.Service, error) {
	if err := checkEncodedList("features", in.Features); err != nil {
		return models.Service{}, err
	}
	if err := checkEncodedList("includedServices", in.IncludedServices); err != nil {
		return models.Service{}, err
	}
	if in.Features == nil {
		empty := models.StringList(nil).Encode()
		in.Features = &empty
	}
	if in.IncludedServices == nil {
		empty := models.StringList(nil).Encode()
		in.IncludedServices = &empty
	}
	svc, err := s.Services.Create(ctx, in)
	if err != nil {
		return models.Service{}, err
	}
	utils.LogEvent(s.RequestID, "catalog", "create", fmt.Sprintf("service_id=%d features=%d", svc.ID, len(svc.Features)))
	return svc, nil
}

func (s CatalogService) Update(ctx context.Context, id int64, in models.ServiceInput) (models.Service, error) {
	if err := checkEncodedList("features", in.Features); err != nil {
		return models.Service{}, err
	}
	if err := checkEncodedList("includedServices", in.IncludedServices); err != nil {
		return models.Service{}, err
	}
	return s.Services.Update(ctx, id, in)
}

func (s CatalogService) Delete(ctx context.Context, id int64) (models.Deleted, error) {
	return s.Services.Delete(ctx, id)
}

func checkEncodedList(field string, raw *string) error {
	if raw == nil {
		return nil
	}
	if _, err := models.ParseStringList(*raw); err != nil {
		return domain.ValidationError{Field: field, Msg: "must be a list of strings", Err: err}
	}
	return nil
}
