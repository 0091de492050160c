package service

import (
	"context"

	"superstar/internal/domain"
	"superstar/internal/repository"
)

// DeliveryService справочник служб доставки и статистика по ним
type DeliveryService struct {
	store *OrderStore
}

func NewDeliveryService(store *OrderStore) *DeliveryService {
	return &DeliveryService{store: store}
}

func (s *DeliveryService) List(_ context.Context) []domain.DeliveryCompany {
	return domain.DeliveryCompanies()
}

func (s *DeliveryService) Get(_ context.Context, id domain.DeliveryCompanyID) (*domain.DeliveryCompany, error) {
	c, ok := domain.LookupDeliveryCompany(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (s *DeliveryService) Statistics(_ context.Context) []domain.CompanyStat {
	return s.store.DeliveryStatistics()
}
