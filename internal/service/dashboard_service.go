package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/GuiCPessoa/Frota-Simples/internal/dto"
	"github.com/GuiCPessoa/Frota-Simples/internal/model"
	"github.com/GuiCPessoa/Frota-Simples/internal/store"
)

type DashboardService interface {
	Stats(ctx context.Context, principalID uuid.UUID) (*dto.StatsResponse, error)
}

type dashboardService struct {
	resolver  store.Resolver
	vehicles  store.Scoped[model.Vehicle]
	suppliers store.Scoped[model.Supplier]
}

func NewDashboardService(resolver store.Resolver, vehicles store.Scoped[model.Vehicle], suppliers store.Scoped[model.Supplier]) DashboardService {
	return &dashboardService{resolver: resolver, vehicles: vehicles, suppliers: suppliers}
}

// Stats returns the account's entity counts via count-only queries; rows are
// never loaded.
func (s *dashboardService) Stats(ctx context.Context, principalID uuid.UUID) (*dto.StatsResponse, error) {
	accountID, err := s.resolver.ResolveAccountID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicles.Count(ctx, accountID)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.suppliers.Count(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{Vehicles: vehicles, Suppliers: suppliers}, nil
}
