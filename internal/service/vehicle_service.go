package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GuiCPessoa/Frota-Simples/internal/dto"
	"github.com/GuiCPessoa/Frota-Simples/internal/model"
	"github.com/GuiCPessoa/Frota-Simples/internal/store"
)

type VehicleService interface {
	List(ctx context.Context, principalID uuid.UUID) ([]dto.VehicleResponse, error)
	Get(ctx context.Context, principalID, id uuid.UUID) (*dto.VehicleResponse, error)
	Create(ctx context.Context, principalID uuid.UUID, req dto.SaveVehicleRequest) (*dto.VehicleResponse, error)
	Update(ctx context.Context, principalID, id uuid.UUID, req dto.SaveVehicleRequest) (*dto.VehicleResponse, error)
	Remove(ctx context.Context, principalID, id uuid.UUID) error
}

type vehicleService struct {
	resolver store.Resolver
	vehicles store.Scoped[model.Vehicle]
}

func NewVehicleService(resolver store.Resolver, vehicles store.Scoped[model.Vehicle]) VehicleService {
	return &vehicleService{resolver: resolver, vehicles: vehicles}
}

func (s *vehicleService) List(ctx context.Context, principalID uuid.UUID) ([]dto.VehicleResponse, error) {
	accountID, err := s.resolver.ResolveAccountID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	rows, err := s.vehicles.List(ctx, accountID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VehicleResponse, len(rows))
	for i := range rows {
		resp[i] = *toVehicleResponse(&rows[i])
	}
	return resp, nil
}

func (s *vehicleService) Get(ctx context.Context, principalID, id uuid.UUID) (*dto.VehicleResponse, error) {
	accountID, err := s.resolver.ResolveAccountID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	v, err := s.vehicles.Get(ctx, accountID, id)
	if err != nil {
		return nil, err
	}
	return toVehicleResponse(v), nil
}

func (s *vehicleService) Create(ctx context.Context, principalID uuid.UUID, req dto.SaveVehicleRequest) (*dto.VehicleResponse, error) {
	if err := validateVehicle(req); err != nil {
		return nil, err
	}
	accountID, err := s.resolver.ResolveAccountID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	v := vehicleFromRequest(req)
	if err := s.vehicles.Insert(ctx, accountID, v); err != nil {
		return nil, err
	}
	return toVehicleResponse(v), nil
}

func (s *vehicleService) Update(ctx context.Context, principalID, id uuid.UUID, req dto.SaveVehicleRequest) (*dto.VehicleResponse, error) {
	if err := validateVehicle(req); err != nil {
		return nil, err
	}
	accountID, err := s.resolver.ResolveAccountID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	if err := s.vehicles.Update(ctx, accountID, id, vehicleFromRequest(req)); err != nil {
		return nil, err
	}
	// Read back so the response carries the stored row (id, created_at).
	v, err := s.vehicles.Get(ctx, accountID, id)
	if err != nil {
		return nil, err
	}
	return toVehicleResponse(v), nil
}

func (s *vehicleService) Remove(ctx context.Context, principalID, id uuid.UUID) error {
	accountID, err := s.resolver.ResolveAccountID(ctx, principalID)
	if err != nil {
		return err
	}
	return s.vehicles.Delete(ctx, accountID, id)
}

// validateVehicle enforces the vehicle field contract. It runs before the
// account is resolved, so an invalid draft costs no round trip.
func validateVehicle(req dto.SaveVehicleRequest) error {
	if strings.TrimSpace(req.Plate) == "" {
		return invalid("plate", "Placa é obrigatória")
	}
	if strings.TrimSpace(req.Model) == "" {
		return invalid("model", "Modelo é obrigatório")
	}
	maxYear := time.Now().Year() + 1
	if req.Year < 1990 || req.Year > maxYear {
		return invalid("year", fmt.Sprintf("Ano deve estar entre 1990 e %d", maxYear))
	}
	if req.CurrentOdometer < 0 {
		return invalid("current_odometer", "Hodômetro deve ser maior ou igual a 0")
	}
	if !model.VehicleType(req.Type).Valid() {
		return invalid("type", "Tipo de veículo inválido")
	}
	return nil
}

func vehicleFromRequest(req dto.SaveVehicleRequest) *model.Vehicle {
	return &model.Vehicle{
		Plate:           strings.TrimSpace(req.Plate),
		Model:           strings.TrimSpace(req.Model),
		Year:            req.Year,
		Type:            model.VehicleType(req.Type),
		CurrentOdometer: req.CurrentOdometer,
	}
}

func toVehicleResponse(v *model.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		ID:              v.ID.String(),
		Plate:           v.Plate,
		Model:           v.Model,
		Year:            v.Year,
		Type:            string(v.Type),
		TypeLabel:       v.Type.Label(),
		CurrentOdometer: v.CurrentOdometer,
		CreatedAt:       v.CreatedAt,
	}
}
