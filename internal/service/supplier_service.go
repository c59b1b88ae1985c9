package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/GuiCPessoa/Frota-Simples/internal/dto"
	"github.com/GuiCPessoa/Frota-Simples/internal/model"
	"github.com/GuiCPessoa/Frota-Simples/internal/store"
)

var validate = validator.New()

type SupplierService interface {
	List(ctx context.Context, principalID uuid.UUID) ([]dto.SupplierResponse, error)
	Get(ctx context.Context, principalID, id uuid.UUID) (*dto.SupplierResponse, error)
	Create(ctx context.Context, principalID uuid.UUID, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error)
	Update(ctx context.Context, principalID, id uuid.UUID, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error)
	Remove(ctx context.Context, principalID, id uuid.UUID) error
}

type supplierService struct {
	resolver  store.Resolver
	suppliers store.Scoped[model.Supplier]
}

func NewSupplierService(resolver store.Resolver, suppliers store.Scoped[model.Supplier]) SupplierService {
	return &supplierService{resolver: resolver, suppliers: suppliers}
}

func (s *supplierService) List(ctx context.Context, principalID uuid.UUID) ([]dto.SupplierResponse, error) {
	accountID, err := s.resolver.ResolveAccountID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	rows, err := s.suppliers.List(ctx, accountID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SupplierResponse, len(rows))
	for i := range rows {
		resp[i] = *toSupplierResponse(&rows[i])
	}
	return resp, nil
}

func (s *supplierService) Get(ctx context.Context, principalID, id uuid.UUID) (*dto.SupplierResponse, error) {
	accountID, err := s.resolver.ResolveAccountID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	sup, err := s.suppliers.Get(ctx, accountID, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(sup), nil
}

func (s *supplierService) Create(ctx context.Context, principalID uuid.UUID, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error) {
	if err := validateSupplier(req); err != nil {
		return nil, err
	}
	accountID, err := s.resolver.ResolveAccountID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	sup := supplierFromRequest(req)
	if err := s.suppliers.Insert(ctx, accountID, sup); err != nil {
		return nil, err
	}
	return toSupplierResponse(sup), nil
}

func (s *supplierService) Update(ctx context.Context, principalID, id uuid.UUID, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error) {
	if err := validateSupplier(req); err != nil {
		return nil, err
	}
	accountID, err := s.resolver.ResolveAccountID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	if err := s.suppliers.Update(ctx, accountID, id, supplierFromRequest(req)); err != nil {
		return nil, err
	}
	sup, err := s.suppliers.Get(ctx, accountID, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(sup), nil
}

func (s *supplierService) Remove(ctx context.Context, principalID, id uuid.UUID) error {
	accountID, err := s.resolver.ResolveAccountID(ctx, principalID)
	if err != nil {
		return err
	}
	return s.suppliers.Delete(ctx, accountID, id)
}

// validateSupplier enforces the supplier field contract. Email is only
// checked when present after normalization; omitted and empty-string
// submissions are both valid absences.
func validateSupplier(req dto.SaveSupplierRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return invalid("name", "Nome é obrigatório")
	}
	if !model.SupplierType(req.Type).Valid() {
		return invalid("type", "Tipo de fornecedor inválido")
	}
	if email := normalizeOptional(req.Email); email != nil {
		if err := validate.Var(*email, "email"); err != nil {
			return invalid("email", "Email inválido")
		}
	}
	return nil
}

func supplierFromRequest(req dto.SaveSupplierRequest) *model.Supplier {
	return &model.Supplier{
		Name:    strings.TrimSpace(req.Name),
		Type:    model.SupplierType(req.Type),
		Phone:   normalizeOptional(req.Phone),
		Email:   normalizeOptional(req.Email),
		Address: normalizeOptional(req.Address),
	}
}

func toSupplierResponse(sup *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        sup.ID.String(),
		Name:      sup.Name,
		Type:      string(sup.Type),
		TypeLabel: sup.Type.Label(),
		Phone:     sup.Phone,
		Email:     sup.Email,
		Address:   sup.Address,
		CreatedAt: sup.CreatedAt,
	}
}
