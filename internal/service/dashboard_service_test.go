package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuiCPessoa/Frota-Simples/internal/model"
	"github.com/GuiCPessoa/Frota-Simples/internal/store"
)

func TestDashboardStatsAreAccountScoped(t *testing.T) {
	identity := newStubIdentity()
	vehicles := newStubScoped[model.Vehicle]()
	suppliers := newStubScoped[model.Supplier]()
	svc := NewDashboardService(identity, vehicles, suppliers)

	accountA := uuid.New()
	accountB := uuid.New()
	ownerA := identity.provision(accountA, "a@frota.com")
	ownerB := identity.provision(accountB, "b@frota.com")

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, vehicles.Insert(ctx, accountA, &model.Vehicle{Plate: "AAA0A00", Model: "Fiorino", Year: 2020, Type: model.VehicleVan}))
	}
	require.NoError(t, vehicles.Insert(ctx, accountB, &model.Vehicle{Plate: "BBB0B00", Model: "Strada", Year: 2021, Type: model.VehicleCar}))
	require.NoError(t, suppliers.Insert(ctx, accountA, &model.Supplier{Name: "Posto Ipiranga", Type: model.SupplierFuel}))

	statsA, err := svc.Stats(ctx, ownerA)
	require.NoError(t, err)
	assert.Equal(t, int64(3), statsA.Vehicles)
	assert.Equal(t, int64(1), statsA.Suppliers)

	statsB, err := svc.Stats(ctx, ownerB)
	require.NoError(t, err)
	assert.Equal(t, int64(1), statsB.Vehicles)
	assert.Equal(t, int64(0), statsB.Suppliers)
}

func TestDashboardStatsUnprovisioned(t *testing.T) {
	identity := newStubIdentity()
	svc := NewDashboardService(identity, newStubScoped[model.Vehicle](), newStubScoped[model.Supplier]())

	_, err := svc.Stats(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrUnprovisioned)
}
