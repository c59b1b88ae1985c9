package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehicleTypeClosedSet(t *testing.T) {
	for _, vt := range []VehicleType{VehicleCar, VehicleVan, VehicleMotorcycle, VehicleTruck} {
		assert.True(t, vt.Valid(), "%s deve ser válido", vt)
	}
	assert.False(t, VehicleType("boat").Valid())
	assert.False(t, VehicleType("").Valid())
	assert.False(t, VehicleType("Car").Valid(), "enum é case-sensitive")
}

func TestVehicleTypeLabels(t *testing.T) {
	assert.Equal(t, "Carro", VehicleCar.Label())
	assert.Equal(t, "Van", VehicleVan.Label())
	assert.Equal(t, "Motocicleta", VehicleMotorcycle.Label())
	assert.Equal(t, "Caminhão", VehicleTruck.Label())
	// Unknown values fall back to the raw string instead of panicking.
	assert.Equal(t, "boat", VehicleType("boat").Label())
}

func TestSupplierTypeClosedSet(t *testing.T) {
	assert.True(t, SupplierFuel.Valid())
	assert.True(t, SupplierRepair.Valid())
	assert.False(t, SupplierType("food").Valid())
	assert.False(t, SupplierType("").Valid())
}

func TestSupplierTypeLabels(t *testing.T) {
	assert.Equal(t, "Posto de Combustível", SupplierFuel.Label())
	assert.Equal(t, "Oficina", SupplierRepair.Label())
}

func TestUserRoleClosedSet(t *testing.T) {
	assert.True(t, RoleOwner.Valid())
	assert.True(t, RoleManager.Valid())
	assert.True(t, RoleDriver.Valid())
	assert.False(t, UserRole("admin").Valid())
}
