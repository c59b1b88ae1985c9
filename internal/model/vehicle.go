package model

// VehicleType is a closed set; any other value is rejected at write time.
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleVan        VehicleType = "van"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleTruck      VehicleType = "truck"
)

func (t VehicleType) Valid() bool {
	switch t {
	case VehicleCar, VehicleVan, VehicleMotorcycle, VehicleTruck:
		return true
	}
	return false
}

// Label returns the pt-BR display label for the type.
func (t VehicleType) Label() string {
	switch t {
	case VehicleCar:
		return "Carro"
	case VehicleVan:
		return "Van"
	case VehicleMotorcycle:
		return "Motocicleta"
	case VehicleTruck:
		return "Caminhão"
	}
	return string(t)
}

// Vehicle is a fleet vehicle registered under one account.
type Vehicle struct {
	AccountScoped
	Plate           string      `gorm:"size:20;not null"`
	Model           string      `gorm:"size:80;not null"`
	Year            int         `gorm:"not null"`
	Type            VehicleType `gorm:"type:varchar(16);not null"`
	CurrentOdometer int         `gorm:"not null;default:0"`
}

func (Vehicle) TableName() string { return "vehicles" }
