package model

// SupplierType is a closed set; any other value is rejected at write time.
type SupplierType string

const (
	SupplierFuel   SupplierType = "fuel"
	SupplierRepair SupplierType = "repair"
)

func (t SupplierType) Valid() bool {
	switch t {
	case SupplierFuel, SupplierRepair:
		return true
	}
	return false
}

// Label returns the pt-BR display label for the type.
func (t SupplierType) Label() string {
	switch t {
	case SupplierFuel:
		return "Posto de Combustível"
	case SupplierRepair:
		return "Oficina"
	}
	return string(t)
}

// Supplier is a fuel or repair supplier registered under one account.
// Phone, Email and Address are optional; an empty string submitted by the
// client is normalized to nil before the row is written.
type Supplier struct {
	AccountScoped
	Name    string       `gorm:"not null"`
	Type    SupplierType `gorm:"type:varchar(16);not null"`
	Phone   *string
	Email   *string
	Address *string
}

func (Supplier) TableName() string { return "suppliers" }
