package dto

import "time"

// SaveSupplierRequest is shared by create and update. Optional fields
// submitted as empty strings are normalized to absent before storage.
type SaveSupplierRequest struct {
	Name    string  `json:"name"    validate:"required"`
	Type    string  `json:"type"    validate:"required"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Address *string `json:"address"`
}

type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	TypeLabel string    `json:"type_label"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
