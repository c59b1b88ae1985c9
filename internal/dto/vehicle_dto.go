package dto

import "time"

// SaveVehicleRequest is shared by create and update; both carry the full
// field set. Year and odometer ranges are enforced in the service layer,
// which is authoritative for field contracts.
type SaveVehicleRequest struct {
	Plate           string `json:"plate"            validate:"required"`
	Model           string `json:"model"            validate:"required"`
	Year            int    `json:"year"             validate:"required"`
	Type            string `json:"type"             validate:"required"`
	CurrentOdometer int    `json:"current_odometer" validate:"min=0"`
}

type VehicleResponse struct {
	ID              string    `json:"id"`
	Plate           string    `json:"plate"`
	Model           string    `json:"model"`
	Year            int       `json:"year"`
	Type            string    `json:"type"`
	TypeLabel       string    `json:"type_label"`
	CurrentOdometer int       `json:"current_odometer"`
	CreatedAt       time.Time `json:"created_at"`
}
