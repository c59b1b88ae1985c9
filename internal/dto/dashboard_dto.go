package dto

// StatsResponse carries the account-scoped entity counts for the dashboard.
type StatsResponse struct {
	Vehicles  int64 `json:"vehicles"`
	Suppliers int64 `json:"suppliers"`
}
