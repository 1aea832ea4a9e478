package dto

// VehicleRequest backs both create and edit forms. Price arrives as the
// formatted currency string the dashboard sends ("R$ 85.000,00"); the
// service parses it to integer cents.
type VehicleRequest struct {
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	Price       string `json:"price"`
	KM          int    `json:"km"`
	Description string `json:"description"`
	IsAvailable *bool  `json:"is_available"`
	ImageURL    string `json:"image_url"`
}
