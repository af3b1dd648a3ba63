package dto

// UpdateConfigurationRequest payload for the application settings record.
type UpdateConfigurationRequest struct {
	BackgroundColor string `json:"background_color" validate:"required,hexcolor"`
}
