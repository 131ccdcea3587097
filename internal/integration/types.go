package integration

import "code-refactor-insight/internal/model"

// Document is the integration description served to the Telex platform.
type Document struct {
	Data Data `json:"data"`
}

type Data struct {
	Date                Date            `json:"date"`
	Descriptions        Descriptions    `json:"descriptions"`
	IsActive            bool            `json:"is_active"`
	IntegrationType     string          `json:"integration_type"`
	IntegrationCategory string          `json:"integration_category"`
	KeyFeatures         []string        `json:"key_features"`
	Author              string          `json:"author"`
	Settings            []model.Setting `json:"settings"`
	TargetURL           string          `json:"target_url"`
	TickURL             string          `json:"tick_url"`
}

type Date struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Descriptions struct {
	AppName         string `json:"app_name"`
	AppDescription  string `json:"app_description"`
	AppLogo         string `json:"app_logo"`
	AppURL          string `json:"app_url"`
	BackgroundColor string `json:"background_color"`
}
