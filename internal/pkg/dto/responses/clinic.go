package responses

import "orca-service/internal/app/models"

type ClinicSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ShareCode   string `json:"shareCode,omitempty"`
	ClinicType  string `json:"clinicType,omitempty"`
	Tier        string `json:"tier,omitempty"`
	CreatedDate string `json:"createdDate,omitempty"`
}

type ClinicDetail struct {
	ClinicSummary
	ClinicSize       string   `json:"clinicSize,omitempty"`
	Address          []string `json:"address,omitempty"`
	Country          string   `json:"country,omitempty"`
	Website          string   `json:"website,omitempty"`
	PhoneNumbers     []string `json:"phoneNumbers,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	PreferredBgUnits string   `json:"preferredBgUnits"`
	TierDescription  string   `json:"tierDescription,omitempty"`
	CanMigrate       bool     `json:"canMigrate"`
	UpdatedDate      string   `json:"updatedDate,omitempty"`
}

type ClinicSearch struct {
	Search  string                `json:"search,omitempty"`
	Results []ClinicSummary       `json:"results"`
	Recent  []models.RecentClinic `json:"recent"`
}
