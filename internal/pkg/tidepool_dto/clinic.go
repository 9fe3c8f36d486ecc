package tidepool_dto

type Clinic struct {
	ID               string        `json:"id" validate:"required"`
	ShareCode        string        `json:"shareCode,omitempty"`
	Name             string        `json:"name" validate:"required"`
	ClinicType       string        `json:"clinicType,omitempty"`
	ClinicSize       string        `json:"clinicSize,omitempty"`
	Address          string        `json:"address,omitempty"`
	City             string        `json:"city,omitempty"`
	State            string        `json:"state,omitempty"`
	PostalCode       string        `json:"postalCode,omitempty"`
	Country          string        `json:"country,omitempty"`
	Website          string        `json:"website,omitempty"`
	PhoneNumbers     []PhoneNumber `json:"phoneNumbers,omitempty"`
	PatientTags      []PatientTag  `json:"patientTags,omitempty" validate:"dive"`
	PreferredBgUnits string        `json:"preferredBgUnits,omitempty"`
	Tier             string        `json:"tier,omitempty"`
	TierDescription  string        `json:"tierDescription,omitempty"`
	CanMigrate       bool          `json:"canMigrate"`
	CreatedTime      string        `json:"createdTime,omitempty"`
	UpdatedTime      string        `json:"updatedTime,omitempty"`
}

type PhoneNumber struct {
	Type   string `json:"type,omitempty"`
	Number string `json:"number"`
}

type PatientTag struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

// TagNames resolves patient tag ids against the clinic's tag list. Unknown ids
// are returned as-is so a stale tag is still visible.
func (c *Clinic) TagNames(tagIDs []string) []string {
	if len(tagIDs) == 0 {
		return nil
	}

	byID := make(map[string]string, len(c.PatientTags))
	for _, tag := range c.PatientTags {
		byID[tag.ID] = tag.Name
	}

	names := make([]string, 0, len(tagIDs))
	for _, id := range tagIDs {
		if name, ok := byID[id]; ok {
			names = append(names, name)
			continue
		}
		names = append(names, id)
	}
	return names
}
