package requests

type DataExport struct {
	UserID    string `json:"-" form:"-" validate:"required,tidepool_id"`
	Format    string `json:"format" form:"format" validate:"required,export_format"`
	BGUnits   string `json:"bgUnits" form:"bgUnits" validate:"omitempty,bg_units"`
	StartDate string `json:"startDate" form:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate" form:"endDate" validate:"omitempty,datetime=2006-01-02"`
}
