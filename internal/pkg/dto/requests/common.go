package requests

type Pagination struct {
	Page     int
	PageSize int
}

func (p *Pagination) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// ListQuery is what every clinic-scoped list loader forwards to the API.
type ListQuery struct {
	Search string
	Offset int
	Limit  int
}
