package responses

type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Toast      *Toast      `json:"toast,omitempty"`
}

type Pagination struct {
	Total    int    `json:"total,omitempty"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	NextURL  string `json:"next_url,omitempty"`
	PrevURL  string `json:"prev_url,omitempty"`
}

const (
	ToastTypeError   = "error"
	ToastTypeSuccess = "success"
)

// Toast is a transient notification carried over a redirect in the flash cookie.
type Toast struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
