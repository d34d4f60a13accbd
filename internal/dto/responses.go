package dto

// ListResponse is the envelope for every paginated collection read.
// Count is the size of this page, not a total across all pages.
type ListResponse struct {
	Success bool        `json:"success"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type BulkDeleteFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type BulkDeleteResponse struct {
	Success      bool                `json:"success"`
	DeletedCount int                 `json:"deletedCount"`
	TotalCount   int                 `json:"totalCount"`
	Failures     []BulkDeleteFailure `json:"failures"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	DB          string `json:"db"`
	Collections int    `json:"collections"`
}
