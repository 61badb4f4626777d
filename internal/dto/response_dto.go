package dto

// DataResponse is the success envelope.
type DataResponse struct {
	Data any `json:"data"`
}

type PageResponse struct {
	Data   any    `json:"data"`
	Paging Paging `json:"paging"`
}

// ErrorResponse is the failure envelope. Errors is a string, or a list of
// field messages for validation failures.
type ErrorResponse struct {
	Errors any `json:"errors"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
