package models

// APIResponse is the envelope every managed REST endpoint answers with.
//
// Controllers may return a pre-filled *APIResponse to supply a Result; the
// request pipeline then stamps Status, Code and Message according to the
// outcome of the call.
type APIResponse struct {
	// Status is "SUCCESS" or "ERROR".
	Status string `json:"status"`

	// Code is the numeric application code. Its first three digits are the
	// HTTP status of the response.
	Code int `json:"code"`

	// Message is a human readable description of the outcome.
	Message string `json:"message"`

	// Result holds the endpoint payload. It is an empty object when the
	// endpoint produced no payload or failed.
	Result any `json:"result"`
}

// NewAPIResponse returns an envelope carrying result.
func NewAPIResponse(result any) *APIResponse {
	return &APIResponse{Result: result}
}

// Violation describes a single failed field constraint.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ViolationsResult is the Result of a response rejected by input validation.
type ViolationsResult struct {
	Violations []Violation `json:"violations"`
}

// PageResult is the Result of list endpoints.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Count int `json:"count"`
}

// HealthResult is the Result of the health endpoint.
type HealthResult struct {
	Service  string `json:"service"`
	Instance string `json:"instance"`
	Version  string `json:"version"`
}
