package dto

// CreateNameRequest is the payload for creating a category or tag.
type CreateNameRequest struct {
	Name string `json:"name"`
}

// ValidationFailureResponse is returned when a submitted name fails
// validation. Errors carries the human-readable messages.
type ValidationFailureResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
