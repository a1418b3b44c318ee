package rest

// ErrorResponse is the JSON body returned for request-level failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
