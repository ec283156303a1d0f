package server

// ValidationResponse is the response for the validate endpoint
type ValidationResponse struct {
	Kind       string `json:"kind"`
	Number     string `json:"number"`
	Valid      bool   `json:"valid"`
	Normalized string `json:"normalized,omitempty"`
}

// ActiveResponse is the response for the activity check endpoint
type ActiveResponse struct {
	Active bool `json:"active"`
}

// DecodeResponse is the response for the decode endpoint
type DecodeResponse struct {
	Kind   string `json:"kind"`
	Result any    `json:"result"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Name    string `json:"name,omitempty"`
	Details string `json:"details,omitempty"`
}
