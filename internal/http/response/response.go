// Package response provides the JSON envelope shared by every API response.
package response

// Envelope provides a consistent JSON response structure. Success
// responses carry their payload in Data; error responses carry the
// message in Error, the machine-readable Code, and optional per-field
// detail in Data.
type Envelope struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}
