// Package adv provides HTTP handlers for the advertisement endpoints.
// It includes handlers for creating, reading, updating and deleting
// advertisements.
package adv

// DetailDTO is the JSON structure of a read response. CreatedAt is formatted
// as an ISO-8601 (RFC 3339) timestamp.
type DetailDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
	CreatedAt   string `json:"created_at"`
}

// CreatedDTO is the JSON structure of a successful creation response.
type CreatedDTO struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

// UpdatedDTO is the JSON structure of a successful update response.
type UpdatedDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
