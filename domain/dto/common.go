package dto

// ListEnvelope wraps paginated list results.
type ListEnvelope struct {
	Total    int64   `json:"total"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}
