package model

// Track is the reduced shape a catalog entry is mapped into before it is
// returned to the caller. Fields the upstream payload may omit are pointers
// so that absence serializes as JSON null instead of a fabricated default.
type Track struct {
	Name        string   `json:"name"`
	Artists     []string `json:"artists"`
	Album       *string  `json:"album"`
	URI         *string  `json:"uri"`
	ExternalURL *string  `json:"external_urls"`
	CoverImage  *string  `json:"cover_image"`
}

// SearchResponse is the success envelope for a search that matched tracks.
type SearchResponse struct {
	Tracks []Track `json:"tracks"`
}

// MessageResponse is the success envelope for a search that matched nothing.
// Callers discriminate on which key is present, not on the HTTP status.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the envelope for every error the gateway reports.
type ErrorResponse struct {
	Error string `json:"error"`
}
