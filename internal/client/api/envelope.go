package api

// Pagination describes the server's paging metadata. The client performs
// no clamping; out-of-range pages return whatever the server defines.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalCount  int `json:"totalCount"`
}

// Envelope is the {success, data, message} wrapper shape returned by every
// API call.
type Envelope[T any] struct {
	Success    bool        `json:"success"`
	Data       T           `json:"data"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// errEnvelope is the shape decoded from non-2xx responses.
type errEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}
