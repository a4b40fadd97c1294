package models

// Announcement is immutable once created; there are no update or delete
// operations on the API.
type Announcement struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
	Author      *Author `json:"author,omitempty"`
}

// Author is the embedded announcement author summary. All fields except
// Name are optional on the wire.
type Author struct {
	ID         string          `json:"_id"`
	Name       string          `json:"name"`
	JobTitle   string          `json:"job_title,omitempty"`
	Batch      string          `json:"batch,omitempty"`
	Department DepartmentField `json:"department,omitempty"`
}

// NewAnnouncement is the payload for creating an announcement.
type NewAnnouncement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
