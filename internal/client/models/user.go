// Package models defines client-side data models for the alumni portal.
// JSON tags follow the backend's wire format (Mongo-style "_id" identifiers,
// snake_case field names).
package models

import "encoding/json"

// UserProfile is the authenticated alumni profile as returned by the backend.
type UserProfile struct {
	// ID is the server-assigned identifier.
	ID string `json:"_id"`

	// Name is the alumni's display name.
	Name string `json:"name"`

	// Email is the login identity.
	Email string `json:"email"`

	// Phone is optional contact info.
	Phone string `json:"phone,omitempty"`

	// JobTitle is the alumni's current position, if provided.
	JobTitle string `json:"job_title,omitempty"`

	// Batch is the graduation year.
	Batch string `json:"batch"`

	// Department may arrive as a bare id string or as an embedded object;
	// see DepartmentField.
	Department DepartmentField `json:"department,omitempty"`
}

// DepartmentField holds either a department reference id or an embedded
// DepartmentRef. The backend is inconsistent here: profile payloads sometimes
// embed the populated document and sometimes only its id, so both shapes
// must be accepted.
type DepartmentField struct {
	// ID is always set when the field is present.
	ID string

	// Ref is non-nil only when the server embedded the full object.
	Ref *DepartmentRef
}

// IsRef reports whether only the id is known and a follow-up lookup is
// required to resolve name/code.
func (d DepartmentField) IsRef() bool {
	return d.ID != "" && d.Ref == nil
}

// IsZero reports whether the field was absent from the payload.
func (d DepartmentField) IsZero() bool {
	return d.ID == "" && d.Ref == nil
}

func (d *DepartmentField) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		d.ID = id
		d.Ref = nil
		return nil
	}
	var ref DepartmentRef
	if err := json.Unmarshal(data, &ref); err != nil {
		return err
	}
	d.ID = ref.ID
	d.Ref = &ref
	return nil
}

func (d DepartmentField) MarshalJSON() ([]byte, error) {
	if d.Ref != nil {
		return json.Marshal(d.Ref)
	}
	if d.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(d.ID)
}
