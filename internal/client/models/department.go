package models

// DepartmentRef is immutable reference data fetched on demand.
type DepartmentRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
