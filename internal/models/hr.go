package models

import "time"

// Employee is a staff record managed by the HR module.
type Employee struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	FullName  string     `json:"full_name"`
	OrgUnitID string     `json:"org_unit_id,omitempty"`
	Title     string     `json:"title,omitempty"`
	Status    string     `json:"status,omitempty"`
	HiredAt   *time.Time `json:"hired_at,omitempty"`
}

// EmployeeFilter narrows employee listings.
type EmployeeFilter struct {
	OrgUnitID string
	Status    string
	Search    string
	ListQuery
}
