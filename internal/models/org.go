package models

import "time"

// OrgUnit is an organisational node: faculty, department, office.
type OrgUnit struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status,omitempty"`
}

// OrgUnitRelation links two org units with a typed relation over an
// effective date range. ParentID is empty for root declarations.
type OrgUnitRelation struct {
	ID            string     `json:"id"`
	ParentID      string     `json:"parent_id"`
	ChildID       string     `json:"child_id"`
	RelationType  string     `json:"relation_type"`
	EffectiveFrom *time.Time `json:"effective_from,omitempty"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
}

// OrgUnitFilter narrows org unit listings.
type OrgUnitFilter struct {
	Type   string
	Status string
	Search string
	ListQuery
}

// OrgUnitRelationFilter narrows relation listings.
type OrgUnitRelationFilter struct {
	ParentID     string
	ChildID      string
	RelationType string
	ListQuery
}
