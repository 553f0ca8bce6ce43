package models

import "encoding/json"

// Permission is a single grantable action exposed by the backend. Permission
// names carry a module prefix (for example hr_employee_view).
type Permission struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Resource    string `json:"resource"`
	Description string `json:"description,omitempty"`
}

// Role groups permissions for assignment to accounts.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// RolePermission links a role to a permission.
type RolePermission struct {
	ID           string `json:"id"`
	RoleID       string `json:"role_id"`
	PermissionID string `json:"permission_id"`
}

type rolePermissionWire struct {
	ID              string `json:"id"`
	RoleID          string `json:"role_id"`
	RoleIDCamel     string `json:"roleId"`
	PermissionID    string `json:"permission_id"`
	PermissionCamel string `json:"permissionId"`
}

// UnmarshalJSON normalises the mixed field casings some endpoints emit for
// role-permission rows. Nothing outside this boundary branches on casing.
func (rp *RolePermission) UnmarshalJSON(data []byte) error {
	var w rolePermissionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	rp.ID = w.ID
	rp.RoleID = firstNonEmpty(w.RoleID, w.RoleIDCamel)
	rp.PermissionID = firstNonEmpty(w.PermissionID, w.PermissionCamel)
	return nil
}

// PermissionFilter narrows permission listings.
type PermissionFilter struct {
	Resource string
	Search   string
	ListQuery
}

// RoleFilter narrows role listings.
type RoleFilter struct {
	Status string
	Search string
	ListQuery
}

// RolePermissionFilter narrows role-permission listings.
type RolePermissionFilter struct {
	RoleID       string
	PermissionID string
	ListQuery
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
