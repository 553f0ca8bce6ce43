package resource

import (
	"context"
	"net/url"

	"github.com/noah-isme/hei-admin-console/internal/api"
	"github.com/noah-isme/hei-admin-console/internal/models"
	"github.com/noah-isme/hei-admin-console/pkg/envelope"
)

// PermissionClient reads the permission catalogue.
type PermissionClient struct {
	client *api.Client
}

// NewPermissionClient creates a permission client.
func NewPermissionClient(client *api.Client) *PermissionClient {
	return &PermissionClient{client: client}
}

// List returns permissions matching the filter.
func (c *PermissionClient) List(ctx context.Context, filter models.PermissionFilter) ([]models.Permission, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "resource", filter.Resource)
	setIf(values, "search", filter.Search)
	applyListQuery(values, filter.ListQuery)
	return list[models.Permission](ctx, c.client, PathPermissions, values)
}

// RoleClient reads roles.
type RoleClient struct {
	client *api.Client
}

// NewRoleClient creates a role client.
func NewRoleClient(client *api.Client) *RoleClient {
	return &RoleClient{client: client}
}

// List returns roles matching the filter.
func (c *RoleClient) List(ctx context.Context, filter models.RoleFilter) ([]models.Role, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "status", filter.Status)
	setIf(values, "search", filter.Search)
	applyListQuery(values, filter.ListQuery)
	return list[models.Role](ctx, c.client, PathRoles, values)
}

// Get returns a single role.
func (c *RoleClient) Get(ctx context.Context, id string) (*models.Role, error) {
	return getOne[models.Role](ctx, c.client, PathRoles+"/"+id)
}

// RolePermissionClient reads role-permission assignments.
type RolePermissionClient struct {
	client *api.Client
}

// NewRolePermissionClient creates a role-permission client.
func NewRolePermissionClient(client *api.Client) *RolePermissionClient {
	return &RolePermissionClient{client: client}
}

// List returns assignments matching the filter.
func (c *RolePermissionClient) List(ctx context.Context, filter models.RolePermissionFilter) ([]models.RolePermission, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "role_id", filter.RoleID)
	setIf(values, "permission_id", filter.PermissionID)
	applyListQuery(values, filter.ListQuery)
	return list[models.RolePermission](ctx, c.client, PathRolePermissions, values)
}

// CreateRoleRequest captures fields for creating roles.
type CreateRoleRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateRoleRequest modifies role fields.
type UpdateRoleRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// AssignPermissionRequest links one permission to a role. Bulk assignment
// fans this payload out one request per permission.
type AssignPermissionRequest struct {
	RoleID       string `json:"role_id" validate:"required"`
	PermissionID string `json:"permission_id" validate:"required"`
}
