package resource

import (
	"context"
	"net/url"

	"github.com/noah-isme/hei-admin-console/internal/api"
	"github.com/noah-isme/hei-admin-console/internal/models"
	"github.com/noah-isme/hei-admin-console/pkg/envelope"
)

// EmployeeClient reads HR staff records.
type EmployeeClient struct {
	client *api.Client
}

// NewEmployeeClient creates an employee client.
func NewEmployeeClient(client *api.Client) *EmployeeClient {
	return &EmployeeClient{client: client}
}

// List returns employees matching the filter.
func (c *EmployeeClient) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "org_unit_id", filter.OrgUnitID)
	setIf(values, "status", filter.Status)
	setIf(values, "search", filter.Search)
	applyListQuery(values, filter.ListQuery)
	return list[models.Employee](ctx, c.client, PathEmployees, values)
}

// Get returns a single employee.
func (c *EmployeeClient) Get(ctx context.Context, id string) (*models.Employee, error) {
	return getOne[models.Employee](ctx, c.client, PathEmployees+"/"+id)
}

// CreateEmployeeRequest captures fields for creating employees.
type CreateEmployeeRequest struct {
	Code      string `json:"code" validate:"required"`
	FullName  string `json:"full_name" validate:"required"`
	OrgUnitID string `json:"org_unit_id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
}

// UpdateEmployeeRequest modifies employee fields.
type UpdateEmployeeRequest struct {
	FullName  string `json:"full_name" validate:"required"`
	OrgUnitID string `json:"org_unit_id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
}
