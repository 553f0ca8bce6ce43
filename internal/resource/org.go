package resource

import (
	"context"
	"net/url"

	"github.com/noah-isme/hei-admin-console/internal/api"
	"github.com/noah-isme/hei-admin-console/internal/models"
	"github.com/noah-isme/hei-admin-console/pkg/envelope"
)

// OrgUnitClient reads organisational units.
type OrgUnitClient struct {
	client *api.Client
}

// NewOrgUnitClient creates an org unit client.
func NewOrgUnitClient(client *api.Client) *OrgUnitClient {
	return &OrgUnitClient{client: client}
}

// List returns org units matching the filter.
func (c *OrgUnitClient) List(ctx context.Context, filter models.OrgUnitFilter) ([]models.OrgUnit, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "type", filter.Type)
	setIf(values, "status", filter.Status)
	setIf(values, "search", filter.Search)
	applyListQuery(values, filter.ListQuery)
	return list[models.OrgUnit](ctx, c.client, PathOrgUnits, values)
}

// Get returns a single org unit.
func (c *OrgUnitClient) Get(ctx context.Context, id string) (*models.OrgUnit, error) {
	return getOne[models.OrgUnit](ctx, c.client, PathOrgUnits+"/"+id)
}

// OrgUnitRelationClient reads parent/child relations between org units.
type OrgUnitRelationClient struct {
	client *api.Client
}

// NewOrgUnitRelationClient creates a relation client.
func NewOrgUnitRelationClient(client *api.Client) *OrgUnitRelationClient {
	return &OrgUnitRelationClient{client: client}
}

// List returns relations matching the filter.
func (c *OrgUnitRelationClient) List(ctx context.Context, filter models.OrgUnitRelationFilter) ([]models.OrgUnitRelation, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "parent_id", filter.ParentID)
	setIf(values, "child_id", filter.ChildID)
	setIf(values, "relation_type", filter.RelationType)
	applyListQuery(values, filter.ListQuery)
	return list[models.OrgUnitRelation](ctx, c.client, PathOrgUnitRelations, values)
}

// CreateOrgUnitRequest captures fields for creating org units.
type CreateOrgUnitRequest struct {
	Code   string `json:"code" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Type   string `json:"type" validate:"required"`
	Status string `json:"status"`
}

// CreateOrgUnitRelationRequest links two org units.
type CreateOrgUnitRelationRequest struct {
	ParentID      string `json:"parent_id" validate:"required"`
	ChildID       string `json:"child_id" validate:"required"`
	RelationType  string `json:"relation_type" validate:"required"`
	EffectiveFrom string `json:"effective_from,omitempty"`
	EffectiveTo   string `json:"effective_to,omitempty"`
}
