package resource

import (
	"context"
	"net/url"

	"github.com/noah-isme/hei-admin-console/internal/api"
	"github.com/noah-isme/hei-admin-console/internal/models"
	"github.com/noah-isme/hei-admin-console/pkg/envelope"
)

// AuditClient reads the backend change history.
type AuditClient struct {
	client *api.Client
}

// NewAuditClient creates an audit client.
func NewAuditClient(client *api.Client) *AuditClient {
	return &AuditClient{client: client}
}

// List returns audit entries matching the filter.
func (c *AuditClient) List(ctx context.Context, filter models.AuditFilter) ([]models.AuditEntry, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "entity_type", filter.EntityType)
	setIf(values, "entity_id", filter.EntityID)
	setIf(values, "action", filter.Action)
	applyListQuery(values, filter.ListQuery)
	return list[models.AuditEntry](ctx, c.client, PathAuditLogs, values)
}
