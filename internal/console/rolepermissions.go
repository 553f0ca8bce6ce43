package console

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/hei-admin-console/internal/api"
	"github.com/noah-isme/hei-admin-console/internal/gateway"
	"github.com/noah-isme/hei-admin-console/internal/grouping"
	"github.com/noah-isme/hei-admin-console/internal/models"
	"github.com/noah-isme/hei-admin-console/internal/query"
	"github.com/noah-isme/hei-admin-console/internal/resource"
	appErrors "github.com/noah-isme/hei-admin-console/pkg/errors"
)

// DefaultModuleOrder is the fixed display order for permission modules.
// Unmatched prefixes collapse into ModuleOther, which always sorts last.
var DefaultModuleOrder = []string{"user", "org", "hr", "tms"}

// ModuleOther is the catch-all bucket for unrecognised module prefixes.
const ModuleOther = "other"

// RolePermissionPage drives the role/permission management screen: three
// lists fetched together, grouped views derived from them, and bulk
// assignment of a resource's permissions to a role.
type RolePermissionPage struct {
	mu          sync.Mutex
	roles       *query.Controller[models.Role]
	permissions *query.Controller[models.Permission]
	assignments *query.Controller[models.RolePermission]
	gateway     *gateway.Gateway
	logger      *zap.Logger
	dialog      Dialog
	banner      string
}

// NewRolePermissionPage wires the page against the API client.
func NewRolePermissionPage(client *api.Client, gw *gateway.Gateway, logger *zap.Logger, pageSize int) *RolePermissionPage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RolePermissionPage{
		roles: query.New(resource.NewFetcher[models.Role](client, resource.PathRoles),
			query.WithPageSize[models.Role](pageSize)),
		permissions: query.New(resource.NewFetcher[models.Permission](client, resource.PathPermissions),
			query.WithPageSize[models.Permission](pageSize)),
		assignments: query.New(resource.NewFetcher[models.RolePermission](client, resource.PathRolePermissions),
			query.WithPageSize[models.RolePermission](pageSize)),
		gateway: gw,
		logger:  logger,
	}
}

// Mount fetches roles, permissions and assignments concurrently and joins
// before the page is considered ready, avoiding sequential round trips.
func (p *RolePermissionPage) Mount(ctx context.Context) {
	var wg sync.WaitGroup
	for _, refetch := range []func(context.Context){
		p.roles.Refetch,
		p.permissions.Refetch,
		p.assignments.Refetch,
	} {
		wg.Add(1)
		go func(refetch func(context.Context)) {
			defer wg.Done()
			refetch(ctx)
		}(refetch)
	}
	wg.Wait()
}

// Roles exposes the role list controller.
func (p *RolePermissionPage) Roles() *query.Controller[models.Role] {
	return p.roles
}

// Permissions exposes the permission list controller.
func (p *RolePermissionPage) Permissions() *query.Controller[models.Permission] {
	return p.permissions
}

// Assignments exposes the role-permission list controller.
func (p *RolePermissionPage) Assignments() *query.Controller[models.RolePermission] {
	return p.assignments
}

// PermissionsByModule projects the fetched permissions into module groups
// in the fixed display order, each group sorted by resource then name.
func (p *RolePermissionPage) PermissionsByModule() grouping.Grouped[models.Permission] {
	items := p.permissions.Snapshot().Items
	grouped := grouping.GroupByPriority(items, func(perm models.Permission) string {
		return grouping.ModuleOf(perm.Name, DefaultModuleOrder, ModuleOther)
	}, DefaultModuleOrder, ModuleOther)
	grouped.SortWithin(func(a, b models.Permission) bool {
		if a.Resource != b.Resource {
			return a.Resource < b.Resource
		}
		return a.Name < b.Name
	})
	return grouped
}

// AssignmentsByRole projects assignments grouped by role id, preserving the
// backend's row order within each role.
func (p *RolePermissionPage) AssignmentsByRole() grouping.Grouped[models.RolePermission] {
	return grouping.GroupBy(p.assignments.Snapshot().Items, func(rp models.RolePermission) string {
		return rp.RoleID
	})
}

// AssignmentsByResource projects one role's assignments grouped by the
// resource of the referenced permission. Assignments whose permission is
// not in the fetched set land under ModuleOther rather than disappearing.
func (p *RolePermissionPage) AssignmentsByResource(roleID string) grouping.Grouped[models.RolePermission] {
	byID := make(map[string]models.Permission)
	for _, perm := range p.permissions.Snapshot().Items {
		byID[perm.ID] = perm
	}

	var assigned []models.RolePermission
	for _, rp := range p.assignments.Snapshot().Items {
		if rp.RoleID == roleID {
			assigned = append(assigned, rp)
		}
	}

	return grouping.GroupBy(assigned, func(rp models.RolePermission) string {
		if perm, ok := byID[rp.PermissionID]; ok && perm.Resource != "" {
			return perm.Resource
		}
		return ModuleOther
	})
}

// AssignResourceToRole assigns every not-yet-assigned permission of the
// given resource to the role, one request per permission. Partial failures
// are reported as a count; the succeeded subset stays assigned.
func (p *RolePermissionPage) AssignResourceToRole(ctx context.Context, roleID, resourceName string) gateway.BatchResult {
	already := make(map[string]bool)
	for _, rp := range p.assignments.Snapshot().Items {
		if rp.RoleID == roleID {
			already[rp.PermissionID] = true
		}
	}

	var payloads []any
	for _, perm := range p.permissions.Snapshot().Items {
		if perm.Resource != resourceName || already[perm.ID] {
			continue
		}
		payloads = append(payloads, resource.AssignPermissionRequest{
			RoleID:       roleID,
			PermissionID: perm.ID,
		})
	}

	result := p.gateway.BulkCreate(ctx, resource.PathRolePermissions, payloads)

	p.mu.Lock()
	if err := result.Err(); err != nil {
		p.banner = appErrors.FromError(err).Message
	} else {
		p.banner = ""
		p.dialog.Close()
	}
	p.mu.Unlock()

	if result.Succeeded > 0 {
		p.assignments.Refetch(ctx)
	}
	return result
}

// RequestUnassign shows the confirm dialog for removing an assignment.
func (p *RolePermissionPage) RequestUnassign(assignmentID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog.Show(ModeConfirmDelete, assignmentID)
}

// ConfirmUnassign affirms the open confirm dialog and removes the
// assignment. With no confirmation recorded, nothing is sent.
func (p *RolePermissionPage) ConfirmUnassign(ctx context.Context) error {
	p.mu.Lock()
	confirm := p.dialog.Confirm()
	targetID := p.dialog.TargetID()
	p.mu.Unlock()

	err := p.gateway.Delete(ctx, resource.PathRolePermissions, targetID, confirm)

	p.mu.Lock()
	if err != nil {
		p.banner = appErrors.FromError(err).Message
		p.mu.Unlock()
		return err
	}
	p.banner = ""
	p.dialog.Close()
	p.mu.Unlock()

	p.assignments.Refetch(ctx)
	return nil
}

// OpenBulkAssign shows the bulk-assign dialog.
func (p *RolePermissionPage) OpenBulkAssign() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog.Show(ModeBulk, "")
}

// Dialog returns the current dialog state.
func (p *RolePermissionPage) Dialog() Dialog {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dialog
}

// CloseDialog dismisses the open dialog.
func (p *RolePermissionPage) CloseDialog() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog.Close()
}

// Banner returns the page-level error message.
func (p *RolePermissionPage) Banner() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.banner
}

// DismissBanner clears the page-level error message.
func (p *RolePermissionPage) DismissBanner() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.banner = ""
}

// Close tears down all three controllers.
func (p *RolePermissionPage) Close() {
	p.roles.Close()
	p.permissions.Close()
	p.assignments.Close()
}
