// Package resource provides typed clients for the backend's REST resources.
// Clients cover the read side (list and get); writes go through the
// mutation gateway using the path constants and payload types defined here.
package resource

import (
	"context"
	"net/url"
	"strconv"

	"github.com/noah-isme/hei-admin-console/internal/api"
	"github.com/noah-isme/hei-admin-console/internal/models"
	"github.com/noah-isme/hei-admin-console/internal/query"
	"github.com/noah-isme/hei-admin-console/pkg/envelope"
)

// Resource paths, relative to the API base URL.
const (
	PathPermissions        = "permissions"
	PathRoles              = "roles"
	PathRolePermissions    = "role-permissions"
	PathOrgUnits           = "org-units"
	PathOrgUnitRelations   = "org-unit-relations"
	PathEmployees          = "employees"
	PathMajors             = "majors"
	PathPrograms           = "programs"
	PathProgramBlocks      = "program-blocks"
	PathProgramBlockGroups = "program-block-groups"
	PathProgramCourseMaps  = "program-course-maps"
	PathCourses            = "courses"
	PathCourseVersions     = "course-versions"
	PathCourseSyllabi      = "course-syllabi"
	PathDocuments          = "documents"
	PathAuditLogs          = "audit-logs"
)

// NewFetcher adapts a list endpoint into a query controller fetcher.
func NewFetcher[T any](client *api.Client, path string) query.Fetcher[T] {
	return func(ctx context.Context, params query.Params) ([]T, envelope.Pagination, error) {
		body, err := client.Get(ctx, path, params.Values())
		if err != nil {
			return nil, envelope.Pagination{}, err
		}
		return envelope.DecodeList[T](body)
	}
}

func list[T any](ctx context.Context, client *api.Client, path string, values url.Values) ([]T, envelope.Pagination, error) {
	body, err := client.Get(ctx, path, values)
	if err != nil {
		return nil, envelope.Pagination{}, err
	}
	return envelope.DecodeList[T](body)
}

func getOne[T any](ctx context.Context, client *api.Client, path string) (*T, error) {
	body, err := client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	var out T
	if err := envelope.DecodeInto(body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func setIf(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func applyListQuery(values url.Values, lq models.ListQuery) {
	if lq.Page > 0 {
		values.Set("page", strconv.Itoa(lq.Page))
	}
	if lq.PageSize > 0 {
		values.Set("limit", strconv.Itoa(lq.PageSize))
	}
	if lq.SortBy != "" {
		values.Set("sort", lq.SortBy)
		order := lq.SortOrder
		if order == "" {
			order = models.SortDesc
		}
		values.Set("order", order)
	}
}
