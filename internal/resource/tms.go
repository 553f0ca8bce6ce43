package resource

import (
	"context"
	"net/url"

	"github.com/noah-isme/hei-admin-console/internal/api"
	"github.com/noah-isme/hei-admin-console/internal/models"
	"github.com/noah-isme/hei-admin-console/pkg/envelope"
)

// MajorClient reads majors.
type MajorClient struct {
	client *api.Client
}

// NewMajorClient creates a major client.
func NewMajorClient(client *api.Client) *MajorClient {
	return &MajorClient{client: client}
}

// List returns majors matching the filter.
func (c *MajorClient) List(ctx context.Context, filter models.MajorFilter) ([]models.Major, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "status", filter.Status)
	setIf(values, "search", filter.Search)
	applyListQuery(values, filter.ListQuery)
	return list[models.Major](ctx, c.client, PathMajors, values)
}

// ProgramClient reads programs and their structural pieces.
type ProgramClient struct {
	client *api.Client
}

// NewProgramClient creates a program client.
func NewProgramClient(client *api.Client) *ProgramClient {
	return &ProgramClient{client: client}
}

// List returns programs matching the filter.
func (c *ProgramClient) List(ctx context.Context, filter models.ProgramFilter) ([]models.Program, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "major_id", filter.MajorID)
	setIf(values, "status", filter.Status)
	setIf(values, "search", filter.Search)
	applyListQuery(values, filter.ListQuery)
	return list[models.Program](ctx, c.client, PathPrograms, values)
}

// Get returns a single program.
func (c *ProgramClient) Get(ctx context.Context, id string) (*models.Program, error) {
	return getOne[models.Program](ctx, c.client, PathPrograms+"/"+id)
}

// Blocks returns the blocks of a program.
func (c *ProgramClient) Blocks(ctx context.Context, programID string) ([]models.ProgramBlock, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "program_id", programID)
	return list[models.ProgramBlock](ctx, c.client, PathProgramBlocks, values)
}

// BlockGroups returns the block groups of a program.
func (c *ProgramClient) BlockGroups(ctx context.Context, programID string) ([]models.ProgramBlockGroup, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "program_id", programID)
	return list[models.ProgramBlockGroup](ctx, c.client, PathProgramBlockGroups, values)
}

// CourseMaps returns the course placements of a program.
func (c *ProgramClient) CourseMaps(ctx context.Context, programID string) ([]models.ProgramCourseMap, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "program_id", programID)
	return list[models.ProgramCourseMap](ctx, c.client, PathProgramCourseMaps, values)
}

// CourseClient reads courses, versions and syllabi.
type CourseClient struct {
	client *api.Client
}

// NewCourseClient creates a course client.
func NewCourseClient(client *api.Client) *CourseClient {
	return &CourseClient{client: client}
}

// List returns courses matching the filter.
func (c *CourseClient) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "status", filter.Status)
	setIf(values, "search", filter.Search)
	applyListQuery(values, filter.ListQuery)
	return list[models.Course](ctx, c.client, PathCourses, values)
}

// Versions returns the versions of a course.
func (c *CourseClient) Versions(ctx context.Context, courseID string) ([]models.CourseVersion, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "course_id", courseID)
	return list[models.CourseVersion](ctx, c.client, PathCourseVersions, values)
}

// Syllabi returns syllabi matching the filter.
func (c *CourseClient) Syllabi(ctx context.Context, filter models.SyllabusFilter) ([]models.CourseSyllabus, envelope.Pagination, error) {
	values := url.Values{}
	setIf(values, "version_id", filter.VersionID)
	if filter.Current != nil {
		if *filter.Current {
			values.Set("is_current", "true")
		} else {
			values.Set("is_current", "false")
		}
	}
	applyListQuery(values, filter.ListQuery)
	return list[models.CourseSyllabus](ctx, c.client, PathCourseSyllabi, values)
}

// CreateCourseRequest captures fields for creating courses.
type CreateCourseRequest struct {
	Code    string `json:"code" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Credits int    `json:"credits" validate:"gte=0"`
	Status  string `json:"status"`
}

// CreateProgramRequest captures fields for creating programs.
type CreateProgramRequest struct {
	MajorID string `json:"major_id" validate:"required"`
	Code    string `json:"code" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Status  string `json:"status"`
}

// CreateBlockGroupRequest adds a group inside a program block.
type CreateBlockGroupRequest struct {
	BlockID  string `json:"block_id" validate:"required"`
	ParentID string `json:"parent_id,omitempty"`
	Name     string `json:"name" validate:"required"`
	Position int    `json:"position,omitempty"`
}

// MapCourseRequest places a course inside a block group.
type MapCourseRequest struct {
	GroupID  string `json:"group_id" validate:"required"`
	CourseID string `json:"course_id" validate:"required"`
	Required bool   `json:"required"`
}
