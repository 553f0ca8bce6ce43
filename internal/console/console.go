package console

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/hei-admin-console/internal/api"
	"github.com/noah-isme/hei-admin-console/internal/gateway"
	"github.com/noah-isme/hei-admin-console/internal/models"
	"github.com/noah-isme/hei-admin-console/internal/query"
	"github.com/noah-isme/hei-admin-console/internal/resource"
	"github.com/noah-isme/hei-admin-console/pkg/config"
	"github.com/noah-isme/hei-admin-console/pkg/logger"
	"github.com/noah-isme/hei-admin-console/pkg/metrics"
)

// Console is the root of one signed-in session. It owns the shared API
// client, gateway and instrumentation, and hands out page sessions built
// on them. Pages are independent; closing one does not affect the rest.
type Console struct {
	cfg      *config.Config
	logger   *zap.Logger
	recorder *metrics.Recorder
	client   *api.Client
	gateway  *gateway.Gateway
	validate *validator.Validate
}

// New wires a console session from loaded configuration.
func New(cfg *config.Config, tokens api.TokenSource, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	var recorder *metrics.Recorder
	if cfg.Metrics.Enabled {
		recorder = metrics.NewRecorder()
	}
	validate := validator.New()
	client := api.New(cfg, tokens, log, recorder)
	return &Console{
		cfg:      cfg,
		logger:   log,
		recorder: recorder,
		client:   client,
		gateway:  gateway.New(client, validate, log, recorder),
		validate: validate,
	}
}

// Bootstrap loads configuration from the environment and wires a session
// with a logger built from it.
func Bootstrap(tokens api.TokenSource) (*Console, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, err
	}
	return New(cfg, tokens, log), nil
}

// Client exposes the shared API client for resource accessors that pages do
// not cover.
func (c *Console) Client() *api.Client {
	return c.client
}

// Gateway exposes the shared mutation gateway.
func (c *Console) Gateway() *gateway.Gateway {
	return c.gateway
}

// Logger returns the session logger.
func (c *Console) Logger() *zap.Logger {
	return c.logger
}

// MetricsHandler exposes the session's Prometheus registry for scraping.
// Serves 404 when instrumentation is disabled.
func (c *Console) MetricsHandler() http.Handler {
	return c.recorder.Handler()
}

func newController[T any](c *Console, path string) *query.Controller[T] {
	return query.New(resource.NewFetcher[T](c.client, path),
		query.WithPageSize[T](c.cfg.Query.PageSize),
		query.WithDebounce[T](c.cfg.Query.Debounce),
		query.WithLogger[T](c.logger),
	)
}

func newPage[T any](c *Console, path string) *ListPage[T] {
	return NewListPage(newController[T](c, path), c.gateway, path, c.logger)
}

// Employees opens the HR staff list page.
func (c *Console) Employees() *ListPage[models.Employee] {
	return newPage[models.Employee](c, resource.PathEmployees)
}

// OrgUnits opens the organisational unit list page.
func (c *Console) OrgUnits() *ListPage[models.OrgUnit] {
	return newPage[models.OrgUnit](c, resource.PathOrgUnits)
}

// OrgUnitRelations opens the unit relation list page.
func (c *Console) OrgUnitRelations() *ListPage[models.OrgUnitRelation] {
	return newPage[models.OrgUnitRelation](c, resource.PathOrgUnitRelations)
}

// Majors opens the majors list page.
func (c *Console) Majors() *ListPage[models.Major] {
	return newPage[models.Major](c, resource.PathMajors)
}

// Courses opens the course catalogue page.
func (c *Console) Courses() *ListPage[models.Course] {
	return newPage[models.Course](c, resource.PathCourses)
}

// Documents opens the document list page.
func (c *Console) Documents() *ListPage[models.Document] {
	return newPage[models.Document](c, resource.PathDocuments)
}

// DocumentUploader returns the upload client backing the document page's
// upload dialog.
func (c *Console) DocumentUploader() *resource.DocumentClient {
	return resource.NewDocumentClient(c.client, c.validate, c.cfg.Upload)
}

// RolePermissions opens the role and permission administration page.
func (c *Console) RolePermissions() *RolePermissionPage {
	return NewRolePermissionPage(c.client, c.gateway, c.logger, c.cfg.Query.PageSize)
}

// ProgramStructure opens the program structure page.
func (c *Console) ProgramStructure() *ProgramStructurePage {
	return NewProgramStructurePage(resource.NewProgramClient(c.client), c.gateway, c.logger)
}

// AuditLog returns a read-only controller over the audit history.
func (c *Console) AuditLog() *query.Controller[models.AuditEntry] {
	return newController[models.AuditEntry](c, resource.PathAuditLogs)
}
