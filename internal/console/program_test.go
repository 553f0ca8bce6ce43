package console

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/hei-admin-console/internal/api"
	"github.com/noah-isme/hei-admin-console/internal/gateway"
	"github.com/noah-isme/hei-admin-console/internal/models"
	"github.com/noah-isme/hei-admin-console/internal/resource"
	"github.com/noah-isme/hei-admin-console/pkg/config"
)

type programBackend struct {
	mu     sync.Mutex
	blocks []models.ProgramBlock
	groups []models.ProgramBlockGroup
	maps   []models.ProgramCourseMap
}

func (b *programBackend) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/program-blocks", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(200, listBody(b.blocks, len(b.blocks)))
	})
	router.GET("/program-block-groups", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(200, listBody(b.groups, len(b.groups)))
	})
	router.GET("/program-course-maps", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(200, listBody(b.maps, len(b.maps)))
	})
	router.POST("/program-block-groups", func(c *gin.Context) {
		var req struct {
			BlockID  string `json:"block_id"`
			ParentID string `json:"parent_id"`
			Name     string `json:"name"`
		}
		_ = c.ShouldBindJSON(&req)
		b.mu.Lock()
		defer b.mu.Unlock()
		group := models.ProgramBlockGroup{ID: "g-new", BlockID: req.BlockID, ParentID: req.ParentID, Name: req.Name}
		b.groups = append(b.groups, group)
		c.JSON(201, gin.H{"success": true, "data": group})
	})
	router.DELETE("/program-block-groups/:id", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		kept := b.groups[:0]
		for _, g := range b.groups {
			if g.ID != c.Param("id") {
				kept = append(kept, g)
			}
		}
		b.groups = kept
		c.JSON(200, gin.H{"success": true})
	})

	return router
}

func newProgramPage(t *testing.T, backend *programBackend) *ProgramStructurePage {
	t.Helper()
	server := httptest.NewServer(backend.router())
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL
	cfg.API.Timeout = 2 * time.Second
	client := api.New(cfg, api.StaticTokenSource("test"), zap.NewNop(), nil)
	gw := gateway.New(client, validator.New(), zap.NewNop(), nil)
	return NewProgramStructurePage(resource.NewProgramClient(client), gw, zap.NewNop())
}

func seededProgramBackend() *programBackend {
	return &programBackend{
		blocks: []models.ProgramBlock{
			{ID: "b1", ProgramID: "prog-1", Name: "Core"},
			{ID: "b2", ProgramID: "prog-1", Name: "Electives"},
		},
		groups: []models.ProgramBlockGroup{
			{ID: "g1", BlockID: "b1", Name: "Mathematics"},
			{ID: "g2", BlockID: "b1", ParentID: "g1", Name: "Calculus"},
			{ID: "g3", BlockID: "b2", Name: "Arts"},
			{ID: "g9", BlockID: "b1", ParentID: "G-999", Name: "Dangling"},
		},
		maps: []models.ProgramCourseMap{
			{ID: "m1", GroupID: "g2", CourseID: "c-calc-1"},
			{ID: "m2", GroupID: "g3", CourseID: "c-art-1"},
		},
	}
}

func TestStructureProjectsBlockGroupTree(t *testing.T) {
	page := newProgramPage(t, seededProgramBackend())
	page.Mount(context.Background(), "prog-1")

	structure := page.Structure()

	require.Len(t, structure.Blocks, 2)
	core := structure.Blocks[0]
	assert.Equal(t, "Core", core.Block.Name)
	require.Len(t, core.Groups, 1)
	assert.Equal(t, "Mathematics", core.Groups[0].Group.Name)
	require.Len(t, core.Groups[0].Children, 1)

	calculus := core.Groups[0].Children[0]
	assert.Equal(t, "Calculus", calculus.Group.Name)
	require.Len(t, calculus.Courses, 1)
	assert.Equal(t, "c-calc-1", calculus.Courses[0].CourseID)

	// The group with the unresolvable parent is kept, under the block's
	// ungrouped bucket, never dropped.
	require.Len(t, core.Ungrouped, 1)
	assert.Equal(t, "Dangling", core.Ungrouped[0].Group.Name)
}

func TestStructureKeepsGroupsOfUnknownBlocks(t *testing.T) {
	backend := seededProgramBackend()
	backend.groups = append(backend.groups, models.ProgramBlockGroup{ID: "g50", BlockID: "b-missing", Name: "Lost"})
	page := newProgramPage(t, backend)
	page.Mount(context.Background(), "prog-1")

	structure := page.Structure()

	require.Len(t, structure.Ungrouped, 1)
	assert.Equal(t, "Lost", structure.Ungrouped[0].Group.Name)
}

func TestStructureIsDeterministic(t *testing.T) {
	page := newProgramPage(t, seededProgramBackend())
	page.Mount(context.Background(), "prog-1")

	first := page.Structure()
	second := page.Structure()
	assert.Equal(t, first, second)
}

func TestAddGroupRefreshesStructure(t *testing.T) {
	page := newProgramPage(t, seededProgramBackend())
	ctx := context.Background()
	page.Mount(ctx, "prog-1")

	page.OpenAddGroup()
	err := page.AddGroup(ctx, resource.CreateBlockGroupRequest{BlockID: "b2", Name: "Music"})
	require.NoError(t, err)
	assert.False(t, page.Dialog().Open())

	structure := page.Structure()
	electives := structure.Blocks[1]
	require.Len(t, electives.Groups, 2)
	assert.Equal(t, "Music", electives.Groups[1].Group.Name)
}

func TestRemoveGroupRequiresConfirmation(t *testing.T) {
	backend := seededProgramBackend()
	page := newProgramPage(t, backend)
	ctx := context.Background()
	page.Mount(ctx, "prog-1")

	err := page.ConfirmRemoveGroup(ctx)
	require.Error(t, err)
	require.Len(t, backend.groups, 4)

	page.RequestRemoveGroup("g3")
	err = page.ConfirmRemoveGroup(ctx)
	require.NoError(t, err)
	require.Len(t, backend.groups, 3)

	structure := page.Structure()
	assert.Empty(t, structure.Blocks[1].Groups)
}
