package console

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/hei-admin-console/internal/gateway"
	"github.com/noah-isme/hei-admin-console/internal/grouping"
	"github.com/noah-isme/hei-admin-console/internal/models"
	"github.com/noah-isme/hei-admin-console/internal/resource"
	appErrors "github.com/noah-isme/hei-admin-console/pkg/errors"
)

// GroupNode is one block group in the projected program structure, with its
// nested sub-groups and the courses mapped into it.
type GroupNode struct {
	Group    models.ProgramBlockGroup
	Children []*GroupNode
	Courses  []models.ProgramCourseMap
}

// BlockView is one program block with its group forest. Groups whose parent
// reference does not resolve inside the block appear under Ungrouped.
type BlockView struct {
	Block     models.ProgramBlock
	Groups    []*GroupNode
	Ungrouped []*GroupNode
}

// ProgramStructure is the full projected structure of a program. Groups
// pointing at a block absent from the fetched set land in Ungrouped rather
// than being dropped.
type ProgramStructure struct {
	Blocks    []BlockView
	Ungrouped []*GroupNode
}

// ProgramStructurePage drives the program structure screen: blocks, groups
// and course mappings fetched together and projected into a tree.
type ProgramStructurePage struct {
	mu        sync.Mutex
	programs  *resource.ProgramClient
	gateway   *gateway.Gateway
	logger    *zap.Logger
	programID string
	blocks    []models.ProgramBlock
	groups    []models.ProgramBlockGroup
	maps      []models.ProgramCourseMap
	dialog    Dialog
	banner    string
}

// NewProgramStructurePage wires the page against the program client.
func NewProgramStructurePage(programs *resource.ProgramClient, gw *gateway.Gateway, logger *zap.Logger) *ProgramStructurePage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgramStructurePage{programs: programs, gateway: gw, logger: logger}
}

// Mount fetches blocks, groups and course maps for the program concurrently
// and joins before the structure can be projected. A failed fetch surfaces
// on the banner; previously loaded data stays in place.
func (p *ProgramStructurePage) Mount(ctx context.Context, programID string) {
	p.mu.Lock()
	p.programID = programID
	p.mu.Unlock()
	p.refresh(ctx)
}

func (p *ProgramStructurePage) refresh(ctx context.Context) {
	p.mu.Lock()
	programID := p.programID
	p.mu.Unlock()

	var (
		wg        sync.WaitGroup
		blocks    []models.ProgramBlock
		groups    []models.ProgramBlockGroup
		courseMap []models.ProgramCourseMap
		errs      [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		blocks, _, errs[0] = p.programs.Blocks(ctx, programID)
	}()
	go func() {
		defer wg.Done()
		groups, _, errs[1] = p.programs.BlockGroups(ctx, programID)
	}()
	go func() {
		defer wg.Done()
		courseMap, _, errs[2] = p.programs.CourseMaps(ctx, programID)
	}()
	wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, err := range errs {
		if err != nil {
			p.banner = appErrors.FromError(err).Message
			p.logger.Warn("program_structure_fetch_failed",
				zap.String("program_id", programID),
				zap.String("error", p.banner),
			)
			return
		}
	}
	p.banner = ""
	p.blocks = blocks
	p.groups = groups
	p.maps = courseMap
}

// Structure projects the fetched records into the block → group tree. The
// projection is pure: it derives entirely from the last fetched snapshot.
func (p *ProgramStructurePage) Structure() ProgramStructure {
	p.mu.Lock()
	blocks := p.blocks
	groups := p.groups
	courseMaps := p.maps
	p.mu.Unlock()

	coursesByGroup := grouping.GroupBy(courseMaps, func(m models.ProgramCourseMap) string {
		return m.GroupID
	})
	groupsByBlock := grouping.GroupBy(groups, func(g models.ProgramBlockGroup) string {
		return g.BlockID
	})

	var structure ProgramStructure
	knownBlocks := make(map[string]bool, len(blocks))
	for _, block := range blocks {
		knownBlocks[block.ID] = true
		view := BlockView{Block: block}
		h := buildGroupForest(groupsByBlock.Groups[block.ID], coursesByGroup)
		view.Groups = h.roots
		view.Ungrouped = h.orphans
		structure.Blocks = append(structure.Blocks, view)
	}

	// Groups referencing a block outside the fetched set are kept visible.
	var strays []models.ProgramBlockGroup
	for _, key := range groupsByBlock.Keys {
		if !knownBlocks[key] {
			strays = append(strays, groupsByBlock.Groups[key]...)
		}
	}
	if len(strays) > 0 {
		h := buildGroupForest(strays, coursesByGroup)
		structure.Ungrouped = append(structure.Ungrouped, h.roots...)
		structure.Ungrouped = append(structure.Ungrouped, h.orphans...)
	}
	return structure
}

type groupForest struct {
	roots   []*GroupNode
	orphans []*GroupNode
}

func buildGroupForest(groups []models.ProgramBlockGroup, coursesByGroup grouping.Grouped[models.ProgramCourseMap]) groupForest {
	h := grouping.BuildHierarchy(groups,
		func(g models.ProgramBlockGroup) string { return g.ID },
		func(g models.ProgramBlockGroup) string { return g.ParentID },
	)

	var convert func(n *grouping.Node[models.ProgramBlockGroup]) *GroupNode
	convert = func(n *grouping.Node[models.ProgramBlockGroup]) *GroupNode {
		node := &GroupNode{
			Group:   n.Item,
			Courses: coursesByGroup.Groups[n.Item.ID],
		}
		for _, child := range n.Children {
			node.Children = append(node.Children, convert(child))
		}
		return node
	}

	var forest groupForest
	for _, root := range h.Roots {
		forest.roots = append(forest.roots, convert(root))
	}
	for _, orphan := range h.Orphans {
		forest.orphans = append(forest.orphans, convert(orphan))
	}
	return forest
}

// AddGroup creates a block group and refreshes the structure on success. On
// failure the dialog stays open with the banner set.
func (p *ProgramStructurePage) AddGroup(ctx context.Context, req resource.CreateBlockGroupRequest) error {
	_, err := p.gateway.Create(ctx, resource.PathProgramBlockGroups, req)
	if err != nil {
		p.mu.Lock()
		p.banner = appErrors.FromError(err).Message
		p.mu.Unlock()
		return err
	}
	p.mu.Lock()
	p.banner = ""
	p.dialog.Close()
	p.mu.Unlock()
	p.refresh(ctx)
	return nil
}

// MapCourse places a course into a group and refreshes on success.
func (p *ProgramStructurePage) MapCourse(ctx context.Context, req resource.MapCourseRequest) error {
	_, err := p.gateway.Create(ctx, resource.PathProgramCourseMaps, req)
	if err != nil {
		p.mu.Lock()
		p.banner = appErrors.FromError(err).Message
		p.mu.Unlock()
		return err
	}
	p.mu.Lock()
	p.banner = ""
	p.dialog.Close()
	p.mu.Unlock()
	p.refresh(ctx)
	return nil
}

// RequestRemoveGroup shows the confirm dialog for deleting a group.
func (p *ProgramStructurePage) RequestRemoveGroup(groupID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog.Show(ModeConfirmDelete, groupID)
}

// ConfirmRemoveGroup affirms the open confirm dialog and deletes the group.
func (p *ProgramStructurePage) ConfirmRemoveGroup(ctx context.Context) error {
	p.mu.Lock()
	confirm := p.dialog.Confirm()
	targetID := p.dialog.TargetID()
	p.mu.Unlock()

	err := p.gateway.Delete(ctx, resource.PathProgramBlockGroups, targetID, confirm)

	p.mu.Lock()
	if err != nil {
		p.banner = appErrors.FromError(err).Message
		p.mu.Unlock()
		return err
	}
	p.banner = ""
	p.dialog.Close()
	p.mu.Unlock()

	p.refresh(ctx)
	return nil
}

// OpenAddGroup shows the create-group dialog.
func (p *ProgramStructurePage) OpenAddGroup() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog.Show(ModeCreate, "")
}

// Dialog returns the current dialog state.
func (p *ProgramStructurePage) Dialog() Dialog {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dialog
}

// Banner returns the page-level error message.
func (p *ProgramStructurePage) Banner() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.banner
}

// DismissBanner clears the page-level error message.
func (p *ProgramStructurePage) DismissBanner() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.banner = ""
}
