package console

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/hei-admin-console/internal/gateway"
	"github.com/noah-isme/hei-admin-console/internal/query"
	appErrors "github.com/noah-isme/hei-admin-console/pkg/errors"
)

// ListPage is the generic list/CRUD session backing most console pages:
// fetch, filter, paginate, mutate through a dialog, refetch. Specialised
// pages embed or wrap it.
type ListPage[T any] struct {
	mu         sync.Mutex
	controller *query.Controller[T]
	gateway    *gateway.Gateway
	resource   string
	logger     *zap.Logger
	dialog     Dialog
	banner     string
}

// NewListPage creates a list page session for one resource.
func NewListPage[T any](controller *query.Controller[T], gw *gateway.Gateway, resource string, logger *zap.Logger) *ListPage[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListPage[T]{
		controller: controller,
		gateway:    gw,
		resource:   resource,
		logger:     logger,
	}
}

// Mount performs the initial fetch.
func (p *ListPage[T]) Mount(ctx context.Context) {
	p.controller.Refetch(ctx)
}

// Controller exposes the underlying query controller for filter, sort and
// pagination interactions.
func (p *ListPage[T]) Controller() *query.Controller[T] {
	return p.controller
}

// Snapshot returns the current list state.
func (p *ListPage[T]) Snapshot() query.FetchResult[T] {
	return p.controller.Snapshot()
}

// OpenCreate shows the create dialog.
func (p *ListPage[T]) OpenCreate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog.Show(ModeCreate, "")
}

// OpenEdit shows the edit dialog for the given entity.
func (p *ListPage[T]) OpenEdit(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog.Show(ModeEdit, id)
}

// RequestDelete shows the confirm-delete dialog for the given entity. The
// DELETE itself only happens through ConfirmDelete.
func (p *ListPage[T]) RequestDelete(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog.Show(ModeConfirmDelete, id)
}

// CloseDialog dismisses the open dialog without acting.
func (p *ListPage[T]) CloseDialog() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog.Close()
}

// Dialog returns the current dialog state.
func (p *ListPage[T]) Dialog() Dialog {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dialog
}

// Submit runs the create or edit dialog's payload through the gateway. On
// success the dialog closes and the list refetches; on failure the dialog
// stays open with the error banner set so the user can correct and resubmit.
func (p *ListPage[T]) Submit(ctx context.Context, payload any) error {
	p.mu.Lock()
	if !p.dialog.Open() || (p.dialog.Mode() != ModeCreate && p.dialog.Mode() != ModeEdit) {
		p.mu.Unlock()
		return appErrors.Clone(appErrors.ErrValidation, "no form dialog is open")
	}
	mode := p.dialog.Mode()
	targetID := p.dialog.TargetID()
	p.mu.Unlock()

	var err error
	if mode == ModeCreate {
		_, err = p.gateway.Create(ctx, p.resource, payload)
	} else {
		_, err = p.gateway.Update(ctx, p.resource, targetID, payload)
	}

	p.mu.Lock()
	if err != nil {
		p.banner = appErrors.FromError(err).Message
		p.mu.Unlock()
		return err
	}
	p.banner = ""
	p.dialog.Close()
	p.mu.Unlock()

	p.controller.Refetch(ctx)
	return nil
}

// ConfirmDelete affirms the open confirm-delete dialog and performs the
// delete. Without the dialog in confirm-delete mode no request is sent.
func (p *ListPage[T]) ConfirmDelete(ctx context.Context) error {
	p.mu.Lock()
	confirm := p.dialog.Confirm()
	targetID := p.dialog.TargetID()
	p.mu.Unlock()

	err := p.gateway.Delete(ctx, p.resource, targetID, confirm)

	p.mu.Lock()
	if err != nil {
		p.banner = appErrors.FromError(err).Message
		p.mu.Unlock()
		return err
	}
	p.banner = ""
	p.dialog.Close()
	p.mu.Unlock()

	p.controller.Refetch(ctx)
	return nil
}

// Banner returns the page-level error message, empty when none.
func (p *ListPage[T]) Banner() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.banner
}

// DismissBanner clears the page-level error message.
func (p *ListPage[T]) DismissBanner() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.banner = ""
}

// Close tears the page down, abandoning any in-flight fetch.
func (p *ListPage[T]) Close() {
	p.controller.Close()
}
