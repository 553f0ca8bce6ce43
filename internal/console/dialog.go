// Package console composes query controllers, the mutation gateway and the
// grouping projections into page sessions: one session per console page,
// owning dialog state and the page-level error banner. Sessions never hold
// authoritative data; every confirmed mutation is followed by a refetch so
// the displayed lists are always server-confirmed snapshots.
package console

import (
	"github.com/noah-isme/hei-admin-console/internal/gateway"
)

// DialogMode distinguishes the dialogs a page can show.
type DialogMode string

// Dialog modes.
const (
	ModeCreate        DialogMode = "create"
	ModeEdit          DialogMode = "edit"
	ModeBulk          DialogMode = "bulk"
	ModeConfirmDelete DialogMode = "confirmDelete"
)

// Dialog tracks the open dialog of a page. The zero value is closed.
type Dialog struct {
	open     bool
	mode     DialogMode
	targetID string
}

// Open reports whether a dialog is showing.
func (d Dialog) Open() bool {
	return d.open
}

// Mode returns the mode of the open dialog.
func (d Dialog) Mode() DialogMode {
	return d.mode
}

// TargetID returns the entity the dialog operates on, empty for create and
// bulk dialogs.
func (d Dialog) TargetID() string {
	return d.targetID
}

// Show opens the dialog in the given mode.
func (d *Dialog) Show(mode DialogMode, targetID string) {
	d.open = true
	d.mode = mode
	d.targetID = targetID
}

// Close dismisses the dialog.
func (d *Dialog) Close() {
	*d = Dialog{}
}

// Confirm records the user's affirmation of an open confirm-delete dialog.
// Any other dialog state yields an unconfirmed value, so a delete can only
// proceed after the confirmation interaction actually happened.
func (d *Dialog) Confirm() gateway.Confirmation {
	if !d.open || d.mode != ModeConfirmDelete {
		return gateway.Confirmation{}
	}
	return gateway.Affirm()
}
