package list

import (
	"context"
	"errors"
)

// DeleteConfirmLiteral is the exact text the user must type before the
// delete call is enabled.
const DeleteConfirmLiteral = "DELETE"

// ErrConfirmationMismatch is returned when the typed confirmation does not
// match the required literal; no delete call is made in that case.
var ErrConfirmationMismatch = errors.New(`type "` + DeleteConfirmLiteral + `" to confirm deletion`)

// DeleteDialog is the type-to-confirm delete state for one record.
type DeleteDialog struct {
	ItemID   string
	ItemName string

	typed string
	open  bool
}

func NewDeleteDialog(id, name string) *DeleteDialog {
	return &DeleteDialog{ItemID: id, ItemName: name, open: true}
}

func (d *DeleteDialog) SetTyped(text string) { d.typed = text }
func (d *DeleteDialog) Open() bool           { return d.open }

// CanConfirm reports whether the typed text exactly equals the literal.
func (d *DeleteDialog) CanConfirm() bool {
	return d.typed == DeleteConfirmLiteral
}

// ConfirmDelete performs the guarded delete. A successful delete closes
// the dialog, invalidates the cached list and emits a success notice; a
// failed delete emits an error notice and leaves the dialog open.
func (c *Controller) ConfirmDelete(ctx context.Context, d *DeleteDialog, notify Notifier) error {
	if !d.CanConfirm() {
		return ErrConfirmationMismatch
	}

	if err := c.api.Delete(ctx, d.ItemID); err != nil {
		if notify != nil {
			notify.Error("Failed to delete content: " + err.Error())
		}
		return err
	}

	d.open = false
	if c.cache != nil {
		if cerr := c.cache.Invalidate(); cerr != nil {
			c.log.Debugw("invalidating cache after delete failed", "error", cerr)
		}
	}
	if notify != nil {
		notify.Success("Content deleted successfully")
	}
	return nil
}
