package listing

import (
	"context"
	"errors"

	"github.com/talospioneers/blueprinthub/app/models"
	"github.com/talospioneers/blueprinthub/internal/pkg/apiclient"
	"github.com/talospioneers/blueprinthub/internal/pkg/i18n"
	"github.com/talospioneers/blueprinthub/internal/pkg/notify"
)

// BlueprintDeleter is the mutation collaborator of the delete flow.
type BlueprintDeleter interface {
	DeleteBlueprint(ctx context.Context, id string) error
}

// DeleteFlow deletes blueprints and routes failures: a 403 while the
// viewer is unauthenticated prompts re-authentication instead of a
// generic error.
type DeleteFlow struct {
	Client          BlueprintDeleter
	IsAuthenticated func() bool
	PromptLogin     func()
	Notifier        notify.Notifier
	Translate       i18n.TranslateFunc
}

// Delete removes the blueprint. The error is returned in addition to
// being presented so callers can keep the row until success.
func (f *DeleteFlow) Delete(ctx context.Context, blueprint models.Blueprint) error {
	err := f.Client.DeleteBlueprint(ctx, blueprint.ID)
	if err == nil {
		return nil
	}
	if errors.Is(err, apiclient.ErrForbidden) && !f.IsAuthenticated() {
		f.PromptLogin()
		return err
	}
	f.Notifier.Error(f.Translate("blueprints.deleteFailed", nil))
	return err
}
