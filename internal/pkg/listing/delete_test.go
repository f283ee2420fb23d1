package listing

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talospioneers/blueprinthub/app/models"
	"github.com/talospioneers/blueprinthub/internal/pkg/apiclient"
	"github.com/talospioneers/blueprinthub/internal/pkg/i18n"
)

type stubDeleter struct {
	err error
}

func (d stubDeleter) DeleteBlueprint(context.Context, string) error {
	return d.err
}

type captureNotifier struct {
	errorsSeen   []string
	warningsSeen []string
}

func (n *captureNotifier) Error(msg string)   { n.errorsSeen = append(n.errorsSeen, msg) }
func (n *captureNotifier) Warning(msg string) { n.warningsSeen = append(n.warningsSeen, msg) }

func TestDeleteFlow(t *testing.T) {
	t.Parallel()

	forbidden := fmt.Errorf("delete: %w", apiclient.ErrForbidden)

	tests := []struct {
		name          string
		err           error
		authenticated bool
		wantPrompt    bool
		wantNotify    bool
	}{
		{"success", nil, true, false, false},
		{"forbidden while unauthenticated prompts login", forbidden, false, true, false},
		{"forbidden while authenticated is a real failure", forbidden, true, false, true},
		{"network failure notifies", errors.New("connection refused"), true, false, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			notifier := &captureNotifier{}
			prompted := false
			flow := &DeleteFlow{
				Client:          stubDeleter{err: tt.err},
				IsAuthenticated: func() bool { return tt.authenticated },
				PromptLogin:     func() { prompted = true },
				Notifier:        notifier,
				Translate:       i18n.Default.Translate,
			}

			err := flow.Delete(context.Background(), models.Blueprint{ID: "bp-1"})

			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
			assert.Equal(t, tt.wantPrompt, prompted)
			if tt.wantNotify {
				assert.Equal(t, []string{"Failed to delete blueprint."}, notifier.errorsSeen)
			} else {
				assert.Empty(t, notifier.errorsSeen)
			}
		})
	}
}
