package buildercmd

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-command/dispatcher"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/commands"
	"github.com/goliatone/go-sitebuilder/internal/editor"
	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/internal/storage"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

// SessionLookup finds the active session of a draft. editor.Service
// satisfies it.
type SessionLookup interface {
	Session(id uuid.UUID) (*editor.Session, error)
}

// Options configures the builder handlers.
type Options struct {
	Logger  interfaces.Logger
	Timeout time.Duration
	// OnPublished receives every successful publication.
	OnPublished func(context.Context, *storage.Publication)
}

// Handlers groups the builder command handlers.
type Handlers struct {
	Save    *commands.Handler[SaveDraftCommand]
	Publish *commands.Handler[PublishDraftCommand]
	Toggle  *commands.Handler[ToggleModuleCommand]
	Reorder *commands.Handler[ReorderModulesCommand]
}

// NewHandlers binds the builder commands to sessions.
func NewHandlers(sessions SessionLookup, opts Options) Handlers {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = commands.DefaultTimeout
	}

	return Handlers{
		Save: newHandler(logger, timeout, "drafts.save", func(ctx context.Context, msg SaveDraftCommand) error {
			session, err := sessions.Session(msg.DraftID)
			if err != nil {
				return err
			}
			return session.Save(ctx)
		}, func(msg SaveDraftCommand) uuid.UUID { return msg.DraftID }),

		Publish: newHandler(logger, timeout, "drafts.publish", func(ctx context.Context, msg PublishDraftCommand) error {
			session, err := sessions.Session(msg.DraftID)
			if err != nil {
				return err
			}
			publication, err := session.Publish(ctx)
			if err != nil {
				return err
			}
			if opts.OnPublished != nil {
				opts.OnPublished(ctx, publication)
			}
			return nil
		}, func(msg PublishDraftCommand) uuid.UUID { return msg.DraftID }),

		Toggle: newHandler(logger, timeout, "modules.toggle", func(_ context.Context, msg ToggleModuleCommand) error {
			session, err := sessions.Session(msg.DraftID)
			if err != nil {
				return err
			}
			session.ToggleModule(msg.ModuleID)
			return nil
		}, func(msg ToggleModuleCommand) uuid.UUID { return msg.DraftID }),

		Reorder: newHandler(logger, timeout, "modules.reorder", func(_ context.Context, msg ReorderModulesCommand) error {
			session, err := sessions.Session(msg.DraftID)
			if err != nil {
				return err
			}
			return session.ReorderModules(msg.ModuleIDs)
		}, func(msg ReorderModulesCommand) uuid.UUID { return msg.DraftID }),
	}
}

func newHandler[T command.Message](logger interfaces.Logger, timeout time.Duration, operation string, exec command.CommandFunc[T], draftOf func(T) uuid.UUID) *commands.Handler[T] {
	return commands.NewHandler(exec,
		commands.WithLogger[T](logger),
		commands.WithTimeout[T](timeout),
		commands.WithOperation[T](operation),
		commands.WithMessageFields(func(msg T) map[string]any {
			return map[string]any{"draft_id": draftOf(msg).String()}
		}),
	)
}

// Subscribe registers every handler with the go-command dispatcher and
// returns a function that removes them again.
func (h Handlers) Subscribe() func() {
	subs := []interface{ Unsubscribe() }{
		dispatcher.SubscribeCommand(h.Save),
		dispatcher.SubscribeCommand(h.Publish),
		dispatcher.SubscribeCommand(h.Toggle),
		dispatcher.SubscribeCommand(h.Reorder),
	}
	return func() {
		for _, sub := range subs {
			sub.Unsubscribe()
		}
	}
}
