package activity

import (
	"context"
	"strings"

	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/internal/storage"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

const (
	// DefaultChannel tags every record emitted by the builder.
	DefaultChannel = "builder"

	VerbPublish = "publish"
)

// Recorder turns publications into activity records.
type Recorder struct {
	sink    interfaces.ActivitySink
	logger  interfaces.Logger
	channel string
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithLogger sets the logger used to report sink failures.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Recorder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithChannel overrides DefaultChannel.
func WithChannel(channel string) Option {
	return func(r *Recorder) {
		if trimmed := strings.TrimSpace(channel); trimmed != "" {
			r.channel = trimmed
		}
	}
}

// NewRecorder returns nil when sink is nil so callers can skip the hook.
func NewRecorder(sink interfaces.ActivitySink, opts ...Option) *Recorder {
	if sink == nil {
		return nil
	}
	r := &Recorder{
		sink:    sink,
		logger:  logging.NoOp(),
		channel: DefaultChannel,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Published logs a publish record. Sink errors are logged and never undo the
// publication.
func (r *Recorder) Published(ctx context.Context, publication *storage.Publication) {
	if r == nil || publication == nil {
		return
	}
	record := PublicationRecord(publication, r.channel)
	if err := r.sink.Log(ctx, record); err != nil {
		logging.WithDraftContext(r.logger, publication.DraftID.String(), string(publication.Payload.Kind), publication.Slug).
			Warn("activity.publish.failed", "error", err)
	}
}

// PublicationRecord maps a publication onto the activity contract. The draft
// owner is both user and actor since sessions carry no separate actor.
func PublicationRecord(publication *storage.Publication, channel string) interfaces.ActivityRecord {
	owner := publication.Payload.OwnerID
	return interfaces.ActivityRecord{
		UserID:     owner,
		ActorID:    owner,
		Verb:       VerbPublish,
		ObjectType: "builder." + string(publication.Payload.Kind),
		ObjectID:   publication.DraftID.String(),
		Channel:    channel,
		Data: map[string]any{
			"publication_id": publication.ID.String(),
			"version":        publication.Version,
			"slug":           publication.Slug,
			"public_url":     publication.PublicURL,
		},
		OccurredAt: publication.PublishedAt,
	}
}
