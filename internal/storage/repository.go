package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/drafts"
)

// Repository persists drafts and their publications. Save and Publish are
// atomic: the root row, every child list, and the publication row commit
// together or not at all.
type Repository interface {
	Load(ctx context.Context, id uuid.UUID) (*drafts.Draft, error)
	LoadBySlug(ctx context.Context, slug string) (*drafts.Draft, error)
	Save(ctx context.Context, draft drafts.Draft) error
	Publish(ctx context.Context, draft drafts.Draft, opts PublishOptions) (*Publication, error)
	Published(ctx context.Context, draftID uuid.UUID) (*Publication, error)
}

// PublishOptions carries values computed outside the store.
type PublishOptions struct {
	PublicURL   string
	PublishedAt time.Time
}

var (
	ErrDraftIDRequired = errors.New("storage: draft id is required")
	ErrSlugRequired    = errors.New("storage: draft slug is required")
	ErrSlugConflict    = errors.New("storage: slug already belongs to another draft")
)

// NotFoundError is returned when a draft or publication cannot be located.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func validateForWrite(d drafts.Draft) error {
	if d.ID == uuid.Nil {
		return ErrDraftIDRequired
	}
	if strings.TrimSpace(d.Slug) == "" {
		return ErrSlugRequired
	}
	return nil
}
