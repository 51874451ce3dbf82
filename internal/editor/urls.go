package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-sitebuilder/internal/drafts"
	"github.com/goliatone/go-slug"
	urlkit "github.com/goliatone/go-urlkit"
)

var (
	ErrPublicRouteMissing = errors.New("editor: no public route configured for draft kind")
	ErrPublicSlugInvalid  = errors.New("editor: slug cannot be turned into a public path")
)

// URLBuilder computes the public URL of a published draft.
type URLBuilder interface {
	PublicURL(kind drafts.Kind, draftSlug string) (string, error)
}

// RouteURLBuilder resolves public URLs through a go-urlkit route group. Route
// names are draft kinds and every route takes a :slug parameter.
type RouteURLBuilder struct {
	manager *urlkit.RouteManager
	group   string
}

// NewRouteURLBuilder wraps cfg in a go-urlkit route manager.
func NewRouteURLBuilder(cfg *urlkit.Config, group string) *RouteURLBuilder {
	return &RouteURLBuilder{
		manager: urlkit.NewRouteManager(cfg),
		group:   strings.TrimSpace(group),
	}
}

// PublicSlug normalizes raw with go-slug. Drafts are stored, looked up and
// published under the normalized form.
func PublicSlug(raw string) (string, error) {
	normalized, err := slug.Normalize(raw)
	if err != nil || normalized == "" {
		return "", fmt.Errorf("%w: %q", ErrPublicSlugInvalid, raw)
	}
	return normalized, nil
}

func (b *RouteURLBuilder) PublicURL(kind drafts.Kind, draftSlug string) (string, error) {
	normalized, err := PublicSlug(draftSlug)
	if err != nil {
		return "", err
	}

	group, err := b.lookupGroup()
	if err != nil {
		return "", err
	}
	builder, err := safeBuilder(group, string(kind))
	if err != nil {
		return "", err
	}
	return builder.WithParam("slug", normalized).Build()
}

func (b *RouteURLBuilder) lookupGroup() (group *urlkit.Group, err error) {
	if b == nil || b.manager == nil {
		return nil, fmt.Errorf("editor: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("editor: route group %q not found", b.group)
		}
	}()
	return b.manager.Group(b.group), nil
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			builder = nil
			err = fmt.Errorf("%w: %s", ErrPublicRouteMissing, route)
		}
	}()
	builder = group.Builder(route)
	if builder == nil {
		return nil, fmt.Errorf("%w: %s", ErrPublicRouteMissing, route)
	}
	return builder, nil
}
