package drafts

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// New returns the default draft for kind. Navigation is copied so callers can
// pass a shared catalog slice.
func New(id, ownerID uuid.UUID, kind Kind, slug string, navigation []NavigationModule) (Draft, error) {
	if !kind.Valid() {
		return Draft{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return Draft{
		ID:      id,
		OwnerID: ownerID,
		Kind:    kind,
		Slug:    strings.TrimSpace(slug),
		Design: Design{
			CardStyle: "elevated",
			IconTheme: "outline",
		},
		Navigation: cloneModules(navigation),
		Web: Surface{
			HeroStyle:         "split",
			BackgroundPattern: "none",
		},
		App: Surface{
			HeroStyle:         "compact",
			BackgroundPattern: "none",
		},
	}, nil
}
