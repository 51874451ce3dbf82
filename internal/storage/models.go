package storage

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitebuilder/internal/drafts"
)

// DraftRecord is the root row of a draft.
type DraftRecord struct {
	bun.BaseModel `bun:"table:builder_drafts,alias:bd"`

	ID          uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	OwnerID     uuid.UUID      `bun:"owner_id,type:uuid" json:"owner_id"`
	Kind        string         `bun:"kind,notnull" json:"kind"`
	Slug        string         `bun:"slug,notnull,unique" json:"slug"`
	Version     int            `bun:"version,notnull" json:"version"`
	Name        string         `bun:"name" json:"name"`
	Tagline     string         `bun:"tagline" json:"tagline"`
	Description string         `bun:"description" json:"description"`
	StartDate   string         `bun:"start_date" json:"start_date"`
	EndDate     string         `bun:"end_date" json:"end_date"`
	VenueName   string         `bun:"venue_name" json:"venue_name"`
	LogoURL     string         `bun:"logo_url" json:"logo_url"`
	BannerURL   string         `bun:"banner_url" json:"banner_url"`
	Design      drafts.Design  `bun:"design,type:jsonb" json:"design"`
	Web         drafts.Surface `bun:"web,type:jsonb" json:"web"`
	App         drafts.Surface `bun:"app,type:jsonb" json:"app"`
	CreatedAt   time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// NavigationRecord is one navigation module row. Rows are replaced on every
// save, so ID is not stable across saves.
type NavigationRecord struct {
	bun.BaseModel `bun:"table:builder_navigation_modules,alias:bnm"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	DraftID   uuid.UUID `bun:"draft_id,notnull,type:uuid" json:"draft_id"`
	ModuleID  string    `bun:"module_id,notnull" json:"module_id"`
	Name      string    `bun:"name" json:"name"`
	Icon      string    `bun:"icon" json:"icon"`
	Enabled   bool      `bun:"enabled,notnull" json:"enabled"`
	SortOrder int       `bun:"sort_order,notnull" json:"sort_order"`
	Position  int       `bun:"position,notnull" json:"position"`
}

// SectionRecord is one page section row, replaced on every save.
type SectionRecord struct {
	bun.BaseModel `bun:"table:builder_page_sections,alias:bps"`

	ID        uuid.UUID         `bun:",pk,type:uuid" json:"id"`
	DraftID   uuid.UUID         `bun:"draft_id,notnull,type:uuid" json:"draft_id"`
	SectionID string            `bun:"section_id,notnull" json:"section_id"`
	Kind      string            `bun:"kind" json:"kind"`
	Title     string            `bun:"title" json:"title"`
	Body      string            `bun:"body" json:"body"`
	Enabled   bool              `bun:"enabled,notnull" json:"enabled"`
	SortOrder int               `bun:"sort_order,notnull" json:"sort_order"`
	Position  int               `bun:"position,notnull" json:"position"`
	Settings  map[string]string `bun:"settings,type:jsonb" json:"settings,omitempty"`
}

// PublicationRecord stores the payload that went live for one draft version.
type PublicationRecord struct {
	bun.BaseModel `bun:"table:builder_publications,alias:bp"`

	ID          uuid.UUID    `bun:",pk,type:uuid" json:"id"`
	DraftID     uuid.UUID    `bun:"draft_id,notnull,type:uuid" json:"draft_id"`
	Version     int          `bun:"version,notnull" json:"version"`
	Slug        string       `bun:"slug,notnull" json:"slug"`
	PublicURL   string       `bun:"public_url" json:"public_url"`
	Payload     drafts.Draft `bun:"payload,type:jsonb" json:"payload"`
	PublishedAt time.Time    `bun:"published_at,notnull" json:"published_at"`
}

// Publication is the domain view of a publication row.
type Publication struct {
	ID          uuid.UUID
	DraftID     uuid.UUID
	Version     int
	Slug        string
	PublicURL   string
	Payload     drafts.Draft
	PublishedAt time.Time
}
