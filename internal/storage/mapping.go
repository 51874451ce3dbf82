package storage

import (
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/drafts"
)

func toRecords(d drafts.Draft, now time.Time) (*DraftRecord, []*NavigationRecord, []*SectionRecord) {
	d = d.Clone()
	root := &DraftRecord{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		Kind:        string(d.Kind),
		Slug:        d.Slug,
		Version:     d.Version,
		Name:        d.Overview.Name,
		Tagline:     d.Overview.Tagline,
		Description: d.Overview.Description,
		StartDate:   d.Overview.StartDate,
		EndDate:     d.Overview.EndDate,
		VenueName:   d.Overview.VenueName,
		LogoURL:     d.Overview.LogoURL,
		BannerURL:   d.Overview.BannerURL,
		Design:      d.Design,
		Web:         d.Web,
		App:         d.App,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	navigation := make([]*NavigationRecord, 0, len(d.Navigation))
	for position, module := range d.Navigation {
		navigation = append(navigation, &NavigationRecord{
			ID:        uuid.New(),
			DraftID:   d.ID,
			ModuleID:  module.ID,
			Name:      module.Name,
			Icon:      module.Icon,
			Enabled:   module.Enabled,
			SortOrder: module.Order,
			Position:  position,
		})
	}

	sections := make([]*SectionRecord, 0, len(d.Sections))
	for position, section := range d.Sections {
		sections = append(sections, &SectionRecord{
			ID:        uuid.New(),
			DraftID:   d.ID,
			SectionID: section.ID,
			Kind:      section.Kind,
			Title:     section.Title,
			Body:      section.Body,
			Enabled:   section.Enabled,
			SortOrder: section.Order,
			Position:  position,
			Settings:  section.Settings,
		})
	}
	return root, navigation, sections
}

// fromRecords expects children already ordered by position.
func fromRecords(root *DraftRecord, navigation []*NavigationRecord, sections []*SectionRecord) drafts.Draft {
	d := drafts.Draft{
		ID:      root.ID,
		OwnerID: root.OwnerID,
		Kind:    drafts.Kind(root.Kind),
		Slug:    root.Slug,
		Version: root.Version,
		Overview: drafts.Overview{
			Name:        root.Name,
			Tagline:     root.Tagline,
			Description: root.Description,
			StartDate:   root.StartDate,
			EndDate:     root.EndDate,
			VenueName:   root.VenueName,
			LogoURL:     root.LogoURL,
			BannerURL:   root.BannerURL,
		},
		Design: root.Design,
		Web:    root.Web,
		App:    root.App,
	}
	for _, row := range navigation {
		d.Navigation = append(d.Navigation, drafts.NavigationModule{
			ID:      row.ModuleID,
			Name:    row.Name,
			Icon:    row.Icon,
			Enabled: row.Enabled,
			Order:   row.SortOrder,
		})
	}
	for _, row := range sections {
		d.Sections = append(d.Sections, drafts.PageSection{
			ID:       row.SectionID,
			Kind:     row.Kind,
			Title:    row.Title,
			Body:     row.Body,
			Enabled:  row.Enabled,
			Order:    row.SortOrder,
			Settings: maps.Clone(row.Settings),
		})
	}
	return d.Clone()
}

func toPublication(record *PublicationRecord) *Publication {
	return &Publication{
		ID:          record.ID,
		DraftID:     record.DraftID,
		Version:     record.Version,
		Slug:        record.Slug,
		PublicURL:   record.PublicURL,
		Payload:     record.Payload.Clone(),
		PublishedAt: record.PublishedAt,
	}
}
