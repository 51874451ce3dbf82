package storage

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func newDraftRepository(db *bun.DB) repository.Repository[*DraftRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*DraftRecord]{
		NewRecord: func() *DraftRecord { return &DraftRecord{} },
		GetID: func(record *DraftRecord) uuid.UUID {
			return record.ID
		},
		SetID: func(record *DraftRecord, id uuid.UUID) {
			record.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(record *DraftRecord) string {
			return record.Slug
		},
	})
}

func newNavigationRepository(db *bun.DB) repository.Repository[*NavigationRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*NavigationRecord]{
		NewRecord: func() *NavigationRecord { return &NavigationRecord{} },
		GetID: func(record *NavigationRecord) uuid.UUID {
			return record.ID
		},
		SetID: func(record *NavigationRecord, id uuid.UUID) {
			record.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(record *NavigationRecord) string {
			return record.ID.String()
		},
	})
}

func newSectionRepository(db *bun.DB) repository.Repository[*SectionRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*SectionRecord]{
		NewRecord: func() *SectionRecord { return &SectionRecord{} },
		GetID: func(record *SectionRecord) uuid.UUID {
			return record.ID
		},
		SetID: func(record *SectionRecord, id uuid.UUID) {
			record.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(record *SectionRecord) string {
			return record.ID.String()
		},
	})
}

func newPublicationRepository(db *bun.DB) repository.Repository[*PublicationRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PublicationRecord]{
		NewRecord: func() *PublicationRecord { return &PublicationRecord{} },
		GetID: func(record *PublicationRecord) uuid.UUID {
			return record.ID
		},
		SetID: func(record *PublicationRecord, id uuid.UUID) {
			record.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(record *PublicationRecord) string {
			return record.ID.String()
		},
	})
}
