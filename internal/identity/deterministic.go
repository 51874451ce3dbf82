package identity

import (
	"strconv"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Keys are prefixed by entity type so values from different domains never collide.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// DraftUUID is the id given to a draft opened for an entity without a stored id.
func DraftUUID(kind, slug string) uuid.UUID {
	return UUID("sitebuilder:draft:" + strings.ToLower(strings.TrimSpace(kind)) + ":" + strings.ToLower(strings.TrimSpace(slug)))
}

// PublicationUUID identifies the publication of one saved version of a draft.
func PublicationUUID(draftID uuid.UUID, version int) uuid.UUID {
	return UUID("sitebuilder:publication:" + draftID.String() + ":" + strconv.Itoa(version))
}
