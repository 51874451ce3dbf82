package buildercmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	saveDraftMessageType      = "builder.drafts.save"
	publishDraftMessageType   = "builder.drafts.publish"
	toggleModuleMessageType   = "builder.modules.toggle"
	reorderModulesMessageType = "builder.modules.reorder"
)

// SaveDraftCommand saves the open session of a draft.
type SaveDraftCommand struct {
	DraftID uuid.UUID `json:"draft_id"`
}

func (SaveDraftCommand) Type() string { return saveDraftMessageType }

func (m SaveDraftCommand) Validate() error {
	return requireDraft(m.DraftID, saveDraftMessageType)
}

// PublishDraftCommand saves and publishes the open session of a draft.
type PublishDraftCommand struct {
	DraftID uuid.UUID `json:"draft_id"`
}

func (PublishDraftCommand) Type() string { return publishDraftMessageType }

func (m PublishDraftCommand) Validate() error {
	return requireDraft(m.DraftID, publishDraftMessageType)
}

// ToggleModuleCommand flips one navigation module.
type ToggleModuleCommand struct {
	DraftID  uuid.UUID `json:"draft_id"`
	ModuleID string    `json:"module_id"`
}

func (ToggleModuleCommand) Type() string { return toggleModuleMessageType }

func (m ToggleModuleCommand) Validate() error {
	errs := validation.Errors{}
	if m.DraftID == uuid.Nil {
		errs["draft_id"] = validation.NewError(toggleModuleMessageType+".draft_id_required", "draft_id is required")
	}
	if strings.TrimSpace(m.ModuleID) == "" {
		errs["module_id"] = validation.NewError(toggleModuleMessageType+".module_id_required", "module_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReorderModulesCommand sets the order of the enabled modules.
type ReorderModulesCommand struct {
	DraftID   uuid.UUID `json:"draft_id"`
	ModuleIDs []string  `json:"module_ids"`
}

func (ReorderModulesCommand) Type() string { return reorderModulesMessageType }

func (m ReorderModulesCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.DraftID, validation.By(notNilUUID)),
		validation.Field(&m.ModuleIDs, validation.Required, validation.Each(validation.Required)),
	)
}

func requireDraft(id uuid.UUID, messageType string) error {
	if id == uuid.Nil {
		return validation.Errors{
			"draft_id": validation.NewError(messageType+".draft_id_required", "draft_id is required"),
		}
	}
	return nil
}

func notNilUUID(value any) error {
	if id, ok := value.(uuid.UUID); !ok || id == uuid.Nil {
		return validation.NewError("builder.draft_id_required", "draft_id is required")
	}
	return nil
}
