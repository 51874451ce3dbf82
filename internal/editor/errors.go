package editor

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

var (
	ErrStepOutOfRange    = errors.New("editor: step is out of range")
	ErrStepUnreachable   = errors.New("editor: step has not been reached yet")
	ErrSaveInProgress    = errors.New("editor: a save is already in progress")
	ErrReorderMismatch   = errors.New("editor: reorder must list every enabled module exactly once")
	ErrSectionIDRequired = errors.New("editor: section id is required")
	ErrSectionExists     = errors.New("editor: section already exists")
	ErrSectionNotFound   = errors.New("editor: section not found")
	ErrSessionActive     = errors.New("editor: draft already has an active session")
	ErrSessionNotFound   = errors.New("editor: session not found")
	ErrRepositoryMissing = errors.New("editor: draft repository is required")
	ErrKindRequired      = errors.New("editor: draft kind is required")
)

const (
	textCodeSaveFailed    = "DRAFT_SAVE_FAILED"
	textCodePublishFailed = "DRAFT_PUBLISH_FAILED"
	textCodePublicURL     = "DRAFT_PUBLIC_URL_INVALID"
	textCodeLoadFailed    = "DRAFT_LOAD_FAILED"
	textCodeSlugInvalid   = "DRAFT_SLUG_INVALID"
)

func wrapPersistError(err error, message, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, message).WithTextCode(code)
}

func wrapURLError(err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "public url could not be built").
		WithTextCode(textCodePublicURL)
}

func wrapSlugError(err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "draft slug is invalid").
		WithTextCode(textCodeSlugInvalid)
}
