package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeValidation = "BUILDER_COMMAND_INVALID"
	textCodeCanceled   = "BUILDER_COMMAND_CANCELED"
	textCodeTimeout    = "BUILDER_COMMAND_TIMEOUT"
	textCodeContext    = "BUILDER_COMMAND_CONTEXT_ERROR"
	textCodeFailed     = "BUILDER_COMMAND_FAILED"
)

// Errors already carrying a category are returned as they are so the
// category chosen closest to the failure wins.

func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "builder command is invalid").
		WithTextCode(textCodeValidation)
}

func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "builder command cancelled").
			WithTextCode(textCodeCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "builder command timed out").
			WithTextCode(textCodeTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "builder command context error").
			WithTextCode(textCodeContext)
	}
}

func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "builder command failed").
		WithTextCode(textCodeFailed)
}
