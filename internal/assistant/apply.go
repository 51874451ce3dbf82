package assistant

import "strings"

// FieldUpdater is the slice of an edit session a suggestion writes through.
type FieldUpdater interface {
	UpdateField(path string, value any) error
}

// ApplyContentSuggestion writes the non-empty parts of suggestion to the
// overview. Each write marks the session dirty like any other edit.
func ApplyContentSuggestion(target FieldUpdater, suggestion ContentSuggestion) error {
	if tagline := strings.TrimSpace(suggestion.Tagline); tagline != "" {
		if err := target.UpdateField("overview.tagline", tagline); err != nil {
			return err
		}
	}
	if description := strings.TrimSpace(suggestion.Description); description != "" {
		if err := target.UpdateField("overview.description", description); err != nil {
			return err
		}
	}
	return nil
}
