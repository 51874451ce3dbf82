package drafts

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks overview values a host may want to enforce before publishing.
// Edit operations never call it; drafts may hold incomplete data while editing.
func (o Overview) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Name, validation.Required, validation.Length(1, 160)),
		validation.Field(&o.Tagline, validation.Length(0, 240)),
		validation.Field(&o.StartDate, validation.Date(DateLayout)),
		validation.Field(&o.EndDate, validation.Date(DateLayout), validation.By(o.endNotBeforeStart)),
	)
}

func (o Overview) endNotBeforeStart(any) error {
	if o.StartDate == "" || o.EndDate == "" {
		return nil
	}
	start, err := time.Parse(DateLayout, o.StartDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(DateLayout, o.EndDate)
	if err != nil {
		return nil
	}
	if end.Before(start) {
		return errors.New("must not be before the start date")
	}
	return nil
}
