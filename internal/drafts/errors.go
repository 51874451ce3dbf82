package drafts

import "errors"

var (
	ErrUnknownKind  = errors.New("drafts: unknown draft kind")
	ErrUnknownField = errors.New("drafts: unknown field path")
	ErrFieldType    = errors.New("drafts: unexpected value type for field")
	ErrSeedInvalid  = errors.New("drafts: seed document is invalid")
)
