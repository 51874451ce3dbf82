package interfaces

import (
	"context"

	usertypes "github.com/goliatone/go-users/pkg/types"
)

// ActivityRecord is the go-users activity contract. Hosts that already run a
// go-users activity feed can pass their sink straight in.
type ActivityRecord = usertypes.ActivityRecord

// ActivitySink receives builder activity such as publications.
type ActivitySink interface {
	Log(ctx context.Context, record ActivityRecord) error
}
