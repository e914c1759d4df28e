package schedule

import (
	"context"
	"time"
)

// ConfigRepository supplies shift configurations. A nil result with nil
// error means nothing is configured at that level; resolution falls through
// to the next source.
type ConfigRepository interface {
	// GetGlobal returns the portal-wide default shift configuration.
	GetGlobal(ctx context.Context) (*Config, error)

	// GetByStudent returns the per-student override, if any.
	GetByStudent(ctx context.Context, studentID string) (*Config, error)
}

// GrantRepository supplies per-date overtime authorizations.
type GrantRepository interface {
	// ListByStudentAndRange returns grants whose date falls in [from, to).
	ListByStudentAndRange(ctx context.Context, studentID string, from, to time.Time) ([]OvertimeGrant, error)
}
