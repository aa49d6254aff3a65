package ports

import (
	"context"

	"shipment-tracker/internal/features/notices/domain"
)

// NoticeService manages the single operator notice shown on the tracking page.
type NoticeService interface {
	// SetNotice replaces the current notice.
	SetNotice(ctx context.Context, title, subtitle string, level domain.NoticeLevel, duration int) error
	// GetNotice returns the live notice, or nil when none is set or it has expired.
	GetNotice(ctx context.Context) (*domain.Notice, error)
	RemoveNotice(ctx context.Context) error
}

// NoticeRepository stores at most one notice.
// Get returns nil, nil when nothing is stored.
type NoticeRepository interface {
	Save(ctx context.Context, notice *domain.Notice) error
	Get(ctx context.Context) (*domain.Notice, error)
	Delete(ctx context.Context) error
}
