package service

import (
	"context"
	"fmt"
	"time"

	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/features/notices/domain"
	"shipment-tracker/internal/features/notices/ports"

	"go.uber.org/zap"
)

// NoticeServiceImpl implements ports.NoticeService.
type NoticeServiceImpl struct {
	repo ports.NoticeRepository
	now  func() time.Time
}

// NewNoticeService creates a new NoticeServiceImpl.
func NewNoticeService(repo ports.NoticeRepository) *NoticeServiceImpl {
	return &NoticeServiceImpl{
		repo: repo,
		now:  time.Now,
	}
}

// SetNotice validates and stores a notice, replacing any current one.
func (s *NoticeServiceImpl) SetNotice(ctx context.Context, title, subtitle string, level domain.NoticeLevel, duration int) error {
	notice, err := domain.NewNotice(title, subtitle, level, duration)
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, notice); err != nil {
		return fmt.Errorf("service: failed to save notice: %w", err)
	}

	logger.Get().Info("Notice set",
		zap.String("level", string(notice.Level)),
		zap.String("title", notice.Title),
		zap.Int("duration", notice.Duration),
	)
	return nil
}

// GetNotice retrieves the live notice. A stored notice past its expiry is
// removed and reported as absent.
func (s *NoticeServiceImpl) GetNotice(ctx context.Context) (*domain.Notice, error) {
	notice, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get notice: %w", err)
	}
	if notice == nil {
		return nil, nil
	}

	if notice.Expired(s.now()) {
		if err := s.repo.Delete(ctx); err != nil {
			logger.Get().Warn("Failed to delete expired notice", zap.Error(err))
		}
		return nil, nil
	}

	return notice, nil
}

// RemoveNotice deletes the current notice.
func (s *NoticeServiceImpl) RemoveNotice(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("service: failed to remove notice: %w", err)
	}

	return nil
}
