package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotice(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		subtitle    string
		level       NoticeLevel
		duration    int
		expectedErr error
	}{
		{
			name:     "Valid INFO Notice",
			title:    "Eid holidays",
			subtitle: "Deliveries resume Sunday",
			level:    NoticeLevelInfo,
			duration: 60,
		},
		{
			name:     "Valid WARNING Notice",
			title:    "Delays in Alexandria",
			level:    NoticeLevelWarning,
			duration: 0,
		},
		{
			name:     "Valid DANGER Notice",
			title:    "Tracking outage",
			subtitle: "Statuses may be stale",
			level:    NoticeLevelDanger,
			duration: 120,
		},
		{
			name:        "Invalid Level",
			title:       "Invalid",
			level:       "INVALID",
			duration:    60,
			expectedErr: ErrInvalidNoticeLevel,
		},
		{
			name:        "Blank Title",
			title:       "   ",
			level:       NoticeLevelInfo,
			expectedErr: ErrNoticeTitleRequired,
		},
		{
			name:        "Negative Duration",
			title:       "Title",
			level:       NoticeLevelInfo,
			duration:    -1,
			expectedErr: ErrInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notice, err := NewNotice(tt.title, tt.subtitle, tt.level, tt.duration)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, notice)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, notice)
				assert.Equal(t, tt.title, notice.Title)
				assert.Equal(t, tt.subtitle, notice.Subtitle)
				assert.Equal(t, tt.level, notice.Level)
				assert.Equal(t, time.Duration(tt.duration)*time.Second, notice.TTL())
				assert.False(t, notice.CreatedAt.IsZero())
				if tt.duration == 0 {
					assert.Nil(t, notice.ExpiresAt)
				} else {
					require.NotNil(t, notice.ExpiresAt)
					assert.Equal(t, notice.CreatedAt.Add(notice.TTL()), *notice.ExpiresAt)
				}
			}
		})
	}
}

func TestNoticeLevel_Color(t *testing.T) {
	assert.Equal(t, "#3182ce", NoticeLevelInfo.Color())
	assert.Equal(t, "#f8bb02", NoticeLevelWarning.Color())
	assert.Equal(t, "#E30613", NoticeLevelDanger.Color())
}

func TestNotice_Expired(t *testing.T) {
	created := time.Date(2020, 1, 8, 10, 0, 0, 0, time.UTC)
	expires := created.Add(time.Minute)

	timed := &Notice{CreatedAt: created, Duration: 60, ExpiresAt: &expires}
	assert.False(t, timed.Expired(created.Add(59*time.Second)))
	assert.True(t, timed.Expired(expires))

	permanent := &Notice{CreatedAt: created}
	assert.False(t, permanent.Expired(created.Add(24*time.Hour)))
}
