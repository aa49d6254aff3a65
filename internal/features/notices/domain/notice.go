package domain

import (
	"errors"
	"strings"
	"time"
)

// NoticeLevel represents the severity of an operator notice.
type NoticeLevel string

const (
	NoticeLevelInfo    NoticeLevel = "INFO"
	NoticeLevelWarning NoticeLevel = "WARNING"
	NoticeLevelDanger  NoticeLevel = "DANGER"
)

var (
	ErrInvalidNoticeLevel  = errors.New("invalid notice level")
	ErrNoticeTitleRequired = errors.New("notice title is required")
	ErrInvalidDuration     = errors.New("notice duration must not be negative")
)

// Notice is a site-wide message shown above the tracking page,
// e.g. holiday delays or a known outage.
type Notice struct {
	Title     string      `json:"title"`
	Subtitle  string      `json:"subtitle"`
	Level     NoticeLevel `json:"level"`
	Duration  int         `json:"duration,omitempty"` // Seconds. 0 keeps the notice until it is removed.
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt *time.Time  `json:"expires_at,omitempty"`
}

// NewNotice creates a new Notice and validates it.
func NewNotice(title, subtitle string, level NoticeLevel, duration int) (*Notice, error) {
	if !level.Valid() {
		return nil, ErrInvalidNoticeLevel
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrNoticeTitleRequired
	}
	if duration < 0 {
		return nil, ErrInvalidDuration
	}

	now := time.Now()
	n := &Notice{
		Title:     title,
		Subtitle:  strings.TrimSpace(subtitle),
		Level:     level,
		Duration:  duration,
		CreatedAt: now,
	}
	if duration > 0 {
		expires := now.Add(n.TTL())
		n.ExpiresAt = &expires
	}
	return n, nil
}

// Valid reports whether l is one of the known levels.
func (l NoticeLevel) Valid() bool {
	switch l {
	case NoticeLevelInfo, NoticeLevelWarning, NoticeLevelDanger:
		return true
	}
	return false
}

// Color is the accent color the page uses for the level.
func (l NoticeLevel) Color() string {
	switch l {
	case NoticeLevelWarning:
		return "#f8bb02"
	case NoticeLevelDanger:
		return "#E30613"
	default:
		return "#3182ce"
	}
}

// TTL is how long the notice stays stored; zero means no expiry.
func (n *Notice) TTL() time.Duration {
	return time.Duration(n.Duration) * time.Second
}

// Expired reports whether the notice has outlived its duration at now.
// Permanent notices never expire.
func (n *Notice) Expired(now time.Time) bool {
	return n.ExpiresAt != nil && !now.Before(*n.ExpiresAt)
}
