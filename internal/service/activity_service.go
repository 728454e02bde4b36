package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"artshare/internal/models"
	"artshare/internal/repository"
)

type ActivityService struct {
	events repository.Activity
}

func NewActivityService(events repository.Activity) *ActivityService {
	return &ActivityService{events: events}
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// Record appends one event to the trail with the current time.
func (s *ActivityService) Record(ctx context.Context, typ, email, detail string) error {
	return s.events.Append(ctx, models.ActivityEvent{
		Type:   typ,
		Email:  email,
		Detail: detail,
	})
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeEventType trims spaces and uppercases the event type filter.
func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

func (s *ActivityService) List(ctx context.Context, f ActivityFilter) ([]models.ActivityEvent, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, errInvalidTimeRange
	}
	return s.events.List(ctx, from, to, normalizeEventType(f.Type))
}
