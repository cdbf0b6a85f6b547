package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"zoo-web/catalog"
	"zoo-web/models"
)

// Thursday 2025-07-03 12:00
var eventNow = time.Date(2025, 7, 3, 12, 0, 0, 0, time.UTC)

func newEventService(t *testing.T) *EventService {
	t.Helper()
	s, err := NewEventService(catalog.NewStore().Events(), zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestNewEventService_RejectsBadSchedule(t *testing.T) {
	_, err := NewEventService([]models.Event{{ID: 1, Title: "x", Schedule: "every day"}}, zap.NewNop())
	assert.Error(t, err)
}

func TestEventService_UpcomingIsSorted(t *testing.T) {
	s := newEventService(t)

	got := s.Upcoming(eventNow, "")
	require.Len(t, got, 6)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].StartsAt.Before(got[i-1].StartsAt))
	}
	for _, o := range got {
		assert.True(t, o.StartsAt.After(eventNow), o.Title)
	}
}

func TestEventService_NextOccurrence(t *testing.T) {
	s := newEventService(t)

	daily := s.Upcoming(eventNow, models.EventCategoryDaily)
	require.Len(t, daily, 1)
	assert.Equal(t, "Penguin Feeding", daily[0].Title)
	// 11:00 already passed on Thursday noon
	assert.WithinDuration(t, time.Date(2025, 7, 4, 11, 0, 0, 0, time.UTC), daily[0].StartsAt, 0)
	assert.Equal(t, "Friday, July 4, 2025", daily[0].DateLabel)
	assert.Equal(t, "11:00 AM", daily[0].TimeLabel)
	assert.Empty(t, daily[0].PriceLabel)

	talk := s.Upcoming(eventNow, "EDUCATIONAL")
	require.Len(t, talk, 2)
	assert.Equal(t, "Conservation Talk: Saving Tigers", talk[0].Title)
	assert.Equal(t, "2:00 PM", talk[0].TimeLabel)
}

func TestEventService_Ticketed(t *testing.T) {
	s := newEventService(t)

	got := s.Ticketed(eventNow)
	require.Len(t, got, 3)
	for _, o := range got {
		assert.NotEmpty(t, o.PriceLabel, o.Title)
	}
}

func TestEventService_Soonest(t *testing.T) {
	s := newEventService(t)

	assert.Len(t, s.Soonest(eventNow, 4), 4)
	assert.Len(t, s.Soonest(eventNow, 10), 6)
}
