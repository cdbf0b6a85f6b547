package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/adhocore/gronx"
	"go.uber.org/zap"

	"zoo-web/models"
	"zoo-web/utils"
)

// EventService computes the next occurrence of recurring zoo events
type EventService struct {
	events []models.Event
	logger *zap.Logger
}

// NewEventService validates every schedule up front
func NewEventService(events []models.Event, logger *zap.Logger) (*EventService, error) {
	g := gronx.New()
	for _, e := range events {
		if !g.IsValid(e.Schedule) {
			return nil, fmt.Errorf("event %d %q: invalid schedule %q", e.ID, e.Title, e.Schedule)
		}
	}
	return &EventService{events: events, logger: logger}, nil
}

// Upcoming returns each event's next start after now, soonest first.
// An empty category or "all" returns every category.
func (s *EventService) Upcoming(now time.Time, category string) []models.EventOccurrence {
	category = strings.ToLower(strings.TrimSpace(category))
	all := category == "" || category == "all"

	out := make([]models.EventOccurrence, 0, len(s.events))
	for _, e := range s.events {
		if !all && e.Category != category {
			continue
		}
		next, err := gronx.NextTickAfter(e.Schedule, now, false)
		if err != nil {
			s.logger.Warn("skipping event without next occurrence", zap.Int("event", e.ID), zap.Error(err))
			continue
		}
		out = append(out, occurrence(e, next))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartsAt.Before(out[j].StartsAt)
	})
	return out
}

// Ticketed returns upcoming events that charge admission
func (s *EventService) Ticketed(now time.Time) []models.EventOccurrence {
	var out []models.EventOccurrence
	for _, o := range s.Upcoming(now, "") {
		if o.Price > 0 {
			out = append(out, o)
		}
	}
	return out
}

// Soonest returns at most n upcoming events
func (s *EventService) Soonest(now time.Time, n int) []models.EventOccurrence {
	all := s.Upcoming(now, "")
	if len(all) > n {
		all = all[:n]
	}
	return all
}

func occurrence(e models.Event, at time.Time) models.EventOccurrence {
	o := models.EventOccurrence{
		Event:     e,
		StartsAt:  at,
		DateLabel: at.Format("Monday, January 2, 2006"),
		TimeLabel: at.Format("3:04 PM"),
	}
	if e.Price > 0 {
		o.PriceLabel = utils.FormatUSD(e.Price)
	}
	return o
}
